package style

import (
	"errors"
	"testing"
)

func TestComposeShadow(t *testing.T) {
	tests := []struct {
		name     string
		layers   []ShadowLayer
		expected string
	}{
		{
			name:     "default layer",
			layers:   []ShadowLayer{DefaultShadowLayer()},
			expected: "0px 4px 6px 0px rgba(0, 0, 0, 0.15)",
		},
		{
			name:     "inset layer",
			layers:   []ShadowLayer{{Y: 2, Blur: 4, Color: "#000000", Opacity: 10, Inset: true}},
			expected: "inset 0px 2px 4px 0px rgba(0, 0, 0, 0.1)",
		},
		{
			name: "layers joined in order",
			layers: []ShadowLayer{
				{X: 1, Y: 2, Blur: 3, Spread: 4, Color: "#ff0000", Opacity: 50},
				{X: -1, Color: "#00ff00", Opacity: 100},
			},
			expected: "1px 2px 3px 4px rgba(255, 0, 0, 0.5), -1px 0px 0px 0px rgba(0, 255, 0, 1)",
		},
		{
			name:     "unparseable color renders black",
			layers:   []ShadowLayer{{Y: 1, Color: "#fff", Opacity: 40}},
			expected: "0px 1px 0px 0px rgba(0, 0, 0, 0.4)",
		},
		{
			name:     "no layers",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComposeShadow(tt.layers); got != tt.expected {
				t.Errorf("ComposeShadow() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestShadowStack(t *testing.T) {
	s := NewShadowStack()
	if s.Len() != 1 || s.CSS() != "0px 4px 6px 0px rgba(0, 0, 0, 0.15)" {
		t.Fatalf("NewShadowStack() = %d layers, css %q", s.Len(), s.CSS())
	}

	if err := s.Remove("1"); !errors.Is(err, ErrLastShadowLayer) {
		t.Errorf("Remove() of last layer error = %v, want ErrLastShadowLayer", err)
	}

	added := s.Append()
	if added.ID != "2" || added.Y != 2 || added.Blur != 4 || added.Opacity != 10 {
		t.Errorf("Append() = %+v", added)
	}

	dup, err := s.Duplicate("1")
	if err != nil {
		t.Fatalf("Duplicate() error = %v", err)
	}
	if dup.ID != "3" || dup.X != 2 || dup.Y != 6 || dup.Blur != 6 {
		t.Errorf("Duplicate() = %+v, want offset copy of layer 1", dup)
	}
	if got := s.Layers(); got[len(got)-1].ID != "3" {
		t.Errorf("Duplicate() did not append at the end: %+v", got)
	}

	if err := s.Remove("2"); err != nil {
		t.Errorf("Remove() error = %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d after remove, want 2", s.Len())
	}
	if err := s.Remove("42"); !errors.Is(err, ErrShadowLayerNotFound) {
		t.Errorf("Remove() unknown error = %v", err)
	}

	updated := dup
	updated.Inset = true
	if err := s.Update(updated); err != nil {
		t.Errorf("Update() error = %v", err)
	}
	if got := s.Layers()[1]; !got.Inset {
		t.Errorf("Update() not applied: %+v", got)
	}

	if css := s.Reset(); css != "none" {
		t.Errorf("Reset() = %q, want none", css)
	}
	if s.Len() != 1 || s.CSS() != "none" {
		t.Errorf("after Reset() len=%d css=%q", s.Len(), s.CSS())
	}
}

func TestShadowLayersAreCopies(t *testing.T) {
	s := NewShadowStack()
	layers := s.Layers()
	layers[0].Blur = 99
	if s.Layers()[0].Blur == 99 {
		t.Error("Layers() exposes internal storage")
	}
}

func TestShadowPresets(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Colored", "0px 10px 25px 0px rgba(99, 102, 241, 0.3), 0px 5px 10px 0px rgba(139, 92, 246, 0.2)"},
		{"Inset", "inset 0px 2px 4px 0px rgba(0, 0, 0, 0.1), inset 0px 1px 2px 0px rgba(0, 0, 0, 0.06)"},
		{"3D", "0px 1px 0px 0px rgba(255, 255, 255, 0.4), 0px 2px 4px 0px rgba(0, 0, 0, 0.3), inset 0px 1px 0px 0px rgba(255, 255, 255, 0.4)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewShadowStack()
			if err := s.ApplyPreset(tt.name); err != nil {
				t.Fatalf("ApplyPreset() error = %v", err)
			}
			if got := s.CSS(); got != tt.expected {
				t.Errorf("CSS() = %q, want %q", got, tt.expected)
			}
		})
	}

	if len(ShadowPresets()) != 8 {
		t.Errorf("ShadowPresets() returned %d presets, want 8", len(ShadowPresets()))
	}

	s := NewShadowStack()
	if err := s.ApplyPreset("Huge"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("ApplyPreset() error = %v, want ErrUnknownPreset", err)
	}
	if err := s.ApplyPreset("3D"); err != nil {
		t.Fatal(err)
	}
	if added := s.Append(); added.ID != "4" {
		t.Errorf("Append() after preset id = %q, want 4", added.ID)
	}
}
