package style

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrLastShadowLayer     = errors.New("cannot remove the last shadow layer")
	ErrShadowLayerNotFound = errors.New("shadow layer not found")
)

// ShadowLayer is one box-shadow term. Opacity is a percentage.
type ShadowLayer struct {
	ID      string  `json:"id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Blur    float64 `json:"blur"`
	Spread  float64 `json:"spread"`
	Color   string  `json:"color"`
	Opacity float64 `json:"opacity"`
	Inset   bool    `json:"inset"`
}

func (l ShadowLayer) css() string {
	prefix := ""
	if l.Inset {
		prefix = "inset "
	}
	return fmt.Sprintf("%s%spx %spx %spx %spx %s", prefix, num(l.X), num(l.Y), num(l.Blur), num(l.Spread), RGBA(l.Color, l.Opacity/100))
}

func (l ShadowLayer) zero() bool {
	return l.X == 0 && l.Y == 0 && l.Blur == 0 && l.Spread == 0 && l.Opacity == 0
}

// ComposeShadow joins the layers in list order.
func ComposeShadow(layers []ShadowLayer) string {
	parts := make([]string, 0, len(layers))
	for _, l := range layers {
		parts = append(parts, l.css())
	}
	return strings.Join(parts, ", ")
}

// DefaultShadowLayer is the layer a new stack starts with.
func DefaultShadowLayer() ShadowLayer {
	return ShadowLayer{ID: "1", Y: 4, Blur: 6, Color: colorBlack, Opacity: 15}
}

// ShadowStack is an editable, never empty list of shadow layers.
type ShadowStack struct {
	layers []ShadowLayer
	nextID int
}

// NewShadowStack copies layers into a stack; no layers yields the default one.
func NewShadowStack(layers ...ShadowLayer) *ShadowStack {
	s := &ShadowStack{}
	if len(layers) == 0 {
		layers = []ShadowLayer{DefaultShadowLayer()}
	}
	s.load(layers)
	return s
}

func (s *ShadowStack) load(layers []ShadowLayer) {
	s.layers = make([]ShadowLayer, len(layers))
	copy(s.layers, layers)
	s.nextID = 1
	for i := range s.layers {
		if n, err := strconv.Atoi(s.layers[i].ID); err == nil && n >= s.nextID {
			s.nextID = n + 1
		}
	}
	for i := range s.layers {
		if s.layers[i].ID == "" {
			s.layers[i].ID = s.newID()
		}
	}
}

func (s *ShadowStack) newID() string {
	id := strconv.Itoa(s.nextID)
	s.nextID++
	return id
}

func (s *ShadowStack) index(id string) int {
	for i, l := range s.layers {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// Layers returns a copy of the layers.
func (s *ShadowStack) Layers() []ShadowLayer {
	out := make([]ShadowLayer, len(s.layers))
	copy(out, s.layers)
	return out
}

func (s *ShadowStack) Len() int { return len(s.layers) }

// Clone copies the stack, id counter included.
func (s *ShadowStack) Clone() *ShadowStack {
	return &ShadowStack{layers: s.Layers(), nextID: s.nextID}
}

// CSS renders the stack, "none" when only zero layers remain.
func (s *ShadowStack) CSS() string {
	for _, l := range s.layers {
		if !l.zero() {
			return ComposeShadow(s.layers)
		}
	}
	return "none"
}

// Append adds a soft default layer at the end.
func (s *ShadowStack) Append() ShadowLayer {
	l := ShadowLayer{ID: s.newID(), Y: 2, Blur: 4, Color: colorBlack, Opacity: 10}
	s.layers = append(s.layers, l)
	return l
}

// Duplicate appends a copy of the layer offset by 2px on both axes.
func (s *ShadowStack) Duplicate(id string) (ShadowLayer, error) {
	i := s.index(id)
	if i < 0 {
		return ShadowLayer{}, fmt.Errorf("%w: %s", ErrShadowLayerNotFound, id)
	}
	l := s.layers[i]
	l.ID = s.newID()
	l.X += 2
	l.Y += 2
	s.layers = append(s.layers, l)
	return l, nil
}

// Remove deletes a layer. The last remaining layer cannot be removed.
func (s *ShadowStack) Remove(id string) error {
	if len(s.layers) <= 1 {
		return ErrLastShadowLayer
	}
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrShadowLayerNotFound, id)
	}
	s.layers = append(s.layers[:i], s.layers[i+1:]...)
	return nil
}

// Update replaces the layer with the same id.
func (s *ShadowStack) Update(l ShadowLayer) error {
	i := s.index(l.ID)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrShadowLayerNotFound, l.ID)
	}
	s.layers[i] = l
	return nil
}

// Reset leaves a single zero layer, rendering as "none".
func (s *ShadowStack) Reset() string {
	s.load([]ShadowLayer{{ID: "1", Color: colorBlack}})
	return s.CSS()
}

// ApplyPreset replaces all layers with the named preset.
func (s *ShadowStack) ApplyPreset(name string) error {
	for _, p := range shadowPresets {
		if strings.EqualFold(p.Name, name) {
			s.load(p.Layers)
			return nil
		}
	}
	return fmt.Errorf("%w: shadow %q", ErrUnknownPreset, name)
}

// ShadowPreset is a named layer list.
type ShadowPreset struct {
	Name   string        `json:"name"`
	Layers []ShadowLayer `json:"layers"`
}

func (p ShadowPreset) CSS() string { return ComposeShadow(p.Layers) }

var shadowPresets = []ShadowPreset{
	{Name: "Subtle", Layers: []ShadowLayer{
		{ID: "1", Y: 1, Blur: 3, Color: colorBlack, Opacity: 12},
		{ID: "2", Y: 1, Blur: 2, Color: colorBlack, Opacity: 24},
	}},
	{Name: "Soft", Layers: []ShadowLayer{
		{ID: "1", Y: 4, Blur: 6, Color: colorBlack, Opacity: 7},
		{ID: "2", Y: 1, Blur: 3, Color: colorBlack, Opacity: 6},
	}},
	{Name: "Medium", Layers: []ShadowLayer{
		{ID: "1", Y: 10, Blur: 25, Color: colorBlack, Opacity: 15},
		{ID: "2", Y: 5, Blur: 10, Color: colorBlack, Opacity: 5},
	}},
	{Name: "Large", Layers: []ShadowLayer{
		{ID: "1", Y: 20, Blur: 40, Color: colorBlack, Opacity: 10},
		{ID: "2", Y: 8, Blur: 16, Color: colorBlack, Opacity: 6},
	}},
	{Name: "Colored", Layers: []ShadowLayer{
		{ID: "1", Y: 10, Blur: 25, Color: "#6366f1", Opacity: 30},
		{ID: "2", Y: 5, Blur: 10, Color: "#8b5cf6", Opacity: 20},
	}},
	{Name: "Neon", Layers: []ShadowLayer{
		{ID: "1", Blur: 20, Color: "#6366f1", Opacity: 80},
		{ID: "2", Blur: 40, Color: "#8b5cf6", Opacity: 40},
	}},
	{Name: "Inset", Layers: []ShadowLayer{
		{ID: "1", Y: 2, Blur: 4, Color: colorBlack, Opacity: 10, Inset: true},
		{ID: "2", Y: 1, Blur: 2, Color: colorBlack, Opacity: 6, Inset: true},
	}},
	{Name: "3D", Layers: []ShadowLayer{
		{ID: "1", Y: 1, Color: colorWhite, Opacity: 40},
		{ID: "2", Y: 2, Blur: 4, Color: colorBlack, Opacity: 30},
		{ID: "3", Y: 1, Color: colorWhite, Opacity: 40, Inset: true},
	}},
}

// ShadowPresets lists the shipped shadow presets.
func ShadowPresets() []ShadowPreset {
	out := make([]ShadowPreset, len(shadowPresets))
	for i, p := range shadowPresets {
		layers := make([]ShadowLayer, len(p.Layers))
		copy(layers, p.Layers)
		out[i] = ShadowPreset{Name: p.Name, Layers: layers}
	}
	return out
}
