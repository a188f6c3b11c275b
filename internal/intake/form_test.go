package intake

import (
	"net/url"
	"testing"

	"github.com/MrSnakeDoc/tapbook/internal/domain"
)

func TestFormFromValues(t *testing.T) {
	v := url.Values{
		"business_name": {"  Joe's Cafe "},
		"whatsapp":      {"+1 (234) 567-8901"},
		"instagram":     {"@joescafe"},
		"service_name":  {"Coffee", "", "Bagel"},
		"service_price": {"$3", "$1"},
	}

	f := FormFromValues(v).Normalize()
	if f.BusinessName != "Joe's Cafe" || f.Instagram != "joescafe" {
		t.Errorf("Normalize() = %+v", f)
	}
	if len(f.Services) != 1 || f.Services[0] != (domain.Service{Name: "Coffee", Price: "$3"}) {
		t.Errorf("Services = %+v, want only the complete row", f.Services)
	}
	if err := f.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestFormValidate(t *testing.T) {
	coffee := []domain.Service{{Name: "Coffee", Price: "$3"}}

	tests := []struct {
		name   string
		form   Form
		errors map[string]string
	}{
		{
			name: "everything missing",
			form: Form{},
			errors: map[string]string{
				"business_name": "Business name is required",
				"whatsapp":      "WhatsApp number is required",
				"services":      "At least one service is required",
			},
		},
		{
			name:   "short number",
			form:   Form{BusinessName: "Joe", WhatsApp: "12345", Services: coffee},
			errors: map[string]string{"whatsapp": "Please enter a valid WhatsApp number"},
		},
		{
			name:   "too many digits",
			form:   Form{BusinessName: "Joe", WhatsApp: "1234567890123456", Services: coffee},
			errors: map[string]string{"whatsapp": "Please enter a valid WhatsApp number"},
		},
		{
			name:   "services without prices are dropped",
			form:   Form{BusinessName: "Joe", WhatsApp: "12345678901", Services: []domain.Service{{Name: "Coffee"}}},
			errors: map[string]string{"services": "At least one service is required"},
		},
		{
			name: "valid",
			form: Form{BusinessName: "Joe", WhatsApp: "+1 234 567 8901", Services: coffee},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Normalize().Validate()
			if len(tt.errors) == 0 {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			list, ok := domain.AsValidation(err)
			if !ok {
				t.Fatalf("Validate() error = %v, want validation errors", err)
			}
			for field, want := range tt.errors {
				if got := list.For(field); got != want {
					t.Errorf("For(%q) = %q, want %q", field, got, want)
				}
			}
			if len(list) != len(tt.errors) {
				t.Errorf("got %d errors, want %d: %v", len(list), len(tt.errors), list)
			}
		})
	}
}
