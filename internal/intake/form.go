// Package intake creates businesses, from the one-page form or from the
// three-step wizard.
package intake

import (
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MrSnakeDoc/tapbook/internal/domain"
	"github.com/MrSnakeDoc/tapbook/internal/validation"
)

// Form is the intake submission.
type Form struct {
	BusinessName string           `json:"business_name" validate:"required,max=80"`
	WhatsApp     string           `json:"whatsapp" validate:"required,whatsapp"`
	Instagram    string           `json:"instagram" validate:"max=60"`
	Services     []domain.Service `json:"services" validate:"min=1,dive"`
}

// FormFromValues reads a form-encoded submission. Service rows are paired by
// position from service_name and service_price.
func FormFromValues(v url.Values) Form {
	names, prices := v["service_name"], v["service_price"]
	services := make([]domain.Service, 0, len(names))
	for i, name := range names {
		price := ""
		if i < len(prices) {
			price = prices[i]
		}
		services = append(services, domain.Service{Name: name, Price: price})
	}

	return Form{
		BusinessName: v.Get("business_name"),
		WhatsApp:     v.Get("whatsapp"),
		Instagram:    v.Get("instagram"),
		Services:     services,
	}
}

// Normalize trims fields and drops incomplete service rows.
func (f Form) Normalize() Form {
	f.BusinessName = strings.TrimSpace(f.BusinessName)
	f.WhatsApp = strings.TrimSpace(f.WhatsApp)
	f.Instagram = domain.NormalizeHandle(f.Instagram)
	f.Services = domain.ValidServices(f.Services)
	return f
}

// Validate checks a normalized form.
func (f Form) Validate() error {
	return validation.Struct(f, formMessage)
}

func formMessage(field string, fe validator.FieldError) string {
	switch {
	case field == "business_name" && fe.Tag() == "required":
		return "Business name is required"
	case field == "whatsapp" && fe.Tag() == "required":
		return "WhatsApp number is required"
	case field == "services" && fe.Tag() == "min":
		return "At least one service is required"
	}
	return ""
}
