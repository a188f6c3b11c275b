package views

import (
	"github.com/MrSnakeDoc/tapbook/internal/catalog"
	"github.com/MrSnakeDoc/tapbook/internal/domain"
	"github.com/MrSnakeDoc/tapbook/internal/editor"
	"github.com/MrSnakeDoc/tapbook/internal/intake"
	"github.com/MrSnakeDoc/tapbook/internal/style"
)

// IntakeData feeds the create form.
type IntakeData struct {
	Form     intake.Form
	Errors   domain.ValidationErrors
	Starters []catalog.Starter
}

// Error returns the inline message for field, "" when none.
func (d IntakeData) Error(field string) string { return d.Errors.For(field) }

// Rows pads the service rows to at least one empty row.
func (d IntakeData) Rows() []domain.Service {
	if len(d.Form.Services) == 0 {
		return []domain.Service{{}}
	}
	return d.Form.Services
}

// PageData feeds the public business page.
type PageData struct {
	Business     *domain.Business
	Links        []domain.CustomLink
	Presentation style.Presentation
	Success      bool
	EditURL      string
	ShareURL     string
}

// EditData feeds the editor page.
type EditData struct {
	Snapshot     editor.Snapshot
	Token        string
	PublicURL    string
	Themes       []style.ThemePreset
	Filters      []style.FilterPreset
	Shadows      []style.ShadowPreset
	Patterns     []style.Pattern
	CSSTemplates []style.CSSTemplate
}

func (d EditData) Business() *domain.Business { return d.Snapshot.Business }

// MessageData feeds the blocking denied, not-found and error pages.
type MessageData struct {
	Title   string
	Message string
}
