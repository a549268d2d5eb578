package models

import "time"

// LocalizedText is a pair of translations for one text fragment.
type LocalizedText struct {
	RU string `json:"ru"`
	EN string `json:"en"`
}

// TemplateContent is the nested representation of a template's texts served
// to the mini-app frontend. It is assembled from the flat per-language
// columns of the templates table.
type TemplateContent struct {
	Title LocalizedText `json:"title"`
	Body  LocalizedText `json:"body"`
}

// Template is a pre-built letter template offered by the mini-app wizard.
//
// Texts are stored flat (one column per language) and exposed both flat and
// as the nested Content shape the frontend consumes.
type Template struct {
	// ID is the unique identifier of the template (UUID).
	ID string `json:"id"`

	// Name is the internal template name. Required and unique.
	Name string `json:"name"`

	// Description is a short admin-facing summary. May be empty.
	Description string `json:"description"`

	TitleRU string `json:"title_ru"`
	TitleEN string `json:"title_en"`
	BodyRU  string `json:"body_ru"`
	BodyEN  string `json:"body_en"`

	// IsActive controls whether the template is served by the public
	// config endpoint. Inactive templates stay visible to admins.
	IsActive bool `json:"is_active"`

	// SortOrder defines the display order in the wizard, ascending.
	SortOrder int `json:"sort_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Content is the nested view of the template texts. Derived from the
	// flat fields; never read back from requests directly.
	Content TemplateContent `json:"content"`
}

// BuildContent fills Content from the flat per-language fields.
// Call after loading a row and before serializing a response.
func (t *Template) BuildContent() {
	t.Content = TemplateContent{
		Title: LocalizedText{RU: t.TitleRU, EN: t.TitleEN},
		Body:  LocalizedText{RU: t.BodyRU, EN: t.BodyEN},
	}
}

// TableName returns the name of the database table
// associated with the Template model.
func (t Template) TableName() string {
	return "templates"
}

// TemplateInput carries template fields supplied by an admin on create or
// update. Only non-nil fields participate (partial update support). Flat
// per-language fields take precedence over the nested Content fallback,
// mirroring how the frontend historically sent both shapes.
type TemplateInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`

	TitleRU *string `json:"title_ru"`
	TitleEN *string `json:"title_en"`
	BodyRU  *string `json:"body_ru"`
	BodyEN  *string `json:"body_en"`

	IsActive  *bool `json:"is_active"`
	SortOrder *int  `json:"sort_order"`

	Content *TemplateContent `json:"content"`
}

// Normalize resolves the flat-vs-nested duplication: for every per-language
// field left nil, the value is taken from Content when that is present.
// After Normalize the Content field can be ignored.
func (in *TemplateInput) Normalize() {
	if in.Content == nil {
		return
	}

	if in.TitleRU == nil {
		v := in.Content.Title.RU
		in.TitleRU = &v
	}
	if in.TitleEN == nil {
		v := in.Content.Title.EN
		in.TitleEN = &v
	}
	if in.BodyRU == nil {
		v := in.Content.Body.RU
		in.BodyRU = &v
	}
	if in.BodyEN == nil {
		v := in.Content.Body.EN
		in.BodyEN = &v
	}
}
