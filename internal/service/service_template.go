package service

import (
	"context"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/konstrukt-app/konstrukt-be/internal/logger"
	"github.com/konstrukt-app/konstrukt-be/internal/store"
	"github.com/konstrukt-app/konstrukt-be/models"
)

// templateService is the concrete implementation of [TemplateService].
type templateService struct {
	templates store.TemplateRepository

	logger *logger.Logger
}

// NewTemplateService constructs a [TemplateService] over the template
// repository.
func NewTemplateService(templates store.TemplateRepository, logger *logger.Logger) TemplateService {
	logger.Debug().Msg("creating template service")
	return &templateService{
		templates: templates,
		logger:    logger,
	}
}

// ListTemplates returns templates in display order, with the nested content
// shape populated. The public surface passes includeInactive=false.
func (s *templateService) ListTemplates(ctx context.Context, includeInactive bool) ([]models.Template, error) {
	templates, err := s.templates.ListTemplates(ctx, !includeInactive)
	if err != nil {
		return nil, fmt.Errorf("error listing templates: %w", err)
	}

	for i := range templates {
		templates[i].BuildContent()
	}

	return templates, nil
}

// CreateTemplate validates the input and inserts a new template.
//
// Flat per-language fields win over the nested content fallback; the
// template is active by default.
func (s *templateService) CreateTemplate(ctx context.Context, input models.TemplateInput) (models.Template, error) {
	input.Normalize()

	template := models.Template{
		Name:        trimmedValue(input.Name),
		Description: stringValue(input.Description),
		TitleRU:     trimmedValue(input.TitleRU),
		TitleEN:     trimmedValue(input.TitleEN),
		BodyRU:      stringValue(input.BodyRU),
		BodyEN:      stringValue(input.BodyEN),
		IsActive:    true,
	}
	if input.IsActive != nil {
		template.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		template.SortOrder = *input.SortOrder
	}

	if err := validateTemplate(template); err != nil {
		return models.Template{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := s.templates.CreateTemplate(ctx, template)
	if err != nil {
		return models.Template{}, fmt.Errorf("error creating template: %w", err)
	}

	created.BuildContent()
	return created, nil
}

// UpdateTemplate validates and applies a partial update.
func (s *templateService) UpdateTemplate(ctx context.Context, id string, input models.TemplateInput) (models.Template, error) {
	if id == "" {
		return models.Template{}, fmt.Errorf("%w: template id is required", ErrInvalidDataProvided)
	}

	input.Normalize()

	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		if trimmed == "" {
			return models.Template{}, fmt.Errorf("%w: name cannot be empty", ErrInvalidDataProvided)
		}
		input.Name = &trimmed
	}

	updated, err := s.templates.UpdateTemplate(ctx, id, input)
	if err != nil {
		return models.Template{}, fmt.Errorf("error updating template: %w", err)
	}

	updated.BuildContent()
	return updated, nil
}

// DeleteTemplate removes one template.
func (s *templateService) DeleteTemplate(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: template id is required", ErrInvalidDataProvided)
	}

	if err := s.templates.DeleteTemplate(ctx, id); err != nil {
		return fmt.Errorf("error deleting template: %w", err)
	}

	return nil
}

// validateTemplate checks the invariants of a fully assembled template.
func validateTemplate(template models.Template) error {
	return validation.ValidateStruct(&template,
		validation.Field(&template.Name, validation.Required),
		validation.Field(&template.SortOrder, validation.Min(0)),
	)
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func trimmedValue(s *string) string {
	return strings.TrimSpace(stringValue(s))
}
