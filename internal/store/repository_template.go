package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/konstrukt-app/konstrukt-be/internal/logger"
	"github.com/konstrukt-app/konstrukt-be/models"
)

// templateRepository is the PostgreSQL-backed implementation of
// [TemplateRepository].
type templateRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTemplateRepository constructs a [TemplateRepository] backed by the
// provided database connection and logger.
func NewTemplateRepository(db *DB, logger *logger.Logger) TemplateRepository {
	logger.Debug().Msg("creating template repository")
	return &templateRepository{
		db:     db,
		logger: logger,
	}
}

// ListTemplates returns templates ordered for display. With onlyActive, the
// public surface sees only templates flagged is_active.
func (r *templateRepository) ListTemplates(ctx context.Context, onlyActive bool) ([]models.Template, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTemplates(onlyActive)
	if err != nil {
		log.Err(err).Str("func", "*templateRepository.ListTemplates").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*templateRepository.ListTemplates").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var templates []models.Template
	for rows.Next() {
		var template models.Template
		if err := scanTemplate(rows.Scan, &template); err != nil {
			log.Err(err).Str("func", "*templateRepository.ListTemplates").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		templates = append(templates, template)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return templates, nil
}

// CreateTemplate inserts a new template row and returns the canonical
// database representation with server-assigned fields.
func (r *templateRepository) CreateTemplate(ctx context.Context, template models.Template) (models.Template, error) {
	log := logger.FromContext(ctx)

	if template.ID == "" {
		template.ID = uuid.NewString()
	}

	row := r.db.QueryRowContext(ctx, createTemplate,
		template.ID, template.Name, template.Description,
		template.TitleRU, template.TitleEN, template.BodyRU, template.BodyEN,
		template.IsActive, template.SortOrder,
	)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*templateRepository.CreateTemplate").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Template{}, ErrTemplateNameTaken
		default:
			return models.Template{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var created models.Template
	if err := scanTemplate(row.Scan, &created); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Template{}, ErrTemplateNameTaken
		}

		log.Err(err).Str("func", "*templateRepository.CreateTemplate").Msg("error: scanning error")
		return models.Template{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// UpdateTemplate applies the non-nil fields of input to one template row.
//
// Error handling:
//   - No updatable fields → [ErrNothingToUpdate].
//   - Missing template id → [ErrTemplateNotFound].
func (r *templateRepository) UpdateTemplate(ctx context.Context, id string, input models.TemplateInput) (models.Template, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTemplate(id, input)
	if err != nil {
		if errors.Is(err, ErrNothingToUpdate) {
			return models.Template{}, err
		}

		log.Err(err).Str("func", "*templateRepository.UpdateTemplate").Msg("error: building query")
		return models.Template{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*templateRepository.UpdateTemplate").Msg("error: row is nil")
		return models.Template{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var updated models.Template
	if err := scanTemplate(row.Scan, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Template{}, ErrTemplateNotFound
		}

		log.Err(err).Str("func", "*templateRepository.UpdateTemplate").Msg("error: scanning error")
		return models.Template{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

// DeleteTemplate removes one template row.
func (r *templateRepository) DeleteTemplate(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteTemplate, id)
	if err != nil {
		log.Err(err).Str("func", "*templateRepository.DeleteTemplate").Msg("error: executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrTemplateNotFound
	}

	return nil
}

// scanTemplate scans one templates row through the provided scan function,
// converting nullable text columns to empty strings.
func scanTemplate(scan func(dest ...any) error, template *models.Template) error {
	var description, titleRU, titleEN, bodyRU, bodyEN sql.NullString

	if err := scan(&template.ID, &template.Name, &description,
		&titleRU, &titleEN, &bodyRU, &bodyEN,
		&template.IsActive, &template.SortOrder,
		&template.CreatedAt, &template.UpdatedAt); err != nil {
		return err
	}

	template.Description = description.String
	template.TitleRU = titleRU.String
	template.TitleEN = titleEN.String
	template.BodyRU = bodyRU.String
	template.BodyEN = bodyEN.String

	return nil
}
