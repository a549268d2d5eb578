package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/konstrukt-app/konstrukt-be/internal/logger"
	"github.com/konstrukt-app/konstrukt-be/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It serves read-only lookups against the "users" directory table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// FindByID retrieves the directory record with the given internal id.
//
// Error handling:
//   - Empty result set → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindByID(ctx context.Context, id string) (models.User, error) {
	row := r.db.QueryRowContext(ctx, findUserByID, id)
	return r.scanUser(ctx, row)
}

// FindByTelegramID retrieves the directory record linked to the given
// Telegram account id.
//
// Error handling mirrors [userRepository.FindByID].
func (r *userRepository) FindByTelegramID(ctx context.Context, telegramID int64) (models.User, error) {
	row := r.db.QueryRowContext(ctx, findUserByTelegramID, telegramID)
	return r.scanUser(ctx, row)
}

// FindByIDs retrieves directory records for every id that exists; missing
// ids produce no error. Used to join submitters into admin order listings.
func (r *userRepository) FindByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := buildFindUsersByIDs(ids)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindByIDs").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindByIDs").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.TelegramID, &user.FirstName, &user.LastName, &user.Username, &user.Administrator, &user.CreatedAt); err != nil {
			log.Err(err).Str("func", "*userRepository.FindByIDs").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

func (r *userRepository) scanUser(ctx context.Context, row *sql.Row) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.scanUser").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var user models.User
	if err := row.Scan(&user.ID, &user.TelegramID, &user.FirstName, &user.LastName, &user.Username, &user.Administrator, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.scanUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}
