package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/konstrukt-app/konstrukt-be/internal/logger"
	"github.com/konstrukt-app/konstrukt-be/models"
)

// orderRepository is the PostgreSQL-backed implementation of
// [OrderRepository].
type orderRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewOrderRepository constructs an [OrderRepository] backed by the provided
// database connection and logger.
func NewOrderRepository(db *DB, logger *logger.Logger) OrderRepository {
	logger.Debug().Msg("creating order repository")
	return &orderRepository{
		db:     db,
		logger: logger,
	}
}

// ListOrders returns every submitted order, newest first.
func (r *orderRepository) ListOrders(ctx context.Context) ([]models.Order, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listOrders)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.ListOrders").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		order, err := scanOrder(rows.Scan)
		if err != nil {
			log.Err(err).Str("func", "*orderRepository.ListOrders").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return orders, nil
}

// ReviewOrder applies an admin verdict (built dynamically from the non-nil
// review fields) and returns the updated order.
//
// Error handling:
//   - No updatable fields → [ErrNothingToUpdate].
//   - Missing order id → [ErrOrderNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *orderRepository) ReviewOrder(ctx context.Context, review models.OrderReview) (models.Order, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildReviewOrder(review)
	if err != nil {
		if errors.Is(err, ErrNothingToUpdate) {
			return models.Order{}, err
		}

		log.Err(err).Str("func", "*orderRepository.ReviewOrder").Msg("error: building query")
		return models.Order{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*orderRepository.ReviewOrder").Msg("error: row is nil")
		return models.Order{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	order, err := scanOrder(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Order{}, ErrOrderNotFound
		}

		log.Err(err).Str("func", "*orderRepository.ReviewOrder").Msg("error: scanning error")
		return models.Order{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return order, nil
}

// scanOrder scans one orders row through the provided scan function,
// converting the nullable user_id, approved and revision_comment columns.
func scanOrder(scan func(dest ...any) error) (models.Order, error) {
	var order models.Order
	var userID sql.NullString
	var approved sql.NullBool
	var comment sql.NullString

	if err := scan(&order.ID, &userID, &order.Data, &approved, &comment, &order.CreatedAt); err != nil {
		return models.Order{}, err
	}

	if userID.Valid {
		order.UserID = userID.String
	}
	if approved.Valid {
		value := approved.Bool
		order.Approved = &value
	}
	if comment.Valid {
		order.RevisionComment = comment.String
	}

	return order, nil
}
