package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/konstrukt-app/konstrukt-be/internal/logger"
	"github.com/konstrukt-app/konstrukt-be/internal/store"
	"github.com/konstrukt-app/konstrukt-be/models"
)

// orderService is the concrete implementation of [OrderService].
type orderService struct {
	orders store.OrderRepository
	users  store.UserRepository

	logger *logger.Logger
}

// NewOrderService constructs an [OrderService] over the order and user
// repositories.
func NewOrderService(orders store.OrderRepository, users store.UserRepository, logger *logger.Logger) OrderService {
	logger.Debug().Msg("creating order service")
	return &orderService{
		orders: orders,
		users:  users,
		logger: logger,
	}
}

// ListOrders returns all orders, newest first, with submitter records
// joined in via one batch directory lookup. A failed batch lookup degrades
// to orders without user records rather than failing the listing.
func (s *orderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	log := logger.FromContext(ctx)

	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing orders: %w", err)
	}

	seen := make(map[string]struct{}, len(orders))
	userIDs := make([]string, 0, len(orders))
	for _, order := range orders {
		if order.UserID == "" {
			continue
		}
		if _, ok := seen[order.UserID]; ok {
			continue
		}
		seen[order.UserID] = struct{}{}
		userIDs = append(userIDs, order.UserID)
	}

	users, err := s.users.FindByIDs(ctx, userIDs)
	if err != nil {
		log.Err(err).Msg("error joining users into order listing")
		users = nil
	}

	usersByID := make(map[string]models.User, len(users))
	for _, user := range users {
		usersByID[user.ID] = user
	}

	for i := range orders {
		if user, ok := usersByID[orders[i].UserID]; ok {
			u := user
			orders[i].User = &u
		}
	}

	return orders, nil
}

// ReviewOrder validates and applies an admin verdict.
//
// Rules carried over from the review workflow: the order id is required, at
// least one of the verdict fields must be present, and sending an order back
// for revision (approved=false) demands a non-empty comment. Approval clears
// any stored comment.
func (s *orderService) ReviewOrder(ctx context.Context, review models.OrderReview) (models.Order, error) {
	if review.ID == "" {
		return models.Order{}, fmt.Errorf("%w: order id is required", ErrInvalidDataProvided)
	}
	if review.Approved == nil && review.RevisionComment == nil {
		return models.Order{}, fmt.Errorf("%w: approved or revision_comment is required", ErrInvalidDataProvided)
	}

	if review.RevisionComment != nil {
		trimmed := strings.TrimSpace(*review.RevisionComment)
		review.RevisionComment = &trimmed
	}

	if review.Approved != nil && !*review.Approved {
		if review.RevisionComment == nil || *review.RevisionComment == "" {
			return models.Order{}, ErrCommentRequired
		}
	}

	order, err := s.orders.ReviewOrder(ctx, review)
	if err != nil {
		return models.Order{}, fmt.Errorf("error reviewing order: %w", err)
	}

	return order, nil
}
