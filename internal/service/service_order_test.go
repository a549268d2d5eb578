package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/konstrukt-app/konstrukt-be/internal/logger"
	"github.com/konstrukt-app/konstrukt-be/internal/mock"
	"github.com/konstrukt-app/konstrukt-be/internal/store"
	"github.com/konstrukt-app/konstrukt-be/models"
)

func newTestOrderSvc(t *testing.T, ctrl *gomock.Controller) (OrderService, *mock.MockOrderRepository, *mock.MockUserRepository) {
	t.Helper()
	mockOrders := mock.NewMockOrderRepository(ctrl)
	mockUsers := mock.NewMockUserRepository(ctrl)

	svc := NewOrderService(mockOrders, mockUsers, logger.Nop())

	return svc, mockOrders, mockUsers
}

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestListOrders_JoinsUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockOrders, mockUsers := newTestOrderSvc(t, ctrl)
	ctx := context.Background()

	orders := []models.Order{
		{ID: "o1", UserID: "u1"},
		{ID: "o2", UserID: "u2"},
		{ID: "o3", UserID: "u1"}, // duplicate submitter
		{ID: "o4"},               // anonymous order
	}

	mockOrders.EXPECT().ListOrders(ctx).Return(orders, nil)
	mockUsers.EXPECT().
		FindByIDs(ctx, []string{"u1", "u2"}).
		Return([]models.User{
			{ID: "u1", FirstName: "Ivan"},
			{ID: "u2", FirstName: "Olga"},
		}, nil)

	got, err := svc.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, got, 4)

	require.NotNil(t, got[0].User)
	assert.Equal(t, "Ivan", got[0].User.FirstName)
	require.NotNil(t, got[2].User)
	assert.Equal(t, "Ivan", got[2].User.FirstName)
	assert.Nil(t, got[3].User)
}

func TestListOrders_UserJoinFailure_Degrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockOrders, mockUsers := newTestOrderSvc(t, ctrl)
	ctx := context.Background()

	mockOrders.EXPECT().ListOrders(ctx).Return([]models.Order{{ID: "o1", UserID: "u1"}}, nil)
	mockUsers.EXPECT().FindByIDs(ctx, []string{"u1"}).Return(nil, store.ErrExecutingQuery)

	got, err := svc.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].User)
}

func TestListOrders_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockOrders, _ := newTestOrderSvc(t, ctrl)
	ctx := context.Background()

	mockOrders.EXPECT().ListOrders(ctx).Return(nil, store.ErrExecutingQuery)

	_, err := svc.ListOrders(ctx)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestReviewOrder_Approve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockOrders, _ := newTestOrderSvc(t, ctrl)
	ctx := context.Background()

	review := models.OrderReview{ID: "o1", Approved: boolPtr(true)}
	mockOrders.EXPECT().
		ReviewOrder(ctx, review).
		Return(models.Order{ID: "o1", Approved: boolPtr(true)}, nil)

	order, err := svc.ReviewOrder(ctx, review)
	require.NoError(t, err)
	assert.Equal(t, "o1", order.ID)
}

func TestReviewOrder_MissingID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestOrderSvc(t, ctrl)

	_, err := svc.ReviewOrder(context.Background(), models.OrderReview{Approved: boolPtr(true)})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestReviewOrder_NoVerdictFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestOrderSvc(t, ctrl)

	_, err := svc.ReviewOrder(context.Background(), models.OrderReview{ID: "o1"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestReviewOrder_RevisionWithoutComment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestOrderSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.ReviewOrder(ctx, models.OrderReview{ID: "o1", Approved: boolPtr(false)})
	assert.ErrorIs(t, err, ErrCommentRequired)

	// whitespace-only comments count as empty
	_, err = svc.ReviewOrder(ctx, models.OrderReview{
		ID:              "o1",
		Approved:        boolPtr(false),
		RevisionComment: strPtr("   "),
	})
	assert.ErrorIs(t, err, ErrCommentRequired)
}

func TestReviewOrder_RevisionWithComment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockOrders, _ := newTestOrderSvc(t, ctrl)
	ctx := context.Background()

	mockOrders.EXPECT().
		ReviewOrder(ctx, models.OrderReview{
			ID:              "o1",
			Approved:        boolPtr(false),
			RevisionComment: strPtr("переделать шапку"),
		}).
		Return(models.Order{ID: "o1", Approved: boolPtr(false), RevisionComment: "переделать шапку"}, nil)

	order, err := svc.ReviewOrder(ctx, models.OrderReview{
		ID:              "o1",
		Approved:        boolPtr(false),
		RevisionComment: strPtr("  переделать шапку  "),
	})
	require.NoError(t, err)
	assert.Equal(t, "переделать шапку", order.RevisionComment)
}

func TestReviewOrder_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockOrders, _ := newTestOrderSvc(t, ctrl)
	ctx := context.Background()

	mockOrders.EXPECT().
		ReviewOrder(ctx, gomock.Any()).
		Return(models.Order{}, store.ErrOrderNotFound)

	_, err := svc.ReviewOrder(ctx, models.OrderReview{ID: "missing", Approved: boolPtr(true)})
	assert.ErrorIs(t, err, store.ErrOrderNotFound)
}
