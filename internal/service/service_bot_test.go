package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/konstrukt-app/konstrukt-be/internal/config"
	"github.com/konstrukt-app/konstrukt-be/internal/logger"
	"github.com/konstrukt-app/konstrukt-be/internal/mock"
	"github.com/konstrukt-app/konstrukt-be/models"
)

const testWebhookURL = "https://konstrukt.example.com/api/webhook"

func newTestBotSvc(t *testing.T, ctrl *gomock.Controller) (BotService, *mock.MockTelegramClient) {
	t.Helper()
	mockTelegram := mock.NewMockTelegramClient(ctrl)

	cfg := &config.StructuredConfig{
		App: config.App{
			BotToken: testBotToken,
			BaseURL:  "https://konstrukt.example.com",
		},
	}

	return NewBotService(mockTelegram, cfg, logger.Nop()), mockTelegram
}

func TestHandleUpdate_StartCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTelegram := newTestBotSvc(t, ctrl)
	ctx := context.Background()

	mockTelegram.EXPECT().
		SendMessage(ctx, int64(1001), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, text string) error {
			assert.Contains(t, text, "Конструкт")
			return nil
		})

	err := svc.HandleUpdate(ctx, models.Update{
		Message: &models.Message{Text: " /start ", Chat: models.Chat{ID: 1001}},
	})
	require.NoError(t, err)
}

func TestHandleUpdate_OtherTextIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestBotSvc(t, ctrl)

	err := svc.HandleUpdate(context.Background(), models.Update{
		Message: &models.Message{Text: "hello", Chat: models.Chat{ID: 1001}},
	})
	require.NoError(t, err)
}

func TestHandleUpdate_NoMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestBotSvc(t, ctrl)

	require.NoError(t, svc.HandleUpdate(context.Background(), models.Update{UpdateID: 5}))
}

func TestHandleUpdate_SendFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTelegram := newTestBotSvc(t, ctrl)
	ctx := context.Background()

	sendErr := errors.New("telegram unreachable")
	mockTelegram.EXPECT().SendMessage(ctx, int64(1001), gomock.Any()).Return(sendErr)

	err := svc.HandleUpdate(ctx, models.Update{
		Message: &models.Message{Text: "/start", Chat: models.Chat{ID: 1001}},
	})
	assert.ErrorIs(t, err, sendErr)
}

func TestRegisterWebhook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTelegram := newTestBotSvc(t, ctrl)
	ctx := context.Background()

	mockTelegram.EXPECT().SetWebhook(ctx, testWebhookURL).Return(nil)

	url, err := svc.RegisterWebhook(ctx)
	require.NoError(t, err)
	assert.Equal(t, testWebhookURL, url)
}

func TestRegisterWebhook_NotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTelegram := mock.NewMockTelegramClient(ctrl)
	svc := NewBotService(mockTelegram, &config.StructuredConfig{}, logger.Nop())

	_, err := svc.RegisterWebhook(context.Background())
	assert.ErrorIs(t, err, ErrBotNotConfigured)
	assert.False(t, svc.Configured())
}

func TestEnsureWebhook_NoDrift(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTelegram := newTestBotSvc(t, ctrl)
	ctx := context.Background()

	mockTelegram.EXPECT().
		GetWebhookInfo(ctx).
		Return(models.WebhookInfo{URL: testWebhookURL}, nil)

	require.NoError(t, svc.EnsureWebhook(ctx))
}

func TestEnsureWebhook_Drift_Reregisters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTelegram := newTestBotSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockTelegram.EXPECT().
			GetWebhookInfo(ctx).
			Return(models.WebhookInfo{URL: "https://stale.example.com/api/webhook"}, nil),
		mockTelegram.EXPECT().SetWebhook(ctx, testWebhookURL).Return(nil),
	)

	require.NoError(t, svc.EnsureWebhook(ctx))
}

func TestEnsureWebhook_InfoFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTelegram := newTestBotSvc(t, ctrl)
	ctx := context.Background()

	infoErr := errors.New("telegram unreachable")
	mockTelegram.EXPECT().GetWebhookInfo(ctx).Return(models.WebhookInfo{}, infoErr)

	assert.ErrorIs(t, svc.EnsureWebhook(ctx), infoErr)
}
