// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/konstrukt-app/konstrukt-be/internal/logger"
	"github.com/konstrukt-app/konstrukt-be/internal/mock"
	"github.com/konstrukt-app/konstrukt-be/internal/service"
)

// testMocks bundles the per-interface service mocks backing one test server.
type testMocks struct {
	auth      *mock.MockAuthService
	orders    *mock.MockOrderService
	templates *mock.MockTemplateService
	media     *mock.MockMediaService
	bot       *mock.MockBotService
}

// newTestServer wires a full router on top of mocked services.
func newTestServer(t *testing.T, ctrl *gomock.Controller) (*httptest.Server, testMocks) {
	t.Helper()

	mocks := testMocks{
		auth:      mock.NewMockAuthService(ctrl),
		orders:    mock.NewMockOrderService(ctrl),
		templates: mock.NewMockTemplateService(ctrl),
		media:     mock.NewMockMediaService(ctrl),
		bot:       mock.NewMockBotService(ctrl),
	}

	services := &service.Services{
		AuthService:     mocks.auth,
		OrderService:    mocks.orders,
		TemplateService: mocks.templates,
		MediaService:    mocks.media,
		BotService:      mocks.bot,
	}

	handler := NewHandler(services, logger.Nop())
	srv := httptest.NewServer(handler.Init())
	t.Cleanup(srv.Close)

	return srv, mocks
}
