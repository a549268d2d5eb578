package service

import (
	"context"

	"github.com/konstrukt-app/konstrukt-be/internal/auth"
	"github.com/konstrukt-app/konstrukt-be/internal/config"
	"github.com/konstrukt-app/konstrukt-be/internal/logger"
	"github.com/konstrukt-app/konstrukt-be/internal/store"
	"github.com/konstrukt-app/konstrukt-be/models"
)

// authService is the concrete implementation of [AuthService].
//
// It composes the two independent credential verifiers from the auth package
// with read-only lookups against the user directory. The bot token is an
// explicit dependency injected at construction; an empty token makes every
// verification fail closed without preventing startup.
type authService struct {
	// users is the read-only user directory.
	users store.UserRepository

	// botToken is the shared bot secret, root key for both verifiers.
	botToken string

	logger *logger.Logger
}

// NewAuthService constructs the identity and authorization core.
func NewAuthService(users store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	logger.Debug().Msg("creating auth service")
	return &authService{
		users:    users,
		botToken: cfg.BotToken,
		logger:   logger,
	}
}

// ResolveIdentity establishes the canonical (userId, telegramId) pair for
// one request.
//
// The Telegram side is proven by the initData signature, the application
// side by the session token signature; each proof fills its own field. A
// field left unproven is then reconciled with at most one directory lookup
// keyed on the proven one. Directory failures of any kind degrade to "no
// match" — the result simply keeps the field empty.
func (s *authService) ResolveIdentity(ctx context.Context, creds models.CredentialBundle) models.Identity {
	log := logger.FromContext(ctx)

	var identity models.Identity

	if creds.InitData != "" && auth.VerifyInitData(creds.InitData, s.botToken) {
		if tgUser, ok := auth.ExtractTelegramUser(creds.InitData); ok {
			identity.TelegramID = tgUser.ID
		}
	}

	if creds.BearerToken != "" {
		identity.UserID = auth.VerifySessionToken(creds.BearerToken, s.botToken)
	}

	if identity.UserID == "" && identity.TelegramID != 0 {
		user, err := s.users.FindByTelegramID(ctx, identity.TelegramID)
		if err != nil {
			log.Debug().Int64("telegram_id", identity.TelegramID).Msg("no directory record for telegram id")
		} else {
			identity.UserID = user.ID
		}
	}

	if identity.UserID != "" && identity.TelegramID == 0 {
		user, err := s.users.FindByID(ctx, identity.UserID)
		if err != nil {
			log.Debug().Str("user_id", identity.UserID).Msg("no directory record for user id")
		} else {
			identity.TelegramID = user.TelegramID
		}
	}

	return identity
}

// IsAdmin reports whether the user with the given id carries the
// administrator flag. Fail-closed: an empty id skips the lookup entirely,
// and a failed lookup or missing record is false.
func (s *authService) IsAdmin(ctx context.Context, userID string) bool {
	if userID == "" {
		return false
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return false
	}

	return user.Administrator
}

// RequireAdmin runs the composite gate: resolve first, then authorize.
//
// The ordering is significant — the privilege check never runs against an
// unresolved identity, and callers can distinguish "not authenticated"
// ([ErrUnauthenticated]) from "authenticated but not allowed"
// ([ErrForbidden]). The partially resolved identity is returned alongside
// either error for request logging.
func (s *authService) RequireAdmin(ctx context.Context, creds models.CredentialBundle) (models.Identity, error) {
	identity := s.ResolveIdentity(ctx, creds)

	if identity.UserID == "" {
		return identity, ErrUnauthenticated
	}

	if !s.IsAdmin(ctx, identity.UserID) {
		return identity, ErrForbidden
	}

	return identity, nil
}
