package authService

import (
	"Quickblog/internal/api/auth"
	"Quickblog/internal/entity"
	"Quickblog/pkg/quickblog"
	"Quickblog/pkg/sessionstore"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// IAuthService is the auth session manager: the sole source of truth for
// whether a user is authenticated. Login and Signup are behaviorally
// identical once the remote API has answered; they differ only in which
// endpoint produced the response.
type IAuthService interface {
	Login(ctx context.Context, req auth.LoginRequest) (string, entity.User, error)
	Signup(ctx context.Context, req auth.SignupRequest) (string, entity.User, error)
	Logout(ctx context.Context, sessionID string) error
	Resolve(ctx context.Context, sessionID string) (entity.User, string, error)
}

type authService struct {
	log      *logrus.Logger
	api      quickblog.IQuickblog
	sessions sessionstore.ISessionStore
}

func New(
	log *logrus.Logger,
	api quickblog.IQuickblog,
	sessions sessionstore.ISessionStore,
) IAuthService {
	return &authService{
		log:      log,
		api:      api,
		sessions: sessions,
	}
}
