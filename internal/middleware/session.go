package middleware

import (
	"net/url"

	"Quickblog/internal/entity"
	contextPkg "Quickblog/pkg/context"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	SessionCookie = "quickblog_session"
	UserKey       = "user"
)

// NewSessionMiddleware resolves the session cookie on every request and,
// when it maps to a stored user, exposes the user and token via Locals.
// Resolution is synchronous against the session store only — the token is
// never validated with the remote API, so a stale or tampered stored user
// is trusted as-is until an API call fails.
func (m *middleware) NewSessionMiddleware(ctx *fiber.Ctx) error {
	sessionID := ctx.Cookies(SessionCookie)
	if sessionID == "" {
		return ctx.Next()
	}

	user, token, err := m.sessions.Resolve(contextPkg.FromFiberCtx(ctx), sessionID)
	if err != nil {
		// Fail closed: a missing or malformed session means unauthenticated,
		// not a server error.
		m.log.WithFields(logrus.Fields{
			"request_id": m.GetRequestID(ctx),
			"error":      err.Error(),
		}).Debug("Session did not resolve")
		return ctx.Next()
	}

	ctx.Locals(UserKey, user)
	ctx.Locals(contextPkg.SessionTokenKey, token)

	return ctx.Next()
}

// RequireAuth gates the dashboard subtree: unauthenticated requests are
// redirected to /login carrying the originally requested location so the
// login page can send the user back after success.
func (m *middleware) RequireAuth(ctx *fiber.Ctx) error {
	if _, ok := UserFromCtx(ctx); ok {
		return ctx.Next()
	}

	from := ctx.OriginalURL()
	return ctx.Redirect("/login?from="+url.QueryEscape(from), fiber.StatusFound)
}

// PreventAuth gates the login and signup pages: authenticated users are
// sent to the landing route.
func (m *middleware) PreventAuth(ctx *fiber.Ctx) error {
	if _, ok := UserFromCtx(ctx); ok {
		return ctx.Redirect("/", fiber.StatusFound)
	}
	return ctx.Next()
}

// UserFromCtx returns the session user placed by the session middleware.
func UserFromCtx(ctx *fiber.Ctx) (entity.User, bool) {
	user, ok := ctx.Locals(UserKey).(entity.User)
	return user, ok
}
