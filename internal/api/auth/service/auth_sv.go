package authService

import (
	"errors"
	"time"

	"Quickblog/internal/api/auth"
	"Quickblog/internal/entity"
	contextPkg "Quickblog/pkg/context"
	"Quickblog/pkg/quickblog"
	"Quickblog/pkg/sessionstore"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// Sessions are only housekept server-side; the client never tracks token
// expiry, so the TTL exists to keep abandoned sessions from accumulating.
const sessionTTL = 24 * time.Hour

func (s *authService) Login(c context.Context, req auth.LoginRequest) (string, entity.User, error) {
	requestID := contextPkg.GetRequestID(c)

	session, err := s.api.Login(c, quickblog.LoginPayload{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Login rejected by API")
		return "", entity.User{}, auth.ErrLoginFailed
	}

	return s.persistSession(c, session)
}

func (s *authService) Signup(c context.Context, req auth.SignupRequest) (string, entity.User, error) {
	requestID := contextPkg.GetRequestID(c)

	session, err := s.api.Signup(c, quickblog.SignupPayload{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Signup rejected by API")
		// The signup failure keeps the server-supplied message; the caller
		// decides how much of it to show.
		return "", entity.User{}, err
	}

	return s.persistSession(c, session)
}

// persistSession normalizes the returned user and writes the two session
// entries. Login and signup share it because they are identical past the
// endpoint call.
func (s *authService) persistSession(c context.Context, session entity.Session) (string, entity.User, error) {
	requestID := contextPkg.GetRequestID(c)

	user := session.User.Normalize()

	serialized, err := jsoniter.Marshal(user)
	if err != nil {
		return "", entity.User{}, err
	}

	sessionID := uuid.NewString()

	if err := s.sessions.SetEntry(c, sessionID, sessionstore.EntryToken, session.Token, sessionTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to persist session token")
		return "", entity.User{}, err
	}

	if err := s.sessions.SetEntry(c, sessionID, sessionstore.EntryUser, string(serialized), sessionTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to persist session user")
		return "", entity.User{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    user.ID,
	}).Info("Session created")

	return sessionID, user, nil
}

// Logout removes both persisted entries. Logging out an already-ended
// session is a no-op.
func (s *authService) Logout(c context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	if err := s.sessions.ClearSession(c, sessionID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"error":      err.Error(),
		}).Error("Failed to clear session")
		return err
	}

	return nil
}

// Resolve rehydrates the session synchronously from the store. There is no
// network round-trip to validate the token, and a stored user that no
// longer parses is treated as unauthenticated rather than surfaced as a
// runtime failure.
func (s *authService) Resolve(c context.Context, sessionID string) (entity.User, string, error) {
	token, err := s.sessions.GetEntry(c, sessionID, sessionstore.EntryToken)
	if err != nil {
		if errors.Is(err, sessionstore.ErrEntryNotFound) {
			return entity.User{}, "", auth.ErrSessionNotFound
		}
		return entity.User{}, "", err
	}

	serialized, err := s.sessions.GetEntry(c, sessionID, sessionstore.EntryUser)
	if err != nil {
		if errors.Is(err, sessionstore.ErrEntryNotFound) {
			return entity.User{}, "", auth.ErrSessionNotFound
		}
		return entity.User{}, "", err
	}

	var user entity.User
	if err := jsoniter.Unmarshal([]byte(serialized), &user); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Malformed persisted session user, treating as unauthenticated")
		return entity.User{}, "", auth.ErrSessionNotFound
	}

	return user.Normalize(), token, nil
}
