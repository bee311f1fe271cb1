package quickblog

import (
	"errors"
	"net/http"

	"Quickblog/internal/entity"
	contextPkg "Quickblog/pkg/context"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// Signup creates an account. On a non-2xx response the server-supplied
// message is surfaced when one is present; this is the only endpoint whose
// failure body is inspected.
func (c *client) Signup(ctx context.Context, payload SignupPayload) (entity.Session, error) {
	var session entity.Session

	status, raw, err := c.do(ctx, http.MethodPost, "/api/auth/signup", payload, &session)
	if err != nil {
		return entity.Session{}, err
	}

	if !ok(status) {
		var body signupErrorBody
		if decodeErr := jsoniter.Unmarshal(raw, &body); decodeErr == nil && body.Message != "" {
			return entity.Session{}, errors.New(body.Message)
		}
		return entity.Session{}, errors.New("failed to signup")
	}

	c.log.WithFields(logrus.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
	}).Debug("Signup succeeded")

	return session, nil
}

func (c *client) Login(ctx context.Context, payload LoginPayload) (entity.Session, error) {
	var session entity.Session

	status, _, err := c.do(ctx, http.MethodPost, "/api/auth/login", payload, &session)
	if err != nil {
		return entity.Session{}, err
	}

	if !ok(status) {
		return entity.Session{}, errors.New("failed to login")
	}

	return session, nil
}
