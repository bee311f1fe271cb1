package quickblog

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"Quickblog/internal/entity"
	contextPkg "Quickblog/pkg/context"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// IQuickblog is the remote QuickBlog REST API, one method per endpoint.
// Calls are single-shot: no retry, no backoff. A bearer token present in
// the request context is attached; otherwise the call goes out anonymous.
type IQuickblog interface {
	Signup(ctx context.Context, payload SignupPayload) (entity.Session, error)
	Login(ctx context.Context, payload LoginPayload) (entity.Session, error)

	ListBlogs(ctx context.Context) ([]entity.Blog, error)
	CreateBlog(ctx context.Context, blog entity.Blog) (entity.Blog, error)
	UpdateBlog(ctx context.Context, id string, blog entity.Blog) (entity.Blog, error)
	DeleteBlog(ctx context.Context, id string) error
	PublishBlog(ctx context.Context, id string) error
	UnpublishBlog(ctx context.Context, id string) error

	ListCategories(ctx context.Context) ([]entity.Category, error)
	CreateCategory(ctx context.Context, name string) (entity.Category, error)
}

type client struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger
}

func New(log *logrus.Logger) IQuickblog {
	baseURL := strings.TrimRight(os.Getenv("QUICKBLOG_API_URL"), "/")
	if baseURL == "" {
		baseURL = "http://localhost:2009"
	}

	return &client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

// do issues one JSON request and decodes the response into out when out is
// non-nil. It returns the HTTP status together with the raw body so callers
// that extract server-supplied messages can do so.
func (c *client) do(ctx context.Context, method, path string, body interface{}, out interface{}) (int, []byte, error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := jsoniter.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := contextPkg.GetSessionToken(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"method":     method,
			"path":       path,
			"error":      err.Error(),
		}).Error("QuickBlog API request failed")
		return 0, nil, err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return res.StatusCode, nil, err
	}

	if out != nil && res.StatusCode >= 200 && res.StatusCode < 300 && len(raw) > 0 {
		if err := jsoniter.Unmarshal(raw, out); err != nil {
			return res.StatusCode, raw, fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
		}
	}

	return res.StatusCode, raw, nil
}

func ok(status int) bool {
	return status >= 200 && status < 300
}
