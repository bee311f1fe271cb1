package quickblog

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	contextPkg "Quickblog/pkg/context"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

func testClient(t *testing.T, handler http.HandlerFunc) IQuickblog {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return &client{
		baseURL:    server.URL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		log:        logger,
	}
}

func TestSignupSurfacesServerMessage(t *testing.T) {
	api := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"User already exists"}`))
	})

	_, err := api.Signup(context.Background(), SignupPayload{Name: "Ana", Email: "ana@mail.com", Password: "secret123"})

	require.Error(t, err)
	assert.Equal(t, "User already exists", err.Error())
}

func TestSignupFallsBackToGenericMessage(t *testing.T) {
	api := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	})

	_, err := api.Signup(context.Background(), SignupPayload{})

	require.Error(t, err)
	assert.Equal(t, "failed to signup", err.Error())
}

func TestLoginFailureIsAlwaysGeneric(t *testing.T) {
	// Unlike signup, the login failure body is never inspected.
	api := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid credentials"}`))
	})

	_, err := api.Login(context.Background(), LoginPayload{Email: "ana@mail.com", Password: "wrong"})

	require.Error(t, err)
	assert.Equal(t, "failed to login", err.Error())
}

func TestLoginDecodesSession(t *testing.T) {
	api := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		w.Write([]byte(`{"token":"tok","user":{"id":"u1","name":"Ana","role":"author"}}`))
	})

	session, err := api.Login(context.Background(), LoginPayload{Email: "ana@mail.com", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "tok", session.Token)
	assert.Equal(t, "u1", session.User.Normalize().ID)
}

func TestPublishEndpoints(t *testing.T) {
	var method, path string
	api := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, api.PublishBlog(context.Background(), "b1"))
	assert.Equal(t, http.MethodPatch, method)
	assert.Equal(t, "/api/blogs/b1/publish", path)

	require.NoError(t, api.UnpublishBlog(context.Background(), "b1"))
	assert.Equal(t, http.MethodPatch, method)
	assert.Equal(t, "/api/blogs/b1/unpublish", path)
}

func TestCreateCategoryUnwrapsEnvelope(t *testing.T) {
	api := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/categories", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"category":{"_id":"c1","name":"Tech"}}`))
	})

	category, err := api.CreateCategory(context.Background(), "Tech")

	require.NoError(t, err)
	assert.Equal(t, "c1", category.ID)
	assert.Equal(t, "Tech", category.Name)
}

func TestBearerTokenAttachment(t *testing.T) {
	var authHeader string
	api := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	})

	_, err := api.ListBlogs(contextPkg.WithSessionToken(context.Background(), "tok"))
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok", authHeader)

	// Without a session the call goes out anonymous.
	_, err = api.ListBlogs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, authHeader)
}

func TestDeleteBlogFailure(t *testing.T) {
	api := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := api.DeleteBlog(context.Background(), "b1")

	require.Error(t, err)
	assert.Equal(t, "failed to delete blog", err.Error())
}
