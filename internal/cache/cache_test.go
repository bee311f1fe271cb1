package cache

import (
	"errors"
	"io"
	"testing"

	"Quickblog/internal/entity"
	"Quickblog/pkg/quickblog"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

// fakeAPI only serves the two list endpoints Warm touches.
type fakeAPI struct {
	blogs         []entity.Blog
	blogsErr      error
	categories    []entity.Category
	categoriesErr error
}

func (f *fakeAPI) ListBlogs(context.Context) ([]entity.Blog, error) {
	return f.blogs, f.blogsErr
}

func (f *fakeAPI) ListCategories(context.Context) ([]entity.Category, error) {
	return f.categories, f.categoriesErr
}

func (f *fakeAPI) Signup(context.Context, quickblog.SignupPayload) (entity.Session, error) {
	return entity.Session{}, nil
}

func (f *fakeAPI) Login(context.Context, quickblog.LoginPayload) (entity.Session, error) {
	return entity.Session{}, nil
}

func (f *fakeAPI) CreateBlog(context.Context, entity.Blog) (entity.Blog, error) {
	return entity.Blog{}, nil
}

func (f *fakeAPI) UpdateBlog(context.Context, string, entity.Blog) (entity.Blog, error) {
	return entity.Blog{}, nil
}

func (f *fakeAPI) DeleteBlog(context.Context, string) error    { return nil }
func (f *fakeAPI) PublishBlog(context.Context, string) error   { return nil }
func (f *fakeAPI) UnpublishBlog(context.Context, string) error { return nil }

func (f *fakeAPI) CreateCategory(context.Context, string) (entity.Category, error) {
	return entity.Category{}, nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestWarmPopulatesBothCollections(t *testing.T) {
	store := New(testLogger())
	api := &fakeAPI{
		blogs:      []entity.Blog{{ID: "b1"}, {ID: "b2"}},
		categories: []entity.Category{{ID: "c1", Name: "Tech"}},
	}

	store.Warm(context.Background(), api)

	assert.Len(t, store.Blogs(), 2)
	assert.Len(t, store.Categories(), 1)
}

func TestWarmFailuresAreIndependent(t *testing.T) {
	store := New(testLogger())
	api := &fakeAPI{
		blogsErr:   errors.New("network down"),
		categories: []entity.Category{{ID: "c1", Name: "Tech"}},
	}

	store.Warm(context.Background(), api)

	assert.Empty(t, store.Blogs())
	assert.Len(t, store.Categories(), 1)
}

func TestSnapshotsAreCopies(t *testing.T) {
	store := New(testLogger())
	store.SetBlogs([]entity.Blog{{ID: "b1", Title: "original"}})

	snapshot := store.Blogs()
	snapshot[0].Title = "mutated"

	fresh := store.Blogs()
	assert.Equal(t, "original", fresh[0].Title)
}

func TestReplaceBlogKeepsID(t *testing.T) {
	store := New(testLogger())
	store.SetBlogs([]entity.Blog{{ID: "b1", Title: "old"}})

	store.ReplaceBlog("b1", entity.Blog{ID: "server-assigned", Title: "new"})

	blog, ok := store.BlogByID("b1")
	require.True(t, ok)
	assert.Equal(t, "new", blog.Title)
}

func TestRemoveBlog(t *testing.T) {
	store := New(testLogger())
	store.SetBlogs([]entity.Blog{{ID: "b1"}, {ID: "b2"}})

	store.RemoveBlog("b1")

	assert.Len(t, store.Blogs(), 1)
	_, ok := store.BlogByID("b1")
	assert.False(t, ok)
}

func TestSetPublished(t *testing.T) {
	store := New(testLogger())
	store.SetBlogs([]entity.Blog{{ID: "b1", Published: false}})

	store.SetPublished("b1", true)

	blog, _ := store.BlogByID("b1")
	assert.True(t, blog.Published)
}

func TestCategoryByNameIsCaseInsensitive(t *testing.T) {
	store := New(testLogger())
	store.SetCategories([]entity.Category{{ID: "c1", Name: "tech"}})

	category, ok := store.CategoryByName("Tech")

	require.True(t, ok)
	assert.Equal(t, "c1", category.ID)
}

func TestBlogBySlug(t *testing.T) {
	store := New(testLogger())
	store.SetBlogs([]entity.Blog{{ID: "b1", Slug: "my-first-blog"}})

	blog, ok := store.BlogBySlug("my-first-blog")
	require.True(t, ok)
	assert.Equal(t, "b1", blog.ID)

	_, ok = store.BlogBySlug("missing")
	assert.False(t, ok)
}

func TestObserversRunAfterEveryMutation(t *testing.T) {
	store := New(testLogger())

	notified := 0
	store.Subscribe(func() { notified++ })

	store.SetBlogs(nil)
	store.AppendBlog(entity.Blog{ID: "b1"})
	store.SetPublished("b1", true)
	store.RemoveBlog("b1")

	assert.Equal(t, 4, notified)
}
