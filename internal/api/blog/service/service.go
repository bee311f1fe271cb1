package blogService

import (
	blogs "Quickblog/internal/api/blog"
	"Quickblog/internal/cache"
	"Quickblog/internal/entity"
	"Quickblog/pkg/quickblog"
	"Quickblog/pkg/sanitize"
	"Quickblog/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IBlogsService interface {
	Home(search, categoryName string) blogs.HomeView
	BlogBySlug(slug string) (blogs.BlogDetailView, error)
	Dashboard(user entity.User, search string) blogs.DashboardView
	BlogForm(id string) (blogs.BlogForm, error)
	SaveBlog(ctx context.Context, id string, form blogs.BlogForm, user entity.User) error
	DeleteBlog(ctx context.Context, id string) error
	TogglePublish(ctx context.Context, id string) error
}

type blogsService struct {
	log       *logrus.Logger
	api       quickblog.IQuickblog
	cache     *cache.Store
	sanitizer sanitize.ISanitizer
	utils     utils.IUtils
}

func New(
	log *logrus.Logger,
	api quickblog.IQuickblog,
	store *cache.Store,
	sanitizer sanitize.ISanitizer,
	utils utils.IUtils,
) IBlogsService {
	return &blogsService{
		log:       log,
		api:       api,
		cache:     store,
		sanitizer: sanitizer,
		utils:     utils,
	}
}

// categoryName denormalizes a category reference for display. A dangling
// reference (the category was deleted out from under a cached blog) shows
// as General until the next full reload.
func (s *blogsService) categoryName(id string) string {
	if category, ok := s.cache.CategoryByID(id); ok {
		return category.Name
	}
	return "General"
}
