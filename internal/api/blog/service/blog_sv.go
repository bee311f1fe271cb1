package blogService

import (
	"html/template"
	"strings"

	blogs "Quickblog/internal/api/blog"
	"Quickblog/internal/entity"
	contextPkg "Quickblog/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// Home lists published blogs, filtered by a case-insensitive title search
// and an optional category name. Category chips only include categories
// with at least one blog in the current result.
func (s *blogsService) Home(search, categoryName string) blogs.HomeView {
	allCategories := s.cache.Categories()

	var matched []entity.Blog
	for _, b := range s.cache.Blogs() {
		if !b.Published {
			continue
		}
		if !strings.Contains(strings.ToLower(b.Title), strings.ToLower(search)) {
			continue
		}
		matched = append(matched, b)
	}

	var chips []entity.Category
	for _, c := range allCategories {
		for _, b := range matched {
			if b.Category == c.ID {
				chips = append(chips, c)
				break
			}
		}
	}

	var cards []blogs.BlogCard
	for _, b := range matched {
		name := s.categoryName(b.Category)
		if categoryName != "" && !strings.EqualFold(name, categoryName) {
			continue
		}
		cards = append(cards, blogs.BlogCard{Blog: b, CategoryName: name})
	}

	return blogs.HomeView{
		Blogs:          cards,
		Categories:     chips,
		Search:         search,
		ActiveCategory: categoryName,
	}
}

// BlogBySlug resolves a detail page from the cache. The stored content is
// author-supplied HTML; it is sanitized again here so nothing unvetted
// reaches the rendered page even if it slipped into the remote store.
func (s *blogsService) BlogBySlug(slug string) (blogs.BlogDetailView, error) {
	blog, ok := s.cache.BlogBySlug(slug)
	if !ok {
		return blogs.BlogDetailView{}, blogs.ErrBlogNotFound
	}

	return blogs.BlogDetailView{
		Blog:         blog,
		CategoryName: s.categoryName(blog.Category),
		Content:      template.HTML(s.sanitizer.HTML(blog.Content)),
	}, nil
}

// Dashboard filters the cached collection down to what the current user may
// manage: admins see everything, anyone else only blogs whose author id
// matches their own. This is a client-side check; the remote API is not
// assumed to enforce it.
func (s *blogsService) Dashboard(user entity.User, search string) blogs.DashboardView {
	var viewable []entity.Blog
	for _, b := range s.cache.Blogs() {
		if !user.IsAdmin() && string(b.Author) != user.ID {
			continue
		}
		viewable = append(viewable, b)
	}

	published := 0
	for _, b := range viewable {
		if b.Published {
			published++
		}
	}

	var filtered []entity.Blog
	for _, b := range viewable {
		if strings.Contains(strings.ToLower(b.Title), strings.ToLower(search)) {
			filtered = append(filtered, b)
		}
	}

	return blogs.DashboardView{
		Blogs:     filtered,
		Total:     len(viewable),
		Published: published,
		Drafts:    len(viewable) - published,
		Search:    search,
	}
}

func (s *blogsService) DeleteBlog(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)

	if _, ok := s.cache.BlogByID(id); !ok {
		return blogs.ErrBlogNotFound
	}

	if err := s.api.DeleteBlog(c, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete blog")
		return blogs.ErrDeleteBlog
	}

	s.cache.RemoveBlog(id)
	return nil
}

// TogglePublish issues exactly one of the publish/unpublish endpoints based
// on the cached state, then flips the cached flag optimistically without
// reconciling against the server's stored value.
func (s *blogsService) TogglePublish(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)

	blog, ok := s.cache.BlogByID(id)
	if !ok {
		return blogs.ErrBlogNotFound
	}

	var err error
	if blog.Published {
		err = s.api.UnpublishBlog(c, id)
	} else {
		err = s.api.PublishBlog(c, id)
	}
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"published":  blog.Published,
			"error":      err.Error(),
		}).Error("Failed to toggle publish state")
		return blogs.ErrTogglePublish
	}

	s.cache.SetPublished(id, !blog.Published)
	return nil
}
