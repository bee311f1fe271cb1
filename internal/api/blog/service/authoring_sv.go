package blogService

import (
	blogs "Quickblog/internal/api/blog"
	"Quickblog/internal/entity"
	contextPkg "Quickblog/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// BlogForm backfills the authoring form for edit mode from the cache (not a
// fresh fetch), denormalizing the category id back to its display name.
func (s *blogsService) BlogForm(id string) (blogs.BlogForm, error) {
	blog, ok := s.cache.BlogByID(id)
	if !ok {
		return blogs.BlogForm{}, blogs.ErrBlogNotFound
	}

	categoryName := ""
	if category, ok := s.cache.CategoryByID(blog.Category); ok {
		categoryName = category.Name
	}

	return blogs.BlogForm{
		Title:        blog.Title,
		Description:  blog.Description,
		CategoryName: categoryName,
		Image:        blog.Image,
		Content:      blog.Content,
	}, nil
}

// SaveBlog runs the publish workflow: required-field validation, category
// resolution (reuse on a case-insensitive name match, create otherwise),
// sanitization of the editor HTML, then create or update depending on
// whether an id was supplied. The cache is patched with the result; the
// server is not re-queried.
func (s *blogsService) SaveBlog(c context.Context, id string, form blogs.BlogForm, user entity.User) error {
	requestID := contextPkg.GetRequestID(c)

	if form.Title == "" || form.Description == "" || form.CategoryName == "" ||
		form.Image == "" || form.Content == "" {
		return blogs.ErrMissingFields
	}

	if err := s.utils.ValidateImageRef(form.Image); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Rejected blog image")
		return blogs.ErrInvalidImage
	}

	categoryID, err := s.resolveCategory(c, form.CategoryName)
	if err != nil {
		return err
	}

	payload := entity.Blog{
		Title:       form.Title,
		Description: form.Description,
		Content:     s.sanitizer.HTML(form.Content),
		Image:       form.Image,
		Category:    categoryID,
		Slug:        s.utils.Slug(form.Title),
		Published:   true,
		Author:      entity.AuthorRef(user.ID),
	}

	if id != "" {
		updated, err := s.api.UpdateBlog(c, id, payload)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to update blog")
			return blogs.ErrSaveBlog
		}
		s.cache.ReplaceBlog(id, updated)
		return nil
	}

	created, err := s.api.CreateBlog(c, payload)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create blog")
		return blogs.ErrSaveBlog
	}
	s.cache.AppendBlog(created)

	return nil
}

// resolveCategory reuses a cached category on a case-insensitive exact name
// match, and only creates one server-side when nothing matches. A created
// category is appended to the cache before its id is attached to the blog.
func (s *blogsService) resolveCategory(c context.Context, name string) (string, error) {
	if existing, ok := s.cache.CategoryByName(name); ok {
		return existing.ID, nil
	}

	created, err := s.api.CreateCategory(c, name)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"category":   name,
			"error":      err.Error(),
		}).Error("Failed to create category")
		return "", blogs.ErrCreateCategory
	}

	s.cache.AppendCategory(created)
	return created.ID, nil
}
