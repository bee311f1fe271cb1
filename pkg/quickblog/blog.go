package quickblog

import (
	"errors"
	"net/http"

	"Quickblog/internal/entity"

	"golang.org/x/net/context"
)

func (c *client) ListBlogs(ctx context.Context) ([]entity.Blog, error) {
	var blogs []entity.Blog

	status, _, err := c.do(ctx, http.MethodGet, "/api/blogs", nil, &blogs)
	if err != nil {
		return nil, err
	}
	if !ok(status) {
		return nil, errors.New("failed to fetch blogs")
	}

	return blogs, nil
}

func (c *client) CreateBlog(ctx context.Context, blog entity.Blog) (entity.Blog, error) {
	var created entity.Blog

	status, _, err := c.do(ctx, http.MethodPost, "/api/blogs", blog, &created)
	if err != nil {
		return entity.Blog{}, err
	}
	if !ok(status) {
		return entity.Blog{}, errors.New("failed to create blog")
	}

	return created, nil
}

func (c *client) UpdateBlog(ctx context.Context, id string, blog entity.Blog) (entity.Blog, error) {
	var updated entity.Blog

	status, _, err := c.do(ctx, http.MethodPut, "/api/blogs/"+id, blog, &updated)
	if err != nil {
		return entity.Blog{}, err
	}
	if !ok(status) {
		return entity.Blog{}, errors.New("failed to update blog")
	}

	return updated, nil
}

func (c *client) DeleteBlog(ctx context.Context, id string) error {
	status, _, err := c.do(ctx, http.MethodDelete, "/api/blogs/"+id, nil, nil)
	if err != nil {
		return err
	}
	if !ok(status) {
		return errors.New("failed to delete blog")
	}

	return nil
}

func (c *client) PublishBlog(ctx context.Context, id string) error {
	status, _, err := c.do(ctx, http.MethodPatch, "/api/blogs/"+id+"/publish", nil, nil)
	if err != nil {
		return err
	}
	if !ok(status) {
		return errors.New("failed to publish blog")
	}

	return nil
}

func (c *client) UnpublishBlog(ctx context.Context, id string) error {
	status, _, err := c.do(ctx, http.MethodPatch, "/api/blogs/"+id+"/unpublish", nil, nil)
	if err != nil {
		return err
	}
	if !ok(status) {
		return errors.New("failed to unpublish blog")
	}

	return nil
}
