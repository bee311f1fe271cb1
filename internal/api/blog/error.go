package blogs

import "Quickblog/pkg/response"

var (
	ErrBlogNotFound   = response.NewError(404, "blog not found")
	ErrMissingFields  = response.NewError(400, "please fill all fields")
	ErrInvalidImage   = response.NewError(400, "invalid blog image")
	ErrCreateCategory = response.NewError(500, "failed to create category")
	ErrSaveBlog       = response.NewError(500, "failed to save blog")
	ErrDeleteBlog     = response.NewError(500, "failed to delete blog")
	ErrTogglePublish  = response.NewError(500, "failed to change publish state")
)
