package blogHandler

import (
	"errors"
	"time"

	blogs "Quickblog/internal/api/blog"
	"Quickblog/internal/middleware"
	contextPkg "Quickblog/pkg/context"
	"Quickblog/pkg/handlerUtil"
	"Quickblog/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

// AddBlogPage serves the authoring form: blank in create mode, backfilled
// from the cache when the route carries a blog id.
func (h *BlogsHandler) AddBlogPage(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")

	form := blogs.BlogForm{}
	if id != "" {
		var err error
		form, err = h.blogsService.BlogForm(id)
		if err != nil {
			return errHandler.Handle(ctx, requestID, err, ctx.Path(), "add_blog_page")
		}
	}

	return ctx.Render("addblogs", h.viewData(ctx, fiber.Map{
		"ID":   id,
		"Form": form,
	}), "layouts/main")
}

func (h *BlogsHandler) SaveBlog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	user, ok := middleware.UserFromCtx(ctx)
	if !ok {
		return errHandler.HandleUnauthorized(ctx, requestID)
	}

	id := ctx.Params("id")

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"id":         id,
		"user_id":    user.ID,
	}).Debug("Processing save blog request")

	var form blogs.BlogForm
	if err := ctx.BodyParser(&form); err != nil {
		return h.renderFormError(ctx, id, form, "Please fill all fields!")
	}

	if err := h.validator.Struct(form); err != nil {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Blog form validation failed")
		return h.renderFormError(ctx, id, form, "Please fill all fields!")
	}

	if err := h.blogsService.SaveBlog(c, id, form, user); err != nil {
		if errors.Is(err, blogs.ErrMissingFields) || errors.Is(err, blogs.ErrInvalidImage) {
			return h.renderFormError(ctx, id, form, "Please fill all fields!")
		}
		// Every other failing step collapses to one generic banner.
		return h.renderFormError(ctx, id, form, "Action failed.")
	}

	return ctx.Redirect("/dashboard", fiber.StatusFound)
}

func (h *BlogsHandler) renderFormError(ctx *fiber.Ctx, id string, form blogs.BlogForm, message string) error {
	return ctx.Status(fiber.StatusBadRequest).Render("addblogs", h.viewData(ctx, fiber.Map{
		"ID":    id,
		"Form":  form,
		"Error": message,
	}), "layouts/main")
}
