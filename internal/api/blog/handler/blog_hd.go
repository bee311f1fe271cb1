package blogHandler

import (
	"Quickblog/pkg/handlerUtil"
	"Quickblog/pkg/log"

	"github.com/gofiber/fiber/v2"
)

func (h *BlogsHandler) Home(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing home page request")

	view := h.blogsService.Home(ctx.Query("search"), ctx.Query("category"))

	return ctx.Render("home", h.viewData(ctx, fiber.Map{
		"View": view,
	}), "layouts/main")
}

func (h *BlogsHandler) BlogDetails(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	slug := ctx.Params("slug")

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"slug":       slug,
	}).Debug("Processing blog details request")

	view, err := h.blogsService.BlogBySlug(slug)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "blog_details")
	}

	return ctx.Render("blogdetails", h.viewData(ctx, fiber.Map{
		"View": view,
	}), "layouts/main")
}
