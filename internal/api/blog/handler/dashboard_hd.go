package blogHandler

import (
	"time"

	"Quickblog/internal/middleware"
	contextPkg "Quickblog/pkg/context"
	"Quickblog/pkg/handlerUtil"
	"Quickblog/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *BlogsHandler) Dashboard(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	user, ok := middleware.UserFromCtx(ctx)
	if !ok {
		return errHandler.HandleUnauthorized(ctx, requestID)
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"user_id":    user.ID,
	}).Debug("Processing dashboard request")

	view := h.blogsService.Dashboard(user, ctx.Query("search"))

	return ctx.Render("dashboard", h.viewData(ctx, fiber.Map{
		"View": view,
	}), "layouts/main")
}

func (h *BlogsHandler) TogglePublish(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"id":         id,
	}).Debug("Processing publish toggle request")

	if err := h.blogsService.TogglePublish(c, id); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "toggle_publish")
	}

	return ctx.Redirect("/dashboard", fiber.StatusFound)
}

func (h *BlogsHandler) DeleteBlog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"id":         id,
	}).Debug("Processing delete blog request")

	if err := h.blogsService.DeleteBlog(c, id); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_blog")
	}

	return ctx.Redirect("/dashboard", fiber.StatusFound)
}
