package blogHandler

import (
	blogsService "Quickblog/internal/api/blog/service"
	"Quickblog/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BlogsHandler struct {
	log          *logrus.Logger
	validator    *validator.Validate
	middleware   middleware.Middleware
	blogsService blogsService.IBlogsService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	bs blogsService.IBlogsService,
) *BlogsHandler {
	return &BlogsHandler{
		log:          log,
		validator:    validate,
		middleware:   middleware,
		blogsService: bs,
	}
}

func (h *BlogsHandler) Start(srv fiber.Router) {
	// Public listing
	srv.Get("/", h.Home)

	// Detail pages are gated like the dashboard; the route table inherits
	// this from the platform's navigation contract.
	srv.Get("/blog/:slug", h.middleware.RequireAuth, h.BlogDetails)

	// Dashboard subtree (requires auth)
	srv.Get("/dashboard", h.middleware.RequireAuth, h.Dashboard)
	srv.Post("/dashboard/:id/toggle", h.middleware.RequireAuth, h.TogglePublish)
	srv.Post("/dashboard/:id/delete", h.middleware.RequireAuth, h.DeleteBlog)

	// Authoring (requires auth); with an id the form edits, without it
	// creates.
	srv.Get("/addBlogs", h.middleware.RequireAuth, h.AddBlogPage)
	srv.Get("/addBlogs/:id", h.middleware.RequireAuth, h.AddBlogPage)
	srv.Post("/addBlogs", h.middleware.RequireAuth, h.SaveBlog)
	srv.Post("/addBlogs/:id", h.middleware.RequireAuth, h.SaveBlog)
}

// viewData decorates page data with the session user so the layout can
// render the header state.
func (h *BlogsHandler) viewData(ctx *fiber.Ctx, data fiber.Map) fiber.Map {
	if user, ok := middleware.UserFromCtx(ctx); ok {
		data["User"] = user
	}
	return data
}
