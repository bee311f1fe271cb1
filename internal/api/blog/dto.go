package blogs

import (
	"html/template"

	"Quickblog/internal/entity"
)

// BlogForm carries the authoring fields of the AddBlogs page. Every field
// is required before publish; there are no length or format limits beyond
// that, matching the platform's validation contract.
type BlogForm struct {
	Title        string `form:"title" validate:"required"`
	Description  string `form:"description" validate:"required"`
	CategoryName string `form:"categoryName" validate:"required"`
	Image        string `form:"image" validate:"required"`
	Content      string `form:"content" validate:"required"`
}

// BlogCard is a list entry with the category reference denormalized back
// to a display name ("General" when the reference dangles).
type BlogCard struct {
	entity.Blog
	CategoryName string
}

type HomeView struct {
	Blogs          []BlogCard
	Categories     []entity.Category
	Search         string
	ActiveCategory string
}

type BlogDetailView struct {
	Blog         entity.Blog
	CategoryName string
	Content      template.HTML
}

type DashboardView struct {
	Blogs     []entity.Blog
	Total     int
	Published int
	Drafts    int
	Search    string
}
