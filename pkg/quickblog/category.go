package quickblog

import (
	"errors"
	"net/http"

	"Quickblog/internal/entity"

	"golang.org/x/net/context"
)

func (c *client) ListCategories(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category

	status, _, err := c.do(ctx, http.MethodGet, "/api/categories", nil, &categories)
	if err != nil {
		return nil, err
	}
	if !ok(status) {
		return nil, errors.New("failed to fetch categories")
	}

	return categories, nil
}

func (c *client) CreateCategory(ctx context.Context, name string) (entity.Category, error) {
	var envelope categoryEnvelope

	payload := map[string]string{"name": name}

	status, _, err := c.do(ctx, http.MethodPost, "/api/categories", payload, &envelope)
	if err != nil {
		return entity.Category{}, err
	}
	if !ok(status) {
		return entity.Category{}, errors.New("failed to create category")
	}

	return entity.Category{
		ID:   envelope.Category.ID,
		Name: envelope.Category.Name,
	}, nil
}
