package apiclient

import (
	"context"
	"fmt"
	"net/http"
)

// CreateCategoryRequest is the admin create-category body.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	return listOf[Category](c, ctx, "/categories")
}

func (c *Client) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*Category, error) {
	var category Category
	if err := c.do(ctx, http.MethodPost, "/categories", req, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/categories/%d", id), nil, nil)
}
