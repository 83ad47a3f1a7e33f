package apiclient

import (
	"context"
	"fmt"
	"net/http"
)

// CreateForumRequest is the admin create-forum body. UserID is the
// creating admin, taken from the live session.
type CreateForumRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	UserID      int64  `json:"userId"`
}

// UpdateForumRequest carries the mutable forum fields.
type UpdateForumRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (c *Client) ListForums(ctx context.Context) ([]Forum, error) {
	return listOf[Forum](c, ctx, "/forums")
}

func (c *Client) GetForum(ctx context.Context, id int64) (*Forum, error) {
	var forum Forum
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/forums/%d", id), nil, &forum); err != nil {
		return nil, err
	}
	return &forum, nil
}

func (c *Client) CreateForum(ctx context.Context, req CreateForumRequest) (*Forum, error) {
	var forum Forum
	if err := c.do(ctx, http.MethodPost, "/forums", req, &forum); err != nil {
		return nil, err
	}
	return &forum, nil
}

func (c *Client) UpdateForum(ctx context.Context, id int64, req UpdateForumRequest) (*Forum, error) {
	var forum Forum
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/forums/%d", id), req, &forum); err != nil {
		return nil, err
	}
	return &forum, nil
}

func (c *Client) DeleteForum(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/forums/%d", id), nil, nil)
}
