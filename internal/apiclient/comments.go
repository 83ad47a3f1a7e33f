package apiclient

import (
	"context"
	"fmt"
	"net/http"
)

// CreateCommentRequest attaches a comment to one blog. UserID is the live
// session's id.
type CreateCommentRequest struct {
	Content string `json:"content"`
	UserID  int64  `json:"userId"`
	BlogID  int64  `json:"blogId"`
}

func (c *Client) ListCommentsByBlog(ctx context.Context, blogID int64) ([]Comment, error) {
	return listOf[Comment](c, ctx, fmt.Sprintf("/comments/blog/%d", blogID))
}

func (c *Client) CreateComment(ctx context.Context, req CreateCommentRequest) (*Comment, error) {
	var comment Comment
	if err := c.do(ctx, http.MethodPost, "/comments", req, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *Client) DeleteComment(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/comments/%d", id), nil, nil)
}
