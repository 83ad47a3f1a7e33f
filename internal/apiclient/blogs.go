package apiclient

import (
	"context"
	"fmt"
	"net/http"
)

// CreateBlogRequest carries the fields a new blog needs. UserID is always
// the live session's id, never the stored echo.
type CreateBlogRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	UserID     int64  `json:"userId"`
	ForumID    int64  `json:"forumId"`
	CategoryID int64  `json:"categoryId"`
}

// UpdateBlogRequest carries the mutable blog fields.
type UpdateBlogRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (c *Client) ListBlogs(ctx context.Context) ([]Blog, error) {
	return listOf[Blog](c, ctx, "/blogs")
}

// ListBlogsByForum filters the full blog list client side; the backend
// has no per-forum listing endpoint.
func (c *Client) ListBlogsByForum(ctx context.Context, forumID int64) ([]Blog, error) {
	blogs, err := c.ListBlogs(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]Blog, 0, len(blogs))
	for _, b := range blogs {
		if b.ForumID == forumID {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

func (c *Client) GetBlog(ctx context.Context, id int64) (*Blog, error) {
	var blog Blog
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/blogs/%d", id), nil, &blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

func (c *Client) CreateBlog(ctx context.Context, req CreateBlogRequest) (*Blog, error) {
	var blog Blog
	if err := c.do(ctx, http.MethodPost, "/blogs", req, &blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

func (c *Client) UpdateBlog(ctx context.Context, id int64, req UpdateBlogRequest) (*Blog, error) {
	var blog Blog
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/blogs/%d", id), req, &blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

func (c *Client) DeleteBlog(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/blogs/%d", id), nil, nil)
}
