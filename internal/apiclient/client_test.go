package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		var creds Credentials
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "alice", creds.Username)
		assert.Equal(t, "secret", creds.Password)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":7,"role":"USER","firstName":"Alice"}`))
	}))
	defer server.Close()

	client := New(server.URL)
	user, err := client.Login(context.Background(), Credentials{Username: "alice", Password: "secret"})
	assert.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "USER", user.Role)
	assert.Equal(t, "Alice", user.FirstName)
}

func TestLoginRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Bad credentials"}`))
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.Login(context.Background(), Credentials{Username: "alice", Password: "wrong"})
	assert.Error(t, err)

	apiErr, ok := err.(*APIError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Bad credentials", apiErr.Message)
}

func TestCurrentUserUnauthenticated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/current", r.URL.Path)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.CurrentUser(context.Background())
	assert.True(t, IsUnauthorized(err))
}

func TestListForumsPaginatedEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forums", r.URL.Path)
		w.Write([]byte(`{"content":[{"id":1,"title":"General","userIds":[7],"blogsIds":[3,4]}],"page":0}`))
	}))
	defer server.Close()

	client := New(server.URL)
	forums, err := client.ListForums(context.Background())
	assert.NoError(t, err)
	assert.Len(t, forums, 1)
	assert.Equal(t, int64(1), forums[0].ID)
	assert.Equal(t, "General", forums[0].Title)
	assert.Len(t, forums[0].BlogIDs, 2)
}

func TestGetBlogNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"blog not found"}`))
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.GetBlog(context.Background(), 99)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "blog not found")
}

func TestListBlogsByForumFiltersClientSide(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/blogs", r.URL.Path)
		w.Write([]byte(`[
			{"id":1,"title":"a","forumId":5},
			{"id":2,"title":"b","forumId":6},
			{"id":3,"title":"c","forumId":5}
		]`))
	}))
	defer server.Close()

	client := New(server.URL)
	blogs, err := client.ListBlogsByForum(context.Background(), 5)
	assert.NoError(t, err)
	assert.Len(t, blogs, 2)
	assert.Equal(t, int64(1), blogs[0].ID)
	assert.Equal(t, int64(3), blogs[1].ID)
}

func TestCreateComment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/comments", r.URL.Path)

		var req CreateCommentRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(7), req.UserID)
		assert.Equal(t, int64(3), req.BlogID)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":11,"content":"nice","authorId":7,"authorName":"Alice","blogId":3}`))
	}))
	defer server.Close()

	client := New(server.URL)
	comment, err := client.CreateComment(context.Background(), CreateCommentRequest{
		Content: "nice", UserID: 7, BlogID: 3,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(11), comment.ID)
	assert.Equal(t, "Alice", comment.AuthorName)
}

func TestDeleteCategoryNoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/categories/4", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := New(server.URL)
	assert.NoError(t, client.DeleteCategory(context.Background(), 4))
}

func TestTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listens anymore

	client := New(server.URL)
	_, err := client.ListForums(context.Background())
	assert.Error(t, err)
	_, ok := err.(*APIError)
	assert.False(t, ok, "transport failures are not APIErrors")
}
