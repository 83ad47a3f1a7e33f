package apiclient

// User is the authenticated identity as returned by the backend. The same
// record backs the client-side session.
type User struct {
	ID        int64  `json:"id"`
	Role      string `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// FullName returns a display name, falling back to the email address when
// the profile has no name fields.
func (u *User) FullName() string {
	if u.FirstName != "" && u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}
	if u.FirstName != "" {
		return u.FirstName
	}
	return u.Email
}

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Profile is the registration request body. Role is optional; the backend
// defaults it when empty.
type Profile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role,omitempty"`
}

type Forum struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	UserIDs     []int64 `json:"userIds"`
	BlogIDs     []int64 `json:"blogsIds"`
}

type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Blog struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	AuthorID     int64  `json:"authorId"`
	AuthorName   string `json:"authorName"`
	ForumID      int64  `json:"forumId"`
	ForumTitle   string `json:"forumTitle"`
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	CreatedAt    string `json:"createdAt"`
}

type Comment struct {
	ID         int64  `json:"id"`
	Content    string `json:"content"`
	AuthorID   int64  `json:"authorId"`
	AuthorName string `json:"authorName"`
	BlogID     int64  `json:"blogId"`
	CreatedAt  string `json:"createdAt"`
}
