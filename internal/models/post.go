package models

import "time"

const (
	DefaultPostImage = "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcTEbJ98lSmCfnL6i6ne8O8yRG5xOh8n8Ohv7g&s"
	DefaultCategory  = "uncategorized"
)

type Post struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Slug      string    `json:"slug"`
	Image     string    `json:"image"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewPost is a create payload. Image and Category are optional; when absent
// the defaults above are applied.
type NewPost struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	Image    *string `json:"image,omitempty"`
	Category *string `json:"category,omitempty"`
}

type PostPatch struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Image    *string `json:"image,omitempty"`
	Category *string `json:"category,omitempty"`
}

type PostFilter struct {
	UserID     string
	Category   string
	Slug       string
	PostID     string
	SearchTerm string
	Page
}

type PostList struct {
	Posts          []Post `json:"posts"`
	TotalPosts     int    `json:"totalPosts"`
	LastMonthPosts int    `json:"lastMonthPosts"`
}
