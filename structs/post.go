package structs

import "time"

// Post is a board post.
type Post struct {
	ID             string    `json:"id"`
	BoardSlug      string    `json:"boardSlug"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	AuthorNickname string    `json:"authorNickname"`
	LikeCount      int       `json:"likeCount"`
	CommentCount   int       `json:"commentCount"`
	ViewCount      int       `json:"viewCount"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// PostBody post create/update form
type PostBody struct {
	Title   string `json:"title" validate:"required,min=1,max=100"`
	Content string `json:"content" validate:"required,min=1,max=20000"`
}

// LikeResult is the like toggle outcome.
type LikeResult struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}
