package models

import "time"

const MaxCommentLength = 200

type Comment struct {
	ID            string    `json:"_id"`
	PostID        string    `json:"postId"`
	UserID        string    `json:"userId"`
	Content       string    `json:"content"`
	Likes         []string  `json:"likes"`
	NumberOfLikes int       `json:"numberOfLikes"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type NewComment struct {
	PostID  string `json:"postId"`
	UserID  string `json:"userId"`
	Content string `json:"content"`
}

type CommentList struct {
	Comments          []Comment `json:"comments"`
	TotalComments     int       `json:"totalComments"`
	LastMonthComments int       `json:"lastMonthComments"`
}
