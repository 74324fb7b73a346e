package service

import (
	"context"

	"blogapi/internal/db"
	"blogapi/internal/models"
	"blogapi/internal/policy"
	"blogapi/internal/util"
)

const commentNotFound = "Comment not found"

type Comments struct {
	db *db.DB
}

func NewComments(db *db.DB) *Comments {
	return &Comments{db: db}
}

func (s *Comments) Create(ctx context.Context, id models.Identity, in models.NewComment) (*models.Comment, error) {
	comment, err := policy.CreateComment(id, in)
	if err != nil {
		return nil, err
	}
	if err := s.db.CreateComment(ctx, comment); err != nil {
		return nil, storeError(err, commentNotFound, "Comment already exists")
	}
	return comment, nil
}

// ForPost lists the comments of one post, newest first.
func (s *Comments) ForPost(ctx context.Context, postID string, page models.Page) ([]models.Comment, error) {
	comments, err := s.db.ListComments(ctx, postID, policy.NormalizePage(page))
	return comments, storeError(err, "", "")
}

func (s *Comments) Like(ctx context.Context, id models.Identity, commentID string) (*models.Comment, error) {
	existing, err := s.db.GetComment(ctx, commentID)
	if err := missingOK(err); err != nil {
		return nil, err
	}
	if err := policy.LikeComment(id, existing); err != nil {
		return nil, err
	}
	comment, err := s.db.ToggleLike(ctx, commentID, id.ID)
	return comment, storeError(err, commentNotFound, "")
}

func (s *Comments) Edit(ctx context.Context, id models.Identity, commentID, content string) (*models.Comment, error) {
	existing, err := s.db.GetComment(ctx, commentID)
	if err := missingOK(err); err != nil {
		return nil, err
	}
	content, err = policy.EditComment(id, existing, content)
	if err != nil {
		return nil, err
	}
	comment, err := s.db.UpdateCommentContent(ctx, commentID, content)
	return comment, storeError(err, commentNotFound, "")
}

func (s *Comments) Delete(ctx context.Context, id models.Identity, commentID string) error {
	existing, err := s.db.GetComment(ctx, commentID)
	if err := missingOK(err); err != nil {
		return err
	}
	if err := policy.DeleteComment(id, existing); err != nil {
		return err
	}
	return storeError(s.db.DeleteComment(ctx, commentID), commentNotFound, "")
}

// List is the admin view over every comment with overall and trailing month
// counts.
func (s *Comments) List(ctx context.Context, id models.Identity, page models.Page) (*models.CommentList, error) {
	if err := policy.ListComments(id); err != nil {
		return nil, err
	}
	comments, err := s.db.ListComments(ctx, "", policy.NormalizePage(page))
	if err != nil {
		return nil, storeError(err, "", "")
	}
	total, err := s.db.CountComments(ctx, zeroTime)
	if err != nil {
		return nil, storeError(err, "", "")
	}
	lastMonth, err := s.db.CountComments(ctx, util.OneMonthAgo(s.db.Clock.NowUtc()))
	if err != nil {
		return nil, storeError(err, "", "")
	}
	return &models.CommentList{Comments: comments, TotalComments: total, LastMonthComments: lastMonth}, nil
}
