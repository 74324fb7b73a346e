package service

import (
	"context"

	"blogapi/internal/db"
	"blogapi/internal/models"
	"blogapi/internal/policy"
	"blogapi/internal/util"
)

const duplicatePost = "A post with this title already exists"

type Posts struct {
	db *db.DB
}

func NewPosts(db *db.DB) *Posts {
	return &Posts{db: db}
}

func (s *Posts) Create(ctx context.Context, id models.Identity, in models.NewPost) (*models.Post, error) {
	post, err := policy.CreatePost(id, in)
	if err != nil {
		return nil, err
	}
	if err := s.db.CreatePost(ctx, post); err != nil {
		return nil, storeError(err, "Post not found", duplicatePost)
	}
	return post, nil
}

// Update applies patch to the post. ownerID comes from the route and is not
// used for authorization; the stored owner is.
func (s *Posts) Update(ctx context.Context, id models.Identity, postID string, patch models.PostPatch) (*models.Post, error) {
	existing, err := s.db.GetPost(ctx, postID)
	if err := missingOK(err); err != nil {
		return nil, err
	}
	post, err := policy.UpdatePost(id, existing, patch)
	if err != nil {
		return nil, err
	}
	if err := s.db.UpdatePost(ctx, post); err != nil {
		return nil, storeError(err, "Post not found", duplicatePost)
	}
	return post, nil
}

func (s *Posts) Delete(ctx context.Context, id models.Identity, postID, ownerID string) error {
	existing, err := s.db.GetPost(ctx, postID)
	if err := missingOK(err); err != nil {
		return err
	}
	if err := policy.DeletePost(id, existing, ownerID); err != nil {
		return err
	}
	return storeError(s.db.DeletePost(ctx, postID), "Post not found", duplicatePost)
}

// Find lists posts matching filter together with the overall and trailing
// month counts.
func (s *Posts) Find(ctx context.Context, filter models.PostFilter) (*models.PostList, error) {
	posts, err := s.db.FindPosts(ctx, policy.NormalizePostFilter(filter))
	if err != nil {
		return nil, storeError(err, "", "")
	}
	total, err := s.db.CountPosts(ctx, zeroTime)
	if err != nil {
		return nil, storeError(err, "", "")
	}
	lastMonth, err := s.db.CountPosts(ctx, util.OneMonthAgo(s.db.Clock.NowUtc()))
	if err != nil {
		return nil, storeError(err, "", "")
	}
	return &models.PostList{Posts: posts, TotalPosts: total, LastMonthPosts: lastMonth}, nil
}
