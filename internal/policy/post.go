// Package policy holds the authorization and payload validation rules for
// every mutation the API exposes. Functions here never touch the store.
package policy

import (
	"strings"

	"blogapi/internal/apperr"
	"blogapi/internal/models"
)

// CreatePost checks that id may publish and returns the post to insert.
// The admin check runs before any payload validation.
func CreatePost(id models.Identity, in models.NewPost) (*models.Post, error) {
	if !id.IsAdmin {
		return nil, apperr.NewForbidden("You are not allowed to create a post")
	}
	if in.Title == "" || in.Content == "" {
		return nil, apperr.NewBadRequest("Please provide all required fields")
	}

	post := &models.Post{
		UserID:   id.ID,
		Title:    in.Title,
		Content:  in.Content,
		Slug:     Slugify(in.Title),
		Image:    models.DefaultPostImage,
		Category: models.DefaultCategory,
	}
	if in.Image != nil && strings.TrimSpace(*in.Image) != "" {
		post.Image = *in.Image
	}
	if in.Category != nil && *in.Category != "" {
		post.Category = *in.Category
	}
	return post, nil
}

// UpdatePost merges patch into a copy of existing. A nil existing post means
// the lookup found nothing. Empty patch fields leave the stored value alone.
func UpdatePost(id models.Identity, existing *models.Post, patch models.PostPatch) (*models.Post, error) {
	if existing == nil {
		return nil, apperr.NewNotFound("Post not found")
	}
	if id.ID != existing.UserID && !id.IsAdmin {
		return nil, apperr.NewForbidden("You are not allowed to update this post")
	}

	updated := *existing
	if supplied(patch.Title) {
		updated.Title = *patch.Title
		updated.Slug = Slugify(*patch.Title)
	}
	if supplied(patch.Content) {
		updated.Content = *patch.Content
	}
	if supplied(patch.Category) {
		updated.Category = *patch.Category
	}
	if supplied(patch.Image) {
		updated.Image = *patch.Image
	}
	return &updated, nil
}

// DeletePost requires an admin and, on top of that, an ownerID matching the
// stored owner of the post.
func DeletePost(id models.Identity, existing *models.Post, ownerID string) error {
	if !id.IsAdmin {
		return apperr.NewForbidden("Only admins can delete posts")
	}
	if existing == nil {
		return apperr.NewNotFound("Post not found")
	}
	if existing.UserID != ownerID {
		return apperr.NewForbidden("Post does not belong to this user")
	}
	return nil
}

// NormalizePostFilter applies listing defaults.
func NormalizePostFilter(f models.PostFilter) models.PostFilter {
	f.Page = NormalizePage(f.Page)
	return f
}

func NormalizePage(p models.Page) models.Page {
	if p.StartIndex < 0 {
		p.StartIndex = 0
	}
	if p.Limit <= 0 {
		p.Limit = models.DefaultPageLimit
	}
	return p
}

func supplied(s *string) bool {
	return s != nil && *s != ""
}
