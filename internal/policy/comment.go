package policy

import (
	"strings"
	"unicode/utf8"

	"blogapi/internal/apperr"
	"blogapi/internal/models"
)

func CreateComment(id models.Identity, in models.NewComment) (*models.Comment, error) {
	if in.UserID != id.ID {
		return nil, apperr.NewForbidden("You are not allowed to create this comment")
	}
	if in.PostID == "" {
		return nil, apperr.NewBadRequest("Please provide all required fields")
	}
	content, err := validateCommentContent(in.Content)
	if err != nil {
		return nil, err
	}
	return &models.Comment{
		PostID:  in.PostID,
		UserID:  id.ID,
		Content: content,
		Likes:   []string{},
	}, nil
}

// EditComment returns the content to store for an edit by id.
func EditComment(id models.Identity, existing *models.Comment, content string) (string, error) {
	if err := ModifyComment(id, existing, "You are not allowed to edit this comment"); err != nil {
		return "", err
	}
	return validateCommentContent(content)
}

func DeleteComment(id models.Identity, existing *models.Comment) error {
	return ModifyComment(id, existing, "You are not allowed to delete this comment")
}

// ModifyComment is the shared owner-or-admin check for comment mutations.
func ModifyComment(id models.Identity, existing *models.Comment, deny string) error {
	if existing == nil {
		return apperr.NewNotFound("Comment not found")
	}
	if existing.UserID != id.ID && !id.IsAdmin {
		return apperr.NewForbidden(deny)
	}
	return nil
}

func LikeComment(id models.Identity, existing *models.Comment) error {
	if existing == nil {
		return apperr.NewNotFound("Comment not found")
	}
	if id.ID == "" {
		return apperr.NewUnauthorized("Unauthorized")
	}
	return nil
}

func ListComments(id models.Identity) error {
	if !id.IsAdmin {
		return apperr.NewForbidden("You are not allowed to get all comments")
	}
	return nil
}

func validateCommentContent(content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", apperr.NewBadRequest("Comment cannot be empty")
	}
	if utf8.RuneCountInString(content) > models.MaxCommentLength {
		return "", apperr.NewBadRequest("Comment must be at most 200 characters")
	}
	return content, nil
}
