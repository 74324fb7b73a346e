package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapi/internal/apperr"
	"blogapi/internal/models"
)

var (
	admin  = models.Identity{ID: "admin-1", IsAdmin: true}
	author = models.Identity{ID: "author-1"}
	reader = models.Identity{ID: "reader-1"}
)

func strPtr(s string) *string { return &s }

func TestCreatePostRequiresAdmin(t *testing.T) {
	payloads := []models.NewPost{
		{Title: "A title", Content: "body"},
		{},
		{Title: "No content"},
	}
	for _, in := range payloads {
		_, err := CreatePost(author, in)
		require.Error(t, err)
		assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))
	}
}

func TestCreatePostMissingFields(t *testing.T) {
	for _, in := range []models.NewPost{
		{Title: "Only title"},
		{Content: "Only content"},
	} {
		_, err := CreatePost(admin, in)
		assert.True(t, apperr.Is(err, apperr.BadRequest))
		assert.Equal(t, "Please provide all required fields", apperr.Message(err))
	}
}

func TestCreatePostDefaults(t *testing.T) {
	post, err := CreatePost(admin, models.NewPost{
		Title:   "Hello, World! 2024",
		Content: "first post",
		Image:   strPtr("   "),
	})
	require.NoError(t, err)
	assert.Equal(t, "hello-world-2024", post.Slug)
	assert.Equal(t, admin.ID, post.UserID)
	assert.Equal(t, models.DefaultPostImage, post.Image)
	assert.Equal(t, models.DefaultCategory, post.Category)

	post, err = CreatePost(admin, models.NewPost{
		Title:    "With image",
		Content:  "body",
		Image:    strPtr("https://img.example/x.png"),
		Category: strPtr("golang"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://img.example/x.png", post.Image)
	assert.Equal(t, "golang", post.Category)
}

func existingPost() *models.Post {
	return &models.Post{
		ID:       "post-1",
		UserID:   author.ID,
		Title:    "Original Title",
		Content:  "original",
		Slug:     "original-title",
		Image:    models.DefaultPostImage,
		Category: "news",
	}
}

func TestUpdatePost(t *testing.T) {
	t.Run("missing post", func(t *testing.T) {
		_, err := UpdatePost(admin, nil, models.PostPatch{})
		assert.True(t, apperr.Is(err, apperr.NotFound))
	})

	t.Run("stranger", func(t *testing.T) {
		_, err := UpdatePost(reader, existingPost(), models.PostPatch{Content: strPtr("x")})
		assert.True(t, apperr.Is(err, apperr.Forbidden))
	})

	t.Run("owner keeps slug without title", func(t *testing.T) {
		existing := existingPost()
		updated, err := UpdatePost(author, existing, models.PostPatch{Content: strPtr("edited")})
		require.NoError(t, err)
		assert.Equal(t, "edited", updated.Content)
		assert.Equal(t, "original-title", updated.Slug)
		assert.Equal(t, "Original Title", updated.Title)
		assert.Equal(t, "news", updated.Category)
		assert.Equal(t, "original", existing.Content, "input must not be mutated")
	})

	t.Run("admin retitles", func(t *testing.T) {
		updated, err := UpdatePost(admin, existingPost(), models.PostPatch{Title: strPtr("Brand New Title!")})
		require.NoError(t, err)
		assert.Equal(t, "Brand New Title!", updated.Title)
		assert.Equal(t, "brand-new-title", updated.Slug)
	})

	t.Run("empty fields ignored", func(t *testing.T) {
		updated, err := UpdatePost(author, existingPost(), models.PostPatch{
			Title:    strPtr(""),
			Category: strPtr(""),
			Image:    strPtr(""),
		})
		require.NoError(t, err)
		assert.Equal(t, *existingPost(), *updated)
	})
}

func TestDeletePost(t *testing.T) {
	post := existingPost()

	err := DeletePost(author, post, author.ID)
	assert.True(t, apperr.Is(err, apperr.Forbidden), "owner without admin")

	err = DeletePost(reader, nil, author.ID)
	assert.True(t, apperr.Is(err, apperr.Forbidden), "admin check comes first")

	err = DeletePost(admin, nil, author.ID)
	assert.True(t, apperr.Is(err, apperr.NotFound))

	err = DeletePost(admin, post, reader.ID)
	assert.True(t, apperr.Is(err, apperr.Forbidden))
	assert.Equal(t, "Post does not belong to this user", apperr.Message(err))

	assert.NoError(t, DeletePost(admin, post, author.ID))
}

func TestNormalizePostFilter(t *testing.T) {
	f := NormalizePostFilter(models.PostFilter{Page: models.Page{StartIndex: -3}})
	assert.Equal(t, 0, f.StartIndex)
	assert.Equal(t, models.DefaultPageLimit, f.Limit)

	f = NormalizePostFilter(models.PostFilter{Page: models.Page{StartIndex: 9, Limit: 3}})
	assert.Equal(t, 9, f.StartIndex)
	assert.Equal(t, 3, f.Limit)
}
