package db

import (
	"context"
	"strings"
	"time"

	"blogapi/internal/models"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const postColumns = "id, user_id, title, content, slug, image, category, created_at, updated_at"

func scanPost(row rowScanner) (*models.Post, error) {
	post := &models.Post{}
	err := row.Scan(
		&post.ID,
		&post.UserID,
		&post.Title,
		&post.Content,
		&post.Slug,
		&post.Image,
		&post.Category,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (db *DB) CreatePost(ctx context.Context, post *models.Post) error {
	now := db.Clock.NowUtc()
	post.ID = uuid.NewString()
	post.CreatedAt = now
	post.UpdatedAt = now

	query := "INSERT INTO posts (" + postColumns + ") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)"
	_, err := db.exec(ctx, query,
		post.ID, post.UserID, post.Title, post.Content, post.Slug,
		post.Image, post.Category, post.CreatedAt, post.UpdatedAt)
	return translate(err, "creating post failed")
}

func (db *DB) GetPost(ctx context.Context, id string) (*models.Post, error) {
	row := db.queryRow(ctx, "SELECT "+postColumns+" FROM posts WHERE id = ?", id)
	post, err := scanPost(row)
	if err != nil {
		return nil, translate(err, "getting post failed")
	}
	return post, nil
}

// UpdatePost writes the mutable fields of post and bumps its updatedAt.
func (db *DB) UpdatePost(ctx context.Context, post *models.Post) error {
	post.UpdatedAt = db.Clock.NowUtc()

	res, err := db.exec(ctx, `
		UPDATE posts
		SET title = ?, content = ?, slug = ?, image = ?, category = ?, updated_at = ?
		WHERE id = ?
	`, post.Title, post.Content, post.Slug, post.Image, post.Category, post.UpdatedAt, post.ID)
	if err != nil {
		return translate(err, "updating post failed")
	}
	return requireAffected(res, "updating post failed")
}

func (db *DB) DeletePost(ctx context.Context, id string) error {
	res, err := db.exec(ctx, "DELETE FROM posts WHERE id = ?", id)
	if err != nil {
		return translate(err, "deleting post failed")
	}
	return requireAffected(res, "deleting post failed")
}

// FindPosts returns the page of posts matching every non-empty filter field,
// ordered by updatedAt. SearchTerm matches title or content, ignoring case.
func (db *DB) FindPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	where := []string{}
	args := []any{}
	eq := func(column, value string) {
		if value != "" {
			where = append(where, column+" = ?")
			args = append(args, value)
		}
	}
	eq("user_id", filter.UserID)
	eq("category", filter.Category)
	eq("slug", filter.Slug)
	eq("id", filter.PostID)
	if filter.SearchTerm != "" {
		pattern := "%" + escapeLike(strings.ToLower(filter.SearchTerm)) + "%"
		where = append(where, `(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(content) LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern)
	}

	query := "SELECT " + postColumns + " FROM posts"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	dir := orderDirection(filter.Ascending)
	query += " ORDER BY updated_at " + dir + ", id " + dir + " LIMIT ? OFFSET ?"
	args = append(args, filter.Limit, filter.StartIndex)

	rows, err := db.query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "finding posts failed")
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scanning post failed")
		}
		posts = append(posts, *post)
	}
	return posts, errors.Wrap(rows.Err(), "finding posts failed")
}

// CountPosts counts posts created at or after since. A zero since counts all.
func (db *DB) CountPosts(ctx context.Context, since time.Time) (int, error) {
	if since.IsZero() {
		n, err := db.count(ctx, "SELECT COUNT(*) FROM posts")
		return n, errors.Wrap(err, "counting posts failed")
	}
	n, err := db.count(ctx, "SELECT COUNT(*) FROM posts WHERE created_at >= ?", since.UTC())
	return n, errors.Wrap(err, "counting posts failed")
}
