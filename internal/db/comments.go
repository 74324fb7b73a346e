package db

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"blogapi/internal/models"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const commentColumns = "id, post_id, user_id, content, created_at, updated_at"

func scanComment(row rowScanner) (*models.Comment, error) {
	c := &models.Comment{Likes: []string{}}
	err := row.Scan(&c.ID, &c.PostID, &c.UserID, &c.Content, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (db *DB) CreateComment(ctx context.Context, c *models.Comment) error {
	now := db.Clock.NowUtc()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.Likes == nil {
		c.Likes = []string{}
	}

	query := "INSERT INTO comments (" + commentColumns + ") VALUES (?, ?, ?, ?, ?, ?)"
	_, err := db.exec(ctx, query, c.ID, c.PostID, c.UserID, c.Content, c.CreatedAt, c.UpdatedAt)
	return translate(err, "creating comment failed")
}

func (db *DB) GetComment(ctx context.Context, id string) (*models.Comment, error) {
	row := db.queryRow(ctx, "SELECT "+commentColumns+" FROM comments WHERE id = ?", id)
	c, err := scanComment(row)
	if err != nil {
		return nil, translate(err, "getting comment failed")
	}
	comments := []models.Comment{*c}
	if err := db.loadLikes(ctx, comments); err != nil {
		return nil, err
	}
	return &comments[0], nil
}

func (db *DB) UpdateCommentContent(ctx context.Context, id, content string) (*models.Comment, error) {
	res, err := db.exec(ctx, "UPDATE comments SET content = ?, updated_at = ? WHERE id = ?",
		content, db.Clock.NowUtc(), id)
	if err != nil {
		return nil, translate(err, "updating comment failed")
	}
	if err := requireAffected(res, "updating comment failed"); err != nil {
		return nil, err
	}
	return db.GetComment(ctx, id)
}

// ToggleLike adds userID to the comment's likes, or removes it when it is
// already there.
func (db *DB) ToggleLike(ctx context.Context, commentID, userID string) (*models.Comment, error) {
	err := db.inTx(ctx, func(tx *sql.Tx) error {
		now := db.Clock.NowUtc()
		res, err := tx.ExecContext(ctx,
			db.rebind("DELETE FROM comment_likes WHERE comment_id = ? AND user_id = ?"), commentID, userID)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err != nil {
			return err
		} else if n == 0 {
			_, err = tx.ExecContext(ctx,
				db.rebind("INSERT INTO comment_likes (comment_id, user_id, created_at) VALUES (?, ?, ?)"),
				commentID, userID, now)
			if err != nil {
				return err
			}
		}
		res, err = tx.ExecContext(ctx, db.rebind("UPDATE comments SET updated_at = ? WHERE id = ?"), now, commentID)
		if err != nil {
			return err
		}
		return requireAffected(res, "comment missing")
	})
	if err != nil {
		return nil, translate(err, "toggling like failed")
	}
	return db.GetComment(ctx, commentID)
}

// DeleteComment removes the comment together with its likes.
func (db *DB) DeleteComment(ctx context.Context, id string) error {
	err := db.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, db.rebind("DELETE FROM comment_likes WHERE comment_id = ?"), id); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, db.rebind("DELETE FROM comments WHERE id = ?"), id)
		if err != nil {
			return err
		}
		return requireAffected(res, "comment missing")
	})
	return translate(err, "deleting comment failed")
}

// ListComments returns a page of comments, newest first unless page.Ascending.
// An empty postID lists comments across all posts.
func (db *DB) ListComments(ctx context.Context, postID string, page models.Page) ([]models.Comment, error) {
	query := "SELECT " + commentColumns + " FROM comments"
	args := []any{}
	if postID != "" {
		query += " WHERE post_id = ?"
		args = append(args, postID)
	}
	dir := orderDirection(page.Ascending)
	query += " ORDER BY created_at " + dir + ", id " + dir + " LIMIT ? OFFSET ?"
	args = append(args, page.Limit, page.StartIndex)

	rows, err := db.query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "listing comments failed")
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scanning comment failed")
		}
		comments = append(comments, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "listing comments failed")
	}

	if err := db.loadLikes(ctx, comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (db *DB) CountComments(ctx context.Context, since time.Time) (int, error) {
	if since.IsZero() {
		n, err := db.count(ctx, "SELECT COUNT(*) FROM comments")
		return n, errors.Wrap(err, "counting comments failed")
	}
	n, err := db.count(ctx, "SELECT COUNT(*) FROM comments WHERE created_at >= ?", since.UTC())
	return n, errors.Wrap(err, "counting comments failed")
}

func (db *DB) loadLikes(ctx context.Context, comments []models.Comment) error {
	if len(comments) == 0 {
		return nil
	}

	index := make(map[string]int, len(comments))
	args := make([]any, 0, len(comments))
	for i := range comments {
		index[comments[i].ID] = i
		args = append(args, comments[i].ID)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(args)), ", ")

	rows, err := db.query(ctx,
		"SELECT comment_id, user_id FROM comment_likes WHERE comment_id IN ("+placeholders+") ORDER BY created_at, user_id",
		args...)
	if err != nil {
		return errors.Wrap(err, "loading likes failed")
	}
	defer rows.Close()

	for rows.Next() {
		var commentID, userID string
		if err := rows.Scan(&commentID, &userID); err != nil {
			return errors.Wrap(err, "scanning like failed")
		}
		c := &comments[index[commentID]]
		c.Likes = append(c.Likes, userID)
	}
	for i := range comments {
		comments[i].NumberOfLikes = len(comments[i].Likes)
	}
	return errors.Wrap(rows.Err(), "loading likes failed")
}

func (db *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
