package db

import (
	"context"
	"strings"
	"time"

	"blogapi/internal/models"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const userColumns = "id, username, email, password_hash, profile_picture, is_admin, created_at, updated_at"

func scanUser(row rowScanner) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.ProfilePicture,
		&user.IsAdmin,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser inserts user, filling in its id, timestamps and default profile
// picture.
func (db *DB) CreateUser(ctx context.Context, user *models.User) error {
	now := db.Clock.NowUtc()
	user.ID = uuid.NewString()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.ProfilePicture == "" {
		user.ProfilePicture = models.DefaultProfilePicture
	}

	query := "INSERT INTO users (" + userColumns + ") VALUES (?, ?, ?, ?, ?, ?, ?, ?)"
	_, err := db.exec(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash,
		user.ProfilePicture, user.IsAdmin, user.CreatedAt, user.UpdatedAt)
	return translate(err, "creating user failed")
}

func (db *DB) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	row := db.queryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", id)
	user, err := scanUser(row)
	if err != nil {
		return nil, translate(err, "getting user failed")
	}
	return user, nil
}

func (db *DB) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	row := db.queryRow(ctx, "SELECT "+userColumns+" FROM users WHERE email = ?", email)
	user, err := scanUser(row)
	if err != nil {
		return nil, translate(err, "getting user by email failed")
	}
	return user, nil
}

func (db *DB) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	row := db.queryRow(ctx, "SELECT "+userColumns+" FROM users WHERE username = ?", username)
	user, err := scanUser(row)
	if err != nil {
		return nil, translate(err, "getting user by username failed")
	}
	return user, nil
}

// UpdateUser sets only the supplied columns in a single statement and returns
// the stored record. changes.Password must already be hashed.
func (db *DB) UpdateUser(ctx context.Context, id string, changes models.UserChanges) (*models.User, error) {
	sets := []string{}
	args := []any{}
	add := func(column string, value *string) {
		if value != nil {
			sets = append(sets, column+" = ?")
			args = append(args, *value)
		}
	}
	add("username", changes.Username)
	add("email", changes.Email)
	add("password_hash", changes.Password)
	add("profile_picture", changes.ProfilePicture)

	sets = append(sets, "updated_at = ?")
	args = append(args, db.Clock.NowUtc(), id)

	query := "UPDATE users SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	res, err := db.exec(ctx, query, args...)
	if err != nil {
		return nil, translate(err, "updating user failed")
	}
	if err := requireAffected(res, "updating user failed"); err != nil {
		return nil, err
	}
	return db.GetUserByID(ctx, id)
}

func (db *DB) SetAdmin(ctx context.Context, id string, isAdmin bool) error {
	res, err := db.exec(ctx, "UPDATE users SET is_admin = ?, updated_at = ? WHERE id = ?",
		isAdmin, db.Clock.NowUtc(), id)
	if err != nil {
		return translate(err, "setting admin flag failed")
	}
	return requireAffected(res, "setting admin flag failed")
}

func (db *DB) DeleteUser(ctx context.Context, id string) error {
	res, err := db.exec(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return translate(err, "deleting user failed")
	}
	return requireAffected(res, "deleting user failed")
}

// ListUsers returns one page of users ordered by creation time.
func (db *DB) ListUsers(ctx context.Context, page models.Page) ([]models.User, error) {
	dir := orderDirection(page.Ascending)
	query := "SELECT " + userColumns + " FROM users ORDER BY created_at " + dir + ", id " + dir + " LIMIT ? OFFSET ?"

	rows, err := db.query(ctx, query, page.Limit, page.StartIndex)
	if err != nil {
		return nil, errors.Wrap(err, "listing users failed")
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scanning user failed")
		}
		users = append(users, *user)
	}
	return users, errors.Wrap(rows.Err(), "listing users failed")
}

// CountUsers counts users created at or after since. A zero since counts all.
func (db *DB) CountUsers(ctx context.Context, since time.Time) (int, error) {
	if since.IsZero() {
		n, err := db.count(ctx, "SELECT COUNT(*) FROM users")
		return n, errors.Wrap(err, "counting users failed")
	}
	n, err := db.count(ctx, "SELECT COUNT(*) FROM users WHERE created_at >= ?", since.UTC())
	return n, errors.Wrap(err, "counting users failed")
}
