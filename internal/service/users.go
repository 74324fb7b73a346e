package service

import (
	"context"

	"blogapi/internal/apperr"
	"blogapi/internal/db"
	"blogapi/internal/models"
	"blogapi/internal/policy"
	"blogapi/internal/security"
	"blogapi/internal/util"
)

const duplicateUser = "Username or email already taken"

type Users struct {
	db *db.DB
}

func NewUsers(db *db.DB) *Users {
	return &Users{db: db}
}

func (s *Users) SignUp(ctx context.Context, in models.NewUser) (*models.User, error) {
	if err := policy.SignUp(in); err != nil {
		return nil, err
	}
	hash, err := security.HashPassword(in.Password)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "Internal Server Error")
	}

	user := &models.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
	}
	if err := s.db.CreateUser(ctx, user); err != nil {
		return nil, storeError(err, "User not found", duplicateUser)
	}
	return sanitize(user), nil
}

// SignIn returns the user whose email and password match.
func (s *Users) SignIn(ctx context.Context, in models.Credentials) (*models.User, error) {
	if err := policy.SignIn(in); err != nil {
		return nil, err
	}
	user, err := s.db.GetUserByEmail(ctx, in.Email)
	if err != nil {
		return nil, storeError(err, "User not found", duplicateUser)
	}
	if !security.ComparePasswords(user.PasswordHash, in.Password) {
		return nil, apperr.NewBadRequest("Invalid password")
	}
	return sanitize(user), nil
}

// Identify resolves a session user id into the caller identity.
func (s *Users) Identify(ctx context.Context, userID string) (models.Identity, error) {
	user, err := s.db.GetUserByID(ctx, userID)
	if err != nil {
		return models.Identity{}, storeError(err, "User not found", duplicateUser)
	}
	return models.Identity{ID: user.ID, IsAdmin: user.IsAdmin}, nil
}

func (s *Users) Get(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.db.GetUserByID(ctx, userID)
	if err != nil {
		return nil, storeError(err, "User not found", duplicateUser)
	}
	return sanitize(user), nil
}

// Update applies patch to the caller's own account. A supplied password is
// stored only as its bcrypt hash.
func (s *Users) Update(ctx context.Context, id models.Identity, userID string, patch models.UserPatch) (*models.User, error) {
	changes, err := policy.UpdateUser(id, userID, patch)
	if err != nil {
		return nil, err
	}
	if changes.Password != nil {
		hash, err := security.HashPassword(*changes.Password)
		if err != nil {
			return nil, apperr.Wrap(apperr.Internal, err, "Internal Server Error")
		}
		changes.Password = &hash
	}
	if changes.Empty() {
		return s.Get(ctx, userID)
	}

	user, err := s.db.UpdateUser(ctx, userID, changes)
	if err != nil {
		return nil, storeError(err, "User not found", duplicateUser)
	}
	return sanitize(user), nil
}

func (s *Users) Delete(ctx context.Context, id models.Identity, userID string) error {
	if err := policy.DeleteUser(id, userID); err != nil {
		return err
	}
	return storeError(s.db.DeleteUser(ctx, userID), "User not found", duplicateUser)
}

// List returns a page of users for the admin directory.
func (s *Users) List(ctx context.Context, id models.Identity, page models.Page) (*models.UserList, error) {
	if err := policy.ListUsers(id); err != nil {
		return nil, err
	}
	users, err := s.db.ListUsers(ctx, policy.NormalizePage(page))
	if err != nil {
		return nil, storeError(err, "", "")
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	total, err := s.db.CountUsers(ctx, zeroTime)
	if err != nil {
		return nil, storeError(err, "", "")
	}
	lastMonth, err := s.db.CountUsers(ctx, util.OneMonthAgo(s.db.Clock.NowUtc()))
	if err != nil {
		return nil, storeError(err, "", "")
	}
	return &models.UserList{Users: users, TotalUsers: total, LastMonthUsers: lastMonth}, nil
}

// Promote sets the admin flag of the named user. It backs the CLI and is not
// reachable over HTTP.
func (s *Users) Promote(ctx context.Context, username string, isAdmin bool) (*models.User, error) {
	user, err := s.db.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, storeError(err, "User not found", duplicateUser)
	}
	if err := s.db.SetAdmin(ctx, user.ID, isAdmin); err != nil {
		return nil, storeError(err, "User not found", duplicateUser)
	}
	user.IsAdmin = isAdmin
	return sanitize(user), nil
}

func sanitize(user *models.User) *models.User {
	user.PasswordHash = ""
	return user
}
