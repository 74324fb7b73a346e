package policy

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"blogapi/internal/apperr"
	"blogapi/internal/models"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

const (
	minPasswordLength = 6
	minUsernameLength = 7
	maxUsernameLength = 20
)

// UpdateUser validates a profile update. Only the account owner may update
// it; there is no admin override.
func UpdateUser(id models.Identity, targetID string, patch models.UserPatch) (models.UserChanges, error) {
	var changes models.UserChanges
	if id.ID != targetID {
		return changes, apperr.NewForbidden("You are not allowed to update this user")
	}

	if nonBlank(patch.Password) {
		if err := ValidatePassword(*patch.Password); err != nil {
			return changes, err
		}
		changes.Password = patch.Password
	}
	if nonBlank(patch.Username) {
		if err := ValidateUsername(*patch.Username); err != nil {
			return changes, err
		}
		changes.Username = patch.Username
	}
	if nonBlank(patch.Email) {
		changes.Email = patch.Email
	}
	if patch.ProfilePicture != nil && *patch.ProfilePicture != "" {
		changes.ProfilePicture = patch.ProfilePicture
	}
	return changes, nil
}

func DeleteUser(id models.Identity, targetID string) error {
	if !id.IsAdmin && id.ID != targetID {
		return apperr.NewForbidden("You are not allowed to delete this user")
	}
	return nil
}

func ListUsers(id models.Identity) error {
	if !id.IsAdmin {
		return apperr.NewForbidden("You are not allowed to see all users")
	}
	return nil
}

// SignUp checks a registration payload with the same username and password
// rules that apply to profile updates.
func SignUp(in models.NewUser) error {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return apperr.NewBadRequest("All fields are required")
	}
	if err := ValidatePassword(in.Password); err != nil {
		return err
	}
	return ValidateUsername(in.Username)
}

func SignIn(in models.Credentials) error {
	if in.Email == "" || in.Password == "" {
		return apperr.NewBadRequest("All fields are required")
	}
	return nil
}

func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return apperr.NewBadRequest("Password must be at least 6 characters")
	}
	if strings.IndexFunc(password, unicode.IsSpace) >= 0 {
		return apperr.NewBadRequest("Password should not contain spaces")
	}
	return nil
}

func ValidateUsername(username string) error {
	n := utf8.RuneCountInString(username)
	if n < minUsernameLength || n > maxUsernameLength {
		return apperr.NewBadRequest("Username must be between 7 and 20 characters")
	}
	if strings.Contains(username, " ") {
		return apperr.NewBadRequest("Username cannot contain spaces")
	}
	if username != strings.ToLower(username) {
		return apperr.NewBadRequest("Username must be lowercase")
	}
	if !usernamePattern.MatchString(username) {
		return apperr.NewBadRequest("Username can only contain letters and numbers")
	}
	return nil
}

func nonBlank(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}
