package types

import "strings"

// User roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User credential bounds. Passwords are stored and compared in plaintext,
// matching the system this replaces; do not reuse this scheme elsewhere.
const (
	MinUsernameLen    = 5
	MinPasswordLen    = 6
	MinNewPasswordLen = 4
)

// User is an account row. Username is unique across the table.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Role     string `json:"role"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// ValidateUsername applies the sign-up username rules: no spaces, letters
// and digits only, at least MinUsernameLen characters.
func ValidateUsername(username string) error {
	if strings.ContainsAny(username, " \t") {
		return &ValidationError{Field: "username", Msg: "username cannot contain spaces"}
	}
	for _, r := range username {
		if !isAlphanumeric(r) {
			return &ValidationError{Field: "username", Msg: "username can only contain letters and numbers"}
		}
	}
	if len(username) < MinUsernameLen {
		return &ValidationError{Field: "username", Msg: "username must be at least 5 characters"}
	}
	return nil
}

// ValidatePassword applies the sign-up password rules: at least
// MinPasswordLen characters with an uppercase letter, a lowercase letter and
// a digit, and the username must not appear inside the password.
func ValidatePassword(username, password string) error {
	if len(password) < MinPasswordLen {
		return &ValidationError{Field: "password", Msg: "password must be at least 6 characters"}
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return &ValidationError{
			Field: "password",
			Msg:   "password must include at least 1 uppercase letter, 1 lowercase letter, and 1 number",
		}
	}
	if username != "" && strings.Contains(strings.ToLower(password), strings.ToLower(username)) {
		return &ValidationError{Field: "password", Msg: "password cannot contain your username"}
	}
	return nil
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
