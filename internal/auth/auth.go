// Package auth implements sign-up, login, logout, and the password change
// flow on top of the store, the session marker, and the auth event bus.
package auth

import (
	"github.com/dukaforge/storefront/internal/session"
	"github.com/dukaforge/storefront/internal/sqlite"
	"github.com/dukaforge/storefront/pkg/types"
)

// Service wires the store, the session manager, and the event bus into the
// auth flows the screens call.
type Service struct {
	store    *sqlite.Store
	sessions *session.Manager
	bus      *Bus
}

// NewService creates an auth Service.
func NewService(store *sqlite.Store, sessions *session.Manager, bus *Bus) *Service {
	return &Service{store: store, sessions: sessions, bus: bus}
}

// SignUp validates the credentials, checks for a duplicate username, and
// inserts the account. Validation runs before any store call; the duplicate
// check produces ErrDuplicateUsername instead of leaking the
// unique-constraint failure. Role defaults to the regular user role.
func (s *Service) SignUp(username, password, role string) error {
	if err := types.ValidateUsername(username); err != nil {
		return err
	}
	if err := types.ValidatePassword(username, password); err != nil {
		return err
	}
	if role == "" {
		role = types.RoleUser
	}
	if role != types.RoleAdmin && role != types.RoleUser {
		return &types.ValidationError{Field: "role", Msg: "role must be admin or user"}
	}

	exists, err := s.store.UserExists(username)
	if err != nil {
		return err
	}
	if exists {
		return types.ErrDuplicateUsername
	}

	return s.store.Insert(types.TableUsers, types.PatchList{
		{Field: "username", Value: username},
		{Field: "password", Value: password},
		{Field: "role", Value: role},
	})
}

// LogIn matches the credentials, writes the session marker, and publishes a
// login event. A failed match is ErrInvalidCredentials; the caller cannot
// tell a wrong password from an unknown username.
func (s *Service) LogIn(username, password string) (session.Session, error) {
	user, found, err := s.store.UserByCredentials(username, password)
	if err != nil {
		return session.Session{}, err
	}
	if !found {
		return session.Session{}, types.ErrInvalidCredentials
	}

	sess, err := s.sessions.Save(user)
	if err != nil {
		return session.Session{}, err
	}
	s.bus.Publish(Event{Kind: EventLogin, Username: user.Username})
	return sess, nil
}

// LogOut removes the session marker and publishes a logout event.
// Idempotent: logging out without a session succeeds silently, and a
// marker too corrupt to read is still cleared.
func (s *Service) LogOut() error {
	sess, ok, err := s.sessions.Current()
	if clearErr := s.sessions.Clear(); clearErr != nil {
		return clearErr
	}
	if err != nil || !ok {
		return nil
	}
	s.bus.Publish(Event{Kind: EventLogout, Username: sess.User.Username})
	return nil
}

// CurrentUser returns the user from the session marker, refreshed from the
// store so role or name edits made elsewhere are visible. A stale marker
// whose user row no longer exists reads as "not logged in".
func (s *Service) CurrentUser() (types.User, bool, error) {
	sess, ok, err := s.sessions.Current()
	if err != nil || !ok {
		return types.User{}, false, err
	}
	user, found, err := s.store.UserByID(sess.User.ID)
	if err != nil || !found {
		return types.User{}, false, err
	}
	return user, true, nil
}

// ChangePassword re-validates the old password against the stored row, then
// patches the password and rewrites the session marker. The new password
// only needs the change-flow minimum length, not the full sign-up rules.
func (s *Service) ChangePassword(oldPassword, newPassword string) error {
	sess, ok, err := s.sessions.Current()
	if err != nil {
		return err
	}
	if !ok {
		return types.ErrNoSession
	}

	user, found, err := s.store.UserByID(sess.User.ID)
	if err != nil {
		return err
	}
	if !found {
		return types.ErrNoSession
	}
	if user.Password != oldPassword {
		return &types.ValidationError{Field: "password", Msg: "current password is incorrect"}
	}
	if len(newPassword) < types.MinNewPasswordLen {
		return &types.ValidationError{Field: "password", Msg: "new password must be at least 4 characters"}
	}

	if err := s.store.Update(user.ID, types.TableUsers, types.PatchList{
		{Field: "password", Value: newPassword},
	}); err != nil {
		return err
	}

	user.Password = newPassword
	_, err = s.sessions.Refresh(user)
	return err
}
