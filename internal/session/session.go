// Package session persists the single "currently logged-in user" marker.
// The marker is one JSON file in the data dir, written atomically; the
// design assumes at most one active session per data dir.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/dukaforge/storefront/pkg/types"
)

// markerFileName is the session marker file inside the data dir.
const markerFileName = "session.json"

// Session is the persisted marker for the authenticated user.
type Session struct {
	ID         string     `json:"id"`
	User       types.User `json:"user"`
	LoggedInAt time.Time  `json:"logged_in_at"`
}

// Manager reads and writes the session marker for one data dir.
type Manager struct {
	path string
}

// NewManager returns a Manager storing the marker inside dataDir.
func NewManager(dataDir string) *Manager {
	return &Manager{path: filepath.Join(dataDir, markerFileName)}
}

// Save writes a fresh session marker for the user, replacing any existing
// one. The session id is a UUID v7.
func (m *Manager) Save(user types.User) (Session, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return Session{}, fmt.Errorf("generating session id: %w", err)
	}

	sess := Session{
		ID:         id.String(),
		User:       user,
		LoggedInAt: time.Now().UTC(),
	}
	if err := m.write(sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// Refresh rewrites the marker with updated user fields, keeping the session
// id and login time. Returns ErrNoSession when no marker exists.
func (m *Manager) Refresh(user types.User) (Session, error) {
	sess, ok, err := m.Current()
	if err != nil {
		return Session{}, err
	}
	if !ok {
		return Session{}, types.ErrNoSession
	}
	sess.User = user
	if err := m.write(sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// Current returns the persisted session, if any. A missing marker is
// reported through the bool, not as an error.
func (m *Manager) Current() (Session, bool, error) {
	data, err := os.ReadFile(m.path)
	if os.IsNotExist(err) {
		return Session{}, false, nil
	}
	if err != nil {
		return Session{}, false, fmt.Errorf("reading session marker: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return Session{}, false, fmt.Errorf("parsing session marker: %w", err)
	}
	return sess, true, nil
}

// Clear removes the session marker. Idempotent: clearing a missing marker
// succeeds.
func (m *Manager) Clear() error {
	err := os.Remove(m.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session marker: %w", err)
	}
	return nil
}

// write persists the marker using the temp-file, fsync, rename pattern so a
// crash mid-write never leaves a torn marker behind.
func (m *Manager) write(sess Session) error {
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}

	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating session dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".session-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing session: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, m.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
