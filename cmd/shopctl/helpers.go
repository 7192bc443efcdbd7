// Shared helpers for shopctl CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dukaforge/storefront/internal/auth"
	"github.com/dukaforge/storefront/internal/session"
	"github.com/dukaforge/storefront/internal/sqlite"
	"github.com/dukaforge/storefront/pkg/types"
)

// validTableNamesStr is a comma-separated list of valid table names for
// error output.
var validTableNamesStr = strings.Join(types.StandardTableNames, ", ")

// authLogFileName is the append-only auth audit log inside the data dir,
// fed by the auth event bus.
const authLogFileName = "auth.log"

// services bundles everything a command touches. Close after use.
type services struct {
	store     *sqlite.Store
	auth      *auth.Service
	stopWatch func()
}

func (s *services) Close() error {
	s.stopWatch()
	return s.store.Close()
}

// openServices resolves the data directory and opens the store plus the
// auth service around it, with the audit-log watcher on the event bus.
// The caller must defer Close.
func openServices() (*services, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	store := sqlite.NewStore()
	if err := store.Open(types.Config{DataDir: dataDir, DeletePolicy: configDeletePolicy}); err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	sessions := session.NewManager(dataDir)
	bus := auth.NewBus()
	return &services{
		store:     store,
		auth:      auth.NewService(store, sessions, bus),
		stopWatch: watchAuthEvents(bus, filepath.Join(dataDir, authLogFileName)),
	}, nil
}

// watchAuthEvents subscribes to the bus and appends one line per login or
// logout to the audit log. The returned stop func waits for already
// published events to be written before returning.
func watchAuthEvents(bus *auth.Bus, logPath string) (stop func()) {
	events, cancel := bus.Subscribe()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for ev := range events {
			appendAuthLog(logPath, ev)
		}
	}()
	return func() {
		cancel()
		<-done
	}
}

// appendAuthLog is best-effort: a failed audit write never fails the
// command that triggered it.
func appendAuthLog(logPath string, ev auth.Event) {
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	fmt.Fprintf(f, "%s %s %s\n", time.Now().UTC().Format(time.RFC3339), ev.Kind, ev.Username)
}

// requireUser returns the logged-in user or exits with a user error.
func requireUser(svc *services) types.User {
	user, ok, err := svc.auth.CurrentUser()
	if err != nil {
		fmt.Fprintln(os.Stderr, "session:", err)
		os.Exit(exitSysError)
	}
	if !ok {
		fmt.Fprintln(os.Stderr, "not logged in (run: shopctl login)")
		os.Exit(exitUserError)
	}
	return user
}

// requireAdmin returns the logged-in admin user or exits with a user error.
func requireAdmin(svc *services) types.User {
	user := requireUser(svc)
	if !user.IsAdmin() {
		fmt.Fprintln(os.Stderr, "admin role required")
		os.Exit(exitUserError)
	}
	return user
}

// parseID parses a positive numeric id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// parsePatches turns key=value arguments into a patch list. Values parse
// as JSON where possible so numbers stay numbers; anything else is a
// raw string.
func parsePatches(args []string) (types.PatchList, error) {
	patches := make(types.PatchList, 0, len(args))
	for _, arg := range args {
		parts := strings.SplitN(arg, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid patch %q (expected field=value)", arg)
		}

		var parsed any
		if err := json.Unmarshal([]byte(parts[1]), &parsed); err != nil {
			parsed = parts[1]
		}
		patches = append(patches, types.Patch{Field: parts[0], Value: parsed})
	}
	return patches, nil
}

// printResult writes v as indented JSON under --json, or line-per-item
// plain text otherwise using the format function.
func printResult(v any, plain func()) error {
	if !flagJSON {
		plain()
		return nil
	}
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// exitOnError prints the error and exits: validation and domain errors
// are user errors, anything else is a system error.
func exitOnError(prefix string, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "%s: %s\n", prefix, err)
	if isUserError(err) {
		os.Exit(exitUserError)
	}
	os.Exit(exitSysError)
}

func isUserError(err error) bool {
	if types.IsValidation(err) {
		return true
	}
	for _, sentinel := range []error{
		types.ErrNotFound,
		types.ErrTableUnknown,
		types.ErrUnknownField,
		types.ErrEmptyPatchList,
		types.ErrInvalidCredentials,
		types.ErrDuplicateUsername,
		types.ErrAlreadyInCart,
		types.ErrNotInCart,
		types.ErrEmptyCart,
		types.ErrInvalidStatus,
		types.ErrInvalidTransition,
		types.ErrCategoryInUse,
		types.ErrProductInUse,
		types.ErrNoSession,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// confirm prompts before a destructive action unless --yes was given.
func confirm(prompt string, yes bool) bool {
	if yes {
		return true
	}
	fmt.Printf("%s [y/N]: ", prompt)
	var answer string
	fmt.Scanln(&answer)
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
