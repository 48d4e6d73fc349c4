//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=../mocks/mock_store.go -package=mocks

// Package remote describes the hierarchical key/value store the platform talks to.
// The store is push based: every call registers a listener that is fired later,
// on a goroutine that is never the caller's.
package remote

import (
	"fmt"
	"lost-found/errors"
	"strings"
)

// EventListener receives the outcome of a read.
// Exactly one of OnData or OnCancelled fires for a one-shot read.
type EventListener struct {
	OnData      func(snapshot Snapshot)
	OnCancelled func(err error)
}

func (l EventListener) data(s Snapshot) {
	if l.OnData != nil {
		l.OnData(s)
	}
}

func (l EventListener) cancelled(err error) {
	if l.OnCancelled != nil {
		l.OnCancelled(err)
	}
}

// CompletionListener is fired once when a mutation has been applied or refused.
type CompletionListener func(err error)

func (c CompletionListener) complete(err error) {
	if c != nil {
		c(err)
	}
}

// Registration detaches a continuous listener.
type Registration interface {
	Remove()
}

type Store interface {
	ReadOnce(path string, listener EventListener)
	ReadContinuous(path string, listener EventListener) Registration
	Write(path string, value any, done CompletionListener)
	// Update applies several writes in a single round trip, nil values delete.
	Update(values map[string]any, done CompletionListener)
	Delete(path string, done CompletionListener)
}

const forbiddenChars = ".#$[]"

// CleanPath trims surrounding slashes and rejects empty segments or forbidden characters.
func CleanPath(path string) (string, error) {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty path", errors.ErrInvalidPath)
	}
	for _, segment := range strings.Split(trimmed, "/") {
		if segment == "" {
			return "", fmt.Errorf("%w: empty segment in %q", errors.ErrInvalidPath, path)
		}
		if strings.ContainsAny(segment, forbiddenChars) {
			return "", fmt.Errorf("%w: forbidden character in %q", errors.ErrInvalidPath, path)
		}
	}
	return trimmed, nil
}

// Join builds a path from segments.
func Join(segments ...string) string {
	return strings.Join(segments, "/")
}

// overlaps reports whether a change at one path can affect a listener on the other.
func overlaps(a, b string) bool {
	return a == b || strings.HasPrefix(a, b+"/") || strings.HasPrefix(b, a+"/")
}
