package booking

import (
	"errors"
	"fmt"
	"strings"

	"sparkle/models"
)

var (
	// ErrDraftNotFound is returned for unknown or expired drafts.
	ErrDraftNotFound = errors.New("draft not found or expired")
	// ErrDraftIncomplete is the sentinel wrapped by every IncompleteError.
	ErrDraftIncomplete = errors.New("draft is incomplete")
)

// IncompleteError lists the fields that must be filled before the wizard can
// move to Step.
type IncompleteError struct {
	Step    models.DraftStep
	Missing []string
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("cannot reach step %q: missing %s", e.Step, strings.Join(e.Missing, ", "))
}

func (e *IncompleteError) Unwrap() error {
	return ErrDraftIncomplete
}
