package journal

import "errors"

// Resolution errors. These are reported per expression; only a missing
// journal root is fatal to a whole invocation.
var (
	ErrRootNotFound      = errors.New("journal root does not exist")
	ErrNoEntries         = errors.New("journal has no existing entries")
	ErrNoHead            = errors.New("no existing journal entry found")
	ErrInvalidExpression = errors.New("not a valid date")
	ErrAncestorBase      = errors.New("does not correspond to an existing entry")
	ErrAncestorRange     = errors.New("ancestor does not exist")
)
