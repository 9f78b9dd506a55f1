package journal

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mwiens91/jrnl/internal/dateutil"
)

// headKeywords name the latest existing entry.
var headKeywords = map[string]bool{
	"head":   true,
	"last":   true,
	"latest": true,
}

// Resolver turns raw date expressions into calendar dates, consulting the
// entry index on disk for keyword, closest-match, and ancestor lookups.
type Resolver struct {
	// Root is the journal root directory.
	Root string

	// LateNight shifts relative-offset resolutions backward so that hours
	// past midnight still count as the previous day. Zero or -24h.
	LateNight time.Duration

	// Now supplies the current instant. Defaults to time.Now.
	Now func() time.Time
}

// Resolution is the outcome of resolving one expression. Exactly one of
// Date and Err is meaningful.
type Resolution struct {
	Expr string
	Date time.Time
	Err  error
}

// ResolveAll resolves each expression independently. A failed expression
// yields a Resolution with Err set and never aborts the rest of the batch.
func (r *Resolver) ResolveAll(exprs []string) []Resolution {
	results := make([]Resolution, 0, len(exprs))
	for _, expr := range exprs {
		date, err := r.Resolve(expr)
		results = append(results, Resolution{Expr: expr, Date: date, Err: err})
	}
	return results
}

// Resolve resolves a single raw date expression: ancestor operators are
// stripped first, then an optional "@" closest-match prefix, then the base
// is resolved and the stripped modifiers are applied in turn.
func (r *Resolver) Resolve(expr string) (time.Time, error) {
	base, offset, chain := ParseOffsets(expr)

	findClosest := strings.HasPrefix(base, "@")
	if findClosest {
		base = base[1:]
	}

	date, err := r.resolveBase(base)
	if err != nil {
		return time.Time{}, err
	}

	if findClosest {
		index, err := BuildIndex(r.Root)
		if err != nil {
			return time.Time{}, err
		}
		date, err = Closest(index, date)
		if err != nil {
			return time.Time{}, err
		}
	}

	if chain {
		date, err = r.ancestor(date, offset, expr)
		if err != nil {
			return time.Time{}, err
		}
	}

	return date, nil
}

// resolveBase resolves a cleaned expression through an ordered sequence of
// parse attempts, taking the first that succeeds:
//
//  1. a head keyword, naming the latest existing entry;
//  2. a non-positive integer, counting days back from today (positive
//     integers are never offsets, so literal dates like "2024" keep their
//     meaning);
//  3. a free-form date.
func (r *Resolver) resolveBase(expr string) (time.Time, error) {
	if headKeywords[strings.ToLower(expr)] {
		return Latest(r.Root)
	}

	if days, err := strconv.Atoi(expr); err == nil && days <= 0 {
		return r.today().AddDate(0, 0, days).Add(r.LateNight), nil
	}

	if date, err := dateutil.ParseLoose(expr, r.now()); err == nil {
		return date, nil
	}

	return time.Time{}, fmt.Errorf("%q is %w", expr, ErrInvalidExpression)
}

// ancestor walks offset positions backward (forward for negative offsets)
// through the entry index from date, which must itself be an existing entry.
// The original expression is carried for diagnostics only.
func (r *Resolver) ancestor(date time.Time, offset int, expr string) (time.Time, error) {
	index, err := BuildIndex(r.Root)
	if err != nil {
		return time.Time{}, err
	}

	pos := sort.Search(len(index), func(i int) bool {
		return !index[i].Before(date)
	})
	if pos == len(index) || !index[pos].Equal(date) {
		return time.Time{}, fmt.Errorf("base of %q %w", expr, ErrAncestorBase)
	}

	pos -= offset
	if pos < 0 || pos >= len(index) {
		return time.Time{}, fmt.Errorf("%q: %w", expr, ErrAncestorRange)
	}
	return index[pos], nil
}

func (r *Resolver) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

func (r *Resolver) today() time.Time {
	return dateutil.DateOnly(r.now())
}
