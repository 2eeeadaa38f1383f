// Package search dispatches a query to the four retrieval strategies:
// full-text content match, tag-name match, shared-tag similarity, and
// random sampling. Searching never mutates tag intelligence state.
package search

import (
	"context"
	"fmt"

	"github.com/tetherhq/tether/internal/models"
)

// Mode selects a retrieval strategy.
type Mode string

const (
	ModeFTS         Mode = "fts"
	ModeTag         Mode = "tag"
	ModeMoreLike    Mode = "morelike"
	ModeSerendipity Mode = "serendipity"
)

const (
	matchLimit  = 20
	sampleLimit = 5
)

// ParseMode validates a mode selector. The empty string is valid and means
// "run every mode".
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeFTS, ModeTag, ModeMoreLike, ModeSerendipity:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown search mode %q", s)
}

// Store is the read surface the facade queries.
type Store interface {
	ContentMatches(ctx context.Context, query string, limit int) ([]models.PostView, error)
	TagMatches(ctx context.Context, query string, limit int) ([]models.PostView, error)
	SharedTagOverlap(ctx context.Context, postID int64, limit int) ([]models.PostView, error)
	RandomSample(ctx context.Context, query string, limit int) ([]models.PostView, error)
}

// Result is one labeled result set.
type Result struct {
	Mode  Mode              `json:"mode"`
	Posts []models.PostView `json:"posts"`
}

// Request carries one search invocation.
type Request struct {
	Query  string
	Mode   Mode  // empty means all modes
	PostID int64 // reference post for morelike
}

// Facade runs search requests against a Store.
type Facade struct {
	store Store
}

// NewFacade creates a new search facade
func NewFacade(store Store) *Facade {
	return &Facade{store: store}
}

// Search runs the requested mode, or all four when none was requested.
// An explicitly requested mode always yields a result entry, even when it
// has nothing to contribute (e.g. morelike without a reference post).
func (f *Facade) Search(ctx context.Context, req Request) ([]Result, error) {
	modes := []Mode{req.Mode}
	if req.Mode == "" {
		modes = []Mode{ModeFTS, ModeTag, ModeMoreLike, ModeSerendipity}
	}

	results := make([]Result, 0, len(modes))
	for _, mode := range modes {
		// When no mode was asked for, morelike only runs with a reference.
		if req.Mode == "" && mode == ModeMoreLike && req.PostID == 0 {
			continue
		}

		posts, err := f.run(ctx, mode, req)
		if err != nil {
			return nil, err
		}
		if posts == nil {
			posts = []models.PostView{}
		}
		results = append(results, Result{Mode: mode, Posts: posts})
	}
	return results, nil
}

func (f *Facade) run(ctx context.Context, mode Mode, req Request) ([]models.PostView, error) {
	switch mode {
	case ModeFTS:
		if req.Query == "" {
			return nil, nil
		}
		return f.store.ContentMatches(ctx, req.Query, matchLimit)
	case ModeTag:
		if req.Query == "" {
			return nil, nil
		}
		return f.store.TagMatches(ctx, req.Query, matchLimit)
	case ModeMoreLike:
		if req.PostID == 0 {
			return nil, nil
		}
		return f.store.SharedTagOverlap(ctx, req.PostID, matchLimit)
	case ModeSerendipity:
		return f.store.RandomSample(ctx, req.Query, sampleLimit)
	}
	return nil, fmt.Errorf("unknown search mode %q", mode)
}
