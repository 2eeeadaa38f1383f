// Package tags implements the tag intelligence bookkeeping: the canonical
// tag registry, freshness tracking for newly introduced tags, and the
// pairwise co-occurrence ledger behind related-tag suggestions.
package tags

import (
	"context"
	"strings"
)

const (
	// FreshUseLimit is the number of uses after which a tag stops being fresh.
	FreshUseLimit = 3
	// FreshListLimit caps the fresh-tag suggestion list.
	FreshListLimit = 12
	// RelatedLimit caps the related-tags list.
	RelatedLimit = 8
)

// Store is the storage surface the ingestion path writes through. All
// methods must be individually atomic against concurrent submissions
// touching the same tag or edge.
type Store interface {
	// EnsureTag creates the tag if absent and reports whether this call
	// created it. Racing creators resolve to exactly one created=true.
	EnsureTag(ctx context.Context, name string) (id int64, created bool, err error)
	// RecordFirstUse registers a freshness record for a newly created tag.
	// If a record already exists (two creations raced), the use still counts.
	RecordFirstUse(ctx context.Context, name string) error
	// BumpFreshUse increments the freshness counter of an existing tag,
	// only while it is still below FreshUseLimit.
	BumpFreshUse(ctx context.Context, name string) error
	// AttachPostTag associates a post with a tag. Idempotent.
	AttachPostTag(ctx context.Context, postID, tagID int64) error
	// BumpRelation increments the co-occurrence count for a canonical pair,
	// creating the edge with count 1 if absent.
	BumpRelation(ctx context.Context, tag1, tag2 string) error
}

// Normalize trims surrounding whitespace, drops blank names and collapses
// duplicates, preserving first-seen order. Callers must never hand a blank
// name to the registry.
func Normalize(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// CanonicalPair orders two tag names so the lexicographically smaller one
// comes first. Each unordered pair has exactly one canonical form.
func CanonicalPair(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}

// Pairs enumerates every unordered pair drawn from names, canonicalized.
// An n-tag set yields n*(n-1)/2 pairs.
func Pairs(names []string) [][2]string {
	if len(names) < 2 {
		return nil
	}
	pairs := make([][2]string, 0, len(names)*(len(names)-1)/2)
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			t1, t2 := CanonicalPair(names[i], names[j])
			pairs = append(pairs, [2]string{t1, t2})
		}
	}
	return pairs
}

// Ingest records one post submission's tags: registry create-if-absent,
// freshness bookkeeping, post association, and co-occurrence edges for
// every pair. The caller is expected to run this inside the same
// transaction as the post insert so the updates land as one unit.
func Ingest(ctx context.Context, store Store, postID int64, names []string) error {
	names = Normalize(names)

	for _, name := range names {
		id, created, err := store.EnsureTag(ctx, name)
		if err != nil {
			return err
		}
		if created {
			if err := store.RecordFirstUse(ctx, name); err != nil {
				return err
			}
		} else {
			if err := store.BumpFreshUse(ctx, name); err != nil {
				return err
			}
		}
		if err := store.AttachPostTag(ctx, postID, id); err != nil {
			return err
		}
	}

	for _, pair := range Pairs(names) {
		if err := store.BumpRelation(ctx, pair[0], pair[1]); err != nil {
			return err
		}
	}

	return nil
}
