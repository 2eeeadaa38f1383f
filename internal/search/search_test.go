package search

import (
	"context"
	"testing"

	"github.com/tetherhq/tether/internal/models"
)

// stubStore records which strategies ran and returns canned posts.
type stubStore struct {
	calls []string
	posts map[string][]models.PostView
}

func (s *stubStore) ContentMatches(_ context.Context, query string, limit int) ([]models.PostView, error) {
	s.calls = append(s.calls, "content")
	return s.posts["content"], nil
}

func (s *stubStore) TagMatches(_ context.Context, query string, limit int) ([]models.PostView, error) {
	s.calls = append(s.calls, "tag")
	return s.posts["tag"], nil
}

func (s *stubStore) SharedTagOverlap(_ context.Context, postID int64, limit int) ([]models.PostView, error) {
	s.calls = append(s.calls, "overlap")
	return s.posts["overlap"], nil
}

func (s *stubStore) RandomSample(_ context.Context, query string, limit int) ([]models.PostView, error) {
	s.calls = append(s.calls, "random")
	return s.posts["random"], nil
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{input: "", want: Mode("")},
		{input: "fts", want: ModeFTS},
		{input: "tag", want: ModeTag},
		{input: "morelike", want: ModeMoreLike},
		{input: "serendipity", want: ModeSerendipity},
		{input: "trending", wantErr: true},
		{input: "FTS", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseMode(%q) should error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMode(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSearchAllModes(t *testing.T) {
	store := &stubStore{posts: map[string][]models.PostView{}}
	facade := NewFacade(store)

	results, err := facade.Search(context.Background(), Request{Query: "river", PostID: 7})
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}

	wantModes := []Mode{ModeFTS, ModeTag, ModeMoreLike, ModeSerendipity}
	if len(results) != len(wantModes) {
		t.Fatalf("got %d result sets, want %d", len(results), len(wantModes))
	}
	for i, mode := range wantModes {
		if results[i].Mode != mode {
			t.Errorf("results[%d].Mode = %q, want %q", i, results[i].Mode, mode)
		}
		if results[i].Posts == nil {
			t.Errorf("results[%d].Posts should never be nil", i)
		}
	}
}

func TestSearchAllModesWithoutReferenceSkipsMoreLike(t *testing.T) {
	store := &stubStore{posts: map[string][]models.PostView{}}
	facade := NewFacade(store)

	results, err := facade.Search(context.Background(), Request{Query: "river"})
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}

	for _, result := range results {
		if result.Mode == ModeMoreLike {
			t.Error("morelike should not run without a reference post when no mode was requested")
		}
	}
	if len(results) != 3 {
		t.Errorf("got %d result sets, want 3", len(results))
	}
}

func TestSearchExplicitModeAlwaysPresent(t *testing.T) {
	tests := []struct {
		name string
		req  Request
	}{
		{name: "morelike without reference", req: Request{Mode: ModeMoreLike}},
		{name: "fts with empty query", req: Request{Mode: ModeFTS}},
		{name: "tag with empty query", req: Request{Mode: ModeTag}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &stubStore{posts: map[string][]models.PostView{}}
			facade := NewFacade(store)

			results, err := facade.Search(context.Background(), tt.req)
			if err != nil {
				t.Fatalf("Search() error: %v", err)
			}
			if len(results) != 1 {
				t.Fatalf("got %d result sets, want exactly the requested mode", len(results))
			}
			if results[0].Mode != tt.req.Mode {
				t.Errorf("result mode = %q, want %q", results[0].Mode, tt.req.Mode)
			}
			if results[0].Posts == nil || len(results[0].Posts) != 0 {
				t.Errorf("expected an empty result set, got %v", results[0].Posts)
			}
			if len(store.calls) != 0 {
				t.Errorf("store should not be queried for a degenerate request, got %v", store.calls)
			}
		})
	}
}

func TestSearchEmptyQuerySkipsMatchers(t *testing.T) {
	store := &stubStore{posts: map[string][]models.PostView{}}
	facade := NewFacade(store)

	if _, err := facade.Search(context.Background(), Request{}); err != nil {
		t.Fatalf("Search() error: %v", err)
	}

	// Serendipity still samples; content and tag matchers stay quiet.
	if len(store.calls) != 1 || store.calls[0] != "random" {
		t.Errorf("calls = %v, want only the random sampler", store.calls)
	}
}

func TestSearchSerendipityWithQuery(t *testing.T) {
	store := &stubStore{posts: map[string][]models.PostView{
		"random": {{ID: 1, Content: "driftwood"}},
	}}
	facade := NewFacade(store)

	results, err := facade.Search(context.Background(), Request{Query: "drift", Mode: ModeSerendipity})
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(results) != 1 || len(results[0].Posts) != 1 {
		t.Fatalf("unexpected results: %v", results)
	}
	if results[0].Posts[0].ID != 1 {
		t.Errorf("post ID = %d, want 1", results[0].Posts[0].ID)
	}
}
