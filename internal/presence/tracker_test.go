package presence

import (
	"sort"
	"testing"
	"time"
)

func TestTouchThenActive(t *testing.T) {
	tracker := NewTracker(5 * time.Minute)
	tracker.Touch("alice")

	users := tracker.Active()
	if len(users) != 1 || users[0] != "alice" {
		t.Errorf("Active() = %v, want [alice]", users)
	}
}

func TestActiveExcludesStaleUsers(t *testing.T) {
	current := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tracker := NewTracker(5 * time.Minute)
	tracker.now = func() time.Time { return current }

	tracker.Touch("alice")

	// Just inside the window
	current = current.Add(4 * time.Minute)
	if users := tracker.Active(); len(users) != 1 {
		t.Errorf("expected alice still active, got %v", users)
	}

	// Window elapsed with no further touch
	current = current.Add(2 * time.Minute)
	if users := tracker.Active(); len(users) != 0 {
		t.Errorf("expected alice excluded after window, got %v", users)
	}
}

func TestTouchRefreshesWindow(t *testing.T) {
	current := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tracker := NewTracker(5 * time.Minute)
	tracker.now = func() time.Time { return current }

	tracker.Touch("alice")
	current = current.Add(4 * time.Minute)
	tracker.Touch("alice")
	current = current.Add(4 * time.Minute)

	if users := tracker.Active(); len(users) != 1 {
		t.Errorf("expected refreshed alice active, got %v", users)
	}
}

func TestActiveMultipleUsers(t *testing.T) {
	current := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tracker := NewTracker(5 * time.Minute)
	tracker.now = func() time.Time { return current }

	tracker.Touch("alice")
	current = current.Add(10 * time.Minute)
	tracker.Touch("bob")
	tracker.Touch("carol")

	users := tracker.Active()
	sort.Strings(users)
	if len(users) != 2 || users[0] != "bob" || users[1] != "carol" {
		t.Errorf("Active() = %v, want [bob carol]", users)
	}
}

func TestZeroWindowFallsBackToDefault(t *testing.T) {
	tracker := NewTracker(0)
	if tracker.window != DefaultWindow {
		t.Errorf("window = %v, want %v", tracker.window, DefaultWindow)
	}
}
