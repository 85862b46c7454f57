package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mohsen1/tsz-sub014/internal/driver"
)

func TestNewProgressModelSeedsQueuedItems(t *testing.T) {
	events := make(chan driver.Event)
	m := NewProgressModel("checking", []string{"a.ts", "b.ts"}, events).(*progressModel)

	if len(m.items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(m.items))
	}
	for _, item := range m.items {
		if item.status != "queued" {
			t.Errorf("expected initial status queued, got %q", item.status)
		}
	}
}

func TestApplyEventUpdatesItemStatus(t *testing.T) {
	events := make(chan driver.Event)
	m := NewProgressModel("checking", []string{"a.ts"}, events).(*progressModel)

	m.applyEvent(driver.Event{File: "a.ts", Stage: driver.StageCheck, Status: driver.StatusWorking})
	if m.items[0].status != "checking" {
		t.Errorf("expected status 'checking', got %q", m.items[0].status)
	}

	m.applyEvent(driver.Event{File: "a.ts", Stage: driver.StageDone, Status: driver.StatusDone})
	if m.items[0].status != "done" {
		t.Errorf("expected status 'done', got %q", m.items[0].status)
	}
}

func TestApplyEventUnknownFileIsIgnored(t *testing.T) {
	events := make(chan driver.Event)
	m := NewProgressModel("checking", []string{"a.ts"}, events).(*progressModel)

	cmd := m.applyEvent(driver.Event{File: "missing.ts", Stage: driver.StageCheck, Status: driver.StatusWorking})
	if cmd != nil {
		t.Errorf("expected no command for an event about an unknown file")
	}
	if m.items[0].status != "queued" {
		t.Errorf("expected untouched item to stay queued, got %q", m.items[0].status)
	}
}

func TestDoneMsgQuits(t *testing.T) {
	events := make(chan driver.Event)
	m := NewProgressModel("checking", []string{"a.ts"}, events).(*progressModel)

	updated, cmd := m.Update(doneMsg{})
	pm := updated.(*progressModel)
	if !pm.done {
		t.Fatalf("expected done=true after doneMsg")
	}
	if cmd == nil {
		t.Fatalf("expected a tea.Quit command after doneMsg")
	}
}

func TestViewRendersFileNames(t *testing.T) {
	events := make(chan driver.Event)
	m := NewProgressModel("checking", []string{"src/a.ts", "src/b.ts"}, events).(*progressModel)

	out := m.View()
	if !strings.Contains(out, "src/a.ts") || !strings.Contains(out, "src/b.ts") {
		t.Errorf("expected view to list both files, got:\n%s", out)
	}
}

func TestTruncateShortensLongNames(t *testing.T) {
	long := "this/is/a/very/long/path/to/some/module/file.ts"
	got := truncate(long, 20)
	if len([]rune(got)) > 20 {
		t.Errorf("expected truncated name to fit width 20, got %q (%d runes)", got, len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected truncated name to end with '...', got %q", got)
	}
}

func TestTruncateLeavesShortNamesUnchanged(t *testing.T) {
	if got := truncate("a.ts", 20); got != "a.ts" {
		t.Errorf("expected short name unchanged, got %q", got)
	}
}

var _ tea.Model = (*progressModel)(nil)
