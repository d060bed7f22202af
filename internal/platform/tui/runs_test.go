package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/gridsnake/internal/storage"
)

type fakeRuns struct {
	runs  []storage.RunRecord
	stats *storage.RunStats
	err   error
}

func (f fakeRuns) RecentRuns(string, int) ([]storage.RunRecord, error) {
	return f.runs, f.err
}

func (f fakeRuns) Stats(string) (*storage.RunStats, error) {
	return f.stats, f.err
}

func TestRunsModelView(t *testing.T) {
	src := fakeRuns{
		runs: []storage.RunRecord{
			{ID: 2, GameID: "snake", Session: "bob", Cause: "self", Length: 6, FoodEaten: 4, Ticks: 70, CreatedAt: time.Now()},
			{ID: 1, GameID: "snake", Cause: "wall", Length: 2, Ticks: 4, CreatedAt: time.Now()},
		},
		stats: &storage.RunStats{GameID: "snake", Runs: 2, WallDeaths: 1, SelfDeaths: 1, TotalFood: 4, AvgLength: 4, MaxLength: 6},
	}

	view := NewRunsModel(src, "snake", 100, 30).View()
	for _, want := range []string{"RUN JOURNAL - snake", "2 runs", "bob", "self", "wall"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestRunsModelEmptyAndError(t *testing.T) {
	empty := NewRunsModel(fakeRuns{stats: &storage.RunStats{}}, "snake", 80, 24).View()
	if !strings.Contains(empty, "No runs recorded yet.") {
		t.Error("empty journal message missing")
	}

	broken := NewRunsModel(fakeRuns{err: errors.New("locked")}, "snake", 80, 24).View()
	if !strings.Contains(broken, "journal unavailable: locked") {
		t.Error("load error not shown")
	}
}

func TestFormatStats(t *testing.T) {
	if got := FormatStats(nil); got != "0 runs" {
		t.Errorf("FormatStats(nil) = %q", got)
	}
	got := FormatStats(&storage.RunStats{Runs: 3, WallDeaths: 2, SelfDeaths: 1, TotalFood: 6, AvgLength: 4, MaxLength: 6})
	if !strings.HasPrefix(got, "3 runs  wall 2  self 1  food 6  avg length 4.0  max length 6") {
		t.Errorf("FormatStats = %q", got)
	}
}
