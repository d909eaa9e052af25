// ABOUTME: In-memory folds shared by both storage backends.
// ABOUTME: Keeping the aggregation in one place keeps backend results identical.
package storage

import (
	"sort"
	"strings"

	"github.com/harperreed/lift/internal/models"
)

// setRow is a set joined with its workout's date, the base row every
// stats query folds over.
type setRow struct {
	Date string
	Set  models.Set
}

// foldDailyMax keeps the heaviest weighted set per date. Rows must be
// pre-sorted by date ascending, then weight descending, then set id
// ascending, so the first row seen for a date is the winner and ties
// on weight go to the earliest-inserted set. Rows without a weight
// are skipped by the callers.
func foldDailyMax(rows []setRow) []models.DailyMax {
	var out []models.DailyMax
	for _, r := range rows {
		if r.Set.Weight == nil {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Date == r.Date {
			continue
		}
		out = append(out, models.DailyMax{
			Date:   r.Date,
			Weight: *r.Set.Weight,
			Reps:   r.Set.Reps,
		})
	}
	return out
}

// foldRecentExercises groups rows case-insensitively by exercise
// name. The display name is the spelling of the most recently logged
// set; last date is the group maximum; set count is the group size.
// Groups come back ordered by last date descending, truncated to
// limit when limit > 0.
func foldRecentExercises(rows []setRow, limit int) []models.RecentExercise {
	type group struct {
		display  string
		lastDate string
		count    int
		lastID   int64
	}

	groups := make(map[string]*group)
	var order []string
	for _, r := range rows {
		key := strings.ToLower(r.Set.Exercise)
		g, ok := groups[key]
		if !ok {
			g = &group{display: r.Set.Exercise}
			groups[key] = g
			order = append(order, key)
		}
		g.count++
		if r.Date > g.lastDate || (r.Date == g.lastDate && r.Set.ID >= g.lastID) {
			g.lastDate = r.Date
			g.lastID = r.Set.ID
			g.display = r.Set.Exercise
		}
	}

	out := make([]models.RecentExercise, 0, len(groups))
	for _, key := range order {
		g := groups[key]
		out = append(out, models.RecentExercise{
			Name:     g.display,
			LastDate: g.lastDate,
			SetCount: g.count,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastDate > out[j].LastDate
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// foldHistory orders an exercise's sets chronologically: workout date
// ascending, then workout id, then set id.
func foldHistory(rows []setRow) []models.HistoryEntry {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.Set.WorkoutID != b.Set.WorkoutID {
			return a.Set.WorkoutID < b.Set.WorkoutID
		}
		return a.Set.ID < b.Set.ID
	})
	out := make([]models.HistoryEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.HistoryEntry{Date: r.Date, Set: r.Set})
	}
	return out
}

// sortForDailyMax puts rows in the order foldDailyMax expects.
func sortForDailyMax(rows []setRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		aw, bw := 0.0, 0.0
		if a.Set.Weight != nil {
			aw = *a.Set.Weight
		}
		if b.Set.Weight != nil {
			bw = *b.Set.Weight
		}
		if aw != bw {
			return aw > bw
		}
		return a.Set.ID < b.Set.ID
	})
}

// matchesExercise reports whether a set belongs to the named exercise,
// ignoring case and surrounding whitespace.
func matchesExercise(s models.Set, exercise string) bool {
	return strings.EqualFold(strings.TrimSpace(s.Exercise), strings.TrimSpace(exercise))
}
