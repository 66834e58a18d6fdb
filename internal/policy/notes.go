package policy

import (
	"cmp"
	"slices"
	"strings"

	"github.com/MKhiriev/go-study-planner/models"
)

// AllCategories is the implicit category that matches every note.
const AllCategories = "All"

// CompareNotes orders notes by most recent update first.
func CompareNotes(a, b models.Note) int {
	if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// FilterNotes keeps notes whose title or content contains search, ignoring
// case, and whose category equals category. An empty search or category (or
// [AllCategories]) matches everything. The result is ordered by
// [CompareNotes].
func FilterNotes(notes []models.Note, search, category string) []models.Note {
	needle := strings.ToLower(strings.TrimSpace(search))
	if category == AllCategories {
		category = ""
	}

	out := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if category != "" && n.Category != category {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(n.Title), needle) &&
			!strings.Contains(strings.ToLower(n.Content), needle) {
			continue
		}
		out = append(out, n)
	}

	slices.SortFunc(out, CompareNotes)
	return out
}

// RecentNotes returns the limit most recently updated notes.
func RecentNotes(notes []models.Note, limit int) []models.Note {
	return truncate(FilterNotes(notes, "", ""), limit)
}

// CategoryCount is one entry of the category list.
type CategoryCount struct {
	Name  string
	Count int
}

// Categories lists the distinct categories of notes alphabetically, each with
// its number of notes, preceded by [AllCategories] with the total.
func Categories(notes []models.Note) []CategoryCount {
	counts := make(map[string]int)
	for _, n := range notes {
		counts[n.Category]++
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	slices.Sort(names)

	out := make([]CategoryCount, 0, len(names)+1)
	out = append(out, CategoryCount{Name: AllCategories, Count: len(notes)})
	for _, name := range names {
		out = append(out, CategoryCount{Name: name, Count: counts[name]})
	}
	return out
}
