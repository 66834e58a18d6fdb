package policy

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-study-planner/models"
)

func day(d int) *time.Time {
	t := time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func created(h int) time.Time {
	return time.Date(2023, 12, 1, h, 0, 0, 0, time.UTC)
}

func ids(todos []models.Todo) []string {
	out := make([]string, len(todos))
	for i, t := range todos {
		out[i] = t.ID
	}
	return out
}

func TestSortTasks_HighPriorityBeatsDatedLow(t *testing.T) {
	todos := []models.Todo{
		{ID: "low", Priority: models.PriorityLow, DueDate: day(1), CreatedAt: created(1)},
		{ID: "high", Priority: models.PriorityHigh, CreatedAt: created(2)},
	}

	assert.Equal(t, []string{"high", "low"}, ids(SortTasks(todos)))
}

func TestSortTasks_Keys(t *testing.T) {
	todos := []models.Todo{
		{ID: "done", Completed: true, Priority: models.PriorityHigh, DueDate: day(1), CreatedAt: created(9)},
		{ID: "due-late", Priority: models.PriorityHigh, DueDate: day(20), CreatedAt: created(1)},
		{ID: "due-early", Priority: models.PriorityHigh, DueDate: day(5), CreatedAt: created(2)},
		{ID: "medium-old", Priority: models.PriorityMedium, CreatedAt: created(3)},
		{ID: "medium-new", Priority: models.PriorityMedium, CreatedAt: created(4)},
	}

	assert.Equal(t, []string{"due-early", "due-late", "medium-new", "medium-old", "done"}, ids(SortTasks(todos)))
}

func TestSortTasks_SameDueDateSkipsPriority(t *testing.T) {
	todos := []models.Todo{
		{ID: "todo_a", Priority: models.PriorityHigh, DueDate: day(15), CreatedAt: created(1)},
		{ID: "todo_b", Priority: models.PriorityLow, DueDate: day(15), CreatedAt: created(5)},
	}

	// equal due dates go straight to creation time
	assert.Equal(t, []string{"todo_b", "todo_a"}, ids(SortTasks(todos)))
	// and to the id on the dashboard
	assert.Equal(t, []string{"todo_a", "todo_b"}, ids(SortTasksCompact(todos, 0)))
	assert.Equal(t, []string{"todo_a", "todo_b"}, ids(SortTasksCompact([]models.Todo{todos[1], todos[0]}, 0)))
}

func TestSortTasks_PermutationIndependent(t *testing.T) {
	todos := []models.Todo{
		{ID: "a", Priority: models.PriorityLow, DueDate: day(1), CreatedAt: created(1)},
		{ID: "b", Priority: models.PriorityHigh, CreatedAt: created(2)},
		{ID: "c", Priority: models.PriorityMedium, DueDate: day(3), CreatedAt: created(3)},
		{ID: "d", Priority: models.PriorityHigh, DueDate: day(2), CreatedAt: created(4)},
		{ID: "e", Completed: true, Priority: models.PriorityLow, CreatedAt: created(5)},
		{ID: "f", Priority: models.PriorityLow, CreatedAt: created(6)},
		{ID: "g", Completed: true, Priority: models.PriorityHigh, DueDate: day(9), CreatedAt: created(7)},
	}
	want := ids(SortTasks(todos))

	rng := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		shuffled := append([]models.Todo(nil), todos...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		assert.Equal(t, want, ids(SortTasks(shuffled)))
		assert.Equal(t, ids(SortTasksCompact(todos, 0)), ids(SortTasksCompact(shuffled, 0)))
	}
}

func TestSortTasks_DoesNotMutateInput(t *testing.T) {
	todos := []models.Todo{
		{ID: "b", Priority: models.PriorityLow, DueDate: day(2)},
		{ID: "a", Priority: models.PriorityHigh},
	}

	sorted := SortTasks(todos)
	*sorted[1].DueDate = time.Time{}

	assert.Equal(t, "b", todos[0].ID)
	assert.Equal(t, *day(2), *todos[0].DueDate)
}

func TestSortTasksCompact(t *testing.T) {
	todos := []models.Todo{
		{ID: "done", Completed: true, Priority: models.PriorityHigh},
		{ID: "low", Priority: models.PriorityLow, CreatedAt: created(9)},
		{ID: "medium", Priority: models.PriorityMedium, CreatedAt: created(1)},
		{ID: "high", Priority: models.PriorityHigh, CreatedAt: created(2)},
	}

	assert.Equal(t, []string{"high", "medium"}, ids(SortTasksCompact(todos, 2)))
	assert.Equal(t, []string{"high", "medium", "low"}, ids(SortTasksCompact(todos, 0)))
}

func TestFilterTasks(t *testing.T) {
	todos := []models.Todo{
		{ID: "1", Title: "Read Chapter 3", Priority: models.PriorityHigh},
		{ID: "2", Title: "Write essay", Completed: true, Priority: models.PriorityLow},
		{ID: "3", Title: "chapter 4 exercises", Priority: models.PriorityLow},
	}

	tests := []struct {
		name   string
		search string
		view   TaskView
		want   []string
	}{
		{name: "all", view: ViewAll, want: []string{"1", "3", "2"}},
		{name: "active", view: ViewActive, want: []string{"1", "3"}},
		{name: "completed", view: ViewCompleted, want: []string{"2"}},
		{name: "search ignores case", search: "CHAPTER", view: ViewAll, want: []string{"1", "3"}},
		{name: "search and view", search: "essay", view: ViewActive, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterTasks(todos, tt.search, tt.view)))
		})
	}
}

func TestCountTasks(t *testing.T) {
	counts := CountTasks([]models.Todo{{Completed: true}, {}, {}})

	assert.Equal(t, TaskCounts{All: 3, Active: 2, Completed: 1}, counts)
	assert.Equal(t, 2, counts.Of(ViewActive))
	assert.Equal(t, ViewActive, ViewAll.Next())
	assert.Equal(t, ViewAll, ViewCompleted.Next())
}
