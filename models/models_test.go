package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_DisplayName(t *testing.T) {
	tests := []struct {
		name string
		user User
		want string
	}{
		{name: "name wins", user: User{Email: "a@b.c", Metadata: map[string]string{"name": "Alice", "full_name": "Alice Liddell"}}, want: "Alice"},
		{name: "full name", user: User{Email: "a@b.c", Metadata: map[string]string{"full_name": "Alice Liddell"}}, want: "Alice Liddell"},
		{name: "email local part", user: User{Email: "alice@uni.edu"}, want: "alice"},
		{name: "blank metadata falls through", user: User{Email: "bob@uni.edu", Metadata: map[string]string{"name": "  "}}, want: "bob"},
		{name: "fallback", user: User{ID: "u1"}, want: DefaultDisplayName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.DisplayName())
		})
	}
}

func TestTodo_IsOverdue(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.True(t, Todo{DueDate: &past}.IsOverdue(now))
	assert.False(t, Todo{DueDate: &past, Completed: true}.IsOverdue(now))
	assert.False(t, Todo{DueDate: &future}.IsOverdue(now))
	assert.False(t, Todo{}.IsOverdue(now))
}

func TestTodoUpdate_Apply(t *testing.T) {
	due := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	created := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
	orig := Todo{ID: "todo_1", Title: "Essay", DueDate: &due, Priority: PriorityLow, CreatedAt: created}

	done := true
	got := TodoUpdate{Completed: &done}.Apply(orig)
	assert.True(t, got.Completed)
	assert.Equal(t, "Essay", got.Title)
	assert.Equal(t, "todo_1", got.ID)
	assert.Equal(t, created, got.CreatedAt)

	other := due.AddDate(0, 1, 0)
	got = TodoUpdate{DueDate: &other, ClearDueDate: true}.Apply(orig)
	assert.Nil(t, got.DueDate)
	require.NotNil(t, orig.DueDate)
}

func TestSnapshot_CloneIsDeep(t *testing.T) {
	due := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := Snapshot{Todos: []Todo{{ID: "todo_1", DueDate: &due}}, Notes: []Note{{ID: "note_1"}}}

	c := s.Clone()
	*c.Todos[0].DueDate = due.AddDate(1, 0, 0)
	c.Notes[0].Title = "changed"

	assert.Equal(t, due, *s.Todos[0].DueDate)
	assert.Empty(t, s.Notes[0].Title)
	assert.NotNil(t, c.Events)
	assert.ElementsMatch(t, []string{"todo_1", "note_1"}, s.IDs())
}

func TestSnapshot_Normalize(t *testing.T) {
	s := Snapshot{}.Normalize()

	assert.NotNil(t, s.Todos)
	assert.NotNil(t, s.Notes)
	assert.NotNil(t, s.Events)
}
