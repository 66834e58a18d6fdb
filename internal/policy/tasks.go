// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package policy

import (
	"cmp"
	"slices"
	"strings"

	"github.com/MKhiriev/go-study-planner/models"
)

// TaskView selects a subset of tasks on the tasks screen.
type TaskView string

const (
	ViewAll       TaskView = "all"
	ViewActive    TaskView = "active"
	ViewCompleted TaskView = "completed"
)

// TaskViews lists the views in tab order.
var TaskViews = []TaskView{ViewAll, ViewActive, ViewCompleted}

// Next returns the view following v in tab order.
func (v TaskView) Next() TaskView {
	i := slices.Index(TaskViews, v)
	return TaskViews[(i+1)%len(TaskViews)]
}

// CompareTasks orders tasks for the full task list:
//  1. incomplete before completed;
//  2. when both have a due date, the earlier one first;
//  3. when at least one has no due date, higher priority first;
//  4. otherwise the more recently created first.
//
// Ties fall back to the id so the order is total for distinct tasks.
func CompareTasks(a, b models.Todo) int {
	if a.Completed != b.Completed {
		if a.Completed {
			return 1
		}
		return -1
	}
	if c := compareDueThenPriority(a, b); c != 0 {
		return c
	}
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// CompareTasksCompact orders open tasks on the dashboard: by due date when
// both have one, otherwise by priority. Equal due dates are not broken by
// priority.
func CompareTasksCompact(a, b models.Todo) int {
	if c := compareDueThenPriority(a, b); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

func compareDueThenPriority(a, b models.Todo) int {
	if a.DueDate != nil && b.DueDate != nil {
		return a.DueDate.Compare(*b.DueDate)
	}
	return cmp.Compare(a.Priority.Rank(), b.Priority.Rank())
}

// SortTasks returns todos ordered by [CompareTasks].
//
// The pairwise rule is not transitive when dated and undated tasks mix, so the
// input is first put in id order. That makes the result depend only on the
// set of tasks, not on the order they were passed in.
func SortTasks(todos []models.Todo) []models.Todo {
	return sortCanonical(todos, CompareTasks)
}

// SortTasksCompact returns the open tasks of todos ordered by
// [CompareTasksCompact], truncated to limit. A limit <= 0 keeps all of them.
func SortTasksCompact(todos []models.Todo, limit int) []models.Todo {
	open := make([]models.Todo, 0, len(todos))
	for _, t := range todos {
		if !t.Completed {
			open = append(open, t)
		}
	}
	return truncate(sortCanonical(open, CompareTasksCompact), limit)
}

func sortCanonical(todos []models.Todo, compare func(a, b models.Todo) int) []models.Todo {
	out := make([]models.Todo, len(todos))
	for i, t := range todos {
		out[i] = t.Clone()
	}
	slices.SortFunc(out, func(a, b models.Todo) int { return cmp.Compare(a.ID, b.ID) })
	slices.SortStableFunc(out, compare)
	return out
}

// FilterTasks keeps the tasks of view whose title contains search, ignoring
// case, and returns them ordered by [CompareTasks].
func FilterTasks(todos []models.Todo, search string, view TaskView) []models.Todo {
	needle := strings.ToLower(strings.TrimSpace(search))

	matched := make([]models.Todo, 0, len(todos))
	for _, t := range todos {
		if !inView(t, view) {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(t.Title), needle) {
			continue
		}
		matched = append(matched, t)
	}

	return SortTasks(matched)
}

func inView(t models.Todo, view TaskView) bool {
	switch view {
	case ViewActive:
		return !t.Completed
	case ViewCompleted:
		return t.Completed
	default:
		return true
	}
}

// TaskCounts holds the size of every [TaskView].
type TaskCounts struct {
	All       int
	Active    int
	Completed int
}

// Of returns the count of view.
func (c TaskCounts) Of(view TaskView) int {
	switch view {
	case ViewActive:
		return c.Active
	case ViewCompleted:
		return c.Completed
	default:
		return c.All
	}
}

// CountTasks counts todos per view.
func CountTasks(todos []models.Todo) TaskCounts {
	counts := TaskCounts{All: len(todos)}
	for _, t := range todos {
		if t.Completed {
			counts.Completed++
		} else {
			counts.Active++
		}
	}
	return counts
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
