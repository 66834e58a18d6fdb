// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-study-planner/internal/logger"
	"github.com/MKhiriev/go-study-planner/internal/store"
	"github.com/MKhiriev/go-study-planner/internal/utils"
	"github.com/MKhiriev/go-study-planner/models"
)

type entityStore struct {
	storage store.SnapshotStorage
	ids     *utils.UUIDGenerator
	clock   utils.Clock
	logger  *logger.Logger

	mu     sync.Mutex
	userID string
	loaded bool
	data   models.Snapshot
	log    *logger.Logger
}

// NewEntityStore returns an unloaded [EntityStore] persisting through storage.
func NewEntityStore(storage store.SnapshotStorage, ids *utils.UUIDGenerator, clock utils.Clock, log *logger.Logger) EntityStore {
	return &entityStore{
		storage: storage,
		ids:     ids,
		clock:   clock,
		logger:  log,
		data:    models.EmptySnapshot(),
		log:     log,
	}
}

func (s *entityStore) Login(ctx context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.ID == "" {
		return ErrEmptyUserID
	}
	if s.loaded {
		if s.userID == user.ID {
			return nil
		}
		s.log.Warn().Str("requested_user_id", user.ID).Msg("login rejected, another session is loaded")
		return ErrSessionActive
	}

	log := s.logger.WithUser(user.ID)
	// Backends map missing and unreadable payloads to the empty snapshot, so
	// err is an I/O failure here. The store stays unloaded.
	snapshot, err := s.storage.Load(ctx, user.ID)
	if err != nil {
		log.Err(err).Msg("failed to load snapshot")
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	snapshot = snapshot.Normalize()
	s.ids.Reserve(snapshot.IDs()...)

	s.userID = user.ID
	s.loaded = true
	s.data = snapshot
	s.log = log

	log.Info().
		Int("todos", len(snapshot.Todos)).
		Int("notes", len(snapshot.Notes)).
		Int("events", len(snapshot.Events)).
		Msg("user data loaded")
	return nil
}

func (s *entityStore) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return
	}
	s.log.Info().Msg("user data unloaded")

	s.ids.Release(s.data.IDs()...)
	s.userID = ""
	s.loaded = false
	s.data = models.EmptySnapshot()
	s.log = s.logger
}

func (s *entityStore) UserID() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.userID, s.loaded
}

// persist writes the whole snapshot. The caller holds s.mu. A failed write is
// logged; memory stays authoritative.
func (s *entityStore) persist(ctx context.Context) {
	if err := s.storage.Save(ctx, s.userID, s.data.Clone()); err != nil {
		s.log.Err(err).Msg("failed to persist snapshot")
	}
}

func (s *entityStore) Todos() []models.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.data.Clone().Todos
}

func (s *entityStore) Notes() []models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.data.Clone().Notes
}

func (s *entityStore) Events() []models.CalendarEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.data.Clone().Events
}

func (s *entityStore) Snapshot() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.data.Clone()
}

func (s *entityStore) AddTodo(ctx context.Context, draft models.TodoDraft) (models.Todo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return models.Todo{}, false
	}

	todo := models.Todo{
		ID:        s.ids.NewID(models.KindTodo),
		Title:     draft.Title,
		Completed: draft.Completed,
		DueDate:   draft.DueDate,
		Priority:  draft.Priority,
		CreatedAt: s.clock.Now(),
	}.Clone()
	s.data.Todos = append(s.data.Todos, todo)
	s.persist(ctx)

	return todo.Clone(), true
}

func (s *entityStore) UpdateTodo(ctx context.Context, id string, update models.TodoUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.data.Todos, func(t models.Todo) bool { return t.ID == id })
	if !s.loaded || i < 0 {
		return
	}

	s.data.Todos[i] = update.Apply(s.data.Todos[i])
	s.persist(ctx)
}

func (s *entityStore) DeleteTodo(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.data.Todos, func(t models.Todo) bool { return t.ID == id })
	if !s.loaded || i < 0 {
		return
	}

	s.data.Todos = slices.Delete(s.data.Todos, i, i+1)
	s.persist(ctx)
}

func (s *entityStore) AddNote(ctx context.Context, draft models.NoteDraft) (models.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return models.Note{}, false
	}

	category := draft.Category
	if strings.TrimSpace(category) == "" {
		category = models.DefaultCategory
	}

	now := s.clock.Now()
	note := models.Note{
		ID:        s.ids.NewID(models.KindNote),
		Title:     draft.Title,
		Content:   draft.Content,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.data.Notes = append(s.data.Notes, note)
	s.persist(ctx)

	return note, true
}

func (s *entityStore) UpdateNote(ctx context.Context, id string, update models.NoteUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.data.Notes, func(n models.Note) bool { return n.ID == id })
	if !s.loaded || i < 0 {
		return
	}

	note := update.Apply(s.data.Notes[i])
	note.UpdatedAt = latest(s.clock.Now(), note.UpdatedAt)
	s.data.Notes[i] = note
	s.persist(ctx)
}

func (s *entityStore) DeleteNote(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.data.Notes, func(n models.Note) bool { return n.ID == id })
	if !s.loaded || i < 0 {
		return
	}

	s.data.Notes = slices.Delete(s.data.Notes, i, i+1)
	s.persist(ctx)
}

func (s *entityStore) AddEvent(ctx context.Context, draft models.EventDraft) (models.CalendarEvent, bool) {
	events, ok := s.AddEvents(ctx, draft)
	if !ok {
		return models.CalendarEvent{}, false
	}
	return events[0], true
}

func (s *entityStore) AddEvents(ctx context.Context, drafts ...models.EventDraft) ([]models.CalendarEvent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded || len(drafts) == 0 {
		return nil, false
	}

	added := make([]models.CalendarEvent, 0, len(drafts))
	for _, draft := range drafts {
		added = append(added, models.CalendarEvent{
			ID:          s.ids.NewID(models.KindEvent),
			Title:       draft.Title,
			Description: draft.Description,
			Start:       draft.Start,
			End:         draft.End,
			Type:        draft.Type,
		})
	}
	s.data.Events = append(s.data.Events, added...)
	s.persist(ctx)

	return added, true
}

func (s *entityStore) UpdateEvent(ctx context.Context, id string, update models.EventUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.data.Events, func(e models.CalendarEvent) bool { return e.ID == id })
	if !s.loaded || i < 0 {
		return
	}

	s.data.Events[i] = update.Apply(s.data.Events[i])
	s.persist(ctx)
}

func (s *entityStore) DeleteEvent(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.data.Events, func(e models.CalendarEvent) bool { return e.ID == id })
	if !s.loaded || i < 0 {
		return
	}

	s.data.Events = slices.Delete(s.data.Events, i, i+1)
	s.persist(ctx)
}

func latest(a, b time.Time) time.Time {
	if a.Before(b) {
		return b
	}
	return a
}
