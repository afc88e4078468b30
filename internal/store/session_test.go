package store

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestSessionCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	when := time.Date(2026, 3, 2, 19, 30, 0, 0, time.UTC)
	created, err := repo.Create(ctx, CreateSessionData{
		Topic:            "Neural Networks",
		DurationMinutes:  45.5,
		Completed:        true,
		Date:             when,
		Notes:            "backprop finally clicked",
		DifficultyRating: 4,
		FocusLevel:       7,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected assigned id")
	}

	got, err := repo.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected session")
	}
	if got.Topic != "Neural Networks" || got.DurationMinutes != 45.5 || !got.Completed {
		t.Errorf("session = %+v", got)
	}
	if !got.Date.Equal(when) {
		t.Errorf("date = %v, want %v", got.Date, when)
	}
	if got.DifficultyRating != 4 || got.FocusLevel != 7 {
		t.Errorf("ratings = %d/%d, want 4/7", got.DifficultyRating, got.FocusLevel)
	}
}

func TestSessionDefaults(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateSessionData{
		Topic:           "fractions",
		DurationMinutes: 25,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if created.Completed {
		t.Error("completed should default to false")
	}
	if created.Date.IsZero() {
		t.Error("date should default to now")
	}
	if created.DifficultyRating != 0 || created.FocusLevel != 0 {
		t.Errorf("unrated session got ratings %d/%d", created.DifficultyRating, created.FocusLevel)
	}
}

func TestSessionValidation(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	tests := []struct {
		name string
		data CreateSessionData
	}{
		{"empty topic", CreateSessionData{Topic: "", DurationMinutes: 25}},
		{"topic too long", CreateSessionData{Topic: strings.Repeat("x", 201), DurationMinutes: 25}},
		{"non-positive duration", CreateSessionData{Topic: "a", DurationMinutes: 0}},
		{"difficulty out of range", CreateSessionData{Topic: "a", DurationMinutes: 25, DifficultyRating: 6}},
		{"focus out of range", CreateSessionData{Topic: "a", DurationMinutes: 25, FocusLevel: 11}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := repo.Create(ctx, tt.data); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSessionList(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, CreateSessionData{
			Topic:           "algebra",
			DurationMinutes: 25,
			Date:            base.AddDate(0, 0, i),
			Completed:       i == 2,
		})
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}
	if _, err := repo.Create(ctx, CreateSessionData{
		Topic:           "geometry",
		DurationMinutes: 30,
		Date:            base.AddDate(0, 0, 5),
	}); err != nil {
		t.Fatalf("create geometry: %v", err)
	}

	all, err := repo.List(ctx, SessionQueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("len = %d, want 4", len(all))
	}
	// Newest first.
	if all[0].Topic != "geometry" {
		t.Errorf("first = %q, want geometry", all[0].Topic)
	}

	byTopic, err := repo.List(ctx, SessionQueryOpts{Topic: "algebra"})
	if err != nil {
		t.Fatalf("list by topic: %v", err)
	}
	if len(byTopic) != 3 {
		t.Errorf("algebra sessions = %d, want 3", len(byTopic))
	}

	done, err := repo.List(ctx, SessionQueryOpts{CompletedOnly: true})
	if err != nil {
		t.Fatalf("list completed: %v", err)
	}
	if len(done) != 1 {
		t.Errorf("completed sessions = %d, want 1", len(done))
	}

	limited, err := repo.List(ctx, SessionQueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limited sessions = %d, want 2", len(limited))
	}
}

func TestSessionUpdate(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateSessionData{
		Topic:           "calculus",
		DurationMinutes: 50,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	completed := true
	notes := "finished the derivative drills"
	focus := 8
	updated, err := repo.Update(ctx, created.ID, SessionUpdate{
		Completed:  &completed,
		Notes:      &notes,
		FocusLevel: &focus,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if !updated.Completed || updated.Notes != notes || updated.FocusLevel != 8 {
		t.Errorf("updated = %+v", updated)
	}
	// Untouched fields survive.
	if updated.Topic != "calculus" || updated.DurationMinutes != 50 {
		t.Errorf("update clobbered fields: %+v", updated)
	}
}

func TestSessionDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateSessionData{
		Topic:           "trigonometry",
		DurationMinutes: 20,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	got, err := repo.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if got != nil {
		t.Error("expected nil after delete")
	}
}
