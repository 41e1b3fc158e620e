package portfolio

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "data", "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewStore(t *testing.T) {
	s := setupTestStore(t)
	if s.db == nil {
		t.Fatal("db should not be nil")
	}
}

func TestSaveAndListMessages(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"Ann", "Bob", "Cy"} {
		m, err := s.SaveMessage(ctx, ContactMessage{
			Name:      name,
			Email:     name + "@example.com",
			Message:   "hello from " + name,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("SaveMessage failed: %v", err)
		}
		if m.ID == 0 {
			t.Fatalf("expected an id for %s", name)
		}
	}

	msgs, err := s.ListMessages(ctx, 2)
	if err != nil {
		t.Fatalf("ListMessages failed: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Name != "Cy" || msgs[1].Name != "Bob" {
		t.Errorf("expected newest first, got %s, %s", msgs[0].Name, msgs[1].Name)
	}
	if !msgs[0].CreatedAt.Equal(base.Add(2 * time.Hour)) {
		t.Errorf("CreatedAt = %v", msgs[0].CreatedAt)
	}
}

func TestSaveMessageSetsCreatedAt(t *testing.T) {
	s := setupTestStore(t)
	m, err := s.SaveMessage(context.Background(), ContactMessage{Name: "A", Email: "a@example.com", Message: "m"})
	if err != nil {
		t.Fatalf("SaveMessage failed: %v", err)
	}
	if m.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestDeleteMessage(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	m, err := s.SaveMessage(ctx, ContactMessage{Name: "A", Email: "a@example.com", Message: "m"})
	if err != nil {
		t.Fatalf("SaveMessage failed: %v", err)
	}
	if err := s.DeleteMessage(ctx, m.ID); err != nil {
		t.Fatalf("DeleteMessage failed: %v", err)
	}
	if err := s.DeleteMessage(ctx, m.ID); err != nil {
		t.Fatalf("second DeleteMessage failed: %v", err)
	}
	n, err := s.CountMessages(ctx)
	if err != nil {
		t.Fatalf("CountMessages failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 messages, got %d", n)
	}
}
