package service

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/carhive/carhive-api/internal/domain"
	"github.com/carhive/carhive-api/internal/repository/ports"
)

func TestBookmarkService_SaveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	repo := newMemoryBookmarkRepo()
	svc := NewBookmarkService(repo)

	first, err := svc.Save(ctx, userID, "v-1")
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("expected 1 bookmark, got %d", len(first))
	}

	// Re-adding the same vehicle succeeds and leaves a single membership.
	second, err := svc.Save(ctx, userID, "v-1")
	if err != nil {
		t.Fatalf("Save of existing bookmark returned error: %v", err)
	}
	if len(second) != 1 {
		t.Fatalf("expected 1 bookmark after re-add, got %d", len(second))
	}
	if second[0].CreatedAt != first[0].CreatedAt {
		t.Fatalf("re-add must not touch the existing membership")
	}
}

func TestBookmarkService_RemoveMissing(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	repo := newMemoryBookmarkRepo()
	svc := NewBookmarkService(repo)

	if _, err := svc.Remove(ctx, userID, "v-never"); !errors.Is(err, ErrBookmarkNotFound) {
		t.Fatalf("expected ErrBookmarkNotFound, got %v", err)
	}

	// Removing twice: the first succeeds, the second fails.
	if _, err := svc.Save(ctx, userID, "v-1"); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	remaining, err := svc.Remove(ctx, userID, "v-1")
	if err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected empty set after removal, got %d", len(remaining))
	}
	if _, err := svc.Remove(ctx, userID, "v-1"); !errors.Is(err, ErrBookmarkNotFound) {
		t.Fatalf("expected ErrBookmarkNotFound on second removal, got %v", err)
	}
}

func TestBookmarkService_SetsAreScopedPerUser(t *testing.T) {
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	repo := newMemoryBookmarkRepo()
	svc := NewBookmarkService(repo)

	if _, err := svc.Save(ctx, alice, "v-1"); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if _, err := svc.Save(ctx, bob, "v-1"); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if _, err := svc.Save(ctx, bob, "v-2"); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	aliceSet, err := svc.List(ctx, alice)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(aliceSet) != 1 {
		t.Fatalf("expected 1 bookmark for alice, got %d", len(aliceSet))
	}

	// Removing bob's membership leaves alice's intact.
	if _, err := svc.Remove(ctx, bob, "v-1"); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	aliceSet, err = svc.List(ctx, alice)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(aliceSet) != 1 || aliceSet[0].VehicleID != "v-1" {
		t.Fatalf("expected alice's bookmark untouched, got %+v", aliceSet)
	}
}

func TestBookmarkService_ValidationErrors(t *testing.T) {
	ctx := context.Background()
	svc := NewBookmarkService(newMemoryBookmarkRepo())

	if _, err := svc.Save(ctx, uuid.Nil, "v-1"); !errors.Is(err, ErrBookmarkValidation) {
		t.Fatalf("expected ErrBookmarkValidation for missing user, got %v", err)
	}
	if _, err := svc.Save(ctx, uuid.New(), "   "); !errors.Is(err, ErrBookmarkValidation) {
		t.Fatalf("expected ErrBookmarkValidation for blank vehicle id, got %v", err)
	}
	if _, err := svc.Remove(ctx, uuid.New(), ""); !errors.Is(err, ErrBookmarkValidation) {
		t.Fatalf("expected ErrBookmarkValidation for blank vehicle id, got %v", err)
	}
	if _, err := svc.List(ctx, uuid.Nil); !errors.Is(err, ErrBookmarkValidation) {
		t.Fatalf("expected ErrBookmarkValidation for missing user, got %v", err)
	}
}

func TestBookmarkService_ConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	repo := newMemoryBookmarkRepo()
	svc := NewBookmarkService(repo)

	const n = 16
	var wg sync.WaitGroup
	wg.Add(n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Save(ctx, userID, "v-1")
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			t.Fatalf("concurrent Save returned error: %v", err)
		}
	}
	set, err := svc.List(ctx, userID)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(set) != 1 {
		t.Fatalf("expected a single membership after concurrent saves, got %d", len(set))
	}
}

// --- Test doubles ---

type bookmarkKey struct {
	userID    uuid.UUID
	vehicleID string
}

type memoryBookmarkRepo struct {
	mu    sync.Mutex
	items map[bookmarkKey]time.Time
	clock time.Time
}

func newMemoryBookmarkRepo() *memoryBookmarkRepo {
	return &memoryBookmarkRepo{
		items: make(map[bookmarkKey]time.Time),
		clock: time.Now().UTC(),
	}
}

func (m *memoryBookmarkRepo) Add(_ context.Context, userID uuid.UUID, vehicleID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := bookmarkKey{userID: userID, vehicleID: vehicleID}
	if _, ok := m.items[key]; ok {
		return nil
	}
	m.clock = m.clock.Add(time.Second)
	m.items[key] = m.clock
	return nil
}

func (m *memoryBookmarkRepo) Remove(_ context.Context, userID uuid.UUID, vehicleID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := bookmarkKey{userID: userID, vehicleID: vehicleID}
	if _, ok := m.items[key]; !ok {
		return sql.ErrNoRows
	}
	delete(m.items, key)
	return nil
}

func (m *memoryBookmarkRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.Bookmark, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	bookmarks := []domain.Bookmark{}
	for key, createdAt := range m.items {
		if key.userID == userID {
			bookmarks = append(bookmarks, domain.Bookmark{
				UserID:    key.userID,
				VehicleID: key.vehicleID,
				CreatedAt: createdAt,
			})
		}
	}
	sort.Slice(bookmarks, func(i, j int) bool { return bookmarks[i].CreatedAt.After(bookmarks[j].CreatedAt) })
	return bookmarks, nil
}

var _ ports.BookmarkRepository = (*memoryBookmarkRepo)(nil)
