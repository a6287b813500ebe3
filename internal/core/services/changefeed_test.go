package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/biztrackr/biz_tracker_app/internal/core/domain"
	"github.com/biztrackr/biz_tracker_app/internal/core/services"
	"github.com/biztrackr/biz_tracker_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// stubTaskRepo is an in-memory task store for exercising the live query loop
// end to end (create, notify, re-query, snapshot).
type stubTaskRepo struct {
	mu      sync.Mutex
	tasks   []domain.Task
	queries int
}

func (s *stubTaskRepo) SaveTask(ctx context.Context, task domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, task)
	return nil
}

func (s *stubTaskRepo) FindTasksByOwner(ctx context.Context, ownerID string) ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries++
	var out []domain.Task
	for _, t := range s.tasks {
		if t.OwnerID == ownerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *stubTaskRepo) queryCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queries
}

// receiveSnapshot waits briefly for the next snapshot on ch.
func receiveSnapshot(t *testing.T, ch <-chan []domain.Task) []domain.Task {
	t.Helper()
	select {
	case snap, ok := <-ch:
		require.True(t, ok, "stream closed unexpectedly")
		return snap
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot")
		return nil
	}
}

// expectNoSnapshot asserts ch stays quiet for a short window.
func expectNoSnapshot(t *testing.T, ch <-chan []domain.Task) {
	t.Helper()
	select {
	case snap := <-ch:
		t.Fatalf("unexpected snapshot: %v", snap)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatchTasks_ReplacementSnapshotPerCreate(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ownerID := uuid.NewString()
	repo := &stubTaskRepo{}
	svc := services.NewTaskService(repo, services.NewChangefeed())

	ch, err := svc.WatchTasks(ctx, ownerID)
	require.NoError(t, err)

	// Full snapshot on subscribe, empty collection included.
	require.Empty(t, receiveSnapshot(t, ch))

	_, err = svc.CreateTask(ctx, ownerID, dto.CreateTaskRequest{Name: "Restock shelves", Due: "2026-09-15"})
	require.NoError(t, err)
	require.Len(t, receiveSnapshot(t, ch), 1)

	// Snapshots replace the whole list rather than diffing.
	_, err = svc.CreateTask(ctx, ownerID, dto.CreateTaskRequest{Name: "Pay suppliers", Due: "2026-10-01"})
	require.NoError(t, err)
	require.Len(t, receiveSnapshot(t, ch), 2)

	// Cancellation tears the stream down.
	cancel()
	require.Eventually(t, func() bool {
		_, open := <-ch
		return !open
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWatchTasks_NeverCarriesAnotherOwnersRecords(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ownerID := uuid.NewString()
	otherOwner := uuid.NewString()
	repo := &stubTaskRepo{}
	svc := services.NewTaskService(repo, services.NewChangefeed())

	_, err := svc.CreateTask(ctx, otherOwner, dto.CreateTaskRequest{Name: "Their task", Due: "2026-09-01"})
	require.NoError(t, err)

	ch, err := svc.WatchTasks(ctx, ownerID)
	require.NoError(t, err)

	// The other owner's pre-existing task never shows up.
	require.Empty(t, receiveSnapshot(t, ch))
	queriesAfterSubscribe := repo.queryCount()

	// A create by another owner neither nudges this stream nor re-queries it.
	_, err = svc.CreateTask(ctx, otherOwner, dto.CreateTaskRequest{Name: "Another of theirs", Due: "2026-09-02"})
	require.NoError(t, err)
	expectNoSnapshot(t, ch)
	require.Equal(t, queriesAfterSubscribe, repo.queryCount())

	// The watcher's own creates still flow, scoped to them.
	_, err = svc.CreateTask(ctx, ownerID, dto.CreateTaskRequest{Name: "Mine", Due: "2026-09-03"})
	require.NoError(t, err)
	snap := receiveSnapshot(t, ch)
	require.Len(t, snap, 1)
	for _, task := range snap {
		require.Equal(t, ownerID, task.OwnerID)
	}
}
