package leaderboard

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/geo"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

func newTestService(t *testing.T, opts ...Option) (*Service, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	opts = append([]Option{WithLogger(log.New(io.Discard))}, opts...)
	return New(store, opts...), store
}

func TestSubmitRecordsRegion(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t,
		WithLocator(geo.Static{"203.0.113.7": "Bavaria Munich"}, time.Second))

	row, err := svc.Submit(ctx, Submission{Name: "Alice", Score: 42}, "203.0.113.7")
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if row.Region != "Bavaria Munich" {
		t.Errorf("Expected region Bavaria Munich, got %q", row.Region)
	}

	all, _ := store.AllScores(ctx)
	if len(all) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(all))
	}
	if all[0].IP != "203.0.113.7" || all[0].Name != "Alice" || all[0].Score != 42 {
		t.Errorf("Unexpected row %+v", all[0])
	}
}

func TestSubmitUnknownRegion(t *testing.T) {
	svc, _ := newTestService(t)

	row, err := svc.Submit(context.Background(), Submission{Name: "Bob", Score: 1}, "10.0.0.1")
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if row.Region != geo.Unknown {
		t.Errorf("Expected %q, got %q", geo.Unknown, row.Region)
	}
}

func TestSubmitInvalidWritesNothing(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	_, err := svc.Submit(ctx, Submission{Name: " ", Score: 5}, "10.0.0.1")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}

	all, _ := store.AllScores(ctx)
	if len(all) != 0 {
		t.Errorf("Expected no rows, got %d", len(all))
	}
}

func TestTopOrdersByScore(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	for _, score := range []int{10, 50, 30} {
		if _, err := svc.Submit(ctx, Submission{Name: "p", Score: score}, ""); err != nil {
			t.Fatalf("Submit() failed: %v", err)
		}
	}

	rows, err := svc.Top(ctx)
	if err != nil {
		t.Fatalf("Top() failed: %v", err)
	}
	want := []int{50, 30, 10}
	if len(rows) != len(want) {
		t.Fatalf("Expected %d rows, got %d", len(want), len(rows))
	}
	for i, w := range want {
		if rows[i].Score != w {
			t.Errorf("Position %d: expected %d, got %d", i, w, rows[i].Score)
		}
	}
}

func TestTopRespectsSize(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, WithSize(2))

	for i := 0; i < 5; i++ {
		svc.Submit(ctx, Submission{Name: "p", Score: i}, "")
	}

	rows, err := svc.Top(ctx)
	if err != nil {
		t.Fatalf("Top() failed: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("Expected 2 rows, got %d", len(rows))
	}
}

func TestOnSubmitListener(t *testing.T) {
	svc, _ := newTestService(t)

	var got []Row
	svc.OnSubmit(func(r Row) { got = append(got, r) })

	svc.Submit(context.Background(), Submission{Name: "Alice", Score: 42}, "")
	svc.Submit(context.Background(), Submission{Name: "", Score: 1}, "")

	if len(got) != 1 {
		t.Fatalf("Expected one notification, got %d", len(got))
	}
	if got[0].Name != "Alice" || got[0].Score != 42 {
		t.Errorf("Unexpected row %+v", got[0])
	}
}

func TestListenersAddedDuringSubmit(t *testing.T) {
	svc, _ := newTestService(t)

	var order []string
	svc.OnSubmit(func(Row) {
		order = append(order, "first")
		// Registering from a callback must not block, and only takes
		// effect from the next submission.
		svc.OnSubmit(func(Row) { order = append(order, "late") })
	})
	svc.OnSubmit(func(Row) { order = append(order, "second") })

	if _, err := svc.Submit(context.Background(), Submission{Name: "Alice", Score: 42}, ""); err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}

	want := []string{"first", "second"}
	if len(order) != len(want) || order[0] != want[0] || order[1] != want[1] {
		t.Errorf("Listener order = %v, want %v", order, want)
	}
}

type failingStore struct{}

var errDiskFull = errors.New("disk full")

func (failingStore) SaveScore(context.Context, storage.Entry) (int64, error) {
	return 0, errDiskFull
}

func (failingStore) TopScores(context.Context, int) ([]storage.Entry, error) {
	return nil, errDiskFull
}

func (failingStore) AllScores(context.Context) ([]storage.Entry, error) {
	return nil, errDiskFull
}

func (failingStore) Stats(context.Context) (storage.Stats, error) {
	return storage.Stats{}, errDiskFull
}

func TestStorageErrors(t *testing.T) {
	ctx := context.Background()
	svc := New(failingStore{}, WithLogger(log.New(io.Discard)))

	_, err := svc.Submit(ctx, Submission{Name: "Alice", Score: 1}, "")
	var serr *StorageError
	if !errors.As(err, &serr) {
		t.Fatalf("Expected StorageError, got %v", err)
	}
	if !errors.Is(err, errDiskFull) {
		t.Error("StorageError should unwrap to the store error")
	}

	if _, err := svc.Top(ctx); !errors.As(err, &serr) {
		t.Errorf("Top: expected StorageError, got %v", err)
	}
	if _, err := svc.All(ctx); !errors.As(err, &serr) {
		t.Errorf("All: expected StorageError, got %v", err)
	}
	if _, err := svc.Stats(ctx); !errors.As(err, &serr) {
		t.Errorf("Stats: expected StorageError, got %v", err)
	}
}
