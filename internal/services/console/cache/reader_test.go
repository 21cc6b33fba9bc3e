package cache

import (
	"context"
	"sync"
	"testing"

	"github.com/louisbranch/staffdesk/internal/services/console/domain"
)

type countingBackend struct {
	mu    sync.Mutex
	calls map[string]int
}

func (b *countingBackend) hit(op string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.calls == nil {
		b.calls = map[string]int{}
	}
	b.calls[op]++
}

func (b *countingBackend) count(op string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[op]
}

func (b *countingBackend) ListEmployees(context.Context) ([]domain.Employee, error) {
	b.hit("ListEmployees")
	return []domain.Employee{{ID: "E", Name: "Ada"}}, nil
}

func (b *countingBackend) GetEmployee(_ context.Context, id domain.ID) (domain.Employee, error) {
	b.hit("GetEmployee")
	return domain.Employee{ID: id, Name: "Ada"}, nil
}

func (b *countingBackend) ListEmployeeAssignments(_ context.Context, id domain.ID) ([]domain.Assignment, error) {
	b.hit("ListEmployeeAssignments")
	return []domain.Assignment{{EmployeeID: id, ProjectID: "P"}}, nil
}

func (b *countingBackend) ListProjects(context.Context) ([]domain.Project, error) {
	b.hit("ListProjects")
	return []domain.Project{{ID: "P", Name: "Apollo"}}, nil
}

func (b *countingBackend) GetProject(_ context.Context, id domain.ID) (domain.Project, error) {
	b.hit("GetProject")
	return domain.Project{ID: id}, nil
}

func (b *countingBackend) ListProjectAssignments(_ context.Context, id domain.ID) ([]domain.Assignment, error) {
	b.hit("ListProjectAssignments")
	return []domain.Assignment{{EmployeeID: "E", ProjectID: id}}, nil
}

func warm(t *testing.T, ctx context.Context, r Reader) {
	t.Helper()
	if _, err := r.ListEmployees(ctx); err != nil {
		t.Fatalf("ListEmployees: %v", err)
	}
	if _, err := r.GetEmployee(ctx, "E"); err != nil {
		t.Fatalf("GetEmployee: %v", err)
	}
	if _, err := r.ListEmployeeAssignments(ctx, "E"); err != nil {
		t.Fatalf("ListEmployeeAssignments: %v", err)
	}
	if _, err := r.ListProjects(ctx); err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	if _, err := r.ListProjectAssignments(ctx, "P"); err != nil {
		t.Fatalf("ListProjectAssignments: %v", err)
	}
}

func TestReaderRefetchesOnlyInvalidatedKeysAfterEmployeeUpdate(t *testing.T) {
	t.Parallel()

	c := newTestCache(t)
	backend := &countingBackend{}
	reader := NewReader(backend, c)
	ctx := context.Background()

	warm(t, ctx, reader)
	warm(t, ctx, reader)
	for _, op := range []string{"ListEmployees", "GetEmployee", "ListEmployeeAssignments", "ListProjects", "ListProjectAssignments"} {
		if backend.count(op) != 1 {
			t.Fatalf("%s calls = %d before invalidation, want 1", op, backend.count(op))
		}
	}

	if err := c.InvalidateMutation(ctx, Mutation{Kind: MutationUpdateEmployee, EmployeeID: "E"}); err != nil {
		t.Fatalf("InvalidateMutation() error = %v", err)
	}
	warm(t, ctx, reader)

	want := map[string]int{
		"ListEmployees":           2,
		"GetEmployee":             2,
		"ListEmployeeAssignments": 2,
		"ListProjects":            1,
		"ListProjectAssignments":  1,
	}
	for op, n := range want {
		if got := backend.count(op); got != n {
			t.Fatalf("%s calls = %d, want %d", op, got, n)
		}
	}
}

func TestReaderAssignInvalidatesBothAssignmentLists(t *testing.T) {
	t.Parallel()

	c := newTestCache(t)
	backend := &countingBackend{}
	reader := NewReader(backend, c)
	ctx := context.Background()

	warm(t, ctx, reader)
	if err := c.InvalidateMutation(ctx, Mutation{Kind: MutationAssign, EmployeeID: "E", ProjectID: "P"}); err != nil {
		t.Fatalf("InvalidateMutation() error = %v", err)
	}
	warm(t, ctx, reader)

	if backend.count("ListEmployeeAssignments") != 2 || backend.count("ListProjectAssignments") != 2 {
		t.Fatalf("assignment lists were not refetched: %v", backend.calls)
	}
}

func TestReaderWithoutCacheReadsThrough(t *testing.T) {
	t.Parallel()

	backend := &countingBackend{}
	reader := NewReader(backend, nil)
	ctx := context.Background()
	warm(t, ctx, reader)
	warm(t, ctx, reader)
	if backend.count("GetEmployee") != 2 {
		t.Fatalf("GetEmployee calls = %d, want 2", backend.count("GetEmployee"))
	}
}
