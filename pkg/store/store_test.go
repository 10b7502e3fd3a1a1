package store

import (
	"context"
	"testing"

	"github.com/pegflow/daxport/pkg/errors"
	"github.com/pegflow/daxport/pkg/io"
)

func TestMemoryStorePutGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	doc := io.Graph{
		Name: "etl",
		Jobs: []io.Job{{ID: "a"}, {ID: "b"}},
		Dependencies: []io.Dependency{
			{From: "a", To: "b"},
		},
	}

	if err := s.Put(ctx, "etl", doc); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := s.Get(ctx, "etl")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got.Jobs) != 2 || len(got.Dependencies) != 1 {
		t.Errorf("Get returned %d jobs, %d dependencies; want 2 and 1", len(got.Jobs), len(got.Dependencies))
	}

	// Put replaces an existing document
	doc.Jobs = doc.Jobs[:1]
	doc.Dependencies = nil
	if err := s.Put(ctx, "etl", doc); err != nil {
		t.Fatalf("Put replace: %v", err)
	}
	got, _ = s.Get(ctx, "etl")
	if len(got.Jobs) != 1 {
		t.Errorf("replace should overwrite: got %d jobs", len(got.Jobs))
	}
}

func TestMemoryStoreNotFound(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "ghost")
	if !errors.Is(err, errors.ErrCodeWorkflowNotFound) {
		t.Errorf("Get error = %v, want code %v", err, errors.ErrCodeWorkflowNotFound)
	}

	err = s.Delete(ctx, "ghost")
	if !errors.Is(err, errors.ErrCodeWorkflowNotFound) {
		t.Errorf("Delete error = %v, want code %v", err, errors.ErrCodeWorkflowNotFound)
	}
}

func TestMemoryStoreInvalidName(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	tests := []string{"", "a/b", "..", "has\x00null"}
	for _, name := range tests {
		if err := s.Put(ctx, name, io.Graph{}); !errors.Is(err, errors.ErrCodeInvalidName) {
			t.Errorf("Put(%q) error = %v, want code %v", name, err, errors.ErrCodeInvalidName)
		}
	}
}

func TestMemoryStoreListOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := s.Put(ctx, name, io.Graph{}); err != nil {
			t.Fatalf("Put(%q): %v", name, err)
		}
	}

	names, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"zeta", "alpha", "mid"}
	if len(names) != len(want) {
		t.Fatalf("List returned %d names, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("List[%d] = %q, want %q (insertion order)", i, names[i], want[i])
		}
	}

	// Re-putting an existing name must not duplicate it
	s.Put(ctx, "alpha", io.Graph{})
	names, _ = s.List(ctx)
	if len(names) != 3 {
		t.Errorf("List after replace returned %d names, want 3", len(names))
	}

	if err := s.Delete(ctx, "alpha"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	names, _ = s.List(ctx)
	if len(names) != 2 || names[0] != "zeta" || names[1] != "mid" {
		t.Errorf("List after delete = %v, want [zeta mid]", names)
	}
}
