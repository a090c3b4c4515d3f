package filters

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"feedwatch-go/internal/models"
)

func assertContiguous(t *testing.T, r *Registry) {
	t.Helper()
	list := r.List()
	for i, f := range list {
		if f.Order != i {
			t.Fatalf("order not contiguous: position %d has order %d (%v)", i, f.Order, list)
		}
	}
}

func TestAddAssignsOrderAndDefaults(t *testing.T) {
	r := NewRegistry()

	f, err := r.Add("Is there a person? Respond True/False.")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if f.Order != 0 || !f.IsActive || f.Status != models.FilterStatusIdle {
		t.Fatalf("unexpected defaults: %+v", f)
	}
	if f.Evaluated || f.Result != "" {
		t.Fatalf("new filter should have no result: %+v", f)
	}

	second, _ := r.Add("Is the door open?")
	if second.Order != 1 {
		t.Fatalf("second filter order = %d, want 1", second.Order)
	}
	if second.ID == f.ID {
		t.Fatal("duplicate filter ID assigned")
	}
	assertContiguous(t, r)
}

func TestAddRejectsEmptyPrompt(t *testing.T) {
	r := NewRegistry()
	for _, prompt := range []string{"", "   ", "\t\n"} {
		if _, err := r.Add(prompt); !errors.Is(err, ErrValidation) {
			t.Errorf("Add(%q) error = %v, want ErrValidation", prompt, err)
		}
	}
	if r.Count() != 0 {
		t.Fatalf("rejected adds changed state: count = %d", r.Count())
	}
}

func TestRemoveRenumbers(t *testing.T) {
	r := NewRegistry()
	a, _ := r.Add("a")
	b, _ := r.Add("b")
	c, _ := r.Add("c")

	if err := r.Remove(b.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	assertContiguous(t, r)

	list := r.List()
	if len(list) != 2 || list[0].ID != a.ID || list[1].ID != c.ID {
		t.Fatalf("unexpected list after remove: %v", list)
	}

	if err := r.Remove("filter_999"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove unknown error = %v, want ErrNotFound", err)
	}
}

func TestMoveSwapsNeighbors(t *testing.T) {
	r := NewRegistry()
	first, _ := r.Add("first")
	second, _ := r.Add("second")

	if err := r.Move(second.ID, -1); err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	list := r.List()
	if list[0].ID != second.ID || list[1].ID != first.ID {
		t.Fatalf("move did not swap: %v", list)
	}
	assertContiguous(t, r)

	// Boundary moves are no-ops, not errors.
	if err := r.Move(second.ID, -1); err != nil {
		t.Fatalf("boundary move errored: %v", err)
	}
	if got := r.List(); got[0].ID != second.ID {
		t.Fatalf("boundary move changed order: %v", got)
	}

	if err := r.Move("filter_999", 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Move unknown error = %v, want ErrNotFound", err)
	}
	if err := r.Move(first.ID, 2); !errors.Is(err, ErrValidation) {
		t.Errorf("Move direction 2 error = %v, want ErrValidation", err)
	}
}

func TestToggleLeavesResultAndPrompt(t *testing.T) {
	r := NewRegistry()
	f, _ := r.Add("Is it raining?")
	r.CompleteEvaluation(f.ID, "True", time.Now())

	active, err := r.Toggle(f.ID)
	if err != nil || active {
		t.Fatalf("Toggle = (%v, %v), want (false, nil)", active, err)
	}

	got := r.List()[0]
	if got.Result != "True" || got.Prompt != "Is it raining?" {
		t.Fatalf("toggle touched result or prompt: %+v", got)
	}

	active, _ = r.Toggle(f.ID)
	if !active {
		t.Fatal("second toggle should re-activate")
	}
}

func TestCompleteEvaluationAfterRemoveIsNoop(t *testing.T) {
	r := NewRegistry()
	f, _ := r.Add("gone soon")
	r.BeginEvaluation(f.ID)

	if err := r.Remove(f.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	// The in-flight evaluation completes; it must neither panic nor
	// resurrect the filter.
	r.CompleteEvaluation(f.ID, "True", time.Now())
	r.BeginEvaluation(f.ID)

	if r.Count() != 0 {
		t.Fatalf("removed filter resurrected: count = %d", r.Count())
	}
}

func TestScenarioAddMoveRemove(t *testing.T) {
	r := NewRegistry()

	first, _ := r.Add("Is there a person? Respond True/False.")
	list := r.List()
	if len(list) != 1 || list[0].Order != 0 || !list[0].IsActive || list[0].Evaluated {
		t.Fatalf("after first add: %v", list)
	}

	second, _ := r.Add("Is there a vehicle?")
	list = r.List()
	if list[0].Order != 0 || list[1].Order != 1 {
		t.Fatalf("after second add: %v", list)
	}

	if err := r.Move(second.ID, -1); err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	list = r.List()
	if list[0].ID != second.ID || list[0].Order != 0 {
		t.Fatalf("second filter should now lead: %v", list)
	}

	if err := r.Remove(first.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	list = r.List()
	if len(list) != 1 || list[0].ID != second.ID || list[0].Order != 0 {
		t.Fatalf("after remove: %v", list)
	}
}

func TestRandomOpsKeepPermutation(t *testing.T) {
	r := NewRegistry()
	rng := rand.New(rand.NewSource(1))
	var ids []string

	for i := 0; i < 300; i++ {
		switch op := rng.Intn(3); {
		case op == 0 || len(ids) == 0:
			f, err := r.Add("prompt")
			if err != nil {
				t.Fatalf("Add failed: %v", err)
			}
			ids = append(ids, f.ID)
		case op == 1:
			j := rng.Intn(len(ids))
			if err := r.Remove(ids[j]); err != nil {
				t.Fatalf("Remove failed: %v", err)
			}
			ids = append(ids[:j], ids[j+1:]...)
		default:
			j := rng.Intn(len(ids))
			dir := 1
			if rng.Intn(2) == 0 {
				dir = -1
			}
			if err := r.Move(ids[j], dir); err != nil {
				t.Fatalf("Move failed: %v", err)
			}
		}
		assertContiguous(t, r)
	}
}

func TestActiveFiltersInOrder(t *testing.T) {
	r := NewRegistry()
	a, _ := r.Add("a")
	b, _ := r.Add("b")
	c, _ := r.Add("c")
	r.Toggle(b.ID)

	active := r.Active()
	if len(active) != 2 || active[0].ID != a.ID || active[1].ID != c.ID {
		t.Fatalf("Active() = %v", active)
	}
}
