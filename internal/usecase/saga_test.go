package usecase

import (
	"context"
	"errors"
	"testing"
)

func TestSagaRunsAllStepsInOrder(t *testing.T) {
	var trace []string
	step := func(name string) sagaStep {
		return sagaStep{
			name: name,
			do: func(context.Context) error {
				trace = append(trace, "do:"+name)
				return nil
			},
			undo: func(context.Context) error {
				trace = append(trace, "undo:"+name)
				return nil
			},
		}
	}

	if err := newSaga(step("a"), step("b"), step("c")).run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"do:a", "do:b", "do:c"}
	if len(trace) != len(want) {
		t.Fatalf("unexpected trace: %v", trace)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Fatalf("unexpected trace: %v", trace)
		}
	}
}

func TestSagaCompensatesInReverseIncludingFailedStep(t *testing.T) {
	boom := errors.New("step b failed")
	var trace []string
	mk := func(name string, fail bool) sagaStep {
		return sagaStep{
			name: name,
			do: func(context.Context) error {
				trace = append(trace, "do:"+name)
				if fail {
					return boom
				}
				return nil
			},
			undo: func(context.Context) error {
				trace = append(trace, "undo:"+name)
				return nil
			},
		}
	}

	err := newSaga(mk("a", false), mk("b", true), mk("c", false)).run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped step error, got %v", err)
	}

	// The failed step's own undo runs first: its work may be partially
	// applied. Step c never ran and is never compensated.
	want := []string{"do:a", "do:b", "undo:b", "undo:a"}
	if len(trace) != len(want) {
		t.Fatalf("unexpected trace: %v", trace)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Fatalf("unexpected trace: %v", trace)
		}
	}
}

func TestSagaUndoErrorsAreSwallowed(t *testing.T) {
	boom := errors.New("do failed")
	undone := false

	err := newSaga(
		sagaStep{
			name: "a",
			do:   func(context.Context) error { return nil },
			undo: func(context.Context) error { return errors.New("undo also failed") },
		},
		sagaStep{
			name: "b",
			do:   func(context.Context) error { return boom },
			undo: func(context.Context) error { undone = true; return nil },
		},
	).run(context.Background())

	if !errors.Is(err, boom) {
		t.Fatalf("expected the original failure, got %v", err)
	}
	if !undone {
		t.Fatalf("expected step b to be compensated")
	}
}

func TestSagaNilUndoIsSkipped(t *testing.T) {
	boom := errors.New("last step failed")

	err := newSaga(
		sagaStep{name: "a", do: func(context.Context) error { return nil }, undo: nil},
		sagaStep{name: "b", do: func(context.Context) error { return boom }, undo: nil},
	).run(context.Background())

	if !errors.Is(err, boom) {
		t.Fatalf("expected step error, got %v", err)
	}
}
