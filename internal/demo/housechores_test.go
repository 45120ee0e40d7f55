package demo

import (
	"bytes"
	"testing"
)

const wantTree = `House Chores
 └ Bathroom 0/1
	 └ Do Laundry - To be done - Medium
 └ Kitchen 1/4
	 ├ Empty Dishwasher - To be done - High
	 ├ Do Dishes - To be done - Low
	 ├ Cook Dinner - In progress - High
	 └ Paint Walls - Done - Medium
`

func TestHouseChores(t *testing.T) {
	w, err := HouseChores()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if w.Name() != WorkspaceName {
		t.Errorf("got name %q, want %q", w.Name(), WorkspaceName)
	}
	if w.Len() != 2 {
		t.Fatalf("got %d lists, want 2", w.Len())
	}

	kitchen, err := w.FindTaskListByName("Kitchen")
	if err != nil {
		t.Fatal(err)
	}
	// Insertion order until sorted.
	want := []string{"Paint Walls", "Do Dishes", "Empty Dishwasher", "Cook Dinner"}
	tasks := kitchen.Tasks()
	if len(tasks) != len(want) {
		t.Fatalf("got %d kitchen tasks, want %d", len(tasks), len(want))
	}
	for i, task := range tasks {
		if task.Description() != want[i] {
			t.Errorf("task %d: got %q, want %q", i, task.Description(), want[i])
		}
	}
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	w, err := Run(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := buf.String(); got != wantTree {
		t.Errorf("got:\n%s\nwant:\n%s", got, wantTree)
	}
	if w.String()+"\n" != wantTree {
		t.Error("returned workspace does not match printed tree")
	}
}
