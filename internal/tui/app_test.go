package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pablasso/tasktree/internal/tui/msgs"
	"github.com/pablasso/tasktree/internal/workspace"
)

type fakeSaver struct {
	saved      []string
	workspaces []*workspace.Workspace
	err        error
}

func (f *fakeSaver) Save(fileName string, w *workspace.Workspace) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, fileName)
	f.workspaces = append(f.workspaces, w)
	return nil
}

func testWorkspace(t *testing.T) *workspace.Workspace {
	t.Helper()

	w, err := workspace.NewWorkspace("House Chores")
	if err != nil {
		t.Fatal(err)
	}
	kitchen, err := workspace.NewTaskList("Kitchen")
	if err != nil {
		t.Fatal(err)
	}
	seeds := []struct {
		desc     string
		priority workspace.Priority
		status   workspace.Status
	}{
		{"Paint Walls", workspace.PriorityMedium, workspace.StatusDone},
		{"Do Dishes", workspace.PriorityLow, workspace.StatusToBeDone},
		{"Empty Dishwasher", workspace.PriorityHigh, workspace.StatusToBeDone},
		{"Cook Dinner", workspace.PriorityHigh, workspace.StatusInProgress},
	}
	for _, s := range seeds {
		task, err := workspace.NewTask(s.desc, s.priority, s.status)
		if err != nil {
			t.Fatal(err)
		}
		if err := kitchen.AddTask(task); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.AddTaskList(kitchen); err != nil {
		t.Fatal(err)
	}
	return w
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func sizedModel(t *testing.T, opts Options) Model {
	t.Helper()
	updated, _ := New(opts).Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

func kitchenOrder(t *testing.T, w *workspace.Workspace) []string {
	t.Helper()
	list, err := w.FindTaskListByName("Kitchen")
	if err != nil {
		t.Fatal(err)
	}
	var out []string
	for _, task := range list.Tasks() {
		out = append(out, task.Description())
	}
	return out
}

func TestModel_SortKeys(t *testing.T) {
	tests := []struct {
		key  rune
		mode workspace.SortMode
		want []string
	}{
		{'s', workspace.SortByStatus, []string{"Do Dishes", "Empty Dishwasher", "Cook Dinner", "Paint Walls"}},
		{'p', workspace.SortByPriority, []string{"Empty Dishwasher", "Cook Dinner", "Paint Walls", "Do Dishes"}},
		{'b', workspace.SortByStatusThenPriority, []string{"Empty Dishwasher", "Do Dishes", "Cook Dinner", "Paint Walls"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			w := testWorkspace(t)
			m := sizedModel(t, Options{Workspace: w})

			updated, cmd := m.Update(keyRune(tt.key))
			m = updated.(Model)

			if cmd != nil {
				t.Error("sorting should not return a command")
			}
			if m.SortedBy() != tt.mode {
				t.Errorf("got sort mode %q, want %q", m.SortedBy(), tt.mode)
			}
			if !m.Dirty() {
				t.Error("expected model to be dirty after sorting")
			}
			got := kitchenOrder(t, w)
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("got order %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModel_View_ReflectsSort(t *testing.T) {
	w := testWorkspace(t)
	m := sizedModel(t, Options{Workspace: w})

	before := m.View()
	if strings.Index(before, "Paint Walls") > strings.Index(before, "Do Dishes") {
		t.Fatal("expected insertion order before sorting")
	}

	updated, _ := m.Update(keyRune('b'))
	after := updated.(Model).View()

	if strings.Index(after, "Empty Dishwasher") > strings.Index(after, "Paint Walls") {
		t.Errorf("expected Empty Dishwasher above Paint Walls after sort:\n%s", after)
	}
	for _, want := range []string{"House Chores", "Kitchen", "1/4", "In progress", "Sorted by status then priority"} {
		if !strings.Contains(after, want) {
			t.Errorf("view missing %q:\n%s", want, after)
		}
	}
}

func TestModel_Write(t *testing.T) {
	w := testWorkspace(t)
	saver := &fakeSaver{}
	m := sizedModel(t, Options{Workspace: w, FileName: "house.json", Saver: saver})

	updated, _ := m.Update(keyRune('s'))
	updated, cmd := updated.(Model).Update(keyRune('w'))
	if cmd == nil {
		t.Fatal("expected a save command")
	}

	msg := cmd()
	saved, ok := msg.(msgs.WorkspaceSavedMsg)
	if !ok {
		t.Fatalf("expected WorkspaceSavedMsg, got %T", msg)
	}
	if saved.FileName != "house.json" || len(saver.saved) != 1 {
		t.Errorf("unexpected save: %+v, saver calls %v", saved, saver.saved)
	}

	updated, _ = updated.(Model).Update(msg)
	m = updated.(Model)
	if m.Dirty() {
		t.Error("expected model to be clean after save")
	}
	if !strings.Contains(m.View(), "Saved house.json") {
		t.Errorf("expected save confirmation in view:\n%s", m.View())
	}
}

func TestModel_WriteUsesSnapshot(t *testing.T) {
	w := testWorkspace(t)
	saver := &fakeSaver{}
	m := sizedModel(t, Options{Workspace: w, FileName: "house.json", Saver: saver})

	updated, _ := m.Update(keyRune('p'))
	updated, cmd := updated.(Model).Update(keyRune('w'))
	if cmd == nil {
		t.Fatal("expected a save command")
	}
	atWrite := kitchenOrder(t, w)

	// Sorting while the save is in flight must not reach the saved copy.
	updated, _ = updated.(Model).Update(keyRune('s'))
	if strings.Join(kitchenOrder(t, w), ",") == strings.Join(atWrite, ",") {
		t.Fatal("expected the live order to change")
	}

	msg := cmd()
	if len(saver.workspaces) != 1 {
		t.Fatalf("expected one save, got %d", len(saver.workspaces))
	}
	written := saver.workspaces[0]
	if written == w {
		t.Fatal("saver was handed the live workspace")
	}
	if got := kitchenOrder(t, written); strings.Join(got, ",") != strings.Join(atWrite, ",") {
		t.Errorf("saved order %v, want order at write time %v", got, atWrite)
	}

	updated, _ = updated.(Model).Update(msg)
	if !updated.(Model).Dirty() {
		t.Error("a sort after the write started should leave the model dirty")
	}
}

func TestModel_WriteIgnoredWhileSaving(t *testing.T) {
	m := sizedModel(t, Options{Workspace: testWorkspace(t), FileName: "house.json", Saver: &fakeSaver{}})

	updated, first := m.Update(keyRune('w'))
	_, second := updated.(Model).Update(keyRune('w'))
	if first == nil {
		t.Fatal("expected a save command")
	}
	if second != nil {
		t.Error("expected a second write to be ignored while saving")
	}
}

func TestModel_WriteFailure(t *testing.T) {
	saver := &fakeSaver{err: errors.New("disk full")}
	m := sizedModel(t, Options{Workspace: testWorkspace(t), FileName: "house.json", Saver: saver})

	updated, cmd := m.Update(keyRune('w'))
	updated, _ = updated.(Model).Update(cmd())
	m = updated.(Model)

	if m.Err() == nil || !strings.Contains(m.Err().Error(), "disk full") {
		t.Fatalf("expected save error, got %v", m.Err())
	}
	if !strings.Contains(m.View(), "disk full") {
		t.Errorf("expected error in view:\n%s", m.View())
	}
}

func TestModel_WriteWithoutSaver(t *testing.T) {
	m := sizedModel(t, Options{Workspace: testWorkspace(t)})

	updated, cmd := m.Update(keyRune('w'))
	if cmd != nil {
		t.Error("expected no command without a saver")
	}
	if updated.(Model).Err() == nil {
		t.Error("expected an error without a saver")
	}
}

func TestModel_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{keyRune('q'), {Type: tea.KeyCtrlC}} {
		t.Run(msg.String(), func(t *testing.T) {
			_, cmd := sizedModel(t, Options{Workspace: testWorkspace(t)}).Update(msg)
			if cmd == nil {
				t.Fatal("expected quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("expected tea.QuitMsg, got %T", cmd())
			}
		})
	}
}

func TestModel_View_TerminalTooSmall(t *testing.T) {
	tests := []struct {
		name        string
		width       int
		height      int
		expectSmall bool
	}{
		{"exactly minimum size", MinTerminalWidth, MinTerminalHeight, false},
		{"width too small", MinTerminalWidth - 1, MinTerminalHeight, true},
		{"height too small", MinTerminalWidth, MinTerminalHeight - 1, true},
		{"larger than minimum", 100, 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated, _ := New(Options{Workspace: testWorkspace(t)}).Update(tea.WindowSizeMsg{Width: tt.width, Height: tt.height})
			view := updated.(Model).View()

			if got := strings.Contains(view, "Terminal too small"); got != tt.expectSmall {
				t.Errorf("too-small message shown = %v, want %v:\n%s", got, tt.expectSmall, view)
			}
		})
	}
}

func TestModel_View_BeforeSize(t *testing.T) {
	if got := New(Options{Workspace: testWorkspace(t)}).View(); got != "Loading..." {
		t.Errorf("got %q", got)
	}
}

func TestModel_Scroll(t *testing.T) {
	w, _ := workspace.NewWorkspace("Long")
	list, _ := workspace.NewTaskList("Many")
	for i := 0; i < 50; i++ {
		task, _ := workspace.NewTask(strings.Repeat("x", i+1), workspace.DefaultPriority, workspace.DefaultStatus)
		list.AddTask(task)
	}
	w.AddTaskList(list)

	updated, _ := New(Options{Workspace: w}).Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	m := updated.(Model)

	updated, _ = m.Update(keyRune('j'))
	if updated.(Model).viewport.YOffset != 1 {
		t.Errorf("expected j to scroll down one line, offset %d", updated.(Model).viewport.YOffset)
	}

	updated, _ = updated.(Model).Update(tea.KeyMsg{Type: tea.KeyUp})
	if updated.(Model).viewport.YOffset != 0 {
		t.Errorf("expected up to scroll back, offset %d", updated.(Model).viewport.YOffset)
	}
}

func TestRun_NilWorkspace(t *testing.T) {
	if err := Run(Options{}); err == nil {
		t.Error("expected error for nil workspace")
	}
}
