package ui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestSpinnerModelLifecycle(t *testing.T) {
	t.Parallel()

	m := newSpinnerModel("committing")
	if m.Init() == nil {
		t.Error("Init() should schedule the first tick")
	}
	if !strings.Contains(m.View(), "committing") {
		t.Errorf("View() = %q, want title shown", m.View())
	}

	updated, _ := m.Update(spinnerTitleMsg("amending"))
	m = updated.(spinnerModel)
	if !strings.Contains(m.View(), "amending") {
		t.Errorf("View() after title update = %q, want new title", m.View())
	}

	updated, cmd := m.Update(spinnerStopMsg{})
	m = updated.(spinnerModel)
	if cmd == nil {
		t.Error("stop should quit the program")
	}
	if m.View() != "" {
		t.Errorf("View() after stop = %q, want empty", m.View())
	}
}

func TestSpinnerModelCtrlC(t *testing.T) {
	t.Parallel()

	m := newSpinnerModel("working")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = updated.(spinnerModel)
	if cmd == nil || !m.done {
		t.Error("ctrl-c should stop the spinner")
	}
}

func TestHeadlessSpinnerWritesLines(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	hm := NewHeadlessManager()
	hm.ForceHeadless(true)

	s := NewSpinner(hm, &buf, "committing")
	s.SetTitle("done")
	s.Stop()

	out := buf.String()
	if !strings.Contains(out, "committing") || !strings.Contains(out, "done") {
		t.Errorf("headless spinner output = %q, want both titles logged", out)
	}
}

func TestForceHeadlessOverride(t *testing.T) {
	t.Parallel()

	hm := NewHeadlessManager()
	hm.ForceHeadless(false)
	if hm.IsHeadless() {
		t.Error("forced interactive mode reported headless")
	}
	hm.ForceHeadless(true)
	if !hm.IsHeadless() {
		t.Error("forced headless mode reported interactive")
	}
}

func TestCardsCarryTitleAndDetails(t *testing.T) {
	t.Parallel()

	card := Card("Commit Convention", "RELEASE, UPDATE, PATCH")
	if !strings.Contains(card, "Commit Convention") {
		t.Errorf("Card() missing title:\n%s", card)
	}

	ok := SuccessCard("Committed", KeyValue("project", "web-app"))
	if !strings.Contains(ok, "Committed") || !strings.Contains(ok, "web-app") {
		t.Errorf("SuccessCard() missing content:\n%s", ok)
	}

	bad := FailureCard("Invalid message", "Message is required")
	if !strings.Contains(bad, "Message is required") {
		t.Errorf("FailureCard() missing detail:\n%s", bad)
	}
}
