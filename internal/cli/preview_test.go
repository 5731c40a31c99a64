package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/robenli/textalign/pkg/align"
)

func keyMsg(s string) tea.KeyMsg {
	if s == "tab" {
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPreviewModelRendersInitialContent(t *testing.T) {
	m := newPreviewModel("in.txt", "Hi there! My name is Roben Li.\n", 10, align.Justify)

	if m.err != nil {
		t.Fatalf("initial refresh failed: %v", m.err)
	}
	if m.rendered != "Hi  there!\nMy name is\nRoben  Li.\n" {
		t.Errorf("rendered = %q", m.rendered)
	}
	if !strings.Contains(m.View(), "width 10") {
		t.Error("View() does not show the current width")
	}
	if !strings.Contains(m.View(), "justify") {
		t.Error("View() does not show the current mode")
	}
}

func TestPreviewModelAdjustsWidth(t *testing.T) {
	m := newPreviewModel("in.txt", "a b c\n", 10, align.Left)

	next, _ := m.Update(keyMsg("+"))
	got := next.(previewModel)
	if got.width != 11 {
		t.Errorf("width after + = %d, want 11", got.width)
	}

	next, _ = got.Update(keyMsg("-"))
	got = next.(previewModel)
	if got.width != 10 {
		t.Errorf("width after - = %d, want 10", got.width)
	}
}

func TestPreviewModelWidthBounds(t *testing.T) {
	m := newPreviewModel("in.txt", "a\n", previewMinWidth, align.Left)

	next, _ := m.Update(keyMsg("-"))
	if got := next.(previewModel); got.width != previewMinWidth {
		t.Errorf("width went below minimum: %d", got.width)
	}

	m = newPreviewModel("in.txt", "a\n", previewMaxWidth, align.Left)
	next, _ = m.Update(keyMsg("+"))
	if got := next.(previewModel); got.width != previewMaxWidth {
		t.Errorf("width went above maximum: %d", got.width)
	}
}

func TestPreviewModelCyclesModes(t *testing.T) {
	m := newPreviewModel("in.txt", "a b\n", 10, align.Left)

	want := []align.Mode{align.Right, align.Justify, align.Left}
	for _, wantMode := range want {
		next, _ := m.Update(keyMsg("tab"))
		m = next.(previewModel)
		if m.mode() != wantMode {
			t.Fatalf("mode after tab = %s, want %s", m.mode(), wantMode)
		}
	}
}

func TestPreviewModelShowsWordTooLong(t *testing.T) {
	// "unbreakable" is 11 units, wider than the preview width.
	m := newPreviewModel("in.txt", "unbreakable\n", 5, align.Left)

	if m.err == nil {
		t.Fatal("expected a rendering error for an oversized word")
	}
	if !strings.Contains(m.View(), "unbreakable") {
		t.Error("View() does not surface the failing word")
	}
}

func TestPreviewModelQuits(t *testing.T) {
	m := newPreviewModel("in.txt", "a\n", 10, align.Left)

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
}
