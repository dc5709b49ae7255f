package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cardlayout/pkg/behavior"
	"github.com/matzehuels/cardlayout/pkg/catalog"
	"github.com/matzehuels/cardlayout/pkg/pipeline"
)

func TestRootCommand(t *testing.T) {
	root := New(io.Discard, log.InfoLevel).RootCommand()

	want := []string{"plan", "preview", "browse", "catalog", "serve", "cache", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestFilterClass(t *testing.T) {
	descs := catalog.Default().Descriptors()
	if got := filterClass(descs, ""); len(got) != len(descs) {
		t.Errorf("filterClass(\"\") = %d, want %d", len(got), len(descs))
	}
	prod := filterClass(descs, catalog.ClassProduction)
	if len(prod) == 0 {
		t.Fatal("no production kinds in default catalog")
	}
	for _, d := range prod {
		if d.Class != catalog.ClassProduction {
			t.Errorf("%s has class %s", d.Kind, d.Class)
		}
	}
}

func TestWriteCatalogTable(t *testing.T) {
	var buf bytes.Buffer
	descs := []catalog.Descriptor{{Kind: "plants", Icon: "resources/plants", Class: catalog.ClassStandard}}
	if err := writeCatalogTable(&buf, descs); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Kind", "plants", "resources/plants"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("table missing %q:\n%s", want, buf.String())
		}
	}
}

func TestCardListModelNavigation(t *testing.T) {
	cards := []behavior.Card{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	plans := make([]pipeline.CardLayoutPlan, len(cards))
	for i, card := range cards {
		plans[i] = pipeline.PlanCard(card.Behaviors, pipeline.Options{})
		plans[i].CardID = card.ID
	}
	var m tea.Model = NewCardListModel(cards, plans)

	key := func(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

	m, _ = m.Update(key("j"))
	m, _ = m.Update(key("j"))
	m, _ = m.Update(key("j"))
	if got := m.(CardListModel).Cursor; got != 2 {
		t.Errorf("Cursor = %d, want 2 after moving past the end", got)
	}
	m, _ = m.Update(key("k"))
	if got := m.(CardListModel).Cursor; got != 1 {
		t.Errorf("Cursor = %d, want 1", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.(CardListModel).Preview {
		t.Error("enter should toggle the preview off")
	}

	if view := m.View(); !strings.Contains(view, "[2/3]") {
		t.Errorf("View() missing position:\n%s", view)
	}

	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Error("q should quit")
	}
}

func TestPlanStatus(t *testing.T) {
	tests := []struct {
		plan pipeline.CardLayoutPlan
		want string
	}{
		{pipeline.CardLayoutPlan{}, "fits"},
		{pipeline.CardLayoutPlan{Overflow: true, Compacted: true}, "compacted"},
		{pipeline.CardLayoutPlan{Overflow: true, Clipped: true}, "clipped"},
	}
	for _, tt := range tests {
		if got := planStatus(tt.plan); got != tt.want {
			t.Errorf("planStatus() = %q, want %q", got, tt.want)
		}
	}
}

func TestCompletionScripts(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			root := New(io.Discard, log.InfoLevel).RootCommand()
			var buf bytes.Buffer
			root.SetOut(&buf)
			root.SetArgs([]string{"completion", shell})
			if err := root.Execute(); err != nil {
				t.Fatalf("completion %s: %v", shell, err)
			}
			if !strings.Contains(buf.String(), "cardlayout") {
				t.Errorf("%s script does not mention cardlayout", shell)
			}
		})
	}
}

func TestCompleteCardIDs(t *testing.T) {
	path := writeTestCards(t)

	got, directive := completeCardIDs(nil, []string{path}, "")
	if directive != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("directive = %v, want NoFileComp", directive)
	}
	want := []string{"mine\tMine", "greenhouse"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("completeCardIDs() = %q, want %q", got, want)
	}

	if got, _ := completeCardIDs(nil, []string{path}, "gr"); len(got) != 1 || got[0] != "greenhouse" {
		t.Errorf("completeCardIDs(gr) = %q, want [greenhouse]", got)
	}
	if _, directive := completeCardIDs(nil, []string{"missing.json"}, ""); directive != cobra.ShellCompDirectiveError {
		t.Errorf("missing file directive = %v, want Error", directive)
	}
	if got, _ := completeCardIDs(nil, nil, ""); got != nil {
		t.Errorf("completeCardIDs() without a file = %q, want none", got)
	}
}
