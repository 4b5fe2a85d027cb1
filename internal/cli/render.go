package cli

import (
	"fmt"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/ui"
	"github.com/idilsaglam/todolist/internal/view"
)

const maxTitle = 80

func (s *Shell) doList() int {
	t := ui.Current()
	d, p := s.ctrl.Counts()
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.C(t.Title, "Todos"),
		ui.C(t.Success, t.SymDone), d,
		ui.C(t.Pending, t.SymPending), p,
		ui.C(t.Accent, "Total"), d+p,
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, filterTabs(s.ctrl))
	lines = append(lines, ui.C(t.Muted, ui.ProgressBar(d, d+p, 28)))
	lines = append(lines, "")

	items := s.ctrl.CurrentList()
	if s.opt.Group && s.ctrl.IsFilter(view.All) {
		lines = append(lines, groupLines(items)...)
	} else {
		lines = append(lines, flatLines(items, 0)...)
	}
	if d+p == 0 {
		lines = append(lines, "")
		lines = append(lines, ui.C(t.Muted, "Tip: add with `add Buy milk`"))
	}
	ui.Panel(s.out, lines)
	return CodeOK
}

func filterTabs(c *view.Controller) string {
	t := ui.Current()
	out := ""
	for i, f := range view.Filters {
		if i > 0 {
			out += " "
		}
		label := f.String()
		if c.IsFilter(f) {
			out += ui.C(t.Accent, "["+label+"]")
		} else {
			out += ui.C(t.Muted, " "+label+" ")
		}
	}
	return out
}

// flatLines numbers items from offset+1 so numbers match view indexes.
func flatLines(items []*model.Todo, offset int) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{ui.C(t.Muted, "no items")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		idx := fmt.Sprintf("%2d.", offset+i+1)
		box, color := t.BoxUnchecked, t.Muted
		if it.Done {
			box, color = t.BoxChecked, t.Success
		}
		out = append(out, fmt.Sprintf("%s %s %s",
			ui.C(t.Muted, idx), ui.C(color, box), ui.Truncate(it.Title, maxTitle)))
	}
	return out
}

// groupLines splits the full view into Pending and Done sections while
// keeping each item's number from the full view.
func groupLines(items []*model.Todo) []string {
	t := ui.Current()
	var pend, done []string
	for i, it := range items {
		line := flatLines([]*model.Todo{it}, i)
		if it.Done {
			done = append(done, line...)
		} else {
			pend = append(pend, line...)
		}
	}
	section := func(name string, body []string) []string {
		lines := []string{ui.C(t.Accent, name)}
		if len(body) == 0 {
			return append(lines, ui.C(t.Muted, "(none)"))
		}
		return append(lines, body...)
	}
	lines := section("Pending", pend)
	lines = append(lines, "")
	return append(lines, section("Done", done)...)
}
