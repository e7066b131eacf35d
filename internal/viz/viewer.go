package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/orbspin/internal/pipeline"
)

const (
	stateMenu = iota
	statePanel
)

// Viewer is a Bubble Tea model paging through the panels of one result.
type Viewer struct {
	res           *pipeline.Result
	popts         PanelOptions
	ropts         RenderOptions
	panels        []Panel
	state, cursor int
	zoom          int // number of times the window was halved
	width, height int
	err           error
}

func NewViewer(res *pipeline.Result, popts PanelOptions, ropts RenderOptions) (*Viewer, error) {
	panels, err := BuildPanels(res, popts)
	if err != nil {
		return nil, err
	}
	return &Viewer{res: res, popts: popts, ropts: ropts, panels: panels, width: 80, height: 24}, nil
}

func (v *Viewer) Init() tea.Cmd { return nil }

func (v *Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKey(msg)
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
		v.ropts.Width = max(20, msg.Width-14)
		v.ropts.Height = max(4, msg.Height-8)
	}
	return v, nil
}

func (v *Viewer) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return v, tea.Quit
	case "T":
		v.ropts.Theme = NextTheme(v.ropts.Theme)
		return v, nil
	}

	if v.state == stateMenu {
		switch msg.String() {
		case "q", "esc":
			return v, tea.Quit
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.panels)-1 {
				v.cursor++
			}
		case "enter", " ":
			v.state = statePanel
		}
		return v, nil
	}

	switch msg.String() {
	case "q", "esc":
		v.state = stateMenu
	case "left", "h":
		v.cursor = (v.cursor + len(v.panels) - 1) % len(v.panels)
	case "right", "l":
		v.cursor = (v.cursor + 1) % len(v.panels)
	case "z":
		v.zoom++
		v.rebuild()
	case "Z":
		v.zoom = 0
		v.rebuild()
	}
	return v, nil
}

// rebuild recomputes the panels for the later 1/2^zoom of the window.
func (v *Viewer) rebuild() {
	o := v.popts
	t := v.res.Time
	if v.zoom > 0 && len(t) > 0 {
		end := t[len(t)-1]
		if o.TMax > 0 && o.TMax < end {
			end = o.TMax
		}
		start := max(o.TMin, t[0])
		for i := 0; i < v.zoom; i++ {
			start = (start + end) / 2
		}
		o.TMin, o.TMax = start, end
	}
	panels, err := BuildPanels(v.res, o)
	v.err = err
	if err == nil {
		v.panels = panels
	}
}

func (v *Viewer) View() string {
	th := v.ropts.Theme
	header := lipgloss.NewStyle().Bold(true).Foreground(th.Secondary)
	hint := lipgloss.NewStyle().Foreground(th.Muted).Italic(true)

	var b strings.Builder
	if v.err != nil {
		b.WriteString(lipgloss.NewStyle().Foreground(th.Error).Render(v.err.Error()) + "\n")
	}

	if v.state == stateMenu {
		b.WriteString(header.Render(fmt.Sprintf("orbspin  %d samples, stride %d", v.res.Len(), v.res.Stride)) + "\n\n")
		for i, p := range v.panels {
			col := "L"
			if p.Column == 1 {
				col = "R"
			}
			line := fmt.Sprintf("  %s %s", col, p.Title)
			if i == v.cursor {
				line = lipgloss.NewStyle().Bold(true).Foreground(th.Accent).Render("▸ " + col + " " + p.Title)
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n" + hint.Render("j/k move · enter open · T theme · q quit"))
		return b.String()
	}

	b.WriteString(header.Render(fmt.Sprintf("[%d/%d]", v.cursor+1, len(v.panels))) + " ")
	b.WriteString(RenderPanel(v.panels[v.cursor], v.ropts))
	b.WriteString("\n\n" + hint.Render(fmt.Sprintf("h/l panel · z/Z zoom (%dx) · T theme (%s) · q back", 1<<v.zoom, th.Name)))
	return b.String()
}

// Run starts the viewer on the alternate screen.
func Run(res *pipeline.Result, popts PanelOptions, ropts RenderOptions) error {
	v, err := NewViewer(res, popts, ropts)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(v, tea.WithAltScreen()).Run()
	return err
}
