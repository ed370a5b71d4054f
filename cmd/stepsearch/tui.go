package main

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepsearch/search"
	"github.com/katalvlaran/stepsearch/tree"
)

// maxTreeLines caps the search-tree pane; deeper runs show a tail marker.
const maxTreeLines = 40

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	paneStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	headingStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	fringeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	expandedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	foundStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Step through a search interactively",
		Long: `tui shows the graph, the search tree and the fringe side by side.

Keys:
  n, space  next step (starts a run when idle or finished)
  r         restart the run on the same graph
  R         reset: regenerate the graph and clear the algorithm
  1..6      select dfs, dfs-id, bfs, ucs, greedy, astar
  q         quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Log output would tear the alternate screen.
			eng, err := opts.newEngine(cmd, logr.Discard())
			if err != nil {
				return err
			}
			p := tea.NewProgram(newModel(eng), tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout()))
			_, err = p.Run()

			return err
		},
	}
}

// model is the bubbletea model wrapping one engine.
type model struct {
	eng    *search.Engine
	status string
	failed bool

	// steps counts NextStep calls since the run was seeded.
	steps int
}

func newModel(eng *search.Engine) model {
	m := model{eng: eng}
	if eng.Algorithm() == search.None {
		m.status = "choose an algorithm (1-6)"
	} else {
		m.status = "press n to start"
	}

	return m
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch k := key.String(); k {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "n", " ":
		m.step()
	case "r":
		m.eng.Restart()
		m.steps = 0
		m.setStatus("restarted", nil)
	case "R":
		m.steps = 0
		if err := m.eng.Reset(); err != nil {
			m.setStatus("", err)
		} else {
			m.setStatus("new graph; choose an algorithm (1-6)", nil)
		}
	case "1", "2", "3", "4", "5", "6":
		algs := search.Algorithms()
		idx := int(k[0] - '1')
		if idx < len(algs) {
			if err := m.eng.Select(algs[idx]); err != nil {
				m.setStatus("", err)
			} else {
				m.steps = 0
				m.setStatus("selected "+algs[idx].String(), nil)
			}
		}
	}

	return m, nil
}

// step starts a run when none is active, otherwise advances it.
func (m *model) step() {
	var (
		res search.Result
		err error
	)
	running := m.eng.State() == search.Running
	if running {
		res, err = m.eng.NextStep()
	} else {
		res, err = m.eng.FirstStep()
	}
	if err != nil {
		m.setStatus("", err)
		return
	}
	if running {
		m.steps++
	} else {
		m.steps = 0
	}
	switch {
	case res.Status == search.FoundPath:
		m.setStatus("path found: "+strings.Join(res.Path, " "), nil)
	case res.Status == search.Failure:
		m.setStatus("no path: "+res.Reason, nil)
	case !running:
		m.setStatus("started from "+m.eng.Config().Start, nil)
	default:
		m.setStatus(fmt.Sprintf("step %d", m.steps), nil)
	}
}

func (m *model) setStatus(s string, err error) {
	if err != nil {
		m.status, m.failed = err.Error(), true
		return
	}
	m.status, m.failed = s, false
}

// View implements tea.Model.
func (m model) View() string {
	s := m.eng.Snapshot()

	header := titleStyle.Render("stepsearch") + fmt.Sprintf("  %s  %s  run %s",
		s.Algorithm, s.State, shortID(s.RunID))

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		paneStyle.Render(m.graphPane(s)),
		paneStyle.Render(m.treePane(s)),
		paneStyle.Render(m.fringePane(s)),
	)

	status := m.status
	switch {
	case m.failed:
		status = errorStyle.Render(status)
	case s.State == search.Found:
		status = foundStyle.Render(status)
	}
	help := helpStyle.Render("n/space step • r restart • R reset • 1-6 algorithm • q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, panes, status, help)
}

// graphPane lists every graph node with its heuristic and outgoing arcs,
// marking the ones the tree has reached.
func (m model) graphPane(s search.Snapshot) string {
	seen := make(map[string]bool, len(s.Discovered))
	for _, id := range s.Discovered {
		seen[id] = true
	}

	var b strings.Builder
	b.WriteString(headingStyle.Render("graph") + "\n")
	for _, n := range s.Graph.Nodes() {
		mark := "○"
		if seen[n.ID] {
			mark = "●"
		}
		arcs, _ := s.Graph.Neighbors(n.ID)
		parts := make([]string, 0, len(arcs))
		for _, a := range arcs {
			parts = append(parts, a.To+"("+num(a.Cost)+")")
		}
		fmt.Fprintf(&b, "%s %s h=%s → %s\n", mark, n.ID, num(n.Heuristic), strings.Join(parts, " "))
	}

	return strings.TrimRight(b.String(), "\n")
}

// treePane renders the search tree in pre-order, indented by depth.
func (m model) treePane(s search.Snapshot) string {
	inFringe := make(map[string]bool, len(s.Fringe))
	for _, id := range s.Fringe {
		inFringe[id] = true
	}
	expanded := make(map[string]bool, len(s.Expanded))
	for _, id := range s.Expanded {
		expanded[id] = true
	}

	var b strings.Builder
	b.WriteString(headingStyle.Render("tree") + "\n")
	lines := 0
	_ = s.Tree.Walk(func(n *tree.Node) error {
		lines++
		if lines > maxTreeLines {
			return nil
		}
		label := fmt.Sprintf("%s g=%s h=%s", n.ID, num(n.Cost), num(n.Heuristic))
		switch {
		case inFringe[n.ID]:
			label = fringeStyle.Render(label)
		case expanded[n.ID]:
			label = expandedStyle.Render(label)
		}
		b.WriteString(strings.Repeat("  ", n.Depth) + label + "\n")

		return nil
	})
	if lines > maxTreeLines {
		fmt.Fprintf(&b, "… %d more\n", lines-maxTreeLines)
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m model) fringePane(s search.Snapshot) string {
	cfg := m.eng.Config()

	var b strings.Builder
	b.WriteString(headingStyle.Render("search") + "\n")
	fmt.Fprintf(&b, "start %s  goal %s  limit %d\n", cfg.Start, cfg.Goal, cfg.DepthLimit)
	if s.Algorithm == search.DFSID {
		fmt.Fprintf(&b, "ceiling %d  restarts %d\n", s.DepthLimitCounter, s.Iteration)
	}
	fmt.Fprintf(&b, "step %d\n\n", m.steps)
	b.WriteString("fringe\n" + fringeStyle.Render(s.FringeText) + "\n\n")
	b.WriteString("expanded\n" + expandedStyle.Render(strings.Join(s.Expanded, " ")))

	return b.String()
}

func num(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	if id == "" {
		return "-"
	}

	return id
}
