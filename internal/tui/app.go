package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/paperplane/internal/anim"
	"github.com/san-kum/paperplane/internal/config"
	"github.com/san-kum/paperplane/internal/flight"
	"github.com/san-kum/paperplane/internal/render"
)

const (
	canvasWidth  = 60
	canvasHeight = 8
	gifPath      = "flight.gif"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	readout = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true)
	boxed   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
)

var wingStyle = map[string]lipgloss.Style{
	"Short":  lipgloss.NewStyle().Foreground(lipgloss.Color("21")),
	"Medium": lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	"Long":   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
}

type state int

const (
	statePick state = iota
	stateFlying
	stateLanded
)

type model struct {
	state  state
	row    int
	choice [len(flight.Attributes)]int

	source   flight.RandomSource
	cfg      *config.Config
	renderer *render.Renderer
	canvas   *render.Canvas

	result *flight.FlightResult
	path   []anim.Frame
	frame  int
	// launches numbers each flight; ticks from earlier flights are dropped.
	launches int

	message string
	width   int
	height  int
}

// NewApp starts with the configured plane selected.
func NewApp(cfg *config.Config, src flight.RandomSource) *model {
	m := &model{
		state:    statePick,
		source:   src,
		cfg:      cfg,
		renderer: cfg.Renderer(),
		canvas:   render.NewCanvas(canvasWidth, canvasHeight),
		width:    80,
		height:   24,
	}
	for i, a := range flight.Attributes {
		for j, v := range a.Options() {
			if v == cfg.Plane.Get(a) {
				m.choice[i] = j
			}
		}
	}
	return m
}

// Run blocks until the user quits.
func Run(cfg *config.Config, src flight.RandomSource) error {
	p := tea.NewProgram(NewApp(cfg, src), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

type tickMsg struct {
	launch int
	at     time.Time
}

func (m model) tick() tea.Cmd {
	fps := m.cfg.Animation.FPS
	if fps <= 0 {
		fps = render.DefaultFPS
	}
	launch := m.launches
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return tickMsg{launch: launch, at: t}
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.state != stateFlying || msg.launch != m.launches {
			return m, nil
		}
		m.frame++
		if m.frame >= len(m.path)-1 {
			m.frame = len(m.path) - 1
			m.state = stateLanded
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.row > 0 {
			m.row--
		}
	case "down", "j":
		if m.row < len(flight.Attributes)-1 {
			m.row++
		}
	case "left", "h":
		if m.choice[m.row] > 0 {
			m.choice[m.row]--
		}
	case "right", "l":
		if m.choice[m.row] < len(flight.Attributes[m.row].Options())-1 {
			m.choice[m.row]++
		}
	case "enter", " ", "r":
		m.launch()
		return m, m.tick()
	case "g":
		m.message = m.saveGIF()
	case "esc":
		m.state = statePick
		m.result = nil
		m.path = nil
		m.message = ""
	}
	return m, nil
}

func (m model) plane() flight.Plane {
	var p flight.Plane
	for i, a := range flight.Attributes {
		p.Set(a, a.Options()[m.choice[i]])
	}
	return p
}

// launch draws a fresh result; every launch is independent.
func (m *model) launch() {
	res := flight.Simulate(m.plane(), m.source)
	m.result = &res
	m.path = anim.Path(res.Distance)
	m.frame = 0
	m.launches++
	m.state = stateFlying
	m.message = ""
}

func (m model) saveGIF() string {
	if m.result == nil {
		return "launch first"
	}
	f, err := os.Create(gifPath)
	if err != nil {
		return fmt.Sprintf("save failed: %v", err)
	}
	defer f.Close()
	if err := m.renderer.GIF(f, m.path, render.StyleFor(m.result.Plane), m.cfg.Animation.FPS); err != nil {
		return fmt.Sprintf("save failed: %v", err)
	}
	return "saved " + gifPath
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(cyan.Bold(true).Render("🛩  paper airplane flight simulator"))
	b.WriteString("\n\n")

	for i, a := range flight.Attributes {
		cursor := "  "
		label := dim.Render(fmt.Sprintf("%-12s", a.Label()))
		if i == m.row {
			cursor = magenta.Render("▸ ")
			label = white.Render(fmt.Sprintf("%-12s", a.Label()))
		}
		b.WriteString(cursor + label)
		for j, v := range a.Options() {
			if j == m.choice[i] {
				b.WriteString(" " + yellow.Render("◉ "+v))
			} else {
				b.WriteString(" " + dim.Render("○ "+v))
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.result != nil {
		st := render.StyleFor(m.result.Plane)
		m.canvas.DrawFrame(m.path, m.frame, m.cfg.Animation.XMax, st.Marker.Rune())
		canvas := m.canvas.String()
		if ws, ok := wingStyle[m.result.Plane.Wing]; ok {
			canvas = ws.Render(canvas)
		}
		b.WriteString(boxed.Render(canvas))
		b.WriteString("\n")
		b.WriteString(dim.Render(fmt.Sprintf("0 m%*s", canvasWidth-3, fmt.Sprintf("%g m", m.cfg.Animation.XMax))))
		b.WriteString("\n\n")

		b.WriteString(green.Render("take-off!"))
		b.WriteString("\n")
		if m.state == stateLanded {
			b.WriteString(readout.Render("✈ final flight distance: " + flight.Readout(m.result.Distance)))
			b.WriteString("\n")
			b.WriteString(dim.Render(fmt.Sprintf("base %.0f  wind %+.2f  noise %+.2f",
				m.result.Base, m.result.Wind, m.result.Noise)))
		} else {
			b.WriteString(dim.Render(fmt.Sprintf("flying… frame %d/%d", m.frame+1, len(m.path))))
		}
		b.WriteString("\n")
	}

	if m.message != "" {
		b.WriteString(yellow.Render(m.message) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("↑↓ attribute  ←→ value  enter launch  g save gif  esc reset  q quit"))
	return b.String()
}
