package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/atomviz/internal/atom"
	"github.com/san-kum/atomviz/internal/playback"
	"github.com/san-kum/atomviz/internal/scene"
	"github.com/sirupsen/logrus"
)

// tickRate is how often the player samples the clock; frames still change
// only on the driver's interval.
const tickRate = time.Second / 20

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Player is the Bubble Tea model that plays the sequence in the terminal.
type Player struct {
	driver     *playback.Driver
	list       *scene.DisplayList
	canvas     *Canvas
	theme      Theme
	last       time.Time
	frame      string
	generation int
	profile    string
	log        logrus.FieldLogger
}

// NewPlayer wraps a driver that draws into list. width and height size the
// canvas in character cells.
func NewPlayer(driver *playback.Driver, list *scene.DisplayList, width, height int, theme Theme, log logrus.FieldLogger) Player {
	p := Player{
		driver:     driver,
		list:       list,
		canvas:     NewCanvas(width, height),
		theme:      theme,
		generation: -1,
		profile:    RadialProfileChart(),
		log:        log,
	}
	p.refresh()
	return p
}

func (m Player) Init() tea.Cmd {
	return tick()
}

func (m Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case TickMsg:
		now := time.Time(msg)
		if !m.last.IsZero() && m.driver.Elapse(now.Sub(m.last)) {
			m.log.WithField("frame", m.driver.Index()).Debug("terminal frame changed")
		}
		m.last = now
		m.refresh()
		return m, tick()
	}
	return m, nil
}

// refresh re-rasterizes only when the display list holds a new frame.
func (m *Player) refresh() {
	if m.list.Generation == m.generation {
		return
	}
	Rasterize(m.list, m.canvas, m.theme)
	m.frame = m.canvas.Render()
	m.generation = m.list.Generation
}

// Index is the frame currently on screen.
func (m Player) Index() int { return m.driver.Index() }

func (m Player) View() string {
	cur := m.driver.Current()

	var left strings.Builder
	left.WriteString(m.theme.titleStyle().PaddingLeft(2).Render(m.list.Title) + "\n")
	left.WriteString(canvasStyle.Render(m.frame) + "\n")
	left.WriteString(m.theme.captionStyle().Render(cur.Caption()))

	var s strings.Builder
	s.WriteString(labelStyle.Render("Frame") + valueStyle.Render(fmt.Sprintf("%d/%d", m.driver.Index()+1, m.driver.Len())) + "\n")
	s.WriteString(labelStyle.Render("Model") + valueStyle.Render(cur.Name()) + "\n")
	s.WriteString(labelStyle.Render("Year") + valueStyle.Render(fmt.Sprintf("%d", cur.Year())) + "\n")
	s.WriteString(labelStyle.Render("Next") + valueStyle.Render(fmt.Sprintf("%.1fs", m.driver.Remaining().Seconds())) + "\n\n")
	s.WriteString(m.theme.ProgressBar(m.driver.Progress(), 30) + "\n\n")
	s.WriteString(m.theme.FrameDots(m.driver.Index(), m.driver.Len()) + "\n")
	if _, ok := cur.(*atom.Quantum); ok {
		s.WriteString(graphStyle.Render(m.profile) + "\n")
	}
	s.WriteString(helpStyle.Render("Q:Quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, left.String(), panelStyle.Render(s.String()))
}

// RadialProfileChart plots the cloud density against distance from the nucleus.
func RadialProfileChart() string {
	return asciigraph.Plot(atom.RadialProfile(2, 30),
		asciigraph.Height(6),
		asciigraph.Width(24),
		asciigraph.Precision(2),
		asciigraph.Caption("density vs radius"),
	)
}

// RenderFrame draws a single model once and returns the coloured canvas with
// its title and caption.
func RenderFrame(m atom.Model, width, height int, theme Theme) string {
	list := scene.NewDisplayList()
	atom.Render(list, m)
	return RenderList(list, m, width, height, theme)
}

// RenderList rasterizes a display list that m has already drawn into, so the
// printed frame is exactly what the driver holds.
func RenderList(list *scene.DisplayList, m atom.Model, width, height int, theme Theme) string {
	c := NewCanvas(width, height)
	Rasterize(list, c, theme)

	var b strings.Builder
	b.WriteString(theme.titleStyle().Render(list.Title) + "\n")
	b.WriteString(c.Render())
	b.WriteString(theme.captionStyle().PaddingLeft(0).Render(fmt.Sprintf("%d: %s", m.Year(), m.Caption())) + "\n")
	return b.String()
}
