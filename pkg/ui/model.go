// Package ui implements the interactive terminal explorer: the force layout
// animating on a cell canvas, with mouse zoom/pan/drag/hover, search and
// category filters, a detail sidebar, and snapshot export.
package ui

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanderheijden86/nestviz/internal/datasource"
	"github.com/vanderheijden86/nestviz/pkg/config"
	"github.com/vanderheijden86/nestviz/pkg/debug"
	"github.com/vanderheijden86/nestviz/pkg/encode"
	"github.com/vanderheijden86/nestviz/pkg/export"
	"github.com/vanderheijden86/nestviz/pkg/filter"
	"github.com/vanderheijden86/nestviz/pkg/model"
	"github.com/vanderheijden86/nestviz/pkg/scene"
	"github.com/vanderheijden86/nestviz/pkg/sim"
	"github.com/vanderheijden86/nestviz/pkg/viz"
)

const (
	sidebarWidth = 34
	// frameInterval drives the animation at roughly 30fps while the
	// simulation is settling. Ticks stop entirely once it goes idle.
	frameInterval = time.Second / 30

	zoomStep = 1.1
)

type tickMsg time.Time

// Model is the bubbletea model for the explorer.
type Model struct {
	graph  *model.Graph
	engine *sim.Engine
	sc     *scene.Scene
	cfg    config.Config

	radiusScale encode.Linear
	widthScale  encode.Linear

	transform viz.Transform
	vp        viz.Viewport

	fstate  filter.State
	fres    *filter.Result
	panel   viz.Panel
	drag    *viz.Drag
	hover   *model.Node
	hoverAt [2]int // pointer cell, for tooltip placement

	panning  bool
	panMoved bool
	lastX    int
	lastY    int

	search    textinput.Model
	searching bool

	departments []string
	archetypes  []string
	depIdx      int // 0 = all, 1..n = departments[i-1]
	arcIdx      int

	showHelp bool
	helpView string

	width, height int
	ticking       bool
	status        string
	source        datasource.Source
	staleFn       func() bool

	theme Theme
}

// New builds the explorer model for a loaded graph. staleFn reports whether
// the backing file changed since load; pass nil for non-file sources.
func New(g *model.Graph, cfg config.Config, src datasource.Source, staleFn func() bool) Model {
	radius := encode.NewRadiusScale(g.Nodes)
	width := encode.NewLinkWidthScale(g.Links)
	radiusOf := func(n *model.Node) float64 { return encode.NodeRadius(radius, n) }

	simCfg := cfg.Physics.Apply(sim.DefaultConfig())

	// The real viewport arrives with the first WindowSizeMsg.
	vp := viz.Viewport{Width: 800, Height: 600}
	cx, cy := vp.Center()
	engine := sim.New(g, radiusOf, cx, cy, simCfg)

	sc := scene.Build(g, radius, width)
	engine.OnTick(sc.ApplyTick)

	search := textinput.New()
	search.Placeholder = "name..."
	search.Prompt = "/"
	search.CharLimit = 64

	m := Model{
		graph:       g,
		engine:      engine,
		sc:          sc,
		cfg:         cfg,
		radiusScale: radius,
		widthScale:  width,
		transform:   viz.NewTransform(),
		vp:          vp,
		fres:        filter.Apply(g, filter.State{}),
		search:      search,
		departments: g.Departments(),
		archetypes:  g.Archetypes(),
		source:      src,
		staleFn:     staleFn,
		theme:       DefaultTheme(),
	}
	if m.staleFn == nil {
		m.staleFn = func() bool { return false }
	}
	return m
}

// Init starts the animation loop.
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// resumeTicks restarts the frame loop after a reheat. No-op when a tick is
// already scheduled.
func (m *Model) resumeTicks() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return tick()
}

func (m Model) radiusOf(n *model.Node) float64 {
	return encode.NodeRadius(m.radiusScale, n)
}

// canvasSize returns the cell dimensions of the drawing area.
func (m Model) canvasSize() (cols, rows int) {
	cols = m.width - sidebarWidth
	if cols < 1 {
		cols = 1
	}
	rows = m.height - 1
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

// Update handles one event.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		stepping := m.engine.Step()
		fading := m.sc.AdvanceFade(time.Time(msg))
		if stepping || fading {
			m.ticking = true
			return m, tick()
		}
		m.ticking = false
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		cols, rows := m.canvasSize()
		m.vp = viz.Viewport{Width: float64(cols) * CellW, Height: float64(rows) * CellH}
		m.vp.Recenter(m.engine)
		debug.Log("ui: resize to %dx%d cells", cols, rows)
		return m, m.resumeTicks()

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.String() {
		case "enter", "esc":
			m.searching = false
			m.search.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.fstate.Search = m.search.Value()
			return m, tea.Batch(cmd, m.applyFilter())
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink

	case "esc":
		switch {
		case m.showHelp:
			m.showHelp = false
		case m.panel.IsOpen():
			m.closePanel()
		case m.fstate.Active():
			return m, m.clearFilters()
		}
		return m, nil

	case "d":
		m.depIdx = (m.depIdx + 1) % (len(m.departments) + 1)
		if m.depIdx == 0 {
			m.fstate.Department = ""
		} else {
			m.fstate.Department = m.departments[m.depIdx-1]
		}
		return m, m.applyFilter()

	case "a":
		m.arcIdx = (m.arcIdx + 1) % (len(m.archetypes) + 1)
		if m.arcIdx == 0 {
			m.fstate.Archetype = ""
		} else {
			m.fstate.Archetype = m.archetypes[m.arcIdx-1]
		}
		return m, m.applyFilter()

	case "c":
		return m, m.clearFilters()

	case "y":
		if m.panel.IsOpen() {
			if err := clipboard.WriteAll(m.panel.ProfilePath()); err != nil {
				m.status = "clipboard unavailable"
			} else {
				m.status = fmt.Sprintf("copied %s", m.panel.ProfilePath())
			}
		}
		return m, nil

	case "s":
		m.status = m.saveSnapshot()
		return m, nil

	case "?":
		m.showHelp = !m.showHelp
		if m.showHelp && m.helpView == "" {
			m.helpView = renderHelp(m.width)
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	cols, rows := m.canvasSize()
	onCanvas := msg.X < cols && msg.Y < rows
	px := float64(msg.X) * CellW
	py := float64(msg.Y) * CellH

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if onCanvas {
			m.transform = m.transform.ZoomAround(zoomStep, px, py)
		}
		return *m, nil
	case tea.MouseButtonWheelDown:
		if onCanvas {
			m.transform = m.transform.ZoomAround(1/zoomStep, px, py)
		}
		return *m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !onCanvas {
			return *m, nil
		}
		wx, wy := m.transform.Invert(px, py)
		if n := viz.PickNode(m.graph.Nodes, m.radiusOf, wx, wy); n != nil {
			m.drag = viz.StartDrag(m.engine, n, px, py)
		} else {
			m.panning = true
			m.panMoved = false
			m.lastX, m.lastY = msg.X, msg.Y
		}
		return *m, nil

	case tea.MouseActionMotion:
		if m.drag != nil {
			m.drag.Move(px, py, m.transform)
			return *m, m.resumeTicks()
		}
		if m.panning {
			dx := float64(msg.X-m.lastX) * CellW
			dy := float64(msg.Y-m.lastY) * CellH
			if dx != 0 || dy != 0 {
				m.panMoved = true
				m.transform = m.transform.Pan(dx, dy)
			}
			m.lastX, m.lastY = msg.X, msg.Y
			return *m, nil
		}
		m.updateHover(msg.X, msg.Y, onCanvas)
		return *m, nil

	case tea.MouseActionRelease:
		if m.drag != nil {
			node := m.drag.Node()
			if m.drag.End() {
				m.openPanel(node)
			}
			m.drag = nil
			return *m, m.resumeTicks()
		}
		if m.panning {
			if !m.panMoved {
				m.closePanel()
			}
			m.panning = false
		}
		return *m, nil
	}
	return *m, nil
}

func (m *Model) updateHover(x, y int, onCanvas bool) {
	if !onCanvas {
		m.hover = nil
		return
	}
	wx, wy := m.transform.Invert(float64(x)*CellW, float64(y)*CellH)
	m.hover = viz.PickNode(m.graph.Nodes, m.radiusOf, wx, wy)
	m.hoverAt = [2]int{x, y}
}

// applyFilter re-evaluates the criteria and starts the scene's opacity fade,
// returning the command that keeps frames coming until it completes.
func (m *Model) applyFilter() tea.Cmd {
	m.fres = filter.Apply(m.graph, m.fstate)
	m.sc.ApplyFilter(m.fres)
	return m.resumeTicks()
}

func (m *Model) clearFilters() tea.Cmd {
	m.fstate = filter.State{}
	m.depIdx, m.arcIdx = 0, 0
	m.search.SetValue("")
	return m.applyFilter()
}

func (m *Model) openPanel(n *model.Node) {
	m.panel.Open(n)
	m.sc.SetSelected(n)
}

func (m *Model) closePanel() {
	m.panel.Close()
	m.sc.SetSelected(nil)
}

func (m *Model) saveSnapshot() string {
	dir := m.cfg.Export.Dir
	if dir == "" {
		dir = "."
	}
	name := fmt.Sprintf("nestviz-%s", time.Now().Format("20060102-150405"))
	opts := export.Options{
		Path:   filepath.Join(dir, name),
		Format: m.cfg.Export.Format,
		Width:  m.cfg.Export.Width,
		Height: m.cfg.Export.Height,
	}
	m.sc.FinishFade()
	if err := export.SaveScene(m.sc, opts); err != nil {
		return fmt.Sprintf("snapshot failed: %v", err)
	}
	return fmt.Sprintf("saved %s", opts.Path)
}

// View renders one frame.
func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}
	if m.showHelp {
		return m.helpView
	}

	cols, rows := m.canvasSize()
	c := newCanvas(cols, rows, m.theme)
	c.drawScene(m.sc, m.transform)
	if m.hover != nil && m.drag == nil {
		c.drawTooltip(viz.TooltipLines(m.hover), m.hoverAt[0], m.hoverAt[1])
	}

	body := joinHorizontal(c.render(), m.renderSidebar(rows))
	return body + "\n" + m.renderStatusBar()
}
