package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/cardswap/internal/motion"
)

// Scene pixels are mapped onto terminal cells, which are roughly twice as tall as wide.
const (
	pxPerCol = 8.0
	pxPerRow = 16.0
	sceneW   = 28
	sceneH   = 20
)

// Scene names one of the two reparenting arrangements.
type Scene int

const (
	// ChildScene nests small inside big.
	ChildScene Scene = iota
	// SiblingScene places big and small side by side under the same parent.
	SiblingScene
)

func (s Scene) String() string {
	if s == SiblingScene {
		return "sibling"
	}
	return "child"
}

func px(x, y, w, h float64) motion.Rect {
	return motion.Rect{X: x, Y: y, W: w, H: h}.Scale(1/pxPerCol, 1/pxPerRow)
}

// Layout returns the element tree for s. Both arrangements share the ids "big" and "small".
func (s Scene) Layout() motion.Node {
	if s == SiblingScene {
		return motion.Node{Children: []motion.Node{
			{ID: "big", Rect: px(26, 137, 148, 148)},
			{ID: "small", Rect: px(124, 64, 50, 50)},
		}}
	}
	return motion.Node{Children: []motion.Node{
		{ID: "big", Rect: px(26, 97, 148, 148), Children: []motion.Node{
			{ID: "small", Rect: px(15, 15, 50, 50)},
		}},
	}}
}

// ReparentModel toggles two elements between a nested and a flat arrangement.
type ReparentModel struct {
	animator *motion.Animator
	spring   motion.SpringParams
	logger   *log.Logger
	scene    Scene
	toggles  int
	ticking  bool
	help     help.Model
	keys     keyMap
}

// NewReparentModel creates a ReparentModel showing the child scene at rest.
func NewReparentModel(spring motion.SpringParams, fps int, logger *log.Logger) *ReparentModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := &ReparentModel{
		animator: motion.NewAnimator(fps),
		spring:   spring,
		logger:   logger,
		scene:    ChildScene,
		help:     help.New(),
		keys:     newKeyMap(),
	}
	m.animator.Apply(motion.Flatten(m.scene.Layout(), m.spring))
	return m
}

func (m *ReparentModel) Init() tea.Cmd {
	return nil
}

func (m *ReparentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) {
			return m, tea.Quit
		}
		return m, m.toggle()
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return m, m.toggle()
		}
	case frameMsg:
		m.ticking = false
		if m.animator.Step() {
			return m, m.frames()
		}
	}
	return m, nil
}

func (m *ReparentModel) toggle() tea.Cmd {
	if m.scene == ChildScene {
		m.scene = SiblingScene
	} else {
		m.scene = ChildScene
	}
	m.toggles++
	m.logger.Debug("layout toggled", "scene", m.scene)
	m.animator.Apply(motion.Flatten(m.scene.Layout(), m.spring))
	return m.frames()
}

func (m *ReparentModel) frames() tea.Cmd {
	if m.ticking || m.animator.Settled() {
		return nil
	}
	m.ticking = true
	return frameCmd(m.animator.FPS())
}

func (m *ReparentModel) View() string {
	var b strings.Builder
	b.WriteString(styles.title.Render("Shared layout · " + m.scene.String()))
	b.WriteString("\n")
	b.WriteString(m.stage().String())
	b.WriteString("\n\n")
	b.WriteString(styles.help.Render(m.help.ShortHelpView([]key.Binding{m.keys.toggle, m.keys.quit})))
	return b.String()
}

// stage paints big, then small. In the child scene small is clipped to big's current bounds.
func (m *ReparentModel) stage() *canvas {
	c := newCanvas(sceneW, sceneH)
	bigInk, smallInk := inkBig, inkSmall
	if m.scene == SiblingScene {
		bigInk, smallInk = inkBigAlt, inkSmallAlt
	}

	big, _ := m.animator.Rect("big")
	c.box(big, "", bigInk, c.bounds())

	bounds := c.bounds()
	if m.scene == ChildScene {
		x, y, w, h := big.Cells()
		bounds = clip{x, y, x + w, y + h}
	}
	small, _ := m.animator.Rect("small")
	c.box(small, "", smallInk, bounds)
	return c
}
