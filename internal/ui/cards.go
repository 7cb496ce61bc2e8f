package ui

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/cardswap/internal/motion"
	"github.com/desertthunder/cardswap/internal/swap"
)

// Card geometry in terminal cells.
const (
	cardW    = 7
	cardH    = 5
	cardGap  = 2
	rowPadX  = 2
	rowH     = cardH + 2
	rowGap   = 3
	boardTop = 2 // lines above the board: title and its margin
)

// CardsOptions configures a [CardsModel].
type CardsOptions struct {
	Spring motion.SpringParams
	FPS    int
	Logger *log.Logger
}

// CardsModel is the two-row card swap TUI.
type CardsModel struct {
	coord    *swap.Coordinator
	animator *motion.Animator
	spring   motion.SpringParams
	logger   *log.Logger
	width    int
	focus    swap.Side
	cursor   int
	ticking  bool
	moves    int
	status   string
	style    lipgloss.Style
	help     help.Model
	keys     keyMap
}

// NewCardsModel creates a CardsModel driving coord. Cards start at rest in their slots.
func NewCardsModel(coord *swap.Coordinator, opts CardsOptions) *CardsModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := &CardsModel{
		coord:    coord,
		animator: motion.NewAnimator(opts.FPS),
		spring:   opts.Spring,
		logger:   logger,
		focus:    swap.Left,
		help:     help.New(),
		keys:     newKeyMap(),
	}
	m.sync()
	m.animator.Jump()
	m.clamp()
	return m
}

func (m *CardsModel) Init() tea.Cmd {
	return nil
}

func (m *CardsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		id, ok := m.animator.HitTest(float64(msg.X)+0.5, float64(msg.Y-boardTop)+0.5)
		if !ok {
			return m, nil
		}
		m.focusOn(id)
		return m.request(id)

	case commitMsg:
		return m.commit()

	case settleMsg:
		if m.coord.Settle(msg.gen) {
			m.logger.Debug("move settled", "gen", msg.gen)
			m.sync()
		}
		return m, m.frames()

	case frameMsg:
		m.ticking = false
		if m.animator.Step() {
			return m, m.frames()
		}
		return m, nil
	}
	return m, nil
}

func (m *CardsModel) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.left):
		m.cursor--
	case key.Matches(msg, m.keys.right):
		m.cursor++
	case key.Matches(msg, m.keys.up):
		m.focus = swap.Left
	case key.Matches(msg, m.keys.down):
		m.focus = swap.Right
	case key.Matches(msg, m.keys.move):
		if id, ok := m.focused(); ok {
			return m.request(id)
		}
	case msg.String() == "?":
		m.help.ShowAll = !m.help.ShowAll
	default:
		// Typing a card's id moves it directly.
		if id := msg.String(); slices.Contains(m.coord.Items(), id) {
			m.focusOn(id)
			return m.request(id)
		}
	}
	m.clamp()
	return m, nil
}

// request runs the request phase. The commit follows as a separate message so the
// departure frame, with the card lifted into its overlay, is rendered first.
func (m *CardsModel) request(id string) (tea.Model, tea.Cmd) {
	ok, err := m.coord.RequestMove(id)
	if err != nil {
		m.status, m.style = err.Error(), styles.err
		m.logger.Warn("move rejected", "item", id, "error", err)
		return m, nil
	}
	if !ok {
		m.status, m.style = fmt.Sprintf("card %s is still moving", m.coord.Animating()), styles.warn
		return m, nil
	}
	m.status = ""
	m.sync()
	return m, tea.Batch(commitCmd(), m.frames())
}

func (m *CardsModel) commit() (tea.Model, tea.Cmd) {
	ticket, ok := m.coord.Commit()
	if !ok {
		return m, nil
	}
	m.moves++
	p := m.coord.Render(m.coord.Animating())
	m.status, m.style = fmt.Sprintf("%s → %s", m.coord.Animating(), p.Side), styles.ok
	m.sync()
	m.clamp()
	return m, tea.Batch(settleCmd(ticket.Gen, ticket.Delay), m.frames())
}

// frames starts the frame loop unless one is already scheduled.
func (m *CardsModel) frames() tea.Cmd {
	if m.ticking || m.animator.Settled() {
		return nil
	}
	m.ticking = true
	return frameCmd(m.animator.FPS())
}

// sync hands the animator the current frame: every card at its slot, the animating card as overlay.
func (m *CardsModel) sync() {
	var frame []motion.Transition
	for _, side := range []swap.Side{swap.Left, swap.Right} {
		for _, id := range m.coord.Row(side) {
			p := m.coord.Render(id)
			frame = append(frame, motion.Transition{
				ID:      id,
				Target:  slotRect(p.Side, p.Index),
				Spring:  m.spring,
				Overlay: p.Overlay,
			})
		}
	}
	m.animator.Apply(frame)
}

func (m *CardsModel) focused() (string, bool) {
	row := m.coord.Row(m.focus)
	if m.cursor < 0 || m.cursor >= len(row) {
		return "", false
	}
	return row[m.cursor], true
}

func (m *CardsModel) focusOn(id string) {
	p := m.coord.Render(id)
	if p.Side == swap.None {
		return
	}
	m.focus, m.cursor = p.Side, p.Index
}

func (m *CardsModel) clamp() {
	n := len(m.coord.Row(m.focus))
	m.cursor = max(min(m.cursor, n-1), 0)
}

func (m *CardsModel) View() string {
	var b strings.Builder
	b.WriteString(styles.title.Render("Layout ID · card swap"))
	b.WriteString("\n")
	b.WriteString(m.board().String())
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "phase: %s  moves: %d", m.coord.Phase(), m.moves)
	if m.status != "" {
		b.WriteString("  ")
		b.WriteString(m.style.Render(m.status))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.help.Render(m.help.View(m.keys)))
	return b.String()
}

// board paints the rows, the flight placeholder and every card in paint order.
func (m *CardsModel) board() *canvas {
	n := len(m.coord.Items())
	w := max(m.width, 2*rowPadX+n*(cardW+cardGap)-cardGap+2)
	c := newCanvas(w, 2*rowH+rowGap)
	all := c.bounds()

	for _, side := range []swap.Side{swap.Left, swap.Right} {
		top := rowTop(side)
		c.box(motion.Rect{X: 0, Y: float64(top), W: float64(w), H: rowH}, "", inkRow, all)
		c.text(2, top, " "+side.String()+" ", inkRow)
	}

	elems := m.animator.Elements()
	for _, e := range elems {
		if e.Overlay {
			c.dashed(e.Target, inkPlaceholder, all)
		}
	}

	focused, _ := m.focused()
	for _, e := range elems {
		k := inkCard
		switch {
		case e.Overlay:
			k = inkFlight
		case e.ID == focused:
			k = inkCardFocus
		}
		c.box(e.Rect, e.ID, k, all)
	}
	return c
}

func rowTop(s swap.Side) int {
	if s == swap.Right {
		return rowH + rowGap
	}
	return 0
}

// slotRect is the resting rect of the card at index in row s.
func slotRect(s swap.Side, index int) motion.Rect {
	return motion.Rect{
		X: float64(rowPadX + index*(cardW+cardGap)),
		Y: float64(rowTop(s) + 1),
		W: cardW,
		H: cardH,
	}
}
