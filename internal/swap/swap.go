package swap

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/cardswap/internal/shared"
)

// DefaultSettleDelay is how long the overlay stays up after a commit.
const DefaultSettleDelay = 500 * time.Millisecond

var (
	ErrUnknownItem   = fmt.Errorf("%w: item is not in either row", shared.ErrInvalidArgument)
	ErrDuplicateItem = fmt.Errorf("%w: item appears more than once", shared.ErrInvalidArgument)
	ErrInvalidItem   = fmt.Errorf("%w: item id is empty", shared.ErrInvalidArgument)
)

// Side names one of the two rows.
type Side int

const (
	None Side = iota
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Other returns the opposite row. [None] has no opposite.
func (s Side) Other() Side {
	switch s {
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

// ParseSide is the inverse of [Side.String].
func ParseSide(s string) (Side, error) {
	switch s {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return None, fmt.Errorf("%w: side %q", shared.ErrInvalidArgument, s)
	}
}

// Phase is the coordinator's position in the move lifecycle.
type Phase int

const (
	Idle      Phase = iota
	Requested       // pending move and animating item set
	Committed       // membership flipped, overlay still animating
)

func (p Phase) String() string {
	switch p {
	case Requested:
		return "requested"
	case Committed:
		return "committed"
	default:
		return "idle"
	}
}

// Ticket is the one-shot handle for clearing the animating item after a commit.
type Ticket struct {
	Gen   uint64
	Delay time.Duration
}

// Move describes a committed membership transfer.
type Move struct {
	Item  string
	From  Side
	To    Side
	Index int // position in the destination row
}

// Placement is the render projection for one item.
type Placement struct {
	Side    Side
	Index   int
	Overlay bool // also drawn as a detached flight overlay
}

// Snapshot is a copy of the coordinator state.
type Snapshot struct {
	Left      []string
	Right     []string
	Pending   string
	Animating string
	Phase     Phase
}

// Observer is notified after every commit.
type Observer func(Move)

// Option configures a [Coordinator].
type Option func(*Coordinator)

// WithSettleDelay sets the delay carried by commit tickets.
func WithSettleDelay(d time.Duration) Option {
	return func(c *Coordinator) {
		if d > 0 {
			c.delay = d
		}
	}
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(c *Coordinator) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver registers fn to be called after each commit.
func WithObserver(fn Observer) Option {
	return func(c *Coordinator) {
		if fn != nil {
			c.observers = append(c.observers, fn)
		}
	}
}

// Coordinator owns two disjoint rows and sequences moves between them.
type Coordinator struct {
	left      []string
	right     []string
	pending   string
	animating string
	gen       uint64
	delay     time.Duration
	logger    *log.Logger
	observers []Observer
}

// New creates a Coordinator over copies of left and right.
//
// Every id must be non-empty and appear exactly once across both rows.
func New(left, right []string, opts ...Option) (*Coordinator, error) {
	seen := make(map[string]bool, len(left)+len(right))
	for _, id := range slices.Concat(left, right) {
		if id == "" {
			return nil, ErrInvalidItem
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateItem, id)
		}
		seen[id] = true
	}

	c := &Coordinator{
		left:   slices.Clone(left),
		right:  slices.Clone(right),
		delay:  DefaultSettleDelay,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// RequestMove starts moving id to the other row.
//
// It reports false without changing anything while another move is pending or animating.
// Unknown ids fail with [ErrUnknownItem].
func (c *Coordinator) RequestMove(id string) (bool, error) {
	if c.Busy() {
		c.logger.Debug("move ignored while busy", "item", id, "pending", c.pending, "animating", c.animating)
		return false, nil
	}
	if c.sideOf(id) == None {
		return false, fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}

	c.pending = id
	c.animating = id
	c.logger.Debug("move requested", "item", id)
	return true, nil
}

// Commit transfers the pending item to the end of the other row and returns the settle ticket.
//
// It reports false when no move is pending. Earlier tickets are superseded.
func (c *Coordinator) Commit() (Ticket, bool) {
	if c.pending == "" {
		return Ticket{}, false
	}

	id := c.pending
	from := c.sideOf(id)
	src, dst := c.rows(from)
	*src = slices.DeleteFunc(*src, func(s string) bool { return s == id })
	*dst = append(*dst, id)
	c.pending = ""
	c.gen++

	move := Move{Item: id, From: from, To: from.Other(), Index: len(*dst) - 1}
	c.logger.Debug("move committed", "item", id, "from", move.From, "to", move.To, "gen", c.gen)
	for _, fn := range c.observers {
		fn(move)
	}

	return Ticket{Gen: c.gen, Delay: c.delay}, true
}

// Settle clears the animating item if gen belongs to the latest commit.
func (c *Coordinator) Settle(gen uint64) bool {
	if gen != c.gen || c.pending != "" || c.animating == "" {
		c.logger.Debug("stale settle ignored", "gen", gen, "current", c.gen)
		return false
	}
	c.logger.Debug("move settled", "item", c.animating, "gen", gen)
	c.animating = ""
	return true
}

// Render projects where id is drawn.
func (c *Coordinator) Render(id string) Placement {
	p := Placement{Side: None, Index: -1, Overlay: id != "" && id == c.animating}
	if i := slices.Index(c.left, id); i >= 0 {
		p.Side, p.Index = Left, i
	} else if i := slices.Index(c.right, id); i >= 0 {
		p.Side, p.Index = Right, i
	}
	return p
}

// Busy reports whether a move is pending or animating.
func (c *Coordinator) Busy() bool { return c.pending != "" || c.animating != "" }

// Phase reports the lifecycle phase.
func (c *Coordinator) Phase() Phase {
	switch {
	case c.pending != "":
		return Requested
	case c.animating != "":
		return Committed
	default:
		return Idle
	}
}

// Animating returns the item flagged for the flight overlay, or "".
func (c *Coordinator) Animating() string { return c.animating }

// SettleDelay returns the delay carried by tickets.
func (c *Coordinator) SettleDelay() time.Duration { return c.delay }

// Row returns a copy of one row.
func (c *Coordinator) Row(s Side) []string {
	switch s {
	case Left:
		return slices.Clone(c.left)
	case Right:
		return slices.Clone(c.right)
	default:
		return nil
	}
}

// Items returns every id, left row first.
func (c *Coordinator) Items() []string { return slices.Concat(c.left, c.right) }

// Snapshot copies the current state.
func (c *Coordinator) Snapshot() Snapshot {
	return Snapshot{
		Left:      slices.Clone(c.left),
		Right:     slices.Clone(c.right),
		Pending:   c.pending,
		Animating: c.animating,
		Phase:     c.Phase(),
	}
}

func (c *Coordinator) sideOf(id string) Side {
	switch {
	case slices.Contains(c.left, id):
		return Left
	case slices.Contains(c.right, id):
		return Right
	default:
		return None
	}
}

// rows returns the source and destination rows for an item on side s.
func (c *Coordinator) rows(s Side) (src, dst *[]string) {
	if s == Left {
		return &c.left, &c.right
	}
	return &c.right, &c.left
}
