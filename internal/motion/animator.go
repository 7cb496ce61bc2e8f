package motion

import (
	"math"
	"slices"

	"github.com/charmbracelet/harmonica"
)

// DefaultFPS is the frame rate used when none is configured.
const DefaultFPS = 60

// restEpsilon is the distance and speed below which a spring snaps to its target.
const restEpsilon = 0.01

// Transition is the per-element descriptor handed to the [Animator] each frame.
type Transition struct {
	ID     string
	Target Rect
	Spring SpringParams

	// Overlay lifts the element out of normal flow: painted above everything else and
	// never returned by hit testing.
	Overlay bool
}

// Element is an element's current animated state.
type Element struct {
	ID      string
	Rect    Rect
	Target  Rect
	Overlay bool
}

type element struct {
	id      string
	pos     [4]float64
	vel     [4]float64
	target  Rect
	params  SpringParams
	spring  harmonica.Spring
	overlay bool
	order   int
}

// Animator interpolates matched elements toward their latest targets.
type Animator struct {
	fps   int
	elems map[string]*element
}

// NewAnimator creates an Animator stepping at fps frames per second.
func NewAnimator(fps int) *Animator {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Animator{fps: fps, elems: make(map[string]*element)}
}

// FPS returns the step rate.
func (a *Animator) FPS() int { return a.fps }

// Apply sets the next frame. Known ids keep their position and velocity and spring
// toward the new target; new ids start at their target; ids absent from frame are removed.
func (a *Animator) Apply(frame []Transition) {
	seen := make(map[string]bool, len(frame))
	for i, tr := range frame {
		seen[tr.ID] = true
		params := tr.Spring.orDefault()

		e, ok := a.elems[tr.ID]
		if !ok {
			e = &element{id: tr.ID, pos: tr.Target.components()}
			a.elems[tr.ID] = e
		}
		if !ok || e.params != params {
			e.params = params
			e.spring = params.harmonica(a.fps)
		}
		e.target = tr.Target
		e.overlay = tr.Overlay
		e.order = i
	}

	for id := range a.elems {
		if !seen[id] {
			delete(a.elems, id)
		}
	}
}

// Step advances every element by one frame. It reports whether anything is still moving.
func (a *Animator) Step() bool {
	moving := false
	for _, e := range a.elems {
		target := e.target.components()
		for i := range e.pos {
			e.pos[i], e.vel[i] = e.spring.Update(e.pos[i], e.vel[i], target[i])
			if math.Abs(e.pos[i]-target[i]) < restEpsilon && math.Abs(e.vel[i]) < restEpsilon {
				e.pos[i], e.vel[i] = target[i], 0
			} else {
				moving = true
			}
		}
	}
	return moving
}

// Settled reports whether every element rests on its target.
func (a *Animator) Settled() bool {
	for _, e := range a.elems {
		if e.pos != e.target.components() || e.vel != [4]float64{} {
			return false
		}
	}
	return true
}

// Jump snaps every element to its target.
func (a *Animator) Jump() {
	for _, e := range a.elems {
		e.pos = e.target.components()
		e.vel = [4]float64{}
	}
}

// Rect returns the current rect of id.
func (a *Animator) Rect(id string) (Rect, bool) {
	e, ok := a.elems[id]
	if !ok {
		return Rect{}, false
	}
	return rectOf(e.pos), true
}

// Elements returns every element in paint order: normal flow in frame order, then overlays.
func (a *Animator) Elements() []Element {
	elems := make([]*element, 0, len(a.elems))
	for _, e := range a.elems {
		elems = append(elems, e)
	}
	slices.SortFunc(elems, func(x, y *element) int {
		if x.overlay != y.overlay {
			if x.overlay {
				return 1
			}
			return -1
		}
		return x.order - y.order
	})

	out := make([]Element, len(elems))
	for i, e := range elems {
		out[i] = Element{ID: e.id, Rect: rectOf(e.pos), Target: e.target, Overlay: e.overlay}
	}
	return out
}

// HitTest returns the topmost non-overlay element containing (x, y).
func (a *Animator) HitTest(x, y float64) (string, bool) {
	elems := a.Elements()
	for i := len(elems) - 1; i >= 0; i-- {
		e := elems[i]
		if !e.Overlay && e.Rect.Contains(x, y) {
			return e.ID, true
		}
	}
	return "", false
}
