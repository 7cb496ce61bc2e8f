package motion

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// SpringParams describes a damped spring in physical terms.
type SpringParams struct {
	Stiffness float64
	Damping   float64
	Mass      float64
}

// DefaultSpring is the card flight spring: stiffness 300, damping 30, unit mass.
func DefaultSpring() SpringParams {
	return SpringParams{Stiffness: 300, Damping: 30, Mass: 1}
}

// AngularFrequency is sqrt(k/m).
func (p SpringParams) AngularFrequency() float64 {
	return math.Sqrt(p.Stiffness / p.mass())
}

// DampingRatio is c / (2*sqrt(k*m)).
func (p SpringParams) DampingRatio() float64 {
	return p.Damping / (2 * math.Sqrt(p.Stiffness*p.mass()))
}

// harmonica builds the integrator for one frame step at fps.
func (p SpringParams) harmonica(fps int) harmonica.Spring {
	return harmonica.NewSpring(harmonica.FPS(fps), p.AngularFrequency(), p.DampingRatio())
}

func (p SpringParams) mass() float64 {
	if p.Mass <= 0 {
		return 1
	}
	return p.Mass
}

func (p SpringParams) orDefault() SpringParams {
	if p.Stiffness <= 0 {
		return DefaultSpring()
	}
	return p
}
