// SPDX-License-Identifier: MIT

package dist

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/genesim/rng"
)

// Distribution produces a fresh random value on every call.
type Distribution interface {
	NextRandom() float64
}

// Normal is a Gaussian distribution N(mean, sd). sd == 0 is a point mass at mean.
type Normal struct {
	d distuv.Normal
}

// NewNormal returns N(mean, sd) drawing from src.
func NewNormal(mean, sd float64, src rng.Source) (*Normal, error) {
	if math.IsNaN(sd) || sd < 0 {
		return nil, fmt.Errorf("NewNormal: sd=%g: %w", sd, ErrBadStdDev)
	}
	if src == nil {
		return nil, fmt.Errorf("NewNormal: %w", ErrNeedRandSource)
	}
	return &Normal{d: distuv.Normal{Mu: mean, Sigma: sd, Src: src}}, nil
}

// NextRandom draws one value.
func (n *Normal) NextRandom() float64 {
	if n.d.Sigma == 0 {
		return n.d.Mu
	}
	return n.d.Rand()
}

// Mean returns the mean of the distribution.
func (n *Normal) Mean() float64 { return n.d.Mu }

// StdDev returns the standard deviation of the distribution.
func (n *Normal) StdDev() float64 { return n.d.Sigma }

// String renders N(mean, sd).
func (n *Normal) String() string {
	return fmt.Sprintf("N(%g, %g)", n.d.Mu, n.d.Sigma)
}

// Uniform is the continuous uniform distribution U(low, high).
type Uniform struct {
	d distuv.Uniform
}

// NewUniform returns U(low, high) drawing from src.
func NewUniform(low, high float64, src rng.Source) (*Uniform, error) {
	if math.IsNaN(low) || math.IsNaN(high) || low >= high {
		return nil, fmt.Errorf("NewUniform: low=%g high=%g: %w", low, high, ErrBadBounds)
	}
	if src == nil {
		return nil, fmt.Errorf("NewUniform: %w", ErrNeedRandSource)
	}
	return &Uniform{d: distuv.Uniform{Min: low, Max: high, Src: src}}, nil
}

// NextRandom draws one value.
func (u *Uniform) NextRandom() float64 { return u.d.Rand() }

// Mean returns (low+high)/2.
func (u *Uniform) Mean() float64 { return u.d.Mean() }

// StdDev returns the standard deviation of the distribution.
func (u *Uniform) StdDev() float64 { return u.d.StdDev() }

// String renders U(low, high).
func (u *Uniform) String() string {
	return fmt.Sprintf("U(%g, %g)", u.d.Min, u.d.Max)
}
