// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/genesim/rng"
)

// Policy decides how many extra parents a regulated factor receives on top of
// its lag-1 self-edge, given indegree d.
type Policy int

const (
	// Constant: exactly d-1 extra parents.
	Constant Policy = iota
	// Max: uniform in [1, d-1], so d is the maximum indegree.
	Max
	// Mean: uniform in [1, 2(d-1)-1], so the mean indegree is about d.
	Mean
)

var policyNames = [...]string{Constant: "constant", Max: "max", Mean: "mean"}

func (p Policy) valid() bool { return p >= Constant && p <= Mean }

// String returns the lowercase policy name.
func (p Policy) String() string {
	if !p.valid() {
		return fmt.Sprintf("Policy(%d)", int(p))
	}
	return policyNames[p]
}

// ParsePolicy maps "constant", "max" or "mean" (any case) to a Policy.
func ParsePolicy(s string) (Policy, error) {
	for p, name := range policyNames {
		if strings.EqualFold(s, name) {
			return Policy(p), nil
		}
	}
	return 0, fmt.Errorf("ParsePolicy(%q): %w", s, ErrUnknownPolicy)
}

// extraParents draws the number of parents to add for indegree d (d >= 2).
func (p Policy) extraParents(d int, src rng.Source) int {
	switch p {
	case Max:
		return 1 + src.IntN(d-1)
	case Mean:
		return 1 + src.IntN(2*(d-1)-1)
	default:
		return d - 1
	}
}
