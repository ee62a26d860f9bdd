package workspace

import (
	"github.com/KirkDiggler/monster-maker/internal/errors"
)

// Eligibility policy names accepted by PolicyByName
const (
	PolicyGlobal    = "global"
	PolicyPerSource = "per-source"
)

// ExclusivePart is the part name capped at one instance under PerSourcePolicy
const ExclusivePart = "torso"

// EligibilityPolicy decides whether another instance of a part may be placed
// given the parts already on the workspace. Implementations are pure.
type EligibilityPolicy interface {
	Name() string
	CanAdd(partName, source string, placed []*PlacedPart) bool
}

// GlobalCapPolicy allows at most Cap instances of a part name, whatever
// creature they came from.
type GlobalCapPolicy struct {
	Cap int
}

// Name returns the policy name
func (p GlobalCapPolicy) Name() string { return PolicyGlobal }

// CanAdd implements EligibilityPolicy
func (p GlobalCapPolicy) CanAdd(partName, _ string, placed []*PlacedPart) bool {
	n := 0
	for _, part := range placed {
		if part.PartName == partName {
			n++
		}
	}
	return n < p.Cap
}

// PerSourcePolicy allows one instance of each part per source creature, and
// one Exclusive part in total.
type PerSourcePolicy struct {
	Exclusive string
}

// Name returns the policy name
func (p PerSourcePolicy) Name() string { return PolicyPerSource }

// CanAdd implements EligibilityPolicy
func (p PerSourcePolicy) CanAdd(partName, source string, placed []*PlacedPart) bool {
	for _, part := range placed {
		if part.PartName != partName {
			continue
		}
		if partName == p.Exclusive || part.SourceCreature == source {
			return false
		}
	}
	return true
}

// PolicyByName builds a policy from its configured name.
func PolicyByName(name string) (EligibilityPolicy, error) {
	switch name {
	case "", PolicyGlobal:
		return GlobalCapPolicy{Cap: 2}, nil
	case PolicyPerSource:
		return PerSourcePolicy{Exclusive: ExclusivePart}, nil
	default:
		return nil, errors.InvalidArgumentf("unknown eligibility policy %q", name)
	}
}
