package traject

import (
	"github.com/motionkit/traject/registry"
)

// Interface is the hardware interface for commanding whole trajectories.
//
// In contrast to per-cycle command interfaces, a trajectory spans several
// actuators that move together, so the interface claims a configured group of
// resources as one unit while still storing claims per individual name in
// the embedded registry. Release and handle lookup keep single-name
// semantics: a caller that claimed a whole group through one Claim call must
// release each member individually.
type Interface[C, F any] struct {
	*registry.Registry[*Handle[C, F]]
	resources []string
}

// NewInterface creates a trajectory interface with an empty resource group
// and its own registry.
func NewInterface[C, F any]() *Interface[C, F] {
	return &Interface[C, F]{
		Registry: registry.New[*Handle[C, F]](),
	}
}

// SetResources replaces the configured resource group with the given ordered
// list. Call it during interface initialization, before the first Claim.
// The last call wins; nothing prevents reconfiguration while claims exist,
// so keeping the group stable across a claim cycle is the caller's job.
func (i *Interface[C, F]) SetResources(names []string) {
	i.resources = append([]string(nil), names...)
}

// Resources returns a copy of the configured resource group.
func (i *Interface[C, F]) Resources() []string {
	return append([]string(nil), i.resources...)
}

// Claim acquires the entire configured resource group. The requested name is
// informational only and does not select what gets claimed: the interface
// iterates its configured group in stored order and claims every member, so
// requesting any one member grants the whole group.
//
// The first failing member claim propagates immediately and members claimed
// earlier in the same call stay claimed; there is no rollback. Callers must
// be prepared to detect and release the partially claimed set, or use
// ClaimAtomic.
func (i *Interface[C, F]) Claim(requested string) error {
	for _, name := range i.resources {
		if err := i.Registry.Claim(name); err != nil {
			return err
		}
	}
	return nil
}

// ClaimAtomic acquires the configured resource group as a transaction: on any
// member failure it releases every member claimed by this call before
// returning the error, leaving claims held before the call untouched. The
// requested name is informational only, as with Claim.
func (i *Interface[C, F]) ClaimAtomic(requested string) error {
	claimed := make([]string, 0, len(i.resources))
	for _, name := range i.resources {
		if err := i.Registry.Claim(name); err != nil {
			for j := len(claimed) - 1; j >= 0; j-- {
				// Release cannot fail for a name this call just claimed.
				_ = i.Registry.Release(claimed[j])
			}
			return err
		}
		claimed = append(claimed, name)
	}
	return nil
}
