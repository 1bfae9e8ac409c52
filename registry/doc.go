// Package registry provides a generic per-name exclusive resource registry.
//
// A Registry maps resource names to handles and tracks which names are
// currently claimed. Every name has at most one owner at a time: Claim on an
// already-claimed name fails with (claim, already_claimed), and Release makes
// the name available again. Claims and handle registrations are independent:
// a name can be claimed without a handle registered under it, which is what
// group-claiming trajectory interfaces rely on.
//
// # Lifecycle
//
//	reg := registry.New[*MyHandle]()
//
//	// Startup: register handles by name.
//	err := reg.RegisterHandle("arm", h)
//
//	// Activation: claim resources exclusively.
//	err = reg.Claim("shoulder_pan")
//
//	// Deactivation: release them per-name.
//	err = reg.Release("shoulder_pan")
//
// # Observers
//
// Register observers to track claim lifecycle events:
//
//	reg.Subscribe(obs) // obs.OnClaimEvent fires on claim and release
//
// All registry operations are safe for concurrent use.
package registry
