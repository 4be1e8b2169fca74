/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package build

import (
	"fmt"

	"bennypowers.dev/brandtokens/buildctx"
)

// State is a state of the orchestrator.
type State int

const (
	// Idle is the state before a run starts.
	Idle State = iota
	// BuildingPrimitives runs the shared primitives pass.
	BuildingPrimitives
	// BuildingBrand runs one brand pass.
	BuildingBrand
	// BuildingResponsive runs the responsive pass.
	BuildingResponsive
	// Done is the terminal state.
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case BuildingPrimitives:
		return "BuildingPrimitives"
	case BuildingBrand:
		return "BuildingBrand"
	case BuildingResponsive:
		return "BuildingResponsive"
	case Done:
		return "Done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// stateFor returns the state that builds ctx.
func stateFor(ctx buildctx.Context) State {
	switch ctx.Kind {
	case buildctx.Primitives:
		return BuildingPrimitives
	case buildctx.Brand:
		return BuildingBrand
	default:
		return BuildingResponsive
	}
}

// Transition describes one state change.
type Transition struct {
	From State
	To   State

	// Brand is the registry index of the brand being built, or -1.
	Brand int

	// Context is the context of the pass being entered. It is the zero
	// value when entering Done.
	Context buildctx.Context
}

func (t Transition) String() string {
	if t.To == BuildingBrand {
		return fmt.Sprintf("%s -> %s(%d)", t.From, t.To, t.Brand)
	}
	return fmt.Sprintf("%s -> %s", t.From, t.To)
}
