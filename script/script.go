// Package script replays a recorded sequence of netlist.Builder calls
// from a declarative Op list, typically loaded from a YAML fixture.
// It exists to let worked scenarios (and any future netlist source
// format) be expressed as data instead of hand-written Go literals.
package script

import (
	"fmt"

	"github.com/sarchlab/netlistgraph/netlist"
)

// Op is a single builder call, tagged by Kind. Only the fields
// relevant to Kind are populated; Apply dispatches on Kind rather than
// probing which fields are set.
type Op struct {
	Kind string `yaml:"kind"`

	ID      string   `yaml:"id,omitempty"`
	Inputs  []string `yaml:"inputs,omitempty"`
	Outputs []string `yaml:"outputs,omitempty"`
	Config  string   `yaml:"config,omitempty"`

	Data   string `yaml:"data,omitempty"`
	Ctrl   string `yaml:"ctrl,omitempty"`
	Output string `yaml:"output,omitempty"`

	Direction string `yaml:"direction,omitempty"`

	Value int `yaml:"value,omitempty"`

	Assignments []netlist.InputAssignment `yaml:"assignments,omitempty"`

	BlockID string `yaml:"block_id,omitempty"`
}

const (
	KindAddPrimeIO     = "add_prime_io"
	KindAddCfg         = "add_cfg"
	KindAddAri         = "add_ari"
	KindAddTri         = "add_tri"
	KindSetInput       = "set_input"
	KindSetRandomInput = "set_random_inputs"
	KindSimulate       = "simulate"
	KindTriplicate     = "triplicate"
)

// Apply replays ops in order against b. It stops at the first op whose
// own Kind is unrecognized or whose builder call returns a non-nil
// error. *netlist.Graph's Add*/SetInput methods always return nil and
// report duplicate IDs, bad arity and the like only through
// Diagnostics, and Simulate's diagnostics are discarded here; a failed
// Triplicate, which returns its error, does stop Apply.
func Apply(b netlist.Builder, ops []Op) error {
	for i, op := range ops {
		if err := applyOne(b, op); err != nil {
			return fmt.Errorf("op %d (%s): %w", i, op.Kind, err)
		}
	}
	return nil
}

func applyOne(b netlist.Builder, op Op) error {
	switch op.Kind {
	case KindAddPrimeIO:
		dir := netlist.In
		if op.Direction == "out" {
			dir = netlist.Out
		}
		return b.AddPrimeIO(op.ID, dir)

	case KindAddCfg:
		return b.AddCfg(op.ID, op.Inputs, op.Outputs, op.Config)

	case KindAddAri:
		return b.AddAri(op.ID, op.Inputs, op.Outputs, op.Config)

	case KindAddTri:
		return b.AddTri(op.ID, op.Data, op.Ctrl, op.Output)

	case KindSetInput:
		return b.SetInput(op.ID, op.Value)

	case KindSetRandomInput:
		b.SetRandomInputs()
		return nil

	case KindSimulate:
		b.Simulate(op.Assignments)
		return nil

	case KindTriplicate:
		return b.Triplicate(op.BlockID)

	default:
		return fmt.Errorf("unknown op kind %q", op.Kind)
	}
}
