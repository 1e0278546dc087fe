package netlist

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// PrimeIOSnapshot is a read-only view of a primary I/O net and its
// current value, returned by PrimaryIOs.
type PrimeIOSnapshot struct {
	ID        string
	Direction Direction
	Value     Value
}

// CfgSnapshot is a read-only view of a Cfg block, with its config
// restored to the user-facing (non-reversed) hex string.
type CfgSnapshot struct {
	ID     string
	Inputs []string
	Output string
	Config string
	FanOut []string
	Value  Value
}

// AriSnapshot is a read-only view of an Ari block.
type AriSnapshot struct {
	ID        string
	Inputs    []string
	Y, S, FCO string
	Config    string
	Values    [3]Value
}

// TriSnapshot is a read-only view of a tri-state buffer.
type TriSnapshot struct {
	ID         string
	Data, Ctrl string
	Output     string
	Value      Value
}

// GateSnapshot is a read-only view of a primitive AND/OR gate. Gates
// only ever exist as the product of Triplicate.
type GateSnapshot struct {
	ID     string
	Op     GateOp
	Inputs []string
	Output string
	Value  Value
}

// PrimaryIOs returns every declared primary I/O net: all primary
// inputs first (the pinned VCC/GND constants leading), then all
// primary outputs, each group in declaration order.
func (g *Graph) PrimaryIOs() []PrimeIOSnapshot {
	var out []PrimeIOSnapshot
	for _, id := range g.primaryInputs {
		n := g.nodes[id]
		out = append(out, PrimeIOSnapshot{ID: id, Direction: n.Direction, Value: g.nets[id]})
	}
	for _, id := range g.primaryOutputs {
		n := g.nodes[id]
		out = append(out, PrimeIOSnapshot{ID: id, Direction: n.Direction, Value: g.nets[id]})
	}
	return out
}

// CfgBlocks returns every Cfg block currently in the graph, in
// insertion order, with its config restored to display hex.
func (g *Graph) CfgBlocks() []CfgSnapshot {
	var out []CfgSnapshot
	for _, id := range g.cfgOrder {
		n := g.nodes[id]
		out = append(out, CfgSnapshot{
			ID:     id,
			Inputs: n.Inputs,
			Output: n.Outputs[0],
			Config: displayConfig(n.ConfigRev),
			FanOut: g.fanout[n.Outputs[0]],
			Value:  g.nets[n.Outputs[0]],
		})
	}
	return out
}

// AriBlocks returns every Ari block currently in the graph, in
// insertion order.
func (g *Graph) AriBlocks() []AriSnapshot {
	var out []AriSnapshot
	for _, id := range g.ariOrder {
		n := g.nodes[id]
		out = append(out, AriSnapshot{
			ID:     id,
			Inputs: n.Inputs,
			Y:      n.Outputs[0],
			S:      n.Outputs[1],
			FCO:    n.Outputs[2],
			Config: displayConfig(n.ConfigRev),
			Values: [3]Value{g.nets[n.Outputs[0]], g.nets[n.Outputs[1]], g.nets[n.Outputs[2]]},
		})
	}
	return out
}

// Tribufs returns every tri-state buffer currently in the graph, in
// insertion order.
func (g *Graph) Tribufs() []TriSnapshot {
	var out []TriSnapshot
	for _, id := range g.triOrder {
		n := g.nodes[id]
		out = append(out, TriSnapshot{ID: id, Data: n.Inputs[0], Ctrl: n.Inputs[1], Output: n.Outputs[0], Value: g.nets[n.Outputs[0]]})
	}
	return out
}

// Gates returns every primitive AND/OR gate currently in the graph, in
// insertion order. Empty unless Triplicate has been called.
func (g *Graph) Gates() []GateSnapshot {
	var out []GateSnapshot
	for _, id := range g.gateOrder {
		n := g.nodes[id]
		out = append(out, GateSnapshot{ID: id, Op: n.GateOp, Inputs: n.Inputs, Output: n.Outputs[0], Value: g.nets[n.Outputs[0]]})
	}
	return out
}

// IntermediateNets returns every net driven by a block that is not
// itself a primary output, along with its current value: the wiring
// internal to the graph that WriteReport's tables do not otherwise
// surface net-by-net.
func (g *Graph) IntermediateNets() map[string]Value {
	out := make(map[string]Value)
	for net := range g.drivenBy {
		if _, isPrimary := g.nodes[net]; isPrimary {
			continue
		}
		out[net] = g.nets[net]
	}
	return out
}

// WriteReport renders the graph's current state as a sequence of
// go-pretty tables: primary I/O, then one table per block kind that is
// non-empty, then a diagnostics table if any were recorded.
func (g *Graph) WriteReport(w io.Writer) {
	fmt.Fprintf(w, "Graph: %s\n\n", g.name)

	ioTable := table.NewWriter()
	ioTable.SetTitle("Primary I/O")
	ioTable.AppendHeader(table.Row{"ID", "Direction", "Value"})
	for _, io := range g.PrimaryIOs() {
		ioTable.AppendRow(table.Row{io.ID, io.Direction.String(), io.Value.String()})
	}
	fmt.Fprintln(w, ioTable.Render())

	if cfgs := g.CfgBlocks(); len(cfgs) > 0 {
		t := table.NewWriter()
		t.SetTitle("Cfg Blocks")
		t.AppendHeader(table.Row{"ID", "Inputs", "Output", "Config", "Value"})
		for _, c := range cfgs {
			t.AppendRow(table.Row{c.ID, fmt.Sprint(c.Inputs), c.Output, c.Config, c.Value.String()})
		}
		fmt.Fprintln(w, t.Render())
	}

	if aris := g.AriBlocks(); len(aris) > 0 {
		t := table.NewWriter()
		t.SetTitle("Ari Blocks")
		t.AppendHeader(table.Row{"ID", "Inputs", "Y", "S", "FCO", "Config", "Values"})
		for _, a := range aris {
			t.AppendRow(table.Row{a.ID, fmt.Sprint(a.Inputs), a.Y, a.S, a.FCO, a.Config, fmt.Sprint(a.Values)})
		}
		fmt.Fprintln(w, t.Render())
	}

	if tris := g.Tribufs(); len(tris) > 0 {
		t := table.NewWriter()
		t.SetTitle("Tri-State Buffers")
		t.AppendHeader(table.Row{"ID", "Data", "Ctrl", "Output", "Value"})
		for _, tr := range tris {
			t.AppendRow(table.Row{tr.ID, tr.Data, tr.Ctrl, tr.Output, tr.Value.String()})
		}
		fmt.Fprintln(w, t.Render())
	}

	if gates := g.Gates(); len(gates) > 0 {
		t := table.NewWriter()
		t.SetTitle("Gates")
		t.AppendHeader(table.Row{"ID", "Op", "Inputs", "Output", "Value"})
		for _, gt := range gates {
			t.AppendRow(table.Row{gt.ID, gt.Op.String(), fmt.Sprint(gt.Inputs), gt.Output, gt.Value.String()})
		}
		fmt.Fprintln(w, t.Render())
	}

	if diags := g.Diagnostics(); len(diags) > 0 {
		t := table.NewWriter()
		t.SetTitle("Diagnostics")
		t.AppendHeader(table.Row{"Kind", "Block", "Net", "Message"})
		for _, d := range diags {
			t.AppendRow(table.Row{d.Kind.String(), d.BlockID, d.NetID, d.Message})
		}
		fmt.Fprintln(w, t.Render())
	}
}
