package netlist

import "context"

// InputAssignment pairs a primary-input id with the bit to write to it
// before a Simulate call. One ordered slice of these replaces a
// parallel pair of id/bit lists that could silently disagree in
// length; a nil or empty slice simply means no assignments this run.
type InputAssignment struct {
	ID  string
	Bit int
}

// Simulate applies assignments (if any), resets every non-primary-
// input net to Unset, and evaluates blocks until every block has a
// defined output or has reported an error. It never aborts outright:
// a bad subgraph's error is recorded and evaluation continues with
// the next top-level block. The diagnostics raised during this call
// are returned; the full lifetime history remains available via
// Diagnostics.
func (g *Graph) Simulate(assignments []InputAssignment) []*Error {
	before := len(g.diagnostics)

	for _, a := range assignments {
		g.SetInput(a.ID, a.Bit)
	}

	g.resetForSimulation()

	for _, id := range g.cfgOrder {
		g.processTopLevel(id)
	}
	for _, id := range g.ariOrder {
		g.processTopLevel(id)
	}
	for _, id := range g.triOrder {
		g.processTopLevel(id)
	}
	for _, id := range g.gateOrder {
		g.processTopLevel(id)
	}

	if g.recorder != nil {
		_ = g.recorder.RecordRun(g.name, g.snapshotPrimaryInputs(), g.snapshotPrimaryOutputs())
	}

	return g.diagnostics[before:]
}

// resetForSimulation sets every net driven by a block (Cfg/Ari/Tri/
// Gate output) and every primary output back to Unset. Primary input
// values, including the VCC/GND constants, are left untouched.
func (g *Graph) resetForSimulation() {
	for _, id := range g.primaryOutputs {
		g.nets[id] = Unset
	}
	for net := range g.drivenBy {
		g.nets[net] = Unset
	}
	g.visiting = make(map[string]bool)
}

func (g *Graph) processTopLevel(id string) {
	if g.isEvaluated(g.nodes[id]) {
		return
	}
	g.logger.Log(context.Background(), LevelEval, "processing top-level block", "block", id)
	_ = g.process(id)
}

// process ensures every upstream block feeding id's inputs has been
// materialized, then computes and writes id's own outputs. It detects
// combinational cycles via the visiting set rather than relying on
// native call-stack depth.
func (g *Graph) process(id string) error {
	node, ok := g.nodes[id]
	if !ok {
		return g.recordError(&Error{Kind: UnknownNet, BlockID: id, Message: "block does not exist in the graph"})
	}

	if g.visiting[id] {
		return g.recordError(&Error{Kind: CombinationalCycle, BlockID: id, Message: "block re-entered while mid-evaluation"})
	}
	if g.isEvaluated(node) {
		return nil
	}

	g.visiting[id] = true
	defer delete(g.visiting, id)

	inputVals := make([]Value, len(node.Inputs))
	for i, net := range node.Inputs {
		v, err := g.resolveNet(net)
		if err != nil {
			return err
		}
		inputVals[i] = v
	}

	g.computeAndWrite(node, inputVals)
	g.logger.Log(context.Background(), LevelEval, "processed block", "block", id, "kind", node.Kind.String())

	return nil
}

// resolveNet returns the current value of net, recursively evaluating
// its driver if necessary.
func (g *Graph) resolveNet(net string) (Value, error) {
	if io, ok := g.nodes[net]; ok && io.Kind == PrimeIO {
		if io.Direction == In {
			v := g.nets[net]
			if v == Unset {
				return Unset, g.recordError(&Error{Kind: MissingPrimaryInput, NetID: net, Message: "primary input was not set before simulate"})
			}
			return v, nil
		}
		// A primary output referenced as another block's input: fall
		// through to the driver lookup below, since its own node entry
		// carries no independent value.
	}

	driverID, ok := g.drivenBy[net]
	if !ok {
		return Unset, g.recordError(&Error{Kind: UnknownNet, NetID: net, Message: "net is not a primary input or the output of any block"})
	}

	if g.visiting[driverID] {
		return Unset, g.recordError(&Error{Kind: CombinationalCycle, BlockID: driverID, NetID: net, Message: "block re-entered while mid-evaluation"})
	}
	if !g.isEvaluated(g.nodes[driverID]) {
		if err := g.process(driverID); err != nil {
			return Unset, err
		}
	}

	return g.nets[net], nil
}

// isEvaluated reports whether node's output(s) already carry a defined
// value. Ari writes all three outputs together, so checking the first
// suffices.
func (g *Graph) isEvaluated(node *Node) bool {
	if node == nil || len(node.Outputs) == 0 {
		return false
	}
	return g.nets[node.Outputs[0]] != Unset
}

func (g *Graph) computeAndWrite(node *Node, inputVals []Value) {
	switch node.Kind {
	case Cfg:
		g.writeNet(node.Outputs[0], evalCfg(inputVals, node.ConfigRev))
	case Ari:
		y, s, fco := evalAri(inputVals, node.ConfigRev)
		g.writeNet(node.Outputs[0], y)
		g.writeNet(node.Outputs[1], s)
		g.writeNet(node.Outputs[2], fco)
	case Tri:
		g.writeNet(node.Outputs[0], evalTri(inputVals[0], inputVals[1]))
	case Gate:
		g.writeNet(node.Outputs[0], evalGate(node.GateOp, inputVals))
	}
}

// writeNet assigns value to net and broadcasts it to any fan-out sinks
// registered against net. Net assignment to a primary
// output net is implicit: the net table is keyed by name, so writing a
// block's driver net that happens to equal a primary output's own name
// updates that primary output directly.
func (g *Graph) writeNet(net string, value Value) {
	g.nets[net] = value

	sinks, ok := g.fanout[net]
	if !ok {
		return
	}
	for _, sink := range sinks {
		io, isPrimary := g.nodes[sink]
		if !isPrimary || io.Kind != PrimeIO || io.Direction != Out {
			g.logger.Warn("fan-out sink is not a primary output", "net", net, "sink", sink)
			continue
		}
		g.nets[sink] = value
	}
}

func (g *Graph) snapshotPrimaryInputs() map[string]Value {
	out := make(map[string]Value, len(g.primaryInputs))
	for _, id := range g.primaryInputs {
		out[id] = g.nets[id]
	}
	return out
}

func (g *Graph) snapshotPrimaryOutputs() map[string]Value {
	out := make(map[string]Value, len(g.primaryOutputs))
	for _, id := range g.primaryOutputs {
		out[id] = g.nets[id]
	}
	return out
}
