package netlist

import "fmt"

// Triplicate rewrites a Cfg, Ari, or Tri block into a triple-modular-
// redundant structure: three functionally identical
// replicas of the original block, each producing its own copy of every
// output, followed by a 2-of-3 majority voter (three pairwise AND
// gates feeding one OR gate) per original output net. The voter's OR
// gate drives the original output net directly, so every other block
// wired to it needs no changes. The original block is removed.
//
// Replica IDs and replica output net names follow the original
// source's fixed suffix scheme exactly: blckID+"_tripd780/781/782" for
// the three replica block IDs, and origOutput+"_trip7280/7281/7282"
// for their replicated output nets.
func (g *Graph) Triplicate(blockID string) error {
	node, ok := g.nodes[blockID]
	if !ok {
		return g.recordError(&Error{Kind: UnknownNet, BlockID: blockID, Message: "block does not exist; triplication aborted"})
	}

	switch node.Kind {
	case Cfg, Tri:
		return g.triplicateSingleOutput(node)
	case Ari:
		return g.triplicateAri(node)
	default:
		return g.recordError(&Error{Kind: InvalidArity, BlockID: blockID, Message: "only cfg, ari, and tri blocks can be triplicated"})
	}
}

var replicaSuffixes = [3]string{"_tripd780", "_tripd781", "_tripd782"}
var netSuffixes = [3]string{"_trip7280", "_trip7281", "_trip7282"}

func (g *Graph) triplicateSingleOutput(node *Node) error {
	origOutput := node.Outputs[0]
	replicaIDs := [3]string{}
	replicaNets := [3]string{}

	for i := 0; i < 3; i++ {
		replicaIDs[i] = node.ID + replicaSuffixes[i]
		replicaNets[i] = origOutput + netSuffixes[i]

		replica := &Node{
			ID:        replicaIDs[i],
			Kind:      node.Kind,
			Inputs:    append([]string(nil), node.Inputs...),
			Outputs:   []string{replicaNets[i]},
			ConfigRev: node.ConfigRev,
			GateOp:    node.GateOp,
		}
		g.nodes[replicaIDs[i]] = replica
		g.nets[replicaNets[i]] = Unset
		g.drivenBy[replicaNets[i]] = replicaIDs[i]

		switch node.Kind {
		case Cfg:
			g.cfgOrder = append(g.cfgOrder, replicaIDs[i])
		case Tri:
			g.triOrder = append(g.triOrder, replicaIDs[i])
		}
	}

	if err := g.voteInto(replicaIDs, replicaNets, 0, origOutput); err != nil {
		return err
	}

	g.removeBlock(node)
	return nil
}

func (g *Graph) triplicateAri(node *Node) error {
	replicaIDs := [3]string{}
	for i := 0; i < 3; i++ {
		replicaIDs[i] = node.ID + replicaSuffixes[i]
	}

	replicaNets := [3][3]string{}
	for slot := 0; slot < 3; slot++ {
		for i := 0; i < 3; i++ {
			replicaNets[i][slot] = node.Outputs[slot] + netSuffixes[i]
		}
	}

	for i := 0; i < 3; i++ {
		g.nodes[replicaIDs[i]] = &Node{
			ID:        replicaIDs[i],
			Kind:      Ari,
			Inputs:    append([]string(nil), node.Inputs...),
			Outputs:   []string{replicaNets[i][0], replicaNets[i][1], replicaNets[i][2]},
			ConfigRev: node.ConfigRev,
		}
		for slot := 0; slot < 3; slot++ {
			g.nets[replicaNets[i][slot]] = Unset
			g.drivenBy[replicaNets[i][slot]] = replicaIDs[i]
		}
		g.ariOrder = append(g.ariOrder, replicaIDs[i])
	}

	for slot := 0; slot < 3; slot++ {
		slotNets := [3]string{replicaNets[0][slot], replicaNets[1][slot], replicaNets[2][slot]}
		if err := g.voteInto(replicaIDs, slotNets, slot, node.Outputs[slot]); err != nil {
			return err
		}
	}

	g.removeBlock(node)
	return nil
}

// voteInto wires a 2-of-3 majority voter reading replicaNets[0..2] and
// driving origOutput: three pairwise AND gates (0&1, 0&2, 1&2) feeding
// one OR gate. replicaIDs supplies the naming prefix for the voter's
// own gate IDs: the i-th AND gate is replicaIDs[i]+"_and"+slot and
// the OR gate is replicaIDs[0]+"_or"+slot. slot distinguishes the
// Y/S/FCO voters of an Ari triplication (always 0 for a
// single-output Cfg or Tri block).
func (g *Graph) voteInto(replicaIDs, replicaNets [3]string, slot int, origOutput string) error {
	andOut := [3]string{}
	pairs := [3][2]int{{0, 1}, {0, 2}, {1, 2}}

	for i, pair := range pairs {
		andID := fmt.Sprintf("%s_and%d", replicaIDs[i], slot)
		andOut[i] = andID + "_o"
		if err := g.addGateInternal(andID, And, []string{replicaNets[pair[0]], replicaNets[pair[1]]}, andOut[i]); err != nil {
			return err
		}
	}

	orID := fmt.Sprintf("%s_or%d", replicaIDs[0], slot)
	if err := g.addGateInternal(orID, Or, []string{andOut[0], andOut[1], andOut[2]}, origOutput); err != nil {
		return err
	}

	return nil
}

// removeBlock deletes the original block's node entry and its kind-
// order slot. It leaves drivenBy alone: by the time it runs, each of
// the block's output nets has already been re-registered to its
// voter's OR gate by addGateInternal.
func (g *Graph) removeBlock(node *Node) {
	delete(g.nodes, node.ID)

	switch node.Kind {
	case Cfg:
		g.cfgOrder = removeID(g.cfgOrder, node.ID)
	case Ari:
		g.ariOrder = removeID(g.ariOrder, node.ID)
	case Tri:
		g.triOrder = removeID(g.triOrder, node.ID)
	}
}

func removeID(ids []string, target string) []string {
	out := ids[:0]
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}
