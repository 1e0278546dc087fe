package netlist

import "fmt"

// Builder is the surface an external parser drives to construct a
// graph: declare boundary nets, instantiate blocks, set inputs,
// simulate, and triplicate. *Graph satisfies it directly.
type Builder interface {
	AddPrimeIO(id string, dir Direction) error
	AddCfg(id string, inputs []string, outputs []string, configHex string) error
	AddAri(id string, inputs []string, outputs []string, configHex string) error
	AddTri(id, data, ctrl, output string) error
	SetInput(id string, value int) error
	SetRandomInputs()
	Simulate(assignments []InputAssignment) []*Error
	Triplicate(blockID string) error
}

var _ Builder = (*Graph)(nil)

// AddPrimeIO declares a boundary net. VCC and GND are pre-declared and
// pinned when the graph is built, so redeclaring either is rejected
// as a duplicate.
func (g *Graph) AddPrimeIO(id string, dir Direction) error {
	if _, exists := g.nodes[id]; exists {
		g.recordError(&Error{Kind: DuplicateID, BlockID: id, Message: "id already exists"})
		return nil
	}

	node := &Node{ID: id, Kind: PrimeIO, Direction: dir, Outputs: []string{id}}
	g.nodes[id] = node
	g.nets[id] = Unset

	if dir == In {
		g.primaryInputs = append(g.primaryInputs, id)
	} else {
		g.primaryOutputs = append(g.primaryOutputs, id)
	}

	return nil
}

// AddCfg adds a configurable look-up block. outputs[0] is the driving
// net; any further entries are registered as fan-out sinks. Arity and
// config-length violations are local, non-fatal diagnostics; the call
// is a no-op on failure.
func (g *Graph) AddCfg(id string, inputs []string, outputs []string, configHex string) error {
	if _, exists := g.nodes[id]; exists {
		g.recordError(&Error{Kind: DuplicateID, BlockID: id, Message: "id already exists"})
		return nil
	}

	n := len(inputs)
	if n < 1 {
		g.recordError(&Error{Kind: InvalidArity, BlockID: id, Message: "cfg block requires at least one input"})
		return nil
	}
	if len(outputs) < 1 {
		g.recordError(&Error{Kind: InvalidArity, BlockID: id, Message: "cfg block requires an output identifier"})
		return nil
	}

	want := 1
	if n >= 3 {
		want = 1 << uint(n-2)
	}
	if len(configHex) != want {
		g.recordError(&Error{
			Kind: ConfigLengthMismatch, BlockID: id,
			Message: fmt.Sprintf("expected %d hex digit(s) for %d inputs, got %d", want, n, len(configHex)),
		})
		return nil
	}

	configRev, err := configRevFromHex(configHex)
	if err != nil {
		g.recordError(&Error{Kind: ConfigLengthMismatch, BlockID: id, Message: err.Error()})
		return nil
	}

	driver := outputs[0]
	g.nodes[id] = &Node{
		ID: id, Kind: Cfg,
		Inputs:    append([]string(nil), inputs...),
		Outputs:   []string{driver},
		ConfigRev: configRev,
	}
	g.drivenBy[driver] = id
	g.nets[driver] = Unset
	g.cfgOrder = append(g.cfgOrder, id)

	if len(outputs) > 1 {
		if _, exists := g.fanout[driver]; exists {
			g.recordError(&Error{Kind: DuplicateID, BlockID: id, NetID: driver, Message: "duplicate driving output in fan-out registry"})
		} else {
			g.fanout[driver] = append([]string(nil), outputs[1:]...)
		}
	}

	return nil
}

// AddAri adds a five-input, three-output arithmetic cell. inputs must
// be ordered A, B, C, D, FCI and outputs Y, S, FCO.
func (g *Graph) AddAri(id string, inputs []string, outputs []string, configHex string) error {
	if _, exists := g.nodes[id]; exists {
		g.recordError(&Error{Kind: DuplicateID, BlockID: id, Message: "id already exists"})
		return nil
	}
	if len(inputs) != 5 {
		g.recordError(&Error{Kind: InvalidArity, BlockID: id, Message: "ari block requires exactly 5 inputs (A,B,C,D,FCI)"})
		return nil
	}
	if len(outputs) != 3 {
		g.recordError(&Error{Kind: InvalidArity, BlockID: id, Message: "ari block requires exactly 3 outputs (Y,S,FCO)"})
		return nil
	}
	if len(configHex) != 5 {
		g.recordError(&Error{Kind: ConfigLengthMismatch, BlockID: id, Message: fmt.Sprintf("expected 5 hex digits, got %d", len(configHex))})
		return nil
	}

	configRev, err := configRevFromHex(configHex)
	if err != nil {
		g.recordError(&Error{Kind: ConfigLengthMismatch, BlockID: id, Message: err.Error()})
		return nil
	}

	g.nodes[id] = &Node{
		ID: id, Kind: Ari,
		Inputs:    append([]string(nil), inputs...),
		Outputs:   append([]string(nil), outputs...),
		ConfigRev: configRev,
	}
	for _, out := range outputs {
		g.drivenBy[out] = id
		g.nets[out] = Unset
	}
	g.ariOrder = append(g.ariOrder, id)

	return nil
}

// AddTri adds a tri-state buffer.
func (g *Graph) AddTri(id, data, ctrl, output string) error {
	if _, exists := g.nodes[id]; exists {
		g.recordError(&Error{Kind: DuplicateID, BlockID: id, Message: "id already exists"})
		return nil
	}

	g.nodes[id] = &Node{ID: id, Kind: Tri, Inputs: []string{data, ctrl}, Outputs: []string{output}}
	g.drivenBy[output] = id
	g.nets[output] = Unset
	g.triOrder = append(g.triOrder, id)

	return nil
}

// addGateInternal adds a primitive AND/OR gate. Gates are never
// constructed by the external parser; Triplicate is the only caller.
func (g *Graph) addGateInternal(id string, op GateOp, inputs []string, output string) error {
	if _, exists := g.nodes[id]; exists {
		return g.recordError(&Error{Kind: DuplicateID, BlockID: id, Message: "id already exists"})
	}
	if len(inputs) < 2 {
		return g.recordError(&Error{Kind: InvalidArity, BlockID: id, Message: "gate requires at least 2 inputs"})
	}

	g.nodes[id] = &Node{ID: id, Kind: Gate, Inputs: append([]string(nil), inputs...), Outputs: []string{output}, GateOp: op}
	g.drivenBy[output] = id
	g.nets[output] = Unset
	g.gateOrder = append(g.gateOrder, id)

	return nil
}

// SetInput writes a primary input's value, normalizing any bit >= 1
// to One and everything else to Zero. Targeting anything other than
// a non-constant primary input is a non-fatal SetOnNonInput diagnostic.
func (g *Graph) SetInput(id string, value int) error {
	node, ok := g.nodes[id]
	if !ok || node.Kind != PrimeIO || node.Direction != In {
		g.recordError(&Error{Kind: SetOnNonInput, BlockID: id, Message: "id is not a primary input"})
		return nil
	}
	if id == "VCC" || id == "GND" {
		g.recordError(&Error{Kind: SetOnNonInput, BlockID: id, Message: "VCC/GND are constant and cannot be set"})
		return nil
	}

	g.nets[id] = BitToValue(value)
	return nil
}

// SetRandomInputs writes a uniformly random bit to every primary input
// except VCC/GND, using the graph's seeded generator (see Seed).
func (g *Graph) SetRandomInputs() {
	for _, id := range g.primaryInputs {
		if id == "VCC" || id == "GND" {
			continue
		}
		g.nets[id] = BitToValue(g.rng.Intn(2))
	}
}
