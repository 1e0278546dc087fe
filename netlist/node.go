package netlist

// Node is the store's single tagged record, covering all five node
// kinds. Fields irrelevant to a given Kind are left zero; dispatch
// always switches on Kind rather than probing which fields are
// populated.
type Node struct {
	ID     string
	Kind   Kind
	Inputs []string
	// Outputs holds the node's own driven nets: PrimeIO -> [ownNet];
	// Cfg -> [driverNet] (additional fan-out sinks live in
	// Graph.fanout, not here); Ari -> [Y, S, FCO]; Tri -> [net];
	// Gate -> [net].
	Outputs []string

	Direction Direction // meaningful for PrimeIO only
	ConfigRev string    // meaningful for Cfg, Ari: reversed bit string
	GateOp    GateOp    // meaningful for Gate only
}
