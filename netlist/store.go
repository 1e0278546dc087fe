package netlist

import (
	"log/slog"
	"math/rand"
	"time"
)

// Recorder persists a completed Simulate call elsewhere (the tracedb
// package implements this against SQLite). It is defined here, rather
// than imported, so netlist carries no dependency on any particular
// storage backend.
type Recorder interface {
	RecordRun(graphName string, primaryInputs, primaryOutputs map[string]Value) error
}

// Graph owns every node in the circuit (the node store), the current
// value of every net (the net table), and the fan-out registry that
// broadcasts a Cfg driver's value to additional primary-output sinks.
// It is mutated only by the builder methods, by Simulate (writing
// output values), and by Triplicate (structural rewrite).
type Graph struct {
	name string

	nodes map[string]*Node
	nets  map[string]Value

	// drivenBy maps a net name to the ID of the node that drives it,
	// covering every Cfg/Ari/Tri/Gate output net. Fan-out sinks and
	// primary-input nets are absent from this map.
	drivenBy map[string]string

	// fanout maps a Cfg driver net to the additional primary-output
	// nets its value is broadcast to.
	fanout map[string][]string

	primaryInputs  []string
	primaryOutputs []string

	cfgOrder  []string
	ariOrder  []string
	triOrder  []string
	gateOrder []string

	visiting map[string]bool

	diagnostics []*Error

	logger   *slog.Logger
	rng      *rand.Rand
	seed     int64
	recorder Recorder
}

// LevelEval is the slog level the evaluator uses to trace block
// processing order — a single step above LevelInfo, reserved for high-volume diagnostic output
// that should stay out of a normal Info-level log.
const LevelEval = slog.LevelInfo + 1

// GraphBuilder configures the ambient concerns around a Graph — its
// logger, its random seed, and an optional run recorder — following
// the fluent With... builder idiom used elsewhere in this stack for
// constructing a component. None of these knobs affect combinational
// semantics; the graph's logic is identical regardless of how it is
// built.
type GraphBuilder struct {
	name     string
	logger   *slog.Logger
	seed     int64
	hasSeed  bool
	recorder Recorder
}

// NewGraphBuilder returns a builder seeded with sensible defaults: a
// discard-nothing slog.Default logger and a seed derived from the
// current time.
func NewGraphBuilder(name string) GraphBuilder {
	return GraphBuilder{name: name, logger: slog.Default()}
}

// WithLogger sets the structured logger used for evaluator tracing and
// recorded diagnostics.
func (b GraphBuilder) WithLogger(logger *slog.Logger) GraphBuilder {
	b.logger = logger
	return b
}

// WithSeed fixes the seed used by SetRandomInputs, for reproducible
// test runs.
func (b GraphBuilder) WithSeed(seed int64) GraphBuilder {
	b.seed = seed
	b.hasSeed = true
	return b
}

// WithRecorder attaches a Recorder that Simulate notifies after each
// run completes.
func (b GraphBuilder) WithRecorder(r Recorder) GraphBuilder {
	b.recorder = r
	return b
}

// Build constructs an empty Graph ready for the builder API calls,
// with VCC and GND pre-declared and pinned.
func (b GraphBuilder) Build() *Graph {
	seed := b.seed
	if !b.hasSeed {
		seed = time.Now().UnixNano()
	}

	logger := b.logger
	if logger == nil {
		logger = slog.Default()
	}

	g := &Graph{
		name:     b.name,
		nodes:    make(map[string]*Node),
		nets:     make(map[string]Value),
		drivenBy: make(map[string]string),
		fanout:   make(map[string][]string),
		visiting: make(map[string]bool),
		logger:   logger,
		rng:      rand.New(rand.NewSource(seed)),
		seed:     seed,
		recorder: b.recorder,
	}

	g.addPinnedIO("VCC", One)
	g.addPinnedIO("GND", Zero)

	return g
}

func (g *Graph) addPinnedIO(id string, v Value) {
	g.nodes[id] = &Node{ID: id, Kind: PrimeIO, Direction: In, Outputs: []string{id}}
	g.nets[id] = v
	g.primaryInputs = append(g.primaryInputs, id)
}

// Name returns the graph's display name, used by the Recorder.
func (g *Graph) Name() string { return g.name }

// Seed returns the seed backing SetRandomInputs, for reproducibility.
func (g *Graph) Seed() int64 { return g.seed }
