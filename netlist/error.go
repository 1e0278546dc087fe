package netlist

import "fmt"

// ErrorKind enumerates the error taxonomy the builder and evaluator
// report. Every error the graph raises carries one of these, tagging
// findings with a type instead of returning bare strings.
type ErrorKind int

const (
	DuplicateID ErrorKind = iota
	InvalidArity
	ConfigLengthMismatch
	UnknownNet
	MissingPrimaryInput
	CombinationalCycle
	SetOnNonInput
)

func (k ErrorKind) String() string {
	switch k {
	case DuplicateID:
		return "DuplicateID"
	case InvalidArity:
		return "InvalidArity"
	case ConfigLengthMismatch:
		return "ConfigLengthMismatch"
	case UnknownNet:
		return "UnknownNet"
	case MissingPrimaryInput:
		return "MissingPrimaryInput"
	case CombinationalCycle:
		return "CombinationalCycle"
	case SetOnNonInput:
		return "SetOnNonInput"
	default:
		return "Unknown"
	}
}

// Error is a structured diagnostic raised by the builder API or the
// evaluator. BlockID and NetID are filled in as available; either may
// be empty depending on the kind.
type Error struct {
	Kind    ErrorKind
	BlockID string
	NetID   string
	Message string
}

func (e *Error) Error() string {
	switch {
	case e.BlockID != "" && e.NetID != "":
		return fmt.Sprintf("%s: %s (block=%q net=%q)", e.Kind, e.Message, e.BlockID, e.NetID)
	case e.BlockID != "":
		return fmt.Sprintf("%s: %s (block=%q)", e.Kind, e.Message, e.BlockID)
	case e.NetID != "":
		return fmt.Sprintf("%s: %s (net=%q)", e.Kind, e.Message, e.NetID)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
}

// recordError appends err to the graph's diagnostic history and
// returns it, so builder methods can both log and return in one line.
func (g *Graph) recordError(err *Error) *Error {
	g.diagnostics = append(g.diagnostics, err)
	g.logger.Warn("netlist diagnostic",
		"kind", err.Kind.String(),
		"block", err.BlockID,
		"net", err.NetID,
		"message", err.Message)
	return err
}

// Diagnostics returns every diagnostic raised over the lifetime of the
// graph, builder and evaluator alike, oldest first.
func (g *Graph) Diagnostics() []*Error {
	return g.diagnostics
}
