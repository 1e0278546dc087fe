// Package tracedb persists the outcome of each netlist.Graph.Simulate
// call to a SQLite-backed history, so a run can be replayed or
// compared against a later one without re-evaluating the graph.
package tracedb

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/sarchlab/netlistgraph/netlist"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	seq             INTEGER PRIMARY KEY,
	graph_name      TEXT NOT NULL,
	primary_inputs  TEXT NOT NULL,
	primary_outputs TEXT NOT NULL
);
`

// Store records Simulate run history in a SQLite database. It
// implements netlist.Recorder, so a Graph can be built with
// WithRecorder(store) and every Simulate call is persisted
// automatically.
type Store struct {
	db     *sql.DB
	nextID func() int
}

var _ netlist.Recorder = (*Store)(nil)

// Open opens (creating if necessary) a SQLite database at path and
// ensures the runs table exists. Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening tracedb at %s: %w", path, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating runs table: %w", err)
	}

	var maxSeq sql.NullInt64
	if err := db.QueryRow("SELECT MAX(seq) FROM runs").Scan(&maxSeq); err != nil {
		db.Close()
		return nil, fmt.Errorf("reading run sequence high-water mark: %w", err)
	}

	return &Store{db: db, nextID: NewIncreasingSeq(int(maxSeq.Int64))}, nil
}

// RecordRun implements netlist.Recorder: it inserts one row capturing
// the full primary-input and primary-output value maps as JSON.
func (s *Store) RecordRun(graphName string, primaryInputs, primaryOutputs map[string]netlist.Value) error {
	inputsJSON, err := json.Marshal(encodeValues(primaryInputs))
	if err != nil {
		return fmt.Errorf("encoding primary inputs: %w", err)
	}
	outputsJSON, err := json.Marshal(encodeValues(primaryOutputs))
	if err != nil {
		return fmt.Errorf("encoding primary outputs: %w", err)
	}

	_, err = s.db.Exec(
		"INSERT INTO runs (seq, graph_name, primary_inputs, primary_outputs) VALUES (?, ?, ?, ?)",
		s.nextID(), graphName, string(inputsJSON), string(outputsJSON),
	)
	if err != nil {
		return fmt.Errorf("inserting run record: %w", err)
	}

	return nil
}

// Run is one recorded Simulate call, as returned by Runs.
type Run struct {
	Seq            int
	GraphName      string
	PrimaryInputs  map[string]string
	PrimaryOutputs map[string]string
}

// Runs returns every recorded run for graphName, oldest first.
func (s *Store) Runs(graphName string) ([]Run, error) {
	rows, err := s.db.Query(
		"SELECT seq, graph_name, primary_inputs, primary_outputs FROM runs WHERE graph_name = ? ORDER BY seq ASC",
		graphName,
	)
	if err != nil {
		return nil, fmt.Errorf("querying runs for %s: %w", graphName, err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var inputsJSON, outputsJSON string
		if err := rows.Scan(&r.Seq, &r.GraphName, &inputsJSON, &outputsJSON); err != nil {
			return nil, fmt.Errorf("scanning run row: %w", err)
		}
		if err := json.Unmarshal([]byte(inputsJSON), &r.PrimaryInputs); err != nil {
			return nil, fmt.Errorf("decoding primary inputs: %w", err)
		}
		if err := json.Unmarshal([]byte(outputsJSON), &r.PrimaryOutputs); err != nil {
			return nil, fmt.Errorf("decoding primary outputs: %w", err)
		}
		out = append(out, r)
	}

	return out, rows.Err()
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func encodeValues(vals map[string]netlist.Value) map[string]string {
	out := make(map[string]string, len(vals))
	for k, v := range vals {
		out[k] = v.String()
	}
	return out
}
