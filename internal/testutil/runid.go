package testutil

// FixedRunID generates the same run id every time.
//
// Unlike cli.FixedGenerator which returns ids in sequence and panics once
// they run out, this generator never runs dry. Useful when a test runs the
// same command several times and only cares that the id is stable.
//
// Thread-safety: FixedRunID is stateless and safe for concurrent use.
type FixedRunID struct {
	id string
}

// NewFixedRunID creates a fixed run id generator.
// If id is empty, Generate() returns "test-run-default".
func NewFixedRunID(id string) *FixedRunID {
	if id == "" {
		id = "test-run-default"
	}
	return &FixedRunID{id: id}
}

// Generate returns the fixed run id.
func (g *FixedRunID) Generate() string {
	return g.id
}
