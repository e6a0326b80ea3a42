package testutil

// FixedIDGenerator returns the same run ID every time.
//
// It makes CLI JSON output byte-stable in tests. If id is empty, Generate
// returns "test-run-default".
type FixedIDGenerator struct {
	id string
}

// NewFixedIDGenerator creates a fixed run ID generator.
func NewFixedIDGenerator(id string) *FixedIDGenerator {
	if id == "" {
		id = "test-run-default"
	}
	return &FixedIDGenerator{id: id}
}

// Generate returns the fixed ID.
func (g *FixedIDGenerator) Generate() string {
	return g.id
}
