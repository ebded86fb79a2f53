package domain

// TestCase represents one input/expected pair for a problem. Hidden cases
// are excluded from example runs. Immutable once loaded.
type TestCase struct {
	Input    map[string]interface{} `json:"input"`
	Expected interface{}            `json:"expected"`
	Label    string                 `json:"label,omitempty"`
	Hidden   bool                   `json:"hidden,omitempty"`
}
