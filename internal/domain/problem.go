package domain

import "github.com/google/uuid"

// Difficulty represents the difficulty rating of a problem
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// CompareMode represents how sequence results are graded
type CompareMode string

const (
	// CompareOrdered requires element-wise equality in order.
	CompareOrdered CompareMode = "ordered"
	// CompareUnordered grades sequences by multiset equality.
	CompareUnordered CompareMode = "unordered"
)

// Problem represents an algorithmic practice problem loaded from the catalog
type Problem struct {
	ID         uuid.UUID  `json:"id"`
	Slug       string     `json:"slug"`
	Title      string     `json:"title"`
	Difficulty Difficulty `json:"difficulty"`
	Statement  string     `json:"statement"`
	// Signature is the expected entry point declaration, e.g.
	// "def twoSum(nums, target):".
	Signature string `json:"signature"`
	// CompareMode defaults to CompareOrdered when empty.
	CompareMode CompareMode `json:"compareMode,omitempty"`
	// FloatTolerance overrides the default relative tolerance for float
	// comparison. Zero means the engine default.
	FloatTolerance float64    `json:"floatTolerance,omitempty"`
	TestCases      []TestCase `json:"testCases"`
}

// ExampleCases returns the public (non-hidden) test cases used for fast
// feedback runs.
func (p *Problem) ExampleCases() []TestCase {
	examples := make([]TestCase, 0, len(p.TestCases))
	for _, tc := range p.TestCases {
		if !tc.Hidden {
			examples = append(examples, tc)
		}
	}
	return examples
}

type ProblemTable struct {
	ID         string
	Slug       string
	Title      string
	Difficulty string
	Statement  string
	Signature  string
	Compare    string
	Tolerance  string
	TestCases  string
}

func GetProblemTable() ProblemTable {
	return ProblemTable{
		ID:         "id",
		Slug:       "slug",
		Title:      "title",
		Difficulty: "difficulty",
		Statement:  "statement",
		Signature:  "signature",
		Compare:    "compare_mode",
		Tolerance:  "float_tolerance",
		TestCases:  "test_cases",
	}
}

func (ProblemTable) TableName() string {
	return "problems"
}
