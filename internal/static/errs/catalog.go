package errs

import "errors"

var (
	ProblemNotFound = errors.New("problem not found")
	DraftNotFound   = errors.New("draft not found")
)
