package errs

import "errors"

var InvalidCredentials = errors.New("invalid credentials")

var (
	InternalError      = errors.New("internal error")
	GeneratingToken    = errors.New("error generating token")
	EmailRequired      = errors.New("email is required")
	NotAllowedDomain   = errors.New("email domain is not allowed")
	FailedToCreateUser = errors.New("failed to create user")
)
