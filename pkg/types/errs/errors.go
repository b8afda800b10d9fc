package errs

import "errors"

// Pipeline failure kinds.
var (
	ErrValidation  = errors.New("validation error")
	ErrIO          = errors.New("io error")
	ErrProcessing  = errors.New("processing error")
	ErrPublication = errors.New("publication error")
)

var (
	//nolint:staticcheck // message is part of the public contract
	ErrInvalidImage         = errors.New("Only PNG/JPG files are allowed! 20MB max.")
	ErrUnknownStorageDriver = errors.New("unknown storage driver")
)
