package argmap

import "errors"

// Sentinel errors returned by the store and the merge engine.
// All are wrapped with context (the offending key, path, or token) at
// the point of detection; match with errors.Is.
var (
	// ErrAlreadyInitialized is returned when Merge is called on a store
	// that already holds values. Merging is a one-shot operation.
	ErrAlreadyInitialized = errors.New("store already initialized")

	// ErrDuplicateKey is returned by SetOnce when the key is already set.
	ErrDuplicateKey = errors.New("key already set in write-once store")

	// ErrKeyNotFound is returned by Get for an absent key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrUnsupportedOp is returned by Delete; removal would break the
	// reproducibility guarantee of the write-once store.
	ErrUnsupportedOp = errors.New("operation not supported by write-once store")

	// ErrOddUnknownArgs is returned when residual CLI tokens do not form
	// complete --key value pairs.
	ErrOddUnknownArgs = errors.New("unknown arguments require an even number of tokens")

	// ErrMalformedKey is returned when an unknown argument key does not
	// start with --.
	ErrMalformedKey = errors.New("unknown argument key must start with --")

	// ErrDuplicateUnknownArg is returned when the same unknown key
	// appears twice on the command line.
	ErrDuplicateUnknownArg = errors.New("duplicate unknown argument")

	// ErrAmbiguousSource is returned when more than one config file or
	// more than one parser is supplied to the builder.
	ErrAmbiguousSource = errors.New("conflicting configuration sources")

	// ErrFileAccess is returned when the resolved configuration path
	// cannot be read or written.
	ErrFileAccess = errors.New("config file access failed")
)
