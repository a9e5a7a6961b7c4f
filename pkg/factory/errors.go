package factory

import "errors"

var (
	// ErrFactoryNotFound indicates no factory is registered under a name.
	ErrFactoryNotFound = errors.New("factory: not found")

	// ErrFactoryType indicates a registered factory builds a different model
	// type. Lookup and Extend return it, so a factory can only inherit from
	// a parent of its own model type.
	ErrFactoryType = errors.New("factory: wrong model type")

	// ErrNilConstructor indicates New was called without a constructor.
	ErrNilConstructor = errors.New("factory: nil constructor")
)
