package filter

import (
	"github.com/s0up4200/enka/enka"
)

// Filter defines the basic interface for build filters
type Filter interface {
	// Evaluate checks if a build matches the filter criteria
	Evaluate(build enka.Build) bool
}

// CompiledFilter represents a pre-compiled filter ready for evaluation
type CompiledFilter interface {
	Filter

	// Match is Evaluate with the run-time error kept
	Match(build enka.Build) (bool, error)

	// Expression returns the filter expression as given
	Expression() string
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	// Compile parses and compiles a filter expression
	Compile(expression string) (CompiledFilter, error)
}

// CachingCompiler provides caching for compiled filters
type CachingCompiler interface {
	Compiler

	// Clear removes all cached filters
	Clear()

	// Size returns the number of cached filters
	Size() int
}
