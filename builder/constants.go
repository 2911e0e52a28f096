// Package builder defines shared constants used by the network and query
// builders, ensuring consistent defaults and validation.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuildNetwork is the canonical name for the BuildNetwork orchestrator.
	MethodBuildNetwork = "BuildNetwork"
	// MethodDynamic is the canonical name for the Dynamic constructor.
	MethodDynamic = "Dynamic"
	// MethodQuery is the canonical name for the BuildQuery function.
	MethodQuery = "Query"
)

//-----------------------------------------------------------------------------
// Parameter Minima
//-----------------------------------------------------------------------------

// MinHorizon is the smallest horizon; n = 0 yields only the seed variables.
const MinHorizon = 0

// MinComplexity is the smallest query complexity: one weighted B term plus
// the mandatory final C term.
const MinComplexity = 2

//-----------------------------------------------------------------------------
// Query Constants
//-----------------------------------------------------------------------------

// WeightStep and WeightOffset define the k-th query weight as WeightStep*k + WeightOffset.
const (
	WeightStep   = 10
	WeightOffset = 1
)

// QueryLower and QueryUpper are the fixed bounds of the #Q1<lower,upper> annotation.
const (
	QueryLower = 0.05
	QueryUpper = 0.95
)

//-----------------------------------------------------------------------------
// Domain Defaults
//-----------------------------------------------------------------------------

// DefaultNumericLow and DefaultNumericHigh bound chain C's numeric range.
const (
	DefaultNumericLow  = 300
	DefaultNumericHigh = 500
)
