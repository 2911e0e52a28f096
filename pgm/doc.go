// Package pgm assembles a complete model instance (network + query) and
// renders it as a model-description file for the downstream inference engine.
//
// What:
//
//   - Generate(n, j, opts...): validate (n, j), build the dynamic network and
//     the expectation query, and return an immutable *Model.
//   - Model.WriteTo / Render: the text format consumed by the engine.
//   - EncodeYAML / DecodeYAML: a structured dump of the same model for
//     inspection and golden diffs.
//   - WriteFile: all-or-nothing file output (temp file + rename).
//
// Text layout:
//
//	/**
//	* dynamic bayesian network with T=<n>
//	* |V|=<variables> |E|=<edges>
//	*/
//	dynamic_<n> bayesian
//
//	connections:
//	A0 -> B0
//	...
//
//	nodes:
//	B0<A0> : [0, 1] {
//	    0.75, 0.25;
//	    0.25, 0.75;
//	}
//	...
//
//	queries:
//	E[1*B0 + C1 | A0] #Q1<0.05,0.95>
//
// Determinism:
//
//   - Rendering is a pure function of the model; identical (n, j, options)
//     yield byte-identical output. There are no timestamps.
//
// Errors:
//
//   - builder.ErrInvalidHorizon / builder.ErrInvalidComplexity from Generate,
//     before anything is built.
//   - ErrNilModel         Render/Encode called with a nil model
//   - ErrUnresolvedQuery  query names a variable the network lacks
//   - ErrUnknownFormat    ParseFormat got an unsupported name
//   - ErrWrite            output could not be written (wraps the OS error)
package pgm
