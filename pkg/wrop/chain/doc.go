// Package chain provides a fluent wrapper over wrop.Result for building
// warn-aware pipelines step by step.
//
// Common usage:
// - Start/FromValue: open a chain
// - Then/ThenTry/Map: compose dependent steps (package-level because they
//   change the value type)
// - Validate/Advise: hard and soft checks on the current value
// - Ensure: side effect on success
// - Finally: collapse to a concrete value
package chain
