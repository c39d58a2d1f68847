// Package solo contains single-value, synchronous primitives that operate
// on wrop.Result[T, W]. These functions form the core building blocks for
// warn-aware pipelines.
//
// Highlights:
// - Succeed/Warn/Fail: construct Result[T, W]
// - MapVal/MapWarn/MapErr: transform exactly one payload
// - Map/AndThen: work on the continuation payload, short-circuit on failure
// - OrElse: recovery hook, invoked on failure only
// - Try: call a function (Out, error) and convert error to failure
// - Validate/AndValidate/Advise/ValidateAll: hard and soft validation
// - FlattenInner/FlattenOuter: nested-result collapse with explicit
//   warning precedence
// - TransposeLossy: pointer-valued result to optional result (documented
//   lossy on a warned nil)
// - Tee/DoubleTee: side-effect helpers
// - Finally/DiscardWarnings: reduce to a concrete value or a plain pair
//
// Type-changing operations live here rather than as methods because Go
// methods cannot introduce type parameters.
package solo
