// Package early holds a minimal early-return value for when a call may
// produce a final result up front or want to continue execution. Unlike
// wrop.Result it carries no diagnostics and does not aggregate; it only
// short-circuits.
package early
