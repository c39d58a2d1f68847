// Package mass folds many independent results into a single outcome over
// the whole batch: every value collects in order, every warning collects in
// encounter order, and the first failure stops consumption and becomes the
// outcome. It is the warn-aware version of the usual "collect fallible
// results, short-circuit on first error" idiom.
package mass
