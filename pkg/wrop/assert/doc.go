// Package assert wraps runtime checks into must-consume values. A failed
// assertion records its call site and refuses to disappear quietly: it has
// to be propagated with Check, turned into a panic with ToPanic, or
// explicitly thrown away with Defuse. One that is dropped unconsumed
// escalates to a panic from its cleanup guard.
//
// Typical use:
//
//	func frob(a, b int) error {
//		if err := assert.Eq(a, b).Msg("inputs diverged").Check(); err != nil {
//			return err
//		}
//		return nil
//	}
package assert
