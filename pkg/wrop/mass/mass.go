package mass

import (
	"iter"
	"slices"

	"github.com/ib-77/wrop/pkg/wrop"
)

// Collect folds a slice of results into one result over the whole batch.
// Values accumulate in order; warnings accumulate in encounter order; the
// first failure wins and ends the fold. An empty input is a success over
// empty containers.
func Collect[T, W any](items []wrop.Result[T, W]) wrop.Result[[]T, []W] {
	return CollectSeq(slices.Values(items))
}

// CollectSeq is Collect over an iterator. Items after the first failure are
// not pulled from the sequence at all.
func CollectSeq[T, W any](seq iter.Seq[wrop.Result[T, W]]) wrop.Result[[]T, []W] {
	out := make([]T, 0)
	warns := make([]W, 0)

	for item := range seq {
		m, err, done := item.Branch()
		if done {
			return wrop.FailAs[[]T, []W](item, err)
		}

		out = append(out, m.Value())
		if m.HasWarning() {
			warns = append(warns, m.Warning())
		}
	}

	if len(warns) > 0 {
		return wrop.Warn[[]T](out, warns)
	}
	return wrop.Success[[]T, []W](out)
}

// CollectTry folds a sequence of plain (value, error) pairs. Binary inputs
// never warn, so the outcome is a success over the values or the first
// failure.
func CollectTry[T, W any](seq iter.Seq2[T, error]) wrop.Result[[]T, []W] {
	out := make([]T, 0)

	for v, err := range seq {
		if err != nil {
			return wrop.Fail[[]T, []W](err)
		}
		out = append(out, v)
	}

	return wrop.Success[[]T, []W](out)
}
