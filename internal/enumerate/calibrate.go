package enumerate

import (
	"fmt"
	"io"

	stillcount "github.com/418Coffee/stillcount"
)

// opCountRecorder is a Reporter that records nothing: calibration runs the
// full search purely for its op-count side effects, with every pattern
// found discarded.
type opCountRecorder struct{}

func (opCountRecorder) Report(int32, Classification, string, uint64) {}

// Calibrate runs one full, unrestricted search over [1, maxBitCnt],
// recording the cumulative operation count every time a new 9-cell prefix
// is reached, then prints a table partitioning those prefixes into
// roughly-equal-work subsets — the Go analogue of
// build_subset_division_table in the reference implementation.
//
// opsPerSubset is the target operation count per subset
// (MAX_OPS_IN_SUBSET_LOW_ESTIMATE in the original); wantedSubsets caps how
// many subsets the table may describe.
func Calibrate(maxBitCnt int32, opsPerSubset int64, wantedSubsets int, rda *stillcount.RandomDataArray, out io.Writer) {
	st := NewSearchState(1, maxBitCnt, 0, 0, rda)

	opAtTag := []int64{0}
	lastTag := int64(0)

	st.onTagReached = func(tagIx int64, opCnt int64) {
		for int64(len(opAtTag)) <= tagIx {
			opAtTag = append(opAtTag, opCnt)
		}
		lastTag = tagIx
	}

	Run(st, opCountRecorder{})

	fmt.Fprintf(out, "Calibration: %d tag-9 prefixes, %d total ops\n", lastTag+1, st.OpCnt)

	subsetStart := int64(0)
	subsetOpsAtStart := int64(0)
	subsetIx := 0
	for tagIx := int64(1); tagIx <= lastTag && subsetIx < wantedSubsets-1; tagIx++ {
		if opAtTag[tagIx]-subsetOpsAtStart >= opsPerSubset {
			fmt.Fprintf(out, "subset %d: tags [%d, %d)\n", subsetIx, subsetStart, tagIx)
			subsetIx++
			subsetStart = tagIx
			subsetOpsAtStart = opAtTag[tagIx]
		}
	}
	fmt.Fprintf(out, "subset %d: tags [%d, %d)\n", subsetIx, subsetStart, lastTag+1)
}
