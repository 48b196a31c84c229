package enumerate

import (
	"bytes"
	"strings"
	"testing"
)

func TestCalibrateReportsTagsAndOneSubsetWhenTagSizeUnreached(t *testing.T) {
	var buf bytes.Buffer

	// maxBitCnt=4 never reaches the 9-cell prefix that would advance
	// CurTagIx, so calibration should report a single tag-9 prefix (the
	// starting one) and a single all-encompassing subset.
	Calibrate(4, 1000, 10, nil, &buf)

	out := buf.String()
	if !strings.Contains(out, "Calibration: 1 tag-9 prefixes") {
		t.Errorf("got %q, want a report of 1 tag-9 prefix", out)
	}
	if !strings.Contains(out, "subset 0: tags [0, 1)") {
		t.Errorf("got %q, want a single subset spanning tags [0, 1)", out)
	}
}
