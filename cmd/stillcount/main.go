// Command stillcount enumerates still lifes (and pseudo still lifes) of
// Conway's Game of Life by on-cell count, via exhaustive backtracking
// search over a fixed grid.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	stillcount "github.com/418Coffee/stillcount"
	"github.com/418Coffee/stillcount/internal/cpuinfo"
	"github.com/418Coffee/stillcount/internal/enumerate"
)

const (
	wantedSearchSubsets       = 100
	maxOpsInSubsetLowEstimate = 12000000
)

var (
	verbose    bool
	calibrate  bool
	randomSeed int64
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s [options] <w|c> <min on cells> <max on cells> [<selected subset>]\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "  w writes accepted patterns to files, c only counts them\n")
		flag.PrintDefaults()
	}
	flag.BoolVar(&verbose, "verbose", false, "log the CPU feature report and each accepted pattern to stderr")
	flag.BoolVar(&calibrate, "calibrate", false, "print a subset division table instead of searching")
	flag.Int64Var(&randomSeed, "seed", time.Now().Unix(), "seed for the hash-salt table")
	flag.Parse()
}

func printUsageAndExit(err error) {
	if err != nil {
		fmt.Fprintln(flag.CommandLine.Output(), err)
	}
	flag.Usage()
	os.Exit(1)
}

func main() {
	cpuReport := cpuinfo.Detect()
	if verbose {
		fmt.Fprintln(os.Stderr, cpuReport.String())
	}

	prng := stillcount.NewPRNG(uint64(randomSeed))
	rda := stillcount.NewRandomDataArray(prng, (enumerate.GridWidth/64)*enumerate.GridHeight)

	if calibrate {
		enumerate.Calibrate(enumerate.MaxBitCnt, maxOpsInSubsetLowEstimate, wantedSearchSubsets, rda, os.Stdout)
		return
	}

	args := flag.Args()
	if len(args) != 3 && len(args) != 4 {
		printUsageAndExit(nil)
	}

	writeFiles := false
	switch args[0] {
	case "w":
		writeFiles = true
	case "c":
	default:
		printUsageAndExit(fmt.Errorf("<command> must be \"w\" or \"c\", got %q", args[0]))
	}

	minBitCnt, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil {
		printUsageAndExit(err)
	}
	maxBitCnt, err := strconv.ParseUint(args[2], 10, 32)
	if err != nil {
		printUsageAndExit(err)
	}
	if maxBitCnt > enumerate.MaxBitCnt {
		printUsageAndExit(fmt.Errorf("<max on cells> may not be higher than %d", enumerate.MaxBitCnt))
	}
	if minBitCnt > maxBitCnt {
		printUsageAndExit(fmt.Errorf("<min on cells> may not be higher than <max on cells>"))
	}

	selectedSubset := -1
	if len(args) == 4 {
		subset, err := strconv.ParseUint(args[3], 10, 32)
		if err != nil {
			printUsageAndExit(err)
		}
		selectedSubset = int(subset)
		if selectedSubset >= enumerate.SelectedSearchSubsets {
			printUsageAndExit(fmt.Errorf("<selected subset> must be between 0 and %d", enumerate.SelectedSearchSubsets-1))
		}
		if minBitCnt < enumerate.TagSize+10 {
			printUsageAndExit(fmt.Errorf("searching for a subset is not supported if <min on cells> is lower than %d", enumerate.TagSize+10))
		}
	}

	var wantedTagOn, wantedTagOff int64
	if selectedSubset >= 0 {
		// Equal-sized split over the tag-9 prefix count, not an
		// op-count-weighted one: without a prior -calibrate run we don't
		// know how search work actually distributes across prefixes, so
		// this trades perfectly even wall-clock time for a table that
		// needs no precomputation. Run -calibrate and pick subset bounds
		// from its table instead when even timing across subsets matters.
		span := (enumerate.TagCountAtTagSize9 + enumerate.SelectedSearchSubsets - 1) / enumerate.SelectedSearchSubsets
		wantedTagOn = int64(selectedSubset) * int64(span)
		wantedTagOff = wantedTagOn + int64(span)
	}

	st := enumerate.NewSearchState(int32(minBitCnt), int32(maxBitCnt), wantedTagOn, wantedTagOff, rda)

	rep := newReporter(writeFiles, int32(minBitCnt), int32(maxBitCnt), selectedSubset)
	defer rep.close()

	timer := stillcount.NewPerfTimer()
	timer.Start("search")
	enumerate.Run(st, rep)
	timer.Stop("search")
	timer.WasOps("search", st.OpCnt)
	fmt.Fprint(os.Stderr, timer.Report([]string{"search"}))

	for bit := int32(minBitCnt); bit <= int32(maxBitCnt); bit++ {
		fmt.Printf("%2d bits: %d strict, %d pseudo\n", bit, st.StrictCount[bit], st.PseudoCount[bit])
	}
}

// reporter writes accepted patterns to per-bit-count strict/pseudo output
// files (when writeFiles is set), and always tracks running totals.
type reporter struct {
	writeFiles bool
	minBitCnt  int32
	maxBitCnt  int32
	subset     int

	strictFiles  [enumerate.MaxBitCnt + 1]*bufio.Writer
	pseudoFiles  [enumerate.MaxBitCnt + 1]*bufio.Writer
	complexFiles [enumerate.MaxBitCnt + 1]*bufio.Writer
	strictRaw    [enumerate.MaxBitCnt + 1]*os.File
	pseudoRaw    [enumerate.MaxBitCnt + 1]*os.File
	complexRaw   [enumerate.MaxBitCnt + 1]*os.File
}

func newReporter(writeFiles bool, minBitCnt, maxBitCnt int32, subset int) *reporter {
	r := &reporter{writeFiles: writeFiles, minBitCnt: minBitCnt, maxBitCnt: maxBitCnt, subset: subset}
	if !writeFiles {
		return r
	}

	for bit := minBitCnt; bit <= maxBitCnt; bit++ {
		r.strictRaw[bit], r.strictFiles[bit] = openBucket(bit, "strict", subset)
		r.pseudoRaw[bit], r.pseudoFiles[bit] = openBucket(bit, "pseudo", subset)
		r.complexRaw[bit], r.complexFiles[bit] = openBucket(bit, "complex_pseudo", subset)
	}
	return r
}

func openBucket(bit int32, kind string, subset int) (*os.File, *bufio.Writer) {
	var name string
	if subset >= 0 {
		name = fmt.Sprintf("%02d_bits_%s_subset_%04d_of_%04d.txt", bit, kind, subset, enumerate.SelectedSearchSubsets)
	} else {
		name = fmt.Sprintf("%02d_bits_%s.txt", bit, kind)
	}

	f, err := os.Create(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stillcount: %v\n", err)
		os.Exit(1)
	}
	return f, bufio.NewWriterSize(f, 8*1024*1024)
}

func (r *reporter) Report(onCnt int32, kind enumerate.Classification, rle string, canonicalHash uint64) {
	if verbose {
		fmt.Fprintf(os.Stderr, "accepted %d-cell %v (canonical hash %016x)\n", onCnt, kind, canonicalHash)
	}
	if !r.writeFiles {
		return
	}

	w := r.strictFiles[onCnt]
	switch kind {
	case enumerate.PseudoStillLife:
		w = r.pseudoFiles[onCnt]
	case enumerate.ComplexPseudoStillLife:
		w = r.complexFiles[onCnt]
	}
	fmt.Fprintln(w, rle)
}

func (r *reporter) close() {
	for bit := r.minBitCnt; bit <= r.maxBitCnt; bit++ {
		if r.strictFiles[bit] != nil {
			r.strictFiles[bit].Flush()
			r.strictRaw[bit].Close()
		}
		if r.pseudoFiles[bit] != nil {
			r.pseudoFiles[bit].Flush()
			r.pseudoRaw[bit].Close()
		}
		if r.complexFiles[bit] != nil {
			r.complexFiles[bit].Flush()
			r.complexRaw[bit].Close()
		}
	}
}
