// Command pp concatenates a numbered run of stillcount output files into a
// second numbered run, optionally splitting the output into fixed-size
// chunks — used to merge per-subset stillcount output back into a single
// series of files, or to re-chunk an existing series to a new size.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s <in template> <first number> <last number> <out template> [<lines per out file>]\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "where a template could be \"28_bits_strict_subset_####_of_1024.txt\"\n")
	}
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
	args := flag.Args()
	if len(args) != 4 && len(args) != 5 {
		printUsageAndExit(nil)
	}

	inEntry, inSize, ok := verifyTemplate(args[0], true)
	if !ok {
		printUsageAndExit(fmt.Errorf("%q is not a valid template (need a single run of '#')", args[0]))
	}

	inFirst, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil {
		printUsageAndExit(err)
	}
	inLast, err := strconv.ParseUint(args[2], 10, 32)
	if err != nil {
		printUsageAndExit(err)
	}
	if digitsIn(uint32(inLast)) > inSize || inFirst > inLast {
		printUsageAndExit(fmt.Errorf("<last number> must fit the in template's run of '#' and be >= <first number>"))
	}

	outEntry, outSize, ok := verifyTemplate(args[3], false)
	if !ok {
		printUsageAndExit(fmt.Errorf("%q is not a valid template", args[3]))
	}

	linesPerOutFile := int64(-1)
	if len(args) == 5 {
		n, err := strconv.ParseUint(args[4], 10, 64)
		if err != nil || n == 0 {
			printUsageAndExit(fmt.Errorf("<lines per out file> must be a positive integer"))
		}
		linesPerOutFile = int64(n)
	}

	if (outEntry >= 0) != (linesPerOutFile >= 0) {
		printUsageAndExit(fmt.Errorf("<out template> must have a '#' run if and only if <lines per out file> is given"))
	}

	if err := postProcess(args[0], inEntry, inSize, inFirst, inLast, args[3], outEntry, outSize, linesPerOutFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// verifyTemplate finds template's single run of consecutive '#' characters
// (its numbered-entry placeholder) and returns its starting index and
// length. A template with no '#' run is valid unless mustBeTemplate is set
// (the input template always needs one; the output template only needs one
// when its file count exceeds one). More than one separate run is always
// rejected.
func verifyTemplate(template string, mustBeTemplate bool) (entry, size int, ok bool) {
	entry, size = -1, 0

	hashOn, hashOff := -1, -1
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '#' && hashOn >= 0 && hashOff < 0 {
			hashOff = i
		}
		if c == '#' {
			if hashOff >= 0 {
				return -1, 0, false
			}
			if hashOn < 0 {
				hashOn = i
			}
		}
	}

	if hashOn < 0 {
		if mustBeTemplate {
			return -1, 0, false
		}
		return -1, 0, true
	}
	if hashOff < 0 {
		hashOff = len(template)
	}
	return hashOn, hashOff - hashOn, true
}

// makeFilename substitutes fileNumber, zero-padded to size digits, into
// template's '#' run. Returns ok=false if fileNumber doesn't fit in size
// digits. If entry < 0 (a non-templated name), template is returned
// unchanged with ok=true.
func makeFilename(template string, fileNumber int, entry, size int) (string, bool) {
	if entry < 0 {
		return template, true
	}

	numStr := strconv.Itoa(fileNumber)
	if len(numStr) > size {
		return "", false
	}

	padded := strings.Repeat("0", size-len(numStr)) + numStr
	return template[:entry] + padded + template[entry+size:], true
}

func digitsIn(n uint32) int {
	return len(strconv.FormatUint(uint64(n), 10))
}

// postProcess reads in_first..in_last's numbered input files in sequence,
// line by line, and copies every line to a running output file, rotating
// to the next numbered output file every linesPerOutFile lines (or writing
// everything to the single un-numbered output template when
// linesPerOutFile < 0).
func postProcess(inTemplate string, inEntry, inSize int, inFirst, inLast uint64, outTemplate string, outEntry, outSize int, linesPerOutFile int64) error {
	var out *bufio.Writer
	var outFile *os.File
	curOutFileNumber := 0
	linesInCurOutFile := int64(0)

	rotateOut := func() error {
		if out != nil {
			if err := out.Flush(); err != nil {
				return err
			}
			if err := outFile.Close(); err != nil {
				return err
			}
		}

		name, ok := makeFilename(outTemplate, curOutFileNumber, outEntry, outSize)
		if !ok {
			return fmt.Errorf("overflow in out file template")
		}

		f, err := os.Create(name)
		if err != nil {
			return fmt.Errorf("failed to open out file %s: %w", name, err)
		}
		outFile = f
		out = bufio.NewWriterSize(f, 1024*1024)
		return nil
	}
	defer func() {
		if out != nil {
			out.Flush()
			outFile.Close()
		}
	}()

	patternCnt := int64(0)

	for n := inFirst; n <= inLast; n++ {
		name, ok := makeFilename(inTemplate, int(n), inEntry, inSize)
		if !ok {
			return fmt.Errorf("overflow in in file template")
		}

		if err := readFileInto(name, func(line string) error {
			if out == nil || (linesPerOutFile >= 0 && linesInCurOutFile >= linesPerOutFile) {
				if out != nil {
					curOutFileNumber++
					linesInCurOutFile = 0
				}
				if err := rotateOut(); err != nil {
					return err
				}
			}

			if _, err := out.WriteString(line); err != nil {
				return fmt.Errorf("write error on out file: %w", err)
			}
			linesInCurOutFile++
			patternCnt++
			return nil
		}); err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stderr, "Done: %d patterns found\n", patternCnt)
	return nil
}

// readFileInto opens name and calls fn once per line, with its trailing
// newline (if any) intact, matching fgets' line semantics.
func readFileInto(name string, fn func(line string) error) error {
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("failed to open in file %s: %w", name, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if len(line) > 0 {
			if fnErr := fn(line); fnErr != nil {
				return fnErr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read error on in file %s: %w", name, err)
		}
	}
}
