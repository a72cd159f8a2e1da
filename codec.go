package qshor

import (
	"fmt"
	"math"
	"math/bits"
	"math/cmplx"
	"strconv"
	"strings"
)

// minPrecision is the floor for amplitude rounding. Anything coarser would
// start discarding genuinely populated basis states.
const minPrecision = 8

// FormatError reports a bit-string that is not over the alphabet {0,1}.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("bitstring %q contains non-binary characters", e.Input)
}

// IndexToBitstring converts a basis-state index into a zero-padded binary
// string of the given width. The width grows automatically when the value
// does not fit. With reversed set, the string is flipped so that qubit 0
// (the least significant bit of the index) occupies the first character.
func IndexToBitstring(index uint64, width int, reversed bool) string {
	s := strconv.FormatUint(index, 2)
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	if reversed {
		return reverseString(s)
	}
	return s
}

// BitstringToIndex is the inverse of IndexToBitstring for the same reversal
// flag. It returns a *FormatError when the input is empty or holds any
// character outside {0,1}.
func BitstringToIndex(bitstring string, reversed bool) (uint64, error) {
	if bitstring == "" {
		return 0, &FormatError{Input: bitstring}
	}
	for _, c := range bitstring {
		if c != '0' && c != '1' {
			return 0, &FormatError{Input: bitstring}
		}
	}
	s := bitstring
	if reversed {
		s = reverseString(s)
	}
	index, err := strconv.ParseUint(s, 2, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing bitstring %q: %w", bitstring, err)
	}
	return index, nil
}

// Amplitude pairs a surviving basis state with its rounded amplitude and
// the qubit-0-first bit-string naming that state.
type Amplitude struct {
	Index     int
	Value     complex128
	Bitstring string
}

/*
SignificantAmplitudes rounds every amplitude in a dense state vector to the
requested number of decimal digits (floor-clamped to 8) and returns those
whose rounded magnitude is non-zero, in ascending index order. The ordering
matters: a circuit that has settled into a definite syndrome leaves the
ancilla characters identical across all surviving entries, so callers
inspect the first one.
*/
func SignificantAmplitudes(vector []complex128, precision int) []Amplitude {
	if precision < minPrecision {
		precision = minPrecision
	}
	width := bits.Len(uint(len(vector))) - 1
	if width < 1 {
		width = 1
	}

	scale := math.Pow(10, float64(precision))
	amplitudes := make([]Amplitude, 0, 8)
	for i, amp := range vector {
		rounded := complex(
			math.Round(real(amp)*scale)/scale,
			math.Round(imag(amp)*scale)/scale,
		)
		if cmplx.Abs(rounded) == 0 {
			continue
		}
		amplitudes = append(amplitudes, Amplitude{
			Index:     i,
			Value:     rounded,
			Bitstring: IndexToBitstring(uint64(i), width, true),
		})
	}
	return amplitudes
}

func reverseString(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
