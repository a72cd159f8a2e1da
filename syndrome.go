package qshor

import "fmt"

// Syndrome channel keys: one bit-flip channel per group plus the global
// phase-flip channel.
const (
	ChanX0 = "X0"
	ChanX1 = "X1"
	ChanX2 = "X2"
	ChanZ  = "Z"
)

// Channels lists the syndrome keys in report order.
var Channels = []string{ChanX0, ChanX1, ChanX2, ChanZ}

// codeClean is the outcome of a channel that detected nothing.
const codeClean = "00"

// positionCode maps a position inside a group (or, for the phase channel,
// the group index itself) to the two-bit ancilla pattern it produces. The
// mapping is the same for all three groups, so one table serves everywhere.
var positionCode = [GroupSize]string{"10", "11", "01"}

// Syndrome maps each detection channel to its two-bit outcome code.
type Syndrome map[string]string

// newCleanSyndrome starts every channel at "nothing detected".
func newCleanSyndrome() Syndrome {
	s := make(Syndrome, len(Channels))
	for _, channel := range Channels {
		s[channel] = codeClean
	}
	return s
}

func bitFlipChannel(group int) string {
	return Channels[group]
}

/*
ExpectedSyndrome derives the ancilla outcome every channel should show for
a given error label. An X at position p of group g sets the group's
bit-flip channel to positionCode[p]; a Z in group g sets the phase channel
to positionCode[g]; a Y sets both, since it is caught by both extraction
circuits. Channels never touched stay "00", so the clean label maps to an
all-clean syndrome.
*/
func ExpectedSyndrome(label ErrorLabel) (Syndrome, error) {
	if err := label.Validate(); err != nil {
		return nil, err
	}

	expected := newCleanSyndrome()
	for q := 0; q < len(label); q++ {
		group, position := q/GroupSize, q%GroupSize
		switch label[q] {
		case 'X':
			expected[bitFlipChannel(group)] = positionCode[position]
		case 'Z':
			expected[ChanZ] = positionCode[group]
		case 'Y':
			expected[bitFlipChannel(group)] = positionCode[position]
			expected[ChanZ] = positionCode[group]
		}
	}
	return expected, nil
}

// ObservedSyndrome reads the ancilla characters out of a measured
// bit-string according to the register layout.
func ObservedSyndrome(bitstring string, l Layout) (Syndrome, error) {
	if len(bitstring) != l.Width {
		return nil, fmt.Errorf("bitstring %q is %d characters, layout expects %d", bitstring, len(bitstring), l.Width)
	}
	if _, err := BitstringToIndex(bitstring, true); err != nil {
		return nil, err
	}

	observed := newCleanSyndrome()
	for group, pair := range l.BitFlipPairs {
		observed[bitFlipChannel(group)] = string(bitstring[pair[0]]) + string(bitstring[pair[1]])
	}
	observed[ChanZ] = string(bitstring[l.PhasePair[0]]) + string(bitstring[l.PhasePair[1]])
	return observed, nil
}

// Comparison holds the expected and observed codes for one channel.
type Comparison struct {
	Channel  string
	Expected string
	Observed string
	Match    bool
}

// Report is the per-channel comparison plus the aggregate verdict.
type Report struct {
	Label       ErrorLabel
	Comparisons []Comparison
	Matched     bool
}

// CompareSyndromes lines the two syndromes up channel by channel. Matched
// is true only when every channel agrees.
func CompareSyndromes(label ErrorLabel, expected, observed Syndrome) Report {
	report := Report{Label: label, Matched: true}
	for _, channel := range Channels {
		comparison := Comparison{
			Channel:  channel,
			Expected: expected[channel],
			Observed: observed[channel],
		}
		comparison.Match = comparison.Expected == comparison.Observed
		if !comparison.Match {
			report.Matched = false
		}
		report.Comparisons = append(report.Comparisons, comparison)
	}
	return report
}

// DecodeBitstring is the full decoder path: derive the expected syndrome
// from the label, read the observed one out of the bit-string, and compare.
func DecodeBitstring(label ErrorLabel, bitstring string, l Layout) (Report, error) {
	expected, err := ExpectedSyndrome(label)
	if err != nil {
		return Report{}, err
	}
	observed, err := ObservedSyndrome(bitstring, l)
	if err != nil {
		return Report{}, err
	}
	return CompareSyndromes(label, expected, observed), nil
}
