package qshor

import (
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	. "github.com/smartystreets/goconvey/convey"
)

// simulateLabel runs encode → noise → syndrome extraction for a fixed label
// and returns the observed syndrome of the first surviving basis state.
func simulateLabel(label ErrorLabel, layout Layout) Syndrome {
	circuit := BuildEncoder(layout)
	circuit.Append(Gate{
		Kind:    KindNoise,
		Targets: layout.DataQubits[:],
		Ops:     string(label),
	})
	circuit.Compose(BuildSyndrome(layout))

	state, err := circuit.Run()
	So(err, ShouldBeNil)

	amplitudes := SignificantAmplitudes(state.Vector, 8)
	So(amplitudes, ShouldNotBeEmpty)

	observed, err := ObservedSyndrome(amplitudes[0].Bitstring, layout)
	So(err, ShouldBeNil)
	return observed
}

func TestSimulatedSyndromesMatchExpectation(t *testing.T) {
	Convey("Given the full encode/inject/extract circuit", t, func() {
		layout := DefaultLayout()

		Convey("Every single-qubit fault produces the syndrome the decoder expects", func() {
			for _, op := range []byte{'X', 'Y', 'Z'} {
				for qubit := 0; qubit < NumDataQubits; qubit++ {
					label := labelWith(op, qubit)

					expected, err := ExpectedSyndrome(label)
					So(err, ShouldBeNil)
					observed := simulateLabel(label, layout)

					SoMsg(fmt.Sprintf("label %s", label), observed, ShouldResemble, expected)
				}
			}
		})

		Convey("The clean label leaves every ancilla at zero", func() {
			observed := simulateLabel(CleanLabel, layout)
			So(observed, ShouldResemble, Syndrome{
				ChanX0: "00", ChanX1: "00", ChanX2: "00", ChanZ: "00",
			})
		})

		Convey("A combined bit-flip and phase-flip pair decodes on both channels", func() {
			label := ErrorLabel("XIIIIIZII") // X at qubit 0, Z at qubit 6
			expected, err := ExpectedSyndrome(label)
			So(err, ShouldBeNil)

			observed := simulateLabel(label, layout)
			So(observed, ShouldResemble, expected)
			So(observed[ChanX0], ShouldEqual, "10")
			So(observed[ChanZ], ShouldEqual, "01")
		})
	})
}

func TestRunner(t *testing.T) {
	Convey("Given a seeded runner", t, func() {
		config := NewConfig()
		config.Seed = 17

		runner, err := NewRunner(config)
		So(err, ShouldBeNil)

		Convey("When running one trial", func() {
			result, err := runner.Run()
			So(err, ShouldBeNil)

			Convey("The observed syndrome matches the injected label", func() {
				So(result.Report.Matched, ShouldBeTrue)
				So(result.ID, ShouldNotBeEmpty)
				So(result.Label.Validate(), ShouldBeNil)
				So(result.Amplitudes, ShouldNotBeEmpty)
			})

			Convey("The same seed reproduces the same label", func() {
				again, err := NewRunner(config)
				So(err, ShouldBeNil)
				repeat, err := again.Run()
				So(err, ShouldBeNil)
				So(repeat.Label, ShouldEqual, result.Label)
			})
		})

		Convey("When running with correction enabled", func() {
			config := NewConfig()
			config.Seed = 23
			config.Correct = true

			runner, err := NewRunner(config)
			So(err, ShouldBeNil)

			for trial := 0; trial < 5; trial++ {
				result, err := runner.Run()
				So(err, ShouldBeNil)
				if !result.Corrected {
					spew.Dump(result)
				}
				So(result.Corrected, ShouldBeTrue)
				So(result.Report.Matched, ShouldBeTrue)
			}
		})

		Convey("When the layout is invalid", func() {
			bad := NewConfig()
			bad.Layout = &Layout{Width: 2}
			_, err := NewRunner(bad)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestRunMany(t *testing.T) {
	Convey("Given a batch of trials across workers", t, func() {
		config := NewConfig()
		config.Seed = 5

		stats, err := RunMany(config, 20, 4)
		So(err, ShouldBeNil)

		Convey("Every trial decodes correctly", func() {
			So(stats.Trials, ShouldEqual, 20)
			So(stats.Matches, ShouldEqual, 20)
			So(stats.MatchRate(), ShouldEqual, 1.0)
		})

		Convey("The export carries the aggregate counters", func() {
			export := stats.Export()
			So(export["trials"], ShouldEqual, int64(20))
			So(export["match_rate"], ShouldEqual, 1.0)
		})
	})
}

func TestStats(t *testing.T) {
	Convey("Given empty stats", t, func() {
		stats := NewStats()
		So(stats.MatchRate(), ShouldEqual, 0)

		Convey("When recording outcomes", func() {
			stats.record("XIIIIIIII", true)
			stats.record(CleanLabel, true)
			stats.record("IIIZIIIII", false)

			So(stats.Trials, ShouldEqual, 3)
			So(stats.Matches, ShouldEqual, 2)
			So(stats.CleanTrials, ShouldEqual, 1)
			So(stats.FaultCounts['X'], ShouldEqual, 1)
			So(stats.FaultCounts['Z'], ShouldEqual, 1)
			So(stats.MatchRate(), ShouldAlmostEqual, 2.0/3.0)
		})
	})
}
