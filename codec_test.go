package qshor

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestIndexBitstringRoundTrip(t *testing.T) {
	Convey("Given the index/bitstring codec", t, func() {
		Convey("When converting an index that fits the width", func() {
			So(IndexToBitstring(5, 4, false), ShouldEqual, "0101")
			So(IndexToBitstring(5, 4, true), ShouldEqual, "1010")
		})

		Convey("When the value does not fit, the width grows", func() {
			So(IndexToBitstring(9, 2, false), ShouldEqual, "1001")
		})

		Convey("When round-tripping with the same reversal flag", func() {
			for _, reversed := range []bool{false, true} {
				for index := uint64(0); index < 64; index++ {
					bitstring := IndexToBitstring(index, 6, reversed)
					back, err := BitstringToIndex(bitstring, reversed)
					So(err, ShouldBeNil)
					So(back, ShouldEqual, index)
				}
			}
		})

		Convey("When parsing a malformed bitstring", func() {
			_, err := BitstringToIndex("01x01", false)
			So(err, ShouldNotBeNil)
			So(err, ShouldHaveSameTypeAs, &FormatError{})

			_, err = BitstringToIndex("", true)
			So(err, ShouldHaveSameTypeAs, &FormatError{})
		})
	})
}

func TestSignificantAmplitudes(t *testing.T) {
	Convey("Given a sparse amplitude vector", t, func() {
		vector := make([]complex128, 8)
		vector[6] = complex(0.5, 0)
		vector[1] = complex(0, -0.5)
		vector[3] = complex(1e-12, 1e-12) // below rounding threshold

		Convey("When extracting with default precision", func() {
			amplitudes := SignificantAmplitudes(vector, 8)

			Convey("Only the non-negligible entries survive, in index order", func() {
				So(amplitudes, ShouldHaveLength, 2)
				So(amplitudes[0].Index, ShouldEqual, 1)
				So(amplitudes[0].Value, ShouldEqual, complex(0, -0.5))
				So(amplitudes[1].Index, ShouldEqual, 6)
			})

			Convey("Bitstrings name the basis state qubit-0 first", func() {
				// Index 6 = binary 110, reversed to 011: qubits 1 and 2 set.
				So(amplitudes[1].Bitstring, ShouldEqual, "011")
				So(amplitudes[0].Bitstring, ShouldEqual, "100")
			})
		})

		Convey("When asking for a precision coarser than the floor", func() {
			// A clamp to 8 digits keeps amplitudes a 2-digit rounding
			// would have wiped out.
			vector := []complex128{complex(0.004, 0), complex(0.999992, 0)}
			amplitudes := SignificantAmplitudes(vector, 2)
			So(amplitudes, ShouldHaveLength, 2)
		})
	})
}
