package qshor

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLayout(t *testing.T) {
	Convey("Given the default layout", t, func() {
		layout := DefaultLayout()

		Convey("It validates", func() {
			So(layout.Validate(), ShouldBeNil)
			So(layout.Width, ShouldEqual, 17)
		})

		Convey("Groups map to consecutive data qubits", func() {
			So(layout.Group(0), ShouldResemble, [3]int{0, 1, 2})
			So(layout.Group(1), ShouldResemble, [3]int{5, 6, 7})
			So(layout.Group(2), ShouldResemble, [3]int{10, 11, 12})
		})
	})

	Convey("Given layout YAML", t, func() {
		Convey("A valid document parses into the default geometry", func() {
			layout, err := ParseLayout([]byte(`
width: 17
data_qubits: [0, 1, 2, 5, 6, 7, 10, 11, 12]
bit_flip_pairs:
  - [3, 4]
  - [8, 9]
  - [13, 14]
phase_pair: [15, 16]
`))
			So(err, ShouldBeNil)
			So(layout, ShouldResemble, DefaultLayout())
		})

		Convey("Colliding positions are rejected", func() {
			_, err := ParseLayout([]byte(`
width: 17
data_qubits: [0, 1, 2, 5, 6, 7, 10, 11, 12]
bit_flip_pairs:
  - [3, 4]
  - [8, 9]
  - [13, 14]
phase_pair: [15, 12]
`))
			So(err, ShouldNotBeNil)
		})

		Convey("Out-of-range positions are rejected", func() {
			_, err := ParseLayout([]byte(`
width: 16
data_qubits: [0, 1, 2, 5, 6, 7, 10, 11, 12]
bit_flip_pairs:
  - [3, 4]
  - [8, 9]
  - [13, 14]
phase_pair: [15, 16]
`))
			So(err, ShouldNotBeNil)
		})

		Convey("Malformed YAML is rejected", func() {
			_, err := ParseLayout([]byte(`width: [not a number`))
			So(err, ShouldNotBeNil)
		})
	})
}
