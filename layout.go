package qshor

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixed geometry of the nine-qubit code: three groups of three data qubits.
const (
	NumDataQubits = 9
	NumGroups     = 3
	GroupSize     = 3
)

/*
Layout fixes where the data qubits and ancilla pairs sit inside the register
and, in turn, which characters of a state's bit-string carry each syndrome.
The offsets are a contract with the circuit builders: change the register
order and the layout must change with it, which is why it is configuration
rather than a constant.
*/
type Layout struct {
	Width        int       `yaml:"width"`
	DataQubits   [9]int    `yaml:"data_qubits"`
	BitFlipPairs [3][2]int `yaml:"bit_flip_pairs"`
	PhasePair    [2]int    `yaml:"phase_pair"`
}

// DefaultLayout interleaves each group of three data qubits with its
// bit-flip ancilla pair and puts the phase pair last, so the syndrome
// characters land at offsets 3-5, 8-10, 13-15 and the final two of a
// 17-character bit-string.
func DefaultLayout() Layout {
	return Layout{
		Width:        17,
		DataQubits:   [9]int{0, 1, 2, 5, 6, 7, 10, 11, 12},
		BitFlipPairs: [3][2]int{{3, 4}, {8, 9}, {13, 14}},
		PhasePair:    [2]int{15, 16},
	}
}

// Validate checks that every register position is in range and no two
// positions collide.
func (l Layout) Validate() error {
	seen := make(map[int]string, l.Width)
	claim := func(position int, role string) error {
		if position < 0 || position >= l.Width {
			return fmt.Errorf("layout: %s position %d outside register of width %d", role, position, l.Width)
		}
		if other, taken := seen[position]; taken {
			return fmt.Errorf("layout: %s and %s both claim register position %d", role, other, position)
		}
		seen[position] = role
		return nil
	}

	for i, q := range l.DataQubits {
		if err := claim(q, fmt.Sprintf("data qubit %d", i)); err != nil {
			return err
		}
	}
	for group, pair := range l.BitFlipPairs {
		for i, a := range pair {
			if err := claim(a, fmt.Sprintf("bit-flip ancilla %d of group %d", i, group)); err != nil {
				return err
			}
		}
	}
	for i, a := range l.PhasePair {
		if err := claim(a, fmt.Sprintf("phase ancilla %d", i)); err != nil {
			return err
		}
	}
	return nil
}

// Group returns the register positions of the three data qubits in one group.
func (l Layout) Group(group int) [3]int {
	base := group * GroupSize
	return [3]int{l.DataQubits[base], l.DataQubits[base+1], l.DataQubits[base+2]}
}

// ParseLayout reads a layout from YAML and validates it.
func ParseLayout(data []byte) (Layout, error) {
	var layout Layout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return Layout{}, fmt.Errorf("parsing layout: %w", err)
	}
	if err := layout.Validate(); err != nil {
		return Layout{}, err
	}
	return layout, nil
}

// LoadLayout reads a layout from a YAML file.
func LoadLayout(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("reading layout file: %w", err)
	}
	return ParseLayout(data)
}
