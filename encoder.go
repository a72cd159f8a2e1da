package qshor

/*
The builders in this file produce the fixed circuits around the fault site:
encoding the logical qubit across nine data qubits, extracting the four
syndrome channels onto ancillas, applying the conditional correction, and
unencoding back down to a single qubit. All of them take a Layout so the
register order lives in one place.
*/

// BuildEncoder spreads the logical qubit at the first data position across
// all nine: phase-level fan-out to the block leaders, Hadamards, then
// bit-level fan-out inside each block.
func BuildEncoder(l Layout) *Circuit {
	circuit := NewCircuit(l.Width)

	leaders := [3]int{l.DataQubits[0], l.DataQubits[3], l.DataQubits[6]}
	circuit.Append(Gate{
		Kind:     KindCNOTNOT,
		Controls: []int{leaders[0]},
		Targets:  []int{leaders[1], leaders[2]},
		Label:    "block fan-out",
	})
	for _, leader := range leaders {
		circuit.Append(Gate{Kind: KindH, Targets: []int{leader}})
	}
	for group := 0; group < NumGroups; group++ {
		qubits := l.Group(group)
		circuit.Append(Gate{
			Kind:     KindCNOTNOT,
			Controls: []int{qubits[0]},
			Targets:  []int{qubits[1], qubits[2]},
		})
	}
	return circuit
}

// BuildSyndrome wires the error-detection ancillas. Each group's ancilla
// pair picks up the two adjacent-qubit parities (a bit flip at position 0,
// 1 or 2 shows up as 10, 11 or 01). Each phase ancilla measures the
// six-qubit X stabilizer across its two blocks through a Hadamard-framed
// fan-out, so a phase flip in group 0, 1 or 2 shows up as 10, 11 or 01 on
// the pair.
func BuildSyndrome(l Layout) *Circuit {
	circuit := NewCircuit(l.Width)

	for group := 0; group < NumGroups; group++ {
		qubits := l.Group(group)
		pair := l.BitFlipPairs[group]
		circuit.Append(
			Gate{Kind: KindCX, Controls: []int{qubits[0]}, Targets: []int{pair[0]}},
			Gate{Kind: KindCX, Controls: []int{qubits[1]}, Targets: []int{pair[0]}},
			Gate{Kind: KindCX, Controls: []int{qubits[1]}, Targets: []int{pair[1]}},
			Gate{Kind: KindCX, Controls: []int{qubits[2]}, Targets: []int{pair[1]}},
		)
	}

	// Phase ancilla k compares blocks k and k+1.
	for k := 0; k < 2; k++ {
		ancilla := l.PhasePair[k]
		left, right := l.Group(k), l.Group(k+1)
		circuit.Append(
			Gate{Kind: KindH, Targets: []int{ancilla}},
			Gate{
				Kind:     KindC6X,
				Controls: []int{ancilla},
				Targets: []int{
					left[0], left[1], left[2],
					right[0], right[1], right[2],
				},
			},
			Gate{Kind: KindH, Targets: []int{ancilla}},
		)
	}
	return circuit
}

// BuildCorrection applies the inverse fault conditioned on the ancillas:
// an X at the group position its pair names, and a Z on the block the
// phase pair names. Correcting any single qubit of a block fixes the whole
// block's phase, since the in-block parities are stabilizers.
func BuildCorrection(l Layout) *Circuit {
	circuit := NewCircuit(l.Width)

	for group := 0; group < NumGroups; group++ {
		qubits := l.Group(group)
		pair := l.BitFlipPairs[group]
		controls := []int{pair[0], pair[1]}
		circuit.Append(
			Gate{Kind: KindInvCCNOT, Controls: controls, ControlState: "10", Targets: []int{qubits[0]}},
			Gate{Kind: KindCCX, Controls: controls, Targets: []int{qubits[1]}},
			Gate{Kind: KindInvCCNOT, Controls: controls, ControlState: "01", Targets: []int{qubits[2]}},
		)
	}

	phase := []int{l.PhasePair[0], l.PhasePair[1]}
	circuit.Append(
		Gate{Kind: KindInvCCZ, Controls: phase, ControlState: "10", Targets: []int{l.DataQubits[0]}},
		Gate{Kind: KindCCZ, Controls: phase, Targets: []int{l.DataQubits[3]}},
		Gate{Kind: KindInvCCZ, Controls: phase, ControlState: "01", Targets: []int{l.DataQubits[6]}},
	)
	return circuit
}

// BuildUnencoder inverts the encoding and majority-votes any residual bit
// flips, leaving the logical qubit on the first data position. The ancillas
// keep whatever syndrome they picked up.
func BuildUnencoder(l Layout) *Circuit {
	circuit := NewCircuit(l.Width)

	for group := 0; group < NumGroups; group++ {
		qubits := l.Group(group)
		circuit.Append(
			Gate{
				Kind:     KindCNOTNOT,
				Controls: []int{qubits[0]},
				Targets:  []int{qubits[1], qubits[2]},
			},
			Gate{Kind: KindCCX, Controls: []int{qubits[1], qubits[2]}, Targets: []int{qubits[0]}},
		)
	}

	leaders := [3]int{l.DataQubits[0], l.DataQubits[3], l.DataQubits[6]}
	for _, leader := range leaders {
		circuit.Append(Gate{Kind: KindH, Targets: []int{leader}})
	}
	circuit.Append(
		Gate{
			Kind:     KindCNOTNOT,
			Controls: []int{leaders[0]},
			Targets:  []int{leaders[1], leaders[2]},
		},
		Gate{Kind: KindCCX, Controls: []int{leaders[1], leaders[2]}, Targets: []int{leaders[0]}},
	)
	return circuit
}
