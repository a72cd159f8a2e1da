package qshor

import (
	"math"
	"math/cmplx"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

/*
QuantumState holds the dense amplitude vector of a qubit register. Qubit k
maps to bit k of the basis-state index, so the qubit-0-first bit-string of
an index is its reversed binary representation.
*/
type QuantumState struct {
	Vector    []complex128
	NumQubits int
}

// NewQuantumState prepares |0...0⟩ on the given number of qubits.
func NewQuantumState(numQubits int) *QuantumState {
	vector := make([]complex128, 1<<numQubits)
	vector[0] = 1
	return &QuantumState{Vector: vector, NumQubits: numQubits}
}

func (qs *QuantumState) Clone() *QuantumState {
	vector := make([]complex128, len(qs.Vector))
	copy(vector, qs.Vector)
	return &QuantumState{Vector: vector, NumQubits: qs.NumQubits}
}

// ApplyH applies a Hadamard to one qubit.
func (qs *QuantumState) ApplyH(q int) {
	factor := complex(1.0/math.Sqrt2, 0)
	bit := 1 << q
	next := make([]complex128, len(qs.Vector))
	for i := range qs.Vector {
		if i&bit == 0 {
			j := i | bit
			next[i] = factor * (qs.Vector[i] + qs.Vector[j])
			next[j] = factor * (qs.Vector[i] - qs.Vector[j])
		}
	}
	qs.Vector = next
}

// ApplyX applies a Pauli-X (bit flip) to one qubit.
func (qs *QuantumState) ApplyX(q int) {
	bit := 1 << q
	for i := range qs.Vector {
		if i&bit == 0 {
			j := i | bit
			qs.Vector[i], qs.Vector[j] = qs.Vector[j], qs.Vector[i]
		}
	}
}

// ApplyY applies a Pauli-Y (combined bit and phase flip) to one qubit.
func (qs *QuantumState) ApplyY(q int) {
	bit := 1 << q
	for i := range qs.Vector {
		if i&bit == 0 {
			j := i | bit
			qs.Vector[i], qs.Vector[j] = -1i*qs.Vector[j], 1i*qs.Vector[i]
		}
	}
}

// ApplyZ applies a Pauli-Z (phase flip) to one qubit.
func (qs *QuantumState) ApplyZ(q int) {
	bit := 1 << q
	for i := range qs.Vector {
		if i&bit != 0 {
			qs.Vector[i] *= -1
		}
	}
}

// ApplyCX applies a controlled-X from control to target.
func (qs *QuantumState) ApplyCX(control, target int) {
	cBit := 1 << control
	tBit := 1 << target
	for i := range qs.Vector {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			qs.Vector[i], qs.Vector[j] = qs.Vector[j], qs.Vector[i]
		}
	}
}

// ApplyCZ applies a controlled-Z between the two qubits.
func (qs *QuantumState) ApplyCZ(control, target int) {
	cBit := 1 << control
	tBit := 1 << target
	for i := range qs.Vector {
		if i&cBit != 0 && i&tBit != 0 {
			qs.Vector[i] *= -1
		}
	}
}

// ApplyControlledX flips the target on every basis state whose control
// qubits match the required pattern, pattern[k] being the bit value qubit
// controls[k] must hold. A nil pattern means all controls must be 1.
func (qs *QuantumState) ApplyControlledX(controls []int, pattern []bool, target int) {
	tBit := 1 << target
	for i := range qs.Vector {
		if i&tBit != 0 || !controlsMatch(i, controls, pattern) {
			continue
		}
		j := i | tBit
		qs.Vector[i], qs.Vector[j] = qs.Vector[j], qs.Vector[i]
	}
}

// ApplyControlledZ negates the amplitude of every basis state whose control
// qubits match the required pattern and whose target qubit is 1.
func (qs *QuantumState) ApplyControlledZ(controls []int, pattern []bool, target int) {
	tBit := 1 << target
	for i := range qs.Vector {
		if i&tBit != 0 && controlsMatch(i, controls, pattern) {
			qs.Vector[i] *= -1
		}
	}
}

func controlsMatch(index int, controls []int, pattern []bool) bool {
	for k, control := range controls {
		want := true
		if pattern != nil {
			want = pattern[k]
		}
		if (index&(1<<control) != 0) != want {
			return false
		}
	}
	return true
}

// Probabilities returns the squared-modulus distribution over basis states.
func (qs *QuantumState) Probabilities() []float64 {
	probs := make([]float64, len(qs.Vector))
	for i, amplitude := range qs.Vector {
		prob := cmplx.Abs(amplitude)
		probs[i] = prob * prob
	}
	return probs
}

// Normalize rescales the vector to unit norm. A zero vector is left alone.
func (qs *QuantumState) Normalize() {
	norm := math.Sqrt(floats.Sum(qs.Probabilities()))
	if norm == 0 {
		return
	}
	for i := range qs.Vector {
		qs.Vector[i] /= complex(norm, 0)
	}
}

// Measure collapses the full register to a single basis state drawn from
// the probability distribution and returns its index. The caller supplies
// the randomness so trials stay reproducible.
func (qs *QuantumState) Measure(rng *rand.Rand) int {
	probs := qs.Probabilities()
	total := floats.Sum(probs)
	if total == 0 {
		return 0
	}

	r := rng.Float64() * total
	cumulative := 0.0
	measured := len(probs) - 1
	for i, prob := range probs {
		cumulative += prob
		if r <= cumulative {
			measured = i
			break
		}
	}

	collapsed := make([]complex128, len(qs.Vector))
	collapsed[measured] = 1
	qs.Vector = collapsed

	return measured
}
