package qshor

import (
	"fmt"
	"math/rand"

	"github.com/theapemachine/errnie"
)

// CleanLabel is the no-fault error label.
const CleanLabel = ErrorLabel("IIIIIIIII")

/*
ErrorLabel records, per data qubit, which Pauli fault was injected: nine
characters over {I, X, Y, Z}, positionally aligned to qubit index. It is
the ground truth a decoded syndrome is checked against.
*/
type ErrorLabel string

// Validate checks length and alphabet.
func (el ErrorLabel) Validate() error {
	if len(el) != NumDataQubits {
		return fmt.Errorf("error label %q must hold exactly %d characters", el, NumDataQubits)
	}
	for i := 0; i < len(el); i++ {
		switch el[i] {
		case 'I', 'X', 'Y', 'Z':
		default:
			return fmt.Errorf("error label %q holds unknown operator %q at qubit %d", el, el[i], i)
		}
	}
	return nil
}

// Clean reports whether no fault was injected.
func (el ErrorLabel) Clean() bool {
	return el == CleanLabel
}

/*
FaultInjector samples a bounded random fault pattern: at most one faulted
qubit per three-qubit group, and fault types constrained so the syndrome
stays decodable. A Y fault occupies both the bit-flip and the phase-flip
channel, so nothing may follow it; an X leaves only a later Z possible and
a Z only a later X. The caller supplies the randomness so trials are
reproducible.
*/
type FaultInjector struct {
	rng *rand.Rand

	// Reveal attaches the sampled label to the produced gate as its
	// display name.
	Reveal bool
}

func NewFaultInjector(rng *rand.Rand) *FaultInjector {
	return &FaultInjector{rng: rng}
}

// Inject samples one fault pattern and returns the gate column applying it
// (explicit identities included for the untouched qubits) together with the
// canonical label. The label is a plain return value; nothing is stashed in
// shared state.
func (fi *FaultInjector) Inject(l Layout) (Gate, ErrorLabel) {
	ops := []byte(CleanLabel)

	qubits := make([]int, NumDataQubits)
	for i := range qubits {
		qubits[i] = i
	}
	types := []byte{'X', 'Y', 'Z'}

	rounds := fi.rng.Intn(3)
sampling:
	for round := 0; round < rounds && len(qubits) > 0 && len(types) > 0; round++ {
		qubit := qubits[fi.rng.Intn(len(qubits))]
		faultType := types[fi.rng.Intn(len(types))]
		ops[qubit] = faultType

		// A second fault in the same group would exceed what a
		// distance-3 code can correct.
		qubits = removeGroup(qubits, qubit/GroupSize)

		switch faultType {
		case 'Y':
			// Y already flips both bit and phase; any further fault
			// would make the syndrome ambiguous.
			break sampling
		case 'X':
			types = removeTypes(types, 'X', 'Y')
		case 'Z':
			types = removeTypes(types, 'Y', 'Z')
		}
	}

	label := ErrorLabel(ops)
	errnie.Info("injected fault %s over %d rounds", label, rounds)

	gate := Gate{
		Kind:    KindNoise,
		Targets: l.DataQubits[:],
		Ops:     string(ops),
	}
	if fi.Reveal {
		gate.Label = string(label)
	}
	return gate, label
}

// removeGroup drops every qubit belonging to the given group from the pool.
func removeGroup(qubits []int, group int) []int {
	live := qubits[:0]
	for _, q := range qubits {
		if q/GroupSize != group {
			live = append(live, q)
		}
	}
	return live
}

// removeTypes drops the named fault types from the pool; absent entries are
// a no-op.
func removeTypes(types []byte, drop ...byte) []byte {
	live := types[:0]
	for _, t := range types {
		dropped := false
		for _, d := range drop {
			if t == d {
				dropped = true
				break
			}
		}
		if !dropped {
			live = append(live, t)
		}
	}
	return live
}
