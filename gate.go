package qshor

import "fmt"

// GateKind tags the operations the circuit assembler understands. The
// composite kinds are treated as atomic units and expanded into elementary
// gates only at simulation time.
type GateKind int

const (
	KindH GateKind = iota
	KindX
	KindY
	KindZ
	KindCX
	KindCZ
	KindCCX
	// Composite building blocks.
	KindCNOTNOT  // one control fanning X onto two targets
	KindCZZ      // one control fanning Z onto two targets
	KindInvCCNOT // doubly-controlled X gated on an explicit control pattern
	KindC6X      // one control fanning X onto six targets
	KindInvCCZ   // doubly-controlled Z gated on an explicit control pattern
	KindCCZ      // doubly-controlled Z
	KindNoise    // per-qubit Pauli column produced by the fault injector
)

var gateKindNames = map[GateKind]string{
	KindH:        "H",
	KindX:        "X",
	KindY:        "Y",
	KindZ:        "Z",
	KindCX:       "CX",
	KindCZ:       "CZ",
	KindCCX:      "CCX",
	KindCNOTNOT:  "CNOTNOT",
	KindCZZ:      "CZZ",
	KindInvCCNOT: "invCCNOT",
	KindC6X:      "C6X",
	KindInvCCZ:   "invCCZ",
	KindCCZ:      "CCZ",
	KindNoise:    "Noise",
}

func (k GateKind) String() string {
	if name, ok := gateKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("GateKind(%d)", int(k))
}

/*
Gate is a flat description of one operation: a kind, a target list, an
optional control list and, for the pattern-gated kinds, the control bit
values that activate it. No behavior lives here; the assembler interprets
the fields. Label carries an optional display name for the unit.
*/
type Gate struct {
	Kind         GateKind
	Targets      []int
	Controls     []int
	ControlState string // e.g. "10"; empty means every control must be 1
	Ops          string // KindNoise only: one of I/X/Y/Z per target
	Label        string
}

// Width reports how many register positions the gate spans.
func (g Gate) Width() int {
	return len(g.Targets) + len(g.Controls)
}

// controlPattern converts the ControlState string into the boolean form the
// state kernels take. Nil means all-ones.
func (g Gate) controlPattern() []bool {
	if g.ControlState == "" {
		return nil
	}
	pattern := make([]bool, len(g.ControlState))
	for i := range g.ControlState {
		pattern[i] = g.ControlState[i] == '1'
	}
	return pattern
}

// Circuit is an ordered gate list over a fixed-width register.
type Circuit struct {
	Width int
	Gates []Gate
}

func NewCircuit(width int) *Circuit {
	return &Circuit{Width: width}
}

// Append adds gates to the end of the circuit.
func (c *Circuit) Append(gates ...Gate) *Circuit {
	c.Gates = append(c.Gates, gates...)
	return c
}

// Compose appends every gate of another circuit, widening the register if
// the other circuit is wider.
func (c *Circuit) Compose(other *Circuit) *Circuit {
	if other.Width > c.Width {
		c.Width = other.Width
	}
	c.Gates = append(c.Gates, other.Gates...)
	return c
}

// Run executes the circuit on a fresh |0...0⟩ register and returns the
// final state.
func (c *Circuit) Run() (*QuantumState, error) {
	state := NewQuantumState(c.Width)
	for _, gate := range c.Gates {
		if err := applyGate(state, gate); err != nil {
			return nil, err
		}
	}
	return state, nil
}

// applyGate expands one gate onto the state, composites included.
func applyGate(qs *QuantumState, g Gate) error {
	switch g.Kind {
	case KindH:
		qs.ApplyH(g.Targets[0])
	case KindX:
		qs.ApplyX(g.Targets[0])
	case KindY:
		qs.ApplyY(g.Targets[0])
	case KindZ:
		qs.ApplyZ(g.Targets[0])
	case KindCX:
		qs.ApplyCX(g.Controls[0], g.Targets[0])
	case KindCZ:
		qs.ApplyCZ(g.Controls[0], g.Targets[0])
	case KindCCX:
		qs.ApplyControlledX(g.Controls, nil, g.Targets[0])
	case KindCNOTNOT:
		for _, target := range g.Targets {
			qs.ApplyCX(g.Controls[0], target)
		}
	case KindCZZ:
		for _, target := range g.Targets {
			qs.ApplyCZ(g.Controls[0], target)
		}
	case KindInvCCNOT:
		qs.ApplyControlledX(g.Controls, g.controlPattern(), g.Targets[0])
	case KindC6X:
		for _, target := range g.Targets {
			qs.ApplyCX(g.Controls[0], target)
		}
	case KindInvCCZ:
		qs.ApplyControlledZ(g.Controls, g.controlPattern(), g.Targets[0])
	case KindCCZ:
		qs.ApplyControlledZ(g.Controls, nil, g.Targets[0])
	case KindNoise:
		if len(g.Ops) != len(g.Targets) {
			return fmt.Errorf("noise gate holds %d operators for %d targets", len(g.Ops), len(g.Targets))
		}
		for i, target := range g.Targets {
			switch g.Ops[i] {
			case 'I':
				// Explicit identity, nothing to apply.
			case 'X':
				qs.ApplyX(target)
			case 'Y':
				qs.ApplyY(target)
			case 'Z':
				qs.ApplyZ(target)
			default:
				return fmt.Errorf("noise gate holds unknown operator %q", g.Ops[i])
			}
		}
	default:
		return fmt.Errorf("unknown gate kind %v", g.Kind)
	}
	return nil
}
