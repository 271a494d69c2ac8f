package password

// DisplayState is the render state of one criterion in the checklist.
// The zero value is Unknown.
type DisplayState uint8

const (
	Unknown DisplayState = iota
	Met
	NotMet
)

func (s DisplayState) String() string {
	switch s {
	case Met:
		return "met"
	case NotMet:
		return "not_met"
	default:
		return "unknown"
	}
}

// Icon names the checklist glyph for the state.
func (s DisplayState) Icon() string {
	switch s {
	case Met:
		return "checkmark.circle"
	case NotMet:
		return "xmark.circle"
	default:
		return "circle"
	}
}

// Update returns the state after applying a verdict.
// In lenient mode (strict=false) an unmet criterion stays Unknown.
// In strict mode it becomes NotMet.
func (s DisplayState) Update(verdict, strict bool) DisplayState {
	switch {
	case verdict:
		return Met
	case strict:
		return NotMet
	default:
		return Unknown
	}
}

// Reset returns Unknown regardless of the current state.
func (s DisplayState) Reset() DisplayState { return Unknown }

// CriterionState pairs a criterion with its current display state.
type CriterionState struct {
	Criterion Criterion
	State     DisplayState
}

// Display tracks the display state of all five criteria for one form field.
// It is not safe for concurrent use.
type Display struct {
	states [criterionCount]DisplayState
}

// Apply updates every criterion from v in a single step.
func (d *Display) Apply(v Verdict, strict bool) {
	for c := Criterion(0); c < criterionCount; c++ {
		d.states[c] = d.states[c].Update(v.Met(c), strict)
	}
}

// Reset puts every criterion back to Unknown.
func (d *Display) Reset() {
	for c := range d.states {
		d.states[c] = d.states[c].Reset()
	}
}

// State returns the current state of c.
func (d *Display) State(c Criterion) DisplayState {
	if !c.Valid() {
		return Unknown
	}
	return d.states[c]
}

// Snapshot returns the states in display order.
func (d *Display) Snapshot() []CriterionState {
	out := make([]CriterionState, 0, criterionCount)
	for c := Criterion(0); c < criterionCount; c++ {
		out = append(out, CriterionState{Criterion: c, State: d.states[c]})
	}
	return out
}
