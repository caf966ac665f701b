package order

import (
	"fmt"
	"strings"

	"labflow/internal/pkg/errs"
)

// State is the position of an order in its processing lifecycle.
//
// Transition graph:
//
//	Created ──> Analysis ──> Completed
//
// Each state has at most one successor, transitions only move forward and
// Completed is terminal. State is independent of the activity Status: a deleted
// order keeps the state it had when it was deleted.
type State int

const (
	// StateUnknown catches uninitialised values.
	StateUnknown State = iota

	// StateCreated is the initial state of every new order.
	StateCreated

	// StateAnalysis means the samples are being processed by the lab.
	StateAnalysis

	// StateCompleted is terminal.
	StateCompleted
)

func getStateStrings() map[State]string {
	return map[State]string{
		StateUnknown:   "UNKNOWN",
		StateCreated:   "CREATED",
		StateAnalysis:  "ANALYSIS",
		StateCompleted: "COMPLETED",
	}
}

// getTransitions lists the allowed targets of every valid state.
func getTransitions() map[State][]State {
	return map[State][]State{
		StateCreated:   {StateAnalysis},
		StateAnalysis:  {StateCompleted},
		StateCompleted: {},
	}
}

// States returns every valid state in lifecycle order.
func States() []State {
	return []State{StateCreated, StateAnalysis, StateCompleted}
}

// ParseState converts the persisted or wire form (e.g. "ANALYSIS") into a State.
// Matching is case-insensitive.
func ParseState(s string) (State, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for state, str := range getStateStrings() {
		if state != StateUnknown && str == normalized {
			return state, nil
		}
	}
	return StateUnknown, errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%q is not a valid state", s))
}

// String implements fmt.Stringer. Invalid values render as "UNKNOWN".
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate reports whether s is one of the lifecycle states.
func (s State) Validate() error {
	if _, ok := getTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%d is not a valid state", s))
	}
	return nil
}

// AllowedTransitions returns the states reachable from s in one step.
// Unknown states have none.
func (s State) AllowedTransitions() []State {
	allowed := getTransitions()[s]
	out := make([]State, len(allowed))
	copy(out, allowed)
	return out
}

// CanTransition reports whether moving from s to target is a legal single step.
// Self-transitions are never legal.
func (s State) CanTransition(target State) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// ValidateTransition is CanTransition with an error that names the allowed targets.
func (s State) ValidateTransition(target State) error {
	if s.CanTransition(target) {
		return nil
	}

	allowed := s.AllowedTransitions()
	names := make([]string, 0, len(allowed))
	for _, a := range allowed {
		names = append(names, a.String())
	}
	list := "none"
	if len(names) > 0 {
		list = strings.Join(names, ", ")
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"state",
		fmt.Errorf("invalid transition from %s to %s, allowed transitions: %s", s, target, list),
	)
}

// NextState returns the single successor of s. It reports false for Completed and
// for unknown states.
func (s State) NextState() (State, bool) {
	allowed := getTransitions()[s]
	if len(allowed) == 0 {
		return StateUnknown, false
	}
	return allowed[0], true
}

// IsTerminal reports whether s is a valid state with no outgoing transition.
func (s State) IsTerminal() bool {
	allowed, ok := getTransitions()[s]
	return ok && len(allowed) == 0
}

// Advance returns the successor of s.
//
// Errors:
//   - Completed: "order is already completed and cannot advance"
//   - unknown states: an error naming the offending value
func (s State) Advance() (State, error) {
	if err := s.Validate(); err != nil {
		return StateUnknown, err
	}
	next, ok := s.NextState()
	if !ok {
		return StateUnknown, errs.NewValueIsInvalidErrorWithCause(
			"state",
			fmt.Errorf("order is already %s and cannot advance", strings.ToLower(s.String())),
		)
	}
	return next, nil
}
