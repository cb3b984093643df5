package assessment

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"
)

// State constants for statekit integration. Values are kept in sync with
// the RunStatus constants in run.go; the init check below enforces it.
const (
	StateRunPending   = "pending"
	StateRunRunning   = "running"
	StateRunCompleted = "completed"
	StateRunFailed    = "failed"
)

func init() {
	stateMap := map[string]RunStatus{
		StateRunPending:   RunPending,
		StateRunRunning:   RunRunning,
		StateRunCompleted: RunCompleted,
		StateRunFailed:    RunFailed,
	}
	for fsmState, status := range stateMap {
		if fsmState != string(status) {
			panic(fmt.Sprintf("FSM state %q does not match RunStatus %q - constants are out of sync", fsmState, status))
		}
	}
}

// RunContext carries the run identity through the machine.
type RunContext struct {
	RunID string
}

// RunStateMachine governs the lifecycle of an assessment run:
// pending -> running -> completed | failed. Terminal states accept no
// further events.
type RunStateMachine struct {
	interpreter *statekit.Interpreter[RunContext]
}

func NewRunStateMachine(runID string) (*RunStateMachine, error) {
	builder := statekit.NewMachine[RunContext]("assessment-run").
		WithInitial(statekit.StateID(StateRunPending)).
		WithContext(RunContext{RunID: runID})

	builder.State(StateRunPending).
		On("start").Target(StateRunRunning).
		Done()

	builder.State(StateRunRunning).
		On("complete").Target(StateRunCompleted).
		On("fail").Target(StateRunFailed).
		Done()

	builder.State(StateRunCompleted).Done()
	builder.State(StateRunFailed).Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build run state machine: %w", err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()

	return &RunStateMachine{interpreter: interpreter}, nil
}

// Transition sends an event and fails if no transition fired.
func (sm *RunStateMachine) Transition(event string) error {
	before := sm.Current()
	sm.interpreter.Send(statekit.Event{Type: statekit.EventType(event)})
	after := sm.Current()

	if before != after {
		return nil
	}
	return fmt.Errorf("the action '%s' is not allowed while the run is in the '%s' state", event, before)
}

func (sm *RunStateMachine) Current() string {
	return string(sm.interpreter.State().Value)
}

// CurrentStatus returns the current state as a RunStatus value.
func (sm *RunStateMachine) CurrentStatus() RunStatus {
	return RunStatus(sm.Current())
}

// IsTerminal reports whether the run reached completed or failed.
func (sm *RunStateMachine) IsTerminal() bool {
	s := sm.CurrentStatus()
	return s == RunCompleted || s == RunFailed
}
