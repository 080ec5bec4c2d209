package cli

import (
	"context"
	"errors"
	"io"

	"github.com/crazyrex/Rainbow-CLI-SDK/internal/preferences"
	"github.com/crazyrex/Rainbow-CLI-SDK/internal/sdk"
	"github.com/crazyrex/Rainbow-CLI-SDK/pkg/logging"
)

// SessionRecorder persists the token and user returned by a sign-in.
type SessionRecorder interface {
	RecordSession(token string, user preferences.User) error
}

// RenderFunc displays the results of a command's sequence.
type RenderFunc func(f *Formatter, results []*sdk.Response) error

// ShowLast renders the result of the last step with view.
func ShowLast(view View) RenderFunc {
	return func(f *Formatter, results []*sdk.Response) error {
		if len(results) == 0 {
			return nil
		}
		return f.Render(results[len(results)-1], view)
	}
}

// Command describes one invocation: what to announce, whether it needs a
// stored session or a confirmation, which calls to make and how to show
// their results.
type Command struct {
	// Action and Target are announced before any remote call.
	Action string
	Target string
	// Public commands skip the session gate; login is the only one.
	Public bool
	// Destructive commands ask Confirmation first unless --noconfirmation.
	Destructive  bool
	Confirmation string
	Sequence     Sequence
	// Render displays the results. When nil, only machine-readable modes
	// print the payload of the last step.
	Render RenderFunc
	// Success builds the closing message; nil prints nothing.
	Success func(results []*sdk.Response) string
}

// State is a step of the execution state machine.
type State int

const (
	StateStart State = iota
	StateGateCheck
	StateNotAuthenticated
	StateConfirm
	StateCancelled
	StateEstablishSession
	StateSessionFailed
	StateCallSequence
	StateCallFailed
	StateRender
	StateRenderFailed
	StateDone
)

var stateNames = map[State]string{
	StateStart:            "START",
	StateGateCheck:        "GATE_CHECK",
	StateNotAuthenticated: "NOT_AUTHENTICATED",
	StateConfirm:          "CONFIRM",
	StateCancelled:        "CANCELLED",
	StateEstablishSession: "ESTABLISH_SESSION",
	StateSessionFailed:    "SESSION_FAILED",
	StateCallSequence:     "CALL_SEQUENCE",
	StateCallFailed:       "CALL_FAILED",
	StateRender:           "RENDER",
	StateRenderFailed:     "RENDER_FAILED",
	StateDone:             "DONE",
}

func (s State) String() string {
	return stateNames[s]
}

// OutcomeKind is the terminal state of a command.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeFailure
	OutcomeCancelled
)

// Outcome is the result of Executor.Run.
type Outcome struct {
	Kind    OutcomeKind
	Results []*sdk.Response
	// Err is set on failure and cancellation; it is already reported.
	Err error
	// Trace lists the states visited, in order.
	Trace []State
}

func (o *Outcome) enter(s State) {
	o.Trace = append(o.Trace, s)
}

// Executor runs commands against the platform for one invocation.
type Executor struct {
	session   *preferences.Session
	remote    Remote
	recorder  SessionRecorder
	prompter  Prompter
	notifier  *Notifier
	formatter *Formatter
	indicator Indicator
	options   Options
	version   string
}

// ExecutorConfig holds the collaborators of an Executor.
type ExecutorConfig struct {
	Session  *preferences.Session
	Remote   Remote
	Recorder SessionRecorder
	Prompter Prompter
	Out      io.Writer
	ErrOut   io.Writer
	Options  Options
	// Indicator overrides the spinner shown during remote calls.
	Indicator Indicator
	Version   string
}

// NewExecutor creates an executor. The spinner is drawn on ErrOut and never
// in machine-readable modes.
func NewExecutor(cfg ExecutorConfig) *Executor {
	notifier := NewNotifier(cfg.Out, cfg.ErrOut, cfg.Options.MachineReadable())
	indicator := cfg.Indicator
	switch {
	case cfg.Options.MachineReadable():
		indicator = SilentIndicator
	case indicator == nil:
		indicator = NewSpinner(cfg.ErrOut, "In progress, please wait...")
	}
	session := cfg.Session
	if session == nil {
		session = &preferences.Session{}
	}
	return &Executor{
		session:   session,
		remote:    cfg.Remote,
		recorder:  cfg.Recorder,
		prompter:  cfg.Prompter,
		notifier:  notifier,
		formatter: NewFormatter(cfg.Out, notifier, cfg.Options),
		indicator: indicator,
		options:   cfg.Options,
		version:   cfg.Version,
	}
}

// Notifier returns the notifier used for user-facing messages.
func (e *Executor) Notifier() *Notifier {
	return e.notifier
}

// Session returns the session the executor reads and refreshes.
func (e *Executor) Session() *preferences.Session {
	return e.session
}

// Run drives cmd through the gate, the confirmation, the sign-in, its call
// sequence and the rendering. Any failure stops the progress indicator, is
// reported once and ends the run; nothing after it executes.
func (e *Executor) Run(ctx context.Context, cmd Command) Outcome {
	o := &Outcome{}
	o.enter(StateStart)
	e.notifier.Welcome(e.version)

	if !cmd.Public {
		o.enter(StateGateCheck)
		if !EnsureAuthenticated(e.session, e.notifier) {
			err := &NotAuthenticatedError{}
			if e.options.MachineReadable() {
				e.notifier.Error(err)
			}
			o.enter(StateNotAuthenticated)
			o.Kind = OutcomeFailure
			o.Err = MarkReported(err)
			return *o
		}
	}

	if cmd.Destructive {
		o.enter(StateConfirm)
		proceed, err := Guard(e.prompter, e.options, cmd.Confirmation)
		if err != nil {
			return e.fail(o, StateCancelled, err)
		}
		if !proceed {
			e.notifier.Cancelled()
			o.enter(StateCancelled)
			o.Kind = OutcomeCancelled
			o.Err = MarkReported(&CancelledError{Action: cmd.Action})
			return *o
		}
	}

	if cmd.Action != "" && e.options.CSV == "" {
		e.notifier.Action(cmd.Action, cmd.Target)
	}

	e.indicator.Start()
	o.enter(StateEstablishSession)
	creds := credentials(e.session)
	logging.Debug("Executor", "signing in as %s", creds.Email)
	login, err := e.remote.Start(ctx, creds)
	if err != nil {
		e.indicator.Stop()
		return e.fail(o, StateSessionFailed, &SessionEstablishmentError{
			Host:   sdk.ResolveHost(creds.Host),
			Type:   ClassifyConnectionError(err),
			Reason: err,
		})
	}
	e.session.Token = login.Token
	e.session.User = preferences.User(login.User)
	if e.recorder != nil {
		if err := e.recorder.RecordSession(login.Token, e.session.User); err != nil {
			logging.Warn("Executor", "failed to save the session: %v", err)
		}
	}

	o.enter(StateCallSequence)
	logging.Debug("Executor", "execute action %q", cmd.Action)
	results, err := cmd.Sequence.Run(ctx, e.remote, e.session.Token)
	e.indicator.Stop()
	o.Results = results
	if err != nil {
		return e.fail(o, StateCallFailed, err)
	}
	logging.Debug("Executor", "action done, %d result(s)", len(results))

	o.enter(StateRender)
	if err := e.render(cmd, results); err != nil {
		var owe *OutputWriteError
		if !errors.As(err, &owe) {
			err = &OutputWriteError{Reason: err}
		}
		return e.fail(o, StateRenderFailed, err)
	}
	if cmd.Success != nil {
		e.notifier.Success(cmd.Success(results))
	}

	o.enter(StateDone)
	o.Kind = OutcomeSuccess
	return *o
}

func (e *Executor) render(cmd Command, results []*sdk.Response) error {
	if cmd.Render != nil {
		return cmd.Render(e.formatter, results)
	}
	if e.options.MachineReadable() {
		return ShowLast(KeyValueView)(e.formatter, results)
	}
	return nil
}

func (e *Executor) fail(o *Outcome, state State, err error) Outcome {
	o.enter(state)
	e.notifier.Error(err)
	o.Kind = OutcomeFailure
	o.Err = MarkReported(err)
	return *o
}

func credentials(s *preferences.Session) sdk.Credentials {
	return sdk.Credentials{
		Email:     s.Email,
		Password:  s.Password,
		Host:      s.Host,
		Proxy:     s.Proxy,
		AppID:     s.AppID,
		AppSecret: s.AppSecret,
	}
}
