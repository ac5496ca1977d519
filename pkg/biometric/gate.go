/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gate_mocks_test.go -self_package biometric -package biometric -source=gate.go -mock_names Authenticator=MockAuthenticator,keyCustodian=MockKeyCustodian

package biometric

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/biowallet/internal/logfields"
	"github.com/trustbloc/biowallet/pkg/kms"
	"github.com/trustbloc/biowallet/pkg/walleterr"
)

var logger = log.New("biometric-gate")

// State is the state of a biometric ceremony.
type State int

const (
	StateIdle State = iota
	StatePrompting
	StateSucceeded
	StateFailed
	StateCanceled
	StateError
)

func (s State) String() string {
	switch s {
	case StatePrompting:
		return "prompting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	case StateCanceled:
		return "canceled"
	case StateError:
		return "error"
	default:
		return "idle"
	}
}

// Outcome is what the authenticator reports for one prompt.
type Outcome int

const (
	// OutcomeSucceeded means the user was recognized and a ticket was issued.
	OutcomeSucceeded Outcome = iota
	// OutcomeFailed means the presented biometric did not match.
	OutcomeFailed
	// OutcomeCanceled means the user dismissed the prompt.
	OutcomeCanceled
	// OutcomeError means hardware unavailable, lockout or a similar unrecoverable condition.
	OutcomeError
)

// Prompt describes the system authentication prompt.
type Prompt struct {
	Title          string
	Subtitle       string
	NegativeButton string
	KeyAlias       string
	Strength       kms.Strength
}

// Result is the outcome of a prompt.
type Result struct {
	Outcome Outcome
	// Ticket authorizes one Sign with Prompt.KeyAlias. Set only on success.
	Ticket *kms.AuthTicket
	// Class is the authenticator class that recognized the user.
	Class  kms.Strength
	Reason string
}

// Authenticator shows the platform biometric prompt. Prompt blocks until the user responds or ctx
// is done.
type Authenticator interface {
	Prompt(ctx context.Context, prompt *Prompt) (*Result, error)
}

type keyCustodian interface {
	CheckUsable(ctx context.Context, alias string) error
	Sign(ctx context.Context, handle *kms.KeyHandle, ticket *kms.AuthTicket, msg []byte) ([]byte, error)
}

type metricsProvider interface {
	CeremonyOutcome(outcome string)
}

// Config holds the gate dependencies.
type Config struct {
	Custodian      keyCustodian
	Authenticator  Authenticator
	Metrics        metricsProvider
	Title          string
	Subtitle       string
	NegativeButton string
}

// Gate runs at most one biometric ceremony at a time and converts a successful one into a
// single-use Capability.
type Gate struct {
	custodian     keyCustodian
	authenticator Authenticator
	metrics       metricsProvider
	prompt        Prompt

	mu     sync.Mutex
	state  State
	cancel context.CancelFunc
}

const (
	defaultTitle          = "Authenticate to sign"
	defaultSubtitle       = "Use your fingerprint or face to sign with your DID"
	defaultNegativeButton = "Cancel"
)

// New returns a gate in the Idle state.
func New(config *Config) *Gate {
	prompt := Prompt{
		Title:          config.Title,
		Subtitle:       config.Subtitle,
		NegativeButton: config.NegativeButton,
	}

	if prompt.Title == "" {
		prompt.Title = defaultTitle
	}

	if prompt.Subtitle == "" {
		prompt.Subtitle = defaultSubtitle
	}

	if prompt.NegativeButton == "" {
		prompt.NegativeButton = defaultNegativeButton
	}

	return &Gate{
		custodian:     config.Custodian,
		authenticator: config.Authenticator,
		metrics:       config.Metrics,
		prompt:        prompt,
		state:         StateIdle,
	}
}

// State returns the state of the current or last ceremony.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state
}

// Cancel aborts the ceremony in progress, if any. The gate ends in Canceled.
func (g *Gate) Cancel() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == StatePrompting && g.cancel != nil {
		g.cancel()
	}
}

// Authenticate prompts the user and, on success, returns a capability that signs exactly once with
// the key behind handle.
func (g *Gate) Authenticate(
	ctx context.Context,
	handle *kms.KeyHandle,
	strength kms.Strength,
) (*Capability, error) {
	if handle == nil {
		return nil, fmt.Errorf("authenticate: nil key handle: %w", walleterr.ErrInvalidInput)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := g.begin(cancel); err != nil {
		return nil, err
	}

	state, ticket, err := g.run(ctx, handle, strength)

	g.finish(state, handle.Alias, err)

	if err != nil {
		return nil, err
	}

	return newCapability(g.custodian, handle, ticket), nil
}

func (g *Gate) begin(cancel context.CancelFunc) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == StatePrompting {
		return walleterr.ErrBusy
	}

	g.state = StatePrompting
	g.cancel = cancel

	return nil
}

func (g *Gate) finish(state State, alias string, err error) {
	g.mu.Lock()
	g.state = state
	g.cancel = nil
	g.mu.Unlock()

	if g.metrics != nil {
		g.metrics.CeremonyOutcome(state.String())
	}

	switch state { //nolint:exhaustive
	case StateSucceeded:
		logger.Debug("Biometric ceremony succeeded", logfields.WithKeyAlias(alias))
	case StateError:
		logger.Error("Biometric ceremony error", logfields.WithKeyAlias(alias),
			logfields.WithCeremonyState(state.String()), log.WithError(err))
	default:
		logger.Info("Biometric ceremony ended", logfields.WithKeyAlias(alias),
			logfields.WithCeremonyState(state.String()))
	}
}

func (g *Gate) run(
	ctx context.Context,
	handle *kms.KeyHandle,
	strength kms.Strength,
) (State, *kms.AuthTicket, error) {
	// An invalidated key fails here, before the user is asked for a biometric.
	if err := g.custodian.CheckUsable(ctx, handle.Alias); err != nil {
		return StateError, nil, fmt.Errorf("%w: %w", walleterr.ErrAuthentication, err)
	}

	prompt := g.prompt
	prompt.KeyAlias = handle.Alias
	prompt.Strength = strength

	result, err := g.authenticator.Prompt(ctx, &prompt)

	if ctx.Err() != nil {
		return StateCanceled, nil, fmt.Errorf("%w: %w", walleterr.ErrAuthenticationCanceled, ctx.Err())
	}

	if err != nil {
		return StateError, nil, fmt.Errorf("%w: %w", walleterr.ErrAuthentication, err)
	}

	return evaluate(result, handle.Alias, strength)
}

func evaluate(result *Result, alias string, strength kms.Strength) (State, *kms.AuthTicket, error) {
	if result == nil {
		return StateError, nil, fmt.Errorf("%w: empty authenticator result", walleterr.ErrAuthentication)
	}

	switch result.Outcome {
	case OutcomeSucceeded:
	case OutcomeFailed:
		return StateFailed, nil, withReason(walleterr.ErrAuthenticationFailed, result.Reason)
	case OutcomeCanceled:
		return StateCanceled, nil, withReason(walleterr.ErrAuthenticationCanceled, result.Reason)
	default:
		return StateError, nil, withReason(walleterr.ErrAuthentication, result.Reason)
	}

	if strength == kms.StrengthBiometricStrong && result.Class != kms.StrengthBiometricStrong {
		return StateError, nil, fmt.Errorf("%w: authenticator class %q does not satisfy %q",
			walleterr.ErrAuthentication, result.Class, strength)
	}

	if result.Ticket == nil || result.Ticket.Alias() != alias || result.Ticket.Redeemed() {
		return StateError, nil, fmt.Errorf("%w: %w", walleterr.ErrAuthentication, walleterr.ErrInvalidTicket)
	}

	return StateSucceeded, result.Ticket, nil
}

func withReason(err error, reason string) error {
	if reason == "" {
		return err
	}

	return fmt.Errorf("%w: %s", err, reason)
}

// IsFatal reports whether err from Authenticate or Capability.Sign cannot be fixed by retrying.
func IsFatal(err error) bool {
	return err != nil && !walleterr.IsRecoverable(err) && !errors.Is(err, walleterr.ErrBusy)
}
