/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package biometric

import (
	"context"
	"sync"
	"time"

	"github.com/trustbloc/biowallet/pkg/kms"
)

// Emulator is a software authenticator for tests and demos. It replays scripted outcomes and
// falls back to a default outcome once the script is exhausted.
type Emulator struct {
	mu       sync.Mutex
	script   []Outcome
	fallback Outcome
	class    kms.Strength
	delay    time.Duration
	prompts  []Prompt
}

// EmulatorOpt configures the Emulator.
type EmulatorOpt func(e *Emulator)

// WithOutcomes queues outcomes returned by successive prompts.
func WithOutcomes(outcomes ...Outcome) EmulatorOpt {
	return func(e *Emulator) { e.script = append(e.script, outcomes...) }
}

// WithDefaultOutcome sets the outcome returned when no scripted outcome is left.
func WithDefaultOutcome(outcome Outcome) EmulatorOpt {
	return func(e *Emulator) { e.fallback = outcome }
}

// WithClass sets the authenticator class reported on success.
func WithClass(class kms.Strength) EmulatorOpt {
	return func(e *Emulator) { e.class = class }
}

// WithDelay makes every prompt wait before answering, as a user would.
func WithDelay(delay time.Duration) EmulatorOpt {
	return func(e *Emulator) { e.delay = delay }
}

// NewEmulator returns an emulator that recognizes the user with a strong biometric by default.
func NewEmulator(opts ...EmulatorOpt) *Emulator {
	e := &Emulator{
		fallback: OutcomeSucceeded,
		class:    kms.StrengthBiometricStrong,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Prompt answers with the next scripted outcome.
func (e *Emulator) Prompt(ctx context.Context, prompt *Prompt) (*Result, error) {
	e.mu.Lock()
	e.prompts = append(e.prompts, *prompt)

	outcome := e.fallback
	if len(e.script) > 0 {
		outcome, e.script = e.script[0], e.script[1:]
	}
	e.mu.Unlock()

	if e.delay > 0 {
		select {
		case <-time.After(e.delay):
		case <-ctx.Done():
			return &Result{Outcome: OutcomeCanceled, Reason: "prompt dismissed"}, nil
		}
	}

	switch outcome {
	case OutcomeSucceeded:
		return &Result{
			Outcome: OutcomeSucceeded,
			Ticket:  kms.NewAuthTicket(prompt.KeyAlias),
			Class:   e.class,
		}, nil
	case OutcomeFailed:
		return &Result{Outcome: OutcomeFailed, Reason: "biometric not recognized"}, nil
	case OutcomeCanceled:
		return &Result{Outcome: OutcomeCanceled, Reason: "user canceled"}, nil
	default:
		return &Result{Outcome: OutcomeError, Reason: "biometric hardware unavailable"}, nil
	}
}

// Prompts returns the prompts shown so far.
func (e *Emulator) Prompts() []Prompt {
	e.mu.Lock()
	defer e.mu.Unlock()

	return append([]Prompt(nil), e.prompts...)
}
