/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package walletcmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/trustbloc/biowallet/pkg/biometric"
	"github.com/trustbloc/biowallet/pkg/kms"
)

type answer struct {
	text string
	eof  bool
	err  error
}

// consoleAuthenticator stands in for the platform biometric prompt on a terminal. An empty line or
// "y" recognizes the user, "n" fails the attempt and "c" (or end of input) dismisses the prompt.
type consoleAuthenticator struct {
	in  io.Reader
	out io.Writer

	once    sync.Once
	answers chan answer
}

func newConsoleAuthenticator(in io.Reader, out io.Writer) *consoleAuthenticator {
	return &consoleAuthenticator{
		in:      in,
		out:     out,
		answers: make(chan answer),
	}
}

func (a *consoleAuthenticator) Prompt(ctx context.Context, prompt *biometric.Prompt) (*biometric.Result, error) {
	a.once.Do(func() {
		go a.read()
	})

	fmt.Fprintf(a.out, "%s\n%s\nKey: %s\n[Enter] authenticate  [n] not recognized  [c] %s: ",
		prompt.Title, prompt.Subtitle, prompt.KeyAlias, prompt.NegativeButton)

	select {
	case <-ctx.Done():
		fmt.Fprintln(a.out)

		return &biometric.Result{Outcome: biometric.OutcomeCanceled, Reason: "prompt dismissed"}, nil
	case ans := <-a.answers:
		if ans.err != nil {
			return nil, fmt.Errorf("read answer: %w", ans.err)
		}

		if ans.eof {
			return &biometric.Result{Outcome: biometric.OutcomeCanceled, Reason: "no input"}, nil
		}

		return answerResult(ans.text, prompt), nil
	}
}

func (a *consoleAuthenticator) read() {
	scanner := bufio.NewScanner(a.in)

	for scanner.Scan() {
		a.answers <- answer{text: scanner.Text()}
	}

	final := answer{eof: true, err: scanner.Err()}

	for {
		a.answers <- final
	}
}

func answerResult(text string, prompt *biometric.Prompt) *biometric.Result {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "", "y", "yes":
		return &biometric.Result{
			Outcome: biometric.OutcomeSucceeded,
			Ticket:  kms.NewAuthTicket(prompt.KeyAlias),
			Class:   kms.StrengthBiometricStrong,
		}
	case "c", "cancel":
		return &biometric.Result{Outcome: biometric.OutcomeCanceled, Reason: "user canceled"}
	default:
		return &biometric.Result{Outcome: biometric.OutcomeFailed, Reason: "biometric not recognized"}
	}
}
