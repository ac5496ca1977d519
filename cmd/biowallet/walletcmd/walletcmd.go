/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package walletcmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/biowallet/cmd/common"
	"github.com/trustbloc/biowallet/internal/logfields"
	"github.com/trustbloc/biowallet/pkg/biometric"
)

var logger = log.New("biowallet")

type options struct {
	authenticator biometric.Authenticator
	keepOpen      bool
}

// Opt configures the wallet command.
type Opt func(opts *options)

// WithAuthenticator replaces the authenticator selected by the --authenticator flag.
func WithAuthenticator(authenticator biometric.Authenticator) Opt {
	return func(opts *options) {
		opts.authenticator = authenticator
	}
}

// WithKeepOpen keeps the wallet open after a command completes, so that the same command tree can
// run several commands against one in-memory wallet.
func WithKeepOpen() Opt {
	return func(opts *options) {
		opts.keepOpen = true
	}
}

// session holds the wallet opened for the running command.
type session struct {
	opts   *options
	wallet *wallet
}

// GetWalletCmd returns the root command of the wallet CLI.
func GetWalletCmd(opts ...Opt) *cobra.Command {
	return newWalletCmd(newSession(opts...))
}

func newSession(opts ...Opt) *session {
	s := &session{opts: &options{}}

	for _, opt := range opts {
		opt(s.opts)
	}

	return s
}

func newWalletCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "biowallet",
		Short: "Biometric-gated DID wallet",
		Long: "Manages decentralized identities whose signing keys are bound to a biometric-gated key " +
			"store, and the verifiable credentials issued to them.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.open(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if s.opts.keepOpen {
				return nil
			}

			return s.close()
		},
	}

	createFlags(cmd)

	cmd.AddCommand(
		newIdentityCmd(s),
		newCredentialCmd(s),
		newDemoCmd(s),
		newStatusCmd(s),
	)

	return cmd
}

func (s *session) open(cmd *cobra.Command) error {
	if s.wallet != nil {
		return nil
	}

	params, err := getParameters(cmd)
	if err != nil {
		return err
	}

	common.SetDefaultLogLevel(logger, params.logLevel)

	authenticator := s.opts.authenticator
	if authenticator == nil {
		authenticator = newAuthenticator(params.authenticator, cmd)
	}

	s.wallet, err = buildWallet(cmd.Context(), params, authenticator, logger)
	if err != nil {
		return fmt.Errorf("open wallet: %w", err)
	}

	logger.Debug("Wallet opened",
		logfields.WithCommand(cmd.CommandPath()),
		logfields.WithKMSType(string(params.kmsParameters.KMSType)),
		logfields.WithStorageType(params.dbParameters.databaseType+"/"+params.credentialStore.storeType),
	)

	return nil
}

func (s *session) close() error {
	if s.wallet == nil {
		return nil
	}

	err := s.wallet.Close()
	s.wallet = nil

	return err
}

// runE wraps a command body. The wallet is closed when the body fails, since cobra skips the
// post-run hook in that case.
func (s *session) runE(
	fn func(cmd *cobra.Command, args []string, w *wallet) error,
) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args, s.wallet)
		if err != nil && !s.opts.keepOpen && s.wallet != nil {
			closeQuietly(s.wallet, logger)
			s.wallet = nil
		}

		return err
	}
}

func newAuthenticator(authenticatorType string, cmd *cobra.Command) biometric.Authenticator {
	if authenticatorType == authenticatorEmulator {
		return biometric.NewEmulator()
	}

	return newConsoleAuthenticator(cmd.InOrStdin(), cmd.ErrOrStderr())
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
