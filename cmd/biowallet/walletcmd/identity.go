/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package walletcmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trustbloc/biowallet/pkg/service/signing"
	"github.com/trustbloc/biowallet/pkg/walleterr"
)

const (
	identityFlagName  = "identity"
	identityFlagUsage = "Identity ID. Defaults to the selected identity."

	payloadFlagName = "payload"
)

var errNoSelection = errors.New("no identity selected; pass --identity or run 'identity select'")

func newIdentityCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "identity",
		Short: "Manage identities",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "create <display-name>",
			Short: "Create an identity bound to a new biometric-gated key",
			Args:  cobra.ExactArgs(1),
			RunE: s.runE(func(cmd *cobra.Command, args []string, w *wallet) error {
				created, err := w.identities.CreateIdentity(cmd.Context(), args[0])
				if err != nil {
					return walleterr.Wrap(walleterr.IdentityLedgerComponent, "CreateIdentity", err)
				}

				return printJSON(cmd, created)
			}),
		},
		&cobra.Command{
			Use:   "list",
			Short: "List identities",
			Args:  cobra.NoArgs,
			RunE: s.runE(func(cmd *cobra.Command, _ []string, w *wallet) error {
				identities, err := w.identities.ListIdentities(cmd.Context())
				if err != nil {
					return walleterr.Wrap(walleterr.IdentityLedgerComponent, "ListIdentities", err)
				}

				return printJSON(cmd, identities)
			}),
		},
		&cobra.Command{
			Use:   "get <id>",
			Short: "Show an identity",
			Args:  cobra.ExactArgs(1),
			RunE: s.runE(func(cmd *cobra.Command, args []string, w *wallet) error {
				found, err := w.identities.GetIdentity(cmd.Context(), args[0])
				if err != nil {
					return walleterr.Wrap(walleterr.IdentityLedgerComponent, "GetIdentity", err)
				}

				return printJSON(cmd, found)
			}),
		},
		&cobra.Command{
			Use:   "select <id>",
			Short: "Select the identity used by default",
			Args:  cobra.ExactArgs(1),
			RunE: s.runE(func(cmd *cobra.Command, args []string, w *wallet) error {
				return walleterr.Wrap(walleterr.IdentityLedgerComponent, "Select", w.identities.Select(cmd.Context(), args[0]))
			}),
		},
		&cobra.Command{
			Use:   "selected",
			Short: "Show the selected identity",
			Args:  cobra.NoArgs,
			RunE: s.runE(func(cmd *cobra.Command, _ []string, w *wallet) error {
				selected, err := w.identities.GetSelected(cmd.Context())
				if err != nil {
					return walleterr.Wrap(walleterr.IdentityLedgerComponent, "GetSelected", err)
				}

				if selected == nil {
					return errNoSelection
				}

				return printJSON(cmd, selected)
			}),
		},
		&cobra.Command{
			Use:   "rename <id> <display-name>",
			Short: "Change the display name of an identity",
			Args:  cobra.ExactArgs(2),
			RunE: s.runE(func(cmd *cobra.Command, args []string, w *wallet) error {
				return walleterr.Wrap(walleterr.IdentityLedgerComponent, "Rename", w.identities.Rename(cmd.Context(), args[0], args[1]))
			}),
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete an identity and its key",
			Args:  cobra.ExactArgs(1),
			RunE: s.runE(func(cmd *cobra.Command, args []string, w *wallet) error {
				return walleterr.Wrap(walleterr.IdentityLedgerComponent, "DeleteIdentity", w.identities.DeleteIdentity(cmd.Context(), args[0]))
			}),
		},
		newPublicKeyCmd(s),
		newKeyInfoCmd(s),
		newSignCmd(s),
	)

	return cmd
}

func newPublicKeyCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "public-key",
		Short: "Export the public key of an identity as PEM",
		Args:  cobra.NoArgs,
		RunE: s.runE(func(cmd *cobra.Command, _ []string, w *wallet) error {
			id, err := identityFromFlag(cmd, w)
			if err != nil {
				return err
			}

			found, err := w.identities.GetIdentity(cmd.Context(), id)
			if err != nil {
				return walleterr.Wrap(walleterr.IdentityLedgerComponent, "GetIdentity", err)
			}

			publicKey, err := w.custodian.GetPublicKey(cmd.Context(), found.KeyAlias)
			if err != nil {
				return walleterr.Wrap(walleterr.KeyCustodianComponent, "GetPublicKey", err)
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), publicKey.PEM)

			return err
		}),
	}

	cmd.Flags().String(identityFlagName, "", identityFlagUsage)

	return cmd
}

type keyInfo struct {
	IdentityID    string `json:"identityID"`
	KeyAlias      string `json:"keyAlias"`
	Exists        bool   `json:"exists"`
	HardwareBound bool   `json:"hardwareBound"`
}

func newKeyInfoCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key-info",
		Short: "Show whether the signing key of an identity exists and is held by a secure element",
		Args:  cobra.NoArgs,
		RunE: s.runE(func(cmd *cobra.Command, _ []string, w *wallet) error {
			id, err := identityFromFlag(cmd, w)
			if err != nil {
				return err
			}

			found, err := w.identities.GetIdentity(cmd.Context(), id)
			if err != nil {
				return walleterr.Wrap(walleterr.IdentityLedgerComponent, "GetIdentity", err)
			}

			info := &keyInfo{IdentityID: found.ID, KeyAlias: found.KeyAlias}

			info.Exists, err = w.custodian.Exists(cmd.Context(), found.KeyAlias)
			if err != nil {
				return walleterr.Wrap(walleterr.KeyCustodianComponent, "Exists", err)
			}

			if info.Exists {
				info.HardwareBound, err = w.custodian.IsHardwareBound(cmd.Context(), found.KeyAlias)
				if err != nil {
					return walleterr.Wrap(walleterr.KeyCustodianComponent, "IsHardwareBound", err)
				}
			}

			return printJSON(cmd, info)
		}),
	}

	cmd.Flags().String(identityFlagName, "", identityFlagUsage)

	return cmd
}

func newSignCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Prove control of an identity by signing a payload after biometric authentication",
		Args:  cobra.NoArgs,
		RunE: s.runE(func(cmd *cobra.Command, _ []string, w *wallet) error {
			id, err := identityFromFlag(cmd, w)
			if err != nil {
				return err
			}

			payload, err := cmd.Flags().GetString(payloadFlagName)
			if err != nil {
				return err
			}

			sig, err := w.signer.SignAsIdentity(cmd.Context(), id, []byte(payload), signing.PurposeAuthenticate)
			if err != nil {
				return walleterr.Wrap(walleterr.SigningProtocolComponent, "SignAsIdentity", err)
			}

			return printJSON(cmd, sig)
		}),
	}

	cmd.Flags().String(identityFlagName, "", identityFlagUsage)
	cmd.Flags().String(payloadFlagName, "", "Payload appended to the signed message.")

	return cmd
}

func identityFromFlag(cmd *cobra.Command, w *wallet) (string, error) {
	id, err := cmd.Flags().GetString(identityFlagName)
	if err != nil {
		return "", err
	}

	if id != "" {
		return id, nil
	}

	return selectedIdentityID(cmd.Context(), w)
}

func selectedIdentityID(ctx context.Context, w *wallet) (string, error) {
	selected, err := w.identities.GetSelected(ctx)
	if err != nil {
		return "", walleterr.Wrap(walleterr.IdentityLedgerComponent, "GetSelected", err)
	}

	if selected == nil {
		return "", errNoSelection
	}

	return selected.ID, nil
}
