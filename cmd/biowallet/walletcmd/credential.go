/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package walletcmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/trustbloc/biowallet/pkg/service/credential"
	"github.com/trustbloc/biowallet/pkg/walleterr"
)

const (
	ownerFlagName     = "owner"
	typeFlagName      = "type"
	issuerFlagName    = "issuer"
	claimsFlagName    = "claims"
	expiresInFlagName = "expires-in"
	expiresAtFlagName = "expires-at"
	validFlagName     = "valid"
)

func newCredentialCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credential",
		Short: "Manage verifiable credentials",
	}

	cmd.AddCommand(
		newIssueCmd(s),
		newListCredentialsCmd(s),
		&cobra.Command{
			Use:   "get <id>",
			Short: "Show a credential",
			Args:  cobra.ExactArgs(1),
			RunE: s.runE(func(cmd *cobra.Command, args []string, w *wallet) error {
				cred, err := w.credentials.GetByID(cmd.Context(), args[0])
				if err != nil {
					return walleterr.Wrap(walleterr.CredentialVaultComponent, "GetByID", err)
				}

				return printJSON(cmd, cred)
			}),
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a credential",
			Args:  cobra.ExactArgs(1),
			RunE: s.runE(func(cmd *cobra.Command, args []string, w *wallet) error {
				return walleterr.Wrap(walleterr.CredentialVaultComponent, "DeleteByID", w.credentials.DeleteByID(cmd.Context(), args[0]))
			}),
		},
		&cobra.Command{
			Use:   "verify <id>",
			Short: "Verify the expiry, claims, owner and proof of a credential",
			Args:  cobra.ExactArgs(1),
			RunE: s.runE(func(cmd *cobra.Command, args []string, w *wallet) error {
				result, err := w.credentials.VerifyByID(cmd.Context(), args[0])
				if err != nil {
					return walleterr.Wrap(walleterr.CredentialVaultComponent, "VerifyByID", err)
				}

				return printJSON(cmd, result)
			}),
		},
		&cobra.Command{
			Use:   "export <id>",
			Short: "Export a credential as a W3C verifiable credential",
			Args:  cobra.ExactArgs(1),
			RunE: s.runE(func(cmd *cobra.Command, args []string, w *wallet) error {
				cred, err := w.credentials.GetByID(cmd.Context(), args[0])
				if err != nil {
					return walleterr.Wrap(walleterr.CredentialVaultComponent, "GetByID", err)
				}

				doc, err := credential.ToJSONLD(cred)
				if err != nil {
					return err
				}

				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(doc))

				return err
			}),
		},
	)

	return cmd
}

func newIssueCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Issue a credential signed by its owner after biometric authentication",
		Args:  cobra.NoArgs,
		RunE: s.runE(func(cmd *cobra.Command, _ []string, w *wallet) error {
			flags := cmd.Flags()

			owner, err := flags.GetString(ownerFlagName)
			if err != nil {
				return err
			}

			if owner == "" {
				if owner, err = selectedIdentityID(cmd.Context(), w); err != nil {
					return err
				}
			}

			credentialType, _ := flags.GetString(typeFlagName)
			issuer, _ := flags.GetString(issuerFlagName)
			claims, _ := flags.GetString(claimsFlagName)

			validity, err := validityFromFlags(cmd, time.Now())
			if err != nil {
				return err
			}

			cred, err := w.credentials.Issue(cmd.Context(), owner, credentialType, issuer,
				json.RawMessage(claims), *validity)
			if err != nil {
				return walleterr.Wrap(walleterr.CredentialVaultComponent, "Issue", err)
			}

			return printJSON(cmd, cred)
		}),
	}

	flags := cmd.Flags()
	flags.String(ownerFlagName, "", "Owner identity ID. Defaults to the selected identity.")
	flags.String(typeFlagName, identityCredentialType, "Credential type.")
	flags.String(issuerFlagName, "", "Issuer DID.")
	flags.String(claimsFlagName, "", "Claims as a JSON object.")
	flags.Duration(expiresInFlagName, 0, "Validity period from now, for example 8760h. No expiry when not set.")
	flags.String(expiresAtFlagName, "", "Expiry time in RFC 3339 format. Overrides --expires-in.")

	_ = cmd.MarkFlagRequired(issuerFlagName)
	_ = cmd.MarkFlagRequired(claimsFlagName)

	return cmd
}

func validityFromFlags(cmd *cobra.Command, now time.Time) (*credential.Validity, error) {
	expiresIn, err := cmd.Flags().GetDuration(expiresInFlagName)
	if err != nil {
		return nil, err
	}

	expiresAt, err := cmd.Flags().GetString(expiresAtFlagName)
	if err != nil {
		return nil, err
	}

	validity := &credential.Validity{IssuedAt: now}

	switch {
	case expiresAt != "":
		t, parseErr := time.Parse(time.RFC3339, expiresAt)
		if parseErr != nil {
			return nil, fmt.Errorf("invalid --%s: %w", expiresAtFlagName, parseErr)
		}

		validity.ExpiresAt = &t
	case expiresIn < 0:
		return nil, errors.New("--" + expiresInFlagName + " must not be negative")
	case expiresIn > 0:
		validity.ExpiresAt = lo.ToPtr(now.Add(expiresIn))
	}

	return validity, nil
}

func newListCredentialsCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the credentials of an identity, or every valid credential with --valid",
		Args:  cobra.NoArgs,
		RunE: s.runE(func(cmd *cobra.Command, _ []string, w *wallet) error {
			valid, err := cmd.Flags().GetBool(validFlagName)
			if err != nil {
				return err
			}

			var creds []*credential.Credential

			if valid {
				creds, err = w.credentials.ListValid(cmd.Context(), time.Now())
			} else {
				var owner string

				owner, err = cmd.Flags().GetString(ownerFlagName)
				if err != nil {
					return err
				}

				if owner == "" {
					if owner, err = selectedIdentityID(cmd.Context(), w); err != nil {
						return err
					}
				}

				creds, err = w.credentials.ListForIdentity(cmd.Context(), owner)
			}

			if err != nil {
				return walleterr.Wrap(walleterr.CredentialVaultComponent, "ListCredentials", err)
			}

			if creds == nil {
				creds = []*credential.Credential{}
			}

			return printJSON(cmd, creds)
		}),
	}

	cmd.Flags().String(ownerFlagName, "", "Owner identity ID. Defaults to the selected identity.")
	cmd.Flags().Bool(validFlagName, false, "List every credential that has not expired.")

	return cmd
}
