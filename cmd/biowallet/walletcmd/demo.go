/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package walletcmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/trustbloc/biowallet/internal/logfields"
	"github.com/trustbloc/biowallet/pkg/service/credential"
	"github.com/trustbloc/biowallet/pkg/service/identity"
	"github.com/trustbloc/biowallet/pkg/service/signing"
	"github.com/trustbloc/biowallet/pkg/walleterr"
)

const (
	demoIssuer        = "did:example:issuer123"
	demoValidity      = 365 * 24 * time.Hour
	demoChallenge     = "biowallet-demo-login"
	demoNameFlagName  = "name"
	defaultDemoName   = "Demo Identity"
	demoClaimsPayload = `{"name":"张三","age":"30","id":"330102199901011234"}`
)

type demoReport struct {
	Identity       *identity.Identity             `json:"identity"`
	Authentication *signing.Signature             `json:"authentication"`
	Credential     *credential.Credential         `json:"credential"`
	Verification   *credential.VerificationResult `json:"verification"`
}

func newDemoCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Create an identity, authenticate with it and issue a sample identity credential",
		Args:  cobra.NoArgs,
		RunE: s.runE(func(cmd *cobra.Command, _ []string, w *wallet) error {
			ctx := cmd.Context()

			name, err := cmd.Flags().GetString(demoNameFlagName)
			if err != nil {
				return err
			}

			created, err := w.identities.CreateIdentity(ctx, name)
			if err != nil {
				return walleterr.Wrap(walleterr.IdentityLedgerComponent, "CreateIdentity", err)
			}

			if err = w.identities.Select(ctx, created.ID); err != nil {
				return walleterr.Wrap(walleterr.IdentityLedgerComponent, "Select", err)
			}

			created.IsSelected = true

			sig, err := w.signer.SignAsIdentity(ctx, created.ID, []byte(demoChallenge), signing.PurposeAuthenticate)
			if err != nil {
				return walleterr.Wrap(walleterr.SigningProtocolComponent, "SignAsIdentity", err)
			}

			if err = w.signer.VerifySignature(ctx, sig); err != nil {
				return walleterr.Wrap(walleterr.SigningProtocolComponent, "VerifySignature", err)
			}

			now := time.Now()

			cred, err := w.credentials.Issue(ctx, created.ID, identityCredentialType, demoIssuer,
				json.RawMessage(demoClaimsPayload), credential.Validity{
					IssuedAt:  now,
					ExpiresAt: lo.ToPtr(now.Add(demoValidity)),
				})
			if err != nil {
				return walleterr.Wrap(walleterr.CredentialVaultComponent, "Issue", err)
			}

			result, err := w.credentials.Verify(ctx, cred)
			if err != nil {
				return walleterr.Wrap(walleterr.CredentialVaultComponent, "Verify", err)
			}

			logger.Info("Demo completed", logfields.WithIdentityID(created.ID),
				logfields.WithCredentialID(cred.ID))

			if err = printJSON(cmd, &demoReport{
				Identity:       created,
				Authentication: sig,
				Credential:     cred,
				Verification:   result,
			}); err != nil {
				return err
			}

			if !result.Valid() {
				return fmt.Errorf("demo credential did not verify: %s: %s", result.Status, result.Reason)
			}

			return nil
		}),
	}

	cmd.Flags().String(demoNameFlagName, defaultDemoName, "Display name of the demo identity.")

	return cmd
}
