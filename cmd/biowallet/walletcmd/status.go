/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package walletcmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexliesenfeld/health"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type statusReport struct {
	Status     health.AvailabilityStatus     `json:"status"`
	Components map[string]health.CheckResult `json:"components,omitempty"`
}

func newStatusCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check the key store and the configured database and Redis",
		Args:  cobra.NoArgs,
		RunE: s.runE(func(cmd *cobra.Command, _ []string, w *wallet) error {
			result := w.healthChecker().Check(cmd.Context())

			if err := printJSON(cmd, &statusReport{
				Status:     result.Status,
				Components: result.Details,
			}); err != nil {
				return err
			}

			if result.Status == health.StatusUp {
				return nil
			}

			unavailable := lo.Keys(lo.PickBy(result.Details, func(_ string, r health.CheckResult) bool {
				return r.Status != health.StatusUp
			}))

			sort.Strings(unavailable)

			return fmt.Errorf("unavailable: %s", strings.Join(unavailable, ", "))
		}),
	}
}
