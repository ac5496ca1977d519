/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/biowallet/cmd/biowallet/walletcmd"
)

// Version is set at build time.
var Version string

var logger = log.New("biowallet")

func main() {
	rootCmd := walletcmd.GetWalletCmd()
	rootCmd.Version = Version

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Failed to run biowallet command", log.WithError(err))
	}
}
