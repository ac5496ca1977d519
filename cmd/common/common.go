/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package common

import (
	"strings"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/biowallet/internal/logfields"
)

const (
	// LogLevelFlagName is the flag name used for setting the default log level.
	LogLevelFlagName = "log-level"
	// LogLevelEnvKey is the env var name used for setting the default log level.
	LogLevelEnvKey = "BIOWALLET_LOG_LEVEL"
	// LogLevelFlagShorthand is the shorthand flag name used for setting the default log level.
	LogLevelFlagShorthand = "l"
	// LogLevelPrefixFlagUsage is the usage text for the log level flag.
	LogLevelPrefixFlagUsage = "Sets logging levels for individual modules as well as the default level. " +
		"The format of the string is as follows: module1=level1:module2=level2:defaultLevel. " +
		"Supported levels are: PANIC, FATAL, ERROR, WARNING, INFO, DEBUG. " +
		"Example: biometric-gate=DEBUG:credential-vault=WARNING:INFO. " +
		"Defaults to warning so that command output stays readable. " +
		"Alternatively, this can be set with the following environment variable: " + LogLevelEnvKey

	defaultLogLevel = log.WARNING
)

// SetDefaultLogLevel applies a log level spec of the form module1=level1:module2=level2:defaultLevel.
// Invalid entries are reported and skipped; an invalid or missing default falls back to warning.
func SetDefaultLogLevel(logger *log.Log, userLogLevel string) {
	defaultLevel := defaultLogLevel

	for _, entry := range strings.Split(userLogLevel, ":") {
		if entry == "" {
			continue
		}

		module, levelStr, isModule := strings.Cut(entry, "=")
		if !isModule {
			levelStr, module = module, ""
		}

		level, err := log.ParseLevel(levelStr)
		if err != nil {
			logger.Warn(`User log level is not valid. It must be one of the following: `+
				log.PANIC.String()+", "+
				log.FATAL.String()+", "+
				log.ERROR.String()+", "+
				log.WARNING.String()+", "+
				log.INFO.String()+", "+
				log.DEBUG.String()+".", logfields.WithUserLogLevel(entry))

			continue
		}

		if isModule {
			log.SetLevel(module, level)

			continue
		}

		defaultLevel = level
	}

	if defaultLevel == log.DEBUG {
		logger.Info(`Log level set to "debug". Claims are never logged, but key aliases and identity IDs are.`)
	}

	log.SetLevel("", defaultLevel)
}
