/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package walletcmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"

	"github.com/trustbloc/biowallet/cmd/common"
	"github.com/trustbloc/biowallet/pkg/kms"
	"github.com/trustbloc/biowallet/pkg/observability/tracing"
)

const (
	commonEnvVarUsageText = " Alternatively, this can be set with the following environment variable: "

	databaseTypeMem     = "mem"
	databaseTypeMongoDB = "mongodb"
	credentialStoreS3   = "s3"

	authenticatorConsole  = "console"
	authenticatorEmulator = "emulator"

	metricsProviderPrometheus = "prometheus"
)

// database params
const (
	databaseTypeFlagName  = "database-type"
	databaseTypeEnvKey    = "BIOWALLET_DATABASE_TYPE"
	databaseTypeFlagUsage = "The type of database that holds identities and credentials. Supported options: mem, " +
		"mongodb. Defaults to mem." + commonEnvVarUsageText + databaseTypeEnvKey

	databaseURLFlagName  = "database-url"
	databaseURLEnvKey    = "BIOWALLET_DATABASE_URL"
	databaseURLFlagUsage = "MongoDB connection string, for example mongodb://localhost:27017. Required for " +
		"mongodb." + commonEnvVarUsageText + databaseURLEnvKey

	databasePrefixFlagName  = "database-prefix"
	databasePrefixEnvKey    = "BIOWALLET_DATABASE_PREFIX"
	databasePrefixFlagUsage = "Name of the MongoDB database. Defaults to biowallet." +
		commonEnvVarUsageText + databasePrefixEnvKey

	databaseTimeoutFlagName  = "database-timeout"
	databaseTimeoutEnvKey    = "BIOWALLET_DATABASE_TIMEOUT"
	databaseTimeoutFlagUsage = "Timeout of a single database operation, for example 10s. Defaults to 15s." +
		commonEnvVarUsageText + databaseTimeoutEnvKey

	defaultDatabasePrefix  = "biowallet"
	defaultDatabaseTimeout = 15 * time.Second
)

// credential store params
const (
	credentialStoreTypeFlagName  = "credential-store-type"
	credentialStoreTypeEnvKey    = "BIOWALLET_CREDENTIAL_STORE_TYPE"
	credentialStoreTypeFlagUsage = "Where credentials are kept. Supported options: mem, mongodb, s3. " +
		"Defaults to the database type." + commonEnvVarUsageText + credentialStoreTypeEnvKey

	credentialStoreS3BucketFlagName  = "credential-store-s3-bucket"
	credentialStoreS3BucketEnvKey    = "BIOWALLET_CREDENTIAL_STORE_S3_BUCKET"
	credentialStoreS3BucketFlagUsage = "S3 bucket of the credential store. Required for s3." +
		commonEnvVarUsageText + credentialStoreS3BucketEnvKey

	credentialStoreS3PrefixFlagName  = "credential-store-s3-prefix"
	credentialStoreS3PrefixEnvKey    = "BIOWALLET_CREDENTIAL_STORE_S3_PREFIX"
	credentialStoreS3PrefixFlagUsage = "Optional key prefix of credential objects." +
		commonEnvVarUsageText + credentialStoreS3PrefixEnvKey

	credentialStoreS3EndpointFlagName  = "credential-store-s3-endpoint"
	credentialStoreS3EndpointEnvKey    = "BIOWALLET_CREDENTIAL_STORE_S3_ENDPOINT"
	credentialStoreS3EndpointFlagUsage = "Optional S3 endpoint, for example a localstack URL." +
		commonEnvVarUsageText + credentialStoreS3EndpointEnvKey
)

// kms params
const (
	kmsTypeFlagName  = "kms-type"
	kmsTypeEnvKey    = "BIOWALLET_KMS_TYPE"
	kmsTypeFlagUsage = "Key store that holds identity keys (local, aws). The local key store lives in memory " +
		"for the duration of the process. Defaults to local." + commonEnvVarUsageText + kmsTypeEnvKey

	kmsEndpointFlagName  = "kms-endpoint"
	kmsEndpointEnvKey    = "BIOWALLET_KMS_ENDPOINT"
	kmsEndpointFlagUsage = "Optional AWS KMS endpoint." + commonEnvVarUsageText + kmsEndpointEnvKey

	kmsAliasPrefixFlagName  = "kms-alias-prefix"
	kmsAliasPrefixEnvKey    = "BIOWALLET_KMS_ALIAS_PREFIX"
	kmsAliasPrefixFlagUsage = "Prefix of AWS KMS key aliases." + commonEnvVarUsageText + kmsAliasPrefixEnvKey

	awsRegionFlagName  = "aws-region"
	awsRegionEnvKey    = "BIOWALLET_AWS_REGION"
	awsRegionFlagUsage = "AWS region of KMS and S3. Defaults to the AWS SDK configuration." +
		commonEnvVarUsageText + awsRegionEnvKey
)

// redis params
const (
	redisURLsFlagName  = "redis-urls"
	redisURLsEnvKey    = "BIOWALLET_REDIS_URLS"
	redisURLsFlagUsage = "Comma-separated Redis addresses. When set, signing nonces and identity locks are " +
		"shared through Redis." + commonEnvVarUsageText + redisURLsEnvKey

	redisPasswordFlagName  = "redis-password"
	redisPasswordEnvKey    = "BIOWALLET_REDIS_PASSWORD" //nolint:gosec
	redisPasswordFlagUsage = "Optional Redis password." + commonEnvVarUsageText + redisPasswordEnvKey

	nonceTTLFlagName  = "nonce-ttl"
	nonceTTLEnvKey    = "BIOWALLET_NONCE_TTL"
	nonceTTLFlagUsage = "How long a signing nonce stays reserved, for example 24h. Defaults to 24h." +
		commonEnvVarUsageText + nonceTTLEnvKey

	defaultNonceTTL = 24 * time.Hour
)

// observability and authenticator params
const (
	metricsProviderFlagName  = "metrics-provider"
	metricsProviderEnvKey    = "BIOWALLET_METRICS_PROVIDER"
	metricsProviderFlagUsage = "Metrics provider (prometheus). Metrics are disabled when not set." +
		commonEnvVarUsageText + metricsProviderEnvKey

	promHTTPURLFlagName  = "prom-http-url"
	promHTTPURLEnvKey    = "BIOWALLET_PROM_HTTP_URL"
	promHTTPURLFlagUsage = "Address of the Prometheus /metrics endpoint, for example :48127. Required for " +
		"prometheus." + commonEnvVarUsageText + promHTTPURLEnvKey

	tracingProviderFlagName  = "tracing-provider"
	tracingProviderEnvKey    = "BIOWALLET_TRACING_PROVIDER"
	tracingProviderFlagUsage = "Tracing span exporter (STDOUT). Tracing is disabled when not set." +
		commonEnvVarUsageText + tracingProviderEnvKey

	authenticatorFlagName  = "authenticator"
	authenticatorEnvKey    = "BIOWALLET_AUTHENTICATOR"
	authenticatorFlagUsage = "Biometric authenticator: console asks for confirmation on the terminal, emulator " +
		"always recognizes the user. Defaults to console." + commonEnvVarUsageText + authenticatorEnvKey

	tracingServiceName = "biowallet"
)

type parameters struct {
	dbParameters    *dbParameters
	credentialStore *credentialStoreParameters
	kmsParameters   *kms.Config
	awsParameters   *common.AWSParameters
	redisParameters *redisParameters
	metricsProvider string
	promHTTPURL     string
	tracingProvider string
	authenticator   string
	logLevel        string
}

type dbParameters struct {
	databaseType   string
	databaseURL    string
	databasePrefix string
	timeout        time.Duration
}

type credentialStoreParameters struct {
	storeType string
	bucket    string
	prefix    string
}

type redisParameters struct {
	addrs    []string
	password string
	nonceTTL time.Duration
}

//nolint:funlen,gocyclo
func getParameters(cmd *cobra.Command) (*parameters, error) {
	dbParams, err := getDBParameters(cmd)
	if err != nil {
		return nil, err
	}

	credentialStoreType := cmdutils.GetUserSetOptionalVarFromString(cmd, credentialStoreTypeFlagName,
		credentialStoreTypeEnvKey)
	if credentialStoreType == "" {
		credentialStoreType = dbParams.databaseType
	}

	credentialStore := &credentialStoreParameters{
		storeType: credentialStoreType,
		prefix: cmdutils.GetUserSetOptionalVarFromString(cmd, credentialStoreS3PrefixFlagName,
			credentialStoreS3PrefixEnvKey),
	}

	switch credentialStoreType {
	case databaseTypeMem, databaseTypeMongoDB:
		if credentialStoreType != dbParams.databaseType && credentialStoreType == databaseTypeMongoDB {
			return nil, fmt.Errorf("credential store %s requires database type %s", credentialStoreType,
				databaseTypeMongoDB)
		}
	case credentialStoreS3:
		credentialStore.bucket, err = cmdutils.GetUserSetVarFromString(cmd, credentialStoreS3BucketFlagName,
			credentialStoreS3BucketEnvKey, false)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported credential store type: %s", credentialStoreType)
	}

	kmsParams, err := getKMSParameters(cmd)
	if err != nil {
		return nil, err
	}

	awsParams := &common.AWSParameters{
		Region:    cmdutils.GetUserSetOptionalVarFromString(cmd, awsRegionFlagName, awsRegionEnvKey),
		Endpoints: map[string]string{},
	}

	if kmsParams.Endpoint != "" {
		awsParams.Endpoints[awsKMSServiceID] = kmsParams.Endpoint
	}

	if endpoint := cmdutils.GetUserSetOptionalVarFromString(cmd, credentialStoreS3EndpointFlagName,
		credentialStoreS3EndpointEnvKey); endpoint != "" {
		awsParams.Endpoints[awsS3ServiceID] = endpoint
	}

	redisParams, err := getRedisParameters(cmd)
	if err != nil {
		return nil, err
	}

	metricsProvider := cmdutils.GetUserSetOptionalVarFromString(cmd, metricsProviderFlagName, metricsProviderEnvKey)

	var promHTTPURL string

	switch metricsProvider {
	case "":
	case metricsProviderPrometheus:
		promHTTPURL, err = cmdutils.GetUserSetVarFromString(cmd, promHTTPURLFlagName, promHTTPURLEnvKey, false)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported metrics provider: %s", metricsProvider)
	}

	tracingProvider := cmdutils.GetUserSetOptionalVarFromString(cmd, tracingProviderFlagName, tracingProviderEnvKey)
	if !tracing.IsExportedSupported(tracingProvider) {
		return nil, fmt.Errorf("unsupported tracing provider: %s", tracingProvider)
	}

	authenticator := cmdutils.GetUserSetOptionalVarFromString(cmd, authenticatorFlagName, authenticatorEnvKey)

	switch authenticator {
	case "":
		authenticator = authenticatorConsole
	case authenticatorConsole, authenticatorEmulator:
	default:
		return nil, fmt.Errorf("unsupported authenticator: %s", authenticator)
	}

	return &parameters{
		dbParameters:    dbParams,
		credentialStore: credentialStore,
		kmsParameters:   kmsParams,
		awsParameters:   awsParams,
		redisParameters: redisParams,
		metricsProvider: metricsProvider,
		promHTTPURL:     promHTTPURL,
		tracingProvider: tracingProvider,
		authenticator:   authenticator,
		logLevel:        cmdutils.GetUserSetOptionalVarFromString(cmd, common.LogLevelFlagName, common.LogLevelEnvKey),
	}, nil
}

func getDBParameters(cmd *cobra.Command) (*dbParameters, error) {
	databaseType := cmdutils.GetUserSetOptionalVarFromString(cmd, databaseTypeFlagName, databaseTypeEnvKey)
	if databaseType == "" {
		databaseType = databaseTypeMem
	}

	params := &dbParameters{
		databaseType:   databaseType,
		databasePrefix: cmdutils.GetUserSetOptionalVarFromString(cmd, databasePrefixFlagName, databasePrefixEnvKey),
	}

	if params.databasePrefix == "" {
		params.databasePrefix = defaultDatabasePrefix
	}

	var err error

	params.timeout, err = getDuration(cmd, databaseTimeoutFlagName, databaseTimeoutEnvKey, defaultDatabaseTimeout)
	if err != nil {
		return nil, err
	}

	switch databaseType {
	case databaseTypeMem:
	case databaseTypeMongoDB:
		params.databaseURL, err = cmdutils.GetUserSetVarFromString(cmd, databaseURLFlagName, databaseURLEnvKey, false)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported database type: %s", databaseType)
	}

	return params, nil
}

func getKMSParameters(cmd *cobra.Command) (*kms.Config, error) {
	kmsType := kms.Type(cmdutils.GetUserSetOptionalVarFromString(cmd, kmsTypeFlagName, kmsTypeEnvKey))
	if kmsType == "" {
		kmsType = kms.Local
	}

	if kmsType != kms.Local && kmsType != kms.AWS {
		return nil, fmt.Errorf("unsupported kms type: %s", kmsType)
	}

	return &kms.Config{
		KMSType:     kmsType,
		Endpoint:    cmdutils.GetUserSetOptionalVarFromString(cmd, kmsEndpointFlagName, kmsEndpointEnvKey),
		AliasPrefix: cmdutils.GetUserSetOptionalVarFromString(cmd, kmsAliasPrefixFlagName, kmsAliasPrefixEnvKey),
	}, nil
}

func getRedisParameters(cmd *cobra.Command) (*redisParameters, error) {
	nonceTTL, err := getDuration(cmd, nonceTTLFlagName, nonceTTLEnvKey, defaultNonceTTL)
	if err != nil {
		return nil, err
	}

	return &redisParameters{
		addrs:    cmdutils.GetUserSetOptionalCSVVar(cmd, redisURLsFlagName, redisURLsEnvKey),
		password: cmdutils.GetUserSetOptionalVarFromString(cmd, redisPasswordFlagName, redisPasswordEnvKey),
		nonceTTL: nonceTTL,
	}, nil
}

func getDuration(cmd *cobra.Command, flagName, envKey string,
	defaultDuration time.Duration) (time.Duration, error) {
	timeoutStr := cmdutils.GetUserSetOptionalVarFromString(cmd, flagName, envKey)
	if timeoutStr == "" {
		return defaultDuration, nil
	}

	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return -1, fmt.Errorf("invalid value [%s]: %w", timeoutStr, err)
	}

	return timeout, nil
}

func createFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.String(databaseTypeFlagName, "", databaseTypeFlagUsage)
	flags.String(databaseURLFlagName, "", databaseURLFlagUsage)
	flags.String(databasePrefixFlagName, "", databasePrefixFlagUsage)
	flags.String(databaseTimeoutFlagName, "", databaseTimeoutFlagUsage)
	flags.String(credentialStoreTypeFlagName, "", credentialStoreTypeFlagUsage)
	flags.String(credentialStoreS3BucketFlagName, "", credentialStoreS3BucketFlagUsage)
	flags.String(credentialStoreS3PrefixFlagName, "", credentialStoreS3PrefixFlagUsage)
	flags.String(credentialStoreS3EndpointFlagName, "", credentialStoreS3EndpointFlagUsage)
	flags.String(kmsTypeFlagName, "", kmsTypeFlagUsage)
	flags.String(kmsEndpointFlagName, "", kmsEndpointFlagUsage)
	flags.String(kmsAliasPrefixFlagName, "", kmsAliasPrefixFlagUsage)
	flags.String(awsRegionFlagName, "", awsRegionFlagUsage)
	flags.StringSlice(redisURLsFlagName, []string{}, redisURLsFlagUsage)
	flags.String(redisPasswordFlagName, "", redisPasswordFlagUsage)
	flags.String(nonceTTLFlagName, "", nonceTTLFlagUsage)
	flags.String(metricsProviderFlagName, "", metricsProviderFlagUsage)
	flags.String(promHTTPURLFlagName, "", promHTTPURLFlagUsage)
	flags.String(tracingProviderFlagName, "", tracingProviderFlagUsage)
	flags.String(authenticatorFlagName, "", authenticatorFlagUsage)
	flags.StringP(common.LogLevelFlagName, common.LogLevelFlagShorthand, "", common.LogLevelPrefixFlagUsage)
}
