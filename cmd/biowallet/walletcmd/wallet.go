/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package walletcmd

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/alexliesenfeld/health"
	"github.com/aws/aws-sdk-go-v2/aws"
	awskms "github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/biowallet/cmd/common"
	"github.com/trustbloc/biowallet/pkg/biometric"
	"github.com/trustbloc/biowallet/pkg/doc/validator/jsonschema"
	"github.com/trustbloc/biowallet/pkg/kms"
	awskeystore "github.com/trustbloc/biowallet/pkg/kms/aws"
	"github.com/trustbloc/biowallet/pkg/kms/local"
	"github.com/trustbloc/biowallet/pkg/locker"
	mongocheck "github.com/trustbloc/biowallet/pkg/observability/health/mongo"
	redischeck "github.com/trustbloc/biowallet/pkg/observability/health/redis"
	"github.com/trustbloc/biowallet/pkg/observability/metrics"
	metricsProvider "github.com/trustbloc/biowallet/pkg/observability/metrics/prometheus"
	"github.com/trustbloc/biowallet/pkg/observability/metrics/noop"
	"github.com/trustbloc/biowallet/pkg/observability/tracing"
	credentialtracing "github.com/trustbloc/biowallet/pkg/observability/tracing/wrappers/credential"
	identitytracing "github.com/trustbloc/biowallet/pkg/observability/tracing/wrappers/identity"
	signingtracing "github.com/trustbloc/biowallet/pkg/observability/tracing/wrappers/signing"
	"github.com/trustbloc/biowallet/pkg/service/credential"
	"github.com/trustbloc/biowallet/pkg/service/identity"
	"github.com/trustbloc/biowallet/pkg/service/signing"
	"github.com/trustbloc/biowallet/pkg/storage/mem"
	"github.com/trustbloc/biowallet/pkg/storage/mongodb"
	mongocredentialstore "github.com/trustbloc/biowallet/pkg/storage/mongodb/credentialstore"
	"github.com/trustbloc/biowallet/pkg/storage/mongodb/identitystore"
	"github.com/trustbloc/biowallet/pkg/storage/redis"
	"github.com/trustbloc/biowallet/pkg/storage/redis/noncestore"
	s3credentialstore "github.com/trustbloc/biowallet/pkg/storage/s3/credentialstore"
)

const (
	awsKMSServiceID = awskms.ServiceID
	awsS3ServiceID  = s3.ServiceID

	identityCredentialType = "IdentityCredential"

	// statusCheckAlias is looked up by the kms status check. It is never created.
	statusCheckAlias = "biowallet-status-check"

	statusCheckTimeout = 10 * time.Second
)

//go:embed schema/identitycredential.schema.json
var identityCredentialSchema []byte

// requiredClaims are checked on every verification, on top of the JSON schema.
var requiredClaims = map[string][]string{
	identityCredentialType: {"name", "id"},
}

// wallet is the set of services a command works with.
type wallet struct {
	identities  identitytracing.Service
	signer      signingtracing.Service
	credentials credentialtracing.Service
	custodian   *kms.Custodian
	gate        *biometric.Gate

	checks  []health.Check
	closers []func() error
}

// Close releases every connection opened by buildWallet, in reverse order.
func (w *wallet) Close() error {
	var errs []error

	for i := len(w.closers) - 1; i >= 0; i-- {
		if err := w.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}

	w.closers = nil

	return errors.Join(errs...)
}

func (w *wallet) onClose(fn func() error) {
	w.closers = append(w.closers, fn)
}

func (w *wallet) addCheck(name string, check func(ctx context.Context) error) {
	w.checks = append(w.checks, health.Check{
		Name:               name,
		Check:              check,
		MaxTimeInError:     1,
		MaxContiguousFails: 1,
	})
}

// healthChecker runs every registered check synchronously on each Check call.
func (w *wallet) healthChecker() health.Checker {
	opts := []health.CheckerOption{
		health.WithDisabledCache(),
		health.WithTimeout(statusCheckTimeout),
	}

	for _, check := range w.checks {
		opts = append(opts, health.WithCheck(check))
	}

	return health.NewChecker(opts...)
}

//nolint:funlen,gocyclo
func buildWallet(
	ctx context.Context,
	params *parameters,
	authenticator biometric.Authenticator,
	logger *log.Log,
) (_ *wallet, err error) {
	w := &wallet{}

	defer func() {
		if err != nil {
			_ = w.Close()
		}
	}()

	tracingProvider, err := tracing.Initialize(params.tracingProvider, tracingServiceName)
	if err != nil {
		return nil, fmt.Errorf("initialize tracing: %w", err)
	}

	w.onClose(func() error {
		tracingProvider.Shutdown()

		return nil
	})

	metricsCollector, err := createMetrics(params, w, logger)
	if err != nil {
		return nil, err
	}

	var awsConfig *aws.Config

	if params.kmsParameters.KMSType == kms.AWS || params.credentialStore.storeType == credentialStoreS3 {
		awsConfig, err = common.LoadAWSConfig(ctx, params.awsParameters)
		if err != nil {
			return nil, err
		}
	}

	keyStore, err := kms.NewRegistry(params.kmsParameters, map[kms.Type]kms.Factory{
		kms.Local: func(_ *kms.Config) (kms.SecureKeyStore, error) {
			return local.New(), nil
		},
		kms.AWS: func(cfg *kms.Config) (kms.SecureKeyStore, error) {
			return awskeystore.New(awsConfig, metricsCollector, awskeystore.WithKeyAliasPrefix(cfg.AliasPrefix)), nil
		},
	}).GetKeyStore(nil)
	if err != nil {
		return nil, fmt.Errorf("create key store: %w", err)
	}

	w.custodian = kms.NewCustodian(keyStore, metricsCollector)

	w.addCheck("kms", func(ctx context.Context) error {
		_, existsErr := keyStore.Exists(ctx, statusCheckAlias)

		return existsErr
	})

	identityStore, credentialStore, err := createStores(ctx, params, awsConfig, tracingProvider.TracerProvider, w)
	if err != nil {
		return nil, err
	}

	var (
		nonces signing.NonceRegistry = mem.NewNonceStore(params.redisParameters.nonceTTL)
		lock   locker.Locker         = locker.NewKeyedMutex()
	)

	if len(params.redisParameters.addrs) > 0 {
		redisClient, redisErr := redis.New(params.redisParameters.addrs,
			redis.WithPassword(params.redisParameters.password),
			redis.WithTraceProvider(tracingProvider.TracerProvider),
		)
		if redisErr != nil {
			return nil, redisErr
		}

		w.onClose(redisClient.Close)
		w.addCheck("redis", redischeck.New(redisClient))

		nonces = noncestore.New(redisClient, params.redisParameters.nonceTTL)
		lock = locker.NewRedisLocker(redisClient)
	}

	schemas := jsonschema.NewTypeRegistry()

	if err = schemas.Register(identityCredentialType, identityCredentialSchema); err != nil {
		return nil, fmt.Errorf("register %s schema: %w", identityCredentialType, err)
	}

	w.gate = biometric.New(&biometric.Config{
		Custodian:     w.custodian,
		Authenticator: authenticator,
		Metrics:       metricsCollector,
	})

	tracer := tracingProvider.Tracer()

	w.identities = identitytracing.Wrap(identity.New(&identity.Config{
		Store:     identityStore,
		Custodian: w.custodian,
		Locker:    lock,
	}), tracer)

	w.signer = signingtracing.Wrap(signing.New(&signing.Config{
		Ledger:    w.identities,
		Custodian: w.custodian,
		Gate:      w.gate,
		Nonces:    nonces,
		Metrics:   metricsCollector,
	}), tracer)

	w.credentials = credentialtracing.Wrap(credential.New(&credential.Config{
		Store:          credentialStore,
		Ledger:         w.identities,
		Signer:         w.signer,
		Custodian:      w.custodian,
		Schemas:        schemas,
		RequiredClaims: requiredClaims,
		Metrics:        metricsCollector,
	}), tracer)

	return w, nil
}

func createMetrics(params *parameters, w *wallet, logger *log.Log) (metrics.Metrics, error) {
	if params.metricsProvider != metricsProviderPrometheus {
		return noop.GetMetrics(), nil
	}

	provider := metricsProvider.NewPrometheusProvider(metricsProvider.NewServer(params.promHTTPURL))

	if err := provider.Create(); err != nil {
		return nil, fmt.Errorf("create metrics provider: %w", err)
	}

	w.onClose(func() error {
		if err := provider.Destroy(); err != nil {
			logger.Warn("Failed to stop metrics provider", log.WithError(err))
		}

		return nil
	})

	return provider.Metrics(), nil
}

func createStores(
	ctx context.Context,
	params *parameters,
	awsConfig *aws.Config,
	tracerProvider trace.TracerProvider,
	w *wallet,
) (identity.Store, credential.Store, error) {
	var (
		identityStore   identity.Store   = mem.NewIdentityStore()
		credentialStore credential.Store = mem.NewCredentialStore()
		mongoClient     *mongodb.Client
	)

	if params.dbParameters.databaseType == databaseTypeMongoDB {
		var err error

		mongoClient, err = mongodb.New(
			params.dbParameters.databaseURL,
			params.dbParameters.databasePrefix,
			mongodb.WithTimeout(params.dbParameters.timeout),
			mongodb.WithTraceProvider(tracerProvider),
		)
		if err != nil {
			return nil, nil, err
		}

		w.onClose(mongoClient.Close)
		w.addCheck("mongodb", mongocheck.New(mongoClient))

		identityStore, err = identitystore.NewStore(ctx, mongoClient)
		if err != nil {
			return nil, nil, err
		}
	}

	switch params.credentialStore.storeType {
	case databaseTypeMongoDB:
		store, err := mongocredentialstore.NewStore(ctx, mongoClient)
		if err != nil {
			return nil, nil, err
		}

		credentialStore = store
	case credentialStoreS3:
		credentialStore = s3credentialstore.NewStore(s3.NewFromConfig(*awsConfig),
			params.credentialStore.bucket, params.credentialStore.prefix)
	}

	return identityStore, credentialStore, nil
}

// closeQuietly is used for best-effort cleanup on paths that already report an error.
func closeQuietly(c io.Closer, logger *log.Log) {
	if err := c.Close(); err != nil {
		logger.Warn("Failed to close wallet", log.WithError(err))
	}
}
