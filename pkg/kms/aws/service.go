/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination service_mocks_test.go -package aws -source=service.go

package aws

import (
	"context"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/aws/aws-sdk-go-v2/service/kms/types"

	walletkms "github.com/trustbloc/biowallet/pkg/kms"
	"github.com/trustbloc/biowallet/pkg/walleterr"
)

type awsClient interface {
	Sign(ctx context.Context, params *kms.SignInput, optFns ...func(*kms.Options)) (*kms.SignOutput, error)
	GetPublicKey(ctx context.Context, params *kms.GetPublicKeyInput,
		optFns ...func(*kms.Options)) (*kms.GetPublicKeyOutput, error)
	DescribeKey(ctx context.Context, params *kms.DescribeKeyInput,
		optFns ...func(*kms.Options)) (*kms.DescribeKeyOutput, error)
	CreateKey(ctx context.Context, params *kms.CreateKeyInput,
		optFns ...func(*kms.Options)) (*kms.CreateKeyOutput, error)
	CreateAlias(ctx context.Context, params *kms.CreateAliasInput,
		optFns ...func(*kms.Options)) (*kms.CreateAliasOutput, error)
	DeleteAlias(ctx context.Context, params *kms.DeleteAliasInput,
		optFns ...func(*kms.Options)) (*kms.DeleteAliasOutput, error)
	ScheduleKeyDeletion(ctx context.Context, params *kms.ScheduleKeyDeletionInput,
		optFns ...func(*kms.Options)) (*kms.ScheduleKeyDeletionOutput, error)
}

type metricsProvider interface {
	SignCount()
	SignTime(value time.Duration)
	ExportPublicKeyCount()
	ExportPublicKeyTime(value time.Duration)
	CreateKeyCount()
	CreateKeyTime(value time.Duration)
}

// Service is a key store backed by AWS KMS. Keys created in a CloudHSM custom key store are
// reported as StrongBox.
type Service struct {
	options *opts
	client  awsClient
	metrics metricsProvider
}

const (
	signingAlgorithmEcdsaSha256 = "ECDSA_SHA_256"
	signingAlgorithmEcdsaSha384 = "ECDSA_SHA_384"
	signingAlgorithmEcdsaSha512 = "ECDSA_SHA_512"

	tagUserAuthentication = "biowallet:user-authentication"
	tagInvalidatedBy      = "biowallet:invalidated-by"
)

// New return aws service.
func New(
	awsConfig *aws.Config,
	metrics metricsProvider,
	opts ...Opts,
) *Service {
	options := newOpts()

	for _, opt := range opts {
		opt(options)
	}

	client := options.awsClient
	if client == nil {
		client = kms.NewFromConfig(*awsConfig)
	}

	return &Service{
		options: options,
		client:  client,
		metrics: metrics,
	}
}

// Generate creates an ECC_NIST_P256 sign/verify key and points the wallet alias at it. The access
// policy is recorded as key tags; the biometric gate enforces it before any Sign call.
func (s *Service) Generate(
	ctx context.Context,
	alias string,
	policy walletkms.Policy,
) (*walletkms.KeyHandle, error) {
	startTime := time.Now()

	defer func() {
		if s.metrics != nil {
			s.metrics.CreateKeyTime(time.Since(startTime))
		}
	}()

	if s.metrics != nil {
		s.metrics.CreateKeyCount()
	}

	input := &kms.CreateKeyInput{
		KeySpec:     types.KeySpecEccNistP256,
		KeyUsage:    types.KeyUsageTypeSignVerify,
		Description: aws.String("biowallet identity key " + alias),
		Tags:        policyTags(policy),
	}

	if s.options.customKeyStoreID != "" {
		input.CustomKeyStoreId = aws.String(s.options.customKeyStoreID)
		input.Origin = types.OriginTypeAwsCloudhsm
	}

	result, err := s.client.CreateKey(ctx, input)
	if err != nil {
		return nil, err
	}

	keyID := aws.ToString(result.KeyMetadata.KeyId)
	aliasName := s.aliasName(alias)

	_, err = s.client.CreateAlias(ctx, &kms.CreateAliasInput{AliasName: &aliasName, TargetKeyId: &keyID})
	if err != nil {
		if _, delErr := s.scheduleDeletion(ctx, keyID); delErr != nil {
			return nil, fmt.Errorf("create alias %s: %w (key %s left behind: %v)", aliasName, err, keyID, delErr)
		}

		return nil, fmt.Errorf("create alias %s: %w", aliasName, err)
	}

	return &walletkms.KeyHandle{Alias: alias, KeyID: keyID}, nil
}

// Handle resolves the wallet alias to the AWS key ID.
func (s *Service) Handle(ctx context.Context, alias string) (*walletkms.KeyHandle, error) {
	metadata, err := s.describe(ctx, s.aliasName(alias))
	if err != nil {
		return nil, err
	}

	return &walletkms.KeyHandle{Alias: alias, KeyID: aws.ToString(metadata.KeyId)}, nil
}

// Exists reports whether an enabled key is behind the alias.
func (s *Service) Exists(ctx context.Context, alias string) (bool, error) {
	_, err := s.describe(ctx, s.aliasName(alias))
	if err != nil {
		if errors.Is(err, walleterr.ErrKeyNotFound) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// PublicKey exports the DER encoded SubjectPublicKeyInfo.
func (s *Service) PublicKey(ctx context.Context, handle *walletkms.KeyHandle) ([]byte, error) {
	startTime := time.Now()

	defer func() {
		if s.metrics != nil {
			s.metrics.ExportPublicKeyTime(time.Since(startTime))
		}
	}()

	if s.metrics != nil {
		s.metrics.ExportPublicKeyCount()
	}

	result, err := s.client.GetPublicKey(ctx, &kms.GetPublicKeyInput{KeyId: aws.String(s.keyID(handle))})
	if err != nil {
		return nil, mapNotFound(handle.Alias, err)
	}

	return result.PublicKey, nil
}

// Sign data. The returned signature is ASN.1 DER encoded.
func (s *Service) Sign(ctx context.Context, handle *walletkms.KeyHandle, msg []byte) ([]byte, error) {
	startTime := time.Now()

	defer func() {
		if s.metrics != nil {
			s.metrics.SignTime(time.Since(startTime))
		}
	}()

	if s.metrics != nil {
		s.metrics.SignCount()
	}

	keyID := s.keyID(handle)

	metadata, err := s.describe(ctx, keyID)
	if err != nil {
		return nil, err
	}

	if len(metadata.SigningAlgorithms) == 0 {
		return nil, fmt.Errorf("key %s has no signing algorithm", handle.Alias)
	}

	digest, err := hashMessage(msg, metadata.SigningAlgorithms[0])
	if err != nil {
		return nil, err
	}

	input := &kms.SignInput{
		KeyId:            aws.String(keyID),
		Message:          digest,
		MessageType:      types.MessageTypeDigest,
		SigningAlgorithm: metadata.SigningAlgorithms[0],
	}

	result, err := s.client.Sign(ctx, input)
	if err != nil {
		return nil, mapNotFound(handle.Alias, err)
	}

	return result.Signature, nil
}

// Validate checks that the key is enabled and not pending deletion.
func (s *Service) Validate(ctx context.Context, handle *walletkms.KeyHandle) error {
	_, err := s.describe(ctx, s.keyID(handle))

	return err
}

// Delete removes the alias and schedules the key for deletion.
func (s *Service) Delete(ctx context.Context, handle *walletkms.KeyHandle) error {
	aliasName := s.aliasName(handle.Alias)

	_, err := s.client.DeleteAlias(ctx, &kms.DeleteAliasInput{AliasName: &aliasName})
	if err != nil {
		return mapNotFound(handle.Alias, err)
	}

	if handle.KeyID == "" {
		return nil
	}

	if _, err = s.scheduleDeletion(ctx, handle.KeyID); err != nil {
		return mapNotFound(handle.Alias, err)
	}

	return nil
}

// SecurityLevel reports StrongBox for CloudHSM backed keys and TrustedEnvironment otherwise.
func (s *Service) SecurityLevel(ctx context.Context, alias string) (walletkms.SecurityLevel, error) {
	metadata, err := s.describe(ctx, s.aliasName(alias))
	if err != nil {
		return walletkms.SecurityLevelSoftware, err
	}

	if metadata.Origin == types.OriginTypeAwsCloudhsm || aws.ToString(metadata.CustomKeyStoreId) != "" {
		return walletkms.SecurityLevelStrongBox, nil
	}

	return walletkms.SecurityLevelTrustedEnvironment, nil
}

func (s *Service) describe(ctx context.Context, keyID string) (*types.KeyMetadata, error) {
	result, err := s.client.DescribeKey(ctx, &kms.DescribeKeyInput{KeyId: aws.String(keyID)})
	if err != nil {
		return nil, mapNotFound(keyID, err)
	}

	if result.KeyMetadata == nil {
		return nil, fmt.Errorf("key %s: %w", keyID, walleterr.ErrKeyNotFound)
	}

	switch result.KeyMetadata.KeyState { //nolint:exhaustive
	case types.KeyStatePendingDeletion, types.KeyStatePendingReplicaDeletion:
		return nil, fmt.Errorf("key %s pending deletion: %w", keyID, walleterr.ErrKeyNotFound)
	case types.KeyStateDisabled:
		return nil, fmt.Errorf("key %s disabled: %w", keyID, walleterr.ErrKeyInvalidated)
	}

	return result.KeyMetadata, nil
}

func (s *Service) scheduleDeletion(ctx context.Context, keyID string) (*kms.ScheduleKeyDeletionOutput, error) {
	return s.client.ScheduleKeyDeletion(ctx, &kms.ScheduleKeyDeletionInput{
		KeyId:               aws.String(keyID),
		PendingWindowInDays: aws.Int32(s.options.pendingWindowInDays),
	})
}

func (s *Service) aliasName(alias string) string {
	aliasPrefix := s.options.KeyAliasPrefix()
	if strings.TrimSpace(aliasPrefix) != "" {
		return fmt.Sprintf("alias/%s_%s", aliasPrefix, alias)
	}

	return "alias/" + alias
}

func (s *Service) keyID(handle *walletkms.KeyHandle) string {
	if handle.KeyID != "" {
		return handle.KeyID
	}

	return s.aliasName(handle.Alias)
}

func policyTags(policy walletkms.Policy) []types.Tag {
	var tags []types.Tag

	if policy.UserAuthenticationRequired {
		tags = append(tags, types.Tag{
			TagKey:   aws.String(tagUserAuthentication),
			TagValue: aws.String(string(policy.Strength)),
		})
	}

	if policy.InvalidatedByEnrollment {
		tags = append(tags, types.Tag{
			TagKey:   aws.String(tagInvalidatedBy),
			TagValue: aws.String("biometric-enrollment"),
		})
	}

	return tags
}

func mapNotFound(alias string, err error) error {
	var notFound *types.NotFoundException

	if errors.As(err, &notFound) {
		return fmt.Errorf("key %s: %w", alias, walleterr.ErrKeyNotFound)
	}

	return err
}

func hashMessage(message []byte, algorithm types.SigningAlgorithmSpec) ([]byte, error) {
	var digest hash.Hash

	switch algorithm { //nolint: exhaustive
	case signingAlgorithmEcdsaSha256:
		digest = sha256.New()
	case signingAlgorithmEcdsaSha384:
		digest = sha512.New384()
	case signingAlgorithmEcdsaSha512:
		digest = sha512.New()
	default:
		return []byte{}, fmt.Errorf("unknown signing algorithm")
	}

	digest.Write(message)

	return digest.Sum(nil), nil
}
