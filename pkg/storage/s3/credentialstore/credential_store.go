/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credentialstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/samber/lo"

	"github.com/trustbloc/biowallet/pkg/service/credential"
	"github.com/trustbloc/biowallet/pkg/walleterr"
)

const (
	contentType    = "application/json"
	credentialsDir = "credentials/"
	ownerMetaKey   = "owner"
	jsonExt        = ".json"
)

var _ credential.Store = (*Store)(nil)

type s3Client interface {
	PutObject(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, input *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadObject(ctx context.Context, input *s3.HeadObjectInput, opts ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, input *s3.DeleteObjectInput,
		opts ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	ListObjectsV2(ctx context.Context, input *s3.ListObjectsV2Input,
		opts ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// Store keeps each credential as a JSON object in an S3 bucket.
type Store struct {
	s3Client s3Client
	bucket   string
	prefix   string
}

// NewStore creates S3 Store. Objects are written under prefix, which may be empty.
func NewStore(s3Client s3Client, bucket, prefix string) *Store {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	return &Store{
		s3Client: s3Client,
		bucket:   bucket,
		prefix:   prefix,
	}
}

func (p *Store) Put(ctx context.Context, cred *credential.Credential) error {
	b, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("marshal credential %s: %w", cred.ID, err)
	}

	_, err = p.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Body:        bytes.NewReader(b),
		Key:         aws.String(p.resolveKey(cred.ID)),
		Bucket:      aws.String(p.bucket),
		ContentType: aws.String(contentType),
		Metadata:    map[string]string{ownerMetaKey: cred.OwnerIdentityID},
	})
	if err != nil {
		return fmt.Errorf("failed to upload credential: %w", err)
	}

	return nil
}

func (p *Store) Get(ctx context.Context, id string) (*credential.Credential, error) {
	return p.get(ctx, p.resolveKey(id))
}

func (p *Store) ListByOwner(ctx context.Context, ownerID string) ([]*credential.Credential, error) {
	return p.list(ctx, func(cred *credential.Credential) bool {
		return cred.OwnerIdentityID == ownerID
	})
}

func (p *Store) ListValid(ctx context.Context, now time.Time) ([]*credential.Credential, error) {
	return p.list(ctx, func(cred *credential.Credential) bool {
		return cred.IsValidAt(now)
	})
}

// Delete removes the credential. S3 deletes are idempotent, so the object is looked up first.
func (p *Store) Delete(ctx context.Context, id string) error {
	key := p.resolveKey(id)

	_, err := p.s3Client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return walleterr.ErrDataNotFound
		}

		return fmt.Errorf("failed to look up credential in S3: %w", err)
	}

	_, err = p.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete credential from S3: %w", err)
	}

	return nil
}

func (p *Store) get(ctx context.Context, key string) (*credential.Credential, error) {
	res, err := p.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, walleterr.ErrDataNotFound
		}

		return nil, fmt.Errorf("failed to get credential from S3: %w", err)
	}

	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to read credential body: %w", err)
	}

	cred := &credential.Credential{}
	if err = json.Unmarshal(b, cred); err != nil {
		return nil, fmt.Errorf("unmarshal credential %s: %w", key, err)
	}

	return cred, nil
}

func (p *Store) list(
	ctx context.Context,
	keep func(cred *credential.Credential) bool,
) ([]*credential.Credential, error) {
	var keys []string

	paginator := s3.NewListObjectsV2Paginator(p.s3Client, &s3.ListObjectsV2Input{
		Bucket: aws.String(p.bucket),
		Prefix: aws.String(p.prefix + credentialsDir),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list credentials in S3: %w", err)
		}

		keys = append(keys, lo.FilterMap(page.Contents, func(obj types.Object, _ int) (string, bool) {
			key := aws.ToString(obj.Key)

			return key, strings.HasSuffix(key, jsonExt)
		})...)
	}

	result := make([]*credential.Credential, 0, len(keys))

	for _, key := range keys {
		cred, err := p.get(ctx, key)
		if err != nil {
			// Deleted between list and get.
			if errors.Is(err, walleterr.ErrDataNotFound) {
				continue
			}

			return nil, err
		}

		if keep(cred) {
			result = append(result, cred)
		}
	}

	return result, nil
}

func (p *Store) resolveKey(id string) string {
	return p.prefix + credentialsDir + url.PathEscape(id) + jsonExt
}

func isNotFound(err error) bool {
	var (
		noSuchKey *types.NoSuchKey
		notFound  *types.NotFound
	)

	return errors.As(err, &noSuchKey) || errors.As(err, &notFound)
}
