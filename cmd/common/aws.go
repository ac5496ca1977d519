/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package common

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
)

// AWSParameters selects the AWS region and, for local stacks, a custom endpoint per service.
type AWSParameters struct {
	Region    string
	Endpoints map[string]string
}

// LoadAWSConfig loads the default AWS config chain and overrides endpoints of the listed services.
func LoadAWSConfig(ctx context.Context, params *AWSParameters) (*aws.Config, error) {
	var opts []func(*awsconfig.LoadOptions) error

	if params.Region != "" {
		opts = append(opts, awsconfig.WithRegion(params.Region))
	}

	if len(params.Endpoints) > 0 {
		opts = append(opts, awsconfig.WithEndpointResolverWithOptions(prepareResolver(params.Endpoints)))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &cfg, nil
}

func prepareResolver(endpoints map[string]string) aws.EndpointResolverWithOptionsFunc {
	return func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
		if endpoint, ok := endpoints[service]; ok && endpoint != "" {
			return aws.Endpoint{
				URL:               endpoint,
				SigningRegion:     region,
				HostnameImmutable: true,
			}, nil
		}

		return aws.Endpoint{}, &aws.EndpointNotFoundError{}
	}
}
