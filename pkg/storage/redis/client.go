/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

const defaultTimeout = 15 * time.Second

type clientOpts struct {
	password      string
	timeout       time.Duration
	traceProvider trace.TracerProvider
}

// ClientOpt configures the Redis client.
type ClientOpt func(opts *clientOpts)

// WithPassword authenticates the connection.
func WithPassword(password string) ClientOpt {
	return func(opts *clientOpts) {
		opts.password = password
	}
}

// WithTraceProvider traces every Redis command.
func WithTraceProvider(traceProvider trace.TracerProvider) ClientOpt {
	return func(opts *clientOpts) {
		opts.traceProvider = traceProvider
	}
}

// WithTimeout bounds the connection check and every operation run under ContextWithTimeout.
func WithTimeout(timeout time.Duration) ClientOpt {
	return func(opts *clientOpts) {
		opts.timeout = timeout
	}
}

// Client is the Redis connection shared by the nonce registry and the distributed locker.
type Client struct {
	client  redis.UniversalClient
	timeout time.Duration
}

// New connects to addrs. Two or more addresses select a cluster client.
func New(addrs []string, opts ...ClientOpt) (*Client, error) {
	opt := &clientOpts{timeout: defaultTimeout}

	for _, f := range opts {
		f(opt)
	}

	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:                 addrs,
		Password:              opt.password,
		ContextTimeoutEnabled: true,
	})

	if opt.traceProvider != nil {
		if err := redisotel.InstrumentTracing(client, redisotel.WithTracerProvider(opt.traceProvider)); err != nil {
			return nil, fmt.Errorf("instrument with tracing: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), opt.timeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{client: client, timeout: opt.timeout}, nil
}

// ContextWithTimeout derives a context bounded by the client timeout.
func (c *Client) ContextWithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.timeout)
}

// API exposes the underlying client.
func (c *Client) API() redis.UniversalClient {
	return c.client
}

// Close closes the connection.
func (c *Client) Close() error {
	return c.client.Close()
}
