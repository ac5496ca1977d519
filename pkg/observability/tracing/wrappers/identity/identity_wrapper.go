/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package identity . Service

package identity

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/biowallet/pkg/service/identity"
)

var _ Service = (*Wrapper)(nil) // make sure Wrapper implements identity.ServiceInterface

type Service identity.ServiceInterface

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) CreateIdentity(ctx context.Context, displayName string) (*identity.Identity, error) {
	ctx, span := w.tracer.Start(ctx, "identity.CreateIdentity")
	defer span.End()

	res, err := w.svc.CreateIdentity(ctx, displayName)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("identity_id", res.ID))

	return res, nil
}

func (w *Wrapper) ListIdentities(ctx context.Context) ([]*identity.Identity, error) {
	ctx, span := w.tracer.Start(ctx, "identity.ListIdentities")
	defer span.End()

	res, err := w.svc.ListIdentities(ctx)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("count", len(res)))

	return res, nil
}

func (w *Wrapper) GetIdentity(ctx context.Context, id string) (*identity.Identity, error) {
	ctx, span := w.tracer.Start(ctx, "identity.GetIdentity")
	defer span.End()

	span.SetAttributes(attribute.String("identity_id", id))

	return w.svc.GetIdentity(ctx, id)
}

func (w *Wrapper) GetSelected(ctx context.Context) (*identity.Identity, error) {
	ctx, span := w.tracer.Start(ctx, "identity.GetSelected")
	defer span.End()

	return w.svc.GetSelected(ctx)
}

func (w *Wrapper) Select(ctx context.Context, id string) error {
	ctx, span := w.tracer.Start(ctx, "identity.Select")
	defer span.End()

	span.SetAttributes(attribute.String("identity_id", id))

	return w.svc.Select(ctx, id)
}

func (w *Wrapper) Rename(ctx context.Context, id, displayName string) error {
	ctx, span := w.tracer.Start(ctx, "identity.Rename")
	defer span.End()

	span.SetAttributes(attribute.String("identity_id", id))

	return w.svc.Rename(ctx, id, displayName)
}

func (w *Wrapper) DeleteIdentity(ctx context.Context, id string) error {
	ctx, span := w.tracer.Start(ctx, "identity.DeleteIdentity")
	defer span.End()

	span.SetAttributes(attribute.String("identity_id", id))

	return w.svc.DeleteIdentity(ctx, id)
}
