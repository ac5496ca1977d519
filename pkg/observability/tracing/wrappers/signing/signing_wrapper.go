/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package signing . Service

package signing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/biowallet/pkg/observability/tracing/attributeutil"
	"github.com/trustbloc/biowallet/pkg/service/signing"
)

var _ Service = (*Wrapper)(nil) // make sure Wrapper implements signing.ServiceInterface

type Service signing.ServiceInterface

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) SignAsIdentity(
	ctx context.Context,
	identityID string,
	payload []byte,
	purpose signing.Purpose,
) (*signing.Signature, error) {
	ctx, span := w.tracer.Start(ctx, "signing.SignAsIdentity")
	defer span.End()

	span.SetAttributes(attribute.String("identity_id", identityID))
	span.SetAttributes(attribute.String("purpose", string(purpose)))
	span.SetAttributes(attributeutil.Digest("payload_sha256", payload))

	res, err := w.svc.SignAsIdentity(ctx, identityID, payload, purpose)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("nonce", res.Nonce))

	return res, nil
}

func (w *Wrapper) VerifySignature(ctx context.Context, sig *signing.Signature) error {
	ctx, span := w.tracer.Start(ctx, "signing.VerifySignature")
	defer span.End()

	span.SetAttributes(attributeutil.JSON("signature", sig,
		attributeutil.WithRedacted("signedMessage"), attributeutil.WithRedacted("value")))

	if err := w.svc.VerifySignature(ctx, sig); err != nil {
		return err
	}

	return nil
}
