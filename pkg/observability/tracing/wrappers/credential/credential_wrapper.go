/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package credential . Service

package credential

import (
	"context"
	"encoding/json"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/biowallet/pkg/observability/tracing/attributeutil"
	"github.com/trustbloc/biowallet/pkg/service/credential"
)

var _ Service = (*Wrapper)(nil) // make sure Wrapper implements credential.ServiceInterface

type Service credential.ServiceInterface

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) Issue(
	ctx context.Context,
	ownerID, credentialType, issuer string,
	claims json.RawMessage,
	validity credential.Validity,
) (*credential.Credential, error) {
	ctx, span := w.tracer.Start(ctx, "credential.Issue")
	defer span.End()

	span.SetAttributes(attribute.String("owner_id", ownerID))
	span.SetAttributes(attribute.String("credential_type", credentialType))
	span.SetAttributes(attribute.String("issuer", issuer))
	span.SetAttributes(attributeutil.JSON("validity", validity))

	res, err := w.svc.Issue(ctx, ownerID, credentialType, issuer, claims, validity)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("credential_id", res.ID))

	return res, nil
}

func (w *Wrapper) ListForIdentity(ctx context.Context, identityID string) ([]*credential.Credential, error) {
	ctx, span := w.tracer.Start(ctx, "credential.ListForIdentity")
	defer span.End()

	span.SetAttributes(attribute.String("identity_id", identityID))

	return w.svc.ListForIdentity(ctx, identityID)
}

func (w *Wrapper) GetByID(ctx context.Context, id string) (*credential.Credential, error) {
	ctx, span := w.tracer.Start(ctx, "credential.GetByID")
	defer span.End()

	span.SetAttributes(attribute.String("credential_id", id))

	return w.svc.GetByID(ctx, id)
}

func (w *Wrapper) DeleteByID(ctx context.Context, id string) error {
	ctx, span := w.tracer.Start(ctx, "credential.DeleteByID")
	defer span.End()

	span.SetAttributes(attribute.String("credential_id", id))

	return w.svc.DeleteByID(ctx, id)
}

func (w *Wrapper) ListValid(ctx context.Context, now time.Time) ([]*credential.Credential, error) {
	ctx, span := w.tracer.Start(ctx, "credential.ListValid")
	defer span.End()

	span.SetAttributes(attribute.String("now", now.UTC().Format(time.RFC3339)))

	return w.svc.ListValid(ctx, now)
}

func (w *Wrapper) Verify(ctx context.Context, cred *credential.Credential) (*credential.VerificationResult, error) {
	ctx, span := w.tracer.Start(ctx, "credential.Verify")
	defer span.End()

	span.SetAttributes(attributeutil.JSON("credential", cred, attributeutil.WithRedacted("claims"),
		attributeutil.WithRedacted("proof.signedMessage"), attributeutil.WithRedacted("proof.signatureValue")))

	res, err := w.svc.Verify(ctx, cred)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("status", string(res.Status)))

	return res, nil
}

func (w *Wrapper) VerifyByID(ctx context.Context, id string) (*credential.VerificationResult, error) {
	ctx, span := w.tracer.Start(ctx, "credential.VerifyByID")
	defer span.End()

	span.SetAttributes(attribute.String("credential_id", id))

	res, err := w.svc.VerifyByID(ctx, id)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("status", string(res.Status)))

	return res, nil
}
