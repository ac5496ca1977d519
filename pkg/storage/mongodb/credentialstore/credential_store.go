/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credentialstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trustbloc/biowallet/pkg/service/credential"
	"github.com/trustbloc/biowallet/pkg/storage/mongodb"
	"github.com/trustbloc/biowallet/pkg/walleterr"
)

const (
	credentialCollection = "credentials"
	ownerFieldName       = "owner"
	expiresAtFieldName   = "expiresAt"
	issuedAtFieldName    = "issuedAt"
)

var _ credential.Store = (*Store)(nil)

type credentialDocument struct {
	ID     string `bson:"_id"`
	Type   string `bson:"type"`
	Issuer string `bson:"issuer"`
	// Claims are kept as the JSON text so the signed canonical form survives the round trip.
	Claims    string         `bson:"claims"`
	IssuedAt  time.Time      `bson:"issuedAt"`
	ExpiresAt *time.Time     `bson:"expiresAt,omitempty"`
	Owner     string         `bson:"owner"`
	Proof     *proofDocument `bson:"proof,omitempty"`
}

type proofDocument struct {
	Type               string    `bson:"type"`
	Created            time.Time `bson:"created"`
	VerificationMethod string    `bson:"verificationMethod"`
	ProofPurpose       string    `bson:"proofPurpose"`
	SignedMessage      []byte    `bson:"signedMessage"`
	SignatureValue     []byte    `bson:"signatureValue"`
}

// Store keeps credentials in MongoDB.
type Store struct {
	mongoClient *mongodb.Client
}

// NewStore creates Store and its indexes.
func NewStore(ctx context.Context, mongoClient *mongodb.Client) (*Store, error) {
	s := &Store{mongoClient: mongoClient}

	ctxWithTimeout, cancel := mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	_, err := s.collection().Indexes().CreateMany(ctxWithTimeout, []mongo.IndexModel{
		{Keys: bson.D{{Key: ownerFieldName, Value: 1}, {Key: issuedAtFieldName, Value: 1}}},
		{Keys: bson.D{{Key: expiresAtFieldName, Value: 1}}},
	})
	if err != nil {
		return nil, fmt.Errorf("create credential indexes: %w", err)
	}

	return s, nil
}

func (s *Store) Put(ctx context.Context, cred *credential.Credential) error {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	_, err := s.collection().ReplaceOne(ctxWithTimeout, bson.M{"_id": cred.ID}, toDocument(cred),
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("store credential: %w", err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, id string) (*credential.Credential, error) {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	var doc credentialDocument

	err := s.collection().FindOne(ctxWithTimeout, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, walleterr.ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("find credential: %w", err)
	}

	return fromDocument(&doc), nil
}

func (s *Store) ListByOwner(ctx context.Context, ownerID string) ([]*credential.Credential, error) {
	return s.find(ctx, bson.M{ownerFieldName: ownerID})
}

// ListValid matches expiresAt > now or no expiresAt at all.
func (s *Store) ListValid(ctx context.Context, now time.Time) ([]*credential.Credential, error) {
	return s.find(ctx, bson.M{
		"$or": bson.A{
			bson.M{expiresAtFieldName: bson.M{"$gt": now.UTC()}},
			bson.M{expiresAtFieldName: nil},
		},
	})
}

func (s *Store) Delete(ctx context.Context, id string) error {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	result, err := s.collection().DeleteOne(ctxWithTimeout, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}

	if result.DeletedCount == 0 {
		return walleterr.ErrDataNotFound
	}

	return nil
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]*credential.Credential, error) {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	cursor, err := s.collection().Find(ctxWithTimeout, filter,
		options.Find().SetSort(bson.D{{Key: issuedAtFieldName, Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find credentials: %w", err)
	}

	var docs []credentialDocument

	if err = cursor.All(ctxWithTimeout, &docs); err != nil {
		return nil, fmt.Errorf("decode credentials: %w", err)
	}

	return lo.Map(docs, func(doc credentialDocument, _ int) *credential.Credential {
		return fromDocument(&doc)
	}), nil
}

func (s *Store) collection() *mongo.Collection {
	return s.mongoClient.Database().Collection(credentialCollection)
}

func toDocument(cred *credential.Credential) *credentialDocument {
	doc := &credentialDocument{
		ID:       cred.ID,
		Type:     cred.Type,
		Issuer:   cred.Issuer,
		Claims:   string(cred.Claims),
		IssuedAt: cred.IssuedAt.UTC(),
		Owner:    cred.OwnerIdentityID,
	}

	if cred.ExpiresAt != nil {
		doc.ExpiresAt = lo.ToPtr(cred.ExpiresAt.UTC())
	}

	if p := cred.Proof; p != nil {
		doc.Proof = &proofDocument{
			Type:               p.Type,
			Created:            p.Created.UTC(),
			VerificationMethod: p.VerificationMethod,
			ProofPurpose:       p.ProofPurpose,
			SignedMessage:      p.SignedMessage,
			SignatureValue:     p.SignatureValue,
		}
	}

	return doc
}

func fromDocument(doc *credentialDocument) *credential.Credential {
	cred := &credential.Credential{
		ID:              doc.ID,
		Type:            doc.Type,
		Issuer:          doc.Issuer,
		Claims:          json.RawMessage(doc.Claims),
		IssuedAt:        doc.IssuedAt.UTC(),
		OwnerIdentityID: doc.Owner,
	}

	if doc.ExpiresAt != nil {
		cred.ExpiresAt = lo.ToPtr(doc.ExpiresAt.UTC())
	}

	if p := doc.Proof; p != nil {
		cred.Proof = &credential.Proof{
			Type:               p.Type,
			Created:            p.Created.UTC(),
			VerificationMethod: p.VerificationMethod,
			ProofPurpose:       p.ProofPurpose,
			SignedMessage:      p.SignedMessage,
			SignatureValue:     p.SignatureValue,
		}
	}

	return cred
}
