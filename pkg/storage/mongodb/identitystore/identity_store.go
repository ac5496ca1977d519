/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package identitystore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trustbloc/biowallet/pkg/service/identity"
	"github.com/trustbloc/biowallet/pkg/storage/mongodb"
	"github.com/trustbloc/biowallet/pkg/walleterr"
)

const (
	identityCollection = "identities"
	settingsCollection = "wallet_settings"
	selectionKey       = "selectedIdentity"
)

var _ identity.Store = (*Store)(nil)

type identityDocument struct {
	ID          string    `bson:"_id"`
	DisplayName string    `bson:"displayName"`
	KeyAlias    string    `bson:"keyAlias"`
	CreatedAt   time.Time `bson:"createdAt"`
}

type selectionDocument struct {
	ID         string `bson:"_id"`
	IdentityID string `bson:"identityId"`
}

// Store keeps identities and the selection pointer in MongoDB.
type Store struct {
	mongoClient *mongodb.Client
}

// NewStore creates Store and its indexes.
func NewStore(ctx context.Context, mongoClient *mongodb.Client) (*Store, error) {
	s := &Store{mongoClient: mongoClient}

	if err := s.migrate(ctx); err != nil {
		return nil, fmt.Errorf("create identity indexes: %w", err)
	}

	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	_, err := s.collection().Indexes().CreateMany(ctxWithTimeout, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "keyAlias", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "createdAt", Value: 1}},
		},
	})

	return err
}

func (s *Store) Create(ctx context.Context, item *identity.Identity) error {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	if _, err := s.collection().InsertOne(ctxWithTimeout, toDocument(item)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("identity %s already exists: %w", item.ID, err)
		}

		return fmt.Errorf("insert identity: %w", err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, id string) (*identity.Identity, error) {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	var doc identityDocument

	err := s.collection().FindOne(ctxWithTimeout, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, walleterr.ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("find identity: %w", err)
	}

	return fromDocument(&doc), nil
}

func (s *Store) List(ctx context.Context) ([]*identity.Identity, error) {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	cursor, err := s.collection().Find(ctxWithTimeout, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find identities: %w", err)
	}

	var docs []identityDocument

	if err = cursor.All(ctxWithTimeout, &docs); err != nil {
		return nil, fmt.Errorf("decode identities: %w", err)
	}

	return lo.Map(docs, func(doc identityDocument, _ int) *identity.Identity {
		return fromDocument(&doc)
	}), nil
}

func (s *Store) Update(ctx context.Context, item *identity.Identity) error {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	result, err := s.collection().ReplaceOne(ctxWithTimeout, bson.M{"_id": item.ID}, toDocument(item))
	if err != nil {
		return fmt.Errorf("replace identity: %w", err)
	}

	if result.MatchedCount == 0 {
		return walleterr.ErrDataNotFound
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	result, err := s.collection().DeleteOne(ctxWithTimeout, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete identity: %w", err)
	}

	if result.DeletedCount == 0 {
		return walleterr.ErrDataNotFound
	}

	return nil
}

func (s *Store) GetSelected(ctx context.Context) (string, error) {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	var doc selectionDocument

	err := s.settings().FindOne(ctxWithTimeout, bson.M{"_id": selectionKey}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", nil
	}

	if err != nil {
		return "", fmt.Errorf("find selection: %w", err)
	}

	return doc.IdentityID, nil
}

func (s *Store) SetSelected(ctx context.Context, id string) error {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	if id == "" {
		if _, err := s.settings().DeleteOne(ctxWithTimeout, bson.M{"_id": selectionKey}); err != nil {
			return fmt.Errorf("clear selection: %w", err)
		}

		return nil
	}

	_, err := s.settings().ReplaceOne(ctxWithTimeout, bson.M{"_id": selectionKey},
		selectionDocument{ID: selectionKey, IdentityID: id}, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("set selection: %w", err)
	}

	return nil
}

func (s *Store) collection() *mongo.Collection {
	return s.mongoClient.Database().Collection(identityCollection)
}

func (s *Store) settings() *mongo.Collection {
	return s.mongoClient.Database().Collection(settingsCollection)
}

func toDocument(item *identity.Identity) *identityDocument {
	return &identityDocument{
		ID:          item.ID,
		DisplayName: item.DisplayName,
		KeyAlias:    item.KeyAlias,
		CreatedAt:   item.CreatedAt.UTC(),
	}
}

func fromDocument(doc *identityDocument) *identity.Identity {
	return &identity.Identity{
		ID:          doc.ID,
		DisplayName: doc.DisplayName,
		KeyAlias:    doc.KeyAlias,
		CreatedAt:   doc.CreatedAt.UTC(),
	}
}
