package mongo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/retailatlas/store-locator/api/internal/domain"
	"github.com/retailatlas/store-locator/api/internal/query"
)

// StoreRepository implements application.StoreRepository using MongoDB.
type StoreRepository struct {
	collection *mongo.Collection
}

// NewStoreRepository creates a new Mongo-backed store repository.
func NewStoreRepository(db *mongo.Database, collectionName string) *StoreRepository {
	return &StoreRepository{collection: db.Collection(collectionName)}
}

// Find executes a query plan with pagination. Plain finds are sorted by
// creation time then id so pages stay stable under concurrent writes;
// proximity finds keep the engine's distance ordering.
func (r *StoreRepository) Find(ctx context.Context, plan query.Plan, paging query.Paging) ([]domain.Store, error) {
	if plan.MatchNone {
		return []domain.Store{}, nil
	}

	opts := options.Find().
		SetSkip(int64(paging.Skip)).
		SetLimit(int64(paging.Limit))
	if plan.Near == nil {
		opts.SetSort(bson.D{
			{Key: query.SortCreatedAtDesc, Value: -1},
			{Key: query.SortIDAsc, Value: 1},
		})
	}

	cursor, err := r.collection.Find(ctx, renderPlan(plan), opts)
	if err != nil {
		return nil, eris.Wrap(err, "mongo: find stores")
	}
	defer cursor.Close(ctx)

	stores := make([]domain.Store, 0)
	for cursor.Next(ctx) {
		var doc StoreDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, eris.Wrap(err, "mongo: decode store")
		}
		stores = append(stores, mapStoreDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, eris.Wrap(err, "mongo: cursor")
	}
	return stores, nil
}

// FindByID returns a single store by its identifier.
func (r *StoreRepository) FindByID(ctx context.Context, id string) (*domain.Store, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	var doc StoreDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, eris.Wrapf(domain.ErrNotFound, "mongo: store %s", id)
		}
		return nil, eris.Wrap(err, "mongo: find store")
	}
	store := mapStoreDocument(doc)
	return &store, nil
}

// SetClosed flips the closed flag, returning the updated record.
func (r *StoreRepository) SetClosed(ctx context.Context, id string, closed bool) (*domain.Store, error) {
	return r.findOneAndSet(ctx, id, bson.M{"closed": closed})
}

// ApplyUpdate applies a sparse partial update. Only the provided fields are
// written; absence never clears a stored value.
func (r *StoreRepository) ApplyUpdate(ctx context.Context, id string, update domain.StoreUpdate) (*domain.Store, error) {
	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.URL != nil {
		set["url"] = *update.URL
	}
	if update.Website != nil {
		set["website"] = *update.Website
	}
	if update.Social != nil {
		set["social"] = SocialDocument{
			Facebook:  update.Social.Facebook,
			Twitter:   update.Social.Twitter,
			Instagram: update.Social.Instagram,
			Pinterest: update.Social.Pinterest,
			YouTube:   update.Social.YouTube,
		}
	}
	return r.findOneAndSet(ctx, id, set)
}

func (r *StoreRepository) findOneAndSet(ctx context.Context, id string, set bson.M) (*domain.Store, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	set["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc StoreDocument
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, eris.Wrapf(domain.ErrNotFound, "mongo: store %s", id)
		}
		return nil, eris.Wrap(err, "mongo: update store")
	}
	store := mapStoreDocument(doc)
	return &store, nil
}

// InsertMany persists the ingested batch in a single bulk operation.
func (r *StoreRepository) InsertMany(ctx context.Context, stores []domain.Store) (int, error) {
	if len(stores) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	docs := make([]any, 0, len(stores))
	for _, store := range stores {
		docs = append(docs, buildStoreDocument(store, now))
	}

	result, err := r.collection.InsertMany(ctx, docs)
	if err != nil {
		// No compensating rollback: documents inserted before the
		// failure stay in place and the error is surfaced.
		return 0, eris.Wrap(err, "mongo: insert stores")
	}
	return len(result.InsertedIDs), nil
}

// Count returns the number of store records.
func (r *StoreRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, eris.Wrap(err, "mongo: count stores")
	}
	return count, nil
}

// parseObjectID validates the hex id; a malformed id can match no record.
func parseObjectID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, eris.Wrapf(domain.ErrNotFound, "mongo: invalid id %q", id)
	}
	return objectID, nil
}
