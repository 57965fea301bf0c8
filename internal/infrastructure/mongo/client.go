package mongo

import (
	"context"
	"sync"

	"github.com/rotisserie/eris"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ClientProvider hands out one shared Mongo client, dialed lazily on first
// use. The sync.Once guard prevents concurrent duplicate initialization;
// the client is reused for the process lifetime.
type ClientProvider struct {
	uri    string
	once   sync.Once
	client *mongo.Client
	err    error
}

// NewClientProvider creates a provider for the given connection URI. No
// connection is made until Client is first called.
func NewClientProvider(uri string) *ClientProvider {
	return &ClientProvider{uri: uri}
}

// Client returns the shared client, connecting on first call.
func (p *ClientProvider) Client(ctx context.Context) (*mongo.Client, error) {
	p.once.Do(func() {
		opts := options.Client().
			ApplyURI(p.uri).
			SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
		client, err := mongo.Connect(ctx, opts)
		if err != nil {
			p.err = eris.Wrap(err, "mongo: connect")
			return
		}
		p.client = client
	})
	return p.client, p.err
}

// Disconnect closes the shared client if it was ever dialed.
func (p *ClientProvider) Disconnect(ctx context.Context) error {
	if p.client == nil {
		return nil
	}
	if err := p.client.Disconnect(ctx); err != nil {
		return eris.Wrap(err, "mongo: disconnect")
	}
	return nil
}

// EnsureIndexes creates the 2dsphere index proximity queries depend on.
// Index creation is idempotent, so this runs on every startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database, collectionName string) error {
	_, err := db.Collection(collectionName).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "location", Value: "2dsphere"}},
	})
	if err != nil {
		return eris.Wrap(err, "mongo: ensure location index")
	}
	return nil
}
