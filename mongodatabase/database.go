package mongodatabase

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBConn struct {
	Collection *mongo.Collection
	Client     *mongo.Client
}

// New connects to the configured deployment and returns the movies collection
func (config *DBConfig) New(ctx context.Context) (*MongoDBConn, error) {
	clientOptions := options.Client().ApplyURI(config.Host).
		SetRetryReads(true).
		SetRetryWrites(true)
	if config.ConnectTimeout > 0 {
		clientOptions.SetConnectTimeout(config.ConnectTimeout).
			SetServerSelectionTimeout(config.ConnectTimeout)
	}

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, errors.Wrap(err, "unable to connect to mongo")
	}

	if err = client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(err, "error connecting mongo")
	}

	collection := client.Database(config.DBName).Collection(config.Collection)
	logrus.WithFields(logrus.Fields{
		"database":   config.DBName,
		"collection": collection.Name(),
	}).Debug("connected to mongo")

	return &MongoDBConn{Collection: collection, Client: client}, nil
}

// SearchIndexes returns the Atlas Search index view of the collection
func (c *MongoDBConn) SearchIndexes() *mongo.SearchIndexView {
	view := c.Collection.SearchIndexes()
	return &view
}

// Close disconnects the client
func (c *MongoDBConn) Close(ctx context.Context) error {
	if c == nil || c.Client == nil {
		return nil
	}
	return c.Client.Disconnect(ctx)
}
