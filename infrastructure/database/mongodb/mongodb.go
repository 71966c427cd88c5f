package mongodb

import (
	"context"
	"time"

	"github.com/vfg2006/transaction-dashboard-api/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	TransactionsCollection = "transactions"

	connectTimeout = 10 * time.Second
)

type Connection struct {
	Client *mongo.Client
	DB     *mongo.Database
}

func NewConnection(ctx context.Context, cfg config.Database) (*Connection, error) {
	opts := options.Client().
		ApplyURI(cfg.DSN).
		SetConnectTimeout(connectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return &Connection{
		Client: client,
		DB:     client.Database(cfg.Name),
	}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx, nil)
}

func (c *Connection) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	return c.Client.Disconnect(ctx)
}

// EnsureIndexes cria os índices usados pela listagem e pelas agregações
func (c *Connection) EnsureIndexes(ctx context.Context) error {
	_, err := c.DB.Collection(TransactionsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "productId", Value: 1}}},
		{Keys: bson.D{{Key: "dateOfSale", Value: 1}}},
	})
	return err
}
