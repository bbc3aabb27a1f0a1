package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/quickcart/commerce-platform/internal/core/domain"
)

const inventoryCollection = "inventory"

type InventoryRepository struct {
	coll *mongo.Collection
}

func NewInventoryRepository(db *mongo.Database) *InventoryRepository {
	return &InventoryRepository{coll: db.Collection(inventoryCollection)}
}

type mongoInventory struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ProductID string             `bson:"product_id"`
	Quantity  int                `bson:"quantity"`
	UpdatedAt int64              `bson:"updated_at"`
}

func (mi mongoInventory) toDomain() *domain.InventoryRecord {
	return &domain.InventoryRecord{
		ID:        mi.ID.Hex(),
		ProductID: mi.ProductID,
		Quantity:  mi.Quantity,
		UpdatedAt: unixToTime(mi.UpdatedAt),
	}
}

func (r *InventoryRepository) Create(ctx context.Context, rec *domain.InventoryRecord) (*domain.InventoryRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoInventory{
		ProductID: rec.ProductID,
		Quantity:  rec.Quantity,
		UpdatedAt: time.Now().UTC().Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert inventory record: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *InventoryRepository) FindByProductID(ctx context.Context, productID string) (*domain.InventoryRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mi mongoInventory
	if err := r.coll.FindOne(ctx, bson.M{"product_id": productID}).Decode(&mi); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInventoryNotFound
		}
		return nil, fmt.Errorf("find inventory record: %w", err)
	}
	return mi.toDomain(), nil
}

func (r *InventoryRepository) FindAll(ctx context.Context) ([]domain.InventoryRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer cursor.Close(ctx)

	var records []domain.InventoryRecord
	for cursor.Next(ctx) {
		var mi mongoInventory
		if err := cursor.Decode(&mi); err != nil {
			return nil, fmt.Errorf("decode inventory record: %w", err)
		}
		records = append(records, *mi.toDomain())
	}
	return records, cursor.Err()
}

func (r *InventoryRepository) UpdateQuantity(ctx context.Context, productID string, quantity int) (*domain.InventoryRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mi mongoInventory
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"product_id": productID},
		bson.M{"$set": bson.M{"quantity": quantity, "updated_at": time.Now().UTC().Unix()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&mi)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInventoryNotFound
		}
		return nil, fmt.Errorf("update inventory record: %w", err)
	}
	return mi.toDomain(), nil
}

func (r *InventoryRepository) DeleteByProductID(ctx context.Context, productID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"product_id": productID})
	if err != nil {
		return fmt.Errorf("delete inventory record: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrInventoryNotFound
	}
	return nil
}

// EnsureIndexes creates the unique product_id index; one record per product.
func (r *InventoryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "product_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
