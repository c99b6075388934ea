package mongo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"maasaicraft.co.ke/shop/api/pkg/global"
	"maasaicraft.co.ke/shop/api/pkg/models"
)

var ErrProductNotFound = errors.New("product not found")

var nowFunc = time.Now

func GetAllProducts(ctx context.Context) ([]*models.Product, error) {
	collection := GetCollection("products")

	cursor, err := collection.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []*models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func GetProductsByCategory(ctx context.Context, category string) ([]*models.Product, error) {
	collection := GetCollection("products")

	cursor, err := collection.Find(ctx, bson.D{{Key: "category", Value: category}},
		options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []*models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func GetProductByID(ctx context.Context, id int) (*models.Product, error) {
	collection := GetCollection("products")

	var product models.Product
	err := collection.FindOne(ctx, bson.D{{Key: "id", Value: id}}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// GetCategories returns the distinct product categories for the storefront
// filter row.
func GetCategories(ctx context.Context) ([]string, error) {
	collection := GetCollection("products")

	var categories []string
	if err := collection.Distinct(ctx, "category", bson.D{}).Decode(&categories); err != nil {
		return nil, fmt.Errorf("distinct categories: %w", err)
	}
	return categories, nil
}

// CreateProduct inserts an admin-added product, assigning the next numeric
// product id.
func CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	collection := GetCollection("products")

	nextID, err := nextProductID(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("allocate product id: %w", err)
	}

	product := req.ToProduct(nextID)
	if _, err := collection.InsertOne(ctx, product); err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return product, nil
}

func nextProductID(ctx context.Context, collection *mongo.Collection) (int, error) {
	var top models.Product
	err := collection.FindOne(ctx, bson.D{},
		options.FindOne().SetSort(bson.D{{Key: "id", Value: -1}})).Decode(&top)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 1, nil
		}
		return 0, err
	}
	return top.ID + 1, nil
}

// AdjustStock applies a relative stock change, floored at zero, and returns
// the updated product.
func AdjustStock(ctx context.Context, id, delta int) (*models.Product, error) {
	collection := GetCollection("products")

	product, err := GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	newStock := product.InStock + delta
	if newStock < 0 {
		newStock = 0
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "in_stock", Value: newStock},
		{Key: "updated_at", Value: bson.NewDateTimeFromTime(nowFunc())},
	}}}

	var updated models.Product
	err = collection.FindOneAndUpdate(ctx, bson.D{{Key: "id", Value: id}}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func CountProducts(ctx context.Context) (int64, error) {
	collection := GetCollection("products")
	return collection.CountDocuments(ctx, bson.D{})
}

// SeedCatalogOnStartup loads the default Maasai Craft catalog when the
// products collection is empty.
func SeedCatalogOnStartup() {
	ctx, cancel := global.GetDefaultTimer()
	defer cancel()

	count, err := CountProducts(ctx)
	if err != nil {
		log.Printf("Warning: could not count products for seeding: %v", err)
		return
	}
	if count > 0 {
		return
	}

	collection := GetCollection("products")
	docs := make([]interface{}, 0, len(defaultCatalog))
	for i := range defaultCatalog {
		product := defaultCatalog[i]
		product.SetTimestamps()
		docs = append(docs, product)
	}
	if _, err := collection.InsertMany(ctx, docs); err != nil {
		log.Printf("Warning: failed to seed product catalog: %v", err)
		return
	}
	log.Printf("Seeded product catalog with %d products", len(docs))
}
