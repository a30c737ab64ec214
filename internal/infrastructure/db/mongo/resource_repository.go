package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ofimatica/catalog-system/internal/core/domain"
	"github.com/ofimatica/catalog-system/internal/core/ports"
)

const collectionResources = "resources"

type ResourceRepository struct {
	col *mongo.Collection
}

func NewResourceRepository(db *mongo.Database) *ResourceRepository {
	return &ResourceRepository{col: db.Collection(collectionResources)}
}

type resourceDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Type        string             `bson:"type"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Author      string             `bson:"author"`
	Publication int                `bson:"publication"`
}

func toResourceDoc(r *domain.Resource) resourceDoc {
	return resourceDoc{
		Type:        string(r.Type),
		Name:        r.Name,
		Description: r.Description,
		Author:      r.Author,
		Publication: r.Publication,
	}
}

func (d resourceDoc) toDomain() *domain.Resource {
	return &domain.Resource{
		ID:          d.ID.Hex(),
		Type:        domain.ResourceType(d.Type),
		Name:        d.Name,
		Description: d.Description,
		Author:      d.Author,
		Publication: d.Publication,
	}
}

func (r *ResourceRepository) Create(ctx context.Context, res *domain.Resource) (*domain.Resource, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	inserted, err := r.col.InsertOne(ctx, toResourceDoc(res))
	if err != nil {
		return nil, fmt.Errorf("insert resource: %w", err)
	}

	created := *res
	created.ID = inserted.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ResourceRepository) FindByID(ctx context.Context, id string) (*domain.Resource, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrResourceNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc resourceDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrResourceNotFound
		}
		return nil, fmt.Errorf("find resource: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ResourceRepository) Update(ctx context.Context, res *domain.Resource) error {
	oid, err := primitive.ObjectIDFromHex(res.ID)
	if err != nil {
		return domain.ErrResourceNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, toResourceDoc(res))
	if err != nil {
		return fmt.Errorf("update resource: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrResourceNotFound
	}
	return nil
}

func (r *ResourceRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrResourceNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete resource: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrResourceNotFound
	}
	return nil
}

// Filter returns one page of resources plus the total matching count,
// ordered by identifier so pages are stable across requests.
func (r *ResourceRepository) Filter(ctx context.Context, f ports.ResourceFilter) ([]*domain.Resource, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if f.Name != "" {
		filter["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(strings.TrimSpace(f.Name)), Options: "i"}
	}
	if f.Type != "" {
		filter["type"] = string(f.Type)
	}
	if f.Year != nil {
		filter["publication"] = *f.Year
	}
	if f.Author != "" {
		filter["author"] = primitive.Regex{Pattern: regexp.QuoteMeta(strings.TrimSpace(f.Author)), Options: "i"}
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count resources: %w", err)
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(f.PageSize * (f.Page - 1))).
		SetLimit(int64(f.PageSize))

	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("find resources: %w", err)
	}
	defer cur.Close(ctx)

	var resources []*domain.Resource
	for cur.Next(ctx) {
		var doc resourceDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode resource: %w", err)
		}
		resources = append(resources, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate resources: %w", err)
	}
	return resources, total, nil
}

// EnsureIndexes creates the type index used by catalog filtering.
func (r *ResourceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "type", Value: 1}}},
		{Keys: bson.D{{Key: "publication", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
