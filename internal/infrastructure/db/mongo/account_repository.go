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

const collectionAccounts = "accounts"

type AccountRepository struct {
	col *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{col: db.Collection(collectionAccounts)}
}

type accountDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Surname      string             `bson:"surname"`
	Username     string             `bson:"username"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	Role         string             `bson:"role"`
	Active       bool               `bson:"active"`
	LoginRetries int                `bson:"login_retries"`
}

func toAccountDoc(a *domain.Account) accountDoc {
	return accountDoc{
		Name:         a.Name,
		Surname:      a.Surname,
		Username:     a.Username,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Role:         a.Role,
		Active:       a.Active,
		LoginRetries: a.LoginRetries,
	}
}

func (d accountDoc) toDomain() *domain.Account {
	return &domain.Account{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Surname:      d.Surname,
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Role:         d.Role,
		Active:       d.Active,
		LoginRetries: d.LoginRetries,
	}
}

// translateDuplicateKey maps a Mongo duplicate-key error to the domain
// conflict matching the unique index that collided.
func translateDuplicateKey(err error) error {
	if !mongo.IsDuplicateKeyError(err) {
		return err
	}
	msg := err.Error()
	if strings.Contains(msg, "username_1") {
		return domain.ErrUsernameDuplicated
	}
	if strings.Contains(msg, "email_1") {
		return domain.ErrEmailDuplicated
	}
	return err
}

func (r *AccountRepository) Create(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, toAccountDoc(a))
	if err != nil {
		if dup := translateDuplicateKey(err); dup != err {
			return nil, dup
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}

	created := *a
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc accountDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return doc.toDomain(), nil
}

// FindByUsername performs a case-sensitive exact match.
func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc accountDoc
	if err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account by username: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AccountRepository) Update(ctx context.Context, a *domain.Account) error {
	oid, err := primitive.ObjectIDFromHex(a.ID)
	if err != nil {
		return domain.ErrAccountNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, toAccountDoc(a))
	if err != nil {
		if dup := translateDuplicateKey(err); dup != err {
			return dup
		}
		return fmt.Errorf("update account: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// Filter returns one page of accounts plus the total matching count.
// Name matches name, surname, or the "name surname" concatenation,
// case-insensitively.
func (r *AccountRepository) Filter(ctx context.Context, f ports.AccountFilter) ([]*domain.Account, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if f.Name != "" {
		pattern := regexp.QuoteMeta(strings.TrimSpace(f.Name))
		re := primitive.Regex{Pattern: pattern, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": re},
			bson.M{"surname": re},
			bson.M{"$expr": bson.M{"$regexMatch": bson.M{
				"input":   bson.M{"$concat": bson.A{"$name", " ", "$surname"}},
				"regex":   pattern,
				"options": "i",
			}}},
		}
	}
	if f.Username != "" {
		filter["username"] = primitive.Regex{Pattern: regexp.QuoteMeta(strings.TrimSpace(f.Username)), Options: "i"}
	}
	if f.Active != nil {
		filter["active"] = *f.Active
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count accounts: %w", err)
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(f.PageSize * (f.Page - 1))).
		SetLimit(int64(f.PageSize))

	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("find accounts: %w", err)
	}
	defer cur.Close(ctx)

	var accounts []*domain.Account
	for cur.Next(ctx) {
		var doc accountDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode account: %w", err)
		}
		accounts = append(accounts, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate accounts: %w", err)
	}
	return accounts, total, nil
}

// EnsureIndexes creates the unique username/email indexes. The index
// names (username_1, email_1) are what duplicate-key translation keys on.
func (r *AccountRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
