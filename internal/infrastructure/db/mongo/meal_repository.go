package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nutrilink/nutrition-system/internal/core/domain"
)

const collectionMeals = "meals"

// MealRepository implements ports.MealRepository using MongoDB.
type MealRepository struct {
	col *mongo.Collection
}

func NewMealRepository(db *mongo.Database) *MealRepository {
	return &MealRepository{col: db.Collection(collectionMeals)}
}

func (r *MealRepository) Insert(ctx context.Context, meal *domain.Meal) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, meal)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateMeal
		}
		return err
	}
	return nil
}

// FindByID retrieves a meal by id. When userID is non-empty, the query is
// additionally scoped to the owner, so another user's meal id reads as absent.
func (r *MealRepository) FindByID(ctx context.Context, id string, userID string) (*domain.Meal, error) {
	filter := bson.M{"_id": id}
	if userID != "" {
		filter["user_id"] = userID
	}
	return r.findOne(ctx, filter)
}

// FindByIdempotencyKey retrieves the owner's meal captured under key. The
// filter carries user_id so one user's key can never replay another's meal.
func (r *MealRepository) FindByIdempotencyKey(ctx context.Context, key, userID string) (*domain.Meal, error) {
	return r.findOne(ctx, bson.M{"idempotency_key": key, "user_id": userID})
}

func (r *MealRepository) findOne(ctx context.Context, filter bson.M) (*domain.Meal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var meal domain.Meal
	err := r.col.FindOne(ctx, filter).Decode(&meal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMealNotFound
		}
		return nil, err
	}
	return &meal, nil
}

// FindByUserAndRange returns meals with consumed_at in [from, to), oldest first.
func (r *MealRepository) FindByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.Meal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"user_id":     userID,
		"consumed_at": bson.M{"$gte": from.UTC(), "$lt": to.UTC()},
	}
	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "consumed_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var meals []*domain.Meal
	if err := cursor.All(ctx, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

// EnsureIndexes creates the indexes the meals collection relies on. The
// partial unique index on (user_id, idempotency_key) makes concurrent
// captures with the same key collide at the storage boundary; meals captured
// without a key are exempt from the constraint.
func (r *MealRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "consumed_at", Value: 1}}},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "idempotency_key", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{
					"idempotency_key": bson.M{"$gt": ""},
				}),
		},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
