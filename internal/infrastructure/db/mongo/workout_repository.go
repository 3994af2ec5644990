package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nutrilink/nutrition-system/internal/core/domain"
)

const collectionWorkouts = "workouts"

// WorkoutRepository implements ports.WorkoutRepository using MongoDB.
type WorkoutRepository struct {
	col *mongo.Collection
}

func NewWorkoutRepository(db *mongo.Database) *WorkoutRepository {
	return &WorkoutRepository{col: db.Collection(collectionWorkouts)}
}

func (r *WorkoutRepository) Insert(ctx context.Context, workout *domain.Workout) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, workout)
	return err
}

// ListRecentByUser returns up to limit workouts ordered by performed_at descending.
func (r *WorkoutRepository) ListRecentByUser(ctx context.Context, userID string, limit int) ([]*domain.Workout, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "performed_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var workouts []*domain.Workout
	if err := cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

// EnsureIndexes creates the compound index used by recent listings.
func (r *WorkoutRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "performed_at", Value: -1}},
	})
	return err
}
