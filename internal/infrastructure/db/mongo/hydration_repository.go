package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nutrilink/nutrition-system/internal/core/domain"
)

const collectionWaterLogs = "water_logs"

// HydrationRepository implements ports.HydrationRepository using MongoDB.
type HydrationRepository struct {
	col *mongo.Collection
}

func NewHydrationRepository(db *mongo.Database) *HydrationRepository {
	return &HydrationRepository{col: db.Collection(collectionWaterLogs)}
}

func (r *HydrationRepository) Insert(ctx context.Context, log *domain.WaterLog) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, log)
	return err
}

// FindByUserAndRange returns logs with logged_at in [from, to), oldest first.
func (r *HydrationRepository) FindByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.WaterLog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"user_id":   userID,
		"logged_at": bson.M{"$gte": from.UTC(), "$lt": to.UTC()},
	}
	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "logged_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []*domain.WaterLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// EnsureIndexes creates the compound index used by range queries.
func (r *HydrationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "logged_at", Value: 1}},
	})
	return err
}
