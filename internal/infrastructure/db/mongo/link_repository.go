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

const collectionLinks = "links"

// LinkRepository implements ports.LinkRepository using MongoDB.
type LinkRepository struct {
	col *mongo.Collection
}

func NewLinkRepository(db *mongo.Database) *LinkRepository {
	return &LinkRepository{col: db.Collection(collectionLinks)}
}

// Save inserts a new link document. The partial unique index on the pair
// (see EnsureIndexes) rejects a second pending/accepted link for the same
// pair, closing the race between the service's existence check and the
// insert. The duplicate-key error maps to domain.ErrDuplicateLink.
func (r *LinkRepository) Save(ctx context.Context, link *domain.Link) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, link)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateLink
		}
		return err
	}
	return nil
}

func (r *LinkRepository) FindByID(ctx context.Context, id string) (*domain.Link, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var link domain.Link
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&link)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLinkNotFound
		}
		return nil, err
	}
	return &link, nil
}

// FindByPair retrieves the link for the pair whose status is in statuses.
// An empty statuses list matches any status.
func (r *LinkRepository) FindByPair(ctx context.Context, clientID, nutritionistID string, statuses ...domain.LinkStatus) (*domain.Link, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"client_id": clientID, "nutritionist_id": nutritionistID}
	if len(statuses) > 0 {
		values := make([]string, len(statuses))
		for i, s := range statuses {
			values[i] = string(s)
		}
		filter["status"] = bson.M{"$in": values}
	}

	var link domain.Link
	err := r.col.FindOne(ctx, filter).Decode(&link)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLinkNotFound
		}
		return nil, err
	}
	return &link, nil
}

func (r *LinkRepository) FindPendingByClientID(ctx context.Context, clientID string) ([]*domain.Link, error) {
	return r.findAll(ctx,
		bson.M{"client_id": clientID, "status": string(domain.LinkPending)},
		options.Find().SetSort(bson.D{{Key: "requested_at", Value: 1}}),
	)
}

// FindActiveByNutritionistID returns accepted links sorted by responded_at
// ascending, the order documented on the port.
func (r *LinkRepository) FindActiveByNutritionistID(ctx context.Context, nutritionistID string) ([]*domain.Link, error) {
	return r.findAll(ctx,
		bson.M{"nutritionist_id": nutritionistID, "status": string(domain.LinkAccepted)},
		options.Find().SetSort(bson.D{{Key: "responded_at", Value: 1}}),
	)
}

func (r *LinkRepository) findAll(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.Link, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var links []*domain.Link
	if err := cursor.All(ctx, &links); err != nil {
		return nil, err
	}
	return links, nil
}

// Update persists a transition with a compare-and-swap on the previous
// status. A link that was concurrently transitioned (or is already terminal)
// no longer matches the guard and the update is refused.
func (r *LinkRepository) Update(ctx context.Context, link *domain.Link, previous domain.LinkStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"status": string(link.Status)}
	if link.RespondedAt != nil {
		set["responded_at"] = link.RespondedAt.UTC()
	}
	if link.EndedAt != nil {
		set["ended_at"] = link.EndedAt.UTC()
	}

	filter := bson.M{"_id": link.ID, "status": string(previous)}
	res, err := r.col.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrLinkModified
	}
	return nil
}

// EnsureIndexes creates the indexes the links collection relies on, most
// importantly the partial unique index that enforces "at most one
// pending/accepted link per (client, nutritionist) pair".
func (r *LinkRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "client_id", Value: 1}, {Key: "nutritionist_id", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{
					"status": bson.M{"$in": []string{string(domain.LinkPending), string(domain.LinkAccepted)}},
				}),
		},
		{Keys: bson.D{{Key: "nutritionist_id", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "client_id", Value: 1}, {Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
