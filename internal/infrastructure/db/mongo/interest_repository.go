package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

const interestsCollection = "interests"

// InterestRepository implements ports.InterestRepository using MongoDB.
// The unique (investor_id, startup_id) index enforces one record per pair.
type InterestRepository struct {
	coll *mongo.Collection
}

func NewInterestRepository(db *mongo.Database) *InterestRepository {
	return &InterestRepository{coll: db.Collection(interestsCollection)}
}

func (r *InterestRepository) Create(ctx context.Context, i *domain.Interest) (*domain.Interest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	stored := *i
	stored.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, &stored); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrInterestExists
		}
		return nil, fmt.Errorf("insert interest: %w", err)
	}
	return &stored, nil
}

func (r *InterestRepository) GetByID(ctx context.Context, id string) (*domain.Interest, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *InterestRepository) GetByPair(ctx context.Context, investorID, startupID string) (*domain.Interest, error) {
	return r.findOne(ctx, bson.M{"investor_id": investorID, "startup_id": startupID})
}

func (r *InterestRepository) ListByInvestor(ctx context.Context, investorID string) ([]*domain.Interest, error) {
	return r.find(ctx, bson.M{"investor_id": investorID})
}

func (r *InterestRepository) ListByStartup(ctx context.Context, startupID string) ([]*domain.Interest, error) {
	return r.find(ctx, bson.M{"startup_id": startupID})
}

func (r *InterestRepository) Update(ctx context.Context, id string, update ports.InterestUpdate) (*domain.Interest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{}
	if update.Notes != nil {
		set["notes"] = *update.Notes
	}
	if update.Feedback != nil {
		set["feedback"] = *update.Feedback
	}
	if update.Status != nil {
		set["status"] = string(*update.Status)
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	var i domain.Interest
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&i)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInterestNotFound
		}
		return nil, fmt.Errorf("update interest: %w", err)
	}
	return &i, nil
}

func (r *InterestRepository) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete interest: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *InterestRepository) DeleteByStartup(ctx context.Context, startupID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"startup_id": startupID})
	if err != nil {
		return 0, fmt.Errorf("delete interests by startup: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *InterestRepository) findOne(ctx context.Context, filter bson.M) (*domain.Interest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var i domain.Interest
	if err := r.coll.FindOne(ctx, filter).Decode(&i); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInterestNotFound
		}
		return nil, fmt.Errorf("find interest: %w", err)
	}
	return &i, nil
}

func (r *InterestRepository) find(ctx context.Context, filter bson.M) ([]*domain.Interest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list interests: %w", err)
	}
	defer cur.Close(ctx)

	interests := make([]*domain.Interest, 0)
	for cur.Next(ctx) {
		var i domain.Interest
		if err := cur.Decode(&i); err != nil {
			return nil, fmt.Errorf("decode interest: %w", err)
		}
		interests = append(interests, &i)
	}
	return interests, cur.Err()
}
