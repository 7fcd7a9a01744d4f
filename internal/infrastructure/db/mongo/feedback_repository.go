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
)

const feedbackCollection = "ai_feedback"

// FeedbackRepository implements ports.FeedbackRepository using MongoDB.
// The unique startup_id index keeps one active record per startup.
type FeedbackRepository struct {
	coll *mongo.Collection
}

func NewFeedbackRepository(db *mongo.Database) *FeedbackRepository {
	return &FeedbackRepository{coll: db.Collection(feedbackCollection)}
}

// Upsert replaces the startup's feedback, or creates it when absent.
func (r *FeedbackRepository) Upsert(ctx context.Context, f *domain.PitchFeedback) (*domain.PitchFeedback, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var stored domain.PitchFeedback
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"startup_id": f.StartupID},
		bson.M{
			"$set": bson.M{
				"clarity":       f.Clarity,
				"market_need":   f.MarketNeed,
				"team_strength": f.TeamStrength,
				"overall_score": f.OverallScore,
				"suggestion":    f.Suggestion,
				"swot_analysis": f.Swot,
				"created_at":    f.CreatedAt.UTC(),
			},
			"$setOnInsert": bson.M{"_id": primitive.NewObjectID().Hex()},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&stored)
	if err != nil {
		return nil, fmt.Errorf("upsert ai feedback: %w", err)
	}
	return &stored, nil
}

func (r *FeedbackRepository) GetByStartup(ctx context.Context, startupID string) (*domain.PitchFeedback, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var f domain.PitchFeedback
	if err := r.coll.FindOne(ctx, bson.M{"startup_id": startupID}).Decode(&f); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFeedbackNotFound
		}
		return nil, fmt.Errorf("find ai feedback: %w", err)
	}
	return &f, nil
}

func (r *FeedbackRepository) DeleteByStartup(ctx context.Context, startupID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"startup_id": startupID})
	if err != nil {
		return false, fmt.Errorf("delete ai feedback: %w", err)
	}
	return res.DeletedCount > 0, nil
}
