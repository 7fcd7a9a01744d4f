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

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

const startupsCollection = "startups"

// StartupRepository implements ports.StartupRepository using MongoDB.
// Startups persist directly through the domain struct's bson tags.
type StartupRepository struct {
	coll *mongo.Collection
}

func NewStartupRepository(db *mongo.Database) *StartupRepository {
	return &StartupRepository{coll: db.Collection(startupsCollection)}
}

func (r *StartupRepository) Create(ctx context.Context, s *domain.Startup) (*domain.Startup, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	stored := *s
	stored.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, &stored); err != nil {
		return nil, fmt.Errorf("insert startup: %w", err)
	}
	return &stored, nil
}

func (r *StartupRepository) GetByID(ctx context.Context, id string) (*domain.Startup, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Startup
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStartupNotFound
		}
		return nil, fmt.Errorf("find startup: %w", err)
	}
	return &s, nil
}

// List returns startups matching filter, newest first. Filter keys are ANDed;
// zero values contribute nothing to the query.
func (r *StartupRepository) List(ctx context.Context, filter ports.StartupFilter) ([]*domain.Startup, error) {
	query := bson.M{}
	if filter.Industry != "" {
		query["industry"] = filter.Industry
	}
	if filter.FundingStage != "" {
		query["funding_stage"] = filter.FundingStage
	}
	if filter.Location != "" {
		query["location"] = filter.Location
	}
	if len(filter.Tags) > 0 {
		query["tags"] = bson.M{"$in": filter.Tags}
	}
	if filter.FundingMin > 0 {
		query["funding_max"] = bson.M{"$gte": filter.FundingMin}
	}
	if filter.FundingMax > 0 {
		query["funding_min"] = bson.M{"$lte": filter.FundingMax}
	}
	return r.find(ctx, query, bson.D{{Key: "created_at", Value: -1}})
}

func (r *StartupRepository) ListByOwner(ctx context.Context, userID string) ([]*domain.Startup, error) {
	return r.find(ctx, bson.M{"user_id": userID}, bson.D{{Key: "created_at", Value: -1}})
}

func (r *StartupRepository) Update(ctx context.Context, id string, update ports.StartupUpdate) (*domain.Startup, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Tagline != nil {
		set["tagline"] = *update.Tagline
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Industry != nil {
		set["industry"] = *update.Industry
	}
	if update.FundingMin != nil {
		set["funding_min"] = *update.FundingMin
	}
	if update.FundingMax != nil {
		set["funding_max"] = *update.FundingMax
	}
	if update.FundingStage != nil {
		set["funding_stage"] = *update.FundingStage
	}
	if update.Location != nil {
		set["location"] = *update.Location
	}
	if update.Website != nil {
		set["website"] = *update.Website
	}
	if update.PitchDeck != nil {
		set["pitch_deck"] = *update.PitchDeck
	}
	if update.PitchVideo != nil {
		set["pitch_video"] = *update.PitchVideo
	}
	if update.Logo != nil {
		set["logo"] = *update.Logo
	}
	if update.CoverImage != nil {
		set["cover_image"] = *update.CoverImage
	}
	if update.Tags != nil {
		set["tags"] = *update.Tags
	}
	if update.TeamMembers != nil {
		set["team_members"] = *update.TeamMembers
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}
	set["updated_at"] = time.Now().UTC()

	var s domain.Startup
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStartupNotFound
		}
		return nil, fmt.Errorf("update startup: %w", err)
	}
	return &s, nil
}

func (r *StartupRepository) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete startup: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *StartupRepository) find(ctx context.Context, query bson.M, sort bson.D) ([]*domain.Startup, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, query, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("list startups: %w", err)
	}
	defer cur.Close(ctx)

	startups := make([]*domain.Startup, 0)
	for cur.Next(ctx) {
		var s domain.Startup
		if err := cur.Decode(&s); err != nil {
			return nil, fmt.Errorf("decode startup: %w", err)
		}
		startups = append(startups, &s)
	}
	return startups, cur.Err()
}
