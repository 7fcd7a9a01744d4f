package mongo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func collectionIndexes() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		startupsCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
			{Keys: bson.D{{Key: "industry", Value: 1}}},
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
		},
		interestsCollection: {
			{
				Keys:    bson.D{{Key: "investor_id", Value: 1}, {Key: "startup_id", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "startup_id", Value: 1}}},
		},
		feedbackCollection: {
			{Keys: bson.D{{Key: "startup_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		notificationsCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		eventsCollection: {
			{Keys: bson.D{{Key: "event_date", Value: 1}}},
		},
	}
}
