package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const PredictionSnapshotsCollection = "prediction_snapshots"

func createIndexes() {
	createPredictionSnapshotsIndexes()
}

func createPredictionSnapshotsIndexes() {
	snapshotsCollection := GetCollection(PredictionSnapshotsCollection)
	_, err := snapshotsCollection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "agencytag", Value: 1},
				{Key: "routetag", Value: 1},
				{Key: "stoptag", Value: 1},
			},
		},
		{
			Keys: bson.D{{Key: "recordedat", Value: 1}},
		},
	}, options.CreateIndexes())
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}
