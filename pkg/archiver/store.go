package archiver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/travigo/nextbus/pkg/database"
	"github.com/travigo/nextbus/pkg/elastic_client"
	"go.mongodb.org/mongo-driver/mongo"
)

type SnapshotStore interface {
	StoreSnapshots(ctx context.Context, snapshots []*PredictionSnapshot) error
}

type MongoStore struct {
	Collection *mongo.Collection
}

func NewMongoStore() *MongoStore {
	return &MongoStore{
		Collection: database.GetCollection(database.PredictionSnapshotsCollection),
	}
}

func (s *MongoStore) StoreSnapshots(ctx context.Context, snapshots []*PredictionSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	documents := make([]interface{}, 0, len(snapshots))
	for _, snapshot := range snapshots {
		documents = append(documents, snapshot)
	}

	_, err := s.Collection.InsertMany(ctx, documents)
	if err != nil {
		return fmt.Errorf("inserting %d prediction snapshots: %w", len(snapshots), err)
	}

	return nil
}

// ElasticStore queues snapshots on the shared bulk indexer, one index per month
type ElasticStore struct {
	IndexPrefix string
}

func (s *ElasticStore) IndexName(snapshot *PredictionSnapshot) string {
	return fmt.Sprintf("%s-%s", s.IndexPrefix, snapshot.RecordedAt.UTC().Format("2006-01"))
}

func (s *ElasticStore) StoreSnapshots(ctx context.Context, snapshots []*PredictionSnapshot) error {
	for _, snapshot := range snapshots {
		snapshotJSON, err := json.Marshal(snapshot)
		if err != nil {
			return err
		}

		elastic_client.IndexRequest(s.IndexName(snapshot), bytes.NewReader(snapshotJSON))
	}

	return nil
}
