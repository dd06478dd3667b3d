package services

import (
	"context"
	"fmt"

	"isti-portal-core/internal/infrastructure/database/mongodb"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// JournalService consultation du journal d'audit (écran admin, lecture seule)
type JournalService struct {
	client *mongodb.Client
}

func NewJournalService(client *mongodb.Client) *JournalService {
	return &JournalService{client: client}
}

// ListRecent dernières entrées, les plus récentes d'abord
func (s *JournalService) ListRecent(ctx context.Context, limit int64) ([]Entry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.client.Collection(mongodb.AuditCollection).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("lecture du journal: %w", err)
	}
	defer cursor.Close(ctx)

	entries := []Entry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("lecture du journal: %w", err)
	}

	return entries, nil
}

// ListByUser entrées d'un utilisateur donné
func (s *JournalService) ListByUser(ctx context.Context, userID string, limit int64) ([]Entry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.client.Collection(mongodb.AuditCollection).Find(ctx, bson.D{{Key: "user_id", Value: userID}}, opts)
	if err != nil {
		return nil, fmt.Errorf("lecture du journal: %w", err)
	}
	defer cursor.Close(ctx)

	entries := []Entry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("lecture du journal: %w", err)
	}

	return entries, nil
}
