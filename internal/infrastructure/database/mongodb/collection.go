package mongodb

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const AuditCollection = "journal_audit"

type CollectionManager struct {
	client *Client
}

func NewCollectionManager(client *Client) *CollectionManager {
	return &CollectionManager{client: client}
}

// EnsureAuditCollection crée la collection du journal d'audit si absente.
// Le journal est strictement append-only : aucun flux applicatif ne met à
// jour ni ne supprime un document.
func (cm *CollectionManager) EnsureAuditCollection(ctx context.Context) error {
	validator := bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"user_id", "action", "table_cible", "created_at"},
			"properties": bson.M{
				"user_id": bson.M{
					"bsonType":    "string",
					"description": "Utilisateur à l'origine de l'action",
				},
				"action": bson.M{
					"bsonType":    "string",
					"description": "Description libre de l'action",
				},
				"table_cible": bson.M{
					"bsonType":    "string",
					"description": "Entité affectée (departement, filiere, ...)",
				},
				"created_at": bson.M{
					"bsonType":    "date",
					"description": "Horodatage de l'action",
				},
			},
		},
	}

	opts := options.CreateCollection().SetValidator(validator)
	if err := cm.client.Database().CreateCollection(ctx, AuditCollection, opts); err != nil {
		// La collection existe déjà au deuxième démarrage
		if !strings.Contains(err.Error(), "already exists") {
			return fmt.Errorf("failed to create collection %s: %w", AuditCollection, err)
		}
	}

	indexes := cm.client.Collection(AuditCollection).Indexes()
	_, err := indexes.CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	return err
}
