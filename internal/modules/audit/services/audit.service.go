package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Entry une ligne du journal d'audit, jamais modifiée après insertion
type Entry struct {
	UserID     string    `bson:"user_id" json:"user_id"`
	Action     string    `bson:"action" json:"action"`
	TableCible string    `bson:"table_cible" json:"table_cible"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

// Outcome résultat d'un enregistrement d'audit. L'action métier a déjà
// réussi quand Record est appelé ; Recorded=false signifie « action
// réussie, audit perdu », un état observable mais jamais bloquant.
type Outcome struct {
	Recorded bool
	Err      error
}

// DocumentInserter sous-ensemble de *mongo.Collection utilisé par le
// recorder, substituable en test.
type DocumentInserter interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

// Recorder journal d'audit best-effort : un échec d'écriture est
// journalisé puis avalé, il ne remonte jamais à l'utilisateur et
// n'annule jamais la mutation qui l'a déclenché.
type Recorder struct {
	col    DocumentInserter
	logger *zap.Logger
	now    func() time.Time
}

func NewRecorder(col DocumentInserter, logger *zap.Logger) *Recorder {
	return &Recorder{
		col:    col,
		logger: logger,
		now:    time.Now,
	}
}

// Record ajoute une ligne au journal : qui, quoi, quelle entité, quand
func (r *Recorder) Record(ctx context.Context, actorUserID, action, tableCible string) Outcome {
	entry := Entry{
		UserID:     actorUserID,
		Action:     action,
		TableCible: tableCible,
		CreatedAt:  r.now().UTC(),
	}

	if _, err := r.col.InsertOne(ctx, entry); err != nil {
		r.logger.Warn("échec écriture journal d'audit",
			zap.String("user_id", actorUserID),
			zap.String("action", action),
			zap.String("table_cible", tableCible),
			zap.Error(err),
		)
		return Outcome{Recorded: false, Err: err}
	}

	return Outcome{Recorded: true}
}
