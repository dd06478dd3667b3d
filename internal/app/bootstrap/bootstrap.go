package bootstrap

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// System enchaîne les étapes de démarrage : schéma puis données
// initiales. La collection d'audit Mongo est gérée par le module
// mongodb lui-même.
type System struct {
	schema  *SchemaManager
	seeding *SeedingManager
	logger  *zap.Logger
}

func NewSystem(schema *SchemaManager, seeding *SeedingManager, logger *zap.Logger) *System {
	return &System{
		schema:  schema,
		seeding: seeding,
		logger:  logger,
	}
}

func (s *System) Run(ctx context.Context) error {
	if err := s.schema.EnsureSchema(ctx); err != nil {
		return err
	}
	if err := s.seeding.Seed(ctx); err != nil {
		return err
	}
	s.logger.Info("bootstrap terminé")
	return nil
}

// RegisterLifecycle exécute le bootstrap avant l'acceptation des requêtes
func RegisterLifecycle(lc fx.Lifecycle, system *System) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return system.Run(ctx)
		},
	})
}
