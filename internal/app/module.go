package app

import (
	"isti-portal-core/internal/app/bootstrap"
	"isti-portal-core/internal/app/config"
	"isti-portal-core/internal/infrastructure/database"
	"isti-portal-core/internal/infrastructure/database/redis"
	"isti-portal-core/internal/infrastructure/logger"
	"isti-portal-core/internal/infrastructure/mailer"
	"isti-portal-core/internal/modules/annees"
	"isti-portal-core/internal/modules/audit"
	"isti-portal-core/internal/modules/auth"
	"isti-portal-core/internal/modules/classes"
	"isti-portal-core/internal/modules/departements"
	"isti-portal-core/internal/modules/filieres"
	"isti-portal-core/internal/modules/remontees"
	"isti-portal-core/internal/modules/settings"
	"isti-portal-core/internal/modules/statistics"
	"isti-portal-core/internal/modules/systeme"
	"isti-portal-core/internal/modules/users"
	"isti-portal-core/internal/shared/integrity"
	authmw "isti-portal-core/internal/shared/middleware/auth"

	"go.uber.org/fx"
)

// NewRedisKeyGenerator crée le générateur de clés Redis préfixées par
// l'environnement
func NewRedisKeyGenerator(cfg *config.Config) *redis.KeyGenerator {
	return redis.NewKeyGenerator(cfg.Environment)
}

var AppModule = fx.Options(
	// Configuration en premier
	fx.Provide(config.NewConfig),
	fx.Provide(config.NewPostgresConfig),
	fx.Provide(config.NewRedisConfig),
	fx.Provide(config.NewMongoConfig),

	// Utilitaires partagés
	fx.Provide(NewRedisKeyGenerator),
	fx.Provide(integrity.NewChecker),

	// Infrastructure
	database.Module,
	logger.Module,
	mailer.Module,

	// Garde d'accès
	authmw.Module,

	// Modules métier
	auth.Module,
	audit.Module,
	departements.Module,
	filieres.Module,
	classes.Module,
	annees.Module,
	users.Module,
	settings.Module,
	statistics.Module,
	remontees.Module,
	systeme.Module,

	// Bootstrap
	fx.Provide(bootstrap.NewSchemaManager),
	fx.Provide(bootstrap.NewSeedingManager),
	fx.Provide(bootstrap.NewSystem),

	// Router et application
	fx.Provide(NewRouter),
	fx.Provide(NewApplication),

	// Cycle de vie
	fx.Invoke(bootstrap.RegisterLifecycle),
	fx.Invoke((*Application).Start),
)
