package database

import (
	"isti-portal-core/internal/infrastructure/database/mongodb"
	"isti-portal-core/internal/infrastructure/database/postgres"
	"isti-portal-core/internal/infrastructure/database/redis"

	"go.uber.org/fx"
)

var Module = fx.Options(
	postgres.Module,
	redis.Module,
	mongodb.Module,
)
