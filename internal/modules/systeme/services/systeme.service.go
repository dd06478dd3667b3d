package services

import (
	"context"

	"isti-portal-core/internal/app/config"
	"isti-portal-core/internal/infrastructure/database/mongodb"
	"isti-portal-core/internal/infrastructure/database/postgres"
	"isti-portal-core/internal/infrastructure/database/redis"
)

const Version = "1.0.0"

// Info état de la plateforme pour l'écran d'administration
type Info struct {
	Environnement string            `json:"environnement"`
	Version       string            `json:"version"`
	Stockage      map[string]string `json:"stockage"`
}

// SystemeService état des dépendances d'infrastructure
type SystemeService struct {
	cfg   *config.Config
	pg    *postgres.Client
	redis *redis.Client
	mongo *mongodb.Client
}

func NewSystemeService(cfg *config.Config, pg *postgres.Client, r *redis.Client, m *mongodb.Client) *SystemeService {
	return &SystemeService{
		cfg:   cfg,
		pg:    pg,
		redis: r,
		mongo: m,
	}
}

// Info interroge chaque magasin. Un magasin injoignable est signalé
// dans la réponse, jamais en erreur HTTP : l'écran système sert
// justement à voir ce qui est tombé.
func (s *SystemeService) Info(ctx context.Context) Info {
	stockage := map[string]string{
		"postgres": statut(s.pg.HealthCheck(ctx)),
		"redis":    statut(s.redis.Ping(ctx)),
		"mongodb":  statut(s.mongo.Ping(ctx)),
	}

	return Info{
		Environnement: s.cfg.Environment,
		Version:       Version,
		Stockage:      stockage,
	}
}

func statut(err error) string {
	if err != nil {
		return "indisponible"
	}
	return "ok"
}
