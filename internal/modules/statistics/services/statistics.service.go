package services

import (
	"context"
	"fmt"

	"isti-portal-core/internal/infrastructure/database/postgres"
	"isti-portal-core/internal/modules/statistics/dto"
	"isti-portal-core/internal/modules/statistics/queries"
)

// StatisticsService agrégats en lecture seule pour les tableaux de bord.
// Des tables vides donnent des zéros, jamais d'erreur.
type StatisticsService struct {
	db *postgres.Client
}

func NewStatisticsService(db *postgres.Client) *StatisticsService {
	return &StatisticsService{db: db}
}

func (s *StatisticsService) Dashboard(ctx context.Context) (*dto.Dashboard, error) {
	var d dto.Dashboard

	if err := s.db.QueryRow(ctx, queries.StatsQueries.GlobalCounts).Scan(
		&d.Effectifs.NbUtilisateurs,
		&d.Effectifs.NbDepartements,
		&d.Effectifs.NbFilieres,
		&d.Effectifs.NbClasses,
		&d.Effectifs.NbAnnees,
	); err != nil {
		return nil, fmt.Errorf("effectifs globaux: %w", err)
	}

	roles, err := s.roleDistribution(ctx)
	if err != nil {
		return nil, err
	}
	d.ParRole = roles

	deps, err := s.departementStats(ctx)
	if err != nil {
		return nil, err
	}
	d.ParDepartement = deps

	bands, err := s.gradeBands(ctx)
	if err != nil {
		return nil, err
	}
	d.TranchesDeNotes = bands

	if err := s.db.QueryRow(ctx, queries.StatsQueries.AverageGrade).Scan(&d.MoyenneGenerale); err != nil {
		return nil, fmt.Errorf("moyenne générale: %w", err)
	}

	return &d, nil
}

func (s *StatisticsService) roleDistribution(ctx context.Context) ([]dto.RoleCount, error) {
	rows, err := s.db.Query(ctx, queries.StatsQueries.RoleDistribution)
	if err != nil {
		return nil, fmt.Errorf("répartition par rôle: %w", err)
	}
	defer rows.Close()

	counts := []dto.RoleCount{}
	for rows.Next() {
		var r dto.RoleCount
		if err := rows.Scan(&r.Role, &r.Total); err != nil {
			return nil, fmt.Errorf("répartition par rôle: %w", err)
		}
		counts = append(counts, r)
	}
	return counts, rows.Err()
}

func (s *StatisticsService) departementStats(ctx context.Context) ([]dto.DepartementStats, error) {
	rows, err := s.db.Query(ctx, queries.StatsQueries.DepartementStats)
	if err != nil {
		return nil, fmt.Errorf("statistiques par département: %w", err)
	}
	defer rows.Close()

	stats := []dto.DepartementStats{}
	for rows.Next() {
		var d dto.DepartementStats
		if err := rows.Scan(&d.ID, &d.Nom, &d.NbFilieres, &d.NbClasses, &d.NbEtudiants); err != nil {
			return nil, fmt.Errorf("statistiques par département: %w", err)
		}
		stats = append(stats, d)
	}
	return stats, rows.Err()
}

func (s *StatisticsService) gradeBands(ctx context.Context) ([]dto.GradeBand, error) {
	rows, err := s.db.Query(ctx, queries.StatsQueries.GradeBands)
	if err != nil {
		return nil, fmt.Errorf("tranches de notes: %w", err)
	}
	defer rows.Close()

	bands := []dto.GradeBand{}
	for rows.Next() {
		var b dto.GradeBand
		if err := rows.Scan(&b.Tranche, &b.Total); err != nil {
			return nil, fmt.Errorf("tranches de notes: %w", err)
		}
		bands = append(bands, b)
	}
	return bands, rows.Err()
}
