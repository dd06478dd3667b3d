package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"isti-portal-core/internal/app/config"
	auditsvc "isti-portal-core/internal/modules/audit/services"
	"isti-portal-core/internal/shared/apperr"

	"go.uber.org/zap"
)

// Service cache en mémoire des paramètres, rechargé quand il dépasse
// l'âge configuré ou après chaque écriture. Partagé entre toutes les
// requêtes, d'où le mutex.
type Service struct {
	store  Store
	audit  *auditsvc.Recorder
	logger *zap.Logger
	ttl    time.Duration

	// horloge injectable pour tester l'expiration sans attendre
	now func() time.Time

	mu       sync.Mutex
	cache    map[string]Entry
	loadedAt time.Time
}

func NewSettingsService(store Store, audit *auditsvc.Recorder, cfg *config.Config, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		audit:  audit,
		logger: logger,
		ttl:    cfg.Settings.CacheTTL,
		now:    time.Now,
	}
}

// List retourne tous les paramètres, depuis le cache
func (s *Service) List(ctx context.Context) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureFresh(ctx); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(s.cache))
	for _, e := range s.cache {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Categorie != entries[j].Categorie {
			return entries[i].Categorie < entries[j].Categorie
		}
		return entries[i].Cle < entries[j].Cle
	})
	return entries, nil
}

// GetString retourne la valeur d'un paramètre, ou la valeur par défaut
// si la clé est absente ou le cache inaccessible
func (s *Service) GetString(ctx context.Context, cle, defaut string) string {
	e, ok := s.lookup(ctx, cle)
	if !ok {
		return defaut
	}
	return e.Valeur
}

// GetInt retourne un paramètre entier, ou la valeur par défaut si la
// clé est absente ou la valeur stockée n'est pas un entier
func (s *Service) GetInt(ctx context.Context, cle string, defaut int) int {
	e, ok := s.lookup(ctx, cle)
	if !ok {
		return defaut
	}
	n, err := strconv.Atoi(e.Valeur)
	if err != nil {
		s.logger.Warn("paramètre non entier",
			zap.String("cle", cle),
			zap.String("valeur", e.Valeur))
		return defaut
	}
	return n
}

// GetBool retourne un paramètre booléen, ou la valeur par défaut
func (s *Service) GetBool(ctx context.Context, cle string, defaut bool) bool {
	e, ok := s.lookup(ctx, cle)
	if !ok {
		return defaut
	}
	b, err := strconv.ParseBool(e.Valeur)
	if err != nil {
		s.logger.Warn("paramètre non booléen",
			zap.String("cle", cle),
			zap.String("valeur", e.Valeur))
		return defaut
	}
	return b
}

// GetJSON décode un paramètre json dans dest. Retourne false si la clé
// est absente ou la valeur invalide.
func (s *Service) GetJSON(ctx context.Context, cle string, dest interface{}) bool {
	e, ok := s.lookup(ctx, cle)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(e.Valeur), dest); err != nil {
		s.logger.Warn("paramètre json invalide", zap.String("cle", cle), zap.Error(err))
		return false
	}
	return true
}

// Set valide, enregistre puis recharge le cache de façon synchrone :
// une lecture qui suit une écriture voit la nouvelle valeur
func (s *Service) Set(ctx context.Context, actorID, cle, valeur, typ string) error {
	if err := validateValue(valeur, typ); err != nil {
		return err
	}

	if err := s.store.Upsert(ctx, cle, valeur, typ); err != nil {
		return err
	}

	s.mu.Lock()
	err := s.reload(ctx)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.audit.Record(ctx, actorID, fmt.Sprintf("Modification du paramètre « %s »", cle), "parametre")
	return nil
}

// Invalidate force un rechargement à la prochaine lecture
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.cache = nil
	s.mu.Unlock()
}

func (s *Service) lookup(ctx context.Context, cle string) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureFresh(ctx); err != nil {
		s.logger.Warn("cache des paramètres inaccessible", zap.Error(err))
		return Entry{}, false
	}

	e, ok := s.cache[cle]
	return e, ok
}

// ensureFresh recharge le cache s'il est vide ou trop vieux. Appelant
// détient le mutex.
func (s *Service) ensureFresh(ctx context.Context) error {
	if s.cache != nil && s.now().Sub(s.loadedAt) <= s.ttl {
		return nil
	}
	return s.reload(ctx)
}

func (s *Service) reload(ctx context.Context) error {
	entries, err := s.store.LoadAll(ctx)
	if err != nil {
		return err
	}

	cache := make(map[string]Entry, len(entries))
	for _, e := range entries {
		cache[e.Cle] = e
	}
	s.cache = cache
	s.loadedAt = s.now()
	return nil
}

func validateValue(valeur, typ string) error {
	switch typ {
	case TypeString:
		return nil
	case TypeInteger:
		if _, err := strconv.Atoi(valeur); err != nil {
			return apperr.New("La valeur doit être un entier")
		}
	case TypeBoolean:
		if _, err := strconv.ParseBool(valeur); err != nil {
			return apperr.New("La valeur doit être un booléen (true/false)")
		}
	case TypeJSON:
		if !json.Valid([]byte(valeur)) {
			return apperr.New("La valeur doit être un document JSON valide")
		}
	default:
		return apperr.New("Type de paramètre inconnu : %s", typ)
	}
	return nil
}
