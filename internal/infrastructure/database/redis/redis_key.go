package redis

import "fmt"

// KeyGenerator centralise le nommage des clés Redis, préfixées par
// environnement pour partager une instance entre dev et staging.
type KeyGenerator struct {
	environment string
}

func NewKeyGenerator(environment string) *KeyGenerator {
	return &KeyGenerator{environment: environment}
}

// SessionKey clé du hash de session utilisateur
func (g *KeyGenerator) SessionKey(token string) string {
	return fmt.Sprintf("isti_%s_auth_session:%s", g.environment, token)
}

// UserSessionsKey index des sessions actives d'un utilisateur
func (g *KeyGenerator) UserSessionsKey(userID string) string {
	return fmt.Sprintf("isti_%s_auth_user_sessions:%s", g.environment, userID)
}
