package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"isti-portal-core/internal/modules/auth/dto"
	"isti-portal-core/internal/shared/flash"
	"isti-portal-core/internal/shared/rbac"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type nullFlashStore struct{}

func (nullFlashStore) SetFlash(ctx context.Context, token, message, severity string) error {
	return nil
}

func (nullFlashStore) ConsumeFlash(ctx context.Context, token string) (string, string, error) {
	return "", "", nil
}

func newRoleRouter(roles ...rbac.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	fl := flash.New(nullFlashStore{}, "isti_session")
	mw := NewRoleMiddleware(fl)

	r := gin.New()
	r.GET("/protege",
		func(c *gin.Context) {
			// simule le middleware de session en amont
			if len(roles) > 0 {
				c.Set("session", &dto.SessionData{
					UserID: "usr-1",
					Roles:  rbac.NewSet(roles...),
				})
			}
		},
		mw.RequireRole(rbac.RoleAdmin),
		func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		},
	)
	return r
}

func perform(r *gin.Engine) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protege", nil)
	r.ServeHTTP(rec, req)
	return rec
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	rec := perform(newRoleRouter(rbac.RoleAdmin))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleRedirectsWithoutSession(t *testing.T) {
	rec := perform(newRoleRouter())
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/connexion", rec.Header().Get("Location"))
}

func TestRequireRoleRedirectsOnWrongRole(t *testing.T) {
	rec := perform(newRoleRouter(rbac.RoleEtudiant, rbac.RoleRespClasse))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/connexion", rec.Header().Get("Location"))
}

func TestHasRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.False(t, HasRole(c, rbac.RoleAdmin))

	c.Set("session", &dto.SessionData{Roles: rbac.NewSet(rbac.RoleEnseignant)})
	assert.True(t, HasRole(c, rbac.RoleEnseignant))
	assert.False(t, HasRole(c, rbac.RoleAdmin))
}
