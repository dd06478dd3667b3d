package flash

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	flashes map[string][2]string
	setErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{flashes: map[string][2]string{}}
}

func (s *fakeStore) SetFlash(ctx context.Context, token, message, severity string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.flashes[token] = [2]string{message, severity}
	return nil
}

func (s *fakeStore) ConsumeFlash(ctx context.Context, token string) (string, string, error) {
	f, ok := s.flashes[token]
	if !ok {
		return "", "", nil
	}
	delete(s.flashes, token)
	return f[0], f[1], nil
}

func newContext(t *testing.T, cookies ...*http.Cookie) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/departements", nil)
	for _, ck := range cookies {
		c.Request.AddCookie(ck)
	}
	return c, rec
}

func TestRedirectWithMessageUsesSessionStore(t *testing.T) {
	store := newFakeStore()
	fl := New(store, "isti_session")
	c, rec := newContext(t, &http.Cookie{Name: "isti_session", Value: "tok-1"})

	fl.RedirectWithMessage(c, "/departements", "Département ajouté avec succès", SeveritySuccess)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/departements", rec.Header().Get("Location"))
	assert.True(t, c.IsAborted())
	assert.Equal(t, [2]string{"Département ajouté avec succès", SeveritySuccess}, store.flashes["tok-1"])
}

func TestRedirectWithMessageFallsBackToCookies(t *testing.T) {
	fl := New(newFakeStore(), "isti_session")
	c, rec := newContext(t)

	fl.RedirectWithMessage(c, "/connexion", "Veuillez vous connecter", SeverityError)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/connexion", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	values := map[string]string{}
	for _, ck := range cookies {
		values[ck.Name] = ck.Value
	}
	assert.Contains(t, values[KeyMessage], "Veuillez")
	assert.Equal(t, SeverityError, values[KeyType])
}

func TestRedirectStillHappensWhenStoreFails(t *testing.T) {
	store := newFakeStore()
	store.setErr = errors.New("redis injoignable")
	fl := New(store, "isti_session")
	c, rec := newContext(t, &http.Cookie{Name: "isti_session", Value: "tok-1"})

	fl.RedirectWithMessage(c, "/annees", "Année ajoutée", SeveritySuccess)
	c.Writer.WriteHeaderNow()

	// l'échec du flash ne bloque jamais la redirection
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/annees", rec.Header().Get("Location"))
}

func TestConsumeReadsAndClears(t *testing.T) {
	store := newFakeStore()
	store.flashes["tok-1"] = [2]string{"Classe supprimée avec succès", SeveritySuccess}
	fl := New(store, "isti_session")
	c, _ := newContext(t, &http.Cookie{Name: "isti_session", Value: "tok-1"})

	message, severity := fl.Consume(c)
	require.Equal(t, "Classe supprimée avec succès", message)
	require.Equal(t, SeveritySuccess, severity)

	// seconde lecture : le flash a été consommé
	c2, _ := newContext(t, &http.Cookie{Name: "isti_session", Value: "tok-1"})
	message, _ = fl.Consume(c2)
	assert.Empty(t, message)
}
