package rest_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clintrovert/readmeforge/internal/api/rest"
)

func TestEnsureSessionIssuesSignedCookie(t *testing.T) {
	m := rest.NewSessionManager("secret")

	rec := httptest.NewRecorder()
	m.EnsureSession(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, m.Valid(cookies[0].Value))
	assert.True(t, cookies[0].HttpOnly)
}

func TestEnsureSessionKeepsValidCookie(t *testing.T) {
	m := rest.NewSessionManager("secret")

	rec := httptest.NewRecorder()
	m.EnsureSession(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	issued := rec.Result().Cookies()[0]

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(issued)
	rec = httptest.NewRecorder()
	m.EnsureSession(rec, req)

	assert.Empty(t, rec.Result().Cookies())
}

func TestEnsureSessionReplacesTamperedCookie(t *testing.T) {
	m := rest.NewSessionManager("secret")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "rf_session", Value: "deadbeef.notarealsignature"})
	rec := httptest.NewRecorder()
	m.EnsureSession(rec, req)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, m.Valid(cookies[0].Value))
}

func TestValidRejectsOtherSecrets(t *testing.T) {
	issuer := rest.NewSessionManager("secret-a")
	verifier := rest.NewSessionManager("secret-b")

	rec := httptest.NewRecorder()
	issuer.EnsureSession(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	value := rec.Result().Cookies()[0].Value

	assert.True(t, issuer.Valid(value))
	assert.False(t, verifier.Valid(value))
}
