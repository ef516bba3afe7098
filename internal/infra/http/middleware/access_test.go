package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "segredo-de-teste"

type fakeChecker struct {
	approved      bool
	paywallActive bool
	err           error
	calls         int
}

func (f *fakeChecker) AccessState(ctx context.Context, principal string) (bool, bool, error) {
	f.calls++
	return f.approved, f.paywallActive, f.err
}

func signToken(t *testing.T, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func gatedEcho(access *Access) http.Handler {
	return access.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(Principal(r.Context())))
	}))
}

func TestAccessRejectsMissingToken(t *testing.T) {
	handler := gatedEcho(NewAccess(&fakeChecker{}, testSecret))

	req := httptest.NewRequest(http.MethodGet, "/leads", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAccessRejectsBadSignature(t *testing.T) {
	handler := gatedEcho(NewAccess(&fakeChecker{}, testSecret))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "ana"})
	signed, err := token.SignedString([]byte("outro-segredo"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/leads", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAccessAllowsWhenPaywallOff(t *testing.T) {
	checker := &fakeChecker{approved: false, paywallActive: false}
	handler := gatedEcho(NewAccess(checker, testSecret))

	req := httptest.NewRequest(http.MethodGet, "/leads", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "ana"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ana", rec.Body.String())
}

func TestAccessBlocksUnapprovedWithPaywallOn(t *testing.T) {
	checker := &fakeChecker{approved: false, paywallActive: true}
	handler := gatedEcho(NewAccess(checker, testSecret))

	req := httptest.NewRequest(http.MethodGet, "/leads", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "ana"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
}

func TestAccessCachesGateResult(t *testing.T) {
	checker := &fakeChecker{approved: true, paywallActive: true}
	handler := gatedEcho(NewAccess(checker, testSecret))

	token := signToken(t, "ana")
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/leads", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, 1, checker.calls)
}

func TestAccessGateErrorIs503(t *testing.T) {
	checker := &fakeChecker{err: errors.New("gate fora do ar")}
	handler := gatedEcho(NewAccess(checker, testSecret))

	req := httptest.NewRequest(http.MethodGet, "/leads", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "ana"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
