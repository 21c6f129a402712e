package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"timevalue/src/schemas"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedTestRouter(tokenAuth *jwtauth.JWTAuth) *chi.Mux {
	router := chi.NewRouter()
	router.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(tokenAuth))
		r.Use(authenticator)
		r.Get("/protected", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})
	return router
}

func TestAuthenticatorRejectsWithEnvelope(t *testing.T) {
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	router := protectedTestRouter(tokenAuth)

	tests := []struct {
		name   string
		header string
	}{
		{"missing token", ""},
		{"malformed token", "Bearer not-a-token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var envelope schemas.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
			assert.Equal(t, http.StatusUnauthorized, envelope.Code)
			assert.Equal(t, "invalid or missing token", envelope.Message)
		})
	}
}

func TestAuthenticatorPassesValidToken(t *testing.T) {
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	router := protectedTestRouter(tokenAuth)

	claims := map[string]interface{}{"user_id": 1, "username": "alice"}
	jwtauth.SetIssuedNow(claims)
	_, tokenString, err := tokenAuth.Encode(claims)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticatorRejectsWrongSigningKey(t *testing.T) {
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	router := protectedTestRouter(tokenAuth)

	otherAuth := jwtauth.New("HS256", []byte("other-secret"), nil)
	_, tokenString, err := otherAuth.Encode(map[string]interface{}{"user_id": 1})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var envelope schemas.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, http.StatusUnauthorized, envelope.Code)
}
