package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestParseTokenFromRequest(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	signed := signToken(t, "test-secret", jwt.MapClaims{
		"sub": "ext_123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	r := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	r.Header.Set("Authorization", "Bearer "+signed)

	claims, err := ParseTokenFromRequest(r)
	if err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}
	if claims["sub"] != "ext_123" {
		t.Fatalf("expected sub ext_123, got %v", claims["sub"])
	}
}

func TestParseTokenFromRequestRejects(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	expired := signToken(t, "test-secret", jwt.MapClaims{
		"sub": "ext_123",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	wrongSecret := signToken(t, "other-secret", jwt.MapClaims{
		"sub": "ext_123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	cases := []struct {
		name  string
		setup func(r *http.Request)
	}{
		{"missing header", func(r *http.Request) {}},
		{"garbage token", func(r *http.Request) { r.Header.Set("Authorization", "Bearer not.a.token") }},
		{"expired", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+expired) }},
		{"wrong secret", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+wrongSecret) }},
	}
	for _, tc := range cases {
		r := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		tc.setup(r)
		if _, err := ParseTokenFromRequest(r); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestJWTAuthMiddlewareResolvesIdentity(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	signed := signToken(t, "test-secret", jwt.MapClaims{
		"sub":        "ext_123",
		"email":      "ada@example.com",
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})

	var gotExternalID, gotEmail, gotFirst, gotLast string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotExternalID, _ = r.Context().Value("external_id").(string)
		gotEmail, _ = r.Context().Value("email").(string)
		gotFirst, _ = r.Context().Value("first_name").(string)
		gotLast, _ = r.Context().Value("last_name").(string)
	})

	r := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	r.Header.Set("Authorization", "Bearer "+signed)
	w := httptest.NewRecorder()
	JWTAuthMiddleware(next).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotExternalID != "ext_123" || gotEmail != "ada@example.com" || gotFirst != "Ada" || gotLast != "Lovelace" {
		t.Fatalf("identity not resolved: %q %q %q %q", gotExternalID, gotEmail, gotFirst, gotLast)
	}
}

func TestJWTAuthMiddlewareRequiresSub(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	signed := signToken(t, "test-secret", jwt.MapClaims{
		"email": "ada@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	r := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	r.Header.Set("Authorization", "Bearer "+signed)
	w := httptest.NewRecorder()
	JWTAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler must not run without sub claim")
	})).ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestReadOnlyMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r := httptest.NewRequest(http.MethodPost, "/api/income", nil)
	w := httptest.NewRecorder()
	ReadOnlyMiddleware(true)(next).ServeHTTP(w, r)
	if w.Code != http.StatusForbidden {
		t.Fatalf("read-only POST: expected 403, got %d", w.Code)
	}

	r = httptest.NewRequest(http.MethodGet, "/api/income", nil)
	w = httptest.NewRecorder()
	ReadOnlyMiddleware(true)(next).ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("read-only GET: expected 200, got %d", w.Code)
	}

	r = httptest.NewRequest(http.MethodPost, "/api/income", nil)
	w = httptest.NewRecorder()
	ReadOnlyMiddleware(false)(next).ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("writable POST: expected 200, got %d", w.Code)
	}
}
