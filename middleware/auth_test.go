package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-shopcart/utils"
)

func newGatedHandler(tokens *utils.TokenService, saw **utils.Claims) http.Handler {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims, ok := ClaimsFrom(r); ok {
			*saw = claims
		}
		w.WriteHeader(http.StatusOK)
	})
	return NewAuthMiddleware(tokens)(next)
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	t.Parallel()

	var saw *utils.Claims
	handler := newGatedHandler(utils.NewTokenService("secret"), &saw)

	req := httptest.NewRequest("GET", "/cart", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d want %d", rec.Code, http.StatusUnauthorized)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "Access denied. No token provided." {
		t.Fatalf("body: got %q", body)
	}
	if saw != nil {
		t.Fatalf("handler ran despite missing token")
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	t.Parallel()

	var saw *utils.Claims
	handler := newGatedHandler(utils.NewTokenService("secret"), &saw)

	req := httptest.NewRequest("GET", "/cart", nil)
	req.Header.Set("Authorization", "garbage")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d want %d", rec.Code, http.StatusBadRequest)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "Invalid token." {
		t.Fatalf("body: got %q", body)
	}
}

func TestAuthMiddleware_ForeignSecret(t *testing.T) {
	t.Parallel()

	foreign, err := utils.NewTokenService("other-secret").Issue("u1", "user")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	var saw *utils.Claims
	handler := newGatedHandler(utils.NewTokenService("secret"), &saw)

	req := httptest.NewRequest("GET", "/cart", nil)
	req.Header.Set("Authorization", foreign)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d want %d", rec.Code, http.StatusBadRequest)
	}
	if saw != nil {
		t.Fatalf("handler ran despite foreign token")
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	t.Parallel()

	tokens := utils.NewTokenService("secret")
	tok, err := tokens.Issue("u42", "user")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	var saw *utils.Claims
	handler := newGatedHandler(tokens, &saw)

	req := httptest.NewRequest("GET", "/cart", nil)
	req.Header.Set("Authorization", tok)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d want %d", rec.Code, http.StatusOK)
	}
	if saw == nil || saw.Subject != "u42" {
		t.Fatalf("claims not attached to context: %+v", saw)
	}
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	tokens := utils.NewTokenService("secret")
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := NewAuthMiddleware(tokens)(RequireAdmin(next))

	userTok, err := tokens.Issue("u1", "user")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	adminTok, err := tokens.Issue("a1", "admin")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	req := httptest.NewRequest("POST", "/products", nil)
	req.Header.Set("Authorization", userTok)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("user role: got %d want %d", rec.Code, http.StatusForbidden)
	}

	req = httptest.NewRequest("POST", "/products", nil)
	req.Header.Set("Authorization", adminTok)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin role: got %d want %d", rec.Code, http.StatusOK)
	}
}
