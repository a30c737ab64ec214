package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ofimatica/catalog-system/internal/core/domain"
)

const testSecret = "router-test-secret"

var (
	routerOnce   sync.Once
	sharedRouter *echoRouter
	routerErr    error
)

// newTestRouter builds the real route table against lazily-connecting
// clients; no request in these tests may reach a repository. The router
// is built once for the package: the prometheus middleware registers its
// collectors in the default registry and must not run twice.
func newTestRouter(t *testing.T) *echoRouter {
	t.Helper()
	routerOnce.Do(func() {
		client, err := mongo.Connect(context.Background())
		if err != nil {
			routerErr = err
			return
		}

		rdb := redis.NewClient(&redis.Options{})

		e := NewRouter(client.Database("catalog_test"), rdb, RouterConfig{
			JWTSecret: testSecret,
			TokenTTL:  time.Minute,
			Logger:    zerolog.Nop(),
		})
		sharedRouter = &echoRouter{e: e}
	})
	if routerErr != nil {
		t.Fatalf("mongo client: %v", routerErr)
	}
	return sharedRouter
}

type echoRouter struct {
	e http.Handler
}

func (r *echoRouter) do(t *testing.T, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.e.ServeHTTP(rec, req)
	return rec
}

func signRole(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username":   "jdoe",
		"email":      "jdoe@example.com",
		"role":       role,
		"account_id": "acc_1",
		"exp":        time.Now().Add(time.Minute).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestRouter_ResourceCreate_AllowsUserRole(t *testing.T) {
	r := newTestRouter(t)

	// An incomplete payload stops at request validation (400): the user
	// role must get past the auth chain, not be rejected with 403.
	rec := r.do(t, http.MethodPost, "/v1/resources",
		signRole(t, domain.RoleUser), `{"type":"book"}`)

	if rec.Code == http.StatusForbidden {
		t.Fatalf("user role must be allowed to create resources, got 403")
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for incomplete payload, got %d", rec.Code)
	}
}

func TestRouter_ResourceCreate_RequiresAuth(t *testing.T) {
	r := newTestRouter(t)

	rec := r.do(t, http.MethodPost, "/v1/resources", "", `{"type":"book"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", rec.Code)
	}
}

func TestRouter_ResourceWrites_StayAdminOnly(t *testing.T) {
	r := newTestRouter(t)
	userToken := signRole(t, domain.RoleUser)

	cases := []struct {
		method string
		target string
		body   string
	}{
		{http.MethodPatch, "/v1/resources/res_1", `{"name":"X"}`},
		{http.MethodDelete, "/v1/resources/res_1", ""},
	}

	for _, tc := range cases {
		rec := r.do(t, tc.method, tc.target, userToken, tc.body)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("%s %s: expected 403 for user role, got %d", tc.method, tc.target, rec.Code)
		}
	}
}

func TestRouter_AccountList_StaysAdminOnly(t *testing.T) {
	r := newTestRouter(t)

	rec := r.do(t, http.MethodGet, "/v1/accounts", signRole(t, domain.RoleUser), "")

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for user role, got %d", rec.Code)
	}
}
