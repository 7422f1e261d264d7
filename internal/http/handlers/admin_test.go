package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	appresults "github.com/avatarneil/bracket.build/internal/app/results"
	"github.com/avatarneil/bracket.build/internal/domain/results"
	"github.com/avatarneil/bracket.build/internal/store"
	"github.com/avatarneil/bracket.build/internal/teststubs"
	"github.com/avatarneil/bracket.build/internal/testutil"
)

func newAdminFixture(provider *teststubs.StubProvider, token string) (*AdminHandler, *appresults.Service) {
	rsvc := appresults.NewService(appresults.Config{
		Store:    store.NewResultStore(),
		Provider: provider,
	})
	return NewAdminHandler(rsvc, token, nil), rsvc
}

func adminRequest(token string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/admin/results/refresh", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAdminRefreshRequiresToken(t *testing.T) {
	h, _ := newAdminFixture(&teststubs.StubProvider{}, "secret")

	cases := []struct {
		name  string
		token string
	}{
		{"missing", ""},
		{"wrong", "other"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshResults), adminRequest(tc.token))
			if rr.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rr.Code)
			}
		})
	}
}

func TestAdminRefreshRefusedWithoutConfiguredToken(t *testing.T) {
	h, _ := newAdminFixture(&teststubs.StubProvider{}, "")
	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshResults), adminRequest("anything"))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 when no token configured, got %d", rr.Code)
	}
}

func TestAdminRefreshPullsProviderIntoCache(t *testing.T) {
	provider := &teststubs.StubProvider{Results: []results.Result{
		testutil.SampleResult("afc-wc-1", results.StatusFinal),
		testutil.SampleResult("afc-wc-2", results.StatusInProgress),
	}}
	h, rsvc := newAdminFixture(provider, "secret")

	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshResults), adminRequest("secret"))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rr.Code, rr.Body.String())
	}
	if provider.Calls.Load() != 1 {
		t.Fatalf("expected one provider call, got %d", provider.Calls.Load())
	}
	if _, ok := rsvc.ByMatchup("afc-wc-2"); !ok {
		t.Fatalf("expected refreshed result in cache")
	}
}

func TestAdminRefreshProviderFailure(t *testing.T) {
	h, _ := newAdminFixture(&teststubs.StubProvider{Err: errors.New("upstream down")}, "secret")

	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshResults), adminRequest("secret"))
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rr.Code)
	}
}
