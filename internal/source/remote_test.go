package source

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"dianjobs/internal/config"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func remoteTestConfig() config.Config {
	cfg, _ := config.Load()
	cfg.SupabaseURL = "https://example.test"
	cfg.SupabaseKey = "test-key"
	cfg.SupabaseTable = "empleos_dian"
	return cfg
}

func TestFetchAll(t *testing.T) {
	client := NewRemoteClient(remoteTestConfig())
	client.httpClient = &http.Client{
		Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			if r.URL.Path != "/rest/v1/empleos_dian" {
				t.Fatalf("unexpected path %s", r.URL.Path)
			}
			if r.Header.Get("apikey") != "test-key" {
				t.Fatalf("missing apikey header")
			}
			body := `[{"Denominación":"Gestor I","Asignación Salarial":4500000,"Vacantes":"2 - Bogotá D.C."}]`
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader(body)),
				Header:     make(http.Header),
			}, nil
		}),
	}

	records, err := client.FetchAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("len=%d", len(records))
	}
	if records[0]["Denominación"] != "Gestor I" {
		t.Fatalf("unexpected record: %+v", records[0])
	}
}

func TestFetchAllErrors(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{name: "auth error", status: http.StatusUnauthorized, body: `{"message":"bad key"}`},
		{name: "server error", status: http.StatusInternalServerError, body: `boom`},
		{name: "empty result", status: http.StatusOK, body: `[]`},
		{name: "malformed body", status: http.StatusOK, body: `{not json`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := NewRemoteClient(remoteTestConfig())
			client.httpClient = &http.Client{
				Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
					return &http.Response{
						StatusCode: tc.status,
						Body:       io.NopCloser(strings.NewReader(tc.body)),
						Header:     make(http.Header),
					}, nil
				}),
			}
			if _, err := client.FetchAll(context.Background()); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestFetchAllUnconfigured(t *testing.T) {
	cfg, _ := config.Load()
	cfg.SupabaseURL = ""
	cfg.SupabaseKey = ""
	if _, err := NewRemoteClient(cfg).FetchAll(context.Background()); err == nil {
		t.Fatal("expected error without credentials")
	}
}

func TestLoadNoSourceAvailable(t *testing.T) {
	cfg, _ := config.Load()
	cfg.SupabaseURL = ""
	cfg.SupabaseKey = ""
	cfg.LocalXLSXPath = "/nonexistent/empleos.xlsx"

	svc := NewService(cfg, nil)
	_, _, err := svc.Load(context.Background())
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("got %v want ErrNoData", err)
	}
}
