package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"sangam/internal/contract"
	"sangam/internal/models"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()

	r.MethodFunc(contract.ProjectsGet.Method, contract.ProjectsGet.ChiPattern(),
		func(w http.ResponseWriter, req *http.Request) {
			if chi.URLParam(req, "id") != "7" {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(models.ErrorResponse{Message: "Project not found"})
				return
			}
			json.NewEncoder(w).Encode(models.ProjectWithTranslations{
				Project:      models.Project{ID: 7, Slug: "garden"},
				Translations: []models.ProjectTranslation{},
			})
		})

	r.MethodFunc(contract.ProjectsCreate.Method, contract.ProjectsCreate.ChiPattern(),
		func(w http.ResponseWriter, req *http.Request) {
			var in models.CreateProjectRequest
			if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(models.ProjectWithTranslations{
				Project: models.Project{ID: 1, Slug: in.Slug},
			})
		})

	r.MethodFunc(contract.Translate.Method, contract.Translate.ChiPattern(),
		func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(models.ErrorResponse{Message: "Forbidden"})
		})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestProjectsGetRoundTrip(t *testing.T) {
	srv := testServer(t)
	c, err := New(srv.URL)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	got, err := c.ProjectsGet(context.Background(), 7)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Project.ID != 7 || got.Project.Slug != "garden" {
		t.Fatalf("unexpected project %+v", got)
	}
}

func TestAPIErrorCarriesEnvelope(t *testing.T) {
	srv := testServer(t)
	c, err := New(srv.URL)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = c.ProjectsGet(context.Background(), 8)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusNotFound || apiErr.Message != "Project not found" {
		t.Fatalf("unexpected error %+v", apiErr)
	}
}

func TestForbiddenSurfacesStatus(t *testing.T) {
	srv := testServer(t)
	c, err := New(srv.URL)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = c.Translate(context.Background(), models.TranslateRequest{Text: "x", From: "en", To: "hi"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusForbidden {
		t.Fatalf("expected 403 APIError, got %v", err)
	}
}

func TestProjectsCreateSendsBody(t *testing.T) {
	srv := testServer(t)
	c, err := New(srv.URL)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	got, err := c.ProjectsCreate(context.Background(), models.CreateProjectRequest{
		Slug: "garden",
		Translations: []models.ProjectTranslationInput{
			{Language: "en", Title: "t", ContentHTML: "<p>c</p>"},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got.Project.Slug != "garden" {
		t.Fatalf("unexpected project %+v", got)
	}
}
