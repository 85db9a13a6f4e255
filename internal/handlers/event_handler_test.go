package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"sangam/internal/models"
	"sangam/internal/repository"
)

type mockEventRepo struct {
	events  map[int]*models.EventWithTranslations
	created *models.CreateEventRequest
}

var _ repository.EventRepository = (*mockEventRepo)(nil)

func (m *mockEventRepo) List(ctx context.Context) ([]models.EventWithTranslations, error) {
	out := []models.EventWithTranslations{}
	for _, e := range m.events {
		out = append(out, *e)
	}
	return out, nil
}

func (m *mockEventRepo) Get(ctx context.Context, id int) (*models.EventWithTranslations, error) {
	if e, ok := m.events[id]; ok {
		return e, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockEventRepo) Create(ctx context.Context, adminID int, req *models.CreateEventRequest) (*models.EventWithTranslations, error) {
	m.created = req
	e := models.EventWithTranslations{Event: models.Event{ID: 1, Slug: req.Slug}}
	for i, in := range req.Translations {
		status := models.StatusDraft
		if in.Status != nil {
			status = *in.Status
		}
		e.Translations = append(e.Translations, models.EventTranslation{
			ID: i + 1, EventID: 1, Language: in.Language, Status: status,
			Title: in.Title, ContentHTML: in.ContentHTML,
		})
	}
	return &e, nil
}

func (m *mockEventRepo) Update(ctx context.Context, id int, req *models.UpdateEventRequest) (*models.EventWithTranslations, error) {
	e, ok := m.events[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	if req.Slug != nil {
		e.Event.Slug = *req.Slug
	}
	return e, nil
}

func (m *mockEventRepo) UpsertTranslation(ctx context.Context, eventID int, lang string, req *models.EventTranslationInput) (*models.EventWithTranslations, error) {
	e, ok := m.events[eventID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return e, nil
}

func newEventRouter(repo *mockEventRepo) *chi.Mux {
	gate := NewAdminGate(activeAdmin(models.RoleAdmin), false)
	h := NewEventHandler(repo, gate, false)

	r := chi.NewRouter()
	r.Get("/api/events", h.List)
	r.Get("/api/events/{id}", h.Get)
	r.Post("/api/events", h.Create)
	r.Patch("/api/events/{id}", h.Update)
	r.Put("/api/events/{id}/translations/{lang}", h.UpsertTranslation)
	return r
}

func TestGetEventNotFound(t *testing.T) {
	r := newEventRouter(&mockEventRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/events/9", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestCreateEventRequiresAdmin(t *testing.T) {
	r := newEventRouter(&mockEventRepo{})

	body := `{"slug":"mela","translations":[{"language":"mr","title":"t","contentHtml":"<p>c</p>"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestCreateEventNormalizesSlug(t *testing.T) {
	repo := &mockEventRepo{}
	r := newEventRouter(repo)

	body := `{
		"slug": "Annual Mela 2026",
		"startDate": "2026-10-01",
		"translations": [{"language": "mr", "title": "t", "contentHtml": "<p>c</p>"}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(body)).WithContext(adminCtx())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	if repo.created == nil || repo.created.Slug != "annual-mela-2026" {
		t.Fatalf("expected normalized slug, got %+v", repo.created)
	}
}

func TestUpdateEventEmptyPatch(t *testing.T) {
	repo := &mockEventRepo{events: map[int]*models.EventWithTranslations{
		1: {Event: models.Event{ID: 1, Slug: "mela"}},
	}}
	r := newEventRouter(repo)

	req := httptest.NewRequest(http.MethodPatch, "/api/events/1",
		strings.NewReader(`{}`)).WithContext(adminCtx())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty patch, got %d", w.Code)
	}
}

func TestUpdateEventNullClearsField(t *testing.T) {
	repo := &mockEventRepo{events: map[int]*models.EventWithTranslations{
		1: {Event: models.Event{ID: 1, Slug: "mela"}},
	}}
	r := newEventRouter(repo)

	// An explicit null is a change, not an empty patch.
	req := httptest.NewRequest(http.MethodPatch, "/api/events/1",
		strings.NewReader(`{"coverImagePath":null}`)).WithContext(adminCtx())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestUpsertEventTranslationBadLanguage(t *testing.T) {
	repo := &mockEventRepo{events: map[int]*models.EventWithTranslations{
		1: {Event: models.Event{ID: 1, Slug: "mela"}},
	}}
	r := newEventRouter(repo)

	req := httptest.NewRequest(http.MethodPut, "/api/events/1/translations/de",
		strings.NewReader(`{"title":"t","contentHtml":"<p>c</p>"}`)).WithContext(adminCtx())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unsupported language, got %d", w.Code)
	}
}

func TestUpsertEventTranslationUnknownEvent(t *testing.T) {
	r := newEventRouter(&mockEventRepo{})

	req := httptest.NewRequest(http.MethodPut, "/api/events/42/translations/hi",
		strings.NewReader(`{"title":"t","contentHtml":"<p>c</p>"}`)).WithContext(adminCtx())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestListEventsAlwaysArray(t *testing.T) {
	r := newEventRouter(&mockEventRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != "[]" {
		t.Fatalf("expected empty array, got %q", got)
	}
}

func TestHomeFeatured(t *testing.T) {
	repo := &mockProjectRepo{projects: map[int]*models.ProjectWithTranslations{
		1: {Project: models.Project{ID: 1, Slug: "a", IsFeatured: true}, Translations: []models.ProjectTranslation{}},
	}}
	h := NewHomeHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/home/featured", nil)
	w := httptest.NewRecorder()
	h.Featured(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp models.HomeFeaturedResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.FeaturedProjects) != 1 {
		t.Fatalf("expected one featured project, got %+v", resp)
	}
}
