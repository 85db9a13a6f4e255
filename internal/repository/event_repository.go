package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"sangam/internal/interfaces"
	"sangam/internal/models"
)

type EventRepository interface {
	List(ctx context.Context) ([]models.EventWithTranslations, error)
	Get(ctx context.Context, id int) (*models.EventWithTranslations, error)
	Create(ctx context.Context, adminID int, req *models.CreateEventRequest) (*models.EventWithTranslations, error)
	Update(ctx context.Context, id int, req *models.UpdateEventRequest) (*models.EventWithTranslations, error)
	UpsertTranslation(ctx context.Context, eventID int, lang string, req *models.EventTranslationInput) (*models.EventWithTranslations, error)
}

type eventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) EventRepository {
	return &eventRepository{db: db}
}

const eventColumns = "id, slug, start_date, end_date, registration_start_date, registration_end_date, " +
	"cover_image_path, flyer_image_path, registration_form_url, event_price, participation_type, " +
	"created_by_admin_id, created_at, updated_at"

const eventTranslationColumns = "id, event_id, language, status, title, location, summary, introduction, requirements, content_html"

func scanEvent(row interface{ Scan(...any) error }) (*models.Event, error) {
	var e models.Event
	err := row.Scan(
		&e.ID, &e.Slug, &e.StartDate, &e.EndDate,
		&e.RegistrationStartDate, &e.RegistrationEndDate,
		&e.CoverImagePath, &e.FlyerImagePath, &e.RegistrationFormURL,
		&e.EventPrice, &e.ParticipationType,
		&e.CreatedByAdminID, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func scanEventTranslation(row interface{ Scan(...any) error }) (*models.EventTranslation, error) {
	var t models.EventTranslation
	err := row.Scan(
		&t.ID, &t.EventID, &t.Language, &t.Status, &t.Title,
		&t.Location, &t.Summary, &t.Introduction, &t.Requirements, &t.ContentHTML,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseDate accepts RFC 3339 or a bare YYYY-MM-DD date.
func parseDate(field, value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, &interfaces.InvalidFieldError{Field: field, Reason: "invalid date"}
	}
	return t, nil
}

func parseDatePtr(field string, value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := parseDate(field, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *eventRepository) List(ctx context.Context) ([]models.EventWithTranslations, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+eventColumns+" FROM events ORDER BY updated_at DESC")
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if len(events) == 0 {
		return []models.EventWithTranslations{}, nil
	}

	ids := make([]int64, len(events))
	for i, e := range events {
		ids[i] = int64(e.ID)
	}
	byEvent, err := r.translationsFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]models.EventWithTranslations, len(events))
	for i, e := range events {
		trans := byEvent[e.ID]
		if trans == nil {
			trans = []models.EventTranslation{}
		}
		out[i] = models.EventWithTranslations{Event: e, Translations: trans}
	}
	return out, nil
}

func (r *eventRepository) translationsFor(ctx context.Context, eventIDs []int64) (map[int][]models.EventTranslation, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+eventTranslationColumns+" FROM event_translations WHERE event_id = ANY($1) ORDER BY id",
		pq.Array(eventIDs))
	if err != nil {
		return nil, fmt.Errorf("list event translations: %w", err)
	}
	defer rows.Close()

	byEvent := make(map[int][]models.EventTranslation)
	for rows.Next() {
		t, err := scanEventTranslation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event translation: %w", err)
		}
		byEvent[t.EventID] = append(byEvent[t.EventID], *t)
	}
	return byEvent, rows.Err()
}

func (r *eventRepository) Get(ctx context.Context, id int) (*models.EventWithTranslations, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+eventColumns+" FROM events WHERE id = $1", id)
	e, err := scanEvent(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	byEvent, err := r.translationsFor(ctx, []int64{int64(id)})
	if err != nil {
		return nil, err
	}
	trans := byEvent[id]
	if trans == nil {
		trans = []models.EventTranslation{}
	}
	return &models.EventWithTranslations{Event: *e, Translations: trans}, nil
}

// Create inserts the event and its translation rows in one transaction.
func (r *eventRepository) Create(ctx context.Context, adminID int, req *models.CreateEventRequest) (*models.EventWithTranslations, error) {
	startDate, err := parseDatePtr("startDate", req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDatePtr("endDate", req.EndDate)
	if err != nil {
		return nil, err
	}
	regStart, err := parseDatePtr("registrationStartDate", req.RegistrationStartDate)
	if err != nil {
		return nil, err
	}
	regEnd, err := parseDatePtr("registrationEndDate", req.RegistrationEndDate)
	if err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin create event: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, `
		INSERT INTO events (slug, start_date, end_date, registration_start_date, registration_end_date,
			cover_image_path, flyer_image_path, registration_form_url, event_price, participation_type,
			created_by_admin_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+eventColumns,
		req.Slug, startDate, endDate, regStart, regEnd,
		req.CoverImagePath, req.FlyerImagePath, req.RegistrationFormURL,
		req.EventPrice, req.ParticipationType, adminID)
	e, err := scanEvent(row)
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}

	translations := make([]models.EventTranslation, 0, len(req.Translations))
	for _, in := range req.Translations {
		status := models.StatusDraft
		if in.Status != nil {
			status = *in.Status
		}
		t, err := scanEventTranslation(tx.QueryRowContext(ctx, `
			INSERT INTO event_translations (event_id, language, status, title, location, summary, introduction, requirements, content_html)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING `+eventTranslationColumns,
			e.ID, in.Language, status, in.Title, in.Location,
			in.Summary, in.Introduction, in.Requirements, in.ContentHTML))
		if err != nil {
			return nil, fmt.Errorf("insert event translation: %w", err)
		}
		translations = append(translations, *t)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit create event: %w", err)
	}
	return &models.EventWithTranslations{Event: *e, Translations: translations}, nil
}

// Update applies the nullable-field convention: a field absent from the
// patch is untouched, null clears it, a value sets it.
func (r *eventRepository) Update(ctx context.Context, id int, req *models.UpdateEventRequest) (*models.EventWithTranslations, error) {
	sets := []string{}
	args := []any{}

	addSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Slug != nil {
		addSet("slug", *req.Slug)
	}

	dates := []struct {
		column string
		field  string
		opt    models.Optional[string]
	}{
		{"start_date", "startDate", req.StartDate},
		{"end_date", "endDate", req.EndDate},
		{"registration_start_date", "registrationStartDate", req.RegistrationStartDate},
		{"registration_end_date", "registrationEndDate", req.RegistrationEndDate},
	}
	for _, d := range dates {
		if !d.opt.Set {
			continue
		}
		t, err := parseDatePtr(d.field, d.opt.Ptr())
		if err != nil {
			return nil, err
		}
		addSet(d.column, t)
	}

	texts := []struct {
		column string
		opt    models.Optional[string]
	}{
		{"cover_image_path", req.CoverImagePath},
		{"flyer_image_path", req.FlyerImagePath},
		{"registration_form_url", req.RegistrationFormURL},
		{"event_price", req.EventPrice},
		{"participation_type", req.ParticipationType},
	}
	for _, f := range texts {
		if f.opt.Set {
			addSet(f.column, f.opt.Ptr())
		}
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)
	query := fmt.Sprintf("UPDATE events SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), eventColumns)

	e, err := scanEvent(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("update event: %w", err)
	}

	byEvent, err := r.translationsFor(ctx, []int64{int64(id)})
	if err != nil {
		return nil, err
	}
	trans := byEvent[id]
	if trans == nil {
		trans = []models.EventTranslation{}
	}
	return &models.EventWithTranslations{Event: *e, Translations: trans}, nil
}

// UpsertTranslation mirrors the project variant: update in place keeping
// the previous status when omitted, insert a draft row otherwise.
func (r *eventRepository) UpsertTranslation(ctx context.Context, eventID int, lang string, req *models.EventTranslationInput) (*models.EventWithTranslations, error) {
	if _, err := r.Get(ctx, eventID); err != nil {
		return nil, err
	}

	var existingID int
	var existingStatus string
	err := r.db.QueryRowContext(ctx,
		"SELECT id, status FROM event_translations WHERE event_id = $1 AND language = $2",
		eventID, lang,
	).Scan(&existingID, &existingStatus)

	switch {
	case err == nil:
		status := existingStatus
		if req.Status != nil {
			status = *req.Status
		}
		_, err = r.db.ExecContext(ctx, `
			UPDATE event_translations
			SET status = $1, title = $2, location = $3, summary = $4, introduction = $5, requirements = $6, content_html = $7
			WHERE id = $8
		`, status, req.Title, req.Location, req.Summary, req.Introduction, req.Requirements, req.ContentHTML, existingID)
		if err != nil {
			return nil, fmt.Errorf("update event translation: %w", err)
		}
	case err == sql.ErrNoRows:
		status := models.StatusDraft
		if req.Status != nil {
			status = *req.Status
		}
		_, err = r.db.ExecContext(ctx, `
			INSERT INTO event_translations (event_id, language, status, title, location, summary, introduction, requirements, content_html)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, eventID, lang, status, req.Title, req.Location, req.Summary, req.Introduction, req.Requirements, req.ContentHTML)
		if err != nil {
			return nil, fmt.Errorf("insert event translation: %w", err)
		}
	default:
		return nil, fmt.Errorf("get event translation: %w", err)
	}

	return r.Get(ctx, eventID)
}
