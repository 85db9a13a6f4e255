package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"

	"sangam/internal/models"
)

func TestFeaturedCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT COUNT(*) FROM projects WHERE is_featured = TRUE",
	)).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	repo := NewProjectRepository(db)
	got, err := repo.FeaturedCount(context.Background())
	if err != nil {
		t.Fatalf("featured count: %v", err)
	}
	if got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
}

func TestProjectGetNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM projects WHERE id").
		WithArgs(5).WillReturnError(sql.ErrNoRows)

	repo := NewProjectRepository(db)
	if _, err := repo.Get(context.Background(), 5); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected ErrNoRows passthrough, got %v", err)
	}
}

func TestProjectListZipsTranslations(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	projectRows := sqlmock.NewRows([]string{
		"id", "slug", "is_featured", "cover_image_path", "created_by_admin_id", "created_at", "updated_at",
	}).
		AddRow(1, "garden", true, nil, nil, sampleTime(), sampleTime()).
		AddRow(2, "library", false, nil, nil, sampleTime(), sampleTime())
	mock.ExpectQuery("SELECT .+ FROM projects ORDER BY updated_at DESC").
		WillReturnRows(projectRows)

	translationRows := sqlmock.NewRows([]string{
		"id", "project_id", "language", "status", "title", "summary", "content_html",
	}).
		AddRow(10, 1, "en", "published", "Garden", nil, "<p>g</p>").
		AddRow(11, 1, "hi", "draft", "बगीचा", nil, "<p>g</p>")
	mock.ExpectQuery("SELECT .+ FROM project_translations WHERE project_id = ANY").
		WillReturnRows(translationRows)

	repo := NewProjectRepository(db)
	got, err := repo.List(context.Background(), nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(got))
	}
	if len(got[0].Translations) != 2 {
		t.Fatalf("expected both translations zipped onto project 1, got %+v", got[0].Translations)
	}
	if got[1].Translations == nil || len(got[1].Translations) != 0 {
		t.Fatalf("project without translations must carry an empty slice, got %#v", got[1].Translations)
	}
}

func TestProjectListEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM projects WHERE is_featured").
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "slug", "is_featured", "cover_image_path", "created_by_admin_id", "created_at", "updated_at",
		}))

	repo := NewProjectRepository(db)
	featured := true
	got, err := repo.List(context.Background(), &featured)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %#v", got)
	}
}

func expectProjectGet(mock sqlmock.Sqlmock, id int) {
	mock.ExpectQuery("SELECT .+ FROM projects WHERE id").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "slug", "is_featured", "cover_image_path", "created_by_admin_id", "created_at", "updated_at",
		}).AddRow(id, "garden", false, nil, nil, sampleTime(), sampleTime()))
	mock.ExpectQuery("SELECT .+ FROM project_translations WHERE project_id = ANY").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "project_id", "language", "status", "title", "summary", "content_html",
		}))
}

func TestUpsertTranslationPreservesStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	expectProjectGet(mock, 1)

	// Existing published row; the request omits status, so the update
	// must keep "published" rather than reset to draft.
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, status FROM project_translations WHERE project_id = $1 AND language = $2",
	)).WithArgs(1, "en").
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(10, "published"))
	mock.ExpectExec("UPDATE project_translations").
		WithArgs("published", "New Title", nil, "<p>new</p>", 10).
		WillReturnResult(sqlmock.NewResult(0, 1))

	expectProjectGet(mock, 1)

	repo := NewProjectRepository(db)
	_, err = repo.UpsertTranslation(context.Background(), 1, "en", &models.ProjectTranslationInput{
		Language:    "en",
		Title:       "New Title",
		ContentHTML: "<p>new</p>",
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpsertTranslationInsertsDraft(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	expectProjectGet(mock, 1)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, status FROM project_translations WHERE project_id = $1 AND language = $2",
	)).WithArgs(1, "hi").WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO project_translations").
		WithArgs(1, "hi", "draft", "शीर्षक", nil, "<p>c</p>").
		WillReturnResult(sqlmock.NewResult(11, 1))

	expectProjectGet(mock, 1)

	repo := NewProjectRepository(db)
	_, err = repo.UpsertTranslation(context.Background(), 1, "hi", &models.ProjectTranslationInput{
		Language:    "hi",
		Title:       "शीर्षक",
		ContentHTML: "<p>c</p>",
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
