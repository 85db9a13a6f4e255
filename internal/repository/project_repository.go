package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"sangam/internal/models"
)

type ProjectRepository interface {
	List(ctx context.Context, featured *bool) ([]models.ProjectWithTranslations, error)
	Get(ctx context.Context, id int) (*models.ProjectWithTranslations, error)
	Create(ctx context.Context, adminID int, req *models.CreateProjectRequest) (*models.ProjectWithTranslations, error)
	Update(ctx context.Context, id int, req *models.UpdateProjectRequest) (*models.ProjectWithTranslations, error)
	UpsertTranslation(ctx context.Context, projectID int, lang string, req *models.ProjectTranslationInput) (*models.ProjectWithTranslations, error)
	FeaturedCount(ctx context.Context) (int, error)
	HomeFeatured(ctx context.Context) ([]models.ProjectWithTranslations, error)
}

type projectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) ProjectRepository {
	return &projectRepository{db: db}
}

const projectColumns = "id, slug, is_featured, cover_image_path, created_by_admin_id, created_at, updated_at"
const projectTranslationColumns = "id, project_id, language, status, title, summary, content_html"

func scanProject(row interface{ Scan(...any) error }) (*models.Project, error) {
	var p models.Project
	err := row.Scan(&p.ID, &p.Slug, &p.IsFeatured, &p.CoverImagePath, &p.CreatedByAdminID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List selects projects (optionally filtered by is_featured), then all of
// their translations in a second query, and zips the two in memory. Every
// list/get read in this package composes the same way; the round-trip cost
// is irrelevant at this scale.
func (r *projectRepository) List(ctx context.Context, featured *bool) ([]models.ProjectWithTranslations, error) {
	query := "SELECT " + projectColumns + " FROM projects ORDER BY updated_at DESC"
	args := []any{}
	if featured != nil {
		query = "SELECT " + projectColumns + " FROM projects WHERE is_featured = $1 ORDER BY updated_at DESC"
		args = append(args, *featured)
	}
	return r.listByQuery(ctx, query, args...)
}

// HomeFeatured returns the newest featured projects, capped at the home
// page limit of 4.
func (r *projectRepository) HomeFeatured(ctx context.Context) ([]models.ProjectWithTranslations, error) {
	query := "SELECT " + projectColumns + " FROM projects WHERE is_featured = TRUE ORDER BY updated_at DESC LIMIT 4"
	return r.listByQuery(ctx, query)
}

func (r *projectRepository) listByQuery(ctx context.Context, query string, args ...any) ([]models.ProjectWithTranslations, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	if len(projects) == 0 {
		return []models.ProjectWithTranslations{}, nil
	}

	ids := make([]int64, len(projects))
	for i, p := range projects {
		ids[i] = int64(p.ID)
	}

	byProject, err := r.translationsFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]models.ProjectWithTranslations, len(projects))
	for i, p := range projects {
		trans := byProject[p.ID]
		if trans == nil {
			trans = []models.ProjectTranslation{}
		}
		out[i] = models.ProjectWithTranslations{Project: p, Translations: trans}
	}
	return out, nil
}

func (r *projectRepository) translationsFor(ctx context.Context, projectIDs []int64) (map[int][]models.ProjectTranslation, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+projectTranslationColumns+" FROM project_translations WHERE project_id = ANY($1) ORDER BY id",
		pq.Array(projectIDs))
	if err != nil {
		return nil, fmt.Errorf("list project translations: %w", err)
	}
	defer rows.Close()

	byProject := make(map[int][]models.ProjectTranslation)
	for rows.Next() {
		var t models.ProjectTranslation
		if err := rows.Scan(&t.ID, &t.ProjectID, &t.Language, &t.Status, &t.Title, &t.Summary, &t.ContentHTML); err != nil {
			return nil, fmt.Errorf("scan project translation: %w", err)
		}
		byProject[t.ProjectID] = append(byProject[t.ProjectID], t)
	}
	return byProject, rows.Err()
}

func (r *projectRepository) Get(ctx context.Context, id int) (*models.ProjectWithTranslations, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+projectColumns+" FROM projects WHERE id = $1", id)
	p, err := scanProject(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("get project: %w", err)
	}

	byProject, err := r.translationsFor(ctx, []int64{int64(id)})
	if err != nil {
		return nil, err
	}
	trans := byProject[id]
	if trans == nil {
		trans = []models.ProjectTranslation{}
	}
	return &models.ProjectWithTranslations{Project: *p, Translations: trans}, nil
}

// Create inserts the project and its translation rows in one transaction.
// The featured cap is NOT checked here; callers check FeaturedCount first.
func (r *projectRepository) Create(ctx context.Context, adminID int, req *models.CreateProjectRequest) (*models.ProjectWithTranslations, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin create project: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, `
		INSERT INTO projects (slug, is_featured, cover_image_path, created_by_admin_id)
		VALUES ($1, $2, $3, $4)
		RETURNING `+projectColumns,
		req.Slug, req.IsFeatured, req.CoverImagePath, adminID)
	p, err := scanProject(row)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}

	translations := make([]models.ProjectTranslation, 0, len(req.Translations))
	for _, in := range req.Translations {
		status := models.StatusDraft
		if in.Status != nil {
			status = *in.Status
		}
		var t models.ProjectTranslation
		err := tx.QueryRowContext(ctx, `
			INSERT INTO project_translations (project_id, language, status, title, summary, content_html)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING `+projectTranslationColumns,
			p.ID, in.Language, status, in.Title, in.Summary, in.ContentHTML,
		).Scan(&t.ID, &t.ProjectID, &t.Language, &t.Status, &t.Title, &t.Summary, &t.ContentHTML)
		if err != nil {
			return nil, fmt.Errorf("insert project translation: %w", err)
		}
		translations = append(translations, t)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit create project: %w", err)
	}
	return &models.ProjectWithTranslations{Project: *p, Translations: translations}, nil
}

func (r *projectRepository) Update(ctx context.Context, id int, req *models.UpdateProjectRequest) (*models.ProjectWithTranslations, error) {
	sets := []string{}
	args := []any{}

	if req.Slug != nil {
		args = append(args, *req.Slug)
		sets = append(sets, fmt.Sprintf("slug = $%d", len(args)))
	}
	if req.IsFeatured != nil {
		args = append(args, *req.IsFeatured)
		sets = append(sets, fmt.Sprintf("is_featured = $%d", len(args)))
	}
	if req.CoverImagePath.Set {
		args = append(args, req.CoverImagePath.Ptr())
		sets = append(sets, fmt.Sprintf("cover_image_path = $%d", len(args)))
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf("UPDATE projects SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), projectColumns)

	p, err := scanProject(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("update project: %w", err)
	}

	byProject, err := r.translationsFor(ctx, []int64{int64(id)})
	if err != nil {
		return nil, err
	}
	trans := byProject[id]
	if trans == nil {
		trans = []models.ProjectTranslation{}
	}
	return &models.ProjectWithTranslations{Project: *p, Translations: trans}, nil
}

// UpsertTranslation updates the (project, language) row in place when one
// exists, preserving the previous status if the request omits it, and
// inserts a draft row otherwise. It returns the re-fetched composite so
// callers always see a consistent view.
func (r *projectRepository) UpsertTranslation(ctx context.Context, projectID int, lang string, req *models.ProjectTranslationInput) (*models.ProjectWithTranslations, error) {
	if _, err := r.Get(ctx, projectID); err != nil {
		return nil, err
	}

	var existingID int
	var existingStatus string
	err := r.db.QueryRowContext(ctx,
		"SELECT id, status FROM project_translations WHERE project_id = $1 AND language = $2",
		projectID, lang,
	).Scan(&existingID, &existingStatus)

	switch {
	case err == nil:
		status := existingStatus
		if req.Status != nil {
			status = *req.Status
		}
		_, err = r.db.ExecContext(ctx, `
			UPDATE project_translations
			SET status = $1, title = $2, summary = $3, content_html = $4
			WHERE id = $5
		`, status, req.Title, req.Summary, req.ContentHTML, existingID)
		if err != nil {
			return nil, fmt.Errorf("update project translation: %w", err)
		}
	case err == sql.ErrNoRows:
		status := models.StatusDraft
		if req.Status != nil {
			status = *req.Status
		}
		_, err = r.db.ExecContext(ctx, `
			INSERT INTO project_translations (project_id, language, status, title, summary, content_html)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, projectID, lang, status, req.Title, req.Summary, req.ContentHTML)
		if err != nil {
			return nil, fmt.Errorf("insert project translation: %w", err)
		}
	default:
		return nil, fmt.Errorf("get project translation: %w", err)
	}

	return r.Get(ctx, projectID)
}

func (r *projectRepository) FeaturedCount(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM projects WHERE is_featured = TRUE").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count featured projects: %w", err)
	}
	return count, nil
}
