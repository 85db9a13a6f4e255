package models

import "time"

// Content languages and translation statuses shared by projects and events.
const (
	LangEN = "en"
	LangHI = "hi"
	LangMR = "mr"

	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Languages lists the supported content languages in display order.
var Languages = []string{LangEN, LangHI, LangMR}

// ValidLanguage reports whether lang is one of the supported codes.
func ValidLanguage(lang string) bool {
	for _, l := range Languages {
		if l == lang {
			return true
		}
	}
	return false
}

type Project struct {
	ID               int        `json:"id"`
	Slug             string     `json:"slug"`
	IsFeatured       bool       `json:"isFeatured"`
	CoverImagePath   *string    `json:"coverImagePath"`
	CreatedByAdminID *int       `json:"createdByAdminId"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

type ProjectTranslation struct {
	ID          int     `json:"id"`
	ProjectID   int     `json:"projectId"`
	Language    string  `json:"language"`
	Status      string  `json:"status"`
	Title       string  `json:"title"`
	Summary     *string `json:"summary"`
	ContentHTML string  `json:"contentHtml"`
}

// ProjectWithTranslations is the composite view every read returns: the
// entity zipped with all of its per-language rows.
type ProjectWithTranslations struct {
	Project      Project              `json:"project"`
	Translations []ProjectTranslation `json:"translations"`
}

type ProjectTranslationInput struct {
	Language    string  `json:"language" validate:"required,oneof=en hi mr"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=draft published"`
	Title       string  `json:"title" validate:"required,min=1"`
	Summary     *string `json:"summary,omitempty"`
	ContentHTML string  `json:"contentHtml" validate:"required,min=1"`
}

type CreateProjectRequest struct {
	Slug           string                    `json:"slug" validate:"required,min=1,max=200"`
	IsFeatured     bool                      `json:"isFeatured,omitempty"`
	CoverImagePath *string                   `json:"coverImagePath,omitempty"`
	Translations   []ProjectTranslationInput `json:"translations" validate:"required,min=1,dive"`
}

type UpdateProjectRequest struct {
	Slug           *string          `json:"slug,omitempty" validate:"omitempty,min=1,max=200"`
	IsFeatured     *bool            `json:"isFeatured,omitempty"`
	CoverImagePath Optional[string] `json:"coverImagePath,omitzero"`
}

// Empty reports whether the patch carries no changes.
func (r UpdateProjectRequest) Empty() bool {
	return r.Slug == nil && r.IsFeatured == nil && !r.CoverImagePath.Set
}

type HomeFeaturedResponse struct {
	FeaturedProjects []ProjectWithTranslations `json:"featuredProjects"`
}
