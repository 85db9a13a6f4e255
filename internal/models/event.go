package models

import "time"

type Event struct {
	ID                    int        `json:"id"`
	Slug                  string     `json:"slug"`
	StartDate             *time.Time `json:"startDate"`
	EndDate               *time.Time `json:"endDate"`
	RegistrationStartDate *time.Time `json:"registrationStartDate"`
	RegistrationEndDate   *time.Time `json:"registrationEndDate"`
	CoverImagePath        *string    `json:"coverImagePath"`
	FlyerImagePath        *string    `json:"flyerImagePath"`
	RegistrationFormURL   *string    `json:"registrationFormUrl"`
	EventPrice            *string    `json:"eventPrice"`
	ParticipationType     *string    `json:"participationType"`
	CreatedByAdminID      *int       `json:"createdByAdminId"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

type EventTranslation struct {
	ID           int     `json:"id"`
	EventID      int     `json:"eventId"`
	Language     string  `json:"language"`
	Status       string  `json:"status"`
	Title        string  `json:"title"`
	Location     *string `json:"location"`
	Summary      *string `json:"summary"`
	Introduction *string `json:"introduction"`
	Requirements *string `json:"requirements"`
	ContentHTML  string  `json:"contentHtml"`
}

type EventWithTranslations struct {
	Event        Event              `json:"event"`
	Translations []EventTranslation `json:"translations"`
}

type EventTranslationInput struct {
	Language     string  `json:"language" validate:"required,oneof=en hi mr"`
	Status       *string `json:"status,omitempty" validate:"omitempty,oneof=draft published"`
	Title        string  `json:"title" validate:"required,min=1"`
	Location     *string `json:"location,omitempty"`
	Summary      *string `json:"summary,omitempty"`
	Introduction *string `json:"introduction,omitempty"`
	Requirements *string `json:"requirements,omitempty"`
	ContentHTML  string  `json:"contentHtml" validate:"required,min=1"`
}

// Date strings accept RFC 3339 or a bare YYYY-MM-DD.
type CreateEventRequest struct {
	Slug                  string                  `json:"slug" validate:"required,min=1,max=200"`
	StartDate             *string                 `json:"startDate,omitempty"`
	EndDate               *string                 `json:"endDate,omitempty"`
	RegistrationStartDate *string                 `json:"registrationStartDate,omitempty"`
	RegistrationEndDate   *string                 `json:"registrationEndDate,omitempty"`
	CoverImagePath        *string                 `json:"coverImagePath,omitempty"`
	FlyerImagePath        *string                 `json:"flyerImagePath,omitempty"`
	RegistrationFormURL   *string                 `json:"registrationFormUrl,omitempty"`
	EventPrice            *string                 `json:"eventPrice,omitempty"`
	ParticipationType     *string                 `json:"participationType,omitempty"`
	Translations          []EventTranslationInput `json:"translations" validate:"required,min=1,dive"`
}

type UpdateEventRequest struct {
	Slug                  *string          `json:"slug,omitempty" validate:"omitempty,min=1,max=200"`
	StartDate             Optional[string] `json:"startDate,omitzero"`
	EndDate               Optional[string] `json:"endDate,omitzero"`
	RegistrationStartDate Optional[string] `json:"registrationStartDate,omitzero"`
	RegistrationEndDate   Optional[string] `json:"registrationEndDate,omitzero"`
	CoverImagePath        Optional[string] `json:"coverImagePath,omitzero"`
	FlyerImagePath        Optional[string] `json:"flyerImagePath,omitzero"`
	RegistrationFormURL   Optional[string] `json:"registrationFormUrl,omitzero"`
	EventPrice            Optional[string] `json:"eventPrice,omitzero"`
	ParticipationType     Optional[string] `json:"participationType,omitzero"`
}

// Empty reports whether the patch carries no changes.
func (r UpdateEventRequest) Empty() bool {
	return r.Slug == nil &&
		!r.StartDate.Set && !r.EndDate.Set &&
		!r.RegistrationStartDate.Set && !r.RegistrationEndDate.Set &&
		!r.CoverImagePath.Set && !r.FlyerImagePath.Set &&
		!r.RegistrationFormURL.Set && !r.EventPrice.Set &&
		!r.ParticipationType.Set
}
