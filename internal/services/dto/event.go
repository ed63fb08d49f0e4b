package dto

import (
	"encoding/json"

	"promoadmin/pkg/apperrors"
)

// EventForm is bound from the multipart body. Nested collections arrive as
// JSON-encoded text fields inside the form.
type EventForm struct {
	Title          string `form:"title" json:"title" validate:"required"`
	Subtitle       string `form:"subtitle" json:"subtitle"`
	Date           string `form:"date" json:"date"`
	Location       string `form:"location" json:"location"`
	Category       string `form:"category" json:"category"`
	Description    string `form:"description" json:"description"`
	Published      bool   `form:"published" json:"published"`
	Participants   string `form:"participants" json:"-"`
	Certifications string `form:"certifications" json:"-"`
	Certificates   string `form:"certificates" json:"-"`
}

// EventPayload is the decoded event document, also bound directly from the
// JSON body of non-multipart PUT updates.
type EventPayload struct {
	Title          string               `json:"title" validate:"required"`
	Subtitle       string               `json:"subtitle"`
	Date           string               `json:"date"`
	Location       string               `json:"location"`
	Category       string               `json:"category"`
	Description    string               `json:"description"`
	Published      bool                 `json:"published"`
	Participants   []ParticipantPayload `json:"participants"`
	Certifications []string             `json:"certifications"`
	Certificates   []CertificatePayload `json:"certificates"`
}

type ParticipantPayload struct {
	Name string `json:"name" validate:"required"`
	Role string `json:"role"`
}

type CertificatePayload struct {
	Title string `json:"title" validate:"required"`
}

// ToPayload decodes the JSON-encoded collection fields.
func (f *EventForm) ToPayload() (*EventPayload, error) {
	p := &EventPayload{
		Title:       f.Title,
		Subtitle:    f.Subtitle,
		Date:        f.Date,
		Location:    f.Location,
		Category:    f.Category,
		Description: f.Description,
		Published:   f.Published,
	}

	if f.Participants != "" {
		if err := json.Unmarshal([]byte(f.Participants), &p.Participants); err != nil {
			return nil, apperrors.NewBadRequestError("invalid participants field: " + err.Error())
		}
	}
	if f.Certifications != "" {
		if err := json.Unmarshal([]byte(f.Certifications), &p.Certifications); err != nil {
			return nil, apperrors.NewBadRequestError("invalid certifications field: " + err.Error())
		}
	}
	if f.Certificates != "" {
		if err := json.Unmarshal([]byte(f.Certificates), &p.Certificates); err != nil {
			return nil, apperrors.NewBadRequestError("invalid certificates field: " + err.Error())
		}
	}

	return p, nil
}
