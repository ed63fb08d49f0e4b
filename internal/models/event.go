package models

import (
	"gorm.io/datatypes"
)

type Event struct {
	BaseModel
	Title       string `gorm:"size:255;not null" json:"title"`
	Subtitle    string `gorm:"size:255" json:"subtitle"`
	Date        string `gorm:"size:50" json:"date"`
	Location    string `gorm:"size:255" json:"location"`
	Category    string `gorm:"size:100" json:"category"`
	Description string `gorm:"type:text" json:"description"`
	Published   bool   `gorm:"default:false" json:"published"`
	PosterURL   string `gorm:"size:512" json:"poster_url"`
	PosterPath  string `gorm:"size:512" json:"-"`

	// Nested collections. Participants and certificates are rows of their
	// own; certifications are plain strings kept as a JSON column.
	Participants   []EventParticipant `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"participants"`
	Certifications datatypes.JSON     `gorm:"type:jsonb" json:"certifications"`
	Certificates   []EventCertificate `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"certificates"`
}

type EventParticipant struct {
	BaseModel
	EventID  string `gorm:"type:uuid;not null;index" json:"-"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Role     string `gorm:"size:255" json:"role"`
	Position int    `gorm:"default:0" json:"position"`
}

type EventCertificate struct {
	BaseModel
	EventID  string `gorm:"type:uuid;not null;index" json:"-"`
	Title    string `gorm:"size:255;not null" json:"title"`
	Position int    `gorm:"default:0" json:"position"`
}
