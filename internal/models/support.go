package models

// SupportSection is a singleton: the panel edits one section owning the
// plan and option collections. Plans, features and options carry their own
// identities because the panel deletes them individually (eager delete),
// while additions only persist on an explicit section save.
type SupportSection struct {
	BaseModel
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`

	Plans   []SupportPlan   `gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE" json:"plans"`
	Options []SupportOption `gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE" json:"options"`
}

type SupportPlan struct {
	BaseModel
	SectionID    string `gorm:"type:uuid;not null;index" json:"-"`
	Name         string `gorm:"size:255;not null" json:"name"`
	SupportHours string `gorm:"size:100" json:"support_hours"`
	Coverage     string `gorm:"size:255" json:"coverage"`
	Position     int    `gorm:"default:0" json:"position"`

	Features []SupportFeature `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE" json:"features"`
}

type SupportFeature struct {
	BaseModel
	PlanID   string `gorm:"type:uuid;not null;index" json:"-"`
	Text     string `gorm:"size:512;not null" json:"text"`
	Position int    `gorm:"default:0" json:"position"`
}

type SupportOption struct {
	BaseModel
	SectionID   string `gorm:"type:uuid;not null;index" json:"-"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Position    int    `gorm:"default:0" json:"position"`
}
