package models

type Partner struct {
	BaseModel
	Name        string  `gorm:"size:255;not null" json:"name"`
	Link        string  `gorm:"size:255" json:"link"`
	Description string  `gorm:"size:512" json:"description"`
	SortOrder   int     `gorm:"default:0" json:"sort_order"`
	CategoryID  *string `gorm:"type:uuid;index" json:"category_id,omitempty"`
	IsActive    bool    `gorm:"default:true" json:"is_active"`
	LogoURL     string  `gorm:"size:512" json:"logo_url"`
	LogoPath    string  `gorm:"size:512" json:"-"`

	Category *PartnerCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

type PartnerCategory struct {
	BaseModel
	Name string `gorm:"size:255;unique;not null" json:"name"`
}
