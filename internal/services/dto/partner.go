package dto

// PartnerForm is bound from the multipart body of partner create/update
// requests. An empty category_id means "no category" and is stored as NULL.
type PartnerForm struct {
	Name        string `form:"name" json:"name" validate:"required"`
	Link        string `form:"link" json:"link" validate:"omitempty,url"`
	Description string `form:"description" json:"description"`
	SortOrder   int    `form:"sort_order" json:"sort_order"`
	CategoryID  string `form:"category_id" json:"category_id"`
	IsActive    bool   `form:"is_active" json:"is_active"`
}
