package dto

// BannerForm is bound from the multipart body of banner create/update
// requests. The image arrives as a separate file part.
type BannerForm struct {
	Title    string `form:"title" json:"title" validate:"required"`
	Subtitle string `form:"subtitle" json:"subtitle"`
	Link     string `form:"link" json:"link" validate:"omitempty,url"`
	Status   bool   `form:"status" json:"status"`
	Page     string `form:"page" json:"page" validate:"required,oneof=home about services products contact blog"`
}
