package models

// Page placements a banner can be attached to.
const (
	BannerPageHome     = "home"
	BannerPageAbout    = "about"
	BannerPageServices = "services"
	BannerPageProducts = "products"
	BannerPageContact  = "contact"
	BannerPageBlog     = "blog"
)

var BannerPages = []string{
	BannerPageHome, BannerPageAbout, BannerPageServices,
	BannerPageProducts, BannerPageContact, BannerPageBlog,
}

func IsValidBannerPage(page string) bool {
	for _, p := range BannerPages {
		if p == page {
			return true
		}
	}
	return false
}

type Banner struct {
	BaseModel
	Title     string `gorm:"size:255;not null" json:"title"`
	Subtitle  string `gorm:"size:255" json:"subtitle"`
	Link      string `gorm:"size:255" json:"link"`
	Status    bool   `gorm:"default:true" json:"status"`
	Page      string `gorm:"size:50;not null;default:'home'" json:"page"`
	ImageURL  string `gorm:"size:512" json:"image_url"`
	ImagePath string `gorm:"size:512" json:"-"` // storage path, not exposed
}
