package adminsdk

import (
	"context"
	"strconv"
	"time"
)

type Banner struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	Link      string    `json:"link"`
	Status    bool      `json:"status"`
	Page      string    `json:"page"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BannerAPI wraps the banner endpoints.
type BannerAPI struct {
	c *Client
}

func (c *Client) Banners() *BannerAPI {
	return &BannerAPI{c: c}
}

func (a *BannerAPI) List(ctx context.Context, limit int) ([]Banner, error) {
	var banners []Banner
	err := a.c.getJSON(ctx, "/admin/banners?limit="+strconv.Itoa(limit), &banners)
	return banners, err
}

func (a *BannerAPI) Get(ctx context.Context, id string) (*Banner, error) {
	var banner Banner
	if err := a.c.getJSON(ctx, "/admin/banners/"+id, &banner); err != nil {
		return nil, err
	}
	return &banner, nil
}

func (a *BannerAPI) Create(ctx context.Context, draft Banner, image *StagedFile) (*Banner, error) {
	payload := bannerPayload(draft)
	if image != nil {
		payload.SetFile("image", image)
	}

	var banner Banner
	if err := a.c.sendMultipart(ctx, "/admin/banners", payload, &banner); err != nil {
		return nil, err
	}
	return &banner, nil
}

// Update sends the draft as a multipart POST carrying the PUT override.
// A nil image keeps the persisted one.
func (a *BannerAPI) Update(ctx context.Context, id string, draft Banner, image *StagedFile) (*Banner, error) {
	payload := bannerPayload(draft).MarkUpdate()
	if image != nil {
		payload.SetFile("image", image)
	}

	var banner Banner
	if err := a.c.sendMultipart(ctx, "/admin/banners/"+id, payload, &banner); err != nil {
		return nil, err
	}
	return &banner, nil
}

func (a *BannerAPI) Delete(ctx context.Context, id string) error {
	return a.c.delete(ctx, "/admin/banners/"+id)
}

// ToggleStatus flips the active flag server-side, independent of the edit
// flow.
func (a *BannerAPI) ToggleStatus(ctx context.Context, id string) (*Banner, error) {
	var banner Banner
	if err := a.c.do(ctx, "PATCH", "/admin/banners/"+id+"/toggle-status", "", nil, &banner); err != nil {
		return nil, err
	}
	return &banner, nil
}

func bannerPayload(draft Banner) *MultipartPayload {
	return NewMultipartPayload().
		Set("title", draft.Title).
		SetOptional("subtitle", draft.Subtitle).
		SetOptional("link", draft.Link).
		Set("status", strconv.FormatBool(draft.Status)).
		Set("page", draft.Page)
}

// FormSchema is the canonical banner form binding: title and page required,
// image required on create.
func (a *BannerAPI) FormSchema() FormSchema[Banner] {
	return FormSchema[Banner]{
		Empty:    func() Banner { return Banner{Status: true, Page: "home"} },
		ID:       func(b Banner) string { return b.ID },
		ImageURL: func(b Banner) string { return b.ImageURL },
		Validate: func(b Banner) string {
			if b.Title == "" {
				return "Please enter a title"
			}
			return ""
		},
		RequireImageOnCreate: true,
		MissingImageMessage:  "Please upload a banner image",
		File: FileRules{
			MaxSize:      5 * 1024 * 1024,
			AllowedTypes: []string{"image/jpeg", "image/png", "image/gif", "image/webp"},
		},
		Create: func(ctx context.Context, draft Banner, file *StagedFile) error {
			_, err := a.Create(ctx, draft, file)
			return err
		},
		Update: func(ctx context.Context, id string, draft Banner, file *StagedFile) error {
			_, err := a.Update(ctx, id, draft, file)
			return err
		},
	}
}

// ListConfig is the banner table binding: search over title and subtitle.
func (a *BannerAPI) ListConfig() ListConfig[Banner] {
	return ListConfig[Banner]{
		Fetch:  a.List,
		Delete: a.Delete,
		ID:     func(b Banner) string { return b.ID },
		SearchFields: func(b Banner) []string {
			return []string{b.Title, b.Subtitle}
		},
	}
}
