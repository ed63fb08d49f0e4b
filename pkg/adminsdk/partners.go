package adminsdk

import (
	"context"
	"strconv"
	"time"
)

type Partner struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Link        string           `json:"link"`
	Description string           `json:"description"`
	SortOrder   int              `json:"sort_order"`
	CategoryID  string           `json:"category_id,omitempty"`
	Category    *PartnerCategory `json:"category,omitempty"`
	IsActive    bool             `json:"is_active"`
	LogoURL     string           `json:"logo_url"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type PartnerCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type PartnerAPI struct {
	c *Client
}

func (c *Client) Partners() *PartnerAPI {
	return &PartnerAPI{c: c}
}

func (a *PartnerAPI) List(ctx context.Context, limit int) ([]Partner, error) {
	var partners []Partner
	err := a.c.getJSON(ctx, "/admin/partners?limit="+strconv.Itoa(limit), &partners)
	return partners, err
}

func (a *PartnerAPI) Create(ctx context.Context, draft Partner, logo *StagedFile) (*Partner, error) {
	payload := partnerPayload(draft)
	if logo != nil {
		payload.SetFile("logo", logo)
	}

	var partner Partner
	if err := a.c.sendMultipart(ctx, "/admin/partners", payload, &partner); err != nil {
		return nil, err
	}
	return &partner, nil
}

func (a *PartnerAPI) Update(ctx context.Context, id string, draft Partner, logo *StagedFile) (*Partner, error) {
	payload := partnerPayload(draft).MarkUpdate()
	if logo != nil {
		payload.SetFile("logo", logo)
	}

	var partner Partner
	if err := a.c.sendMultipart(ctx, "/admin/partners/"+id, payload, &partner); err != nil {
		return nil, err
	}
	return &partner, nil
}

func (a *PartnerAPI) Delete(ctx context.Context, id string) error {
	return a.c.delete(ctx, "/admin/partners/"+id)
}

func (a *PartnerAPI) ListCategories(ctx context.Context) ([]PartnerCategory, error) {
	var categories []PartnerCategory
	err := a.c.getJSON(ctx, "/admin/partner-categories", &categories)
	return categories, err
}

// partnerPayload builds the multipart body. An empty category id is omitted
// entirely rather than sent as an empty string.
func partnerPayload(draft Partner) *MultipartPayload {
	return NewMultipartPayload().
		Set("name", draft.Name).
		SetOptional("link", draft.Link).
		SetOptional("description", draft.Description).
		Set("sort_order", strconv.Itoa(draft.SortOrder)).
		SetOptional("category_id", draft.CategoryID).
		Set("is_active", strconv.FormatBool(draft.IsActive))
}

func (a *PartnerAPI) FormSchema() FormSchema[Partner] {
	return FormSchema[Partner]{
		Empty:    func() Partner { return Partner{IsActive: true} },
		ID:       func(p Partner) string { return p.ID },
		ImageURL: func(p Partner) string { return p.LogoURL },
		Validate: func(p Partner) string {
			if p.Name == "" {
				return "Please enter a name"
			}
			return ""
		},
		File: FileRules{
			MaxSize:      5 * 1024 * 1024,
			AllowedTypes: []string{"image/jpeg", "image/png", "image/gif", "image/webp"},
		},
		Create: func(ctx context.Context, draft Partner, file *StagedFile) error {
			_, err := a.Create(ctx, draft, file)
			return err
		},
		Update: func(ctx context.Context, id string, draft Partner, file *StagedFile) error {
			_, err := a.Update(ctx, id, draft, file)
			return err
		},
	}
}

// ListConfig searches name, description and the category name.
func (a *PartnerAPI) ListConfig() ListConfig[Partner] {
	return ListConfig[Partner]{
		Fetch:  a.List,
		Delete: a.Delete,
		ID:     func(p Partner) string { return p.ID },
		SearchFields: func(p Partner) []string {
			fields := []string{p.Name, p.Description}
			if p.Category != nil {
				fields = append(fields, p.Category.Name)
			}
			return fields
		},
	}
}
