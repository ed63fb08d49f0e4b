package adminsdk

import (
	"context"
	"net/http"
	"time"
)

type SupportSection struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	IsActive    bool            `json:"is_active"`
	Plans       []SupportPlan   `json:"plans"`
	Options     []SupportOption `json:"options"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type SupportPlan struct {
	ID           string           `json:"id,omitempty"`
	Name         string           `json:"name"`
	SupportHours string           `json:"support_hours"`
	Coverage     string           `json:"coverage"`
	Features     []SupportFeature `json:"features"`
}

type SupportFeature struct {
	ID   string `json:"id,omitempty"`
	Text string `json:"text"`
}

type SupportOption struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SupportAPI wraps the support-system endpoints. Saving sends the whole
// section with both nested collections; removing a persisted plan, option
// or feature is a separate, immediate delete call.
type SupportAPI struct {
	c *Client
}

func (c *Client) Support() *SupportAPI {
	return &SupportAPI{c: c}
}

// List returns the sections; the backend keeps at most one.
func (a *SupportAPI) List(ctx context.Context) ([]SupportSection, error) {
	var sections []SupportSection
	err := a.c.getJSON(ctx, "/admin/support-system", &sections)
	return sections, err
}

// Create persists a new section with everything it carries.
func (a *SupportAPI) Create(ctx context.Context, draft SupportSection) (*SupportSection, error) {
	var section SupportSection
	if err := a.c.sendJSON(ctx, http.MethodPost, "/admin/support-system", supportDocument(draft), &section); err != nil {
		return nil, err
	}
	return &section, nil
}

// Update saves the section as a whole document. Items carrying an id are
// updated, items without one are created; nothing is deleted here.
func (a *SupportAPI) Update(ctx context.Context, id string, draft SupportSection) (*SupportSection, error) {
	var section SupportSection
	if err := a.c.sendJSON(ctx, http.MethodPut, "/admin/support-system/"+id, supportDocument(draft), &section); err != nil {
		return nil, err
	}
	return &section, nil
}

func (a *SupportAPI) DeletePlan(ctx context.Context, id string) error {
	return a.c.delete(ctx, "/admin/support-plan/"+id)
}

func (a *SupportAPI) DeleteOption(ctx context.Context, id string) error {
	return a.c.delete(ctx, "/admin/support-option/"+id)
}

func (a *SupportAPI) DeleteFeature(ctx context.Context, id string) error {
	return a.c.delete(ctx, "/admin/support-feature/"+id)
}

func supportDocument(draft SupportSection) map[string]interface{} {
	plans := draft.Plans
	if plans == nil {
		plans = []SupportPlan{}
	}
	options := draft.Options
	if options == nil {
		options = []SupportOption{}
	}
	return map[string]interface{}{
		"title":       draft.Title,
		"description": draft.Description,
		"is_active":   draft.IsActive,
		"plans":       plans,
		"options":     options,
	}
}

// FormSchema binds the section editor. There is no image slot; the form is
// pure structured data.
func (a *SupportAPI) FormSchema() FormSchema[SupportSection] {
	return FormSchema[SupportSection]{
		Empty: func() SupportSection { return SupportSection{IsActive: true} },
		ID:    func(s SupportSection) string { return s.ID },
		Validate: func(s SupportSection) string {
			if s.Title == "" {
				return "Please enter a title"
			}
			for _, plan := range s.Plans {
				if plan.Name == "" {
					return "Every plan needs a name"
				}
			}
			return ""
		},
		Create: func(ctx context.Context, draft SupportSection, _ *StagedFile) error {
			_, err := a.Create(ctx, draft)
			return err
		},
		Update: func(ctx context.Context, id string, draft SupportSection, _ *StagedFile) error {
			_, err := a.Update(ctx, id, draft)
			return err
		},
	}
}
