package dto

// SupportSaveRequest is the whole-section save payload: section scalars plus
// both nested collections. Items carrying an id are updated in place, items
// without one are created. Deletion never happens through this payload:
// the panel removes plans/options/features through the dedicated delete
// endpoints the moment they are removed from the form.
type SupportSaveRequest struct {
	Title       string                 `json:"title" validate:"required"`
	Description string                 `json:"description"`
	IsActive    bool                   `json:"is_active"`
	Plans       []SupportPlanPayload   `json:"plans" validate:"dive"`
	Options     []SupportOptionPayload `json:"options" validate:"dive"`
}

type SupportPlanPayload struct {
	ID           string                  `json:"id,omitempty"`
	Name         string                  `json:"name" validate:"required"`
	SupportHours string                  `json:"support_hours"`
	Coverage     string                  `json:"coverage"`
	Features     []SupportFeaturePayload `json:"features" validate:"dive"`
}

type SupportFeaturePayload struct {
	ID   string `json:"id,omitempty"`
	Text string `json:"text" validate:"required"`
}

type SupportOptionPayload struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}
