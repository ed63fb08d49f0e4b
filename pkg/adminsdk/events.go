package adminsdk

import (
	"context"
	"net/http"
	"strconv"
	"time"
)

type Event struct {
	ID             string             `json:"id"`
	Title          string             `json:"title"`
	Subtitle       string             `json:"subtitle"`
	Date           string             `json:"date"`
	Location       string             `json:"location"`
	Category       string             `json:"category"`
	Description    string             `json:"description"`
	Published      bool               `json:"published"`
	PosterURL      string             `json:"poster_url"`
	Participants   []EventParticipant `json:"participants"`
	Certifications []string           `json:"certifications"`
	Certificates   []EventCertificate `json:"certificates"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

type EventParticipant struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type EventCertificate struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title"`
}

// EventAPI wraps the event endpoints. Nested collections are sent as whole
// documents on every save; the server replaces them wholesale.
type EventAPI struct {
	c *Client
}

func (c *Client) Events() *EventAPI {
	return &EventAPI{c: c}
}

func (a *EventAPI) List(ctx context.Context, limit int) ([]Event, error) {
	var events []Event
	err := a.c.getJSON(ctx, "/admin/events?limit="+strconv.Itoa(limit), &events)
	return events, err
}

func (a *EventAPI) Get(ctx context.Context, id string) (*Event, error) {
	var event Event
	if err := a.c.getJSON(ctx, "/admin/events/"+id, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (a *EventAPI) Create(ctx context.Context, draft Event, poster *StagedFile) (*Event, error) {
	payload, err := eventPayload(draft)
	if err != nil {
		return nil, err
	}
	if poster != nil {
		payload.SetFile("poster", poster)
	}

	var event Event
	if err := a.c.sendMultipart(ctx, "/admin/events", payload, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// Update goes multipart (POST + override) when a poster is staged, and as a
// plain JSON PUT otherwise.
func (a *EventAPI) Update(ctx context.Context, id string, draft Event, poster *StagedFile) (*Event, error) {
	var event Event

	if poster != nil {
		payload, err := eventPayload(draft)
		if err != nil {
			return nil, err
		}
		payload.MarkUpdate().SetFile("poster", poster)
		if err := a.c.sendMultipart(ctx, "/admin/events/"+id, payload, &event); err != nil {
			return nil, err
		}
		return &event, nil
	}

	if err := a.c.sendJSON(ctx, http.MethodPut, "/admin/events/"+id, eventDocument(draft), &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (a *EventAPI) Delete(ctx context.Context, id string) error {
	return a.c.delete(ctx, "/admin/events/"+id)
}

// eventDocument is the JSON body for non-multipart updates.
func eventDocument(draft Event) map[string]interface{} {
	participants := draft.Participants
	if participants == nil {
		participants = []EventParticipant{}
	}
	certifications := draft.Certifications
	if certifications == nil {
		certifications = []string{}
	}
	certificates := draft.Certificates
	if certificates == nil {
		certificates = []EventCertificate{}
	}
	return map[string]interface{}{
		"title":          draft.Title,
		"subtitle":       draft.Subtitle,
		"date":           draft.Date,
		"location":       draft.Location,
		"category":       draft.Category,
		"description":    draft.Description,
		"published":      draft.Published,
		"participants":   participants,
		"certifications": certifications,
		"certificates":   certificates,
	}
}

// eventPayload serializes the nested collections into JSON text fields
// inside the multipart body.
func eventPayload(draft Event) (*MultipartPayload, error) {
	doc := eventDocument(draft)

	payload := NewMultipartPayload().
		Set("title", draft.Title).
		SetOptional("subtitle", draft.Subtitle).
		SetOptional("date", draft.Date).
		SetOptional("location", draft.Location).
		SetOptional("category", draft.Category).
		SetOptional("description", draft.Description).
		Set("published", strconv.FormatBool(draft.Published))

	for _, field := range []string{"participants", "certifications", "certificates"} {
		if err := payload.SetJSON(field, doc[field]); err != nil {
			return nil, err
		}
	}
	return payload, nil
}

func (a *EventAPI) FormSchema() FormSchema[Event] {
	return FormSchema[Event]{
		Empty:    func() Event { return Event{} },
		ID:       func(e Event) string { return e.ID },
		ImageURL: func(e Event) string { return e.PosterURL },
		Validate: func(e Event) string {
			if e.Title == "" {
				return "Please enter a title"
			}
			return ""
		},
		File: FileRules{
			MaxSize:      5 * 1024 * 1024,
			AllowedTypes: []string{"image/jpeg", "image/png", "image/gif", "image/webp"},
		},
		Create: func(ctx context.Context, draft Event, file *StagedFile) error {
			_, err := a.Create(ctx, draft, file)
			return err
		},
		Update: func(ctx context.Context, id string, draft Event, file *StagedFile) error {
			_, err := a.Update(ctx, id, draft, file)
			return err
		},
	}
}

func (a *EventAPI) ListConfig() ListConfig[Event] {
	return ListConfig[Event]{
		Fetch:  a.List,
		Delete: a.Delete,
		ID:     func(e Event) string { return e.ID },
		SearchFields: func(e Event) []string {
			return []string{e.Title, e.Subtitle}
		},
	}
}
