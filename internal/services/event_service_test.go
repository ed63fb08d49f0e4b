package services

import (
	"context"
	"testing"

	"promoadmin/internal/services/dto"
	"promoadmin/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventCreateBuildsOrderedCollections(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo, &fakeImageService{})

	payload := &dto.EventPayload{
		Title: "Conference",
		Participants: []dto.ParticipantPayload{
			{Name: "Alice", Role: "Speaker"},
			{Name: "Bob", Role: "Host"},
		},
		Certifications: []string{"ISO-9001"},
		Certificates:   []dto.CertificatePayload{{Title: "Attendance"}},
	}

	event, err := svc.Create(context.Background(), payload, nil)
	require.NoError(t, err)

	require.Len(t, event.Participants, 2)
	assert.Equal(t, 0, event.Participants[0].Position)
	assert.Equal(t, 1, event.Participants[1].Position)
	assert.Equal(t, "Bob", event.Participants[1].Name)
	assert.JSONEq(t, `["ISO-9001"]`, string(event.Certifications))
	require.Len(t, event.Certificates, 1)
	assert.Equal(t, "Attendance", event.Certificates[0].Title)
}

func TestEventUpdateReplacesCollectionsWholesale(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo, &fakeImageService{})

	created, err := svc.Create(context.Background(), &dto.EventPayload{
		Title:        "Conference",
		Participants: []dto.ParticipantPayload{{Name: "Alice"}, {Name: "Bob"}},
	}, nil)
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, &dto.EventPayload{
		Title:        "Conference",
		Participants: []dto.ParticipantPayload{{Name: "Carol"}},
	}, nil)
	require.NoError(t, err)

	require.Len(t, updated.Participants, 1, "the saved document fully replaces the old collection")
	assert.Equal(t, "Carol", updated.Participants[0].Name)
}

func TestEventUpdateNilCertificationsBecomesEmptyArray(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo, &fakeImageService{})

	created, err := svc.Create(context.Background(), &dto.EventPayload{Title: "Conference"}, nil)
	require.NoError(t, err)

	assert.JSONEq(t, `[]`, string(created.Certifications))
}

func TestEventUpdateKeepsPosterWithoutNewFile(t *testing.T) {
	repo := newFakeEventRepo()
	images := &fakeImageService{}
	svc := NewEventService(repo, images)

	created, err := svc.Create(context.Background(), &dto.EventPayload{Title: "Conference"}, fileHeader("poster.png"))
	require.NoError(t, err)
	require.Equal(t, "events/poster.png", created.PosterPath)

	updated, err := svc.Update(context.Background(), created.ID, &dto.EventPayload{Title: "Renamed"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "events/poster.png", updated.PosterPath)
	assert.Empty(t, images.deleted)
}

func TestEventGetMissingIsNotFound(t *testing.T) {
	svc := NewEventService(newFakeEventRepo(), &fakeImageService{})

	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestEventFormToPayloadDecodesCollections(t *testing.T) {
	form := &dto.EventForm{
		Title:          "Conference",
		Participants:   `[{"name":"Alice","role":"Speaker"}]`,
		Certifications: `["ISO-9001"]`,
		Certificates:   `[{"title":"Attendance"}]`,
	}

	payload, err := form.ToPayload()
	require.NoError(t, err)
	require.Len(t, payload.Participants, 1)
	assert.Equal(t, "Alice", payload.Participants[0].Name)
	assert.Equal(t, []string{"ISO-9001"}, payload.Certifications)
}

func TestEventFormToPayloadRejectsMalformedJSON(t *testing.T) {
	form := &dto.EventForm{Title: "x", Participants: `{not json`}

	_, err := form.ToPayload()
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
}
