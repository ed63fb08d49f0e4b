package adminsdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreviewSlotReleasesReplacedTransient(t *testing.T) {
	var released []string
	slot := previewSlot{release: func(url string) { released = append(released, url) }}

	first := slot.setTransient("blob:1")
	assert.True(t, slot.live(first))
	assert.Empty(t, released)

	second := slot.setTransient("blob:2")
	assert.Equal(t, []string{"blob:1"}, released)
	assert.False(t, slot.live(first))
	assert.True(t, slot.live(second))
}

func TestPreviewSlotNeverReleasesPersisted(t *testing.T) {
	var released []string
	slot := previewSlot{release: func(url string) { released = append(released, url) }}

	persisted := slot.setPersisted("https://cdn.example.com/banner.png")
	slot.setTransient("blob:1")
	assert.Empty(t, released, "persisted preview must not be released on replacement")
	assert.False(t, slot.live(persisted))

	slot.clear()
	assert.Equal(t, []string{"blob:1"}, released)

	slot.setPersisted("https://cdn.example.com/other.png")
	slot.clear()
	assert.Equal(t, []string{"blob:1"}, released, "clear must not release a persisted preview")
}

func TestPreviewSlotClearIsIdempotent(t *testing.T) {
	var released []string
	slot := previewSlot{release: func(url string) { released = append(released, url) }}

	slot.setTransient("blob:1")
	slot.clear()
	slot.clear()
	assert.Equal(t, []string{"blob:1"}, released)
	assert.Nil(t, slot.get())
}
