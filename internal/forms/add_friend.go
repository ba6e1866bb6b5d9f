// Package forms holds the draft state behind the add-friend and split-bill forms.
package forms

import (
	"github.com/google/uuid"

	"github.com/mmynk/eatnsplit/internal/models"
)

// IDGenerator returns a process-unique opaque identifier.
type IDGenerator func() string

// UUIDGenerator is the default IDGenerator.
func UUIDGenerator() string {
	return uuid.New().String()
}

// AddFriendDraft is the add-friend form's local state.
type AddFriendDraft struct {
	Name  string
	Image string

	defaultImage string
}

// NewAddFriendDraft creates an empty draft whose image defaults to defaultImage.
func NewAddFriendDraft(defaultImage string) *AddFriendDraft {
	return &AddFriendDraft{Image: defaultImage, defaultImage: defaultImage}
}

// Reset restores the draft to its defaults.
func (d *AddFriendDraft) Reset() {
	d.Name = ""
	d.Image = d.defaultImage
}

// Submit builds a new friend from the draft and resets it.
// Fields are stored as typed. Returns false, leaving the draft untouched,
// if either field is empty.
func (d *AddFriendDraft) Submit(gen IDGenerator) (models.Friend, bool) {
	name, image := d.Name, d.Image
	if name == "" || image == "" {
		return models.Friend{}, false
	}

	id := gen()
	friend := models.Friend{
		ID:      id,
		Name:    name,
		Image:   image + "?=" + id,
		Balance: 0,
	}
	d.Reset()
	return friend, true
}
