package repository

import (
	"context"
	"errors"

	"github.com/whynotact/backend/internal/submission"
)

var ErrNotFound = errors.New("submission not found")

// Repository defines persistence operations for petition signatures and
// stories. Creates happen exactly once per request; the store owns identifier
// assignment and concurrent-write ordering. Deletes exist for administrative
// tooling only.
type Repository interface {
	CreatePetition(ctx context.Context, sig *submission.PetitionSignature) (string, error)
	CountPetitions(ctx context.Context, theme string) (int64, error)
	DeletePetition(ctx context.Context, id string) error

	CreateStory(ctx context.Context, st *submission.Story) (string, error)
	ListPublishedStories(ctx context.Context, opts submission.ListOptions) ([]*submission.StoryView, error)
	DeleteStory(ctx context.Context, id string) error
}
