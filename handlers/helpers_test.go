package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/whynotact/backend/internal/content"
	"github.com/whynotact/backend/internal/submission"
)

// failingRepo simulates an unreachable content store.
type failingRepo struct{}

var errStoreDown = errors.New("store exploded")

func (f *failingRepo) CreatePetition(ctx context.Context, sig *submission.PetitionSignature) (string, error) {
	return "", errStoreDown
}

func (f *failingRepo) CountPetitions(ctx context.Context, theme string) (int64, error) {
	return 0, errStoreDown
}

func (f *failingRepo) DeletePetition(ctx context.Context, id string) error {
	return errStoreDown
}

func (f *failingRepo) CreateStory(ctx context.Context, st *submission.Story) (string, error) {
	return "", errStoreDown
}

func (f *failingRepo) ListPublishedStories(ctx context.Context, opts submission.ListOptions) ([]*submission.StoryView, error) {
	return nil, errStoreDown
}

func (f *failingRepo) DeleteStory(ctx context.Context, id string) error {
	return errStoreDown
}

// failingContentRepo simulates an unreachable content store on the read path.
type failingContentRepo struct{}

func (f *failingContentRepo) Questions(ctx context.Context, layer string) ([]*content.Question, error) {
	return nil, errStoreDown
}

func (f *failingContentRepo) ImpactPoints(ctx context.Context) ([]*content.ImpactPoint, error) {
	return nil, errStoreDown
}

func (f *failingContentRepo) DataPoints(ctx context.Context) ([]*content.DataPoint, error) {
	return nil, errStoreDown
}

func extractID(t *testing.T, body []byte, field string) string {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &resp))
	id, _ := resp[field].(string)
	require.NotEmpty(t, id)
	return id
}
