package repository

import (
	"context"
	"errors"

	"github.com/whynotact/backend/internal/content"
)

var ErrNotFound = errors.New("content not found")

// Repository defines read operations against the content store. All listings
// are returned in ascending order of the authoring order key; an empty result
// is an empty slice, never an error.
type Repository interface {
	Questions(ctx context.Context, layer string) ([]*content.Question, error)
	ImpactPoints(ctx context.Context) ([]*content.ImpactPoint, error)
	DataPoints(ctx context.Context) ([]*content.DataPoint, error)
}
