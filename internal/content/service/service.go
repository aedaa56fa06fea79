package service

import (
	"context"
	"errors"

	"github.com/whynotact/backend/internal/content"
	"github.com/whynotact/backend/internal/content/repository"
	"github.com/whynotact/backend/internal/lens"
	"github.com/whynotact/backend/pkg/logger"
)

// Service defines the content read operations used by the handler layer.
type Service interface {
	Questions(ctx context.Context, layer string) ([]*content.Question, error)
	ImpactPointsForLens(ctx context.Context, active lens.Lens) ([]*content.ResolvedImpactPoint, error)
	DataPointsForLens(ctx context.Context, active lens.Lens) ([]*content.ResolvedDataPoint, error)
}

func New(repo repository.Repository) Service {
	return &svc{repo: repo}
}

type svc struct {
	repo repository.Repository
}

// Questions returns the full variant map per question; the client resolves the
// active lens when rendering.
func (s *svc) Questions(ctx context.Context, layer string) ([]*content.Question, error) {
	return s.repo.Questions(ctx, layer)
}

// ImpactPointsForLens resolves each impact point to the active lens. Items
// authored without a variant for the lens are skipped rather than failing the
// whole listing.
func (s *svc) ImpactPointsForLens(ctx context.Context, active lens.Lens) ([]*content.ResolvedImpactPoint, error) {
	items, err := s.repo.ImpactPoints(ctx)
	if err != nil {
		return nil, err
	}
	out := []*content.ResolvedImpactPoint{}
	for _, p := range items {
		v, err := lens.Resolve(p.Variants, active)
		if err != nil {
			if errors.Is(err, lens.ErrNoVariant) {
				logger.Warnf("impact point %s has no %s variant, skipping", p.ID, active)
				continue
			}
			return nil, err
		}
		out = append(out, &content.ResolvedImpactPoint{
			ID:       p.ID,
			Order:    p.Order,
			Topic:    p.Topic,
			Headline: v.Headline,
			Body:     v.Body,
			Framing:  v.Framing,
		})
	}
	return out, nil
}

func (s *svc) DataPointsForLens(ctx context.Context, active lens.Lens) ([]*content.ResolvedDataPoint, error) {
	items, err := s.repo.DataPoints(ctx)
	if err != nil {
		return nil, err
	}
	out := []*content.ResolvedDataPoint{}
	for _, d := range items {
		v, err := lens.Resolve(d.Variants, active)
		if err != nil {
			if errors.Is(err, lens.ErrNoVariant) {
				logger.Warnf("data point %s has no %s variant, skipping", d.ID, active)
				continue
			}
			return nil, err
		}
		out = append(out, &content.ResolvedDataPoint{
			ID:       d.ID,
			Order:    d.Order,
			Source:   d.Source,
			Headline: v.Headline,
			Body:     v.Body,
			Framing:  v.Framing,
		})
	}
	return out, nil
}
