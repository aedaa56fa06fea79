package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/whynotact/backend/internal/content"
)

// MemoryRepo is a simple in-memory content repository used for unit tests and
// for local development without a MongoDB instance.
type MemoryRepo struct {
	mu           sync.RWMutex
	questions    []*content.Question
	impactPoints []*content.ImpactPoint
	dataPoints   []*content.DataPoint
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Seed replaces the stored content wholesale.
func (m *MemoryRepo) Seed(qs []*content.Question, ips []*content.ImpactPoint, dps []*content.DataPoint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.questions = qs
	m.impactPoints = ips
	m.dataPoints = dps
}

func (m *MemoryRepo) Questions(ctx context.Context, layer string) ([]*content.Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []*content.Question{}
	for _, q := range m.questions {
		if layer == "" || q.Layer == layer {
			out = append(out, q)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (m *MemoryRepo) ImpactPoints(ctx context.Context) ([]*content.ImpactPoint, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := append([]*content.ImpactPoint{}, m.impactPoints...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (m *MemoryRepo) DataPoints(ctx context.Context) ([]*content.DataPoint, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := append([]*content.DataPoint{}, m.dataPoints...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}
