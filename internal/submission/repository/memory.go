package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/whynotact/backend/internal/submission"
)

// MemoryRepo is an in-memory submission store used for unit tests and for
// local development without a MongoDB instance.
type MemoryRepo struct {
	mu        sync.RWMutex
	petitions map[string]*submission.PetitionSignature
	stories   map[string]*submission.Story
	seq       int
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		petitions: make(map[string]*submission.PetitionSignature),
		stories:   make(map[string]*submission.Story),
	}
}

func (m *MemoryRepo) nextID(prefix string) string {
	m.seq++
	return fmt.Sprintf("%s_%d_%d", prefix, time.Now().UnixNano(), m.seq)
}

func (m *MemoryRepo) CreatePetition(ctx context.Context, sig *submission.PetitionSignature) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sig.ID = m.nextID("sig")
	cp := *sig
	m.petitions[sig.ID] = &cp
	return sig.ID, nil
}

func (m *MemoryRepo) CountPetitions(ctx context.Context, theme string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var n int64
	for _, p := range m.petitions {
		if theme == "" || p.Theme == theme {
			n++
		}
	}
	return n, nil
}

func (m *MemoryRepo) DeletePetition(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.petitions[id]; !ok {
		return ErrNotFound
	}
	delete(m.petitions, id)
	return nil
}

func (m *MemoryRepo) CreateStory(ctx context.Context, st *submission.Story) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st.ID = m.nextID("story")
	cp := *st
	m.stories[st.ID] = &cp
	return st.ID, nil
}

func (m *MemoryRepo) ListPublishedStories(ctx context.Context, opts submission.ListOptions) ([]*submission.StoryView, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	matched := []*submission.Story{}
	for _, st := range m.stories {
		if st.Status != submission.StatusPublished {
			continue
		}
		if opts.Theme != "" && st.Theme != opts.Theme {
			continue
		}
		matched = append(matched, st)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	if opts.Offset > 0 {
		if opts.Offset >= len(matched) {
			matched = nil
		} else {
			matched = matched[opts.Offset:]
		}
	}
	if opts.Limit > 0 && len(matched) > opts.Limit {
		matched = matched[:opts.Limit]
	}
	out := make([]*submission.StoryView, 0, len(matched))
	for _, st := range matched {
		out = append(out, &submission.StoryView{
			ID:        st.ID,
			Name:      st.Name,
			Story:     st.Story,
			Theme:     st.Theme,
			CreatedAt: st.CreatedAt,
		})
	}
	return out, nil
}

func (m *MemoryRepo) DeleteStory(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.stories[id]; !ok {
		return ErrNotFound
	}
	delete(m.stories, id)
	return nil
}

// Publish flips a story to published status. Test helper standing in for the
// CMS-side moderation transition.
func (m *MemoryRepo) Publish(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.stories[id]
	if !ok {
		return ErrNotFound
	}
	st.Status = submission.StatusPublished
	return nil
}
