package service

import (
	"context"
	"errors"

	"github.com/whynotact/backend/internal/submission"
	"github.com/whynotact/backend/internal/submission/repository"
	"github.com/whynotact/backend/pkg/logger"
	"github.com/whynotact/backend/pkg/metrics"
)

const (
	defaultStoryLimit = 10
	maxStoryLimit     = 100
)

// Service binds validation to persistence. Validation is fully local and
// synchronous; the store create call is attempted exactly once per request
// with no retry.
type Service interface {
	SubmitPetition(ctx context.Context, req submission.PetitionRequest, meta submission.RequestMeta) (string, error)
	PetitionCount(ctx context.Context, theme string) (int64, error)
	SubmitStory(ctx context.Context, req submission.StoryRequest, meta submission.RequestMeta) (string, error)
	PublishedStories(ctx context.Context, opts submission.ListOptions) ([]*submission.StoryView, error)
	DeletePetition(ctx context.Context, id string) error
	DeleteStory(ctx context.Context, id string) error
}

func New(repo repository.Repository) Service {
	return &svc{repo: repo}
}

type svc struct {
	repo repository.Repository
}

func (s *svc) SubmitPetition(ctx context.Context, req submission.PetitionRequest, meta submission.RequestMeta) (string, error) {
	sig, err := submission.ValidatePetition(req, meta)
	if err != nil {
		metrics.SubmissionRejected("petition", rejectionReason(err))
		return "", err
	}
	id, err := s.repo.CreatePetition(ctx, sig)
	if err != nil {
		logger.Errorf("petition create failed: %v", err)
		return "", &submission.PersistenceError{Op: "create petition", Cause: err}
	}
	metrics.SubmissionAccepted("petition")
	return id, nil
}

func (s *svc) PetitionCount(ctx context.Context, theme string) (int64, error) {
	return s.repo.CountPetitions(ctx, theme)
}

func (s *svc) SubmitStory(ctx context.Context, req submission.StoryRequest, meta submission.RequestMeta) (string, error) {
	st, err := submission.ValidateStory(req, meta)
	if err != nil {
		metrics.SubmissionRejected("story", rejectionReason(err))
		return "", err
	}
	id, err := s.repo.CreateStory(ctx, st)
	if err != nil {
		logger.Errorf("story create failed: %v", err)
		return "", &submission.PersistenceError{Op: "create story", Cause: err}
	}
	metrics.SubmissionAccepted("story")
	return id, nil
}

func (s *svc) PublishedStories(ctx context.Context, opts submission.ListOptions) ([]*submission.StoryView, error) {
	if opts.Limit <= 0 {
		opts.Limit = defaultStoryLimit
	}
	if opts.Limit > maxStoryLimit {
		opts.Limit = maxStoryLimit
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}
	return s.repo.ListPublishedStories(ctx, opts)
}

func (s *svc) DeletePetition(ctx context.Context, id string) error {
	return s.repo.DeletePetition(ctx, id)
}

func (s *svc) DeleteStory(ctx context.Context, id string) error {
	return s.repo.DeleteStory(ctx, id)
}

func rejectionReason(err error) string {
	var verr *submission.ValidationError
	if errors.As(err, &verr) {
		return string(verr.Code)
	}
	return "persistence"
}
