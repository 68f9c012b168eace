package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sitegenie/sitegenie/internal/modules/model"
	"github.com/sitegenie/sitegenie/internal/modules/repo"
	"github.com/sitegenie/sitegenie/internal/pkg/apperr"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ContentGenerator turns a prompt into page content.
type ContentGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type GenerationService interface {
	Generate(ctx context.Context, in GenerateInput) (*GenerateOutput, error)
	Get(ctx context.Context, projectID uuid.UUID, generationID uuid.UUID) (*model.AIContentGeneration, error)
}

type generationService struct {
	pages repo.PageRepo
	r     repo.GenerationRepo
	ai    ContentGenerator
	log   *zap.Logger
}

func NewGenerationService(pages repo.PageRepo, r repo.GenerationRepo, ai ContentGenerator, log *zap.Logger) GenerationService {
	return &generationService{pages: pages, r: r, ai: ai, log: log}
}

type GenerateInput struct {
	ProjectID uuid.UUID
	PageID    uuid.UUID
	Prompt    string
}

type GenerateOutput struct {
	GenerationID uuid.UUID       `json:"generation_id"`
	Status       model.JobStatus `json:"status"`
	Content      string          `json:"content"`
}

func (s *generationService) Generate(ctx context.Context, in GenerateInput) (*GenerateOutput, error) {
	prompt := strings.TrimSpace(in.Prompt)
	if prompt == "" {
		return nil, apperr.Validation("prompt is required", nil)
	}
	if _, err := s.pages.Get(ctx, in.ProjectID, in.PageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("page not found")
		}
		return nil, apperr.Internal("load page", err)
	}

	g := &model.AIContentGeneration{
		ID:        uuid.New(),
		ProjectID: in.ProjectID,
		PageID:    in.PageID,
		Prompt:    prompt,
		Status:    model.JobStatusPending,
	}
	if err := s.r.Create(ctx, g); err != nil {
		return nil, apperr.Internal("create generation", err)
	}

	content, err := s.ai.Generate(ctx, prompt)
	if err != nil {
		s.log.Sugar().Errorw("content generation failed", "generation_id", g.ID, "page_id", g.PageID, "err", err)
		// the caller may have gone away; the failure must still be recorded
		if _, ferr := s.r.Fail(context.WithoutCancel(ctx), g.ID, err.Error()); ferr != nil {
			s.log.Sugar().Errorw("record generation failure", "generation_id", g.ID, "err", ferr)
		}
		if apperr.IsKind(err, apperr.KindUpstream) {
			return nil, err
		}
		return nil, apperr.Upstream("content provider failed", 0, err)
	}

	// a disconnected caller must not leave the generation pending
	store := context.WithoutCancel(ctx)
	if _, err := s.r.Complete(store, g, content); err != nil {
		s.log.Sugar().Errorw("store generated content", "generation_id", g.ID, "err", err)
		if _, ferr := s.r.Fail(store, g.ID, "generated content could not be saved"); ferr != nil {
			s.log.Sugar().Errorw("record generation failure", "generation_id", g.ID, "err", ferr)
		}
		return nil, apperr.Internal("store generated content", err)
	}

	return &GenerateOutput{
		GenerationID: g.ID,
		Status:       model.JobStatusCompleted,
		Content:      content,
	}, nil
}

func (s *generationService) Get(ctx context.Context, projectID uuid.UUID, generationID uuid.UUID) (*model.AIContentGeneration, error) {
	g, err := s.r.Get(ctx, projectID, generationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("generation not found")
		}
		return nil, apperr.Internal("load generation", err)
	}
	return g, nil
}
