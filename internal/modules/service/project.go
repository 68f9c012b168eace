package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sitegenie/sitegenie/internal/modules/model"
	"github.com/sitegenie/sitegenie/internal/modules/repo"
	"github.com/sitegenie/sitegenie/internal/pkg/apperr"
	"github.com/sitegenie/sitegenie/internal/pkg/paging"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProjectService interface {
	Create(ctx context.Context, in CreateProjectInput) (*model.Project, error)
	Get(ctx context.Context, userID uuid.UUID, projectID uuid.UUID) (*model.Project, error)
	Update(ctx context.Context, p *model.Project, in UpdateProjectInput) (*model.Project, error)
	Delete(ctx context.Context, userID uuid.UUID, projectID uuid.UUID) error
	List(ctx context.Context, in ListProjectsInput) (*ListProjectsOutput, error)
	UpdateDesign(ctx context.Context, p *model.Project, design map[string]interface{}) (*model.Project, error)
}

type projectService struct{ r repo.ProjectRepo }

func NewProjectService(r repo.ProjectRepo) ProjectService {
	return &projectService{r: r}
}

type CreateProjectInput struct {
	UserID          uuid.UUID
	Name            string
	Description     string
	DefaultLanguage string
	Design          map[string]interface{}
}

type UpdateProjectInput struct {
	Name            *string
	Description     *string
	Status          *string
	DefaultLanguage *string
}

func (s *projectService) Create(ctx context.Context, in CreateProjectInput) (*model.Project, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Validation("name is required", nil)
	}
	lang := strings.TrimSpace(in.DefaultLanguage)
	if lang == "" {
		lang = "en"
	}
	design := datatypes.JSONMap{}
	for k, v := range in.Design {
		design[k] = v
	}

	p := &model.Project{
		UserID:          in.UserID,
		Name:            name,
		Description:     in.Description,
		Status:          model.ProjectStatusDraft,
		DefaultLanguage: lang,
		Design:          design,
	}
	if err := s.r.Create(ctx, p); err != nil {
		return nil, apperr.Internal("create project", err)
	}
	return p, nil
}

func (s *projectService) Get(ctx context.Context, userID uuid.UUID, projectID uuid.UUID) (*model.Project, error) {
	p, err := s.r.Get(ctx, userID, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("project not found")
		}
		return nil, apperr.Internal("load project", err)
	}
	return p, nil
}

func (s *projectService) Update(ctx context.Context, p *model.Project, in UpdateProjectInput) (*model.Project, error) {
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, apperr.Validation("name must not be empty", nil)
		}
		p.Name = name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Status != nil {
		if !model.ValidProjectStatus(*in.Status) {
			return nil, apperr.Validation("status must be one of draft, published, archived", nil)
		}
		p.Status = *in.Status
	}
	if in.DefaultLanguage != nil && strings.TrimSpace(*in.DefaultLanguage) != "" {
		p.DefaultLanguage = strings.TrimSpace(*in.DefaultLanguage)
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.r.Update(ctx, p); err != nil {
		return nil, apperr.Internal("update project", err)
	}
	return p, nil
}

func (s *projectService) Delete(ctx context.Context, userID uuid.UUID, projectID uuid.UUID) error {
	if err := s.r.Delete(ctx, userID, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("project not found")
		}
		return apperr.Internal("delete project", err)
	}
	return nil
}

// UpdateDesign replaces the design document wholesale.
func (s *projectService) UpdateDesign(ctx context.Context, p *model.Project, design map[string]interface{}) (*model.Project, error) {
	if design == nil {
		return nil, apperr.Validation("design must be a JSON object", nil)
	}
	if err := s.r.UpdateDesign(ctx, p.ID, datatypes.JSONMap(design)); err != nil {
		return nil, apperr.Internal("update design", err)
	}
	p.Design = datatypes.JSONMap(design)
	return p, nil
}

type ListProjectsInput struct {
	UserID   uuid.UUID `json:"user_id"`
	Limit    int       `json:"limit"`
	Cursor   string    `json:"cursor"`
	TimeDesc bool      `json:"time_desc"`
}

type ListProjectsOutput struct {
	Items      []*model.Project `json:"items"`
	NextCursor string           `json:"next_cursor,omitempty"`
	HasMore    bool             `json:"has_more"`
}

func (s *projectService) List(ctx context.Context, in ListProjectsInput) (*ListProjectsOutput, error) {
	// Parse cursor (createdAt, id); an empty cursor starts from the first page
	var afterT time.Time
	var afterID uuid.UUID
	var err error
	if in.Cursor != "" {
		afterT, afterID, err = paging.DecodeCursor(in.Cursor)
		if err != nil {
			return nil, apperr.Validation("invalid cursor", err)
		}
	}

	// Query limit+1 is used to determine has_more
	projects, err := s.r.ListWithCursor(ctx, in.UserID, afterT, afterID, in.Limit+1, in.TimeDesc)
	if err != nil {
		return nil, apperr.Internal("list projects", err)
	}

	out := &ListProjectsOutput{
		Items:   projects,
		HasMore: false,
	}
	if len(projects) > in.Limit {
		out.HasMore = true
		out.Items = projects[:in.Limit]
		last := out.Items[len(out.Items)-1]
		out.NextCursor = paging.EncodeCursor(last.CreatedAt, last.ID)
	}
	return out, nil
}
