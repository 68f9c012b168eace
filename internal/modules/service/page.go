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
	"github.com/sitegenie/sitegenie/internal/pkg/utils"
	"gorm.io/gorm"
)

type PageService interface {
	Create(ctx context.Context, in CreatePageInput) (*model.Page, error)
	Get(ctx context.Context, projectID uuid.UUID, pageID uuid.UUID) (*model.Page, error)
	Update(ctx context.Context, in UpdatePageInput) (*model.Page, error)
	Delete(ctx context.Context, projectID uuid.UUID, pageID uuid.UUID) error
	List(ctx context.Context, projectID uuid.UUID) ([]*model.Page, error)
	Tree(ctx context.Context, projectID uuid.UUID) ([]*model.PageNode, error)
}

type pageService struct{ r repo.PageRepo }

func NewPageService(r repo.PageRepo) PageService {
	return &pageService{r: r}
}

type CreatePageInput struct {
	ProjectID    uuid.UUID
	Title        string
	URLSlug      string
	Content      string
	IsPillarPage bool
	ParentPageID *uuid.UUID
}

// UpdatePageInput carries optional fields; nil leaves a field unchanged.
// ClearParent detaches the page from its parent.
type UpdatePageInput struct {
	ProjectID    uuid.UUID
	PageID       uuid.UUID
	Title        *string
	URLSlug      *string
	Content      *string
	IsPillarPage *bool
	ParentPageID *uuid.UUID
	ClearParent  bool
}

func (s *pageService) Create(ctx context.Context, in CreatePageInput) (*model.Page, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, apperr.Validation("title is required", nil)
	}
	slug, err := s.checkSlug(ctx, in.ProjectID, in.URLSlug, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if in.ParentPageID != nil {
		if err := s.checkParent(ctx, in.ProjectID, uuid.Nil, *in.ParentPageID); err != nil {
			return nil, err
		}
	}

	p := &model.Page{
		ID:           uuid.New(),
		ProjectID:    in.ProjectID,
		Title:        title,
		URLSlug:      slug,
		Content:      in.Content,
		IsPillarPage: in.IsPillarPage,
		ParentPageID: in.ParentPageID,
	}
	if err := s.r.Create(ctx, p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("url_slug already exists in this project", err)
		}
		return nil, apperr.Internal("create page", err)
	}
	return p, nil
}

func (s *pageService) Get(ctx context.Context, projectID uuid.UUID, pageID uuid.UUID) (*model.Page, error) {
	p, err := s.r.Get(ctx, projectID, pageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("page not found")
		}
		return nil, apperr.Internal("load page", err)
	}
	return p, nil
}

func (s *pageService) Update(ctx context.Context, in UpdatePageInput) (*model.Page, error) {
	p, err := s.Get(ctx, in.ProjectID, in.PageID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, apperr.Validation("title must not be empty", nil)
		}
		p.Title = title
	}
	if in.URLSlug != nil {
		slug, err := s.checkSlug(ctx, in.ProjectID, *in.URLSlug, p.ID)
		if err != nil {
			return nil, err
		}
		p.URLSlug = slug
	}
	if in.Content != nil {
		p.Content = *in.Content
	}
	if in.IsPillarPage != nil {
		p.IsPillarPage = *in.IsPillarPage
	}
	switch {
	case in.ClearParent:
		p.ParentPageID = nil
	case in.ParentPageID != nil:
		if err := s.checkParent(ctx, in.ProjectID, p.ID, *in.ParentPageID); err != nil {
			return nil, err
		}
		p.ParentPageID = in.ParentPageID
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.r.Update(ctx, p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("url_slug already exists in this project", err)
		}
		return nil, apperr.Internal("update page", err)
	}
	return p, nil
}

func (s *pageService) Delete(ctx context.Context, projectID uuid.UUID, pageID uuid.UUID) error {
	if err := s.r.Delete(ctx, projectID, pageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("page not found")
		}
		return apperr.Internal("delete page", err)
	}
	return nil
}

func (s *pageService) List(ctx context.Context, projectID uuid.UUID) ([]*model.Page, error) {
	pages, err := s.r.ListByProject(ctx, projectID, true)
	if err != nil {
		return nil, apperr.Internal("list pages", err)
	}
	return pages, nil
}

func (s *pageService) Tree(ctx context.Context, projectID uuid.UUID) ([]*model.PageNode, error) {
	pages, err := s.r.ListByProject(ctx, projectID, false)
	if err != nil {
		return nil, apperr.Internal("list pages", err)
	}
	return BuildPageTree(pages), nil
}

// BuildPageTree nests pages under their parents. Pages whose parent is
// missing are returned as roots. Input order is kept among siblings.
func BuildPageTree(pages []*model.Page) []*model.PageNode {
	nodes := make(map[uuid.UUID]*model.PageNode, len(pages))
	for _, p := range pages {
		nodes[p.ID] = &model.PageNode{Page: p, Children: []*model.PageNode{}}
	}

	roots := make([]*model.PageNode, 0)
	for _, p := range pages {
		n := nodes[p.ID]
		if p.ParentPageID != nil {
			if parent, ok := nodes[*p.ParentPageID]; ok && parent != n {
				parent.Children = append(parent.Children, n)
				continue
			}
		}
		roots = append(roots, n)
	}
	return roots
}

func (s *pageService) checkSlug(ctx context.Context, projectID uuid.UUID, raw string, exceptID uuid.UUID) (string, error) {
	slug := utils.Slugify(raw)
	if slug == "" {
		return "", apperr.Validation("url_slug is required", nil)
	}
	exists, err := s.r.SlugExists(ctx, projectID, slug, exceptID)
	if err != nil {
		return "", apperr.Internal("check slug", err)
	}
	if exists {
		return "", apperr.Conflict("url_slug already exists in this project", nil)
	}
	return slug, nil
}

// checkParent rejects parents outside the project and parent links that
// would close a cycle through pageID.
func (s *pageService) checkParent(ctx context.Context, projectID uuid.UUID, pageID uuid.UUID, parentID uuid.UUID) error {
	if pageID != uuid.Nil && parentID == pageID {
		return apperr.Validation("a page cannot be its own parent", nil)
	}

	pages, err := s.r.ListByProject(ctx, projectID, false)
	if err != nil {
		return apperr.Internal("list pages", err)
	}
	parents := make(map[uuid.UUID]*uuid.UUID, len(pages))
	for _, p := range pages {
		parents[p.ID] = p.ParentPageID
	}
	if _, ok := parents[parentID]; !ok {
		return apperr.Validation("parent page must belong to the same project", nil)
	}
	if pageID == uuid.Nil {
		return nil
	}

	seen := map[uuid.UUID]bool{}
	for cur := &parentID; cur != nil; cur = parents[*cur] {
		if *cur == pageID {
			return apperr.Validation("parent page would create a cycle", nil)
		}
		if seen[*cur] {
			break
		}
		seen[*cur] = true
	}
	return nil
}
