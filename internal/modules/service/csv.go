package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sitegenie/sitegenie/internal/infra/queue"
	"github.com/sitegenie/sitegenie/internal/modules/model"
	"github.com/sitegenie/sitegenie/internal/modules/repo"
	"github.com/sitegenie/sitegenie/internal/pkg/apperr"
	"github.com/sitegenie/sitegenie/internal/pkg/csvimport"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const listLimit = 100

type CSVService interface {
	Start(ctx context.Context, in StartCSVInput) (*model.CSVUpload, error)
	Preview(ctx context.Context, projectID uuid.UUID, fh *multipart.FileHeader) (*CSVPreviewOutput, error)
	Get(ctx context.Context, projectID uuid.UUID, uploadID uuid.UUID) (*model.CSVUpload, error)
	List(ctx context.Context, projectID uuid.UUID) ([]*model.CSVUpload, error)
	ProcessCSVUpload(ctx context.Context, uploadID uuid.UUID) error
	AbandonCSVUpload(ctx context.Context, uploadID uuid.UUID, reason string) error
}

type csvService struct {
	uploads     repo.CSVUploadRepo
	pages       repo.PageRepo
	projects    repo.ProjectRepo
	store       ObjectStore
	jobs        JobDispatcher
	events      EventSink
	log         *zap.Logger
	previewRows int
	now         func() time.Time
}

func NewCSVService(uploads repo.CSVUploadRepo, pages repo.PageRepo, projects repo.ProjectRepo, store ObjectStore, jobs JobDispatcher, events EventSink, log *zap.Logger, previewRows int) CSVService {
	if previewRows <= 0 {
		previewRows = 20
	}
	return &csvService{
		uploads:     uploads,
		pages:       pages,
		projects:    projects,
		store:       store,
		jobs:        jobs,
		events:      events,
		log:         log,
		previewRows: previewRows,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

type StartCSVInput struct {
	UserID    uuid.UUID
	ProjectID uuid.UUID
	File      *multipart.FileHeader
}

func checkCSVFile(fh *multipart.FileHeader) error {
	if fh == nil {
		return apperr.Validation("file is required", nil)
	}
	if !strings.EqualFold(filepath.Ext(fh.Filename), ".csv") {
		return apperr.Validation("file must be a .csv file", nil)
	}
	return nil
}

func (s *csvService) Start(ctx context.Context, in StartCSVInput) (*model.CSVUpload, error) {
	if err := checkCSVFile(in.File); err != nil {
		return nil, err
	}

	meta, err := s.store.UploadFormFile(ctx, "csv/"+in.ProjectID.String(), in.File)
	if err != nil {
		return nil, apperr.Internal("store csv file", err)
	}

	u := &model.CSVUpload{
		ID:        uuid.New(),
		UserID:    in.UserID,
		ProjectID: in.ProjectID,
		FileName:  filepath.Base(in.File.Filename),
		FilePath:  meta.Key,
		Status:    model.JobStatusPending,
		RowErrors: datatypes.JSONSlice[model.RowError]{},
	}
	if err := s.uploads.Create(ctx, u); err != nil {
		return nil, apperr.Internal("create csv upload", err)
	}

	if err := s.projects.Touch(ctx, in.ProjectID, s.now()); err != nil {
		s.log.Sugar().Warnw("bump project updated_at", "project_id", in.ProjectID, "err", err)
	}

	if err := s.jobs.EnqueueCSVIngest(ctx, u.ID); err != nil {
		s.finish(ctx, u, repo.ImportResult{Status: model.JobStatusFailed, ErrorMessage: "could not schedule ingestion"})
		return nil, apperr.Internal("enqueue csv ingestion", err)
	}
	return u, nil
}

type CSVPreviewOutput struct {
	Rows      []csvimport.Row  `json:"rows"`
	RowsTotal int              `json:"rows_total"`
	RowsValid int              `json:"rows_valid"`
	RowErrors []model.RowError `json:"row_errors"`
}

// Preview parses and validates the file without persisting anything.
func (s *csvService) Preview(ctx context.Context, projectID uuid.UUID, fh *multipart.FileHeader) (*CSVPreviewOutput, error) {
	if err := checkCSVFile(fh); err != nil {
		return nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, apperr.Validation("file is unreadable", err)
	}
	defer f.Close()

	rows, parseErrs, err := csvimport.Parse(f)
	if err != nil {
		return nil, apperr.Validation(err.Error(), err)
	}
	index, err := s.pages.SlugIndex(ctx, projectID)
	if err != nil {
		return nil, apperr.Internal("load page slugs", err)
	}
	valid, rowErrs := csvimport.Validate(rows, slugSet(index))

	shown := valid
	if len(shown) > s.previewRows {
		shown = shown[:s.previewRows]
	}
	all := csvimport.MergeErrors(parseErrs, rowErrs)
	if all == nil {
		all = []model.RowError{}
	}
	return &CSVPreviewOutput{
		Rows:      shown,
		RowsTotal: len(rows) + len(parseErrs),
		RowsValid: len(valid),
		RowErrors: all,
	}, nil
}

func (s *csvService) Get(ctx context.Context, projectID uuid.UUID, uploadID uuid.UUID) (*model.CSVUpload, error) {
	u, err := s.uploads.Get(ctx, projectID, uploadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("csv upload not found")
		}
		return nil, apperr.Internal("load csv upload", err)
	}
	return u, nil
}

func (s *csvService) List(ctx context.Context, projectID uuid.UUID) ([]*model.CSVUpload, error) {
	uploads, err := s.uploads.ListByProject(ctx, projectID, listLimit)
	if err != nil {
		return nil, apperr.Internal("list csv uploads", err)
	}
	return uploads, nil
}

// ProcessCSVUpload ingests a pending upload. A missing or finished upload is
// a no-op. An unreadable upload row is returned as an error so the job is
// retried; every other outcome ends in exactly one terminal status.
func (s *csvService) ProcessCSVUpload(ctx context.Context, uploadID uuid.UUID) error {
	u, err := s.uploads.GetByID(ctx, uploadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Sugar().Infow("csv upload gone, skipping", "upload_id", uploadID)
			return nil
		}
		return fmt.Errorf("load csv upload: %w", err)
	}
	if u.Status.IsTerminal() {
		s.log.Sugar().Infow("csv upload already finished", "upload_id", uploadID, "status", u.Status)
		return nil
	}

	body, _, err := s.store.Download(ctx, u.FilePath)
	if err != nil {
		s.log.Sugar().Errorw("download csv", "upload_id", uploadID, "err", err)
		s.finish(ctx, u, repo.ImportResult{Status: model.JobStatusFailed, ErrorMessage: "csv file could not be read"})
		return nil
	}
	defer body.Close()

	rows, parseErrs, err := csvimport.Parse(body)
	if err != nil {
		s.log.Sugar().Errorw("parse csv", "upload_id", uploadID, "err", err)
		s.finish(ctx, u, repo.ImportResult{Status: model.JobStatusFailed, ErrorMessage: err.Error()})
		return nil
	}

	index, err := s.pages.SlugIndex(ctx, u.ProjectID)
	if err != nil {
		s.log.Sugar().Errorw("load page slugs", "upload_id", uploadID, "err", err)
		s.finish(ctx, u, repo.ImportResult{Status: model.JobStatusFailed, ErrorMessage: "could not load existing pages"})
		return nil
	}
	valid, rowErrs := csvimport.Validate(rows, slugSet(index))
	allErrs := csvimport.MergeErrors(parseErrs, rowErrs)

	pages, seo := buildImport(u.ProjectID, valid, index)

	res := repo.ImportResult{
		Status:       model.JobStatusCompleted,
		RowsTotal:    len(rows) + len(parseErrs),
		RowsImported: len(pages),
		RowsFailed:   len(allErrs),
		RowErrors:    allErrs,
		CompletedAt:  s.now(),
	}
	if len(allErrs) > 0 {
		res.Status = model.JobStatusCompletedWithErrors
	}

	ok, err := s.uploads.Import(ctx, u.ID, pages, seo, res)
	if err != nil {
		s.log.Sugar().Errorw("import csv rows", "upload_id", uploadID, "err", err)
		s.finish(ctx, u, repo.ImportResult{
			Status:       model.JobStatusFailed,
			RowsTotal:    res.RowsTotal,
			RowsFailed:   res.RowsTotal,
			RowErrors:    allErrs,
			ErrorMessage: "rows could not be saved",
		})
		return nil
	}
	if !ok {
		s.log.Sugar().Infow("csv upload finished elsewhere", "upload_id", uploadID)
		return nil
	}

	s.log.Sugar().Infow("csv upload processed", "upload_id", uploadID, "status", res.Status,
		"imported", res.RowsImported, "failed", res.RowsFailed)
	s.events.Publish(ctx, queue.JobEvent{
		Type:      queue.EventCSVIngest,
		JobID:     u.ID,
		ProjectID: u.ProjectID,
		Status:    string(res.Status),
	})
	return nil
}

// AbandonCSVUpload fails an upload whose job gave up before finishing.
func (s *csvService) AbandonCSVUpload(ctx context.Context, uploadID uuid.UUID, reason string) error {
	ctx = context.WithoutCancel(ctx)
	res := repo.ImportResult{Status: model.JobStatusFailed, ErrorMessage: reason, CompletedAt: s.now()}
	u, err := s.uploads.GetByID(ctx, uploadID)
	if err == nil {
		s.finish(ctx, u, res)
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if _, err := s.uploads.Finish(ctx, uploadID, res); err != nil {
		return fmt.Errorf("fail csv upload: %w", err)
	}
	return nil
}

func (s *csvService) finish(ctx context.Context, u *model.CSVUpload, res repo.ImportResult) {
	if res.CompletedAt.IsZero() {
		res.CompletedAt = s.now()
	}
	ctx = context.WithoutCancel(ctx)
	ok, err := s.uploads.Finish(ctx, u.ID, res)
	if err != nil {
		s.log.Sugar().Errorw("finish csv upload", "upload_id", u.ID, "status", res.Status, "err", err)
		return
	}
	if ok {
		s.events.Publish(ctx, queue.JobEvent{
			Type:      queue.EventCSVIngest,
			JobID:     u.ID,
			ProjectID: u.ProjectID,
			Status:    string(res.Status),
			Message:   res.ErrorMessage,
		})
	}
}

func slugSet(index map[string]uuid.UUID) map[string]bool {
	out := make(map[string]bool, len(index))
	for slug := range index {
		out[slug] = true
	}
	return out
}

// buildImport turns validated rows into page and SEO records. Parents
// resolve against existing pages first, then earlier rows of the file.
func buildImport(projectID uuid.UUID, rows []csvimport.Row, existing map[string]uuid.UUID) ([]*model.Page, []*model.SEOMetadata) {
	ids := make(map[string]uuid.UUID, len(existing)+len(rows))
	for slug, id := range existing {
		ids[slug] = id
	}

	pages := make([]*model.Page, 0, len(rows))
	var seo []*model.SEOMetadata
	for _, r := range rows {
		p := &model.Page{
			ID:           uuid.New(),
			ProjectID:    projectID,
			Title:        r.Title,
			URLSlug:      r.URLSlug,
			Content:      r.Content,
			IsPillarPage: r.IsPillarPage,
		}
		if r.ParentSlug != "" {
			if parentID, ok := ids[r.ParentSlug]; ok {
				p.ParentPageID = &parentID
			}
		}
		ids[r.URLSlug] = p.ID
		pages = append(pages, p)

		if r.HasSEO() {
			kw := r.SecondaryKeywords
			if kw == nil {
				kw = []string{}
			}
			seo = append(seo, &model.SEOMetadata{
				PageID:            p.ID,
				MetaTitle:         r.MetaTitle,
				MetaDescription:   r.MetaDescription,
				FocusKeyword:      r.FocusKeyword,
				SecondaryKeywords: datatypes.JSONSlice[string](kw),
			})
		}
	}
	return pages, seo
}
