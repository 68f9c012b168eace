package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sitegenie/sitegenie/internal/infra/blob"
	"github.com/sitegenie/sitegenie/internal/infra/cache"
	"github.com/sitegenie/sitegenie/internal/infra/queue"
	"github.com/sitegenie/sitegenie/internal/modules/model"
	"github.com/sitegenie/sitegenie/internal/modules/repo"
	"github.com/sitegenie/sitegenie/internal/pkg/apperr"
	"github.com/sitegenie/sitegenie/internal/pkg/sitebundle"
	"github.com/sitegenie/sitegenie/internal/pkg/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProgressStore keeps per-job done/total counters.
type ProgressStore interface {
	Start(ctx context.Context, id uuid.UUID, total int) error
	Incr(ctx context.Context, id uuid.UUID) (int64, error)
	Get(ctx context.Context, id uuid.UUID) (cache.Progress, bool, error)
	Clear(ctx context.Context, id uuid.UUID) error
}

type ExportService interface {
	Start(ctx context.Context, project *model.Project, kind string) (*model.DeploymentLog, error)
	Status(ctx context.Context, projectID uuid.UUID, logID uuid.UUID) (*ExportStatus, error)
	Open(ctx context.Context, projectID uuid.UUID, logID uuid.UUID) (*ExportArchive, error)
	List(ctx context.Context, projectID uuid.UUID) ([]*model.DeploymentLog, error)
	ProcessDeployment(ctx context.Context, logID uuid.UUID) error
	AbandonDeployment(ctx context.Context, logID uuid.UUID, reason string) error
}

type ExportServiceConfig struct {
	// SitesURL is the base of published site URLs.
	SitesURL string
}

type exportService struct {
	logs     repo.DeploymentRepo
	projects repo.ProjectRepo
	pages    repo.PageRepo
	store    ObjectStore
	jobs     JobDispatcher
	progress ProgressStore
	events   EventSink
	cfg      ExportServiceConfig
	log      *zap.Logger
	now      func() time.Time
}

func NewExportService(logs repo.DeploymentRepo, projects repo.ProjectRepo, pages repo.PageRepo, store ObjectStore, jobs JobDispatcher, progress ProgressStore, events EventSink, cfg ExportServiceConfig, log *zap.Logger) ExportService {
	return &exportService{
		logs:     logs,
		projects: projects,
		pages:    pages,
		store:    store,
		jobs:     jobs,
		progress: progress,
		events:   events,
		cfg:      cfg,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

type ExportStatus struct {
	ExportID     uuid.UUID       `json:"export_id"`
	Kind         string          `json:"kind"`
	Status       model.JobStatus `json:"status"`
	Progress     int             `json:"progress"`
	DownloadURL  *string         `json:"download_url"`
	ErrorMessage string          `json:"error_message,omitempty"`
	StartedAt    time.Time       `json:"started_at"`
	CompletedAt  *time.Time      `json:"completed_at"`
}

type ExportArchive struct {
	Body     io.ReadCloser
	Size     int64
	FileName string
}

// DownloadPath is the API path serving a completed archive.
func DownloadPath(projectID, logID uuid.UUID) string {
	return fmt.Sprintf("/api/projects/%s/export/%s/download", projectID, logID)
}

func (s *exportService) Start(ctx context.Context, project *model.Project, kind string) (*model.DeploymentLog, error) {
	if kind != model.DeploymentKindExport && kind != model.DeploymentKindPublish {
		return nil, apperr.Validation("unknown deployment kind", nil)
	}
	d := &model.DeploymentLog{
		ID:               uuid.New(),
		ProjectID:        project.ID,
		Kind:             kind,
		DeploymentStatus: model.JobStatusInProgress,
		StartedAt:        s.now(),
	}
	if err := s.logs.Create(ctx, d); err != nil {
		return nil, apperr.Internal("create deployment log", err)
	}

	if err := s.jobs.EnqueueDeployment(ctx, d.ID); err != nil {
		s.fail(ctx, d, "could not schedule build")
		return nil, apperr.Internal("enqueue deployment", err)
	}
	return d, nil
}

func (s *exportService) get(ctx context.Context, projectID, logID uuid.UUID) (*model.DeploymentLog, error) {
	d, err := s.logs.Get(ctx, projectID, logID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("export not found")
		}
		return nil, apperr.Internal("load deployment log", err)
	}
	return d, nil
}

// startedProgress is reported for a run that has not finished.
const startedProgress = 50

func (s *exportService) Status(ctx context.Context, projectID uuid.UUID, logID uuid.UUID) (*ExportStatus, error) {
	d, err := s.get(ctx, projectID, logID)
	if err != nil {
		return nil, err
	}

	out := &ExportStatus{
		ExportID:     d.ID,
		Kind:         d.Kind,
		Status:       d.DeploymentStatus,
		ErrorMessage: d.ErrorMessage,
		StartedAt:    d.StartedAt,
		CompletedAt:  d.CompletedAt,
	}
	switch d.DeploymentStatus {
	case model.JobStatusCompleted:
		out.Progress = 100
		url := DownloadPath(d.ProjectID, d.ID)
		out.DownloadURL = &url
	case model.JobStatusFailed:
		out.Progress = 0
	default:
		// the counter fills the upper half so progress never moves backwards
		// once the run has been reported as started
		out.Progress = startedProgress
		p, ok, err := s.progress.Get(ctx, d.ID)
		if err != nil {
			s.log.Sugar().Warnw("read export progress", "export_id", d.ID, "err", err)
		} else if ok && p.Total > 0 {
			out.Progress = startedProgress + p.Percent()/2
		}
	}
	return out, nil
}

// Open streams the archive of a completed run; anything else is not found.
func (s *exportService) Open(ctx context.Context, projectID uuid.UUID, logID uuid.UUID) (*ExportArchive, error) {
	d, err := s.get(ctx, projectID, logID)
	if err != nil {
		return nil, err
	}
	if d.DeploymentStatus != model.JobStatusCompleted || d.ArtifactKey == "" {
		return nil, apperr.NotFound("export is not ready")
	}

	body, size, err := s.store.Download(ctx, d.ArtifactKey)
	if err != nil {
		return nil, apperr.Internal("open export archive", err)
	}
	if size <= 0 {
		size = d.ArtifactSize
	}
	return &ExportArchive{
		Body:     body,
		Size:     size,
		FileName: fmt.Sprintf("site-%s.zip", d.ID),
	}, nil
}

func (s *exportService) List(ctx context.Context, projectID uuid.UUID) ([]*model.DeploymentLog, error) {
	logs, err := s.logs.ListByProject(ctx, projectID, listLimit)
	if err != nil {
		return nil, apperr.Internal("list deployment logs", err)
	}
	return logs, nil
}

func (s *exportService) siteURL(projectID uuid.UUID) string {
	return strings.TrimSuffix(s.cfg.SitesURL, "/") + "/" + projectID.String() + "/"
}

// ProcessDeployment builds and stores the site archive for a deployment log.
// A missing or finished log is a no-op.
func (s *exportService) ProcessDeployment(ctx context.Context, logID uuid.UUID) error {
	d, err := s.logs.GetByID(ctx, logID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Sugar().Infow("deployment log gone, skipping", "export_id", logID)
			return nil
		}
		return fmt.Errorf("load deployment log: %w", err)
	}
	if d.DeploymentStatus.IsTerminal() {
		s.log.Sugar().Infow("deployment already finished", "export_id", logID, "status", d.DeploymentStatus)
		return nil
	}

	project, err := s.projects.GetByID(ctx, d.ProjectID)
	if err != nil {
		s.log.Sugar().Errorw("load project for deployment", "export_id", logID, "err", err)
		s.fail(ctx, d, "project could not be loaded")
		return nil
	}
	pages, err := s.pages.ListByProject(ctx, d.ProjectID, true)
	if err != nil {
		s.log.Sugar().Errorw("load pages for deployment", "export_id", logID, "err", err)
		s.fail(ctx, d, "pages could not be loaded")
		return nil
	}

	if err := s.progress.Start(ctx, d.ID, len(pages)); err != nil {
		s.log.Sugar().Warnw("start export progress", "export_id", d.ID, "err", err)
	}
	defer func() {
		if err := s.progress.Clear(context.WithoutCancel(ctx), d.ID); err != nil {
			s.log.Sugar().Warnw("clear export progress", "export_id", d.ID, "err", err)
		}
	}()

	site := siteFromProject(project, pages, s.siteURL(project.ID))
	var buf bytes.Buffer
	stats, err := sitebundle.Build(&buf, site, func(done, total int) {
		if _, err := s.progress.Incr(ctx, d.ID); err != nil {
			s.log.Sugar().Debugw("incr export progress", "export_id", d.ID, "err", err)
		}
	})
	if err != nil {
		s.log.Sugar().Errorw("build site archive", "export_id", logID, "err", err)
		s.fail(ctx, d, "site archive could not be built")
		return nil
	}

	name, err := utils.GenerateKey(d.ID.String() + "-")
	if err != nil {
		s.fail(ctx, d, "archive name could not be generated")
		return nil
	}
	key := blob.DatedKey("exports/"+d.ProjectID.String(), name+".zip", s.now())
	size := int64(buf.Len())
	if _, err := s.store.UploadReader(ctx, key, "application/zip", bytes.NewReader(buf.Bytes()), size); err != nil {
		s.log.Sugar().Errorw("upload site archive", "export_id", logID, "err", err)
		s.fail(ctx, d, "site archive could not be stored")
		return nil
	}

	res := repo.DeploymentResult{
		PagesTotal:   len(pages),
		PagesBundled: stats.Pages,
		ArtifactKey:  key,
		ArtifactSize: size,
		CompletedAt:  s.now(),
	}
	if d.Kind == model.DeploymentKindPublish {
		res.PublishedURL = s.siteURL(project.ID)
	}
	ok, err := s.logs.Complete(ctx, d, res)
	if err != nil {
		s.log.Sugar().Errorw("complete deployment", "export_id", logID, "err", err)
		s.fail(ctx, d, "deployment result could not be saved")
		return nil
	}
	if !ok {
		s.log.Sugar().Infow("deployment finished elsewhere", "export_id", logID)
		return nil
	}

	s.log.Sugar().Infow("deployment completed", "export_id", logID, "kind", d.Kind, "pages", stats.Pages, "bytes", size)
	s.events.Publish(ctx, queue.JobEvent{
		Type:      eventType(d.Kind),
		JobID:     d.ID,
		ProjectID: d.ProjectID,
		Status:    string(model.JobStatusCompleted),
	})
	return nil
}

// AbandonDeployment fails a deployment whose job gave up before finishing.
func (s *exportService) AbandonDeployment(ctx context.Context, logID uuid.UUID, reason string) error {
	ctx = context.WithoutCancel(ctx)
	d, err := s.logs.GetByID(ctx, logID)
	if err == nil {
		s.fail(ctx, d, reason)
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	// the row is unreadable; the guarded write still ends the run
	if _, err := s.logs.Fail(ctx, logID, reason, s.now()); err != nil {
		return fmt.Errorf("fail deployment log: %w", err)
	}
	return nil
}

func (s *exportService) fail(ctx context.Context, d *model.DeploymentLog, msg string) {
	ctx = context.WithoutCancel(ctx)
	ok, err := s.logs.Fail(ctx, d.ID, msg, s.now())
	if err != nil {
		s.log.Sugar().Errorw("fail deployment", "export_id", d.ID, "err", err)
		return
	}
	if ok {
		s.events.Publish(ctx, queue.JobEvent{
			Type:      eventType(d.Kind),
			JobID:     d.ID,
			ProjectID: d.ProjectID,
			Status:    string(model.JobStatusFailed),
			Message:   msg,
		})
	}
}

func eventType(kind string) string {
	if kind == model.DeploymentKindPublish {
		return queue.EventPublish
	}
	return queue.EventExport
}

func siteFromProject(p *model.Project, pages []*model.Page, baseURL string) sitebundle.Site {
	slugs := make(map[uuid.UUID]string, len(pages))
	for _, pg := range pages {
		slugs[pg.ID] = pg.URLSlug
	}

	site := sitebundle.Site{
		Name:      p.Name,
		Language:  p.DefaultLanguage,
		BaseURL:   baseURL,
		Design:    map[string]interface{}(p.Design),
		UpdatedAt: p.UpdatedAt,
		Pages:     make([]sitebundle.Page, 0, len(pages)),
	}
	for _, pg := range pages {
		bp := sitebundle.Page{
			Slug:         pg.URLSlug,
			Title:        pg.Title,
			Content:      pg.Content,
			IsPillarPage: pg.IsPillarPage,
		}
		if pg.ParentPageID != nil {
			bp.ParentSlug = slugs[*pg.ParentPageID]
		}
		if pg.SEO != nil {
			bp.MetaTitle = pg.SEO.MetaTitle
			bp.MetaDescription = pg.SEO.MetaDescription
			bp.Keywords = append([]string{}, pg.SEO.SecondaryKeywords...)
			if pg.SEO.FocusKeyword != "" {
				bp.Keywords = append([]string{pg.SEO.FocusKeyword}, bp.Keywords...)
			}
		}
		site.Pages = append(site.Pages, bp)
	}
	return site
}
