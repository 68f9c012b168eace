package service

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sitegenie/sitegenie/internal/infra/blob"
	"github.com/sitegenie/sitegenie/internal/infra/cache"
	"github.com/sitegenie/sitegenie/internal/infra/queue"
	"github.com/sitegenie/sitegenie/internal/modules/model"
	"github.com/sitegenie/sitegenie/internal/modules/repo"
	"github.com/sitegenie/sitegenie/internal/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type exportMocks struct {
	logs     *MockDeploymentRepo
	projects *MockProjectRepo
	pages    *MockPageRepo
	store    *MockObjectStore
	jobs     *MockJobDispatcher
	progress *MockProgressStore
	events   *MockEventSink
}

func newExportMocks() *exportMocks {
	return &exportMocks{
		logs:     &MockDeploymentRepo{},
		projects: &MockProjectRepo{},
		pages:    &MockPageRepo{},
		store:    &MockObjectStore{},
		jobs:     &MockJobDispatcher{},
		progress: &MockProgressStore{},
		events:   &MockEventSink{},
	}
}

func (m *exportMocks) service() ExportService {
	return NewExportService(m.logs, m.projects, m.pages, m.store, m.jobs, m.progress, m.events,
		ExportServiceConfig{SitesURL: "https://sites.example.com/"}, zap.NewNop())
}

func (m *exportMocks) assert(t *testing.T) {
	m.logs.AssertExpectations(t)
	m.projects.AssertExpectations(t)
	m.pages.AssertExpectations(t)
	m.store.AssertExpectations(t)
	m.jobs.AssertExpectations(t)
	m.progress.AssertExpectations(t)
	m.events.AssertExpectations(t)
}

func TestExportService_Start(t *testing.T) {
	ctx := context.Background()
	project := &model.Project{ID: uuid.New()}

	t.Run("creates in progress log and enqueues", func(t *testing.T) {
		m := newExportMocks()
		m.logs.On("Create", ctx, mock.MatchedBy(func(d *model.DeploymentLog) bool {
			return d.Kind == model.DeploymentKindPublish &&
				d.DeploymentStatus == model.JobStatusInProgress &&
				d.ProjectID == project.ID &&
				!d.StartedAt.IsZero()
		})).Return(nil)
		m.jobs.On("EnqueueDeployment", ctx, mock.AnythingOfType("uuid.UUID")).Return(nil)

		d, err := m.service().Start(ctx, project, model.DeploymentKindPublish)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, d.ID)
		m.assert(t)
	})

	t.Run("unknown kind", func(t *testing.T) {
		m := newExportMocks()
		_, err := m.service().Start(ctx, project, "ftp")
		assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	})

	t.Run("enqueue failure fails the log", func(t *testing.T) {
		m := newExportMocks()
		m.logs.On("Create", ctx, mock.AnythingOfType("*model.DeploymentLog")).Return(nil)
		m.jobs.On("EnqueueDeployment", ctx, mock.AnythingOfType("uuid.UUID")).Return(errors.New("redis down"))
		m.logs.On("Fail", mock.Anything, mock.AnythingOfType("uuid.UUID"), "could not schedule build", mock.AnythingOfType("time.Time")).Return(true, nil)
		m.events.On("Publish", mock.Anything, mock.MatchedBy(func(ev queue.JobEvent) bool {
			return ev.Type == queue.EventExport && ev.Status == string(model.JobStatusFailed)
		})).Return()

		_, err := m.service().Start(ctx, project, model.DeploymentKindExport)
		assert.True(t, apperr.IsKind(err, apperr.KindInternal))
		m.assert(t)
	})
}

func TestExportService_Status(t *testing.T) {
	ctx := context.Background()
	projectID := uuid.New()

	tests := []struct {
		name         string
		status       model.JobStatus
		setup        func(*MockProgressStore, uuid.UUID)
		wantProgress int
		wantDownload bool
	}{
		{
			name:         "completed",
			status:       model.JobStatusCompleted,
			setup:        func(*MockProgressStore, uuid.UUID) {},
			wantProgress: 100,
			wantDownload: true,
		},
		{
			name:         "failed",
			status:       model.JobStatusFailed,
			setup:        func(*MockProgressStore, uuid.UUID) {},
			wantProgress: 0,
		},
		{
			name:   "in progress with counter",
			status: model.JobStatusInProgress,
			setup: func(p *MockProgressStore, id uuid.UUID) {
				p.On("Get", ctx, id).Return(cache.Progress{Done: 3, Total: 4}, true, nil)
			},
			wantProgress: 87,
		},
		{
			name:   "fresh counter does not go below started",
			status: model.JobStatusInProgress,
			setup: func(p *MockProgressStore, id uuid.UUID) {
				p.On("Get", ctx, id).Return(cache.Progress{Done: 0, Total: 3}, true, nil)
			},
			wantProgress: 50,
		},
		{
			name:   "project without pages",
			status: model.JobStatusInProgress,
			setup: func(p *MockProgressStore, id uuid.UUID) {
				p.On("Get", ctx, id).Return(cache.Progress{Done: 0, Total: 0}, true, nil)
			},
			wantProgress: 50,
		},
		{
			name:   "pending run",
			status: model.JobStatusPending,
			setup: func(p *MockProgressStore, id uuid.UUID) {
				p.On("Get", ctx, id).Return(cache.Progress{}, false, nil)
			},
			wantProgress: 50,
		},
		{
			name:   "counter never exceeds 99",
			status: model.JobStatusInProgress,
			setup: func(p *MockProgressStore, id uuid.UUID) {
				p.On("Get", ctx, id).Return(cache.Progress{Done: 4, Total: 4}, true, nil)
			},
			wantProgress: 99,
		},
		{
			name:   "in progress without counter",
			status: model.JobStatusInProgress,
			setup: func(p *MockProgressStore, id uuid.UUID) {
				p.On("Get", ctx, id).Return(cache.Progress{}, false, nil)
			},
			wantProgress: 50,
		},
		{
			name:   "redis error falls back",
			status: model.JobStatusInProgress,
			setup: func(p *MockProgressStore, id uuid.UUID) {
				p.On("Get", ctx, id).Return(cache.Progress{}, false, errors.New("timeout"))
			},
			wantProgress: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newExportMocks()
			d := &model.DeploymentLog{ID: uuid.New(), ProjectID: projectID, Kind: model.DeploymentKindExport, DeploymentStatus: tt.status}
			m.logs.On("Get", ctx, projectID, d.ID).Return(d, nil)
			tt.setup(m.progress, d.ID)

			out, err := m.service().Status(ctx, projectID, d.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantProgress, out.Progress)
			assert.Equal(t, tt.status, out.Status)
			if tt.wantDownload {
				require.NotNil(t, out.DownloadURL)
				assert.Equal(t, DownloadPath(projectID, d.ID), *out.DownloadURL)
			} else {
				assert.Nil(t, out.DownloadURL)
			}
			m.assert(t)
		})
	}
}

func TestExportService_Status_NotFound(t *testing.T) {
	ctx := context.Background()
	projectID, id := uuid.New(), uuid.New()

	m := newExportMocks()
	m.logs.On("Get", ctx, projectID, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := m.service().Status(ctx, projectID, id)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestExportService_Open(t *testing.T) {
	ctx := context.Background()
	projectID := uuid.New()

	t.Run("in progress is not downloadable", func(t *testing.T) {
		m := newExportMocks()
		d := &model.DeploymentLog{ID: uuid.New(), ProjectID: projectID, DeploymentStatus: model.JobStatusInProgress}
		m.logs.On("Get", ctx, projectID, d.ID).Return(d, nil)

		_, err := m.service().Open(ctx, projectID, d.ID)
		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
		m.store.AssertNotCalled(t, "Download", mock.Anything, mock.Anything)
	})

	t.Run("completed streams the archive", func(t *testing.T) {
		m := newExportMocks()
		d := &model.DeploymentLog{ID: uuid.New(), ProjectID: projectID, DeploymentStatus: model.JobStatusCompleted, ArtifactKey: "exports/a.zip", ArtifactSize: 42}
		m.logs.On("Get", ctx, projectID, d.ID).Return(d, nil)
		m.store.On("Download", ctx, "exports/a.zip").Return(io.NopCloser(strings.NewReader("PK")), int64(0), nil)

		a, err := m.service().Open(ctx, projectID, d.ID)
		require.NoError(t, err)
		defer a.Body.Close()
		assert.Equal(t, int64(42), a.Size)
		assert.Equal(t, "site-"+d.ID.String()+".zip", a.FileName)
		m.assert(t)
	})
}

func TestExportService_ProcessDeployment(t *testing.T) {
	ctx := context.Background()
	project := &model.Project{
		ID:              uuid.New(),
		Name:            "Acme",
		DefaultLanguage: "en",
		Design:          datatypes.JSONMap{"primary_color": "#123456"},
		UpdatedAt:       time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	}
	home := &model.Page{ID: uuid.New(), ProjectID: project.ID, Title: "Home", URLSlug: "home", IsPillarPage: true,
		SEO: &model.SEOMetadata{MetaTitle: "Acme home", FocusKeyword: "coffee"}}
	blog := &model.Page{ID: uuid.New(), ProjectID: project.ID, Title: "Blog", URLSlug: "blog", ParentPageID: &home.ID}

	t.Run("publish completes and clears progress", func(t *testing.T) {
		m := newExportMocks()
		d := &model.DeploymentLog{ID: uuid.New(), ProjectID: project.ID, Kind: model.DeploymentKindPublish, DeploymentStatus: model.JobStatusInProgress}
		m.logs.On("GetByID", ctx, d.ID).Return(d, nil)
		m.projects.On("GetByID", ctx, project.ID).Return(project, nil)
		m.pages.On("ListByProject", ctx, project.ID, true).Return([]*model.Page{home, blog}, nil)
		m.progress.On("Start", ctx, d.ID, 2).Return(nil)
		m.progress.On("Incr", ctx, d.ID).Return(int64(1), nil).Twice()
		m.progress.On("Clear", mock.Anything, d.ID).Return(nil)

		var archive []byte
		m.store.On("UploadReader", ctx,
			mock.MatchedBy(func(key string) bool {
				return strings.HasPrefix(key, "exports/"+project.ID.String()+"/") && strings.HasSuffix(key, ".zip")
			}),
			"application/zip", mock.Anything, mock.AnythingOfType("int64"),
		).Run(func(args mock.Arguments) {
			b, err := io.ReadAll(args.Get(3).(io.Reader))
			require.NoError(t, err)
			archive = b
		}).Return(&blob.UploadedMeta{}, nil)
		m.logs.On("Complete", ctx, d, mock.MatchedBy(func(res repo.DeploymentResult) bool {
			return res.PagesTotal == 2 &&
				res.PagesBundled == 2 &&
				res.ArtifactSize > 0 &&
				res.PublishedURL == "https://sites.example.com/"+project.ID.String()+"/"
		})).Return(true, nil)
		m.events.On("Publish", ctx, mock.MatchedBy(func(ev queue.JobEvent) bool {
			return ev.Type == queue.EventPublish && ev.Status == string(model.JobStatusCompleted)
		})).Return()

		require.NoError(t, m.service().ProcessDeployment(ctx, d.ID))
		m.assert(t)

		zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
		require.NoError(t, err)
		var names []string
		for _, f := range zr.File {
			names = append(names, f.Name)
		}
		assert.Contains(t, names, "home/index.html")
		assert.Contains(t, names, "blog/index.html")
		assert.Contains(t, names, "sitemap.xml")
	})

	t.Run("upload failure fails the log", func(t *testing.T) {
		m := newExportMocks()
		d := &model.DeploymentLog{ID: uuid.New(), ProjectID: project.ID, Kind: model.DeploymentKindExport, DeploymentStatus: model.JobStatusInProgress}
		m.logs.On("GetByID", ctx, d.ID).Return(d, nil)
		m.projects.On("GetByID", ctx, project.ID).Return(project, nil)
		m.pages.On("ListByProject", ctx, project.ID, true).Return([]*model.Page{home}, nil)
		m.progress.On("Start", ctx, d.ID, 1).Return(nil)
		m.progress.On("Incr", ctx, d.ID).Return(int64(1), nil)
		m.progress.On("Clear", mock.Anything, d.ID).Return(nil)
		m.store.On("UploadReader", ctx, mock.Anything, "application/zip", mock.Anything, mock.Anything).Return(nil, errors.New("access denied"))
		m.logs.On("Fail", mock.Anything, d.ID, "site archive could not be stored", mock.AnythingOfType("time.Time")).Return(true, nil)
		m.events.On("Publish", mock.Anything, mock.MatchedBy(func(ev queue.JobEvent) bool {
			return ev.Type == queue.EventExport && ev.Status == string(model.JobStatusFailed)
		})).Return()

		require.NoError(t, m.service().ProcessDeployment(ctx, d.ID))
		m.logs.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything)
		m.assert(t)
	})

	t.Run("finished log is a no-op", func(t *testing.T) {
		m := newExportMocks()
		d := &model.DeploymentLog{ID: uuid.New(), ProjectID: project.ID, DeploymentStatus: model.JobStatusCompleted}
		m.logs.On("GetByID", ctx, d.ID).Return(d, nil)

		require.NoError(t, m.service().ProcessDeployment(ctx, d.ID))
		m.assert(t)
	})
}

func TestSiteFromProject(t *testing.T) {
	parent := &model.Page{ID: uuid.New(), URLSlug: "services", Title: "Services"}
	child := &model.Page{ID: uuid.New(), URLSlug: "seo", Title: "SEO", ParentPageID: &parent.ID,
		SEO: &model.SEOMetadata{FocusKeyword: "seo", SecondaryKeywords: datatypes.JSONSlice[string]{"audit"}}}

	site := siteFromProject(&model.Project{Name: "Acme"}, []*model.Page{parent, child}, "https://x/")

	require.Len(t, site.Pages, 2)
	assert.Equal(t, "services", site.Pages[1].ParentSlug)
	assert.Equal(t, []string{"seo", "audit"}, site.Pages[1].Keywords)
	assert.Empty(t, site.Pages[0].ParentSlug)
}

func TestExportService_ProcessDeployment_LoadError(t *testing.T) {
	ctx := context.Background()
	m := newExportMocks()
	id := uuid.New()
	m.logs.On("GetByID", ctx, id).Return(nil, errors.New("connection reset"))

	err := m.service().ProcessDeployment(ctx, id)
	require.Error(t, err)
	m.logs.AssertNotCalled(t, "Fail", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	m.assert(t)
}

func TestExportService_AbandonDeployment(t *testing.T) {
	ctx := context.Background()
	projectID := uuid.New()
	const reason = "job could not be processed"

	tests := []struct {
		name    string
		setup   func(*exportMocks, uuid.UUID)
		wantErr bool
	}{
		{
			name: "running log is failed and announced",
			setup: func(m *exportMocks, id uuid.UUID) {
				d := &model.DeploymentLog{ID: id, ProjectID: projectID, Kind: model.DeploymentKindExport, DeploymentStatus: model.JobStatusInProgress}
				m.logs.On("GetByID", mock.Anything, id).Return(d, nil)
				m.logs.On("Fail", mock.Anything, id, reason, mock.AnythingOfType("time.Time")).Return(true, nil)
				m.events.On("Publish", mock.Anything, mock.MatchedBy(func(ev queue.JobEvent) bool {
					return ev.JobID == id && ev.Status == string(model.JobStatusFailed) && ev.Message == reason
				})).Return()
			},
		},
		{
			name: "unreadable log is failed by id",
			setup: func(m *exportMocks, id uuid.UUID) {
				m.logs.On("GetByID", mock.Anything, id).Return(nil, errors.New("connection reset"))
				m.logs.On("Fail", mock.Anything, id, reason, mock.AnythingOfType("time.Time")).Return(true, nil)
			},
		},
		{
			name: "database still down",
			setup: func(m *exportMocks, id uuid.UUID) {
				m.logs.On("GetByID", mock.Anything, id).Return(nil, errors.New("connection reset"))
				m.logs.On("Fail", mock.Anything, id, reason, mock.AnythingOfType("time.Time")).Return(false, errors.New("connection reset"))
			},
			wantErr: true,
		},
		{
			name: "deleted log",
			setup: func(m *exportMocks, id uuid.UUID) {
				m.logs.On("GetByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newExportMocks()
			id := uuid.New()
			tt.setup(m, id)

			err := m.service().AbandonDeployment(ctx, id, reason)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			m.assert(t)
		})
	}
}
