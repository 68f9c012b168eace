package service

import (
	"context"
	"io"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"github.com/sitegenie/sitegenie/internal/infra/blob"
	"github.com/sitegenie/sitegenie/internal/infra/cache"
	"github.com/sitegenie/sitegenie/internal/infra/queue"
	"github.com/sitegenie/sitegenie/internal/modules/model"
	"github.com/sitegenie/sitegenie/internal/modules/repo"
	"github.com/stretchr/testify/mock"
	"gorm.io/datatypes"
)

// MockUserRepo is a mock implementation of UserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, u *model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// MockSessionRepo is a mock implementation of SessionRepo
type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) Create(ctx context.Context, s *model.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionRepo) Get(ctx context.Context, id uuid.UUID) (*model.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *MockSessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSessionRepo) DeleteExpired(ctx context.Context, userID uuid.UUID, now time.Time) (int64, error) {
	args := m.Called(ctx, userID, now)
	return args.Get(0).(int64), args.Error(1)
}

// MockProjectRepo is a mock implementation of ProjectRepo
type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) Create(ctx context.Context, p *model.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepo) Get(ctx context.Context, userID uuid.UUID, projectID uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, userID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) GetByID(ctx context.Context, projectID uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) Update(ctx context.Context, p *model.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepo) UpdateDesign(ctx context.Context, projectID uuid.UUID, design datatypes.JSONMap) error {
	args := m.Called(ctx, projectID, design)
	return args.Error(0)
}

func (m *MockProjectRepo) Touch(ctx context.Context, projectID uuid.UUID, at time.Time) error {
	args := m.Called(ctx, projectID, at)
	return args.Error(0)
}

func (m *MockProjectRepo) Delete(ctx context.Context, userID uuid.UUID, projectID uuid.UUID) error {
	args := m.Called(ctx, userID, projectID)
	return args.Error(0)
}

func (m *MockProjectRepo) ListWithCursor(ctx context.Context, userID uuid.UUID, afterCreatedAt time.Time, afterID uuid.UUID, limit int, timeDesc bool) ([]*model.Project, error) {
	args := m.Called(ctx, userID, afterCreatedAt, afterID, limit, timeDesc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Project), args.Error(1)
}

// MockPageRepo is a mock implementation of PageRepo
type MockPageRepo struct {
	mock.Mock
}

func (m *MockPageRepo) Create(ctx context.Context, p *model.Page) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPageRepo) Get(ctx context.Context, projectID uuid.UUID, pageID uuid.UUID) (*model.Page, error) {
	args := m.Called(ctx, projectID, pageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page), args.Error(1)
}

func (m *MockPageRepo) Update(ctx context.Context, p *model.Page) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPageRepo) Delete(ctx context.Context, projectID uuid.UUID, pageID uuid.UUID) error {
	args := m.Called(ctx, projectID, pageID)
	return args.Error(0)
}

func (m *MockPageRepo) ListByProject(ctx context.Context, projectID uuid.UUID, withSEO bool) ([]*model.Page, error) {
	args := m.Called(ctx, projectID, withSEO)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Page), args.Error(1)
}

func (m *MockPageRepo) SlugExists(ctx context.Context, projectID uuid.UUID, slug string, exceptID uuid.UUID) (bool, error) {
	args := m.Called(ctx, projectID, slug, exceptID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPageRepo) SlugIndex(ctx context.Context, projectID uuid.UUID) (map[string]uuid.UUID, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]uuid.UUID), args.Error(1)
}

// MockSEORepo is a mock implementation of SEORepo
type MockSEORepo struct {
	mock.Mock
}

func (m *MockSEORepo) Upsert(ctx context.Context, s *model.SEOMetadata) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSEORepo) Get(ctx context.Context, pageID uuid.UUID) (*model.SEOMetadata, error) {
	args := m.Called(ctx, pageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SEOMetadata), args.Error(1)
}

// MockCSVUploadRepo is a mock implementation of CSVUploadRepo
type MockCSVUploadRepo struct {
	mock.Mock
}

func (m *MockCSVUploadRepo) Create(ctx context.Context, u *model.CSVUpload) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockCSVUploadRepo) Get(ctx context.Context, projectID uuid.UUID, uploadID uuid.UUID) (*model.CSVUpload, error) {
	args := m.Called(ctx, projectID, uploadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CSVUpload), args.Error(1)
}

func (m *MockCSVUploadRepo) GetByID(ctx context.Context, uploadID uuid.UUID) (*model.CSVUpload, error) {
	args := m.Called(ctx, uploadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CSVUpload), args.Error(1)
}

func (m *MockCSVUploadRepo) ListByProject(ctx context.Context, projectID uuid.UUID, limit int) ([]*model.CSVUpload, error) {
	args := m.Called(ctx, projectID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.CSVUpload), args.Error(1)
}

func (m *MockCSVUploadRepo) Finish(ctx context.Context, uploadID uuid.UUID, res repo.ImportResult) (bool, error) {
	args := m.Called(ctx, uploadID, res)
	return args.Bool(0), args.Error(1)
}

func (m *MockCSVUploadRepo) Import(ctx context.Context, uploadID uuid.UUID, pages []*model.Page, seo []*model.SEOMetadata, res repo.ImportResult) (bool, error) {
	args := m.Called(ctx, uploadID, pages, seo, res)
	return args.Bool(0), args.Error(1)
}

// MockGenerationRepo is a mock implementation of GenerationRepo
type MockGenerationRepo struct {
	mock.Mock
}

func (m *MockGenerationRepo) Create(ctx context.Context, g *model.AIContentGeneration) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockGenerationRepo) Get(ctx context.Context, projectID uuid.UUID, generationID uuid.UUID) (*model.AIContentGeneration, error) {
	args := m.Called(ctx, projectID, generationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AIContentGeneration), args.Error(1)
}

func (m *MockGenerationRepo) Complete(ctx context.Context, g *model.AIContentGeneration, content string) (bool, error) {
	args := m.Called(ctx, g, content)
	return args.Bool(0), args.Error(1)
}

func (m *MockGenerationRepo) Fail(ctx context.Context, generationID uuid.UUID, msg string) (bool, error) {
	args := m.Called(ctx, generationID, msg)
	return args.Bool(0), args.Error(1)
}

// MockDeploymentRepo is a mock implementation of DeploymentRepo
type MockDeploymentRepo struct {
	mock.Mock
}

func (m *MockDeploymentRepo) Create(ctx context.Context, d *model.DeploymentLog) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeploymentRepo) Get(ctx context.Context, projectID uuid.UUID, logID uuid.UUID) (*model.DeploymentLog, error) {
	args := m.Called(ctx, projectID, logID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DeploymentLog), args.Error(1)
}

func (m *MockDeploymentRepo) GetByID(ctx context.Context, logID uuid.UUID) (*model.DeploymentLog, error) {
	args := m.Called(ctx, logID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DeploymentLog), args.Error(1)
}

func (m *MockDeploymentRepo) ListByProject(ctx context.Context, projectID uuid.UUID, limit int) ([]*model.DeploymentLog, error) {
	args := m.Called(ctx, projectID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.DeploymentLog), args.Error(1)
}

func (m *MockDeploymentRepo) Complete(ctx context.Context, d *model.DeploymentLog, res repo.DeploymentResult) (bool, error) {
	args := m.Called(ctx, d, res)
	return args.Bool(0), args.Error(1)
}

func (m *MockDeploymentRepo) Fail(ctx context.Context, logID uuid.UUID, msg string, at time.Time) (bool, error) {
	args := m.Called(ctx, logID, msg, at)
	return args.Bool(0), args.Error(1)
}

// MockAnalyticsRepo is a mock implementation of AnalyticsRepo
type MockAnalyticsRepo struct {
	mock.Mock
}

func (m *MockAnalyticsRepo) PageStats(ctx context.Context, projectID uuid.UUID) (*repo.PageStats, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repo.PageStats), args.Error(1)
}

func (m *MockAnalyticsRepo) CSVUploadsByStatus(ctx context.Context, projectID uuid.UUID) (map[string]int64, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockAnalyticsRepo) DeploymentsByStatus(ctx context.Context, projectID uuid.UUID) (map[string]int64, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockAnalyticsRepo) LastCompletedDeployment(ctx context.Context, projectID uuid.UUID) (*time.Time, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

// MockObjectStore is a mock implementation of ObjectStore
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) UploadFormFile(ctx context.Context, keyPrefix string, fh *multipart.FileHeader) (*blob.UploadedMeta, error) {
	args := m.Called(ctx, keyPrefix, fh)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blob.UploadedMeta), args.Error(1)
}

func (m *MockObjectStore) UploadReader(ctx context.Context, key, contentType string, body io.Reader, size int64) (*blob.UploadedMeta, error) {
	args := m.Called(ctx, key, contentType, body, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blob.UploadedMeta), args.Error(1)
}

func (m *MockObjectStore) Download(ctx context.Context, key string) (io.ReadCloser, int64, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(int64), args.Error(2)
}

// MockJobDispatcher is a mock implementation of JobDispatcher
type MockJobDispatcher struct {
	mock.Mock
}

func (m *MockJobDispatcher) EnqueueCSVIngest(ctx context.Context, uploadID uuid.UUID) error {
	args := m.Called(ctx, uploadID)
	return args.Error(0)
}

func (m *MockJobDispatcher) EnqueueDeployment(ctx context.Context, logID uuid.UUID) error {
	args := m.Called(ctx, logID)
	return args.Error(0)
}

// MockEventSink records published events
type MockEventSink struct {
	mock.Mock
}

func (m *MockEventSink) Publish(ctx context.Context, ev queue.JobEvent) {
	m.Called(ctx, ev)
}

// MockProgressStore is a mock implementation of ProgressStore
type MockProgressStore struct {
	mock.Mock
}

func (m *MockProgressStore) Start(ctx context.Context, id uuid.UUID, total int) error {
	args := m.Called(ctx, id, total)
	return args.Error(0)
}

func (m *MockProgressStore) Incr(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProgressStore) Get(ctx context.Context, id uuid.UUID) (cache.Progress, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(cache.Progress), args.Bool(1), args.Error(2)
}

func (m *MockProgressStore) Clear(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockContentGenerator is a mock implementation of ContentGenerator
type MockContentGenerator struct {
	mock.Mock
}

func (m *MockContentGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
