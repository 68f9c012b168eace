package handler

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/sitegenie/sitegenie/internal/modules/model"
	"github.com/sitegenie/sitegenie/internal/modules/service"
	"github.com/stretchr/testify/mock"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, in service.RegisterInput) (*service.AuthOutput, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthOutput), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, in service.LoginInput) (*service.AuthOutput, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthOutput), args.Error(1)
}

func (m *MockUserService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *MockUserService) Authenticate(ctx context.Context, token string) (*model.User, *model.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*model.User), args.Get(1).(*model.Session), args.Error(2)
}

// MockProjectService is a mock implementation of ProjectService
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) Create(ctx context.Context, in service.CreateProjectInput) (*model.Project, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) Get(ctx context.Context, userID uuid.UUID, projectID uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, userID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) Update(ctx context.Context, p *model.Project, in service.UpdateProjectInput) (*model.Project, error) {
	args := m.Called(ctx, p, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) Delete(ctx context.Context, userID uuid.UUID, projectID uuid.UUID) error {
	return m.Called(ctx, userID, projectID).Error(0)
}

func (m *MockProjectService) List(ctx context.Context, in service.ListProjectsInput) (*service.ListProjectsOutput, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListProjectsOutput), args.Error(1)
}

func (m *MockProjectService) UpdateDesign(ctx context.Context, p *model.Project, design map[string]interface{}) (*model.Project, error) {
	args := m.Called(ctx, p, design)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

// MockPageService is a mock implementation of PageService
type MockPageService struct {
	mock.Mock
}

func (m *MockPageService) Create(ctx context.Context, in service.CreatePageInput) (*model.Page, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page), args.Error(1)
}

func (m *MockPageService) Get(ctx context.Context, projectID uuid.UUID, pageID uuid.UUID) (*model.Page, error) {
	args := m.Called(ctx, projectID, pageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page), args.Error(1)
}

func (m *MockPageService) Update(ctx context.Context, in service.UpdatePageInput) (*model.Page, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page), args.Error(1)
}

func (m *MockPageService) Delete(ctx context.Context, projectID uuid.UUID, pageID uuid.UUID) error {
	return m.Called(ctx, projectID, pageID).Error(0)
}

func (m *MockPageService) List(ctx context.Context, projectID uuid.UUID) ([]*model.Page, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Page), args.Error(1)
}

func (m *MockPageService) Tree(ctx context.Context, projectID uuid.UUID) ([]*model.PageNode, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.PageNode), args.Error(1)
}

// MockSEOService is a mock implementation of SEOService
type MockSEOService struct {
	mock.Mock
}

func (m *MockSEOService) Upsert(ctx context.Context, in service.UpsertSEOInput) (*model.SEOMetadata, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SEOMetadata), args.Error(1)
}

func (m *MockSEOService) Get(ctx context.Context, projectID uuid.UUID, pageID uuid.UUID) (*model.SEOMetadata, error) {
	args := m.Called(ctx, projectID, pageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SEOMetadata), args.Error(1)
}

// MockGenerationService is a mock implementation of GenerationService
type MockGenerationService struct {
	mock.Mock
}

func (m *MockGenerationService) Generate(ctx context.Context, in service.GenerateInput) (*service.GenerateOutput, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GenerateOutput), args.Error(1)
}

func (m *MockGenerationService) Get(ctx context.Context, projectID uuid.UUID, generationID uuid.UUID) (*model.AIContentGeneration, error) {
	args := m.Called(ctx, projectID, generationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AIContentGeneration), args.Error(1)
}

// MockCSVService is a mock implementation of CSVService
type MockCSVService struct {
	mock.Mock
}

func (m *MockCSVService) Start(ctx context.Context, in service.StartCSVInput) (*model.CSVUpload, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CSVUpload), args.Error(1)
}

func (m *MockCSVService) Preview(ctx context.Context, projectID uuid.UUID, fh *multipart.FileHeader) (*service.CSVPreviewOutput, error) {
	args := m.Called(ctx, projectID, fh)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CSVPreviewOutput), args.Error(1)
}

func (m *MockCSVService) Get(ctx context.Context, projectID uuid.UUID, uploadID uuid.UUID) (*model.CSVUpload, error) {
	args := m.Called(ctx, projectID, uploadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CSVUpload), args.Error(1)
}

func (m *MockCSVService) List(ctx context.Context, projectID uuid.UUID) ([]*model.CSVUpload, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.CSVUpload), args.Error(1)
}

func (m *MockCSVService) ProcessCSVUpload(ctx context.Context, uploadID uuid.UUID) error {
	return m.Called(ctx, uploadID).Error(0)
}

func (m *MockCSVService) AbandonCSVUpload(ctx context.Context, uploadID uuid.UUID, reason string) error {
	return m.Called(ctx, uploadID, reason).Error(0)
}

// MockExportService is a mock implementation of ExportService
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) Start(ctx context.Context, project *model.Project, kind string) (*model.DeploymentLog, error) {
	args := m.Called(ctx, project, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DeploymentLog), args.Error(1)
}

func (m *MockExportService) Status(ctx context.Context, projectID uuid.UUID, logID uuid.UUID) (*service.ExportStatus, error) {
	args := m.Called(ctx, projectID, logID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportStatus), args.Error(1)
}

func (m *MockExportService) Open(ctx context.Context, projectID uuid.UUID, logID uuid.UUID) (*service.ExportArchive, error) {
	args := m.Called(ctx, projectID, logID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportArchive), args.Error(1)
}

func (m *MockExportService) List(ctx context.Context, projectID uuid.UUID) ([]*model.DeploymentLog, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.DeploymentLog), args.Error(1)
}

func (m *MockExportService) ProcessDeployment(ctx context.Context, logID uuid.UUID) error {
	return m.Called(ctx, logID).Error(0)
}

func (m *MockExportService) AbandonDeployment(ctx context.Context, logID uuid.UUID, reason string) error {
	return m.Called(ctx, logID, reason).Error(0)
}

// MockAnalyticsService is a mock implementation of AnalyticsService
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) Summary(ctx context.Context, projectID uuid.UUID) (*service.AnalyticsSummary, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AnalyticsSummary), args.Error(1)
}
