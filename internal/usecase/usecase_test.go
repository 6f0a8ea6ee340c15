package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/DrekStyler/handypro-api/internal/domain"
	"github.com/DrekStyler/handypro-api/internal/usecase"
	"github.com/DrekStyler/handypro-api/pkg/apperror"
)

var testLog = slog.New(slog.NewTextHandler(io.Discard, nil))

// Mock Repositories

type MockCompanyProfileRepo struct {
	mock.Mock
}

func (m *MockCompanyProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.CompanyProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyProfile), args.Error(1)
}

func (m *MockCompanyProfileRepo) Save(ctx context.Context, profile *domain.CompanyProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockCompanyProfileRepo) Create(ctx context.Context, profile *domain.CompanyProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockCompanyProfileRepo) UpdateLogoURL(ctx context.Context, userID, logoURL string) error {
	return m.Called(ctx, userID, logoURL).Error(0)
}

type MockPortfolioRepo struct {
	mock.Mock
}

func (m *MockPortfolioRepo) ListByOwner(ctx context.Context, ownerID string) ([]*domain.PortfolioProject, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PortfolioProject), args.Error(1)
}

func (m *MockPortfolioRepo) GetByID(ctx context.Context, id string) (*domain.PortfolioProject, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PortfolioProject), args.Error(1)
}

func (m *MockPortfolioRepo) Create(ctx context.Context, project *domain.PortfolioProject) error {
	return m.Called(ctx, project).Error(0)
}

func (m *MockPortfolioRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepo) List(ctx context.Context, filter domain.ProjectFilter) ([]*domain.Project, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Project), args.Error(1)
}

func (m *MockProjectRepo) Create(ctx context.Context, project *domain.Project) error {
	return m.Called(ctx, project).Error(0)
}

func (m *MockProjectRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.UserProfile) error {
	return m.Called(ctx, user).Error(0)
}

// fakeBlobStore is hand-rolled instead of a testify mock so concurrent upload
// behavior can key off file contents deterministically.
type fakeBlobStore struct {
	mu            sync.Mutex
	uploads       []string
	deletes       []string
	failUploads   map[string]bool // fail uploads whose data matches this marker
	deleteOutcome domain.DeleteOutcome
	deleteErr     error
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{deleteOutcome: domain.Deleted, failUploads: map[string]bool{}}
}

func (f *fakeBlobStore) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUploads[string(data)] {
		return "", errors.New("backend unavailable")
	}
	url := "https://blobs.test/" + key
	f.uploads = append(f.uploads, url)
	return url, nil
}

func (f *fakeBlobStore) Delete(ctx context.Context, ref string) (domain.DeleteOutcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, ref)
	return f.deleteOutcome, f.deleteErr
}

func appCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperror.AppError, got %T: %v", err, err)
	}
	return appErr.Code
}

func TestCompanyProfileGet(t *testing.T) {
	t.Run("Should return 404, not an empty profile, when none exists", func(t *testing.T) {
		mockRepo := new(MockCompanyProfileRepo)
		uc := usecase.NewCompanyProfileUsecase(mockRepo, newFakeBlobStore(), testLog)

		mockRepo.On("GetByUserID", mock.Anything, "user1").Return(nil, domain.ErrNotFound)

		profile, err := uc.GetProfile(context.Background(), "user1")
		assert.Nil(t, profile)
		assert.Equal(t, http.StatusNotFound, appCode(t, err))
	})
}

func TestCompanyProfileSave(t *testing.T) {
	stored := func() *domain.CompanyProfile {
		return &domain.CompanyProfile{
			UserID:            "user1",
			CompanyName:       "Old Name",
			Rating:            4.6,
			CompletedProjects: 23,
			CreatedAt:         time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC),
		}
	}

	t.Run("Should preserve rating, completed count and creation time from the stored document", func(t *testing.T) {
		mockRepo := new(MockCompanyProfileRepo)
		uc := usecase.NewCompanyProfileUsecase(mockRepo, newFakeBlobStore(), testLog)

		mockRepo.On("GetByUserID", mock.Anything, "user1").Return(stored(), nil)
		mockRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		draft := &domain.CompanyProfile{
			CompanyName:       "New Name",
			Rating:            5.0, // client-submitted, must be ignored
			CompletedProjects: 999,
		}
		saved, err := uc.SaveProfile(context.Background(), "user1", draft)
		assert.NoError(t, err)
		assert.Equal(t, "New Name", saved.CompanyName)
		assert.Equal(t, 4.6, saved.Rating)
		assert.Equal(t, 23, saved.CompletedProjects)
		assert.Equal(t, stored().CreatedAt, saved.CreatedAt)
	})

	t.Run("Should force owner from context over the payload", func(t *testing.T) {
		mockRepo := new(MockCompanyProfileRepo)
		uc := usecase.NewCompanyProfileUsecase(mockRepo, newFakeBlobStore(), testLog)

		mockRepo.On("GetByUserID", mock.Anything, "user1").Return(stored(), nil)
		mockRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		saved, err := uc.SaveProfile(context.Background(), "user1", &domain.CompanyProfile{
			UserID:      "hacker_try",
			CompanyName: "New Name",
		})
		assert.NoError(t, err)
		assert.Equal(t, "user1", saved.UserID)
	})

	t.Run("Should deduplicate trades and service areas", func(t *testing.T) {
		mockRepo := new(MockCompanyProfileRepo)
		uc := usecase.NewCompanyProfileUsecase(mockRepo, newFakeBlobStore(), testLog)

		mockRepo.On("GetByUserID", mock.Anything, "user1").Return(stored(), nil)
		mockRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		saved, err := uc.SaveProfile(context.Background(), "user1", &domain.CompanyProfile{
			CompanyName:  "New Name",
			Trades:       []string{"electrical", "plumbing", "electrical"},
			ServiceAreas: []string{"Oakland", "Oakland"},
		})
		assert.NoError(t, err)
		assert.Equal(t, []string{"electrical", "plumbing"}, saved.Trades)
		assert.Equal(t, []string{"Oakland"}, saved.ServiceAreas)
	})

	t.Run("Should refuse to create a missing profile", func(t *testing.T) {
		mockRepo := new(MockCompanyProfileRepo)
		uc := usecase.NewCompanyProfileUsecase(mockRepo, newFakeBlobStore(), testLog)

		mockRepo.On("GetByUserID", mock.Anything, "user1").Return(nil, domain.ErrNotFound)

		_, err := uc.SaveProfile(context.Background(), "user1", &domain.CompanyProfile{CompanyName: "New Name"})
		assert.Equal(t, http.StatusNotFound, appCode(t, err))
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestCompanyProfileUploadLogo(t *testing.T) {
	t.Run("Should proceed when the old logo blob cannot be deleted", func(t *testing.T) {
		mockRepo := new(MockCompanyProfileRepo)
		blobs := newFakeBlobStore()
		blobs.deleteOutcome = domain.DeleteFailed
		blobs.deleteErr = errors.New("permission denied")
		uc := usecase.NewCompanyProfileUsecase(mockRepo, blobs, testLog)

		mockRepo.On("GetByUserID", mock.Anything, "user1").
			Return(&domain.CompanyProfile{UserID: "user1", LogoURL: "https://blobs.test/logos/user1/old.png"}, nil)
		mockRepo.On("UpdateLogoURL", mock.Anything, "user1", mock.Anything).Return(nil)

		url, err := uc.UploadLogo(context.Background(), "user1", []byte("png-bytes"), "image/png")
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(url, "https://blobs.test/logos/user1/"))
		assert.True(t, strings.HasSuffix(url, ".png"))
		assert.Equal(t, []string{"https://blobs.test/logos/user1/old.png"}, blobs.deletes)
		mockRepo.AssertCalled(t, "UpdateLogoURL", mock.Anything, "user1", url)
	})

	t.Run("Should not delete anything when no previous logo exists", func(t *testing.T) {
		mockRepo := new(MockCompanyProfileRepo)
		blobs := newFakeBlobStore()
		uc := usecase.NewCompanyProfileUsecase(mockRepo, blobs, testLog)

		mockRepo.On("GetByUserID", mock.Anything, "user1").
			Return(&domain.CompanyProfile{UserID: "user1"}, nil)
		mockRepo.On("UpdateLogoURL", mock.Anything, "user1", mock.Anything).Return(nil)

		_, err := uc.UploadLogo(context.Background(), "user1", []byte("png-bytes"), "image/png")
		assert.NoError(t, err)
		assert.Empty(t, blobs.deletes)
	})

	t.Run("Should keep the stored reference untouched when the upload fails", func(t *testing.T) {
		mockRepo := new(MockCompanyProfileRepo)
		blobs := newFakeBlobStore()
		blobs.failUploads["broken"] = true
		uc := usecase.NewCompanyProfileUsecase(mockRepo, blobs, testLog)

		mockRepo.On("GetByUserID", mock.Anything, "user1").
			Return(&domain.CompanyProfile{UserID: "user1"}, nil)

		_, err := uc.UploadLogo(context.Background(), "user1", []byte("broken"), "image/png")
		assert.Equal(t, http.StatusBadGateway, appCode(t, err))
		mockRepo.AssertNotCalled(t, "UpdateLogoURL", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPortfolioAdd(t *testing.T) {
	valid := func() *domain.PortfolioProject {
		return &domain.PortfolioProject{
			Title:       "Kitchen remodel",
			Description: "Full gut remodel with new cabinets.",
			ImageURLs:   []string{"https://blobs.test/portfolio/user1/a.jpg"},
		}
	}

	t.Run("Should reject blank title", func(t *testing.T) {
		mockRepo := new(MockPortfolioRepo)
		uc := usecase.NewPortfolioUsecase(mockRepo, newFakeBlobStore(), testLog)

		p := valid()
		p.Title = "   "
		_, err := uc.AddProject(context.Background(), "user1", p)
		assert.Equal(t, http.StatusBadRequest, appCode(t, err))
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject blank description", func(t *testing.T) {
		mockRepo := new(MockPortfolioRepo)
		uc := usecase.NewPortfolioUsecase(mockRepo, newFakeBlobStore(), testLog)

		p := valid()
		p.Description = ""
		_, err := uc.AddProject(context.Background(), "user1", p)
		assert.Equal(t, http.StatusBadRequest, appCode(t, err))
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should require at least one image", func(t *testing.T) {
		mockRepo := new(MockPortfolioRepo)
		uc := usecase.NewPortfolioUsecase(mockRepo, newFakeBlobStore(), testLog)

		p := valid()
		p.ImageURLs = nil
		_, err := uc.AddProject(context.Background(), "user1", p)
		assert.Equal(t, http.StatusBadRequest, appCode(t, err))
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should force owner from context", func(t *testing.T) {
		mockRepo := new(MockPortfolioRepo)
		uc := usecase.NewPortfolioUsecase(mockRepo, newFakeBlobStore(), testLog)
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		p := valid()
		p.OwnerID = "hacker_try"
		created, err := uc.AddProject(context.Background(), "user1", p)
		assert.NoError(t, err)
		assert.Equal(t, "user1", created.OwnerID)
	})
}

func TestPortfolioDelete(t *testing.T) {
	project := func() *domain.PortfolioProject {
		return &domain.PortfolioProject{
			ID:      "proj1",
			OwnerID: "user1",
			Title:   "Kitchen remodel",
			ImageURLs: []string{
				"https://blobs.test/portfolio/user1/a.jpg",
				"https://blobs.test/portfolio/user1/b.jpg",
			},
		}
	}

	t.Run("Should return 404 for an unknown project", func(t *testing.T) {
		mockRepo := new(MockPortfolioRepo)
		uc := usecase.NewPortfolioUsecase(mockRepo, newFakeBlobStore(), testLog)

		mockRepo.On("GetByID", mock.Anything, "missing").Return(nil, domain.ErrNotFound)

		err := uc.DeleteProject(context.Background(), "user1", "missing")
		assert.Equal(t, http.StatusNotFound, appCode(t, err))
	})

	t.Run("Should refuse to delete another user's project", func(t *testing.T) {
		mockRepo := new(MockPortfolioRepo)
		blobs := newFakeBlobStore()
		uc := usecase.NewPortfolioUsecase(mockRepo, blobs, testLog)

		mockRepo.On("GetByID", mock.Anything, "proj1").Return(project(), nil)

		err := uc.DeleteProject(context.Background(), "user2", "proj1")
		assert.Equal(t, http.StatusForbidden, appCode(t, err))
		assert.Empty(t, blobs.deletes)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Should delete the document even when blob cleanup fails", func(t *testing.T) {
		mockRepo := new(MockPortfolioRepo)
		blobs := newFakeBlobStore()
		blobs.deleteOutcome = domain.DeleteFailed
		blobs.deleteErr = errors.New("backend unavailable")
		uc := usecase.NewPortfolioUsecase(mockRepo, blobs, testLog)

		mockRepo.On("GetByID", mock.Anything, "proj1").Return(project(), nil)
		mockRepo.On("Delete", mock.Anything, "proj1").Return(nil)

		err := uc.DeleteProject(context.Background(), "user1", "proj1")
		assert.NoError(t, err)
		assert.Len(t, blobs.deletes, 2)
		mockRepo.AssertCalled(t, "Delete", mock.Anything, "proj1")
	})
}

func TestPortfolioUploadImages(t *testing.T) {
	files := func(n int) []domain.UploadFile {
		out := make([]domain.UploadFile, n)
		for i := range out {
			out[i] = domain.UploadFile{
				Name:        "img.jpg",
				ContentType: "image/jpeg",
				Data:        []byte{byte('a' + i)},
			}
		}
		return out
	}

	t.Run("Should return one reference per file in order", func(t *testing.T) {
		blobs := newFakeBlobStore()
		uc := usecase.NewPortfolioUsecase(new(MockPortfolioRepo), blobs, testLog)

		urls, err := uc.UploadImages(context.Background(), "user1", files(4))
		assert.NoError(t, err)
		assert.Len(t, urls, 4)
		for _, url := range urls {
			assert.True(t, strings.HasPrefix(url, "https://blobs.test/portfolio/user1/"))
		}
	})

	t.Run("Should reject an empty batch", func(t *testing.T) {
		uc := usecase.NewPortfolioUsecase(new(MockPortfolioRepo), newFakeBlobStore(), testLog)

		_, err := uc.UploadImages(context.Background(), "user1", nil)
		assert.Equal(t, http.StatusBadRequest, appCode(t, err))
	})

	t.Run("Should return no references and roll back when any file fails", func(t *testing.T) {
		blobs := newFakeBlobStore()
		batch := files(4)
		blobs.failUploads[string(batch[2].Data)] = true
		uc := usecase.NewPortfolioUsecase(new(MockPortfolioRepo), blobs, testLog)

		urls, err := uc.UploadImages(context.Background(), "user1", batch)
		assert.Nil(t, urls)
		assert.Equal(t, http.StatusBadGateway, appCode(t, err))

		// Every blob that made it must have been deleted again
		blobs.mu.Lock()
		defer blobs.mu.Unlock()
		assert.ElementsMatch(t, blobs.uploads, blobs.deletes)
	})
}

func TestProjectCreate(t *testing.T) {
	t.Run("Should reject an inverted budget range", func(t *testing.T) {
		mockRepo := new(MockProjectRepo)
		uc := usecase.NewProjectUsecase(mockRepo, testLog)

		_, err := uc.CreateProject(context.Background(), "prime1", &domain.Project{
			Title:       "Duplex rewire",
			Description: "Full rewire.",
			BudgetMin:   20000,
			BudgetMax:   10000,
		})
		assert.Equal(t, http.StatusBadRequest, appCode(t, err))
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should open as open regardless of the submitted status", func(t *testing.T) {
		mockRepo := new(MockProjectRepo)
		uc := usecase.NewProjectUsecase(mockRepo, testLog)
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		created, err := uc.CreateProject(context.Background(), "prime1", &domain.Project{
			Title:       "Duplex rewire",
			Description: "Full rewire.",
			Status:      domain.ProjectStatusCompleted,
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.ProjectStatusOpen, created.Status)
		assert.Equal(t, "prime1", created.OwnerID)
	})
}

func TestProjectBrowse(t *testing.T) {
	t.Run("Should reject an unknown status filter", func(t *testing.T) {
		uc := usecase.NewProjectUsecase(new(MockProjectRepo), testLog)

		_, err := uc.BrowseProjects(context.Background(), domain.ProjectFilter{Status: "archived"})
		assert.Equal(t, http.StatusBadRequest, appCode(t, err))
	})
}

func TestProjectUpdateStatus(t *testing.T) {
	t.Run("Should refuse status changes from non-owners", func(t *testing.T) {
		mockRepo := new(MockProjectRepo)
		uc := usecase.NewProjectUsecase(mockRepo, testLog)

		mockRepo.On("GetByID", mock.Anything, "proj1").
			Return(&domain.Project{ID: "proj1", OwnerID: "prime1"}, nil)

		err := uc.UpdateStatus(context.Background(), "prime2", "proj1", domain.ProjectStatusCompleted)
		assert.Equal(t, http.StatusForbidden, appCode(t, err))
		mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUserEnsureProfile(t *testing.T) {
	signup := func(role string) *domain.UserProfile {
		return &domain.UserProfile{
			UserID:      "user1",
			Email:       "rosa@example.com",
			DisplayName: "Rosa Castillo",
			Role:        role,
		}
	}

	t.Run("Should retry transient create failures", func(t *testing.T) {
		mockUsers := new(MockUserRepo)
		mockProfiles := new(MockCompanyProfileRepo)
		uc := usecase.NewUserUsecase(mockUsers, mockProfiles, testLog)

		transient := errors.New("deadline exceeded")
		mockUsers.On("Create", mock.Anything, mock.Anything).Return(transient).Twice()
		mockUsers.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		mockUsers.On("GetByID", mock.Anything, "user1").Return(signup(domain.RolePrime), nil)

		created, err := uc.EnsureProfile(context.Background(), signup(domain.RolePrime))
		assert.NoError(t, err)
		assert.Equal(t, "user1", created.UserID)
		mockUsers.AssertNumberOfCalls(t, "Create", 3)
	})

	t.Run("Should give up after bounded retries", func(t *testing.T) {
		mockUsers := new(MockUserRepo)
		uc := usecase.NewUserUsecase(mockUsers, new(MockCompanyProfileRepo), testLog)

		mockUsers.On("Create", mock.Anything, mock.Anything).Return(errors.New("deadline exceeded"))

		_, err := uc.EnsureProfile(context.Background(), signup(domain.RolePrime))
		assert.Error(t, err)
		mockUsers.AssertNumberOfCalls(t, "Create", 3)
	})

	t.Run("Should bootstrap the company profile root document for subcontractors", func(t *testing.T) {
		mockUsers := new(MockUserRepo)
		mockProfiles := new(MockCompanyProfileRepo)
		uc := usecase.NewUserUsecase(mockUsers, mockProfiles, testLog)

		mockUsers.On("Create", mock.Anything, mock.Anything).Return(nil)
		mockUsers.On("GetByID", mock.Anything, "user1").Return(signup(domain.RoleSubcontractor), nil)
		mockProfiles.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.CompanyProfile) bool {
			return p.UserID == "user1" && p.CompanyName == "Rosa Castillo"
		})).Return(nil)

		_, err := uc.EnsureProfile(context.Background(), signup(domain.RoleSubcontractor))
		assert.NoError(t, err)
		mockProfiles.AssertExpectations(t)
	})

	t.Run("Should not bootstrap a company profile for primes", func(t *testing.T) {
		mockUsers := new(MockUserRepo)
		mockProfiles := new(MockCompanyProfileRepo)
		uc := usecase.NewUserUsecase(mockUsers, mockProfiles, testLog)

		mockUsers.On("Create", mock.Anything, mock.Anything).Return(nil)
		mockUsers.On("GetByID", mock.Anything, "user1").Return(signup(domain.RolePrime), nil)

		_, err := uc.EnsureProfile(context.Background(), signup(domain.RolePrime))
		assert.NoError(t, err)
		mockProfiles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should still sign in when the profile bootstrap fails", func(t *testing.T) {
		mockUsers := new(MockUserRepo)
		mockProfiles := new(MockCompanyProfileRepo)
		uc := usecase.NewUserUsecase(mockUsers, mockProfiles, testLog)

		mockUsers.On("Create", mock.Anything, mock.Anything).Return(nil)
		mockUsers.On("GetByID", mock.Anything, "user1").Return(signup(domain.RoleSubcontractor), nil)
		mockProfiles.On("Create", mock.Anything, mock.Anything).Return(errors.New("backend unavailable"))

		created, err := uc.EnsureProfile(context.Background(), signup(domain.RoleSubcontractor))
		assert.NoError(t, err)
		assert.NotNil(t, created)
	})

	t.Run("Should default an unknown role to subcontractor", func(t *testing.T) {
		mockUsers := new(MockUserRepo)
		mockProfiles := new(MockCompanyProfileRepo)
		uc := usecase.NewUserUsecase(mockUsers, mockProfiles, testLog)

		mockUsers.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.UserProfile) bool {
			return u.Role == domain.RoleSubcontractor
		})).Return(nil)
		mockUsers.On("GetByID", mock.Anything, "user1").Return(signup(domain.RoleSubcontractor), nil)
		mockProfiles.On("Create", mock.Anything, mock.Anything).Return(nil)

		_, err := uc.EnsureProfile(context.Background(), signup("admin"))
		assert.NoError(t, err)
		mockUsers.AssertExpectations(t)
	})
}
