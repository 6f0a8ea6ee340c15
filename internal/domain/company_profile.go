package domain

import (
	"context"
	"time"
)

// CompanyProfile is a subcontractor company's profile, keyed by the owning user's
// identity. The document is created at registration; the editor only updates it.
type CompanyProfile struct {
	UserID            string    `json:"user_id" firestore:"userId"`
	CompanyName       string    `json:"company_name" firestore:"companyName"`
	Description       string    `json:"description" firestore:"description"`
	ContactEmail      string    `json:"contact_email" firestore:"contactEmail"`
	ContactPhone      string    `json:"contact_phone" firestore:"contactPhone"`
	Website           string    `json:"website" firestore:"website"`
	FoundingYear      int       `json:"founding_year" firestore:"foundingYear"`
	EmployeeCount     int       `json:"employee_count" firestore:"employeeCount"`
	LicenseNumber     string    `json:"license_number" firestore:"licenseNumber"`
	InsuranceProvider string    `json:"insurance_provider" firestore:"insuranceProvider"`
	InsurancePolicy   string    `json:"insurance_policy" firestore:"insurancePolicy"`
	LogoURL           string    `json:"logo_url" firestore:"logoUrl"`
	Trades            []string  `json:"trades" firestore:"trades"`
	ServiceAreas      []string  `json:"service_areas" firestore:"serviceAreas"`
	YearsInBusiness   int       `json:"years_in_business" firestore:"yearsInBusiness"`
	Rating            float64   `json:"rating" firestore:"rating"`
	CompletedProjects int       `json:"completed_projects" firestore:"completedProjects"`
	CreatedAt         time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt         time.Time `json:"updated_at" firestore:"updatedAt"`
}

// CompanyProfileRepository defines document store operations
type CompanyProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*CompanyProfile, error)
	// Save overwrites the whole document. Callers must preserve read-only fields
	// (rating, completed project count, creation timestamp) from the loaded copy.
	Save(ctx context.Context, profile *CompanyProfile) error
	Create(ctx context.Context, profile *CompanyProfile) error
	UpdateLogoURL(ctx context.Context, userID, logoURL string) error
}

// CompanyProfileUsecase defines business logic operations
type CompanyProfileUsecase interface {
	GetProfile(ctx context.Context, userID string) (*CompanyProfile, error)
	// SaveProfile applies a full-document overwrite of all editable fields.
	SaveProfile(ctx context.Context, userID string, profile *CompanyProfile) (*CompanyProfile, error)
	// UploadLogo replaces the profile logo: best-effort delete of the previous blob,
	// upload of the new image, then persist of the new reference.
	UploadLogo(ctx context.Context, userID string, data []byte, contentType string) (string, error)
}
