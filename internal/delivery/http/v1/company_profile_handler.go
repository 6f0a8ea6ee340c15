package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DrekStyler/handypro-api/config"
	"github.com/DrekStyler/handypro-api/internal/delivery/http/response"
	"github.com/DrekStyler/handypro-api/internal/domain"
	"github.com/DrekStyler/handypro-api/pkg/apperror"
	"github.com/DrekStyler/handypro-api/pkg/logger"
)

type CompanyProfileHandler struct {
	profileUC domain.CompanyProfileUsecase
	cfg       *config.Config
}

// NewCompanyProfileHandler registers company profile routes
func NewCompanyProfileHandler(
	protected *gin.RouterGroup,
	uploads *gin.RouterGroup,
	profileUC domain.CompanyProfileUsecase,
	cfg *config.Config,
) {
	handler := &CompanyProfileHandler{
		profileUC: profileUC,
		cfg:       cfg,
	}

	protected.GET("/company-profile", handler.GetProfile)
	protected.PUT("/company-profile", handler.SaveProfile)
	uploads.POST("/company-profile/logo", handler.UploadLogo)
}

// CompanyProfileRequest carries every editable profile field. Saving is a full
// overwrite: omitted fields become their zero values.
type CompanyProfileRequest struct {
	CompanyName       string   `json:"company_name" binding:"required"`
	Description       string   `json:"description"`
	ContactEmail      string   `json:"contact_email" binding:"omitempty,email"`
	ContactPhone      string   `json:"contact_phone" binding:"omitempty,valid_phone"`
	Website           string   `json:"website" binding:"omitempty,url"`
	FoundingYear      int      `json:"founding_year" binding:"omitempty,max_current_year"`
	EmployeeCount     int      `json:"employee_count" binding:"omitempty,min=1"`
	LicenseNumber     string   `json:"license_number"`
	InsuranceProvider string   `json:"insurance_provider"`
	InsurancePolicy   string   `json:"insurance_policy"`
	LogoURL           string   `json:"logo_url"`
	Trades            []string `json:"trades"`
	ServiceAreas      []string `json:"service_areas"`
	YearsInBusiness   int      `json:"years_in_business" binding:"omitempty,min=0"`
}

// GetProfile returns the caller's own company profile for viewing or editing. A
// missing profile is a 404, not an empty document.
func (h *CompanyProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := requireRole(c, domain.RoleSubcontractor)
	if !ok {
		return
	}

	profile, err := h.profileUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company profile retrieved", profile)
}

// SaveProfile overwrites the caller's company profile with the submitted draft
func (h *CompanyProfileHandler) SaveProfile(c *gin.Context) {
	userID, ok := requireRole(c, domain.RoleSubcontractor)
	if !ok {
		return
	}

	var req CompanyProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile := &domain.CompanyProfile{
		CompanyName:       req.CompanyName,
		Description:       req.Description,
		ContactEmail:      req.ContactEmail,
		ContactPhone:      req.ContactPhone,
		Website:           req.Website,
		FoundingYear:      req.FoundingYear,
		EmployeeCount:     req.EmployeeCount,
		LicenseNumber:     req.LicenseNumber,
		InsuranceProvider: req.InsuranceProvider,
		InsurancePolicy:   req.InsurancePolicy,
		LogoURL:           req.LogoURL,
		Trades:            req.Trades,
		ServiceAreas:      req.ServiceAreas,
		YearsInBusiness:   req.YearsInBusiness,
	}

	saved, err := h.profileUC.SaveProfile(c.Request.Context(), userID, profile)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company profile updated", saved)
}

// UploadLogo replaces the company logo with a single uploaded image
func (h *CompanyProfileHandler) UploadLogo(c *gin.Context) {
	userID, ok := requireRole(c, domain.RoleSubcontractor)
	if !ok {
		return
	}

	fh, err := c.FormFile("logo")
	if err != nil {
		c.Error(apperror.BadRequest("A logo file is required"))
		return
	}

	maxBytes := int64(h.cfg.MaxUploadSizeMB) << 20
	data, contentType, err := readImageFile(fh, maxBytes)
	if err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	// Downscale before storing; keep the original bytes if the image cannot be
	// re-encoded (some valid files trip the decoder, e.g. animated GIFs)
	if compressed, cerr := compressImage(data, h.cfg.ImageMaxDimension, h.cfg.ImageJPEGQuality); cerr == nil {
		data = compressed
		contentType = "image/jpeg"
	} else {
		logger.Log.Warn("logo compression failed, storing original", "user_id", userID, "error", cerr)
	}

	url, err := h.profileUC.UploadLogo(c.Request.Context(), userID, data, contentType)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Logo uploaded", gin.H{"url": url})
}
