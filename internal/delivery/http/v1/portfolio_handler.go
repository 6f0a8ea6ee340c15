package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DrekStyler/handypro-api/config"
	"github.com/DrekStyler/handypro-api/internal/delivery/http/response"
	"github.com/DrekStyler/handypro-api/internal/domain"
	"github.com/DrekStyler/handypro-api/pkg/apperror"
	"github.com/DrekStyler/handypro-api/pkg/logger"
)

type PortfolioHandler struct {
	portfolioUC domain.PortfolioUsecase
	cfg         *config.Config
}

// NewPortfolioHandler registers portfolio routes
func NewPortfolioHandler(
	protected *gin.RouterGroup,
	uploads *gin.RouterGroup,
	portfolioUC domain.PortfolioUsecase,
	cfg *config.Config,
) {
	handler := &PortfolioHandler{
		portfolioUC: portfolioUC,
		cfg:         cfg,
	}

	protected.GET("/portfolio", handler.List)
	protected.POST("/portfolio", handler.Add)
	protected.DELETE("/portfolio/:id", handler.Delete)
	uploads.POST("/portfolio/images", handler.UploadImages)
}

// AddProjectRequest is the payload for a new portfolio project. Image URLs come from
// a prior call to the image upload endpoint.
type AddProjectRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Location       string   `json:"location"`
	CompletionDate string   `json:"completion_date"` // YYYY-MM-DD
	ClientName     string   `json:"client_name"`
	ImageURLs      []string `json:"image_urls"`
}

// List returns the caller's portfolio projects, newest completion first
func (h *PortfolioHandler) List(c *gin.Context) {
	userID, ok := requireRole(c, domain.RoleSubcontractor)
	if !ok {
		return
	}

	projects, err := h.portfolioUC.ListProjects(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Portfolio retrieved", projects)
}

// Add creates a new portfolio project
func (h *PortfolioHandler) Add(c *gin.Context) {
	userID, ok := requireRole(c, domain.RoleSubcontractor)
	if !ok {
		return
	}

	var req AddProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	var completion time.Time
	if req.CompletionDate != "" {
		var err error
		completion, err = time.Parse("2006-01-02", req.CompletionDate)
		if err != nil {
			c.Error(apperror.BadRequest("completion_date must be YYYY-MM-DD"))
			return
		}
	}

	project := &domain.PortfolioProject{
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		CompletionDate: completion,
		ClientName:     req.ClientName,
		ImageURLs:      req.ImageURLs,
	}

	created, err := h.portfolioUC.AddProject(c.Request.Context(), userID, project)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Portfolio project added", created)
}

// Delete removes a portfolio project and its images
func (h *PortfolioHandler) Delete(c *gin.Context) {
	userID, ok := requireRole(c, domain.RoleSubcontractor)
	if !ok {
		return
	}

	if err := h.portfolioUC.DeleteProject(c.Request.Context(), userID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Portfolio project deleted", nil)
}

// UploadImages accepts multiple image files for a project being composed and
// returns their references. The batch is all-or-nothing.
func (h *PortfolioHandler) UploadImages(c *gin.Context) {
	userID, ok := requireRole(c, domain.RoleSubcontractor)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.Error(apperror.BadRequest("Multipart form with an images field is required"))
		return
	}

	fileHeaders := form.File["images"]
	if len(fileHeaders) == 0 {
		c.Error(apperror.BadRequest("At least one image file is required"))
		return
	}
	if len(fileHeaders) > h.cfg.MaxBatchUploads {
		c.Error(apperror.BadRequest(fmt.Sprintf("At most %d images per batch", h.cfg.MaxBatchUploads)))
		return
	}

	maxBytes := int64(h.cfg.MaxUploadSizeMB) << 20
	files := make([]domain.UploadFile, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		data, contentType, err := readImageFile(fh, maxBytes)
		if err != nil {
			c.Error(apperror.BadRequest(err.Error()))
			return
		}

		if compressed, cerr := compressImage(data, h.cfg.ImageMaxDimension, h.cfg.ImageJPEGQuality); cerr == nil {
			data = compressed
			contentType = "image/jpeg"
		} else {
			logger.Log.Warn("portfolio image compression failed, storing original",
				"user_id", userID, "file", fh.Filename, "error", cerr)
		}

		files = append(files, domain.UploadFile{
			Name:        fh.Filename,
			ContentType: contentType,
			Data:        data,
		})
	}

	urls, err := h.portfolioUC.UploadImages(c.Request.Context(), userID, files)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Images uploaded", gin.H{"urls": urls})
}
