package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DrekStyler/handypro-api/internal/delivery/http/response"
	"github.com/DrekStyler/handypro-api/internal/domain"
	"github.com/DrekStyler/handypro-api/pkg/apperror"
)

type ProjectHandler struct {
	projectUC domain.ProjectUsecase
}

// NewProjectHandler registers marketplace project routes
func NewProjectHandler(protected *gin.RouterGroup, projectUC domain.ProjectUsecase) {
	handler := &ProjectHandler{projectUC: projectUC}

	protected.POST("/projects", handler.Create)
	protected.GET("/projects", handler.Browse)
	protected.GET("/projects/:id", handler.Get)
	protected.PATCH("/projects/:id/status", handler.UpdateStatus)
}

// CreateProjectRequest is the payload for posting a marketplace project
type CreateProjectRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Trades      []string `json:"trades"`
	Location    string   `json:"location"`
	BudgetMin   float64  `json:"budget_min" binding:"omitempty,min=0"`
	BudgetMax   float64  `json:"budget_max" binding:"omitempty,min=0"`
}

// UpdateStatusRequest transitions a project's lifecycle status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open in_progress completed"`
}

// Create posts a new marketplace project; primes only
func (h *ProjectHandler) Create(c *gin.Context) {
	userID, ok := requireRole(c, domain.RolePrime)
	if !ok {
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	project := &domain.Project{
		Title:       req.Title,
		Description: req.Description,
		Trades:      req.Trades,
		Location:    req.Location,
		BudgetMin:   req.BudgetMin,
		BudgetMax:   req.BudgetMax,
	}

	created, err := h.projectUC.CreateProject(c.Request.Context(), userID, project)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Project posted", created)
}

// Browse lists marketplace projects with optional trade/location/status filters
func (h *ProjectHandler) Browse(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}

	filter := domain.ProjectFilter{
		Trade:    c.Query("trade"),
		Location: c.Query("location"),
		Status:   c.Query("status"),
	}

	projects, err := h.projectUC.BrowseProjects(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Projects retrieved", projects)
}

// Get returns one marketplace project
func (h *ProjectHandler) Get(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}

	project, err := h.projectUC.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Project retrieved", project)
}

// UpdateStatus transitions a project's status; owner only
func (h *ProjectHandler) UpdateStatus(c *gin.Context) {
	userID, ok := requireRole(c, domain.RolePrime)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.projectUC.UpdateStatus(c.Request.Context(), userID, c.Param("id"), req.Status); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Project status updated", nil)
}
