package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/cldops/trainroom-server/config"
	"github.com/cldops/trainroom-server/middleware"
	"github.com/cldops/trainroom-server/models"
)

func validProjectStatus(s string) bool {
	switch s {
	case models.ProjectPlanned, models.ProjectInProgress, models.ProjectDone, models.ProjectCancelled:
		return true
	}
	return false
}

// GET /api/projects
func ListProjects(c *gin.Context) {
	var projects []models.FutureProject
	if err := config.DB.Order("target_date").Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not list projects"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": projects})
}

type ProjectReq struct {
	Title       string          `json:"title" binding:"required,max=200"`
	Description string          `json:"description"`
	TargetDate  *string         `json:"target_date"` // YYYY-MM-DD, optional
	Status      string          `json:"status"`
	Provider    string          `json:"provider"`
	Budget      decimal.Decimal `json:"budget"`
}

// POST /api/projects
func CreateProject(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	var req ProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}
	if req.Status == "" {
		req.Status = models.ProjectPlanned
	}
	if !validProjectStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
		return
	}
	if req.Budget.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Budget cannot be negative"})
		return
	}

	var target *time.Time
	if req.TargetDate != nil && *req.TargetDate != "" {
		d, err := time.Parse("2006-01-02", *req.TargetDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid target date"})
			return
		}
		target = &d
	}

	project := models.FutureProject{
		Title:       req.Title,
		Description: req.Description,
		TargetDate:  target,
		Status:      req.Status,
		Provider:    req.Provider,
		Budget:      req.Budget,
		CreatedByID: u.ID,
	}
	if err := config.DB.Create(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create project"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Project added successfully.", "data": project})
}

type ProjectStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PUT /api/projects/:id/status
func UpdateProjectStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid project id"})
		return
	}

	var project models.FutureProject
	if err := config.DB.First(&project, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		return
	}

	var req ProjectStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload"})
		return
	}
	if !validProjectStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
		return
	}

	if err := config.DB.Model(&project).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update project"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project status updated."})
}

// DELETE /api/admin/projects/:id
func DeleteProject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid project id"})
		return
	}

	var project models.FutureProject
	if err := config.DB.First(&project, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		return
	}

	if err := config.DB.Delete(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not delete project"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted."})
}
