package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/records/internal/app/models/dto"
	"github.com/yigit/records/internal/app/services"
	"github.com/yigit/records/internal/middleware"
)

// GradeController serves the grade report and module listing
type GradeController struct {
	gradeService services.GradeService
}

// NewGradeController creates a new GradeController
func NewGradeController(gradeService services.GradeService) *GradeController {
	return &GradeController{
		gradeService: gradeService,
	}
}

// GetGradeReport returns every student with their module grades
// @Summary Grade report
// @Tags grades
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.GradeReportEntry}
// @Router /grades [get]
func (c *GradeController) GetGradeReport(ctx *gin.Context) {
	entries, err := c.gradeService.ListGradeReport(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(entries, ""))
}

// GetAllModules lists every module
// @Summary List modules
// @Tags modules
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Module}
// @Router /modules [get]
func (c *GradeController) GetAllModules(ctx *gin.Context) {
	modules, err := c.gradeService.ListModules(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(modules, ""))
}
