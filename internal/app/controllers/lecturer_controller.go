package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/records/internal/app/models/dto"
	"github.com/yigit/records/internal/app/services"
	"github.com/yigit/records/internal/middleware"
	"github.com/yigit/records/internal/pkg/apperrors"
)

// LecturerController handles lecturer-related operations
type LecturerController struct {
	lecturerService services.LecturerService
}

// NewLecturerController creates a new LecturerController
func NewLecturerController(lecturerService services.LecturerService) *LecturerController {
	return &LecturerController{
		lecturerService: lecturerService,
	}
}

// GetAllLecturers retrieves all lecturers
// @Summary List lecturers
// @Tags lecturers
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Lecturer}
// @Router /lecturers [get]
func (c *LecturerController) GetAllLecturers(ctx *gin.Context) {
	lecturers, err := c.lecturerService.ListLecturers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(lecturers, ""))
}

// DeleteLecturer removes a lecturer that teaches no modules
// @Summary Delete a lecturer
// @Tags lecturers
// @Produce json
// @Param lid path string true "Lecturer ID"
// @Success 200 {object} dto.APIResponse{data=dto.LecturerDeletedResponse}
// @Failure 404 {object} dto.ErrorResponse "Lecturer not found"
// @Failure 409 {object} dto.ErrorResponse "Lecturer teaches modules"
// @Router /lecturers/{lid} [delete]
func (c *LecturerController) DeleteLecturer(ctx *gin.Context) {
	id := ctx.Param("lid")

	// The name is only needed for the confirmation message; a missing
	// lecturer is reported by the delete itself.
	var name string
	lecturer, err := c.lecturerService.GetLecturer(ctx, id)
	switch {
	case err == nil:
		name = lecturer.Name
	case !errors.Is(err, apperrors.ErrResourceNotFound):
		middleware.HandleAPIError(ctx, err)
		return
	}

	deletion, err := c.lecturerService.DeleteLecturer(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(
		dto.LecturerDeletedResponse{
			LecturerID:   deletion.LecturerID,
			Name:         name,
			DeletedCount: deletion.DeletedCount,
		},
		fmt.Sprintf("Lecturer %s (%s) deleted successfully", name, deletion.LecturerID),
	))
}
