package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/yigit/records/internal/app/models"
	"github.com/yigit/records/internal/app/services/mocks"
	"github.com/yigit/records/internal/pkg/apperrors"
)

func newLecturerRouter(svc *mocks.MockLecturerService) *gin.Engine {
	c := NewLecturerController(svc)
	r := gin.New()
	r.GET("/lecturers", c.GetAllLecturers)
	r.DELETE("/lecturers/:lid", c.DeleteLecturer)
	return r
}

func TestLecturerController_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockLecturerService(ctrl)
	gomock.InOrder(
		svc.EXPECT().GetLecturer(gomock.Any(), "L003").Return(&models.Lecturer{ID: "L003", Name: "Mary Collins"}, nil),
		svc.EXPECT().DeleteLecturer(gomock.Any(), "L003").
			Return(&models.LecturerDeletion{LecturerID: "L003", DeletedCount: 1}, nil),
	)

	rec := doJSON(t, newLecturerRouter(svc), http.MethodDelete, "/lecturers/L003", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "Lecturer Mary Collins (L003) deleted successfully", env.Message)
	assert.JSONEq(t, `{"lecturerId":"L003","name":"Mary Collins","deletedCount":1}`, string(env.Data))
}

func TestLecturerController_DeleteTeachingLecturer(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockLecturerService(ctrl)
	svc.EXPECT().GetLecturer(gomock.Any(), "L001").Return(&models.Lecturer{ID: "L001", Name: "Alan"}, nil)
	svc.EXPECT().DeleteLecturer(gomock.Any(), "L001").Return(nil, apperrors.ErrLecturerTeachesModule)

	rec := doJSON(t, newLecturerRouter(svc), http.MethodDelete, "/lecturers/L001", nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "lecturer teaches modules", decode(t, rec).Error.Message)
}

func TestLecturerController_DeleteMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockLecturerService(ctrl)
	svc.EXPECT().GetLecturer(gomock.Any(), "L999").Return(nil, apperrors.ErrLecturerNotFound)
	svc.EXPECT().DeleteLecturer(gomock.Any(), "L999").Return(nil, apperrors.ErrLecturerNotFound)

	rec := doJSON(t, newLecturerRouter(svc), http.MethodDelete, "/lecturers/L999", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLecturerController_DeleteLookupFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockLecturerService(ctrl)
	svc.EXPECT().GetLecturer(gomock.Any(), "L001").
		Return(nil, apperrors.NewQueryError("document find failed", nil))
	svc.EXPECT().DeleteLecturer(gomock.Any(), gomock.Any()).Times(0)

	rec := doJSON(t, newLecturerRouter(svc), http.MethodDelete, "/lecturers/L001", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLecturerController_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockLecturerService(ctrl)
	svc.EXPECT().ListLecturers(gomock.Any()).Return([]models.Lecturer{{ID: "L001", Name: "Alan", Did: 201}}, nil)

	rec := doJSON(t, newLecturerRouter(svc), http.MethodGet, "/lecturers", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"_id":"L001","name":"Alan","did":201}]`, string(decode(t, rec).Data))
}
