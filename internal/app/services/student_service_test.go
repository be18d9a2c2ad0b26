package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/yigit/records/internal/app/models"
	"github.com/yigit/records/internal/app/services/mocks"
	"github.com/yigit/records/internal/pkg/apperrors"
	"github.com/yigit/records/internal/pkg/validation"
)

type StudentServiceSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	students *mocks.MockStudentStore
	service  StudentService
	ctx      context.Context
}

func (s *StudentServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.students = mocks.NewMockStudentStore(s.ctrl)
	s.service = NewStudentService(s.students, zerolog.Nop())
	s.ctx = context.Background()
}

func (s *StudentServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestStudentServiceSuite(t *testing.T) {
	suite.Run(t, new(StudentServiceSuite))
}

func (s *StudentServiceSuite) TestCreateStudent_Success() {
	s.students.EXPECT().ExistsByID(gomock.Any(), "G001").Return(false, nil)
	s.students.EXPECT().
		Create(gomock.Any(), &models.Student{ID: "G001", Name: "Sean", Age: 32}).
		Return(nil)

	student, err := s.service.CreateStudent(s.ctx, "G001", "Sean", 32)
	s.Require().NoError(err)
	s.Equal(&models.Student{ID: "G001", Name: "Sean", Age: 32}, student)
}

func (s *StudentServiceSuite) TestCreateStudent_InvalidNeverTouchesStore() {
	// No expectations: any store call fails the test.
	_, err := s.service.CreateStudent(s.ctx, "G1", "S", 17)
	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrValidationFailed))
	s.Equal([]string{
		validation.MsgStudentIDLength,
		validation.MsgNameTooShort,
		validation.MsgAgeTooLow,
	}, apperrors.Violations(err))
}

func (s *StudentServiceSuite) TestCreateStudent_ExistingIDIsNotInserted() {
	s.students.EXPECT().ExistsByID(gomock.Any(), "G001").Return(true, nil)
	s.students.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.CreateStudent(s.ctx, "G001", "Sean", 32)
	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrDuplicateKey))
	s.Equal("Student with ID G001 already exists", apperrors.Message(err))
}

func (s *StudentServiceSuite) TestCreateStudent_InsertLosingRaceIsDuplicate() {
	dup := apperrors.NewDuplicateKeyError("Student with ID G001 already exists")
	s.students.EXPECT().ExistsByID(gomock.Any(), "G001").Return(false, nil)
	s.students.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dup)

	_, err := s.service.CreateStudent(s.ctx, "G001", "Sean", 32)
	s.True(errors.Is(err, apperrors.ErrDuplicateKey))
}

func (s *StudentServiceSuite) TestCreateStudent_ExistsCheckFails() {
	s.students.EXPECT().ExistsByID(gomock.Any(), "G001").
		Return(false, apperrors.NewQueryError("relational query failed", errors.New("conn reset")))

	_, err := s.service.CreateStudent(s.ctx, "G001", "Sean", 32)
	s.True(errors.Is(err, apperrors.ErrQuery))
}

func (s *StudentServiceSuite) TestUpdateStudent_Success() {
	s.students.EXPECT().
		Update(gomock.Any(), &models.Student{ID: "G001", Name: "Sean Smith", Age: 33}).
		Return(nil)

	student, err := s.service.UpdateStudent(s.ctx, "G001", "Sean Smith", 33)
	s.Require().NoError(err)
	s.Equal(33, student.Age)
}

func (s *StudentServiceSuite) TestUpdateStudent_FirstViolationOnly() {
	_, err := s.service.UpdateStudent(s.ctx, "G001", "S", 10)
	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrValidationFailed))
	s.Equal([]string{validation.MsgNameTooShort}, apperrors.Violations(err))
}

func (s *StudentServiceSuite) TestNameWiderThanColumnNeverTouchesStore() {
	long := strings.Repeat("a", validation.NameMaxLength+1)

	_, err := s.service.CreateStudent(s.ctx, "G001", long, 32)
	s.True(errors.Is(err, apperrors.ErrValidationFailed))
	s.Equal([]string{validation.MsgNameTooLong}, apperrors.Violations(err))

	_, err = s.service.UpdateStudent(s.ctx, "G001", long, 33)
	s.True(errors.Is(err, apperrors.ErrValidationFailed))
	s.Equal([]string{validation.MsgNameTooLong}, apperrors.Violations(err))
}

func (s *StudentServiceSuite) TestUpdateStudent_MissingStudent() {
	s.students.EXPECT().Update(gomock.Any(), gomock.Any()).Return(apperrors.ErrStudentNotFound)

	_, err := s.service.UpdateStudent(s.ctx, "Z999", "Sean", 33)
	s.True(errors.Is(err, apperrors.ErrResourceNotFound))
}

func (s *StudentServiceSuite) TestListStudents() {
	want := []models.Student{{ID: "G001", Name: "Sean", Age: 32}, {ID: "G002", Name: "Alan", Age: 22}}
	s.students.EXPECT().ListStudents(gomock.Any()).Return(want, nil)

	got, err := s.service.ListStudents(s.ctx)
	s.Require().NoError(err)
	s.Equal(want, got)
}

func (s *StudentServiceSuite) TestGetStudent_NotFound() {
	s.students.EXPECT().GetByID(gomock.Any(), "X001").Return(nil, apperrors.ErrStudentNotFound)

	_, err := s.service.GetStudent(s.ctx, "X001")
	s.True(errors.Is(err, apperrors.ErrStudentNotFound))
}
