package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/records/internal/app/models"
	"github.com/yigit/records/internal/pkg/apperrors"
)

func newFakeDocuments() *fakeDocuments {
	return &fakeDocuments{lecturers: map[string]map[string]interface{}{
		"L001": {"name": "Mary Collins"},
	}}
}

func TestLecturerRepositoryGetByID(t *testing.T) {
	repo := NewLecturerRepository(newFakeDocuments(), zerolog.Nop())

	lecturer, err := repo.GetByID(context.Background(), "L001")
	require.NoError(t, err)
	assert.Equal(t, "Mary Collins", lecturer.Name)

	_, err = repo.GetByID(context.Background(), "L404")
	assert.ErrorIs(t, err, apperrors.ErrLecturerNotFound)
}

func TestLecturerRepositoryListLecturers(t *testing.T) {
	lecturers, err := NewLecturerRepository(newFakeDocuments(), zerolog.Nop()).ListLecturers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.Lecturer{{ID: "L001", Name: "Mary Collins"}}, lecturers)
}

func TestLecturerRepositoryCreate(t *testing.T) {
	docs := newFakeDocuments()
	repo := NewLecturerRepository(docs, zerolog.Nop())

	require.NoError(t, repo.Create(context.Background(), &models.Lecturer{ID: "L002", Name: "Tom Hart"}))
	assert.Contains(t, docs.lecturers, "L002")

	err := repo.Create(context.Background(), &models.Lecturer{ID: "L001", Name: "Again"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateKey)
}

func TestLecturerRepositoryDelete(t *testing.T) {
	docs := newFakeDocuments()
	repo := NewLecturerRepository(docs, zerolog.Nop())

	n, err := repo.Delete(context.Background(), "L001")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.Delete(context.Background(), "L001")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	docs.err = apperrors.NewQueryError("document delete failed", errors.New("no primary"))
	_, err = repo.Delete(context.Background(), "L001")
	assert.ErrorIs(t, err, apperrors.ErrQuery)
}
