package repositories

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModuleRepositoryExistsByLecturer(t *testing.T) {
	q := &fakeQuerier{row: scanValues(false)}
	exists, err := NewModuleRepository(q, zerolog.Nop()).ExistsByLecturer(context.Background(), "L001")

	require.NoError(t, err)
	assert.False(t, exists)
	assert.Equal(t, "SELECT EXISTS ( SELECT 1 FROM module WHERE lecturer = $1 LIMIT 1 )", q.statements[0])
	assert.Equal(t, []interface{}{"L001"}, q.args[0])
}

func TestModuleRepositoryExistsByLecturerKeepsInputAsParameter(t *testing.T) {
	q := &fakeQuerier{row: scanValues(false)}
	_, err := NewModuleRepository(q, zerolog.Nop()).ExistsByLecturer(context.Background(), "L001' OR '1'='1")

	require.NoError(t, err)
	assert.NotContains(t, q.statements[0], "OR")
	assert.Equal(t, []interface{}{"L001' OR '1'='1"}, q.args[0])
}
