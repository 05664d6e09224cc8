package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(sql.ErrNoRows))
	assert.True(t, isNotFound(fmt.Errorf("select player: %w", sql.ErrNoRows)))
	assert.False(t, isNotFound(fmt.Errorf("boom")))
	assert.False(t, isNotFound(nil))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pq.Error{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, isUniqueViolation(fmt.Errorf("boom")))
}

func TestNullableString(t *testing.T) {
	assert.Nil(t, nullableString(""))

	got := nullableString("Chennai Super Kings")
	if assert.NotNil(t, got) {
		assert.Equal(t, "Chennai Super Kings", *got)
	}

	assert.Equal(t, "", stringValue(nil))
	assert.Equal(t, "Chennai Super Kings", stringValue(got))
}
