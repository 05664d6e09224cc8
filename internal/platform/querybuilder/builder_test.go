package querybuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectBuilder(t *testing.T) {
	sql, args, err := Select("id", "full_name").
		From("players").
		Where(Eq("full_name", "V Kohli")).
		OrderBy("id ASC").
		Limit(1).
		ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, full_name FROM players WHERE full_name = $1 ORDER BY id ASC LIMIT 1", sql)
	assert.Equal(t, []any{"V Kohli"}, args)
}

func TestSelectBuilderInAndIsNull(t *testing.T) {
	sql, args, err := Select("id").
		From("deliveries").
		Where(In("innings_number", []any{1, 2}), IsNull("wicket_kind")).
		ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM deliveries WHERE innings_number IN ($1, $2) AND wicket_kind IS NULL", sql)
	assert.Equal(t, []any{1, 2}, args)
}

func TestInsertBuilderMultiRowWithSuffix(t *testing.T) {
	sql, args, err := InsertInto("players").
		Columns("full_name", "country").
		Values("V Kohli", "India").
		Values("JE Root", "England").
		Suffix("ON CONFLICT (full_name) DO NOTHING").
		ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO players (full_name, country) VALUES ($1, $2), ($3, $4) ON CONFLICT (full_name) DO NOTHING", sql)
	assert.Equal(t, []any{"V Kohli", "India", "JE Root", "England"}, args)
}

func TestInsertBuilderRowArityMismatch(t *testing.T) {
	_, _, err := InsertInto("players").
		Columns("full_name", "country").
		Values("V Kohli").
		ToSQL()
	require.Error(t, err)
}

func TestInsertModel(t *testing.T) {
	type row struct {
		Name    string `db:"full_name"`
		Country string `db:"country"`
		Skipped string `db:"-"`
		private string
	}
	_ = row{private: ""}

	sql, args, err := InsertModel("players", row{Name: "V Kohli", Country: "India"})
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO players (full_name, country) VALUES ($1, $2)", sql)
	assert.Equal(t, []any{"V Kohli", "India"}, args)

	sql, _, err = InsertModel("players", row{Name: "V Kohli", Country: "India"},
		"ON CONFLICT (full_name) DO NOTHING")
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO players (full_name, country) VALUES ($1, $2) ON CONFLICT (full_name) DO NOTHING", sql)
}

func TestDeleteBuilder(t *testing.T) {
	sql, args, err := DeleteFrom("deliveries").
		Where(Eq("match_id", int64(7))).
		ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM deliveries WHERE match_id = $1", sql)
	assert.Equal(t, []any{int64(7)}, args)
}

func TestDeleteBuilderRequiresWhere(t *testing.T) {
	_, _, err := DeleteFrom("deliveries").ToSQL()
	require.Error(t, err)
}
