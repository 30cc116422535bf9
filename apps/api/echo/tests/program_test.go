package tests

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malcolm008/RFID-system/core/program"
)

func Test_programApi_create(t *testing.T) {
	t.Run("degree requires a level", func(t *testing.T) {
		server, _ := setup(t)

		rec, resp := do(t, server, http.MethodPost, "/attendance_api/programs/create", jsonMap{
			"name":          "BSc CS",
			"qualification": "Degree",
			"duration":      4,
			"department":    "CS",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "error", resp["status"])

		fields := fieldErrors(t, resp)
		assert.Equal(t, "Degree programs require a level", fields["level"])
	})

	t.Run("certificate rejects a level", func(t *testing.T) {
		server, _ := setup(t)

		rec, resp := do(t, server, http.MethodPost, "/attendance_api/programs/create", jsonMap{
			"name":          "Networking Basics",
			"qualification": "Certificate",
			"level":         "undergraduate",
			"duration":      1,
			"department":    "CS",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		fields := fieldErrors(t, resp)
		assert.Equal(t, "This qualification does not support levels", fields["level"])
	})

	t.Run("ok", func(t *testing.T) {
		server, _ := setup(t)

		rec, resp := do(t, server, http.MethodPost, "/attendance_api/programs/create", jsonMap{
			"name":          "BSc CS",
			"qualification": "Degree",
			"level":         "undergraduate",
			"duration":      4,
			"department":    "CS",
		})
		assert.Equal(t, http.StatusCreated, rec.Code)

		prog := dataObj(t, resp)
		assert.Equal(t, "1", prog["id"])
		assert.Equal(t, "undergraduate", prog["level"])
	})
}

func Test_programApi_update(t *testing.T) {
	server, svcs := setup(t)

	prog, err := svcs.program.Create(context.Background(), program.NewProgram{
		Name:          "BSc CS",
		Qualification: program.QualificationDegree,
		Level:         program.LevelUndergraduate,
		Duration:      4,
		Department:    "CS",
	})
	require.NoError(t, err)

	// clearing the level of a Degree program must fail on the merged record
	rec, resp := do(t, server, http.MethodPost, "/attendance_api/programs/update", jsonMap{
		"id":    prog.ID,
		"level": "",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Degree programs require a level", fieldErrors(t, resp)["level"])

	rec, resp = do(t, server, http.MethodPost, "/attendance_api/programs/update", jsonMap{
		"id":       prog.ID,
		"duration": 5,
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	got := dataObj(t, resp)
	assert.EqualValues(t, 5, got["duration"])
	assert.Equal(t, "BSc CS", got["name"])
}

func Test_programApi_bulkDelete(t *testing.T) {
	server, svcs := setup(t)

	var ids []interface{}
	for _, name := range []string{"BSc CS", "BSc Math"} {
		prog, err := svcs.program.Create(context.Background(), program.NewProgram{
			Name:          name,
			Qualification: program.QualificationDegree,
			Level:         program.LevelUndergraduate,
			Duration:      4,
			Department:    "Science",
		})
		require.NoError(t, err)
		ids = append(ids, prog.ID)
	}

	rec, resp := do(t, server, http.MethodPost, "/attendance_api/programs/bulk-delete", jsonMap{"ids": ids})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 2, resp["deleted"])
}
