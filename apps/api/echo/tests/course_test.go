package tests

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malcolm008/RFID-system/core/program"
)

func Test_courseApi_create(t *testing.T) {
	t.Run("no programs selected", func(t *testing.T) {
		server, _ := setup(t)

		rec, resp := do(t, server, http.MethodPost, "/attendance_api/courses/create", jsonMap{
			"name":          "Algorithms",
			"code":          "CS201",
			"qualification": "Degree",
			"programs":      []interface{}{},
			"semester":      1,
			"year":          1,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		fields := fieldErrors(t, resp)
		assert.Equal(t, "At least one program must be selected.", fields["programs"])
	})

	t.Run("qualification mismatch names the program", func(t *testing.T) {
		server, svcs := setup(t)

		cert, err := svcs.program.Create(context.Background(), program.NewProgram{
			Name:          "Networking Basics",
			Qualification: program.QualificationCertificate,
			Duration:      1,
			Department:    "CS",
		})
		require.NoError(t, err)

		rec, resp := do(t, server, http.MethodPost, "/attendance_api/courses/create", jsonMap{
			"name":          "Algorithms",
			"code":          "CS201",
			"qualification": "Degree",
			"programs":      []interface{}{cert.ID},
			"semester":      1,
			"year":          1,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		fields := fieldErrors(t, resp)
		assert.Contains(t, fields["programs"], "Networking Basics")
	})

	t.Run("ok with string ids", func(t *testing.T) {
		server, svcs := setup(t)

		bsc, err := svcs.program.Create(context.Background(), program.NewProgram{
			Name:          "BSc CS",
			Qualification: program.QualificationDegree,
			Level:         program.LevelUndergraduate,
			Duration:      4,
			Department:    "CS",
		})
		require.NoError(t, err)

		rec, resp := do(t, server, http.MethodPost, "/attendance_api/courses/create", jsonMap{
			"name":          "Algorithms",
			"code":          "CS201",
			"qualification": "Degree",
			"programs":      []interface{}{bsc.ID.String()},
			"semester":      1,
			"year":          2,
		})
		assert.Equal(t, http.StatusCreated, rec.Code)

		crs := dataObj(t, resp)
		progs := crs["programs"].([]interface{})
		require.Len(t, progs, 1)
		assert.Equal(t, bsc.ID.String(), progs[0])
	})
}

func Test_courseApi_update(t *testing.T) {
	server, svcs := setup(t)
	ctx := context.Background()

	bsc, err := svcs.program.Create(ctx, program.NewProgram{
		Name:          "BSc CS",
		Qualification: program.QualificationDegree,
		Level:         program.LevelUndergraduate,
		Duration:      4,
		Department:    "CS",
	})
	require.NoError(t, err)

	rec, resp := do(t, server, http.MethodPost, "/attendance_api/courses/create", jsonMap{
		"name":          "Algorithms",
		"code":          "CS201",
		"qualification": "Degree",
		"programs":      []interface{}{bsc.ID},
		"semester":      1,
		"year":          2,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	crsID := dataObj(t, resp)["id"]

	// the year rule applies to the merged record
	rec, resp = do(t, server, http.MethodPost, "/attendance_api/courses/update", jsonMap{
		"id":   crsID,
		"year": 9,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	fields := fieldErrors(t, resp)
	assert.Contains(t, fields["year"], "BSc CS")

	rec, resp = do(t, server, http.MethodPost, "/attendance_api/courses/update", jsonMap{
		"id":   crsID,
		"year": 3,
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 3, dataObj(t, resp)["year"])
}
