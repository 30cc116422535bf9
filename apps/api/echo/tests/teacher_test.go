package tests

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malcolm008/RFID-system/core/teacher"
)

func createTeacher(t *testing.T, svc *teacher.Service, name, email string) teacher.Teacher {
	t.Helper()

	tch, err := svc.Create(context.Background(), teacher.NewTeacher{
		Name:       name,
		Email:      email,
		Course:     "Algorithms",
		Department: "CS",
	})
	require.NoError(t, err)
	return tch
}

func Test_teacherApi_create(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		server, _ := setup(t)

		rec, resp := do(t, server, http.MethodPost, "/attendance_api/teachers/create", jsonMap{
			"name":           "Alex Smith",
			"email":          "Alex.Smith@School.edu",
			"course":         "Algorithms",
			"department":     "CS",
			"hasFingerprint": 1,
		})
		assert.Equal(t, http.StatusCreated, rec.Code)

		tch := dataObj(t, resp)
		assert.Equal(t, "alex.smith@school.edu", tch["email"], "emails are lowercased")
		assert.EqualValues(t, 1, tch["hasFingerprint"])
	})

	t.Run("invalid email", func(t *testing.T) {
		server, _ := setup(t)

		rec, resp := do(t, server, http.MethodPost, "/attendance_api/teachers/create", jsonMap{
			"name":       "Alex Smith",
			"email":      "not-an-email",
			"course":     "Algorithms",
			"department": "CS",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		fields := fieldErrors(t, resp)
		assert.NotEmpty(t, fields["email"])
	})

	t.Run("duplicate email", func(t *testing.T) {
		server, svcs := setup(t)
		createTeacher(t, svcs.teacher, "Alex Smith", "alex@school.edu")

		rec, resp := do(t, server, http.MethodPost, "/attendance_api/teachers/create", jsonMap{
			"name":       "Another Smith",
			"email":      "alex@school.edu",
			"course":     "Networks",
			"department": "CS",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		fields := fieldErrors(t, resp)
		assert.Contains(t, fields["email"], "already exists")
	})
}

func Test_teacherApi_update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		server, _ := setup(t)

		rec, resp := do(t, server, http.MethodPost, "/attendance_api/teachers/update", jsonMap{
			"id":   "42",
			"name": "New Name",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Teacher not found", resp["message"])
	})

	t.Run("partial update", func(t *testing.T) {
		server, svcs := setup(t)
		tch := createTeacher(t, svcs.teacher, "Alex Smith", "alex@school.edu")

		rec, resp := do(t, server, http.MethodPost, "/attendance_api/teachers/update", jsonMap{
			"id":         tch.ID,
			"department": "Mathematics",
		})
		assert.Equal(t, http.StatusOK, rec.Code)

		got := dataObj(t, resp)
		assert.Equal(t, "Mathematics", got["department"])
		assert.Equal(t, "alex@school.edu", got["email"])
	})
}

func Test_teacherApi_bulkDelete(t *testing.T) {
	server, svcs := setup(t)
	tch1 := createTeacher(t, svcs.teacher, "Alex Smith", "alex@school.edu")
	tch2 := createTeacher(t, svcs.teacher, "Sam Jones", "sam@school.edu")

	rec, resp := do(t, server, http.MethodPost, "/attendance_api/teachers/bulk-delete", jsonMap{
		"ids": []interface{}{tch1.ID, tch2.ID},
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 2, resp["deleted"])
}
