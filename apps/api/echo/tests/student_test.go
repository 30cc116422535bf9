package tests

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malcolm008/RFID-system/core"
	"github.com/malcolm008/RFID-system/core/student"
)

func createStudent(t *testing.T, svc *student.Service, name, regNumber string) student.Student {
	t.Helper()

	std, err := svc.Create(context.Background(), student.NewStudent{
		Name:      name,
		RegNumber: regNumber,
		Program:   "BSc CS",
		Year:      2,
	})
	require.NoError(t, err)
	return std
}

func Test_studentApi_list(t *testing.T) {
	server, svcs := setup(t)

	rec, resp := do(t, server, http.MethodGet, "/attendance_api/students/list")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", resp["status"])
	assert.Empty(t, dataList(t, resp))

	createStudent(t, svcs.student, "Jane Doe", "REG001")
	createStudent(t, svcs.student, "John Doe", "REG002")

	rec, resp = do(t, server, http.MethodGet, "/attendance_api/students/list")
	assert.Equal(t, http.StatusOK, rec.Code)
	list := dataList(t, resp)
	require.Len(t, list, 2)

	first := list[0].(map[string]interface{})
	assert.Equal(t, "1", first["id"], "ids must be strings on the wire")
	assert.EqualValues(t, 0, first["hasRfid"], "flags must be 0/1 on the wire")
}

func Test_studentApi_create(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		server, _ := setup(t)

		rec, resp := do(t, server, http.MethodPost, "/attendance_api/students/create", jsonMap{
			"name":      "Jane Doe",
			"regNumber": "REG001",
			"program":   "BSc CS",
			"year":      2,
			"hasRfid":   "1",
		})
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "success", resp["status"])

		std := dataObj(t, resp)
		assert.Equal(t, "1", std["id"])
		assert.EqualValues(t, 1, std["hasRfid"])
		assert.EqualValues(t, 0, std["hasFingerprint"])
		assert.NotEmpty(t, std["created_at"])
	})

	t.Run("missing required fields", func(t *testing.T) {
		server, _ := setup(t)

		rec, resp := do(t, server, http.MethodPost, "/attendance_api/students/create", jsonMap{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "error", resp["status"])

		fields := fieldErrors(t, resp)
		assert.Equal(t, "this field is required", fields["name"])
		assert.Equal(t, "this field is required", fields["regNumber"])
	})

	t.Run("duplicate regNumber", func(t *testing.T) {
		server, svcs := setup(t)
		createStudent(t, svcs.student, "Jane Doe", "REG001")

		rec, resp := do(t, server, http.MethodPost, "/attendance_api/students/create", jsonMap{
			"name":      "John Doe",
			"regNumber": "REG001",
			"program":   "BSc CS",
			"year":      1,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		fields := fieldErrors(t, resp)
		assert.Contains(t, fields["regNumber"], "already exists")
	})
}

func Test_studentApi_update(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		server, svcs := setup(t)
		std := createStudent(t, svcs.student, "Jane Doe", "REG001")

		rec, resp := do(t, server, http.MethodPost, "/attendance_api/students/update", jsonMap{
			"id":   std.ID,
			"year": 3,
		})
		assert.Equal(t, http.StatusOK, rec.Code)

		got := dataObj(t, resp)
		assert.EqualValues(t, 3, got["year"])
		assert.Equal(t, "Jane Doe", got["name"], "unspecified fields keep their value")
		assert.Equal(t, "REG001", got["regNumber"])
	})

	t.Run("missing id", func(t *testing.T) {
		server, _ := setup(t)

		rec, resp := do(t, server, http.MethodPost, "/attendance_api/students/update", jsonMap{"year": 3})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Missing Student ID", resp["message"])
	})

	t.Run("not found", func(t *testing.T) {
		server, _ := setup(t)

		rec, resp := do(t, server, http.MethodPost, "/attendance_api/students/update", jsonMap{"id": "99", "year": 3})
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Student not found", resp["message"])
	})
}

func Test_studentApi_delete(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		server, svcs := setup(t)
		std := createStudent(t, svcs.student, "Jane Doe", "REG001")

		rec, resp := do(t, server, http.MethodPost, "/attendance_api/students/delete", jsonMap{"id": std.ID})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Student deleted successfully", resp["message"])

		_, err := svcs.student.GetByID(context.Background(), std.ID)
		assert.True(t, core.IsNotFound(err))
	})

	t.Run("missing id", func(t *testing.T) {
		server, _ := setup(t)

		rec, resp := do(t, server, http.MethodPost, "/attendance_api/students/delete", jsonMap{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Student ID is required", resp["message"])
	})

	t.Run("not found", func(t *testing.T) {
		server, _ := setup(t)

		rec, resp := do(t, server, http.MethodPost, "/attendance_api/students/delete", jsonMap{"id": "99"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Student not found", resp["message"])
	})
}

func Test_studentApi_bulkDelete(t *testing.T) {
	t.Run("reports removed count", func(t *testing.T) {
		server, svcs := setup(t)
		std1 := createStudent(t, svcs.student, "Jane Doe", "REG001")
		std2 := createStudent(t, svcs.student, "John Doe", "REG002")

		// id 99 does not exist; only the matching records count
		rec, resp := do(t, server, http.MethodPost, "/attendance_api/students/bulk-delete", jsonMap{
			"ids": []interface{}{std1.ID, std2.ID, "99"},
		})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "success", resp["status"])
		assert.EqualValues(t, 2, resp["deleted"])
	})

	t.Run("empty ids", func(t *testing.T) {
		server, _ := setup(t)

		rec, resp := do(t, server, http.MethodPost, "/attendance_api/students/bulk-delete", jsonMap{"ids": []interface{}{}})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "A list of Student IDs is required", resp["message"])
	})
}
