package tests

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malcolm008/RFID-system/core"
	"github.com/malcolm008/RFID-system/core/course"
	"github.com/malcolm008/RFID-system/core/program"
)

type timetableRefs struct {
	program core.ID
	course  core.ID
	teacher core.ID
	device  core.ID
}

func createTimetableRefs(t *testing.T, svcs *services) timetableRefs {
	t.Helper()
	ctx := context.Background()

	prog, err := svcs.program.Create(ctx, program.NewProgram{
		Name:          "BSc CS",
		Qualification: program.QualificationDegree,
		Level:         program.LevelUndergraduate,
		Duration:      4,
		Department:    "CS",
	})
	require.NoError(t, err)

	crs, err := svcs.course.Create(ctx, course.NewCourse{
		Name:          "Algorithms",
		Code:          "CS201",
		Qualification: program.QualificationDegree,
		Programs:      []core.ID{prog.ID},
		Semester:      1,
		Year:          2,
	})
	require.NoError(t, err)

	tch := createTeacher(t, svcs.teacher, "Alex Smith", "alex@school.edu")
	dev := createDevice(t, svcs.device, "Reader A", time.Now().UTC())

	return timetableRefs{program: prog.ID, course: crs.ID, teacher: tch.ID, device: dev.ID}
}

func Test_timetableApi_create(t *testing.T) {
	t.Run("ok with device", func(t *testing.T) {
		server, svcs := setup(t)
		refs := createTimetableRefs(t, svcs)

		rec, resp := do(t, server, http.MethodPost, "/attendance_api/timetable/create", jsonMap{
			"program":   refs.program,
			"course":    refs.course,
			"teacher":   refs.teacher,
			"device":    refs.device,
			"location":  "Room 12",
			"year":      2,
			"day":       "Monday",
			"startTime": "08:30",
			"endTime":   "10:30",
		})
		assert.Equal(t, http.StatusCreated, rec.Code)

		ent := dataObj(t, resp)
		assert.Equal(t, refs.device.String(), ent["device"])
		assert.Equal(t, "08:30", ent["startTime"])
	})

	t.Run("ok without device", func(t *testing.T) {
		server, svcs := setup(t)
		refs := createTimetableRefs(t, svcs)

		rec, resp := do(t, server, http.MethodPost, "/attendance_api/timetable/create", jsonMap{
			"program":   refs.program,
			"course":    refs.course,
			"teacher":   refs.teacher,
			"location":  "Room 12",
			"year":      2,
			"day":       "Monday",
			"startTime": "08:30",
			"endTime":   "10:30",
		})
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Nil(t, dataObj(t, resp)["device"])
	})

	t.Run("missing references reported per field", func(t *testing.T) {
		server, svcs := setup(t)
		refs := createTimetableRefs(t, svcs)

		rec, resp := do(t, server, http.MethodPost, "/attendance_api/timetable/create", jsonMap{
			"program":   "99",
			"course":    refs.course,
			"teacher":   "77",
			"location":  "Room 12",
			"year":      2,
			"day":       "Monday",
			"startTime": "08:30",
			"endTime":   "10:30",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		fields := fieldErrors(t, resp)
		assert.Equal(t, "program not found", fields["program"])
		assert.Equal(t, "teacher not found", fields["teacher"])
		assert.NotContains(t, fields, "course")
	})

	t.Run("invalid time format", func(t *testing.T) {
		server, svcs := setup(t)
		refs := createTimetableRefs(t, svcs)

		rec, resp := do(t, server, http.MethodPost, "/attendance_api/timetable/create", jsonMap{
			"program":   refs.program,
			"course":    refs.course,
			"teacher":   refs.teacher,
			"location":  "Room 12",
			"year":      2,
			"day":       "Monday",
			"startTime": "8h30",
			"endTime":   "10:30",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		fields := fieldErrors(t, resp)
		assert.NotEmpty(t, fields["startTime"])
	})
}

func Test_timetableApi_update(t *testing.T) {
	server, svcs := setup(t)
	refs := createTimetableRefs(t, svcs)

	rec, resp := do(t, server, http.MethodPost, "/attendance_api/timetable/create", jsonMap{
		"program":   refs.program,
		"course":    refs.course,
		"teacher":   refs.teacher,
		"device":    refs.device,
		"location":  "Room 12",
		"year":      2,
		"day":       "Monday",
		"startTime": "08:30",
		"endTime":   "10:30",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	entID := dataObj(t, resp)["id"]

	rec, resp = do(t, server, http.MethodPost, "/attendance_api/timetable/update", jsonMap{
		"id":  entID,
		"day": "Tuesday",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	got := dataObj(t, resp)
	assert.Equal(t, "Tuesday", got["day"])
	assert.Equal(t, "Room 12", got["location"])
	assert.Equal(t, refs.device.String(), got["device"], "device binding survives partial update")

	// binding to a missing device is rejected
	rec, resp = do(t, server, http.MethodPost, "/attendance_api/timetable/update", jsonMap{
		"id":     entID,
		"device": "99",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "device not found", fieldErrors(t, resp)["device"])
}

func Test_timetableApi_delete(t *testing.T) {
	server, svcs := setup(t)
	refs := createTimetableRefs(t, svcs)

	rec, resp := do(t, server, http.MethodPost, "/attendance_api/timetable/create", jsonMap{
		"program":   refs.program,
		"course":    refs.course,
		"teacher":   refs.teacher,
		"location":  "Room 12",
		"year":      2,
		"day":       "Monday",
		"startTime": "08:30",
		"endTime":   "10:30",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	entID := dataObj(t, resp)["id"]

	rec, resp = do(t, server, http.MethodPost, "/attendance_api/timetable/delete", jsonMap{"id": entID})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Timetable entry deleted successfully", resp["message"])

	rec, resp = do(t, server, http.MethodPost, "/attendance_api/timetable/delete", jsonMap{"id": entID})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Timetable entry not found", resp["message"])
}
