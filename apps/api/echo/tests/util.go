package tests

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	echoapi "github.com/malcolm008/RFID-system/apps/api/echo"
	"github.com/malcolm008/RFID-system/core"
	"github.com/malcolm008/RFID-system/core/course"
	"github.com/malcolm008/RFID-system/core/device"
	"github.com/malcolm008/RFID-system/core/program"
	"github.com/malcolm008/RFID-system/core/student"
	"github.com/malcolm008/RFID-system/core/teacher"
	"github.com/malcolm008/RFID-system/core/timetable"
	logsvc "github.com/malcolm008/RFID-system/services/logger"
	inmemdb "github.com/malcolm008/RFID-system/storage/database/inmem"
)

type services struct {
	student   *student.Service
	teacher   *teacher.Service
	device    *device.Service
	program   *program.Service
	course    *course.Service
	timetable *timetable.Service
}

func setup(t *testing.T) (*echoapi.Server, *services) {
	t.Helper()

	db := inmemdb.NewDB()
	logger := logsvc.NewConsoleLogger(log.New(os.Stdout, "TEST : ", log.LstdFlags))

	studentRepo := inmemdb.NewStudentRepository(db)
	teacherRepo := inmemdb.NewTeacherRepository(db)
	deviceRepo := inmemdb.NewDeviceRepository(db)
	programRepo := inmemdb.NewProgramRepository(db)
	courseRepo := inmemdb.NewCourseRepository(db)
	timetableRepo := inmemdb.NewTimetableRepository(db)

	svcs := &services{
		student:   student.NewService(studentRepo, logger),
		teacher:   teacher.NewService(teacherRepo, logger),
		device:    device.NewService(deviceRepo, logger),
		program:   program.NewService(programRepo, logger),
		course:    course.NewService(courseRepo, programRepo, logger),
		timetable: timetable.NewService(timetableRepo, programRepo, courseRepo, teacherRepo, deviceRepo, logger),
	}

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:           &core.Config{TestMode: true, Server: core.ServerConfig{Addr: ":0"}},
			Logger:         logger,
			StudentSvc:     svcs.student,
			TeacherSvc:     svcs.teacher,
			DeviceSvc:      svcs.device,
			ProgramSvc:     svcs.program,
			CourseSvc:      svcs.course,
			TimetableSvc:   svcs.timetable,
			Validate:       validate,
			Translator:     translator,
			DisableReqLogs: true,
		},
	)
	return server, svcs
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

type jsonMap = map[string]interface{}

func newRequest(method, path string, data ...interface{}) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		_ = json.NewEncoder(&body).Encode(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func do(t *testing.T, server *echoapi.Server, method, path string, data ...interface{}) (*httptest.ResponseRecorder, jsonMap) {
	t.Helper()

	req, rec := newRequest(method, path, data...)
	server.ServeHTTP(rec, req)

	var resp jsonMap
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
		}
	}
	return rec, resp
}

// fieldErrors extracts the field-scoped messages of an error envelope.
func fieldErrors(t *testing.T, resp jsonMap) map[string]string {
	t.Helper()

	msg, ok := resp["message"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected field-scoped message, got %v", resp["message"])
	}
	fields := make(map[string]string, len(msg))
	for k, v := range msg {
		fields[k], _ = v.(string)
	}
	return fields
}

func dataList(t *testing.T, resp jsonMap) []interface{} {
	t.Helper()

	list, ok := resp["data"].([]interface{})
	if !ok {
		t.Fatalf("expected list data, got %v", resp["data"])
	}
	return list
}

func dataObj(t *testing.T, resp jsonMap) jsonMap {
	t.Helper()

	obj, ok := resp["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected object data, got %v", resp["data"])
	}
	return obj
}
