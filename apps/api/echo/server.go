package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/malcolm008/RFID-system/core"
	"github.com/malcolm008/RFID-system/core/course"
	"github.com/malcolm008/RFID-system/core/device"
	"github.com/malcolm008/RFID-system/core/program"
	"github.com/malcolm008/RFID-system/core/student"
	"github.com/malcolm008/RFID-system/core/teacher"
	"github.com/malcolm008/RFID-system/core/timetable"
)

type (
	ServerDeps struct {
		Conf   *core.Config
		Logger core.Logger

		StudentSvc   *student.Service
		TeacherSvc   *teacher.Service
		DeviceSvc    *device.Service
		ProgramSvc   *program.Service
		CourseSvc    *course.Service
		TimetableSvc *timetable.Service

		Validate   *validator.Validate
		Translator ut.Translator

		DisableReqLogs bool
	}

	Server struct {
		deps ServerDeps
		app  *echo.Echo

		errors   chan error
		shutdown chan os.Signal
	}
)

func NewServer(deps ServerDeps) *Server {
	s := &Server{
		deps:     deps,
		app:      echo.New(),
		errors:   make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *Server) setup() {
	conf := s.deps.Conf

	s.app.Pre(middleware.RemoveTrailingSlash())
	s.app.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	if !s.deps.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	s.app.Use(metricsMiddleware())
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.deps.Translator, s.SignalShutdown)
	s.app.Debug = conf.Debug
	s.app.HideBanner = true

	s.app.GET("/", home)

	g := s.app.Group("/attendance_api")
	registerStudentAPI(g, s.deps.StudentSvc, s.deps.Validate)
	registerTeacherAPI(g, s.deps.TeacherSvc, s.deps.Validate)
	registerDeviceAPI(g, s.deps.DeviceSvc, s.deps.Validate)
	registerProgramAPI(g, s.deps.ProgramSvc, s.deps.Validate)
	registerCourseAPI(g, s.deps.CourseSvc, s.deps.Validate)
	registerTimetableAPI(g, s.deps.TimetableSvc, s.deps.Validate)
}

func (s *Server) Start() {
	if err := s.app.Start(s.deps.Conf.Server.Addr); err != nil && err != http.ErrServerClosed {
		s.errors <- err
	}
}

// Errors reports fatal server errors.
func (s *Server) Errors() <-chan error {
	return s.errors
}

// ShutdownSignal reports OS signals and application shutdown requests.
func (s *Server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

// SignalShutdown requests a graceful shutdown of the server.
func (s *Server) SignalShutdown() {
	s.shutdown <- syscall.SIGTERM
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	return s.app.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to the Attendance API!")
}
