package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	echoapi "github.com/malcolm008/RFID-system/apps/api/echo"
	"github.com/malcolm008/RFID-system/core"
	"github.com/malcolm008/RFID-system/core/course"
	"github.com/malcolm008/RFID-system/core/device"
	"github.com/malcolm008/RFID-system/core/program"
	"github.com/malcolm008/RFID-system/core/student"
	"github.com/malcolm008/RFID-system/core/teacher"
	"github.com/malcolm008/RFID-system/core/timetable"
	logsvc "github.com/malcolm008/RFID-system/services/logger"
	"github.com/malcolm008/RFID-system/storage/database"
	gormrepos "github.com/malcolm008/RFID-system/storage/database/gorm"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	var logger core.Logger
	if conf.Debug || conf.RollbarToken == "" {
		logger = logsvc.NewConsoleLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, conf)
	}

	// set up DB
	db, err := setUpDB(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}

	// set up repositories
	studentRepo := gormrepos.NewStudentRepository(db)
	teacherRepo := gormrepos.NewTeacherRepository(db)
	deviceRepo := gormrepos.NewDeviceRepository(db)
	programRepo := gormrepos.NewProgramRepository(db)
	courseRepo := gormrepos.NewCourseRepository(db)
	timetableRepo := gormrepos.NewTimetableRepository(db)

	// set up services
	studentSvc := student.NewService(studentRepo, logger)
	teacherSvc := teacher.NewService(teacherRepo, logger)
	deviceSvc := device.NewService(deviceRepo, logger)
	programSvc := program.NewService(programRepo, logger)
	courseSvc := course.NewService(courseRepo, programRepo, logger)
	timetableSvc := timetable.NewService(timetableRepo, programRepo, courseRepo, teacherRepo, deviceRepo, logger)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.
	// /metrics - Prometheus scrape endpoint.

	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)
	http.Handle("/metrics", promhttp.Handler())

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:         conf,
			Logger:       logger,
			StudentSvc:   studentSvc,
			TeacherSvc:   teacherSvc,
			DeviceSvc:    deviceSvc,
			ProgramSvc:   programSvc,
			CourseSvc:    courseSvc,
			TimetableSvc: timetableSvc,
			Validate:     validate,
			Translator:   translator,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err := <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func setUpDB(conf *core.Config) (*gorm.DB, error) {
	if err := database.CreateIfNotExist(conf); err != nil {
		return nil, err
	}

	db, err := database.Open(conf)
	if err != nil {
		return nil, err
	}

	if err = database.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
