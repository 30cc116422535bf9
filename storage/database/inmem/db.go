// Package inmemdb provides map-backed repositories for tests and local
// development without PostgreSQL.
package inmemdb

import (
	"sync"

	"github.com/malcolm008/RFID-system/core/course"
	"github.com/malcolm008/RFID-system/core/device"
	"github.com/malcolm008/RFID-system/core/program"
	"github.com/malcolm008/RFID-system/core/student"
	"github.com/malcolm008/RFID-system/core/teacher"
	"github.com/malcolm008/RFID-system/core/timetable"
)

type (
	studentTable struct {
		mutex sync.RWMutex
		seq   int
		table map[int]*student.Student
	}
	teacherTable struct {
		mutex sync.RWMutex
		seq   int
		table map[int]*teacher.Teacher
	}
	deviceTable struct {
		mutex sync.RWMutex
		seq   int
		table map[int]*device.Device
	}
	programTable struct {
		mutex sync.RWMutex
		seq   int
		table map[int]*program.Program
	}
	courseTable struct {
		mutex sync.RWMutex
		seq   int
		table map[int]*course.Course
	}
	timetableTable struct {
		mutex sync.RWMutex
		seq   int
		table map[int]*timetable.Entry
	}
)

type DB struct {
	student   *studentTable
	teacher   *teacherTable
	device    *deviceTable
	program   *programTable
	course    *courseTable
	timetable *timetableTable
}

func NewDB() *DB {
	return &DB{
		student:   &studentTable{table: make(map[int]*student.Student)},
		teacher:   &teacherTable{table: make(map[int]*teacher.Teacher)},
		device:    &deviceTable{table: make(map[int]*device.Device)},
		program:   &programTable{table: make(map[int]*program.Program)},
		course:    &courseTable{table: make(map[int]*course.Course)},
		timetable: &timetableTable{table: make(map[int]*timetable.Entry)},
	}
}
