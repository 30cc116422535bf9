// Package gormrepos implements the domain repositories on top of GORM and
// PostgreSQL.
package gormrepos

import (
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/malcolm008/RFID-system/core"
)

const pgUniqueViolation = "23505"

type studentRow struct {
	ID             int64 `gorm:"primaryKey"`
	Name           string
	RegNumber      string `gorm:"uniqueIndex"`
	Program        string
	Year           int
	HasRfid        bool
	HasFingerprint bool
	CreatedAt      time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime:false"`
}

func (studentRow) TableName() string { return "students" }

type teacherRow struct {
	ID             int64 `gorm:"primaryKey"`
	Name           string
	Email          string `gorm:"uniqueIndex"`
	Course         string
	Department     string
	HasRfid        bool
	HasFingerprint bool
	CreatedAt      time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime:false"`
}

func (teacherRow) TableName() string { return "teachers" }

type deviceRow struct {
	ID        int64 `gorm:"primaryKey"`
	Name      string
	Type      string
	Location  string
	LastSeen  time.Time
	Status    string
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

func (deviceRow) TableName() string { return "devices" }

type programRow struct {
	ID            int64 `gorm:"primaryKey"`
	Name          string
	Qualification string
	Level         string
	Duration      int
	Department    string
}

func (programRow) TableName() string { return "programs" }

type courseRow struct {
	ID            int64 `gorm:"primaryKey"`
	Name          string
	Code          string
	Qualification string
	Semester      int
	Year          int
	Programs      []programRow `gorm:"many2many:course_programs;joinForeignKey:CourseID;joinReferences:ProgramID"`
}

func (courseRow) TableName() string { return "courses" }

type timetableEntryRow struct {
	ID            int64 `gorm:"primaryKey"`
	ProgramID     int64
	CourseID      int64
	TeacherID     int64
	DeviceID      *int64
	Location      string
	Year          int
	Day           string
	StartTime     string
	EndTime       string
	Qualification string
	CreatedAt     time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime:false"`
}

func (timetableEntryRow) TableName() string { return "timetable_entries" }

// applyOrdering translates API field names to columns and appends ORDER BY
// clauses. Unknown fields are skipped.
func applyOrdering(q *gorm.DB, columns map[string]string, ordering []core.DBOrdering) *gorm.DB {
	for _, ord := range ordering {
		col, ok := columns[ord.Field]
		if !ok {
			continue
		}
		dir := "ASC"
		if !ord.Ascending {
			dir = "DESC"
		}
		q = q.Order(col + " " + dir)
	}
	return q
}

// trapNotFound maps GORM's "record not found" to the domain sentinel.
func trapNotFound(err, notFound error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return errors.Wrap(err, msg)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func toIDs(ids []core.ID) []int64 {
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		out = append(out, int64(id))
	}
	return out
}
