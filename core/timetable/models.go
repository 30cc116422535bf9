package timetable

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/malcolm008/RFID-system/core"
)

// Entry is a single timetable slot: a course taught to a program by a
// teacher, optionally bound to the reader device installed in the room.
type Entry struct {
	ID            core.ID   `json:"id"`
	Program       core.ID   `json:"program"`
	Course        core.ID   `json:"course"`
	Teacher       core.ID   `json:"teacher"`
	Device        *core.ID  `json:"device"`
	Location      string    `json:"location"`
	Year          int       `json:"year"`
	Day           string    `json:"day"`
	StartTime     string    `json:"startTime"` // HH:MM
	EndTime       string    `json:"endTime"`   // HH:MM
	Qualification string    `json:"qualification"`
	CreatedAt     time.Time `json:"created_at"` // UTC
	UpdatedAt     time.Time `json:"updated_at"` // UTC
}

// NewEntry contains information needed to create a new timetable Entry.
type NewEntry struct {
	Program       core.ID  `json:"program" validate:"required"`
	Course        core.ID  `json:"course" validate:"required"`
	Teacher       core.ID  `json:"teacher" validate:"required"`
	Device        *core.ID `json:"device"`
	Location      string   `json:"location" validate:"required"`
	Year          int      `json:"year" validate:"required,min=1"`
	Day           string   `json:"day" validate:"required"`
	StartTime     string   `json:"startTime" validate:"required,datetime=15:04"`
	EndTime       string   `json:"endTime" validate:"required,datetime=15:04"`
	Qualification string   `json:"qualification"`
}

func (ne *NewEntry) Validate(validate *validator.Validate) error {
	ne.Location = core.CleanString(ne.Location)
	ne.Day = core.CleanString(ne.Day)
	ne.Qualification = core.CleanString(ne.Qualification)
	return validate.Struct(ne)
}

// UpdateEntry defines what information may be provided to modify an existing
// Entry. Nil fields retain their prior value; Device may be supplied as null
// to clear the binding, which is indistinguishable from leaving it out on a
// JSON wire, so clearing is done by supplying id 0.
type UpdateEntry struct {
	ID            core.ID  `json:"id"`
	Program       *core.ID `json:"program"`
	Course        *core.ID `json:"course"`
	Teacher       *core.ID `json:"teacher"`
	Device        *core.ID `json:"device"`
	Location      *string  `json:"location"`
	Year          *int     `json:"year" validate:"omitempty,min=1"`
	Day           *string  `json:"day"`
	StartTime     *string  `json:"startTime" validate:"omitempty,datetime=15:04"`
	EndTime       *string  `json:"endTime" validate:"omitempty,datetime=15:04"`
	Qualification *string  `json:"qualification"`
}

func (ue *UpdateEntry) Validate(validate *validator.Validate) error {
	if ue.Location != nil {
		*ue.Location = core.CleanString(*ue.Location)
	}
	if ue.Day != nil {
		*ue.Day = core.CleanString(*ue.Day)
	}
	if ue.Qualification != nil {
		*ue.Qualification = core.CleanString(*ue.Qualification)
	}
	return validate.Struct(ue)
}

func (ue UpdateEntry) merge(ent Entry) Entry {
	if ue.Program != nil {
		ent.Program = *ue.Program
	}
	if ue.Course != nil {
		ent.Course = *ue.Course
	}
	if ue.Teacher != nil {
		ent.Teacher = *ue.Teacher
	}
	if ue.Device != nil {
		if *ue.Device == 0 {
			ent.Device = nil
		} else {
			ent.Device = ue.Device
		}
	}
	if ue.Location != nil {
		ent.Location = *ue.Location
	}
	if ue.Year != nil {
		ent.Year = *ue.Year
	}
	if ue.Day != nil {
		ent.Day = *ue.Day
	}
	if ue.StartTime != nil {
		ent.StartTime = *ue.StartTime
	}
	if ue.EndTime != nil {
		ent.EndTime = *ue.EndTime
	}
	if ue.Qualification != nil {
		ent.Qualification = *ue.Qualification
	}
	return ent
}
