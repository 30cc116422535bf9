package device

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/malcolm008/RFID-system/core"
)

// Device types
const (
	TypeRfid        = "rfid"
	TypeFingerprint = "fingerprint"
	TypeHybrid      = "hybrid"
)

// Device statuses
const (
	StatusOnline  = "online"
	StatusOffline = "offline"
)

type Device struct {
	ID        core.ID   `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Location  string    `json:"location"`
	LastSeen  time.Time `json:"lastSeen"` // UTC
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"` // UTC
	UpdatedAt time.Time `json:"updated_at"` // UTC
}

// NewDevice contains information needed to register a new Device.
// Status defaults to offline when omitted.
type NewDevice struct {
	Name     string    `json:"name" validate:"required"`
	Type     string    `json:"type" validate:"required,oneof=rfid fingerprint hybrid"`
	Location string    `json:"location" validate:"required"`
	LastSeen time.Time `json:"lastSeen"`
	Status   string    `json:"status" validate:"omitempty,oneof=online offline"`
}

func (nd *NewDevice) Validate(validate *validator.Validate) error {
	nd.Name = core.CleanString(nd.Name)
	nd.Type = core.CleanString(nd.Type, true /* lower */)
	nd.Location = core.CleanString(nd.Location)
	nd.Status = core.CleanString(nd.Status, true /* lower */)
	return validate.Struct(nd)
}

// UpdateDevice defines what information may be provided to modify an existing
// Device. Nil fields retain their prior value.
type UpdateDevice struct {
	ID       core.ID    `json:"id"`
	Name     *string    `json:"name"`
	Type     *string    `json:"type" validate:"omitempty,oneof=rfid fingerprint hybrid"`
	Location *string    `json:"location"`
	LastSeen *time.Time `json:"lastSeen"`
	Status   *string    `json:"status" validate:"omitempty,oneof=online offline"`
}

func (ud *UpdateDevice) Validate(validate *validator.Validate) error {
	if ud.Name != nil {
		*ud.Name = core.CleanString(*ud.Name)
	}
	if ud.Type != nil {
		*ud.Type = core.CleanString(*ud.Type, true /* lower */)
	}
	if ud.Location != nil {
		*ud.Location = core.CleanString(*ud.Location)
	}
	if ud.Status != nil {
		*ud.Status = core.CleanString(*ud.Status, true /* lower */)
	}
	return validate.Struct(ud)
}

func (ud UpdateDevice) merge(dev Device) Device {
	if ud.Name != nil {
		dev.Name = *ud.Name
	}
	if ud.Type != nil {
		dev.Type = *ud.Type
	}
	if ud.Location != nil {
		dev.Location = *ud.Location
	}
	if ud.LastSeen != nil {
		dev.LastSeen = ud.LastSeen.UTC()
	}
	if ud.Status != nil {
		dev.Status = *ud.Status
	}
	return dev
}
