package entities

import (
	"errors"
	"time"
)

// DeviceStatus represents the repair lifecycle of a device.
//
// Domain notes:
//   - RECEIVED is the intake status and RETURNED the terminal one, but the
//     graph is intentionally permissive: any status may move to any other.
//     The only gate on a transition is the acting role (see Role.CanChangeStatus).

type DeviceStatus string

const (
	DeviceStatusReceived     DeviceStatus = "RECEIVED"
	DeviceStatusInspecting   DeviceStatus = "INSPECTING"
	DeviceStatusWaitingParts DeviceStatus = "WAITING_PARTS"
	DeviceStatusRepairing    DeviceStatus = "REPAIRING"
	DeviceStatusCompleted    DeviceStatus = "COMPLETED"
	DeviceStatusReturned     DeviceStatus = "RETURNED"
)

var ErrUnknownDeviceStatus = errors.New("unknown device status")

func (s DeviceStatus) String() string {
	return string(s)
}

// ParseDeviceStatus validates a raw status value against the six known statuses.
func ParseDeviceStatus(raw string) (DeviceStatus, error) {
	switch DeviceStatus(raw) {
	case DeviceStatusReceived, DeviceStatusInspecting, DeviceStatusWaitingParts,
		DeviceStatusRepairing, DeviceStatusCompleted, DeviceStatusReturned:
		return DeviceStatus(raw), nil
	}
	return "", ErrUnknownDeviceStatus
}

// Device is one physical unit under repair.
//
// Storage model (DynamoDB):
//   - PK: id
type Device struct {
	ID                 string       `json:"id"`
	CustomerID         string       `json:"customer_id,omitempty"`
	CustomerName       string       `json:"customer_name"`
	CustomerPhone      string       `json:"customer_phone,omitempty"`
	Brand              string       `json:"brand"`
	Model              string       `json:"model"`
	Status             DeviceStatus `json:"status"`
	ReceivedDate       time.Time    `json:"received_date"`
	ExpectedReturnDate *time.Time   `json:"expected_return_date,omitempty"`
	WarrantyMonths     int          `json:"warranty_months,omitempty"`
	Note               string       `json:"note,omitempty"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}
