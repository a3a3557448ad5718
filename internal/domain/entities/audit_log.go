package entities

import "time"

// AuditAction identifies what a device activity-log entry records.
type AuditAction string

const (
	AuditActionStatusChanged AuditAction = "STATUS_CHANGED"
)

// AuditLog is one entry in a device's activity log, attributed to the acting
// staff member.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (device_id-index): device_id
type AuditLog struct {
	ID        string      `json:"id"`
	DeviceID  string      `json:"device_id"`
	Action    AuditAction `json:"action"`
	Detail    string      `json:"detail"`
	ActorID   string      `json:"actor_id"`
	ActorName string      `json:"actor_name"`
	CreatedAt time.Time   `json:"created_at"`
}
