package response

import (
	"time"

	"repairdesk/internal/domain/entities"
)

type AuditLogResponse struct {
	ID        string    `json:"id"`
	DeviceID  string    `json:"device_id"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	ActorID   string    `json:"actor_id"`
	ActorName string    `json:"actor_name"`
	CreatedAt time.Time `json:"created_at"`
}

func FromAuditLogs(entries []entities.AuditLog) []AuditLogResponse {
	out := make([]AuditLogResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, AuditLogResponse{
			ID:        e.ID,
			DeviceID:  e.DeviceID,
			Action:    string(e.Action),
			Detail:    e.Detail,
			ActorID:   e.ActorID,
			ActorName: e.ActorName,
			CreatedAt: e.CreatedAt,
		})
	}
	return out
}
