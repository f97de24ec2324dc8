package models

import (
	"time"

	"github.com/gocql/gocql"
)

// AuditLog trace les actions admin (statuts de commande, catalogue).
type AuditLog struct {
	ID         gocql.UUID `json:"id"`
	SessionID  string     `json:"session_id"`
	UserEmail  string     `json:"user_email,omitempty"`
	Action     string     `json:"action"`   // "order.status", "product.create", ...
	Resource   string     `json:"resource"` // "order", "product"
	ResourceID string     `json:"resource_id"`
	OldValue   string     `json:"old_value,omitempty"`
	NewValue   string     `json:"new_value,omitempty"`
	Success    bool       `json:"success"`
	Error      string     `json:"error,omitempty"`
	IPAddress  string     `json:"ip_address"`
	CreatedAt  time.Time  `json:"created_at"`
}
