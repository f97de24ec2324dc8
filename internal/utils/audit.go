package utils

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"sajhnaa_back_end/internal/database"
	"sajhnaa_back_end/internal/models"
)

// LogAction enregistre une action admin dans les logs d'audit
func LogAction(c *gin.Context, action, resource, resourceID string, oldValue, newValue interface{}) {
	entry := buildAuditLog(c, action, resource, resourceID, oldValue, newValue, true, "")
	go func() {
		if err := writeAuditLog(entry); err != nil {
			log.Printf("❌ Erreur enregistrement log audit: %v", err)
		}
	}()
}

// LogFailedAction enregistre une action échouée dans les logs d'audit
func LogFailedAction(c *gin.Context, action, resource, resourceID, errorMsg string) {
	entry := buildAuditLog(c, action, resource, resourceID, nil, nil, false, errorMsg)
	go func() {
		if err := writeAuditLog(entry); err != nil {
			log.Printf("❌ Erreur enregistrement log audit: %v", err)
		}
	}()
}

func buildAuditLog(c *gin.Context, action, resource, resourceID string, oldValue, newValue interface{}, success bool, errorMsg string) models.AuditLog {
	var oldValueStr, newValueStr string
	if oldValue != nil {
		if b, err := json.Marshal(oldValue); err == nil {
			oldValueStr = string(b)
		}
	}
	if newValue != nil {
		if b, err := json.Marshal(newValue); err == nil {
			newValueStr = string(b)
		}
	}

	return models.AuditLog{
		ID:         gocql.TimeUUID(),
		SessionID:  c.GetString("session_id"),
		UserEmail:  c.GetString("email"),
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		OldValue:   oldValueStr,
		NewValue:   newValueStr,
		Success:    success,
		Error:      errorMsg,
		IPAddress:  c.ClientIP(),
		CreatedAt:  time.Now(),
	}
}

func writeAuditLog(entry models.AuditLog) error {
	session, err := database.GetUsersSession()
	if err != nil {
		return err
	}

	return session.Query(`INSERT INTO audit_logs (id, session_id, user_email, action, resource, resource_id, old_value, new_value, success, error, ip_address, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.SessionID, entry.UserEmail, entry.Action, entry.Resource,
		entry.ResourceID, entry.OldValue, entry.NewValue, entry.Success, entry.Error,
		entry.IPAddress, entry.CreatedAt,
	).Exec()
}
