package services

import (
	"RadiologyCenter/models"
	"RadiologyCenter/repositories"
	"context"
	"encoding/json"
	"fmt"
	"log"
)

// AuditService records entity changes. Failures are logged but never fail
// the originating write; the audit trail is informational.
type AuditService struct {
	repository *repositories.AuditLogRepository
}

func NewAuditService(repository *repositories.AuditLogRepository) *AuditService {
	return &AuditService{repository: repository}
}

// Record appends an audit row with JSON snapshots of the entity before
// and after the change. Either snapshot may be nil.
func (s *AuditService) Record(ctx context.Context, actor, action, entityName string, entityID interface{}, oldValue, newValue interface{}) {
	entry := &models.AuditLog{
		UserName:   actor,
		Action:     action,
		EntityName: entityName,
		EntityID:   fmt.Sprintf("%v", entityID),
		OldValues:  marshalSnapshot(oldValue),
		NewValues:  marshalSnapshot(newValue),
	}
	if err := s.repository.Append(ctx, entry); err != nil {
		log.Printf("Failed to record audit entry for %s %s: %v", entityName, entry.EntityID, err)
	}
}

// History returns the audit trail for one entity.
func (s *AuditService) History(ctx context.Context, entityName, entityID string) ([]models.AuditLog, error) {
	return s.repository.GetByEntity(ctx, entityName, entityID)
}

func marshalSnapshot(value interface{}) string {
	if value == nil {
		return ""
	}
	data, err := json.Marshal(value)
	if err != nil {
		return ""
	}
	return string(data)
}
