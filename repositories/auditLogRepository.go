package repositories

import (
	"RadiologyCenter/database"
	"RadiologyCenter/models"
	"context"
	"fmt"
)

// AuditLogRepository appends audit rows. Audit entries are never updated
// or deleted.
type AuditLogRepository struct{}

func NewAuditLogRepository() *AuditLogRepository {
	return &AuditLogRepository{}
}

func (r *AuditLogRepository) Append(ctx context.Context, entry *models.AuditLog) error {
	if err := database.DB.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to append audit log: %w", err)
	}
	return nil
}

// GetByEntity lists audit rows for one entity, newest first.
func (r *AuditLogRepository) GetByEntity(ctx context.Context, entityName, entityID string) ([]models.AuditLog, error) {
	var entries []models.AuditLog
	err := database.DB.WithContext(ctx).
		Where("entity_name = ? AND entity_id = ?", entityName, entityID).
		Order("timestamp DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get audit logs: %w", err)
	}
	return entries, nil
}
