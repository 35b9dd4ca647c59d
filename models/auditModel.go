package models

import (
	"time"
)

// Audit actions
const (
	AuditCreate = "Create"
	AuditUpdate = "Update"
	AuditDelete = "Delete"
)

// AuditLog is an append-only record of who changed what. Old and new
// values are JSON snapshots; rows are informational and never updated.
type AuditLog struct {
	ID         uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID     string    `gorm:"column:user_id" json:"user_id"`
	UserName   string    `gorm:"column:user_name" json:"user_name"`
	Action     string    `gorm:"column:action;not null" json:"action"`
	EntityName string    `gorm:"column:entity_name;not null;index" json:"entity_name"`
	EntityID   string    `gorm:"column:entity_id;not null" json:"entity_id"`
	Timestamp  time.Time `gorm:"column:timestamp;autoCreateTime" json:"timestamp"`
	OldValues  string    `gorm:"column:old_values;type:text" json:"old_values"`
	NewValues  string    `gorm:"column:new_values;type:text" json:"new_values"`
}

func (AuditLog) TableName() string {
	return "audit_log"
}
