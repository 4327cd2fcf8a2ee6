package repository

import (
	"context"

	"pawpoint/internal/domain/entity"
)

type AuditLogRepository interface {
	Create(ctx context.Context, auditLog *entity.AuditLog) error
	FindAll(ctx context.Context) ([]entity.AuditLog, error)
}
