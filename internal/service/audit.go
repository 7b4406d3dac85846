package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/JosiephousPierre/SELab-final/internal/model"
	"github.com/JosiephousPierre/SELab-final/internal/repository"
)

// recordAudit appends an audit_log row. Failures are logged and swallowed;
// audit writes never fail the operation that produced them.
func recordAudit(ctx context.Context, repo *repository.Repository, logger *zap.Logger, userID *string, action, details, clientIP string) {
	entry := &model.AuditLog{
		UserID:  userID,
		Action:  action,
		Details: details,
	}
	if clientIP != "" {
		entry.IPAddress = &clientIP
	}
	if err := repo.AuditLog.Create(ctx, entry); err != nil {
		logger.Warn("audit log write failed",
			zap.String("action", action),
			zap.Error(err))
	}
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
