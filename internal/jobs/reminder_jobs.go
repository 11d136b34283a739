package jobs

import (
	"context"

	"propertyhub-backend/internal/logger"
)

// SendPendingApprovalsReminder emails the ops address a digest of accounts
// still waiting for review. Skipped when nothing is pending.
func (jr *JobRunner) SendPendingApprovalsReminder() {
	jr.runWithRecovery("SendPendingApprovalsReminder", func() {
		ctx := context.Background()

		pending, err := jr.approvalSvc.PendingCounts(ctx)
		if err != nil {
			logger.Error("Failed to collect pending counts", "error", err)
			return
		}

		var total int32
		for _, n := range pending {
			total += n
		}
		if total == 0 {
			logger.Info("No pending approvals, skipping reminder")
			return
		}

		opsEmail := jr.config.SendGrid.OpsEmail
		if opsEmail == "" {
			logger.Warn("No ops email configured, skipping reminder", "pending", total)
			return
		}

		if err := jr.emailSvc.SendPendingApprovalsReminder(ctx, opsEmail, pending); err != nil {
			logger.Error("Failed to send pending approvals reminder", "error", err, "to", opsEmail)
			return
		}
		logger.Info("Pending approvals reminder sent", "to", opsEmail, "pending", total)
	})
}
