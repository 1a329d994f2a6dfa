package commands

import (
	apperrors "nexustech/errors"
	"nexustech/models"

	"gorm.io/gorm"
)

// PaymentCommand is one write step of the approval transaction
type PaymentCommand interface {
	Execute() error
}

// MarkApprovedCommand flips a pending request to approved. It only matches
// rows still pending, so a concurrent approval makes it fail with Conflict.
type MarkApprovedCommand struct {
	req *models.PaymentRequest
	db  *gorm.DB
}

func NewMarkApprovedCommand(req *models.PaymentRequest, db *gorm.DB) *MarkApprovedCommand {
	return &MarkApprovedCommand{
		req: req,
		db:  db,
	}
}

func (c *MarkApprovedCommand) Execute() error {
	res := c.db.Model(&models.PaymentRequest{}).
		Where("id = ? AND status = ?", c.req.ID, models.PaymentStatusPending).
		Updates(map[string]interface{}{
			"status":         models.PaymentStatusApproved,
			"paid_at":        c.req.PaidAt,
			"transaction_id": c.req.TransactionID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NewAppError(apperrors.ErrCodeAlreadyApproved, "Payment request is already approved", apperrors.ErrPaymentAlreadyApproved)
	}
	return nil
}

// AppendHistoryCommand inserts the history record
type AppendHistoryCommand struct {
	history *models.PaymentHistory
	db      *gorm.DB
}

func NewAppendHistoryCommand(history *models.PaymentHistory, db *gorm.DB) *AppendHistoryCommand {
	return &AppendHistoryCommand{
		history: history,
		db:      db,
	}
}

func (c *AppendHistoryCommand) Execute() error {
	return c.db.Create(c.history).Error
}

// Run executes the commands in order and stops at the first error
func Run(cmds ...PaymentCommand) error {
	for _, cmd := range cmds {
		if err := cmd.Execute(); err != nil {
			return err
		}
	}
	return nil
}
