package models

import (
	"time"

	apperrors "nexustech/errors"
)

// PaymentState captures which transitions a PaymentRequest allows from its
// current status.
type PaymentState interface {
	Approve(req *PaymentRequest, transactionID string, paidAt time.Time) error
}

// PendingState can be approved exactly once.
type PendingState struct{}

func (s *PendingState) Approve(req *PaymentRequest, transactionID string, paidAt time.Time) error {
	req.Status = PaymentStatusApproved
	req.TransactionID = transactionID
	req.PaidAt = &paidAt
	return nil
}

// ApprovedState is terminal.
type ApprovedState struct{}

func (s *ApprovedState) Approve(req *PaymentRequest, _ string, _ time.Time) error {
	return apperrors.NewAppError(apperrors.ErrCodeAlreadyApproved, "Payment request is already approved", apperrors.ErrPaymentAlreadyApproved)
}

// RejectedState is reserved: nothing sets it yet, and it cannot be approved.
type RejectedState struct{}

func (s *RejectedState) Approve(req *PaymentRequest, _ string, _ time.Time) error {
	return apperrors.NewAppError(apperrors.ErrCodeConflict, "Payment request was rejected", apperrors.ErrPaymentRejected)
}

// GetPaymentState returns the state matching a stored status.
func GetPaymentState(status string) PaymentState {
	switch status {
	case PaymentStatusApproved:
		return &ApprovedState{}
	case PaymentStatusRejected:
		return &RejectedState{}
	default:
		return &PendingState{}
	}
}
