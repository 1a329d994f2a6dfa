package models

import (
	"testing"
	"time"

	apperrors "nexustech/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentStateApprove(t *testing.T) {
	paidAt := time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)

	req := &PaymentRequest{Status: PaymentStatusPending}
	require.NoError(t, GetPaymentState(req.Status).Approve(req, "pi_1", paidAt))
	assert.Equal(t, PaymentStatusApproved, req.Status)
	assert.Equal(t, "pi_1", req.TransactionID)
	require.NotNil(t, req.PaidAt)
	assert.True(t, paidAt.Equal(*req.PaidAt))

	err := GetPaymentState(req.Status).Approve(req, "pi_2", paidAt)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeAlreadyApproved))
	assert.ErrorIs(t, err, apperrors.ErrPaymentAlreadyApproved)
	assert.Equal(t, "pi_1", req.TransactionID)

	rejected := &PaymentRequest{Status: PaymentStatusRejected}
	err = GetPaymentState(rejected.Status).Approve(rejected, "pi_3", paidAt)
	assert.ErrorIs(t, err, apperrors.ErrPaymentRejected)
	assert.Equal(t, PaymentStatusRejected, rejected.Status)
	assert.Nil(t, rejected.PaidAt)
}
