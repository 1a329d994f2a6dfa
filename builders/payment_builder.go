package builders

import (
	"time"

	"nexustech/models"
)

// PaymentHistoryBuilder assembles the history record of an approved request
type PaymentHistoryBuilder struct {
	history *models.PaymentHistory
}

func NewPaymentHistoryBuilder() *PaymentHistoryBuilder {
	return &PaymentHistoryBuilder{
		history: &models.PaymentHistory{},
	}
}

// FromRequest copies employee, amount and period from the request
func (b *PaymentHistoryBuilder) FromRequest(req *models.PaymentRequest) *PaymentHistoryBuilder {
	b.history.PaymentRequestID = req.ID
	b.history.EmployeeID = req.EmployeeID
	b.history.EmployeeName = req.EmployeeName
	b.history.Salary = req.Salary
	b.history.Month = req.Month
	b.history.MonthNumber = req.MonthNumber
	b.history.Year = req.Year
	b.history.HREmail = req.HREmail
	b.history.Status = req.Status
	return b
}

func (b *PaymentHistoryBuilder) WithTransaction(transactionID string) *PaymentHistoryBuilder {
	b.history.TransactionID = transactionID
	return b
}

func (b *PaymentHistoryBuilder) WithPaidAt(paidAt time.Time) *PaymentHistoryBuilder {
	b.history.PaidAt = paidAt
	return b
}

func (b *PaymentHistoryBuilder) Build() *models.PaymentHistory {
	if b.history.MonthNumber == 0 {
		b.history.MonthNumber = models.MonthNumber(b.history.Month)
	}
	return b.history
}
