package models

import "time"

const (
	PaymentStatusPending  = "pending"
	PaymentStatusApproved = "approved"
	PaymentStatusRejected = "rejected"
)

// PaymentRequest is raised by HR and approved by an admin. One request per
// employee and period.
type PaymentRequest struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	EmployeeID    uint       `gorm:"not null;uniqueIndex:idx_pay_request_period" json:"employeeId"`
	EmployeeName  string     `json:"employeeName"`
	Salary        int64      `gorm:"not null" json:"salary"`
	Month         string     `gorm:"type:varchar(16);not null" json:"month"`
	MonthNumber   int        `gorm:"not null;uniqueIndex:idx_pay_request_period" json:"-"`
	Year          int        `gorm:"not null;uniqueIndex:idx_pay_request_period" json:"year"`
	HREmail       string     `gorm:"column:hr_email" json:"hrEmail"`
	RequestDate   string     `gorm:"type:varchar(10)" json:"requestDate"`
	Status        string     `gorm:"type:varchar(16);not null;default:pending;index" json:"status"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
	TransactionID string     `json:"transactionId,omitempty"`
}

// PaymentHistory is the append-only record of a completed charge.
type PaymentHistory struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	PaymentRequestID uint      `gorm:"not null;uniqueIndex" json:"paymentRequestId"`
	EmployeeID       uint      `gorm:"not null;index" json:"employeeId"`
	EmployeeName     string    `json:"employeeName"`
	Salary           int64     `gorm:"not null" json:"salary"`
	Month            string    `gorm:"type:varchar(16);not null" json:"month"`
	MonthNumber      int       `gorm:"not null" json:"-"`
	Year             int       `gorm:"not null" json:"year"`
	HREmail          string    `gorm:"column:hr_email" json:"hrEmail"`
	TransactionID    string    `gorm:"not null" json:"transactionId"`
	Status           string    `gorm:"type:varchar(16);not null" json:"status"`
	PaidAt           time.Time `gorm:"not null" json:"paidAt"`
}

func (PaymentHistory) TableName() string {
	return "payment_history"
}
