package models

import "time"

// WorkedDateLayout is the storage format of WorkLog.WorkedDate.
const WorkedDateLayout = "2006-01-02"

// WorkLog is one timesheet line. (employee_email, worked_date) is unique.
type WorkLog struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	EmployeeEmail string    `gorm:"not null;uniqueIndex:idx_work_employee_date" json:"employeeEmail"`
	EmployeeName  string    `json:"employeeName"`
	Task          string    `gorm:"not null" json:"task"`
	HoursWorked   float64   `gorm:"not null" json:"hoursWorked"`
	WorkedDate    string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_work_employee_date" json:"workedDate"`
}
