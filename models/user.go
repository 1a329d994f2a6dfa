package models

import "time"

type Role string

const (
	RoleEmployee Role = "employee"
	RoleHR       Role = "hr"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleHR, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name          string    `json:"name"`
	Email         string    `gorm:"uniqueIndex;not null" json:"email"`
	Role          Role      `gorm:"type:varchar(16);default:employee;index" json:"role"`
	IsVerified    bool      `gorm:"default:false" json:"isVerified"`
	Fired         bool      `gorm:"default:false" json:"fired"`
	Salary        int64     `gorm:"default:0" json:"salary"`
	Designation   string    `json:"designation"`
	BankAccountNo string    `json:"bankAccountNo"`
	Photo         string    `json:"photo"`
}
