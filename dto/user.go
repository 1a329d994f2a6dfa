package dto

import "nexustech/models"

type CreateUserRequest struct {
	Name          string      `json:"name" binding:"required"`
	Email         string      `json:"email" binding:"required,email"`
	Role          models.Role `json:"role" binding:"omitempty,oneof=employee hr admin"`
	Designation   string      `json:"designation"`
	Salary        int64       `json:"salary" binding:"gte=0"`
	BankAccountNo string      `json:"bankAccountNo"`
	Photo         string      `json:"photo" binding:"omitempty,url"`
}

type RoleResponse struct {
	Role models.Role `json:"role"`
}

type FiredResponse struct {
	Fired bool `json:"fired"`
}

// VerifyRequest sets the verified flag; an empty body verifies.
type VerifyRequest struct {
	IsVerified *bool `json:"isVerified"`
}

type SalaryUpdateRequest struct {
	ID     uint  `json:"id" binding:"required"`
	Salary int64 `json:"salary" binding:"required,gt=0"`
}

type DesignationCount struct {
	Designation string `json:"designation"`
	Count       int64  `json:"count"`
}

type EmployeeListResponse struct {
	Employees         []models.User      `json:"employees"`
	DesignationCounts []DesignationCount `json:"designationCounts"`
}

// UpdateResult mirrors the modified/matched counters clients already read.
type UpdateResult struct {
	Matched  int64 `json:"matchedCount"`
	Modified int64 `json:"modifiedCount"`
}
