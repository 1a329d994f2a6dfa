package dto

import "nexustech/models"

type CreatePaymentRequest struct {
	EmployeeID   uint   `json:"employeeId" binding:"required"`
	EmployeeName string `json:"employeeName" binding:"required"`
	Salary       int64  `json:"salary" binding:"required,gt=0"`
	Month        string `json:"month" binding:"required,month"`
	Year         int    `json:"year" binding:"required,gte=2000,lte=2100"`
}

type ApprovePaymentRequest struct {
	ID uint `json:"id" binding:"required"`
}

type PaymentHistoryQuery struct {
	Page  int `form:"page" binding:"omitempty,gte=1"`
	Limit int `form:"limit" binding:"omitempty,gte=1"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ApproveResponse struct {
	Request models.PaymentRequest `json:"request"`
	History models.PaymentHistory `json:"history"`
}

type PaymentHistoryResponse struct {
	AllHistory       []models.PaymentHistory `json:"allHistory"`
	PaginatedHistory []models.PaymentHistory `json:"paginatedHistory"`
	Total            int64                   `json:"total"`
	TotalPages       int                     `json:"totalPages"`
	Page             int                     `json:"page"`
	Limit            int                     `json:"limit"`
}
