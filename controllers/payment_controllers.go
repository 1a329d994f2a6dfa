package controllers

import (
	"nexustech/dto"
	"nexustech/models"
	"nexustech/response"
	"nexustech/services"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	payroll *services.PayrollService
}

func NewPaymentController(payroll *services.PayrollService) PaymentController {
	return PaymentController{payroll: payroll}
}

// CreatePaymentRequest godoc
// @Summary File a pay request for an employee
// @Tags payroll
// @Accept json
// @Produce json
// @Param body body dto.CreatePaymentRequest true "request"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /payment/request [post]
func (p PaymentController) CreatePaymentRequest(c *gin.Context) {
	caller, ok := principal(c)
	if !ok {
		return
	}

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	payReq := models.PaymentRequest{
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		Salary:       req.Salary,
		Month:        req.Month,
		Year:         req.Year,
	}
	msg, err := p.payroll.CreatePaymentRequest(c.Request.Context(), &payReq, caller.Email)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, dto.MessageResponse{Message: msg})
}

// ApprovePaymentRequest godoc
// @Summary Charge and approve a pending pay request
// @Tags payroll
// @Accept json
// @Produce json
// @Param body body dto.ApprovePaymentRequest true "request id"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /approve-pay-request [post]
func (p PaymentController) ApprovePaymentRequest(c *gin.Context) {
	var req dto.ApprovePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := p.payroll.ApprovePaymentRequest(c.Request.Context(), req.ID)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, result)
}

func (p PaymentController) ListPaymentRequests(c *gin.Context) {
	requests, err := p.payroll.ListPaymentRequests(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.SuccessWithTotal(c, requests, int64(len(requests)))
}

// PaymentHistory godoc
// @Summary Payment history by employee id or email
// @Tags payroll
// @Produce json
// @Param slug path string true "user id or email"
// @Param page query int false "page, from 1"
// @Param limit query int false "page size"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /payment-history/{slug} [get]
func (p PaymentController) PaymentHistory(c *gin.Context) {
	var q dto.PaymentHistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid pagination")
		return
	}

	history, err := p.payroll.PaymentHistory(c.Request.Context(), c.Param("slug"), q.Page, q.Limit)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, history)
}
