package controllers

import (
	"fmt"

	"nexustech/dto"
	"nexustech/models"
	"nexustech/response"
	"nexustech/services"

	"github.com/gin-gonic/gin"
)

type WorkController struct {
	work  *services.WorkService
	users services.Directory
}

func NewWorkController(work *services.WorkService, users services.Directory) WorkController {
	return WorkController{work: work, users: users}
}

// ownEntry builds the entry for the caller; the owner name comes from the
// caller's profile, never from the body.
func (w WorkController) ownEntry(c *gin.Context, req dto.WorkRequest, email string) (*models.WorkLog, error) {
	user, err := w.users.FindByEmail(c.Request.Context(), email)
	if err != nil {
		return nil, err
	}
	return &models.WorkLog{
		EmployeeEmail: user.Email,
		EmployeeName:  user.Name,
		Task:          req.Task,
		HoursWorked:   req.HoursWorked,
		WorkedDate:    req.WorkedDate,
	}, nil
}

// SubmitWork godoc
// @Summary Submit a daily work entry
// @Tags work
// @Accept json
// @Produce json
// @Param body body dto.WorkRequest true "entry"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /daily-work [post]
func (w WorkController) SubmitWork(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req dto.WorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	entry, err := w.ownEntry(c, req, p.Email)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	if err := w.work.SubmitWork(c.Request.Context(), entry); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, entry)
}

// ListWork only serves the caller's own sheet
func (w WorkController) ListWork(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	if !sameEmail(p.Email, c.Param("email")) {
		response.Forbidden(c)
		return
	}

	entries, err := w.work.ListWork(c.Request.Context(), p.Email)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, entries)
}

func (w WorkController) UpdateWork(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, err := parseID(c, "id")
	if err != nil {
		response.HandleError(c, err)
		return
	}

	var req dto.WorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	fields, err := w.ownEntry(c, req, p.Email)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	entry, err := w.work.UpdateWork(c.Request.Context(), id, p.Email, fields)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, entry)
}

func (w WorkController) DeleteWork(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, err := parseID(c, "id")
	if err != nil {
		response.HandleError(c, err)
		return
	}

	result, err := w.work.DeleteWork(c.Request.Context(), id, p.Email)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, result)
}

// Summary godoc
// @Summary Aggregated work report
// @Tags work
// @Produce json
// @Param month query string false "1-12 or month name"
// @Param name query string false "employee name"
// @Success 200 {object} response.Response
// @Router /submited-work [get]
func (w WorkController) Summary(c *gin.Context) {
	var q dto.WorkSummaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid month")
		return
	}

	summary, err := w.work.Summary(c.Request.Context(), q.Month, q.Name)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	if len(summary) == 0 && q.Name != "" {
		suggestion, err := w.work.SuggestName(c.Request.Context(), q.Name)
		if err != nil {
			response.HandleError(c, err)
			return
		}
		if suggestion != "" {
			response.SuccessWithMessage(c, fmt.Sprintf("No work found for %s. Did you mean %s?", q.Name, suggestion), summary)
			return
		}
	}
	response.Success(c, summary)
}
