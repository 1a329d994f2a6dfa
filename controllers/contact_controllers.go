package controllers

import (
	"strconv"

	"nexustech/dto"
	"nexustech/models"
	"nexustech/response"
	"nexustech/services"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	contacts *services.ContactService
	ai       *services.AIService
}

func NewContactController(contacts *services.ContactService, ai *services.AIService) ContactController {
	return ContactController{contacts: contacts, ai: ai}
}

func (ct ContactController) Create(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	msg := models.ContactMessage{Name: req.Name, Email: req.Email, Message: req.Message}
	if err := ct.contacts.Create(c.Request.Context(), &msg); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, msg)
}

// List serves ?size=N as the 0-based page index
func (ct ContactController) List(c *gin.Context) {
	page := 0
	if s := c.Query("size"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			response.BadRequest(c, "Invalid page")
			return
		}
		page = n
	}

	result, err := ct.contacts.Page(c.Request.Context(), page)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.SuccessWithPagination(c, result.Data, result.Pagination.Page, result.Pagination.Limit, result.Pagination.Total, result.Pagination.TotalPages)
}

func (ct ContactController) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.HandleError(c, err)
		return
	}

	result, err := ct.contacts.Delete(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, result)
}

// Ask godoc
// @Summary Text completion
// @Tags ai
// @Produce json
// @Param prompt query string true "prompt"
// @Success 200 {object} response.Response
// @Router /gemini-ai [get]
func (ct ContactController) Ask(c *gin.Context) {
	var q dto.GeminiQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Prompt is required")
		return
	}

	text, err := ct.ai.Ask(c.Request.Context(), q.Prompt)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, dto.GeminiResponse{Text: text})
}
