package controllers

import (
	"nexustech/response"
	"nexustech/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	reports *services.ReportService
}

func NewReportController(reports *services.ReportService) ReportController {
	return ReportController{reports: reports}
}

// AdminStats godoc
// @Summary Dashboard totals
// @Tags reports
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin-stats [get]
func (r ReportController) AdminStats(c *gin.Context) {
	stats, err := r.reports.AdminStats(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, stats)
}

func (r ReportController) SalaryRequestSummary(c *gin.Context) {
	summary, err := r.reports.SalaryRequestSummary(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, summary)
}
