package dto

import "nexustech/models"

type WorkRequest struct {
	Task        string  `json:"task" binding:"required"`
	HoursWorked float64 `json:"hoursWorked" binding:"required,gt=0,lte=24"`
	WorkedDate  string  `json:"workedDate" binding:"required,workdate"`
}

type WorkSummaryQuery struct {
	Month string `form:"month" binding:"omitempty,month"`
	Name  string `form:"name"`
}

type WorkSummary struct {
	TotalHours float64          `json:"totalHours"`
	Entries    []models.WorkLog `json:"entries"`
}

type DeleteResult struct {
	Deleted int64 `json:"deletedCount"`
}
