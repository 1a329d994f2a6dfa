package dto

type AdminStats struct {
	TotalUsers       int64   `json:"totalUsers"`
	TotalExpenses    int64   `json:"totalExpenses"`
	TotalWorkedHours float64 `json:"totalWorkedHours"`
}

type SalaryRequestSummary struct {
	Label             string `json:"label"`
	Month             string `json:"month"`
	Year              int    `json:"year"`
	ReceivedSalary    int64  `json:"receivedSalary"`
	NotReceivedSalary int64  `json:"notReceivedSalary"`
}
