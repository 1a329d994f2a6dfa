package dto

import (
	"nexustech/models"
	"nexustech/response"
)

// PaginatedResponse carries one page of items and where it sits in the full set
type PaginatedResponse[T any] struct {
	Data       T                   `json:"data"`
	Pagination response.Pagination `json:"pagination"`
}

type ContactPage = PaginatedResponse[[]models.ContactMessage]
