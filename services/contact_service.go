package services

import (
	"context"
	"strings"

	"nexustech/constants"
	"nexustech/dto"
	apperrors "nexustech/errors"
	"nexustech/models"
	"nexustech/response"
	"nexustech/services/logger"

	"gorm.io/gorm"
)

type ContactService struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewContactService(db *gorm.DB, log logger.Logger) *ContactService {
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &ContactService{db: db, logger: log}
}

func (s *ContactService) Create(ctx context.Context, msg *models.ContactMessage) error {
	msg.ID = 0
	msg.Email = normalizeEmail(msg.Email)
	if strings.TrimSpace(msg.Message) == "" {
		return apperrors.NewAppError(apperrors.ErrCodeRequiredField, "Message is required", apperrors.ErrMissingRequired)
	}
	if err := s.db.WithContext(ctx).Create(msg).Error; err != nil {
		return dbError(err, "")
	}
	return nil
}

// Page returns the page-th (0-based) block of messages, newest first.
func (s *ContactService) Page(ctx context.Context, page int) (*dto.ContactPage, error) {
	if page < 0 {
		page = 0
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.ContactMessage{}).Count(&total).Error; err != nil {
		return nil, dbError(err, "")
	}

	messages := []models.ContactMessage{}
	if err := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Offset(page * constants.ContactPageSize).
		Limit(constants.ContactPageSize).
		Find(&messages).Error; err != nil {
		return nil, dbError(err, "")
	}

	return &dto.ContactPage{
		Data: messages,
		Pagination: response.Pagination{
			Page:       page,
			Limit:      constants.ContactPageSize,
			Total:      total,
			TotalPages: totalPages(total, constants.ContactPageSize),
		},
	}, nil
}

func (s *ContactService) Delete(ctx context.Context, id uint) (*dto.DeleteResult, error) {
	res := s.db.WithContext(ctx).Delete(&models.ContactMessage{}, id)
	if res.Error != nil {
		return nil, dbError(res.Error, "")
	}
	return &dto.DeleteResult{Deleted: res.RowsAffected}, nil
}
