package repository

import (
	"context"
	"errors"
	"fmt"

	"crm-backend/internal/models"

	"gorm.io/gorm"
)

// CompanyRepo is the MySQL implementation of CompanyRepository.
type CompanyRepo struct {
	db *gorm.DB
}

func NewCompanyRepo(db *gorm.DB) *CompanyRepo {
	return &CompanyRepo{db: db}
}

func (r *CompanyRepo) List(ctx context.Context) ([]models.CompanyInfo, error) {
	rows := []models.CompanyInfo{}
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list company info: %w", err)
	}
	return rows, nil
}

func (r *CompanyRepo) First(ctx context.Context) (*models.CompanyInfo, error) {
	var info models.CompanyInfo
	if err := r.db.WithContext(ctx).First(&info).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get company info: %w", err)
	}
	return &info, nil
}
