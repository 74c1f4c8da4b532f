package database

import (
	"fmt"

	"crm-backend/config"
	"crm-backend/internal/models"

	"gorm.io/gorm"
)

// SeedCompanyInfo inserts the company profile row from config defaults when
// tbl_company_info is empty. Existing rows are never overwritten.
func SeedCompanyInfo(db *gorm.DB, cfg config.CompanyConfig) error {
	var count int64
	if err := db.Model(&models.CompanyInfo{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to inspect company info: %w", err)
	}
	if count > 0 {
		return nil
	}

	info := models.CompanyInfo{
		CompanyName: cfg.Name,
		Address:     cfg.Address,
		City:        cfg.City,
		State:       cfg.State,
		Pin:         cfg.Pin,
		Country:     cfg.Country,
		Phone:       cfg.Phone,
		Email:       cfg.Email,
		Gstin:       cfg.Gstin,
		Website:     cfg.Website,
	}
	if err := db.Create(&info).Error; err != nil {
		return fmt.Errorf("failed to seed company info: %w", err)
	}
	return nil
}
