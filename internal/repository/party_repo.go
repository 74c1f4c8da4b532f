package repository

import (
	"context"
	"fmt"

	"crm-backend/internal/models"

	"gorm.io/gorm"
)

// PartyRepo is the MySQL implementation of PartyRepository.
type PartyRepo struct {
	db *gorm.DB
}

func NewPartyRepo(db *gorm.DB) *PartyRepo {
	return &PartyRepo{db: db}
}

func (r *PartyRepo) Create(ctx context.Context, party *models.Party) error {
	if err := r.db.WithContext(ctx).Create(party).Error; err != nil {
		return fmt.Errorf("failed to create party: %w", err)
	}
	return nil
}

func (r *PartyRepo) List(ctx context.Context) ([]models.Party, error) {
	parties := []models.Party{}
	if err := r.db.WithContext(ctx).Find(&parties).Error; err != nil {
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}
	return parties, nil
}
