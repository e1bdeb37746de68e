package services

import (
	"errors"

	"hostel-backend/models"

	"gorm.io/gorm"
)

// SettingsService manages the single hostel profile row.
type SettingsService struct {
	DB *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{DB: db}
}

func (s *SettingsService) Get() (*models.HostelSetting, error) {
	var setting models.HostelSetting
	err := s.DB.Order("id ASC").First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Settings are seeded at boot; an empty table just means a
			// fresh database, so hand back a blank profile.
			return &models.HostelSetting{}, nil
		}
		return nil, err
	}
	return &setting, nil
}

type SettingsInput struct {
	Name    *string
	Address *string
	Phone   *string
	Email   *string
}

func (s *SettingsService) Update(input SettingsInput) (*models.HostelSetting, error) {
	setting, err := s.Get()
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Address != nil {
		updates["address"] = *input.Address
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Email != nil {
		updates["email"] = *input.Email
	}

	if setting.ID == 0 {
		if err := s.DB.Create(setting).Error; err != nil {
			return nil, err
		}
	}
	if len(updates) > 0 {
		if err := s.DB.Model(setting).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return s.Get()
}
