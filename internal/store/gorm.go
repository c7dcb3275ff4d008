package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/clientdesk/clientdesk/internal/models"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// --------------------------------------------------
// Clients
// --------------------------------------------------

func (s *GormStore) ListClients(ctx context.Context) ([]models.Client, error) {
	// Non-nil so an empty table serializes as [], not null.
	clients := make([]models.Client, 0)
	if err := s.db.WithContext(ctx).
		Order("id ASC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (s *GormStore) GetClient(ctx context.Context, id uint) (*models.Client, error) {
	var client models.Client
	if err := s.db.WithContext(ctx).First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}

func (s *GormStore) CreateClient(ctx context.Context, client *models.Client) error {
	if client.Status == "" {
		client.Status = models.StatusNew
	}
	if !models.IsValidStatus(client.Status) {
		return ErrInvalidStatus
	}
	return s.db.WithContext(ctx).Create(client).Error
}

func (s *GormStore) UpdateClient(ctx context.Context, id uint, patch ClientPatch) (*models.Client, error) {
	var client models.Client
	if err := s.db.WithContext(ctx).First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if patch.Name != nil {
		client.Name = *patch.Name
	}
	if patch.Email != nil {
		client.Email = *patch.Email
	}
	if patch.Phone != nil {
		client.Phone = *patch.Phone
	}
	if patch.Details != nil {
		client.Details = *patch.Details
	}
	if patch.Budget != nil {
		client.Budget = *patch.Budget
	}
	if patch.Status != nil {
		client.Status = *patch.Status
	}
	if patch.AssignedDeveloper != nil {
		client.AssignedDeveloper = *patch.AssignedDeveloper
	}

	if !models.IsValidStatus(client.Status) {
		return nil, ErrInvalidStatus
	}

	if err := s.db.WithContext(ctx).Save(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *GormStore) DeleteClient(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.Client{}, id).Error
}

// --------------------------------------------------
// Developers
// --------------------------------------------------

func (s *GormStore) ListDevelopers(ctx context.Context) ([]models.Developer, error) {
	devs := make([]models.Developer, 0)
	if err := s.db.WithContext(ctx).
		Order("id ASC").
		Find(&devs).Error; err != nil {
		return nil, err
	}
	return devs, nil
}

func (s *GormStore) GetDeveloper(ctx context.Context, id uint) (*models.Developer, error) {
	var dev models.Developer
	if err := s.db.WithContext(ctx).First(&dev, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &dev, nil
}

func (s *GormStore) CreateDeveloper(ctx context.Context, dev *models.Developer) error {
	return s.db.WithContext(ctx).Create(dev).Error
}

func (s *GormStore) DeleteDeveloper(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.Developer{}, id).Error
}

func (s *GormStore) UpsertDeveloperByEmail(ctx context.Context, dev *models.Developer) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "tech_stack", "skills", "description"}),
		}).
		Create(dev).Error
}

// Compile-time check
var _ Store = (*GormStore)(nil)
