package store

import (
	"context"
	"errors"

	"github.com/clientdesk/clientdesk/internal/models"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrInvalidStatus = errors.New("invalid client status")
)

// ClientPatch is a partial update: nil fields are left untouched.
type ClientPatch struct {
	Name              *string
	Email             *string
	Phone             *string
	Details           *string
	Budget            *models.Budget
	Status            *string
	AssignedDeveloper *string
}

type Store interface {
	// -------- Clients --------
	ListClients(ctx context.Context) ([]models.Client, error)

	GetClient(ctx context.Context, id uint) (*models.Client, error)

	CreateClient(ctx context.Context, client *models.Client) error

	UpdateClient(ctx context.Context, id uint, patch ClientPatch) (*models.Client, error)

	// DeleteClient is idempotent: deleting an absent id is not an error.
	DeleteClient(ctx context.Context, id uint) error

	// -------- Developers --------
	ListDevelopers(ctx context.Context) ([]models.Developer, error)

	GetDeveloper(ctx context.Context, id uint) (*models.Developer, error)

	CreateDeveloper(ctx context.Context, dev *models.Developer) error

	DeleteDeveloper(ctx context.Context, id uint) error

	// UpsertDeveloperByEmail inserts or refreshes a developer keyed by email.
	UpsertDeveloperByEmail(ctx context.Context, dev *models.Developer) error
}
