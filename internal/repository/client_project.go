package repository

import (
	"context"
	"encoding/json"

	"client-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientProjectRepository handles database operations for client engagement records
type ClientProjectRepository struct {
	db *gorm.DB
}

// NewClientProjectRepository creates a new client project repository
func NewClientProjectRepository(db *gorm.DB) *ClientProjectRepository {
	return &ClientProjectRepository{db: db}
}

// Create creates a new client project
func (r *ClientProjectRepository) Create(ctx context.Context, project *models.ClientProject) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// GetByID retrieves a client project by ID
func (r *ClientProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ClientProject, error) {
	var project models.ClientProject
	err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetByParticipant retrieves every record where the user is the client or on the team,
// most recently updated first
func (r *ClientProjectRepository) GetByParticipant(ctx context.Context, userID uuid.UUID) ([]models.ClientProject, error) {
	membership, err := teamMembershipFilter(userID)
	if err != nil {
		return nil, err
	}

	var projects []models.ClientProject
	err = r.db.WithContext(ctx).
		Where("client_id = ? OR team @> ?::jsonb", userID, membership).
		Order("updated_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// Update persists the whole record
func (r *ClientProjectRepository) Update(ctx context.Context, project *models.ClientProject) error {
	return r.db.WithContext(ctx).Save(project).Error
}

// teamMembershipFilter builds the jsonb containment document matching a team entry by user
func teamMembershipFilter(userID uuid.UUID) (string, error) {
	doc, err := json.Marshal([]map[string]string{{"userId": userID.String()}})
	if err != nil {
		return "", err
	}
	return string(doc), nil
}
