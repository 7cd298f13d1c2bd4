package testutils

import (
	"strings"
	"time"

	"client-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test client User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     "Test Client",
		Email:    "client-" + id.String()[:8] + "@example.com",
		Company:  "Acme Retail",
		Role:     models.GlobalRoleClient,
		IsActive: true,
	}
}

// WithRole creates a test User holding the given global role
func (f *UserFactory) WithRole(role models.GlobalRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// Inactive creates a deactivated test User
func (f *UserFactory) Inactive() *models.User {
	user := f.Create()
	user.IsActive = false
	return user
}

// ClientProjectFactory provides methods to create test ClientProject data
type ClientProjectFactory struct{}

// NewClientProjectFactory creates a new ClientProjectFactory
func NewClientProjectFactory() *ClientProjectFactory {
	return &ClientProjectFactory{}
}

// Create creates a test ClientProject owned by clientID with default values
func (f *ClientProjectFactory) Create(clientID uuid.UUID) *models.ClientProject {
	start := time.Now().Add(-30 * 24 * time.Hour)
	end := time.Now().Add(60 * 24 * time.Hour)
	return &models.ClientProject{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ClientID:       clientID,
		Title:          "Storefront rebuild",
		Description:    "Headless commerce rebuild",
		Status:         models.ClientProjectStatusInProgress,
		Priority:       models.PriorityMedium,
		Budget:         models.Budget{Total: 75000, Currency: "USD", Paid: 45000},
		Timeline:       models.Timeline{StartDate: &start, EndDate: &end, EstimatedHours: 400},
		Milestones:     datatypes.JSONSlice[models.Milestone]{},
		Team:           datatypes.JSONSlice[models.TeamMember]{},
		Files:          datatypes.JSONSlice[models.ProjectFile]{},
		Communications: datatypes.JSONSlice[models.Communication]{},
		Feedback:       datatypes.JSONSlice[models.Feedback]{},
		Analytics:      datatypes.NewJSONType(models.Analytics{TimeTracking: []models.TimeEntry{}}),
		Settings:       datatypes.NewJSONType(models.DefaultSettings()),
	}
}

// WithTeam creates a test ClientProject with the given team members
func (f *ClientProjectFactory) WithTeam(clientID uuid.UUID, members ...models.TeamMember) *models.ClientProject {
	project := f.Create(clientID)
	project.Team = append(project.Team, members...)
	return project
}

// WithMilestones creates a test ClientProject with milestones in the given statuses,
// due one day apart starting tomorrow
func (f *ClientProjectFactory) WithMilestones(clientID uuid.UUID, statuses ...models.MilestoneStatus) *models.ClientProject {
	project := f.Create(clientID)
	for i, status := range statuses {
		due := time.Now().Add(time.Duration(i+1) * 24 * time.Hour)
		project.Milestones = append(project.Milestones, models.Milestone{
			ID:           uuid.New(),
			Title:        "Milestone",
			Status:       status,
			DueDate:      &due,
			Deliverables: []string{},
		})
	}
	return project
}

// Member builds a team entry with the default permissions of the role
func (f *ClientProjectFactory) Member(userID uuid.UUID, role models.TeamRole) models.TeamMember {
	return models.TeamMember{
		UserID:      userID,
		Role:        role,
		Permissions: models.DefaultPermissions(role),
		AddedAt:     time.Now(),
	}
}

// CatalogProjectFactory provides methods to create test CatalogProject data
type CatalogProjectFactory struct{}

// NewCatalogProjectFactory creates a new CatalogProjectFactory
func NewCatalogProjectFactory() *CatalogProjectFactory {
	return &CatalogProjectFactory{}
}

// Create creates a published test CatalogProject with default values
func (f *CatalogProjectFactory) Create() *models.CatalogProject {
	id := uuid.New()
	return &models.CatalogProject{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:       "Acme Storefront",
		Slug:        "acme-storefront-" + id.String()[:8],
		Description: "Headless storefront for a retail chain",
		Category:    "e-commerce",
		Tags:        datatypes.JSONSlice[string]{"commerce", "headless"},
		TechStack:   datatypes.JSONSlice[string]{"Go", "React", "PostgreSQL"},
		Images:      datatypes.JSONSlice[string]{},
		Metrics:     models.CatalogMetrics{Performance: 95, Accessibility: 90, SEO: 92, UserRating: 4.5},
		Published:   true,
	}
}

// WithSlug creates a test CatalogProject with a custom title and slug
func (f *CatalogProjectFactory) WithSlug(slug string) *models.CatalogProject {
	project := f.Create()
	project.Slug = slug
	project.Title = strings.ReplaceAll(slug, "-", " ")
	return project
}

// FactorySet provides access to all factories
type FactorySet struct {
	User           *UserFactory
	ClientProject  *ClientProjectFactory
	CatalogProject *CatalogProjectFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:           NewUserFactory(),
		ClientProject:  NewClientProjectFactory(),
		CatalogProject: NewCatalogProjectFactory(),
	}
}
