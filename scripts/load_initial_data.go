package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"client-portal-backend/internal/auth"
	"client-portal-backend/internal/config"
	"client-portal-backend/internal/database"
	"client-portal-backend/internal/database/models"
	"client-portal-backend/internal/engagement"
	"client-portal-backend/internal/service"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the seed files
type UserData struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Company  string `yaml:"company,omitempty"`
	Role     string `yaml:"role"`
	IsActive *bool  `yaml:"is_active,omitempty"`
}

type CatalogMetricsData struct {
	Performance   float64 `yaml:"performance"`
	Accessibility float64 `yaml:"accessibility"`
	SEO           float64 `yaml:"seo"`
	UserRating    float64 `yaml:"user_rating"`
}

type CatalogProjectData struct {
	Title       string             `yaml:"title"`
	Slug        string             `yaml:"slug"`
	Description string             `yaml:"description"`
	Category    string             `yaml:"category"`
	Tags        []string           `yaml:"tags"`
	TechStack   []string           `yaml:"tech_stack"`
	Images      []string           `yaml:"images"`
	Metrics     CatalogMetricsData `yaml:"metrics"`
	ClientName  string             `yaml:"client_name,omitempty"`
	LiveURL     string             `yaml:"live_url,omitempty"`
	Featured    bool               `yaml:"featured"`
	Published   bool               `yaml:"published"`
	SortOrder   int                `yaml:"sort_order"`
}

type MilestoneData struct {
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description,omitempty"`
	DueInDays    int      `yaml:"due_in_days"`
	Status       string   `yaml:"status"`
	Deliverables []string `yaml:"deliverables,omitempty"`
}

type TeamMemberData struct {
	Email string `yaml:"email"`
	Role  string `yaml:"role"`
}

type EngagementData struct {
	Title          string           `yaml:"title"`
	Description    string           `yaml:"description"`
	ClientEmail    string           `yaml:"client_email"`
	CatalogSlug    string           `yaml:"catalog_slug,omitempty"`
	Status         string           `yaml:"status"`
	Priority       string           `yaml:"priority"`
	BudgetTotal    float64          `yaml:"budget_total"`
	BudgetPaid     float64          `yaml:"budget_paid"`
	Currency       string           `yaml:"currency"`
	StartedDaysAgo int              `yaml:"started_days_ago"`
	DurationDays   int              `yaml:"duration_days"`
	EstimatedHours float64          `yaml:"estimated_hours"`
	Milestones     []MilestoneData  `yaml:"milestones"`
	Team           []TeamMemberData `yaml:"team"`
}

// SeedFile is the layout of one YAML file; any section may be omitted
type SeedFile struct {
	Users           []UserData           `yaml:"users"`
	CatalogProjects []CatalogProjectData `yaml:"catalog_projects"`
	Engagements     []EngagementData     `yaml:"engagements"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	seed, err := loadSeedFiles("scripts/data")
	if err != nil {
		log.Fatalf("Failed to read seed files: %v", err)
	}

	users, err := loadData(db, seed, time.Now())
	if err != nil {
		log.Fatalf("Failed to load data: %v", err)
	}

	// Development tokens so the portal can be exercised without the identity provider
	if cfg.IsDevelopment() {
		emails := make([]string, 0, len(users))
		for email := range users {
			emails = append(emails, email)
		}
		sort.Strings(emails)
		for _, email := range emails {
			token, err := auth.IssueToken(cfg.JWTSecret, users[email].ID, email, 24*time.Hour)
			if err != nil {
				log.Fatalf("Failed to issue token for %s: %v", email, err)
			}
			log.Printf("🔑 %s (%s): %s", email, users[email].Role, token)
		}
	}

	log.Println("✅ Initial data loaded successfully!")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress all GORM logs including SQL queries and "record not found"
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// loadSeedFiles merges every .yaml file under dataDir, in path order
func loadSeedFiles(dataDir string) (*SeedFile, error) {
	merged := &SeedFile{}

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file SeedFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		merged.Users = append(merged.Users, file.Users...)
		merged.CatalogProjects = append(merged.CatalogProjects, file.CatalogProjects...)
		merged.Engagements = append(merged.Engagements, file.Engagements...)
		return nil
	})
	return merged, err
}

// loadData creates whatever is missing; existing rows are matched by email, slug and title
func loadData(db *gorm.DB, seed *SeedFile, now time.Time) (map[string]*models.User, error) {
	users := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range seed.Users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		users[user.Email] = user
		if created {
			userCreated++
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, len(seed.Users))

	catalog := make(map[string]*models.CatalogProject)
	catalogCreated := 0
	for _, projectData := range seed.CatalogProjects {
		project, created, err := createCatalogProject(db, projectData)
		if err != nil {
			return nil, fmt.Errorf("failed to create catalog project %s: %w", projectData.Slug, err)
		}
		catalog[project.Slug] = project
		if created {
			catalogCreated++
		}
	}
	log.Printf("📋 Catalog projects: %d created, %d total", catalogCreated, len(seed.CatalogProjects))

	engagementCreated := 0
	for _, engagementData := range seed.Engagements {
		created, err := createEngagement(db, engagementData, users, catalog, now)
		if err != nil {
			return nil, fmt.Errorf("failed to create engagement %s: %w", engagementData.Title, err)
		}
		if created {
			engagementCreated++
		}
	}
	log.Printf("📋 Engagements: %d created, %d total", engagementCreated, len(seed.Engagements))

	return users, nil
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	email := strings.ToLower(strings.TrimSpace(userData.Email))
	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	role := models.GlobalRole(userData.Role)
	if role == "" {
		role = models.GlobalRoleClient
	}
	if !role.IsValid() {
		return nil, false, fmt.Errorf("invalid role %q", userData.Role)
	}

	user = models.User{
		Name:     userData.Name,
		Email:    email,
		Company:  userData.Company,
		Role:     role,
		IsActive: userData.IsActive == nil || *userData.IsActive,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, true, nil
}

func createCatalogProject(db *gorm.DB, projectData CatalogProjectData) (*models.CatalogProject, bool, error) {
	slug := projectData.Slug
	if slug == "" {
		slug = service.Slugify(projectData.Title)
	}

	var project models.CatalogProject
	err := db.Where("slug = ?", slug).First(&project).Error
	if err == nil {
		return &project, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query catalog project: %w", err)
	}

	project = models.CatalogProject{
		Title:       projectData.Title,
		Slug:        slug,
		Description: projectData.Description,
		Category:    projectData.Category,
		Tags:        datatypes.JSONSlice[string](nonNil(projectData.Tags)),
		TechStack:   datatypes.JSONSlice[string](nonNil(projectData.TechStack)),
		Images:      datatypes.JSONSlice[string](nonNil(projectData.Images)),
		Metrics: models.CatalogMetrics{
			Performance:   projectData.Metrics.Performance,
			Accessibility: projectData.Metrics.Accessibility,
			SEO:           projectData.Metrics.SEO,
			UserRating:    projectData.Metrics.UserRating,
		},
		ClientName: projectData.ClientName,
		LiveURL:    projectData.LiveURL,
		Featured:   projectData.Featured,
		Published:  projectData.Published,
		SortOrder:  projectData.SortOrder,
	}
	if err := db.Create(&project).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create catalog project: %w", err)
	}
	return &project, true, nil
}

func createEngagement(db *gorm.DB, data EngagementData, users map[string]*models.User, catalog map[string]*models.CatalogProject, now time.Time) (bool, error) {
	client, ok := users[strings.ToLower(data.ClientEmail)]
	if !ok {
		return false, fmt.Errorf("unknown client %s", data.ClientEmail)
	}

	var existing models.ClientProject
	err := db.Where("client_id = ? AND title = ?", client.ID, data.Title).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query engagement: %w", err)
	}

	project, err := buildEngagement(data, client, users, catalog, now)
	if err != nil {
		return false, err
	}
	if err := db.Create(project).Error; err != nil {
		return false, fmt.Errorf("failed to create engagement: %w", err)
	}
	return true, nil
}

func buildEngagement(data EngagementData, client *models.User, users map[string]*models.User, catalog map[string]*models.CatalogProject, now time.Time) (*models.ClientProject, error) {
	start := now.AddDate(0, 0, -data.StartedDaysAgo)
	end := start.AddDate(0, 0, data.DurationDays)

	currency := strings.ToUpper(data.Currency)
	if currency == "" {
		currency = "USD"
	}
	status := models.ClientProjectStatus(data.Status)
	if status == "" {
		status = models.ClientProjectStatusProposal
	}
	priority := models.Priority(data.Priority)
	if priority == "" {
		priority = models.PriorityMedium
	}

	project := &models.ClientProject{
		ClientID:       client.ID,
		Title:          data.Title,
		Description:    data.Description,
		Status:         status,
		Priority:       priority,
		Budget:         models.Budget{Total: data.BudgetTotal, Paid: data.BudgetPaid, Currency: currency},
		Timeline:       models.Timeline{StartDate: &start, EndDate: &end, EstimatedHours: data.EstimatedHours},
		Milestones:     datatypes.JSONSlice[models.Milestone]{},
		Team:           datatypes.JSONSlice[models.TeamMember]{},
		Files:          datatypes.JSONSlice[models.ProjectFile]{},
		Communications: datatypes.JSONSlice[models.Communication]{},
		Feedback:       datatypes.JSONSlice[models.Feedback]{},
		Analytics:      datatypes.NewJSONType(models.Analytics{TimeTracking: []models.TimeEntry{}, LastActivity: &now}),
		Settings:       datatypes.NewJSONType(models.DefaultSettings()),
	}

	if data.CatalogSlug != "" {
		entry, ok := catalog[data.CatalogSlug]
		if !ok {
			return nil, fmt.Errorf("unknown catalog slug %s", data.CatalogSlug)
		}
		project.CatalogProjectID = &entry.ID
	}

	for _, m := range data.Milestones {
		due := start.AddDate(0, 0, m.DueInDays)
		milestoneStatus := models.MilestoneStatus(m.Status)
		if milestoneStatus == "" {
			milestoneStatus = models.MilestoneStatusPending
		}
		milestone := models.Milestone{
			ID:           uuid.New(),
			Title:        m.Title,
			Description:  m.Description,
			DueDate:      &due,
			Status:       milestoneStatus,
			Deliverables: nonNil(m.Deliverables),
		}
		if milestoneStatus == models.MilestoneStatusCompleted {
			milestone.CompletedAt = &due
		}
		project.Milestones = append(project.Milestones, milestone)
	}

	for _, t := range data.Team {
		member, ok := users[strings.ToLower(t.Email)]
		if !ok {
			return nil, fmt.Errorf("unknown team member %s", t.Email)
		}
		role := models.TeamRole(t.Role)
		if !role.IsValid() {
			return nil, fmt.Errorf("invalid team role %q for %s", t.Role, t.Email)
		}
		var added bool
		project, added = engagement.UpsertTeamMember(project, models.TeamMember{
			UserID:      member.ID,
			Role:        role,
			Permissions: models.DefaultPermissions(role),
			AddedAt:     now,
		}, now)
		if !added {
			log.Printf("Duplicate team member %s on %s updated in place", t.Email, data.Title)
		}
	}

	return engagement.RecomputeProgress(project), nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
