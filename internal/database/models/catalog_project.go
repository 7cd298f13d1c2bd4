package models

import (
	"gorm.io/datatypes"
)

// CatalogProject is a publishable portfolio entry
type CatalogProject struct {
	BaseModel
	Title       string                      `json:"title" gorm:"not null;size:200"`
	Slug        string                      `json:"slug" gorm:"uniqueIndex;not null;size:200"`
	Description string                      `json:"description" gorm:"type:text"`
	Category    string                      `json:"category" gorm:"size:100;index"`
	Tags        datatypes.JSONSlice[string] `json:"tags" gorm:"type:jsonb;not null;default:'[]'"`
	TechStack   datatypes.JSONSlice[string] `json:"techStack" gorm:"type:jsonb;not null;default:'[]'"`
	Images      datatypes.JSONSlice[string] `json:"images" gorm:"type:jsonb;not null;default:'[]'"`
	Metrics     CatalogMetrics              `json:"metrics" gorm:"embedded;embeddedPrefix:metrics_"`
	ClientName  string                      `json:"clientName,omitempty" gorm:"size:200"`
	LiveURL     string                      `json:"liveUrl,omitempty" gorm:"size:500"`
	Featured    bool                        `json:"featured" gorm:"default:false;index"`
	Published   bool                        `json:"published" gorm:"default:false;index"`
	SortOrder   int                         `json:"sortOrder" gorm:"default:0"`
}

// TableName returns the table name for CatalogProject
func (CatalogProject) TableName() string {
	return "catalog_projects"
}

// CatalogMetrics are the showcase scores of a portfolio entry
type CatalogMetrics struct {
	Performance   float64 `json:"performance" gorm:"default:0"`
	Accessibility float64 `json:"accessibility" gorm:"default:0"`
	SEO           float64 `json:"seo" gorm:"column:seo;default:0"`
	UserRating    float64 `json:"userRating" gorm:"default:0"`
}

// CatalogSort orders catalog listings
type CatalogSort string

const (
	CatalogSortNewest CatalogSort = "newest"
	CatalogSortOldest CatalogSort = "oldest"
	CatalogSortOrder  CatalogSort = "order"
	CatalogSortName   CatalogSort = "name"
)

// IsValid checks if the CatalogSort is valid
func (s CatalogSort) IsValid() bool {
	switch s {
	case CatalogSortNewest, CatalogSortOldest, CatalogSortOrder, CatalogSortName:
		return true
	}
	return false
}
