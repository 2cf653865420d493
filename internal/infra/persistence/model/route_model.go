package model

import (
	"time"
)

// RouteModel is the GORM-specific struct for the 'routes' table.
type RouteModel struct {
	ID          string      `gorm:"type:varchar(64);primaryKey"`
	Name        string      `gorm:"type:varchar(255);not null"`
	City        string      `gorm:"type:varchar(255);not null;default:''"`
	Description string      `gorm:"type:text"`
	Stops       []StopModel `gorm:"foreignKey:RouteID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (RouteModel) TableName() string {
	return "routes"
}

// StopModel is the GORM-specific struct for the 'route_stops' table.
type StopModel struct {
	ID                  string  `gorm:"type:varchar(64);primaryKey"`
	RouteID             string  `gorm:"type:varchar(64);primaryKey;index"`
	Name                string  `gorm:"type:varchar(255);not null"`
	Position            int     `gorm:"column:stop_order;not null"`
	Latitude            float64 `gorm:"type:double precision;not null"`
	Longitude           float64 `gorm:"type:double precision;not null"`
	TriggerRadiusMeters float64 `gorm:"type:double precision;not null;default:30"`
	NarrationText       string  `gorm:"type:text;not null;default:''"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (StopModel) TableName() string {
	return "route_stops"
}
