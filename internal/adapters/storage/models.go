package storage

import "time"

// ThemeModel is the GORM model for the themes table.
// Optional colors are nullable so an unset slot stays unset.
type ThemeModel struct {
	Background    string `gorm:"not null"`
	CreatedAt     time.Time
	Error         *string
	Info          *string
	Mode          string `gorm:"not null;default:'light';check:mode IN ('light','dark')"`
	Name          string `gorm:"primaryKey"`
	Primary       string `gorm:"not null"`
	Secondary     string `gorm:"not null"`
	Success       *string
	Surface       string `gorm:"not null"`
	TextPrimary   string `gorm:"not null"`
	TextSecondary string `gorm:"not null"`
	UpdatedAt     time.Time
	Warning       *string
}

// TableName specifies the table name for GORM
func (ThemeModel) TableName() string { return "themes" }
