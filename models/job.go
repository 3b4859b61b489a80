package models

import "time"

type Job struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Location    string     `gorm:"size:120;not null;index" json:"location"`
	Type        string     `gorm:"size:20;not null;default:full-time" json:"type"`
	Status      string     `gorm:"size:20;not null;default:active;index" json:"status"`
	Salary      float64    `gorm:"not null" json:"salary"`
	Experience  string     `gorm:"size:120;not null" json:"experience"`
	CompanyName string     `gorm:"size:200;not null" json:"companyName"`
	Skills      StringList `json:"skills"`
	Education   string     `gorm:"size:200;default:Not specified" json:"education"`
	Benefits    StringList `json:"benefits"`
	Deadline    *time.Time `json:"deadline"`
	CreatedBy   uint       `gorm:"not null;index" json:"createdBy"`

	Creator User `gorm:"foreignKey:CreatedBy;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}
