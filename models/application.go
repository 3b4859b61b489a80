package models

import "time"

type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_application_user_job" json:"userId"`
	JobID     uint      `gorm:"not null;uniqueIndex:idx_application_user_job;index" json:"jobId"`
	Resume    string    `gorm:"size:255" json:"resume"`
	AppliedAt time.Time `gorm:"autoCreateTime" json:"appliedAt"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Job  Job  `gorm:"foreignKey:JobID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}
