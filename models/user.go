package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	Email     string    `gorm:"size:190;uniqueIndex;not null" json:"email"`
	Phone     string    `gorm:"size:20" json:"phone"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"size:20;index;not null;default:user" json:"role"`
	Status    string    `gorm:"size:20;not null;default:active" json:"status"`
}

// IsStaff reports whether the user is an hr or developer account.
func (u User) IsStaff() bool {
	return u.Role == "hr" || u.Role == "developer"
}
