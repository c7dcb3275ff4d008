package models

import "time"

type Developer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100;uniqueIndex;not null" json:"email"`

	TechStack   string `gorm:"size:255" json:"techStack"`
	Skills      string `gorm:"size:255" json:"skills"`
	Description string `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"createdAt"`
}
