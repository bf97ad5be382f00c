package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FirstAidChat is one prompt/response exchange with the first-aid assistant.
// Rows are append-only.
type FirstAidChat struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID    *string   `gorm:"type:varchar(36);index" json:"user_id,omitempty"`
	Prompt    string    `gorm:"type:text" json:"prompt"`
	Response  string    `gorm:"type:text" json:"response"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"user,omitempty"`
}

func (FirstAidChat) TableName() string {
	return "firstaid_chats"
}

func (c *FirstAidChat) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
