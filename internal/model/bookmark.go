package model

import "time"

// Bookmark — закладка пользователя: ссылка с заголовком, иконкой и позицией.
// FolderID == nil означает «без категории».
type Bookmark struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID int64  `gorm:"not null;index" json:"user_id"`

	// Связи
	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Title string  `gorm:"not null" json:"title"`
	URL   string  `gorm:"not null" json:"url"`
	Icon  *string `json:"icon"` // URL, data-URI или nil

	FolderID *string `gorm:"type:uuid;index" json:"folder_id"`
	Folder   *Folder `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`

	Position int `gorm:"not null;default:0" json:"position"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
