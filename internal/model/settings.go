package model

import "time"

// UserSettings — настройки внешнего вида домашней страницы.
// На пользователя существует не более одной записи.
type UserSettings struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID int64  `gorm:"not null;uniqueIndex" json:"user_id"`

	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Theme         string  `gorm:"not null;default:'system'" json:"theme"` // light | dark | system
	BackgroundURL *string `json:"background_url"`
	ShowGreeting  bool    `gorm:"not null;default:true" json:"show_greeting"`
	Columns       int     `gorm:"not null;default:4" json:"columns"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
