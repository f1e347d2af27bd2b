package model

import "time"

// DefaultFolderIcon — иконка папки по умолчанию.
const DefaultFolderIcon = "Folder"

// FolderColors — палитра цветов папок (hex).
var FolderColors = []string{
	"#3b82f6", // синий
	"#8b5cf6", // фиолетовый
	"#ec4899", // розовый
	"#ef4444", // красный
	"#f97316", // оранжевый
	"#eab308", // жёлтый
	"#22c55e", // зелёный
	"#06b6d4", // бирюзовый
	"#6366f1", // индиго
}

// FolderIcons — фиксированный набор допустимых имён иконок папки.
var FolderIcons = []string{
	"Folder",
	"Star",
	"Heart",
	"Briefcase",
	"Code",
	"Music",
	"Video",
	"Image",
	"Book",
	"ShoppingBag",
	"Gamepad2",
	"Globe",
}

// ValidFolderIcon сообщает, входит ли имя в набор иконок.
func ValidFolderIcon(name string) bool {
	for _, ic := range FolderIcons {
		if ic == name {
			return true
		}
	}
	return false
}

// Folder — именованная цветная группа закладок.
type Folder struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID int64  `gorm:"not null;index" json:"user_id"`

	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Name  string `gorm:"not null" json:"name"`
	Color string `gorm:"not null;default:'#3b82f6'" json:"color"`
	Icon  string `gorm:"not null;default:'Folder'" json:"icon"`

	Position int `gorm:"not null;default:0" json:"position"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
