package model

import "time"

// SearchEngine — поисковик пользователя. URL — шаблон запроса:
// поисковая фраза дописывается к нему в конец в URL-кодировке.
type SearchEngine struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID int64  `gorm:"not null;index" json:"user_id"`

	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Name string  `gorm:"not null" json:"name"`
	URL  string  `gorm:"not null" json:"url"`
	Icon *string `json:"icon"`

	IsDefault bool `gorm:"not null;default:false" json:"is_default"`
	IsBuiltin bool `gorm:"not null;default:false" json:"is_builtin"`

	Position int `gorm:"not null;default:0" json:"position"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// SeedEngine — заготовка встроенного поисковика.
type SeedEngine struct {
	Name      string
	URL       string
	Icon      string
	IsDefault bool
}

// DefaultSearchEngines — встроенные поисковики, создаваемые при первом входе.
// Порядок задаёт позиции 0..n-1.
var DefaultSearchEngines = []SeedEngine{
	{Name: "Google", URL: "https://www.google.com/search?q=", Icon: "https://www.google.com/favicon.ico", IsDefault: true},
	{Name: "Bing", URL: "https://www.bing.com/search?q=", Icon: "https://www.bing.com/favicon.ico"},
	{Name: "DuckDuckGo", URL: "https://duckduckgo.com/?q=", Icon: "https://duckduckgo.com/favicon.ico"},
	{Name: "Baidu", URL: "https://www.baidu.com/s?wd=", Icon: "https://www.baidu.com/favicon.ico"},
}
