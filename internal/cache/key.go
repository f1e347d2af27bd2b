package cache

import "strconv"

// Collection — имя коллекции, участвующей в кэшировании.
type Collection string

const (
	CollectionBookmarks     Collection = "bookmarks"
	CollectionFolders       Collection = "folders"
	CollectionSearchEngines Collection = "search_engines"
	CollectionSettings      Collection = "user_settings"
)

// Key — типизированный ключ кэша: коллекция + владелец.
type Key struct {
	Collection Collection
	UserID     int64
}

// String возвращает строковую форму ключа для хранилища.
func (k Key) String() string {
	return string(k.Collection) + ":" + strconv.FormatInt(k.UserID, 10)
}
