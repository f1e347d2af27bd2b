// Пакет cache — слой кэширования списков коллекций перед репозиториями.
// Запись в кэш не делается напрямую из CRUD-операций: после каждой записи
// ключ инвалидируется, следующий читатель перезагружает данные из БД.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// TTL по коллекциям. Закладки живут недолго: это зеркало фонового
// обновления раз в 30 секунд на домашней странице.
const (
	BookmarksTTL = 30 * time.Second
	DefaultTTL   = 5 * time.Minute
)

// Store — хранилище сериализованных значений кэша с TTL.
type Store interface {
	// Get возвращает значение и признак попадания.
	Get(ctx context.Context, key Key) ([]byte, bool, error)

	// Set сохраняет значение на срок ttl.
	Set(ctx context.Context, key Key, data []byte, ttl time.Duration) error

	// Delete удаляет значение.
	Delete(ctx context.Context, key Key) error
}

// Cache — фронт кэша: дедупликация конкурентных загрузок по ключу
// и деградация к прямой загрузке при сбое хранилища.
type Cache struct {
	store Store
	group singleflight.Group
	log   *zap.SugaredLogger
}

// New создаёт кэш поверх хранилища.
func New(store Store, log *zap.SugaredLogger) *Cache {
	return &Cache{store: store, log: log}
}

// Invalidate удаляет ключи из хранилища. Ошибки логируются и не
// возвращаются: протухший ключ доживёт до конца TTL.
func (c *Cache) Invalidate(ctx context.Context, keys ...Key) {
	for _, k := range keys {
		if err := c.store.Delete(ctx, k); err != nil {
			c.log.Warnw("cache invalidate failed", "key", k.String(), "error", err)
		}
	}
}

// GetOrFetch возвращает значение по ключу: из хранилища, либо загрузкой
// через fetch. Конкурентные промахи по одному ключу не порождают
// параллельных загрузок — второй вызов ждёт результат первого.
func GetOrFetch[T any](ctx context.Context, c *Cache, key Key, ttl time.Duration, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	if data, ok, err := c.store.Get(ctx, key); err != nil {
		c.log.Warnw("cache get failed", "key", key.String(), "error", err)
	} else if ok {
		var v T
		if err := json.Unmarshal(data, &v); err == nil {
			return v, nil
		}
		c.log.Warnw("cache entry corrupted", "key", key.String())
	}

	res, err, _ := c.group.Do(key.String(), func() (any, error) {
		v, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		if data, merr := json.Marshal(v); merr == nil {
			if serr := c.store.Set(ctx, key, data, ttl); serr != nil {
				c.log.Warnw("cache set failed", "key", key.String(), "error", serr)
			}
		}
		return v, nil
	})
	if err != nil {
		return zero, err
	}
	return res.(T), nil
}
