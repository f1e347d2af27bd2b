package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestBookmarkService_Add_NormalizesURLAndAppearsInList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	b, err := env.bookmarks.Add(ctx, 1, AddBookmarkRequest{Title: "Example", URL: "example.com"})
	assert.NoError(t, err)
	assert.Equal(t, "https://example.com", b.URL)

	list, err := env.bookmarks.List(ctx, 1)
	assert.NoError(t, err)
	if assert.Len(t, list, 1) {
		assert.Equal(t, "Example", list[0].Title)
		assert.Equal(t, "https://example.com", list[0].URL)
	}
}

func TestBookmarkService_Add_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.bookmarks.Add(ctx, 1, AddBookmarkRequest{Title: "", URL: "example.com"})
	assert.Equal(t, ErrTitleRequired, err)

	_, err = env.bookmarks.Add(ctx, 1, AddBookmarkRequest{Title: "x", URL: "  "})
	assert.Equal(t, ErrURLRequired, err)
}

func TestBookmarkService_Add_PositionsStrictlyIncreasing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	b1, err := env.bookmarks.Add(ctx, 2, AddBookmarkRequest{Title: "one", URL: "one.example"})
	assert.NoError(t, err)
	b2, err := env.bookmarks.Add(ctx, 2, AddBookmarkRequest{Title: "two", URL: "two.example"})
	assert.NoError(t, err)

	assert.Greater(t, b2.Position, b1.Position)
}

func TestBookmarkService_List_InvalidatedAfterWrite(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	list, err := env.bookmarks.List(ctx, 3)
	assert.NoError(t, err)
	assert.Empty(t, list)

	// кэш прогрет пустым списком, вставка должна его инвалидировать
	_, err = env.bookmarks.Add(ctx, 3, AddBookmarkRequest{Title: "t", URL: "t.example"})
	assert.NoError(t, err)

	list, err = env.bookmarks.List(ctx, 3)
	assert.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestBookmarkService_MoveToFolder_AndBack(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	f, err := env.folders.Add(ctx, 4, AddFolderRequest{Name: "Work"})
	assert.NoError(t, err)
	b, err := env.bookmarks.Add(ctx, 4, AddBookmarkRequest{Title: "t", URL: "t.example"})
	assert.NoError(t, err)

	assert.NoError(t, env.bookmarks.MoveToFolder(ctx, 4, b.ID, &f.ID))
	list, _ := env.bookmarks.List(ctx, 4)
	if assert.Len(t, list, 1) && assert.NotNil(t, list[0].FolderID) {
		assert.Equal(t, f.ID, *list[0].FolderID)
	}

	// повторный перенос обратно в «без категории»
	assert.NoError(t, env.bookmarks.MoveToFolder(ctx, 4, b.ID, nil))
	list, _ = env.bookmarks.List(ctx, 4)
	if assert.Len(t, list, 1) {
		assert.Nil(t, list[0].FolderID)
	}
}

func TestBookmarkService_Delete_NotFound(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	err := env.bookmarks.Delete(ctx, 5, "no-such-id")
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}
