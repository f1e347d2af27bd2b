package commands

import (
	"TabHome/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"TabHome/internal/cli/api"
)

type bookmarkView struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	URL      string  `json:"url"`
	FolderID *string `json:"folder_id"`
	Position int     `json:"position"`
}

type bookmarksCmd struct{}

func (bookmarksCmd) Name() string        { return "bookmarks" }
func (bookmarksCmd) Description() string { return "Показать все закладки" }
func (bookmarksCmd) Usage() string       { return "bookmarks" }

func (bookmarksCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/bookmarks"
	resp, body, err := api.GetJSON(endpoint, api.LoadToken())
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("not logged in, run: login <login> <password>")
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var list []bookmarkView
	if err := json.Unmarshal(body, &list); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет закладок")
		return nil
	}
	for _, b := range list {
		folder := ""
		if b.FolderID != nil {
			folder = "  folder=" + *b.FolderID
		}
		fmt.Fprintf(Out, "- %s  %s  %s%s\n", b.ID, b.Title, b.URL, folder)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
	return nil
}

func init() { RegisterCmd(bookmarksCmd{}) }
