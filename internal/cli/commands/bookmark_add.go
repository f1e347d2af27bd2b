package commands

import (
	"TabHome/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"TabHome/internal/cli/api"
)

type addBookmarkRequest struct {
	Title string  `json:"title"`
	URL   string  `json:"url"`
	Icon  *string `json:"icon,omitempty"`
}

type siteInfoView struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

type bookmarkAddCmd struct{}

func (bookmarkAddCmd) Name() string { return "bookmark-add" }
func (bookmarkAddCmd) Description() string {
	return "Добавить закладку; без заголовка — подтянуть метаданные сайта"
}
func (bookmarkAddCmd) Usage() string { return "bookmark-add <url> [title]" }

func (bookmarkAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	rawURL := args[0]
	token := api.LoadToken()
	base := strings.TrimRight(cfg.ServerURL, "/")

	req := addBookmarkRequest{URL: rawURL}
	if len(args) > 1 {
		req.Title = strings.Join(args[1:], " ")
	} else {
		// заголовок не задан — спрашиваем у сервера метаданные сайта
		endpoint := base + "/api/site-info?url=" + url.QueryEscape(rawURL)
		resp, body, err := api.GetJSON(endpoint, token)
		if err != nil {
			return err
		}
		resp.Body.Close()
		if resp.StatusCode == http.StatusOK {
			var info siteInfoView
			if err := json.Unmarshal(body, &info); err == nil && info.Title != "" {
				req.Title = info.Title
				if info.Icon != "" {
					req.Icon = &info.Icon
				}
			}
		}
		if req.Title == "" {
			req.Title = rawURL
		}
	}

	resp, body, err := api.PostJSON(base+"/api/bookmarks", req, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("not logged in, run: login <login> <password>")
	}
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var created bookmarkView
	if err := json.Unmarshal(body, &created); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "Added %s  %s  %s\n", created.ID, created.Title, created.URL)
	return nil
}

func init() { RegisterCmd(bookmarkAddCmd{}) }
