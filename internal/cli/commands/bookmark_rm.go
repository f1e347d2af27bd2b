package commands

import (
	"TabHome/internal/config"
	"context"
	"fmt"
	"net/http"
	"strings"

	"TabHome/internal/cli/api"
)

type bookmarkRmCmd struct{}

func (bookmarkRmCmd) Name() string        { return "bookmark-rm" }
func (bookmarkRmCmd) Description() string { return "Удалить закладку по ID" }
func (bookmarkRmCmd) Usage() string       { return "bookmark-rm <id>" }

func (bookmarkRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/bookmarks/" + args[0]
	resp, body, err := api.DeleteJSON(endpoint, api.LoadToken())
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusNoContent:
		fmt.Fprintln(Out, "Deleted", args[0])
		return nil
	case http.StatusUnauthorized:
		return fmt.Errorf("not logged in, run: login <login> <password>")
	case http.StatusNotFound:
		return fmt.Errorf("bookmark not found: %s", args[0])
	}
	return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}

func init() { RegisterCmd(bookmarkRmCmd{}) }
