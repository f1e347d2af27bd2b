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

type engineView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	IsDefault bool   `json:"is_default"`
	IsBuiltin bool   `json:"is_builtin"`
}

type enginesCmd struct{}

func (enginesCmd) Name() string        { return "engines" }
func (enginesCmd) Description() string { return "Показать поисковые системы" }
func (enginesCmd) Usage() string       { return "engines" }

func (enginesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/search-engines"
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
	var list []engineView
	if err := json.Unmarshal(body, &list); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	for _, e := range list {
		marks := ""
		if e.IsDefault {
			marks += " *default"
		}
		if e.IsBuiltin {
			marks += " builtin"
		}
		fmt.Fprintf(Out, "- %s  %s  %s%s\n", e.ID, e.Name, e.URL, marks)
	}
	return nil
}

func init() { RegisterCmd(enginesCmd{}) }
