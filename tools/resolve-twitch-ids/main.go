package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vgi/vgi-server/internal/client/twitch"
	"github.com/vgi/vgi-server/internal/config"
	"github.com/vgi/vgi-server/internal/model"
	"github.com/vgi/vgi-server/internal/roster"
)

type userLookup interface {
	GetUsersByLogin(ctx context.Context, logins []string) ([]model.User, error)
}

var rootCmd = &cobra.Command{
	Use:   "resolve-twitch-ids <login> [login...]",
	Short: "Resolve Twitch logins to account ids for the roster file",
	Long:  `Looks the given logins up on Twitch and prints memberInformation entries ready to paste into members.yaml.`,
	Args:  cobra.RangeArgs(1, roster.MaxMembers),
	RunE:  runResolve,
}

func init() {
	rootCmd.Flags().Duration("timeout", 30*time.Second, "overall timeout for the lookup")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runResolve(cmd *cobra.Command, args []string) error {
	timeout, err := cmd.Flags().GetDuration("timeout")
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	client, err := twitch.New(cfg)
	if err != nil {
		return fmt.Errorf("twitch client: %w", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	members, missing, err := resolve(ctx, client, args)
	if err != nil {
		return err
	}

	for _, login := range missing {
		fmt.Fprintf(cmd.ErrOrStderr(), "not found: %s\n", login)
	}

	out, err := roster.Marshal(members)
	if err != nil {
		return fmt.Errorf("marshal roster: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

// resolve returns one member per found login in argument order, plus the logins Twitch did not know.
func resolve(ctx context.Context, lookup userLookup, logins []string) ([]model.Member, []string, error) {
	normalized := make([]string, 0, len(logins))
	for _, login := range logins {
		login = strings.ToLower(strings.TrimSpace(login))
		if login != "" {
			normalized = append(normalized, login)
		}
	}

	users, err := lookup.GetUsersByLogin(ctx, normalized)
	if err != nil {
		return nil, nil, fmt.Errorf("lookup users: %w", err)
	}

	byLogin := make(map[string]model.User, len(users))
	for _, u := range users {
		byLogin[strings.ToLower(u.Login)] = u
	}

	var (
		members []model.Member
		missing []string
	)
	for _, login := range normalized {
		u, ok := byLogin[login]
		if !ok {
			missing = append(missing, login)
			continue
		}
		members = append(members, model.Member{
			TwitchID: u.ID,
			Name:     u.DisplayName,
		})
	}

	return members, missing, nil
}
