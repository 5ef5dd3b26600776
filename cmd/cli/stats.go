package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mauv0809/matchup-stats/internal/config"
	"github.com/mauv0809/matchup-stats/internal/database"
	"github.com/mauv0809/matchup-stats/internal/metrics"
	"github.com/mauv0809/matchup-stats/internal/pubsub"
	"github.com/mauv0809/matchup-stats/internal/roster"
	"github.com/mauv0809/matchup-stats/internal/stats"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// openStore and newPublisher are variables so tests can swap in mocks.
var (
	openStore    = openDatabaseStore
	newPublisher = newPubSubPublisher
)

func openDatabaseStore() (stats.StatsStore, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	db, teardown, err := database.InitDB(cfg.DatabasePath(), cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	store := stats.New(db, roster.NewLookup(cfg.Roster.PictureURLTemplate), metrics.NewService(prometheus.NewRegistry()))
	return store, teardown, nil
}

func newPubSubPublisher(ctx context.Context) (pubsub.PubSubClient, string, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, "", err
	}
	if cfg.PubSub.ProjectID == "" {
		return nil, "", fmt.Errorf("GCP_PROJECT must be set to publish pick events")
	}
	client, err := pubsub.New(ctx, cfg.PubSub.ProjectID)
	if err != nil {
		return nil, "", err
	}
	return client, cfg.PubSub.Topic, nil
}

func init() {
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(rarityCmd)
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(matchupCmd)
	rootCmd.AddCommand(nameCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(gridCmd)
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(publishCmd)
}

// withStore runs fn against a freshly opened store and closes it afterwards.
func withStore(fn func(store stats.StatsStore) error) error {
	store, teardown, err := openStore()
	if err != nil {
		return err
	}
	defer teardown()
	return fn(store)
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var recordCmd = &cobra.Command{
	Use:   "record <team-a> <team-b> <player-name> <player-id>",
	Short: "Record a player pick for a matchup",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store stats.StatsStore) error {
			teams := stats.TeamPair{TeamA: args[0], TeamB: args[1]}
			if err := store.RecordPick(cmd.Context(), teams, args[2], args[3]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s for %s\n", args[2], teams.Key())
			return nil
		})
	},
}

var rarityCmd = &cobra.Command{
	Use:   "rarity <team-a> <team-b> <player-name> <player-id>",
	Short: "Show the rarity score of a pick",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store stats.StatsStore) error {
			score, err := store.RarityScore(cmd.Context(), stats.TeamPair{TeamA: args[0], TeamB: args[1]}, args[2], args[3])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%g\n", score)
			return nil
		})
	},
}

var topCmd = &cobra.Command{
	Use:   "top <team-a> <team-b>",
	Short: "Show the most picked player for a matchup",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store stats.StatsStore) error {
			top, err := store.TopPlayer(cmd.Context(), stats.TeamPair{TeamA: args[0], TeamB: args[1]})
			if err != nil {
				return err
			}
			if top == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No picks recorded yet")
				return nil
			}
			return printJSON(cmd.OutOrStdout(), top)
		})
	},
}

var matchupCmd = &cobra.Command{
	Use:   "matchup <team-a> <team-b>",
	Short: "Dump the raw statistics of a matchup",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store stats.StatsStore) error {
			matchup, err := store.GetMatchup(cmd.Context(), stats.TeamPair{TeamA: args[0], TeamB: args[1]})
			if err != nil {
				return err
			}
			if matchup == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No statistics for this matchup")
				return nil
			}
			return printJSON(cmd.OutOrStdout(), matchup)
		})
	},
}

var nameCmd = &cobra.Command{
	Use:   "name <team-combination> <player-name> <player-id>",
	Short: "Set the display name of a player without counting a pick",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store stats.StatsStore) error {
			return store.SetPlayerName(cmd.Context(), args[0], args[1], args[2])
		})
	},
}

var shareCmd = &cobra.Command{
	Use:   "share <grid-json>",
	Short: "Store a grid of answers and print its share id",
	Long:  `The grid is a JSON array of rows, for example '[["Aaron Judge",""],["","Juan Soto"]]'.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var grid [][]string
		if err := json.Unmarshal([]byte(args[0]), &grid); err != nil {
			return fmt.Errorf("invalid grid: %w", err)
		}
		return withStore(func(store stats.StatsStore) error {
			id, err := store.ShareGrid(cmd.Context(), grid)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		})
	},
}

var gridCmd = &cobra.Command{
	Use:   "grid <share-id>",
	Short: "Print a shared grid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store stats.StatsStore) error {
			grid, err := store.GetSharedGrid(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), grid)
		})
	},
}

var teamsCmd = &cobra.Command{
	Use:   "teams <team-combination>",
	Short: "Resolve a team combination key back to the two team names",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		teamA, teamB, ok := stats.UnnormalizeTeamNames(args[0])
		if !ok {
			return fmt.Errorf("no roster pair matches %q", args[0])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s vs %s\n", teamA, teamB)
		return nil
	},
}

var publishCmd = &cobra.Command{
	Use:   "publish <team-a> <team-b> <player-name> <player-id>",
	Short: "Publish a pick event to the picks topic",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, topic, err := newPublisher(cmd.Context())
		if err != nil {
			return err
		}
		defer client.Close()

		event := pubsub.PickEvent{TeamA: args[0], TeamB: args[1], PlayerName: args[2], PlayerID: args[3]}
		if err := client.SendMessage(cmd.Context(), topic, event); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Published pick of %s to %s\n", args[2], topic)
		return nil
	},
}
