package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGoFishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gofish",
		Short: "Go Fish moves",
	}

	cmd.AddCommand(newGoFishAskCmd())
	cmd.AddCommand(newGoFishDrawCmd())

	return cmd
}

func newGoFishAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <code> <name> <target> <rank>",
		Short: "Ask another player for all their cards of a rank",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			rank, err := parseRank(args[3])
			if err != nil {
				return err
			}

			req := map[string]string{
				"player_name": args[1],
				"target":      args[2],
				"rank":        rank,
			}
			var result GameResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/gofish/ask", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGoFishDrawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "draw <code> <name>",
		Short: "Draw a card from the pond",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"player_name": args[1]}
			var result GameResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/gofish/draw", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
