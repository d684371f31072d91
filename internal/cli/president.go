package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPresidentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "president",
		Short: "President moves",
	}

	cmd.AddCommand(newPresidentPlayCmd())
	cmd.AddCommand(newPresidentPassCmd())
	cmd.AddCommand(newPresidentBurnCmd())
	cmd.AddCommand(newPresidentSwapCmd())

	return cmd
}

func newPresidentPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play <code> <name> <card>...",
		Short: "Play a set of equally ranked cards (card shorthand, e.g. 9C 9H)",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cards, err := parseCards(args[2:])
			if err != nil {
				return err
			}

			req := map[string]any{"player_name": args[1], "cards": cards}
			var result GameResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/president/play", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPresidentPassCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pass <code> <name>",
		Short: "Pass on the current set",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"player_name": args[1]}
			var result GameResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/president/pass", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPresidentBurnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "burn <code> <name>",
		Short: "Acknowledge a burn and open the new lead",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"player_name": args[1]}
			var result GameResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/president/burn", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPresidentSwapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "swap <code> <name> <card>...",
		Short: "Hand over cards for the pre-round exchange",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cards, err := parseCards(args[2:])
			if err != nil {
				return err
			}

			req := map[string]any{"player_name": args[1], "cards": cards}
			var result GameResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/president/swap", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
