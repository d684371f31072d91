package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEightsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eights",
		Short: "Crazy Eights moves",
	}

	cmd.AddCommand(newEightsPlayCmd())
	cmd.AddCommand(newEightsChooseSuitCmd())
	cmd.AddCommand(newEightsDrawCmd())
	cmd.AddCommand(newEightsPickUpCmd())

	return cmd
}

func newEightsPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play <code> <name> <card>",
		Short: "Play a card onto the pile (card shorthand, e.g. QS or 10H)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			card, err := parseCard(args[2])
			if err != nil {
				return err
			}

			req := map[string]any{"player_name": args[1], "card": card}
			var result GameResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/eights/play", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newEightsChooseSuitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "choose-suit <code> <name> <suit>",
		Short: "Nominate the suit after playing an eight",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			suit, err := parseSuit(args[2])
			if err != nil {
				return err
			}

			req := map[string]string{"player_name": args[1], "suit": suit}
			var result GameResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/eights/choose-suit", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newEightsDrawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "draw <code> <name>",
		Short: "Draw a card when unable to play",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"player_name": args[1]}
			var result GameResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/eights/draw", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newEightsPickUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pickup <code> <name>",
		Short: "Pay the owed pickup penalty",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"player_name": args[1]}
			var result GameResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/eights/pickup", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
