package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/filamvp/card-tracker/internal/api/client"
)

func cardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Browse and manage cards",
	}

	cmd.AddCommand(cardsListCmd())
	cmd.AddCommand(cardsGetCmd())
	cmd.AddCommand(cardsNextStatusCmd())
	cmd.AddCommand(cardsDeleteCmd())

	return cmd
}

func cardsListCmd() *cobra.Command {
	var (
		status  string
		kind    string
		team    string
		set     string
		search  string
		limit   int
		offset  int
		orderBy string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cards",
		Example: `  card-tracker cards list
  card-tracker cards list --status available --team "Borussia Dortmund"
  card-tracker cards list --q gengar --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().ListCards(cmd.Context(), &apiclient.ListCardsParams{
				Status:  status,
				Kind:    kind,
				Team:    team,
				Set:     set,
				Search:  search,
				Limit:   limit,
				Offset:  offset,
				OrderBy: orderBy,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if err := printCardsTable(resp.Cards); err != nil {
				return err
			}
			fmt.Printf("\n%d of %d cards\n", len(resp.Cards), resp.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status (new, available, listed, inactive, sold)")
	cmd.Flags().StringVar(&kind, "kind", "", "filter by kind (single, lot)")
	cmd.Flags().StringVar(&team, "team", "", "filter by team")
	cmd.Flags().StringVar(&set, "set", "", "filter by set")
	cmd.Flags().StringVar(&search, "q", "", "search titles")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum cards to return")
	cmd.Flags().IntVar(&offset, "offset", 0, "pagination offset")
	cmd.Flags().StringVar(&orderBy, "order-by", "", "sort order (created_at, title, price, status)")

	return cmd
}

func cardsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <card-id>",
		Short: "Show a single card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			card, err := newClient().GetCard(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(card)
			}
			return printCardDetail(card)
		},
	}
}

func cardsNextStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next-status <card-id>",
		Short: "Advance a card one step in the selling cycle",
		Example: `  card-tracker cards next-status 2b1f0a7c-...
  # new -> available -> listed -> sold -> new`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			card, err := newClient().NextStatus(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(card)
			}
			fmt.Printf("%s: %s\n", card.Title, card.Status)
			return nil
		},
	}
}

func cardsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <card-id>",
		Short: "Delete a card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().DeleteCard(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("deleted")
			return nil
		},
	}
}
