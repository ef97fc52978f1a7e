package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/theapemachine/a2a-bridge/pkg/registry"
	"github.com/theapemachine/a2a-bridge/pkg/remote"
)

var (
	clientCmd = &cobra.Command{
		Use:   "client",
		Short: "A2A client operations",
		Long:  `Run one-shot client operations against configured remote agents`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cardCmd = &cobra.Command{
		Use:   "card <agent>",
		Short: "Fetch and display a remote agent's card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := registry.NewFromConfig().Get(args[0])

			if err != nil {
				return err
			}

			card, err := remote.NewCardClient().Fetch(entry.URL)

			if err != nil {
				return err
			}

			fmt.Println(card)
			return nil
		},
	}

	callCmd = &cobra.Command{
		Use:   "call <agent> <message...>",
		Short: "Send a message to a remote agent",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := registry.NewFromConfig().Get(args[0])

			if err != nil {
				return err
			}

			card, err := remote.NewCardClient().Fetch(entry.URL)

			if err != nil {
				return err
			}

			endpoint := card.URL
			if endpoint == "" {
				endpoint = entry.URL
			}

			log.Info("calling remote agent", "agent", entry.DisplayName(), "endpoint", endpoint)

			text, err := remote.NewClient(endpoint, entry.Token).SendMessage(
				cmd.Context(), strings.Join(args[1:], " "),
			)

			if err != nil {
				return err
			}

			fmt.Println(text)
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(clientCmd)
	clientCmd.AddCommand(cardCmd)
	clientCmd.AddCommand(callCmd)
}
