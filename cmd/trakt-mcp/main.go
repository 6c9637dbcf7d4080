package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/amaumene/trakt-mcp/internal/config"
	"github.com/amaumene/trakt-mcp/internal/mcp"
	"github.com/amaumene/trakt-mcp/internal/scheduler"
	"github.com/amaumene/trakt-mcp/internal/services/trakt"
	"github.com/amaumene/trakt-mcp/internal/utils"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "trakt-mcp",
		Short:        "MCP server exposing the Trakt.tv API as tools and resources",
		SilenceUsage: true,
	}
	root.AddCommand(serveCmd(), loginCmd())
	return root
}

// setup wires config, logger and the Trakt client, shared by every command.
func setup() (*config.Config, *logrus.Logger, *trakt.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := utils.NewLogger(cfg.LogLevel)

	client, err := trakt.NewClient(cfg, logger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize Trakt client: %w", err)
	}
	return cfg, logger, client, nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve MCP over stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, client, err := setup()
			if err != nil {
				return err
			}
			logger.Info("Starting trakt-mcp")

			sched := scheduler.NewScheduler(client, logger)
			if err := sched.Start(); err != nil {
				return fmt.Errorf("failed to start scheduler: %w", err)
			}
			defer sched.Stop()

			return mcp.NewServer(cfg, client, logger).Serve()
		},
	}
}

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Authenticate with Trakt using the device code flow",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, client, err := setup()
			if err != nil {
				return err
			}

			if client.IsAuthenticated() {
				fmt.Println("Already authenticated with Trakt.")
				return nil
			}

			ctx := cmd.Context()
			code, err := client.StartDeviceAuth(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("Open %s and enter the code: %s\n", code.VerificationURL, code.UserCode)
			fmt.Printf("The code expires in %d minutes.\n", code.ExpiresIn/60)

			if err := client.WaitForAuthorization(ctx); err != nil {
				return fmt.Errorf("authorization failed: %w", err)
			}
			fmt.Println("Authenticated with Trakt.")
			return nil
		},
	}
}
