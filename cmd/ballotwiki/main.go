// Command ballotwiki runs the moderated edit service and its maintenance
// tasks.
//
// Usage:
//
//	ballotwiki serve
//	ballotwiki migrate up|down|status
//	ballotwiki users create --name="Ada" [--role=MODERATOR]
//	ballotwiki promote --public-id=u_... [--role=MODERATOR]
//	ballotwiki reconcile
//	ballotwiki env
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/ballotwiki-backend/internal/app"
)

const defaultEnvFile = ".env"

var (
	envFile    string
	configPath string
	dsn        string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := newRootCmd()
	return rootCmd.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           app.AppName,
		Short:         "Moderated community edits for election guide data",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadEnvFile(envFile, cmd.Flags().Changed("env-file"))
		},
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", defaultEnvFile, "dotenv file loaded before reading configuration")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config path (overrides CONFIG_PATH)")
	rootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "PostgreSQL DSN for maintenance commands (default $DATABASE_DSN)")

	rootCmd.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newUsersCmd(),
		newPromoteCmd(),
		newReconcileCmd(),
		newEnvCmd(),
	)

	return rootCmd
}

// loadEnvFile loads path into the environment without overriding variables
// that are already set. A missing default file is not an error.
func loadEnvFile(path string, explicit bool) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("loading %s: %w", path, err)
}
