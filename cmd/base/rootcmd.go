package base

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pysugar/backend/http/server"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "backend",
	Short: "Backend greeting server",
	Long:  "Backend serves a fixed greeting on GET / at port 3000",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := server.ListenAndServe(ctx, server.DefaultAddr, server.NewHandler()); err != nil {
			log.Fatalf("Backend server failed: %v", err)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show current version of Backend",
	Long:  "Version prints the build information for Backend executables",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, s := range VersionStatement() {
			fmt.Fprintln(cmd.OutOrStdout(), s)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func AddSubCommands(cmds ...*cobra.Command) {
	rootCmd.AddCommand(cmds...)
}

func Run() {
	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
