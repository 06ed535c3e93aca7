package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "labelhook",
	Short: "Authenticated webhook receiver for label print jobs",
	Long: `labelhook accepts label print requests from an IFTTT-style trigger and
stores them as print jobs for a printer agent to pick up.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "labelhook.yaml", "path to the YAML config file")
	rootCmd.AddCommand(serveCmd, jobIDCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
