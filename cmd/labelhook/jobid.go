package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/orrn/labelhook/internal/core"
)

var jobIDCmd = &cobra.Command{
	Use:   "jobid <text>",
	Short: "Print the job ID the receiver would assign to text right now",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := core.NewJobIDGenerator().MakeJobID(strings.Join(args, " "))
		_, err := fmt.Fprintln(cmd.OutOrStdout(), id)
		return err
	},
}
