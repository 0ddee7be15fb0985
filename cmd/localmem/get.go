package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show a workstream as JSON",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		workstreams, _ := openServices()

		ws, ok, err := workstreams.Get(context.Background(), args[0])
		if err != nil {
			fatal("loading workstream", err)
		}
		if !ok {
			fmt.Fprintf(os.Stderr, "workstream not found: %s\n", args[0])
			os.Exit(1)
		}

		printJSON(ws)
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
