package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a workstream permanently",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		workstreams, _ := openServices()

		deleted, err := workstreams.Delete(context.Background(), args[0])
		if err != nil {
			fatal("deleting workstream", err)
		}
		if !deleted {
			fmt.Fprintf(os.Stderr, "workstream not found: %s\n", args[0])
			os.Exit(1)
		}

		fmt.Printf("Deleted workstream: %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
