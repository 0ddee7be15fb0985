package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var notesCmd = &cobra.Command{
	Use:   "notes [id]",
	Short: "Show all notes for a workstream",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		workstreams, _ := openServices()

		notes, err := workstreams.Notes(context.Background(), args[0])
		if err != nil {
			fatal("loading notes", err)
		}

		for i, note := range notes {
			fmt.Printf("%d: %s\n", i, note)
		}
	},
}

func init() {
	rootCmd.AddCommand(notesCmd)
}
