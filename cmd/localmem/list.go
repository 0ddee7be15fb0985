package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all workstreams in creation order",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		workstreams, _ := openServices()

		list, err := workstreams.List(context.Background())
		if err != nil {
			fatal("listing workstreams", err)
		}

		if listJSON {
			printJSON(list)
			return
		}

		for _, ws := range list {
			line := fmt.Sprintf("%s  %s", ws.ID, ws.Name)
			if len(ws.Tags) > 0 {
				line += fmt.Sprintf("  [%s]", strings.Join(ws.Tags, ", "))
			}
			fmt.Println(line)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
