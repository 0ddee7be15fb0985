package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jpals/localmem/internal/domain/workstream"
	"github.com/spf13/cobra"
)

var (
	createTags     []string
	createMetadata string
	createParent   string
)

var createCmd = &cobra.Command{
	Use:   "create [name] [summary]",
	Short: "Create a new workstream",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		workstreams, _ := openServices()

		var metadata map[string]any
		if createMetadata != "" {
			if err := json.Unmarshal([]byte(createMetadata), &metadata); err != nil {
				fatal("parsing --metadata", err)
			}
		}
		var parentID *string
		if createParent != "" {
			parentID = &createParent
		}

		ws, err := workstreams.Create(context.Background(), workstream.CreateRequest{
			Name:     args[0],
			Summary:  args[1],
			Tags:     createTags,
			Metadata: metadata,
			ParentID: parentID,
		})
		if err != nil {
			fatal("creating workstream", err)
		}

		fmt.Printf("Created workstream: %s\n", ws.ID)
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringSliceVar(&createTags, "tags", nil, "Comma-separated tags")
	createCmd.Flags().StringVar(&createMetadata, "metadata", "", "Metadata as a JSON object")
	createCmd.Flags().StringVar(&createParent, "parent", "", "Parent workstream ID")
}
