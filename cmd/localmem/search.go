package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jpals/localmem/internal/domain/workstream"
	"github.com/spf13/cobra"
)

var (
	searchJSON bool
	tagsAll    bool
	tagsJSON   bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search workstream names and summaries",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		workstreams, _ := openServices()

		list, err := workstreams.Search(context.Background(), args[0])
		if err != nil {
			fatal("searching workstreams", err)
		}
		printMatches(list, searchJSON)
	},
}

var tagsCmd = &cobra.Command{
	Use:   "tags [tag]...",
	Short: "Find workstreams by tags",
	Long: `Find workstreams carrying any of the given tags.
With --all, only workstreams carrying every tag match.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		workstreams, _ := openServices()

		list, err := workstreams.SearchByTags(context.Background(), args, tagsAll)
		if err != nil {
			fatal("searching by tags", err)
		}
		printMatches(list, tagsJSON)
	},
}

func printMatches(list []*workstream.Workstream, asJSON bool) {
	if asJSON {
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
}

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(tagsCmd)
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output in JSON format")
	tagsCmd.Flags().BoolVar(&tagsAll, "all", false, "Require every tag to match")
	tagsCmd.Flags().BoolVar(&tagsJSON, "json", false, "Output in JSON format")
}
