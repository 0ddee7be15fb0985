package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var noteCategory string

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage workstream notes",
}

var noteAddCmd = &cobra.Command{
	Use:   "add [id] [text]",
	Short: "Append a timestamped note to a workstream",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		workstreams, _ := openServices()

		ws, err := workstreams.AddNote(context.Background(), args[0], args[1], noteCategory)
		if err != nil {
			fatal("adding note", err)
		}
		fmt.Printf("Added note %d to %s\n", len(ws.Notes)-1, ws.ID)
	},
}

var noteEditCmd = &cobra.Command{
	Use:   "edit [id] [index] [text]",
	Short: "Replace a note by its zero-based index",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		workstreams, _ := openServices()

		index, err := strconv.Atoi(args[1])
		if err != nil {
			fatal("parsing note index", err)
		}
		ws, err := workstreams.EditNote(context.Background(), args[0], index, args[2], noteCategory)
		if err != nil {
			fatal("editing note", err)
		}
		fmt.Printf("Edited note %d on %s\n", index, ws.ID)
	},
}

var noteDeleteCmd = &cobra.Command{
	Use:   "delete [id] [index]",
	Short: "Remove a note by its zero-based index",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		workstreams, _ := openServices()

		index, err := strconv.Atoi(args[1])
		if err != nil {
			fatal("parsing note index", err)
		}
		ws, err := workstreams.DeleteNote(context.Background(), args[0], index)
		if err != nil {
			fatal("deleting note", err)
		}
		fmt.Printf("Deleted note %d from %s\n", index, ws.ID)
	},
}

func init() {
	rootCmd.AddCommand(noteCmd)
	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteEditCmd)
	noteCmd.AddCommand(noteDeleteCmd)
	noteAddCmd.Flags().StringVar(&noteCategory, "category", "", "Category label for the note")
	noteEditCmd.Flags().StringVar(&noteCategory, "category", "", "Category label for the note")
}
