package cmd

import (
	"fmt"

	"github.com/jsphweid/musika/note"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(noteCmd)
}

var noteCmd = &cobra.Command{
	Use:   "note <name>...",
	Short: "Shows register, spellings and MIDI key of notes",
	Long:  `Shows register, spellings and MIDI key of notes, e.g. "musika note C# Bb3".`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := note.ParseAll(args)
		if err != nil {
			return err
		}
		for _, n := range notes {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				styled(nameStyle, n.Debug()),
				styled(flatStyle, n.Flat()),
				styled(dimStyle, fmt.Sprintf("midi=%d", uint8(n.Key()))))
		}
		return nil
	},
}
