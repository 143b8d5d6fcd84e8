package cmd

import (
	"fmt"

	"github.com/jsphweid/musika/chord"
	"github.com/jsphweid/musika/note"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(findCmd)
}

var findCmd = &cobra.Command{
	Use:   "find <root> [note]...",
	Short: "Finds chords on a root holding every given note",
	Long:  `Finds chords on a root holding every given note. Octaves are ignored.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := note.Parse(args[0])
		if err != nil {
			return err
		}
		query, err := note.ParseAll(args[1:])
		if err != nil {
			return err
		}

		found := chord.FindContaining(root, query...)
		log.WithField("root", root.String()).WithField("matches", len(found)).Debug("find")
		if len(found) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), styled(dimStyle, "Didn't find any chord!"))
			return nil
		}
		printChords(cmd.OutOrStdout(), found)
		return nil
	},
}
