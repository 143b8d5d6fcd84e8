package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/musika/chord"
	"github.com/jsphweid/musika/note"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord <root> [shape]",
	Short: "Builds a chord",
	Long:  `Builds the named chord shape on a root, or every catalog shape when no shape is given.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := note.Parse(args[0])
		if err != nil {
			return err
		}
		if len(args) == 1 {
			printChords(cmd.OutOrStdout(), chord.All(root))
			return nil
		}
		shape, err := chord.ShapeByKey(args[1])
		if err != nil {
			return err
		}
		printChords(cmd.OutOrStdout(), []chord.Chord{shape.Build(root)})
		return nil
	},
}

func printChords(w io.Writer, chords []chord.Chord) {
	for _, c := range chords {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			styled(nameStyle, c.String()),
			styled(sharpStyle, c.Sharp()),
			styled(flatStyle, c.Flat()))
	}
}
