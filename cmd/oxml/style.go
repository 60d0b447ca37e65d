package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newStyleCmd(opts *globalOptions) *cobra.Command {
	var (
		index      int
		set        string
		clearStyle bool
		output     string
	)

	cmd := &cobra.Command{
		Use:   "style FILE",
		Short: "Set or clear the character style of one hyperlink or run",
		Long: `Set the character style (<w:rStyle w:val="..."/>) of the selected element,
creating <w:rPr> in its schema position if needed, or clear it with --clear.
Clearing an element that has no properties leaves it unchanged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if clearStyle == (set != "") {
				return errors.New("exactly one of --set or --clear is required")
			}

			src, err := loadSource(args[0])
			if err != nil {
				return err
			}
			t, err := src.target(opts.kind, index)
			if err != nil {
				return err
			}

			if clearStyle {
				err = t.node.ClearStyle()
			} else {
				err = t.node.SetStyle(set)
			}
			if err != nil {
				return err
			}

			if err := src.save(output); err != nil {
				return err
			}
			FormatDone(cmd.OutOrStdout(), "updated style of %s %d", t.kind, index)
			return nil
		},
	}

	cmd.Flags().IntVarP(&index, "index", "i", 0, "Index of the element, as listed by the text command")
	cmd.Flags().StringVar(&set, "set", "", "Style identifier to apply")
	cmd.Flags().BoolVar(&clearStyle, "clear", false, "Remove the style")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this path instead of FILE")

	return cmd
}
