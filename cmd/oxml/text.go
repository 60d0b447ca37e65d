package main

import (
	"github.com/spf13/cobra"
)

func newTextCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "text FILE",
		Short: "List the text of every hyperlink or run",
		Long: `List the logical text of every element of the selected kind, in document
order. Tabs and line breaks are shown escaped. For hyperlinks the text of
nested runs is included and the link destination is resolved through the
package relationships when FILE is a .docx.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := loadSource(args[0])
			if err != nil {
				return err
			}
			targets, err := src.targets(opts.kind)
			if err != nil {
				return err
			}

			lines := make([]listingLine, 0, len(targets))
			for i, t := range targets {
				style, _ := t.node.Style()
				lines = append(lines, listingLine{
					Index:       i,
					Kind:        t.kind,
					Style:       style,
					Text:        t.displayText(),
					Destination: src.destination(t),
				})
			}
			FormatListing(cmd.OutOrStdout(), lines)
			return nil
		},
	}
}
