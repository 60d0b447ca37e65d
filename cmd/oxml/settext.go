package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/benjaminschreck/go-oxml/pkg/oxml"
)

var escapeReplacer = strings.NewReplacer(`\t`, "\t", `\n`, "\n", `\r`, "\r", `\\`, `\`)

func newSetTextCmd(opts *globalOptions) *cobra.Command {
	var (
		index   int
		text    string
		escapes bool
		output  string
		diff    bool
	)

	cmd := &cobra.Command{
		Use:   "set-text FILE",
		Short: "Replace the text of one hyperlink or run",
		Long: `Replace all content of the selected element with new text. Run properties
are kept. Tabs become <w:tab/>; "\n" and "\r" both become a line break.
With --escapes the sequences \t, \n, \r and \\ in --text are expanded.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := loadSource(args[0])
			if err != nil {
				return err
			}
			t, err := src.target(opts.kind, index)
			if err != nil {
				return err
			}

			if escapes {
				text = escapeReplacer.Replace(text)
			}
			before := t.displayText()
			if err := t.node.SetText(text); err != nil {
				return err
			}
			oxml.WithFields(logrus.Fields{
				"kind":  t.kind,
				"index": index,
			}).Debug("text replaced")

			if diff {
				fmt.Fprint(cmd.OutOrStdout(), FormatDiff(before, t.displayText()))
			}
			if err := src.save(output); err != nil {
				return err
			}
			FormatDone(cmd.OutOrStdout(), "updated %s %d", t.kind, index)
			return nil
		},
	}

	cmd.Flags().IntVarP(&index, "index", "i", 0, "Index of the element, as listed by the text command")
	cmd.Flags().StringVarP(&text, "text", "t", "", "Replacement text")
	cmd.Flags().BoolVarP(&escapes, "escapes", "e", false, `Expand \t, \n, \r and \\ in --text`)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this path instead of FILE")
	cmd.Flags().BoolVar(&diff, "diff", false, "Print a diff of the old and new text")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}
