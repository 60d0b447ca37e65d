package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/benjaminschreck/go-oxml/pkg/oxml"
)

// edit is one entry of an edits file. Nil fields are left untouched.
type edit struct {
	Kind       string
	Index      int
	Text       *string
	Style      *string
	ClearStyle bool
}

// parseEdits reads a JSON array of edits:
//
//	[{"index": 0, "text": "new text", "style": "Hyperlink"},
//	 {"kind": "run", "index": 3, "style": null}]
//
// A null or empty style clears it. kind defaults to defaultKind.
func parseEdits(data []byte, defaultKind string) ([]edit, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("edits file is not valid JSON")
	}
	result := gjson.ParseBytes(data)
	if !result.IsArray() {
		return nil, errors.New("edits file must contain a JSON array")
	}

	var (
		edits []edit
		err   error
	)
	result.ForEach(func(_, value gjson.Result) bool {
		n := len(edits)
		if !value.IsObject() {
			err = errors.Errorf("edit %d: not an object", n)
			return false
		}

		index := value.Get("index")
		if index.Type != gjson.Number {
			err = errors.Errorf("edit %d: missing numeric index", n)
			return false
		}
		e := edit{Kind: defaultKind, Index: int(index.Int())}

		if kind := value.Get("kind"); kind.Exists() {
			e.Kind = kind.String()
		}
		if text := value.Get("text"); text.Exists() {
			s := text.String()
			e.Text = &s
		}
		if style := value.Get("style"); style.Exists() {
			if style.Type == gjson.Null || style.String() == "" {
				e.ClearStyle = true
			} else {
				s := style.String()
				e.Style = &s
			}
		}

		edits = append(edits, e)
		return true
	})
	if err != nil {
		return nil, err
	}
	return edits, nil
}

// applyEdits resolves every edit against the document as loaded, then
// applies them in order. An edit that detaches the target of another edit,
// such as new hyperlink text replacing the runs nested in it, fails the
// whole batch.
func applyEdits(src *source, edits []edit) error {
	resolved := make([]target, len(edits))
	for i, e := range edits {
		t, err := src.target(e.Kind, e.Index)
		if err != nil {
			return errors.Wrapf(err, "edit %d", i)
		}
		resolved[i] = t
	}

	for i, e := range edits {
		t := resolved[i]
		if e.Text != nil {
			if err := t.node.SetText(*e.Text); err != nil {
				return errors.Wrapf(err, "edit %d", i)
			}
		}
		switch {
		case e.ClearStyle:
			if err := t.node.ClearStyle(); err != nil {
				return errors.Wrapf(err, "edit %d", i)
			}
		case e.Style != nil:
			if err := t.node.SetStyle(*e.Style); err != nil {
				return errors.Wrapf(err, "edit %d", i)
			}
		}

		for j, other := range resolved {
			if j != i && !src.contains(other.node.Node()) {
				return errors.Errorf("edit %d removes the %s targeted by edit %d", i, edits[j].Kind, j)
			}
		}

		oxml.WithFields(logrus.Fields{
			"kind":  e.Kind,
			"index": e.Index,
		}).Debug("edit applied")
	}
	return nil
}

func newApplyCmd(opts *globalOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "apply FILE EDITS",
		Short: "Apply a JSON list of text and style edits",
		Long: `Apply every edit in the EDITS JSON file to FILE. Each edit addresses one
element by index, as listed by the text command for the document before any
edit is applied, and may set its text, its style, or both:

  [{"index": 0, "text": "Go docs", "style": "Hyperlink"},
   {"kind": "run", "index": 2, "style": null}]

No file is written unless every edit succeeds.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[1])
			if err != nil {
				return errors.Wrap(err, "failed to read edits")
			}
			edits, err := parseEdits(data, opts.kind)
			if err != nil {
				return err
			}

			src, err := loadSource(args[0])
			if err != nil {
				return err
			}
			if err := applyEdits(src, edits); err != nil {
				return err
			}
			if err := src.save(output); err != nil {
				return err
			}
			FormatDone(cmd.OutOrStdout(), "applied %d edits", len(edits))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this path instead of FILE")

	return cmd
}
