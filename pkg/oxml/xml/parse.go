package xml

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Parse reads a single XML element tree from r. Processing instructions,
// comments and directives before the root element are skipped; use
// ParseDocument to keep the XML declaration.
func Parse(r io.Reader) (*Element, error) {
	root, _, err := parseRoot(xml.NewDecoder(r))
	return root, err
}

// ParseString is Parse for in-memory markup.
func ParseString(s string) (*Element, error) {
	return Parse(strings.NewReader(s))
}

func parseRoot(d *xml.Decoder) (*Element, *xml.ProcInst, error) {
	var decl *xml.ProcInst
	for {
		token, err := d.Token()
		if err == io.EOF {
			return nil, decl, fmt.Errorf("failed to parse element: no root element")
		}
		if err != nil {
			return nil, decl, fmt.Errorf("failed to parse element: %w", err)
		}

		switch t := token.(type) {
		case xml.ProcInst:
			if t.Target == "xml" && decl == nil {
				pi := t.Copy()
				decl = &pi
			}
		case xml.StartElement:
			root, err := decodeElement(d, t)
			if err != nil {
				return nil, decl, fmt.Errorf("failed to parse element: %w", err)
			}
			return root, decl, nil
		}
	}
}

// decodeElement consumes tokens up to and including the end tag matching start
func decodeElement(d *xml.Decoder, start xml.StartElement) (*Element, error) {
	el := NewElement(start.Name, start.Attr...)

	var text strings.Builder
	sawText := false

	// Process elements in order
	for {
		token, err := d.Token()
		if err != nil {
			if err == io.EOF {
				return nil, fmt.Errorf("unexpected EOF inside <%s>", PrefixedName(start.Name))
			}
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			child, err := decodeElement(d, t)
			if err != nil {
				return nil, err
			}
			el.Append(child)
		case xml.CharData:
			text.Write(t)
			sawText = true
		case xml.EndElement:
			if sawText {
				s := text.String()
				// Indentation between child elements is not content.
				if len(el.Children) == 0 || strings.TrimSpace(s) != "" {
					el.SetText(s)
				}
			}
			return el, nil
		}
	}
}
