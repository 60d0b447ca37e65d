package oxml

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/benjaminschreck/go-oxml/pkg/oxml/xml"
)

var (
	tagRStyle = xml.Qn("w:rStyle")
	tagB      = xml.Qn("w:b")
	tagI      = xml.Qn("w:i")
	tagColor  = xml.Qn("w:color")
	tagSz     = xml.Qn("w:sz")
)

// runPropertiesSchema follows the CT_RPr element sequence.
var runPropertiesSchema = MustSchema("w:rPr", Sequence(
	"w:rStyle", "w:rFonts", "w:b", "w:bCs", "w:i", "w:iCs",
	"w:caps", "w:smallCaps", "w:strike", "w:dstrike", "w:outline",
	"w:shadow", "w:emboss", "w:imprint", "w:noProof", "w:snapToGrid",
	"w:vanish", "w:webHidden", "w:color", "w:spacing", "w:w",
	"w:kern", "w:position", "w:sz", "w:szCs", "w:highlight", "w:u",
	"w:effect", "w:bdr", "w:shd", "w:fitText", "w:vertAlign",
	"w:rtl", "w:cs", "w:em", "w:lang", "w:eastAsianLayout",
	"w:specVanish", "w:oMath",
)...)

// RunProperties wraps a <w:rPr> element
type RunProperties struct {
	children *Accessor
}

// NewRunProperties wraps an existing <w:rPr> element
func NewRunProperties(n xml.Node) (*RunProperties, error) {
	if n.Name() != tagRPr {
		return nil, errors.Wrapf(ErrWrongElement, "expected <w:rPr>, got <%s>", xml.PrefixedName(n.Name()))
	}
	return &RunProperties{children: NewAccessor(runPropertiesSchema, n)}, nil
}

// Node returns the wrapped element
func (p *RunProperties) Node() xml.Node {
	return p.children.Node()
}

// Style returns the w:val of <w:rStyle>, or false when there is no style
func (p *RunProperties) Style() (string, bool) {
	return p.val(tagRStyle)
}

// SetStyle sets the character style id
func (p *RunProperties) SetStyle(style string) error {
	return p.setVal(tagRStyle, style)
}

// ClearStyle removes <w:rStyle>
func (p *RunProperties) ClearStyle() error {
	_, err := p.children.Remove(tagRStyle)
	return err
}

// Bold reports whether <w:b> is present and switched on
func (p *RunProperties) Bold() bool {
	return p.toggle(tagB)
}

// SetBold adds or removes <w:b/>
func (p *RunProperties) SetBold(on bool) error {
	return p.setToggle(tagB, on)
}

// Italic reports whether <w:i> is present and switched on
func (p *RunProperties) Italic() bool {
	return p.toggle(tagI)
}

// SetItalic adds or removes <w:i/>
func (p *RunProperties) SetItalic(on bool) error {
	return p.setToggle(tagI, on)
}

// Color returns the hex color from <w:color>
func (p *RunProperties) Color() (string, bool) {
	return p.val(tagColor)
}

// SetColor sets <w:color w:val=...>; an empty color removes it
func (p *RunProperties) SetColor(color string) error {
	if color == "" {
		_, err := p.children.Remove(tagColor)
		return err
	}
	return p.setVal(tagColor, color)
}

// Size returns the font size in half-points from <w:sz>
func (p *RunProperties) Size() (int, bool) {
	v, ok := p.val(tagSz)
	if !ok {
		return 0, false
	}
	size, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return size, true
}

// SetSize sets <w:sz> in half-points; zero or less removes it
func (p *RunProperties) SetSize(halfPoints int) error {
	if halfPoints <= 0 {
		_, err := p.children.Remove(tagSz)
		return err
	}
	return p.setVal(tagSz, strconv.Itoa(halfPoints))
}

func (p *RunProperties) val(kind xml.Name) (string, bool) {
	child, err := p.children.Get(kind)
	if err != nil || child == nil {
		return "", false
	}
	return child.Attr(attrVal)
}

func (p *RunProperties) setVal(kind xml.Name, value string) error {
	child, err := p.children.GetOrCreate(kind)
	if err != nil {
		return err
	}
	child.SetAttr(attrVal, value)
	return nil
}

// toggle follows ST_OnOff: a missing w:val means on
func (p *RunProperties) toggle(kind xml.Name) bool {
	child, err := p.children.Get(kind)
	if err != nil || child == nil {
		return false
	}
	v, ok := child.Attr(attrVal)
	if !ok {
		return true
	}
	switch v {
	case "0", "false", "off":
		return false
	}
	return true
}

func (p *RunProperties) setToggle(kind xml.Name, on bool) error {
	if !on {
		_, err := p.children.Remove(kind)
		return err
	}
	child, err := p.children.GetOrCreate(kind)
	if err != nil {
		return err
	}
	child.RemoveAttr(attrVal)
	return nil
}
