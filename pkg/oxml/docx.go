package oxml

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/benjaminschreck/go-oxml/pkg/oxml/xml"
)

const documentPart = "word/document.xml"

// DocxReader handles reading the parts of a DOCX package
type DocxReader struct {
	reader *zip.Reader
	Parts  map[string]*zip.File
}

// Relationship represents a relationship in the DOCX package
type Relationship struct {
	ID         string
	Type       string
	Target     string
	TargetMode string
}

// NewDocxReader creates a new DOCX reader
func NewDocxReader(r io.ReaderAt, size int64) (*DocxReader, error) {
	zipReader, err := zip.NewReader(r, size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read zip file")
	}

	dr := &DocxReader{
		reader: zipReader,
		Parts:  make(map[string]*zip.File),
	}

	// Index all parts by name
	for _, file := range zipReader.File {
		dr.Parts[file.Name] = file
	}

	// Check if this is a valid DOCX file by looking for required parts
	if _, ok := dr.Parts[documentPart]; !ok {
		return nil, errors.New("not a valid DOCX file: missing word/document.xml")
	}

	return dr, nil
}

// OpenDocx reads a DOCX file from disk
func OpenDocx(path string) (*DocxReader, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, NewDocumentError("open", path, err)
	}

	dr, err := NewDocxReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, NewDocumentError("open", path, err)
	}
	return dr, nil
}

// GetPart retrieves the content of a specific part
func (dr *DocxReader) GetPart(partName string) ([]byte, error) {
	file, ok := dr.Parts[partName]
	if !ok {
		return nil, fmt.Errorf("part %s not found", partName)
	}

	rc, err := file.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open part %s", partName)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read part %s", partName)
	}

	return content, nil
}

// DocumentXML retrieves the content of word/document.xml
func (dr *DocxReader) DocumentXML() ([]byte, error) {
	return dr.GetPart(documentPart)
}

// Document parses word/document.xml
func (dr *DocxReader) Document() (*xml.Document, error) {
	content, err := dr.DocumentXML()
	if err != nil {
		return nil, err
	}
	doc, err := xml.ParseDocument(bytes.NewReader(content))
	if err != nil {
		return nil, errors.Wrap(err, documentPart)
	}
	return doc, nil
}

// ListParts returns all part names in the DOCX, sorted
func (dr *DocxReader) ListParts() []string {
	parts := make([]string, 0, len(dr.Parts))
	for name := range dr.Parts {
		parts = append(parts, name)
	}
	sort.Strings(parts)
	return parts
}

// GetRelationships retrieves relationships for a given part
func (dr *DocxReader) GetRelationships(partName string) ([]Relationship, error) {
	// Convert part name to its relationships file name
	// e.g., "word/document.xml" -> "word/_rels/document.xml.rels"
	dir := ""
	base := partName
	if idx := strings.LastIndex(partName, "/"); idx != -1 {
		dir = partName[:idx]
		base = partName[idx+1:]
	}

	relPath := fmt.Sprintf("%s/_rels/%s.rels", dir, base)
	if dir == "" {
		relPath = fmt.Sprintf("_rels/%s.rels", base)
	}

	if _, ok := dr.Parts[relPath]; !ok {
		// Missing relationships file is not an error, just return empty
		return []Relationship{}, nil
	}

	content, err := dr.GetPart(relPath)
	if err != nil {
		return nil, err
	}

	root, err := xml.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse relationships")
	}

	var rels []Relationship
	for _, n := range root.ChildNodes() {
		if n.Name().Local != "Relationship" {
			continue
		}
		rel := Relationship{}
		rel.ID, _ = n.Attr(xml.Name{Local: "Id"})
		rel.Type, _ = n.Attr(xml.Name{Local: "Type"})
		rel.Target, _ = n.Attr(xml.Name{Local: "Target"})
		rel.TargetMode, _ = n.Attr(xml.Name{Local: "TargetMode"})
		rels = append(rels, rel)
	}
	return rels, nil
}

// HyperlinkTarget resolves a hyperlink's r:id against the relationships of
// word/document.xml. ok is false when the link has no r:id or the id is
// unknown.
func (dr *DocxReader) HyperlinkTarget(link *Hyperlink) (target string, ok bool, err error) {
	id, hasID := link.RelationshipID()
	if !hasID {
		return "", false, nil
	}

	rels, err := dr.GetRelationships(documentPart)
	if err != nil {
		return "", false, err
	}
	for _, rel := range rels {
		if rel.ID == id {
			return rel.Target, true, nil
		}
	}
	return "", false, nil
}

// WriteWithDocument writes a copy of the package to w with word/document.xml
// replaced by doc. All other parts are copied unchanged, in their original
// order.
func (dr *DocxReader) WriteWithDocument(w io.Writer, doc *xml.Document) error {
	zw := zip.NewWriter(w)

	for _, file := range dr.reader.File {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     file.Name,
			Method:   file.Method,
			Modified: file.Modified,
		})
		if err != nil {
			return errors.Wrapf(err, "failed to create %s", file.Name)
		}

		if file.Name == documentPart {
			if _, err := doc.WriteTo(fw); err != nil {
				return errors.Wrapf(err, "failed to write %s", file.Name)
			}
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return errors.Wrapf(err, "failed to open %s", file.Name)
		}
		_, err = io.Copy(fw, rc)
		rc.Close()
		if err != nil {
			return errors.Wrapf(err, "failed to copy %s", file.Name)
		}
	}

	return errors.Wrap(zw.Close(), "failed to finalize zip")
}
