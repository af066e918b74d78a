package facturae

import (
	"encoding/xml"
	"fmt"

	"github.com/beevik/etree"
)

// Fragment renders a schema value as an indented XML fragment. No XML
// declaration is written: the fragment is meant to be embedded into a full
// Facturae document by the caller.
func Fragment(v interface{}) (string, error) {
	out, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal fragment: %w", err)
	}
	return string(out), nil
}

// AppendTo renders a schema value and attaches it as the last child of
// parent. The parent's document owns the attached elements afterwards.
func AppendTo(parent *etree.Element, v interface{}) error {
	frag, err := Fragment(v)
	if err != nil {
		return err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(frag); err != nil {
		return fmt.Errorf("failed to parse fragment: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return fmt.Errorf("empty fragment")
	}

	// AddChild detaches the element from its original document
	parent.AddChild(root)
	return nil
}
