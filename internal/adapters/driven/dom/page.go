package dom

import (
	"fmt"

	"github.com/custodia-labs/hovertip/internal/adapters/driven/config/file"
)

// FromPage lays out the elements of a page definition in declaration order.
func FromPage(p *file.Page) (*Document, error) {
	d := NewDocument(p.Title)
	for _, el := range p.Elements {
		if _, err := d.Append(el.ID, el.Text, el.Link); err != nil {
			return nil, fmt.Errorf("building page: %w", err)
		}
	}
	return d, nil
}
