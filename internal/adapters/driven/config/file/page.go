package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/hovertip/internal/core/domain"
)

// Format identifies a page file encoding.
type Format string

// Supported page formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Page declares host elements and the tooltips attached to them.
// Unknown keys are ignored.
type Page struct {
	Title    string        `toml:"title" yaml:"title"`
	Elements []PageElement `toml:"element" yaml:"elements"`
	Tooltips []PageTooltip `toml:"tooltip" yaml:"tooltips"`
}

// PageElement is one host element of a page.
type PageElement struct {
	ID   string `toml:"id" yaml:"id"`
	Text string `toml:"text" yaml:"text"`
	Link string `toml:"link" yaml:"link"`
}

// PageTooltip is a tooltip declaration. Absent fields keep their defaults.
type PageTooltip struct {
	ElementID  string  `toml:"element_id" yaml:"element_id"`
	EnableLock *bool   `toml:"enable_lock" yaml:"enable_lock"`
	EnableMove *bool   `toml:"enable_move" yaml:"enable_move"`
	OffsetX    *int    `toml:"offset_x" yaml:"offset_x"`
	OffsetY    *int    `toml:"offset_y" yaml:"offset_y"`
	Class      *string `toml:"tooltip_class" yaml:"tooltip_class"`
	Content    *string `toml:"tooltip_content" yaml:"tooltip_content"`

	// FadeOut is the auto-dismiss delay in milliseconds.
	FadeOut *int `toml:"fade_out" yaml:"fade_out"`
}

// FormatForPath picks the format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("page %s: %w", path, domain.ErrUnsupportedType)
	}
}

// LoadPage reads and parses a page file.
func LoadPage(path string) (*Page, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading page: %w", err)
	}

	p, err := ParsePage(data, format)
	if err != nil {
		return nil, fmt.Errorf("page %s: %w", path, err)
	}
	return p, nil
}

// ParsePage decodes a page in the given format.
func ParsePage(data []byte, format Format) (*Page, error) {
	var p Page

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("decoding toml: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("decoding yaml: %w", err)
		}
	default:
		return nil, domain.ErrUnsupportedType
	}

	return &p, nil
}

// Options converts the declaration into controller options.
// A negative fade out is rejected.
func (t PageTooltip) Options() (domain.Options, error) {
	opts := domain.Options{
		ElementID:  t.ElementID,
		EnableLock: t.EnableLock,
		EnableMove: t.EnableMove,
		OffsetX:    t.OffsetX,
		OffsetY:    t.OffsetY,
		Class:      t.Class,
		Content:    t.Content,
	}

	if t.FadeOut != nil {
		if *t.FadeOut < 0 {
			return domain.Options{}, fmt.Errorf("tooltip %q: fade_out %d: %w",
				t.ElementID, *t.FadeOut, domain.ErrInvalidInput)
		}
		opts.FadeOut = domain.Millis(*t.FadeOut)
	}

	return opts, nil
}

// Options converts every tooltip declaration of the page.
func (p *Page) Options() ([]domain.Options, error) {
	out := make([]domain.Options, 0, len(p.Tooltips))
	for _, t := range p.Tooltips {
		opts, err := t.Options()
		if err != nil {
			return nil, err
		}
		out = append(out, opts)
	}
	return out, nil
}
