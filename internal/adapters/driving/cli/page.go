package cli

import (
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/hovertip/internal/adapters/driven/config/file"
	"github.com/custodia-labs/hovertip/internal/adapters/driven/dom"
	"github.com/custodia-labs/hovertip/internal/core/ports/driven"
	"github.com/custodia-labs/hovertip/internal/core/services"
	"github.com/custodia-labs/hovertip/internal/logger"
)

//go:embed demo.toml
var demoPage []byte

// pagePath returns the page named by flag, falling back to the page setting.
// An empty result selects the built-in demo page.
func pagePath(flag string) string {
	if flag != "" {
		return flag
	}
	if configStore != nil {
		return configStore.GetString(file.KeyPage)
	}
	return ""
}

// readPage loads the page file at path, or the demo page when path is empty.
func readPage(path string) (*file.Page, error) {
	if path == "" {
		return file.ParsePage(demoPage, file.FormatTOML)
	}
	return file.LoadPage(path)
}

// buildPage lays out p and attaches its tooltips using sched. Tooltips
// that cannot be attached are skipped and reported to w.
func buildPage(w io.Writer, p *file.Page, sched driven.Scheduler) (*dom.Document, *services.Registry, error) {
	doc, err := dom.FromPage(p)
	if err != nil {
		return nil, nil, err
	}

	opts, err := p.Options()
	if err != nil {
		return nil, nil, err
	}

	reg := services.NewRegistry(doc, sched)
	n, err := reg.AttachAll(opts)
	if err != nil {
		for _, line := range strings.Split(err.Error(), "\n") {
			fmt.Fprintf(w, "warning: skipped %s\n", line)
		}
	}

	logger.Info("page %q: %d elements, %d of %d tooltips attached", p.Title, len(p.Elements), n, len(opts))
	return doc, reg, nil
}
