package ui

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/vulntor/wifiscan/pkg/config"
)

const indexFile = "index.html"

// NewHandler creates an HTTP handler for the scanner page assets.
//
// Operating modes:
//   - Disk mode (cfg.UI.AssetsPath set): serves files from that directory
//   - Embedded mode: serves the copy compiled into the binary
//
// "/" serves index.html; any other path serves the named file or 404.
func NewHandler(cfg config.ServerConfig) (http.Handler, error) {
	if cfg.UI.AssetsPath != "" {
		info, err := os.Stat(cfg.UI.AssetsPath)
		if err != nil {
			return nil, fmt.Errorf("ui assets path: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("ui assets path %s is not a directory", cfg.UI.AssetsPath)
		}

		log.Info().
			Str("component", "ui").
			Str("path", cfg.UI.AssetsPath).
			Msg("Serving UI from disk")

		return NewFSHandler(os.DirFS(cfg.UI.AssetsPath)), nil
	}

	stripped, err := fs.Sub(DistFS, "dist")
	if err != nil {
		return nil, fmt.Errorf("ui embedded assets: %w", err)
	}

	log.Info().
		Str("component", "ui").
		Msg("Serving UI from embedded assets")

	return NewFSHandler(stripped), nil
}

// NewFSHandler serves files from fsys.
func NewFSHandler(fsys fs.FS) http.Handler {
	return &staticHandler{fsys: fsys}
}

type staticHandler struct {
	fsys fs.FS
}

func (h *staticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := resolveName(r.URL.Path)

	f, err := h.fsys.Open(name)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, fs.ErrInvalid) {
			log.Warn().Str("component", "ui").Str("file", name).Err(err).Msg("Failed to open asset")
		} else {
			log.Debug().Str("component", "ui").Str("file", name).Msg("File not found")
		}
		http.NotFound(w, r)
		return
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	content, ok := f.(io.ReadSeeker)
	if !ok {
		log.Error().Str("component", "ui").Str("file", name).Msg("Asset is not seekable")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), content)
}

// resolveName maps a URL path to an fs.FS name. "/" maps to index.html.
func resolveName(urlPath string) string {
	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" {
		return indexFile
	}
	return name
}
