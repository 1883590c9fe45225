package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNoConverter is returned by [ToPDF] when rsvg-convert is not installed.
var ErrNoConverter = errors.New("rsvg-convert not found (install librsvg: brew install librsvg, apt install librsvg2-bin)")

// pdfConverter is the executable ToPDF pipes the SVG document through.
var pdfConverter = "rsvg-convert"

// ToPDF turns an SVG document produced by [SVG.Bytes] into a single-page
// PDF of the same size. The conversion runs rsvg-convert and stops when ctx
// is canceled.
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	path, err := exec.LookPath(pdfConverter)
	if err != nil {
		return nil, ErrNoConverter
	}

	cmd := exec.CommandContext(ctx, path, "--format", "pdf")
	cmd.Stdin = bytes.NewReader(svg)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s: %w: %s", pdfConverter, err, msg)
		}
		return nil, fmt.Errorf("%s: %w", pdfConverter, err)
	}
	return out.Bytes(), nil
}
