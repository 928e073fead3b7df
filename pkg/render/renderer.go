package render

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"os/exec"
	"path"
	"path/filepath"
	"strings"

	"github.com/de-tools/scoop-report/pkg/models/api"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Options struct {
	// WkhtmltopdfPath locates the external PDF binary; PDF generation is
	// delegated entirely to it.
	WkhtmltopdfPath string
	// PhotoDir backs the photo refs when they are rewritten to file://
	// URLs for the PDF variant.
	PhotoDir string
}

type Renderer struct {
	tmpl    *template.Template
	pdfBin  string
	photoAb string
}

func NewRenderer(opts Options) (*Renderer, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"brl": FormatBRL,
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	photoAbs, err := filepath.Abs(opts.PhotoDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve photo directory: %w", err)
	}

	return &Renderer{
		tmpl:    tmpl,
		pdfBin:  opts.WkhtmltopdfPath,
		photoAb: photoAbs,
	}, nil
}

// HTML renders the dashboard page for a report snapshot.
func (r *Renderer) HTML(report api.Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "dashboard.html", report); err != nil {
		return nil, fmt.Errorf("failed to render dashboard: %w", err)
	}
	return buf.Bytes(), nil
}

// HTMLError renders the report-unavailable page with the diagnostic.
func (r *Renderer) HTMLError(message string) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "error.html", api.Error{Message: message}); err != nil {
		return nil, fmt.Errorf("failed to render error page: %w", err)
	}
	return buf.Bytes(), nil
}

// PDF renders the dashboard and pipes it through wkhtmltopdf. Photo refs
// are rewritten to file:// URLs since the binary resolves no server paths.
func (r *Renderer) PDF(ctx context.Context, report api.Report) ([]byte, error) {
	for i := range report.Photos {
		report.Photos[i].Before = r.fileURL(report.Photos[i].Before)
		report.Photos[i].After = r.fileURL(report.Photos[i].After)
	}

	page, err := r.HTML(report)
	if err != nil {
		return nil, err
	}

	args := []string{
		"--page-size", "A4",
		"--margin-top", "0.5in",
		"--margin-right", "0.5in",
		"--margin-bottom", "0.5in",
		"--margin-left", "0.5in",
		"--encoding", "UTF-8",
		"--no-outline",
		"--enable-local-file-access",
		"--quiet",
		"-", "-",
	}

	cmd := exec.CommandContext(ctx, r.pdfBin, args...)
	cmd.Stdin = bytes.NewReader(page)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("wkhtmltopdf failed: %w: %s", err, stderr.String())
	}
	return out.Bytes(), nil
}

func (r *Renderer) fileURL(ref string) string {
	if ref == "" {
		return ""
	}
	full := filepath.Join(r.photoAb, path.Base(ref))
	return "file:///" + strings.TrimPrefix(filepath.ToSlash(full), "/")
}
