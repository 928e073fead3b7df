package report

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/de-tools/scoop-report/pkg/adapters"
	"github.com/de-tools/scoop-report/pkg/models/api"
	"github.com/de-tools/scoop-report/pkg/render"
	reportsvc "github.com/de-tools/scoop-report/pkg/services/report"
)

type Handler struct {
	generator reportsvc.Generator
	renderer  *render.Renderer
}

func NewHandler(generator reportsvc.Generator, renderer *render.Renderer) *Handler {
	return &Handler{
		generator: generator,
		renderer:  renderer,
	}
}

// GetReport returns the full snapshot as JSON. A failed run yields the
// error payload with the diagnostic, never a partial report.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	snapshot, err := h.generator.Generate(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("report generation failed")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(api.Error{Message: err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapReportDomainToApi(snapshot)); err != nil {
		logger.Error().Err(err).Msg("failed to encode report")
	}
}

// Dashboard renders the HTML report page, or the diagnostic page when the
// pipeline could not run.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	snapshot, err := h.generator.Generate(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("report generation failed")
		page, renderErr := h.renderer.HTMLError(err.Error())
		if renderErr != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(page)
		return
	}

	page, err := h.renderer.HTML(adapters.MapReportDomainToApi(snapshot))
	if err != nil {
		logger.Error().Err(err).Msg("failed to render dashboard")
		http.Error(w, "failed to render dashboard", http.StatusInternalServerError)
		return
	}
	_, _ = w.Write(page)
}

// DownloadPDF streams the report through wkhtmltopdf as an attachment.
func (h *Handler) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	snapshot, err := h.generator.Generate(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("report generation failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	pdf, err := h.renderer.PDF(ctx, adapters.MapReportDomainToApi(snapshot))
	if err != nil {
		logger.Error().Err(err).Msg("pdf rendering failed")
		http.Error(w, "failed to render PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename=Relatorio_Semanal.pdf`)
	_, _ = w.Write(pdf)
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
