package handlers

import (
	"bytes"
	"io"
	"net/http"

	"github.com/Cheertaboi/coupon-feed-service/internal/observability"
	"github.com/Cheertaboi/coupon-feed-service/internal/service"
	logx "github.com/Cheertaboi/coupon-feed-service/pkg/logger"
)

// PageRenderer wraps a fragment into a full document.
type PageRenderer interface {
	RenderPage(w io.Writer, title, fragment string) error
}

type TableHandler struct {
	tables  *service.TableService
	pages   PageRenderer
	metrics *observability.Metrics
	title   string
}

func NewTableHandler(tables *service.TableService, pages PageRenderer, metrics *observability.Metrics, title string) *TableHandler {
	return &TableHandler{tables: tables, pages: pages, metrics: metrics, title: title}
}

// Fragment handles GET /coupons/table.
func (h *TableHandler) Fragment(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	state := h.tables.RenderTo(r.Context(), &buf)
	h.metrics.RenderTotal.WithLabelValues(string(state)).Inc()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// Page handles GET /coupons/page, a standalone preview of the fragment.
func (h *TableHandler) Page(w http.ResponseWriter, r *http.Request) {
	var frag bytes.Buffer
	state := h.tables.RenderTo(r.Context(), &frag)
	h.metrics.RenderTotal.WithLabelValues(string(state)).Inc()

	var page bytes.Buffer
	if err := h.pages.RenderPage(&page, h.title, frag.String()); err != nil {
		logx.Error().Err(err).Msg("failed to render coupon page")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = page.WriteTo(w)
}
