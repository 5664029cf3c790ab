// Package render turns a derived coupon table into an embeddable HTML
// fragment: a fixed column block, a scrollable date block and a mobile block,
// with inline styles and the copy/scroll script. All feed text is escaped by
// html/template according to its context (text, URL attribute, JS argument).
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/Cheertaboi/coupon-feed-service/internal/service"
	"github.com/Cheertaboi/coupon-feed-service/pkg/money"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// EmptyMessage is shown when no coupon rows are available.
const EmptyMessage = "現在のクーポン情報がありません。"

var (
	FixedHeaders  = []string{"クーポン", "注文額", "割引額", "割引率"}
	MobileHeaders = []string{"クーポン", "注文額", "割引額", "割引率", "有効期限"}
)

type Renderer struct {
	tmpl  *template.Template
	icons Icons
}

func New(icons Icons) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl, icons: icons}, nil
}

type couponCell struct {
	Code string
	URL  string
	Icon template.HTML
}

type rowView struct {
	DesktopCell   couponCell
	MobileCell    couponCell
	OrderPrice    string
	DiscountPrice string
	Discount      string
	High          bool
	DateCells     []string
	ValidPeriod   string
}

type tableView struct {
	Banner        string
	FixedHeaders  []string
	DateHeaders   []string
	MobileHeaders []string
	Rows          []rowView
}

func (r *Renderer) RenderTable(w io.Writer, t *service.Table) error {
	view := tableView{
		Banner:        t.Banner,
		FixedHeaders:  FixedHeaders,
		DateHeaders:   t.DateHeaders,
		MobileHeaders: MobileHeaders,
		Rows:          make([]rowView, 0, len(t.Rows)),
	}
	for _, row := range t.Rows {
		view.Rows = append(view.Rows, rowView{
			DesktopCell:   couponCell{Code: row.Item.Coupon, URL: row.Item.CouponURL, Icon: r.icons.For(false)},
			MobileCell:    couponCell{Code: row.Item.Coupon, URL: row.Item.CouponURL, Icon: r.icons.For(true)},
			OrderPrice:    money.Display(row.Item.OrderPrice),
			DiscountPrice: money.Display(row.Item.DiscountPrice),
			Discount:      row.Discount.Formatted,
			High:          row.Discount.IsHigh,
			DateCells:     row.DateCells,
			ValidPeriod:   row.ValidPeriod,
		})
	}
	return r.tmpl.ExecuteTemplate(w, "table", view)
}

func (r *Renderer) RenderEmpty(w io.Writer) error {
	return r.tmpl.ExecuteTemplate(w, "empty", EmptyMessage)
}

// RenderPage wraps an already rendered fragment in a standalone document.
func (r *Renderer) RenderPage(w io.Writer, title, fragment string) error {
	return r.tmpl.ExecuteTemplate(w, "page", struct {
		Title string
		Body  template.HTML
	}{
		Title: title,
		// fragment was produced by this renderer and is already escaped.
		Body: template.HTML(fragment),
	})
}

var _ service.TableRenderer = (*Renderer)(nil)
