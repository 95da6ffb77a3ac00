package catalog

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fairyhunter13/inventory-task-simulator/internal/model"
	"github.com/fairyhunter13/inventory-task-simulator/internal/query"
)

// FormatPrice renders an amount in whole rupiah with Indonesian digit
// grouping, e.g. "Rp 15.000".
func FormatPrice(d decimal.Decimal) string {
	p := message.NewPrinter(language.Indonesian)
	n := d.Round(0).IntPart()
	if n < 0 {
		return "-Rp " + p.Sprintf("%d", -n)
	}
	return "Rp " + p.Sprintf("%d", n)
}

// FormatDate renders a timestamp as "Jul 15, 2024". The zero time renders empty.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// StockColor is the badge color of a stock status.
func StockColor(s model.StockStatus) string {
	switch s {
	case model.StockOut:
		return "#ef4444"
	case model.StockLow:
		return "#f59e0b"
	default:
		return "#10b981"
	}
}

var sortLabels = map[query.SortKey]string{
	query.SortLatest:    "Latest",
	query.SortOldest:    "Oldest",
	query.SortName:      "Name",
	query.SortPriceAsc:  "Price: Low to High",
	query.SortPriceDesc: "Price: High to Low",
}

// SortLabel is the picker text for k. Unknown keys render as-is.
func SortLabel(k query.SortKey) string {
	if l, ok := sortLabels[k]; ok {
		return l
	}
	return string(k)
}

// StatusLabel renders a task status for display, e.g. "in progress".
func StatusLabel(s model.Status) string {
	return strings.ReplaceAll(string(s), "-", " ")
}
