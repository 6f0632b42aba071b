package cart

import (
	"fmt"
	"strings"

	"storefront/internal/catalog"
	"storefront/internal/models"
)

// FallbackCurrency is used when no cart line resolves to a catalog entry.
const FallbackCurrency = "AED"

// EnrichedRow joins a cart line with its catalog data. Product and Variant
// are nil when the catalog no longer carries them; the row is still rendered
// so the cart never silently shrinks.
type EnrichedRow struct {
	Item    models.CartItem
	Product *models.Product
	Variant *models.Variant
}

// UnitPrice resolves variant override, then product price, then zero.
func (r EnrichedRow) UnitPrice() int64 {
	if r.Variant != nil && r.Variant.Price != nil {
		return *r.Variant.Price
	}
	if r.Product != nil {
		return r.Product.Price
	}
	return 0
}

func (r EnrichedRow) LineTotal() int64 {
	return r.UnitPrice() * int64(r.Item.Quantity)
}

// Enrich produces one row per cart line, same order.
func Enrich(items []models.CartItem, cat *catalog.Catalog) []EnrichedRow {
	rows := make([]EnrichedRow, 0, len(items))
	for _, it := range items {
		p := cat.FindProduct(it.ProductID)
		rows = append(rows, EnrichedRow{
			Item:    it,
			Product: p,
			Variant: cat.FindVariant(p, it.VariantID),
		})
	}
	return rows
}

func ComputeTotal(rows []EnrichedRow) int64 {
	var total int64
	for _, r := range rows {
		total += r.LineTotal()
	}
	return total
}

// ResolveDisplayCurrency picks the currency of the first row with a resolved
// catalog entry.
func ResolveDisplayCurrency(rows []EnrichedRow) string {
	for _, r := range rows {
		if r.Product != nil {
			return r.Product.Currency
		}
	}
	return FallbackCurrency
}

// FormatAmount renders whole currency units with no fraction digits.
func FormatAmount(currency string, amount int64) string {
	return fmt.Sprintf("%s %d", currency, amount)
}

// LineItemsSummary builds the human-readable order summary sent to the
// relay, one line per resolvable row.
func LineItemsSummary(rows []EnrichedRow, currency string) string {
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		if r.Product == nil {
			continue
		}
		parts := []string{r.Product.Name}
		if r.Variant != nil && r.Variant.Name != "" {
			parts = append(parts, "("+r.Variant.Name+")")
		}
		if r.Product.SKU != "" {
			parts = append(parts, "SKU: "+r.Product.SKU)
		}
		lines = append(lines, fmt.Sprintf("%s — Qty %d — Unit %s — Subtotal %s",
			strings.Join(parts, " "),
			r.Item.Quantity,
			FormatAmount(currency, r.UnitPrice()),
			FormatAmount(currency, r.LineTotal()),
		))
	}
	return strings.Join(lines, "\n")
}
