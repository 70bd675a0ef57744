package models

import "github.com/shopspring/decimal"

// LineTotal is quantity × unitPrice in exact decimal arithmetic.
func LineTotal(quantity int, unitPrice float64) decimal.Decimal {
	return decimal.NewFromFloat(unitPrice).Mul(decimal.NewFromInt(int64(quantity)))
}

func (i OrderItem) Subtotal() decimal.Decimal {
	return LineTotal(i.Quantity, i.UnitPrice)
}

// Total is derived from the items, never stored.
func (o Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}
