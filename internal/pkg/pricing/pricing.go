package pricing

import (
	"net/http"

	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/errors"
	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/status"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Breakdown carries the charge amounts for a reservation. All values are
// rounded to 2 decimal places; the charge amount is always Total.
type Breakdown struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Fee      decimal.Decimal `json:"fee"`
	Total    decimal.Decimal `json:"total"`
}

// Calculate computes subtotal, service fee and total from the item snapshot.
// Intermediates stay exact; rounding happens once at the end so the client
// display and the server charge computation can never drift apart.
func Calculate(unitPrice decimal.Decimal, seatCount int64, feePercent decimal.Decimal) (Breakdown, error) {
	if unitPrice.IsNegative() {
		return Breakdown{}, errors.New(http.StatusBadRequest, status.BAD_REQUEST, "unit price must not be negative")
	}

	if seatCount < 1 {
		return Breakdown{}, errors.New(http.StatusBadRequest, status.BAD_REQUEST, "seat count must be at least 1")
	}

	if feePercent.IsNegative() {
		return Breakdown{}, errors.New(http.StatusBadRequest, status.BAD_REQUEST, "service fee percent must not be negative")
	}

	subtotal := unitPrice.Mul(decimal.NewFromInt(seatCount))
	fee := subtotal.Mul(feePercent).Div(oneHundred)
	total := subtotal.Add(fee)

	return Breakdown{
		Subtotal: subtotal.Round(2),
		Fee:      fee.Round(2),
		Total:    total.Round(2),
	}, nil
}
