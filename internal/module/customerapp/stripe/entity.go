package stripe

// Customer is the processor-side customer record, matched by email so repeat
// visitors reuse one record.
type Customer struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type customerList struct {
	Data []Customer `json:"data"`
}

// Price is a one-time-use priced line item. UnitAmount is in the currency's
// minor unit.
type Price struct {
	ID         string            `json:"id"`
	Product    string            `json:"product"`
	UnitAmount int64             `json:"unit_amount"`
	Currency   string            `json:"currency"`
	Metadata   map[string]string `json:"metadata"`
}

// CheckoutSession is the hosted payment flow instance. Its lifecycle is
// fully owned by the processor; this system only creates it and reads it
// back on completion.
type CheckoutSession struct {
	ID            string            `json:"id"`
	URL           string            `json:"url"`
	Status        string            `json:"status"`
	PaymentStatus string            `json:"payment_status"`
	AmountTotal   int64             `json:"amount_total"`
	Customer      string            `json:"customer"`
	Metadata      map[string]string `json:"metadata"`
}

type apiError struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type CreateCustomerRequest struct {
	Email    string
	Name     string
	Phone    string
	Metadata map[string]string
}

type CreatePriceRequest struct {
	ProductName string
	UnitAmount  int64
	Currency    string
	Metadata    map[string]string
}

type CreateCheckoutSessionRequest struct {
	CustomerID string
	PriceID    string
	Quantity   int64
	SuccessURL string
	CancelURL  string
	Metadata   map[string]string
}
