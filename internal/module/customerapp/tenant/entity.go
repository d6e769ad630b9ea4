package tenant

import (
	"time"

	"github.com/shopspring/decimal"
)

type Branding struct {
	PrimaryColor   string
	SecondaryColor string
	LogoURL        string
}

type PaymentConfig struct {
	Enabled            bool
	ServiceFeePercent  decimal.Decimal
	PaymentMethods     []string
	CancellationPolicy string
}

type ItemConfig struct {
	SingularLabel string
	PluralLabel   string
}

// Tenant is one organization on the platform, resolved once per request from
// its subdomain and treated as immutable afterwards.
type Tenant struct {
	ID            string
	Subdomain     string
	Name          string
	Branding      Branding
	PaymentConfig PaymentConfig
	ItemConfig    ItemConfig
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
