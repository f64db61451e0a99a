package model

// Settings is the single process-wide configuration value, stored inside
// the snapshot and persisted on every change. Older snapshots missing newer
// fields pick up the defaults on load.
type Settings struct {
	BusinessName    string  `json:"businessName"`
	BusinessEmail   string  `json:"businessEmail,omitempty"`
	BusinessPhone   string  `json:"businessPhone,omitempty"`
	BusinessAddress string  `json:"businessAddress,omitempty"`
	AccentColor     string  `json:"accentColor"`
	CurrencySymbol  string  `json:"currencySymbol"`
	TaxRate         float64 `json:"taxRate"`      // federal, percent
	StateTaxRate    float64 `json:"stateTaxRate"` // percent
	FilingStatus    string  `json:"filingStatus"`
	InvoicePrefix   string  `json:"invoicePrefix"`
	EstimatePrefix  string  `json:"estimatePrefix"`
	InvoiceNotes    string  `json:"invoiceNotes,omitempty"`
	InvoiceTerms    string  `json:"invoiceTerms,omitempty"`
}

// DefaultSettings returns the hardcoded defaults merged under any loaded
// snapshot.
func DefaultSettings() Settings {
	return Settings{
		AccentColor:    "#3b82f6",
		CurrencySymbol: "$",
		TaxRate:        15,
		StateTaxRate:   0,
		FilingStatus:   "single",
		InvoicePrefix:  "INV",
		EstimatePrefix: "EST",
		InvoiceTerms:   "Payment due within 14 days.",
	}
}
