package models

// SystemConfig is the singleton branding and messaging record. The
// billing template carries {name}, {plan}, {days} and {amount} tokens
// substituted at message-generation time.
type SystemConfig struct {
	LogoURL         string `json:"logoUrl"`
	SystemName      string `json:"systemName"`
	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor"`
	BillingTemplate string `json:"billingTemplate"`
}

// DefaultSystemConfig returns the branding used before an operator
// customises anything.
func DefaultSystemConfig() SystemConfig {
	return SystemConfig{
		SystemName:      "Manager Pro",
		PrimaryColor:    "#7c3aed",
		SecondaryColor:  "#a855f7",
		BillingTemplate: "Hello {name}! Your {plan} plan is due in {days} days. Amount: R$ {amount}. Renew now!",
	}
}
