// Package constants holds shared domain-level constant values.
package constants

const (
	// EnvDevelop is the development environment name.
	EnvDevelop = "develop"
	// EnvProduction is the production environment name.
	EnvProduction = "production"

	// PubSubProviderLocal selects the local HTTP push publisher.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects the Google Cloud Pub/Sub publisher.
	PubSubProviderGoogle = "google"

	// PaymentMethodManual is the only payment method exposed; checkout is
	// simulated and marks the order paid immediately.
	PaymentMethodManual = "Manual Checkout"
	// PaymentStatusPaid is set on every order at creation.
	PaymentStatusPaid = "Paid"
)
