package config

import "fmt"

type ServiceConfig struct {
	Name                string `yaml:"name"`
	Environment         string `yaml:"environment"`
	Version             string `yaml:"version"`
	ClientURL           string `yaml:"client_url"`
	StripeSecretKey     string `yaml:"stripe_secret_key"`
	StripeWebhookSecret string `yaml:"stripe_webhook_secret"`
	CheckoutSuccessURL  string `yaml:"checkout_success_url"`
	CheckoutCancelURL   string `yaml:"checkout_cancel_url"`
}

// Validate checks that secrets the service cannot run without are present.
// They are never defaulted in source.
func (c *ServiceConfig) Validate() error {
	if c.StripeSecretKey == "" {
		return fmt.Errorf("service.stripe_secret_key is required")
	}
	if c.StripeWebhookSecret == "" {
		return fmt.Errorf("service.stripe_webhook_secret is required")
	}
	return nil
}
