// Package config reads and writes vgk.yaml, the project configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level vgk.yaml configuration.
type Config struct {
	Business Business `yaml:"business"`
	Accounts Accounts `yaml:"accounts"`
	Cashflow Cashflow `yaml:"cashflow"`
	Tenancy  Tenancy  `yaml:"tenancy"`
	Git      Git      `yaml:"git"`
}

// Business identifies the managing entity.
type Business struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"`
}

// Accounts designates the chart-of-accounts codes used when posting the
// built-in business events.
type Accounts struct {
	Cash               string `yaml:"cash"`
	RentalIncome       string `yaml:"rental_income"`
	MaintenanceExpense string `yaml:"maintenance_expense"`
}

// Cashflow maps each forecast line to the account-number prefixes whose
// ledger entries feed its actual figure.
type Cashflow struct {
	RentIncomePrefixes           []string `yaml:"rent_income_prefixes"`
	OtherIncomePrefixes          []string `yaml:"other_income_prefixes"`
	MaintenanceExpensePrefixes   []string `yaml:"maintenance_expense_prefixes"`
	OperatingExpensePrefixes     []string `yaml:"operating_expense_prefixes"`
	PropertyTaxInsurancePrefixes []string `yaml:"property_tax_insurance_prefixes"`
	ManagementFeePrefixes        []string `yaml:"management_fee_prefixes"`
}

// Tenancy controls payment-status derivation.
type Tenancy struct {
	OverdueAfterDays int `yaml:"overdue_after_days"`
}

// Git controls git snapshots of the data directory.
type Git struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a vgk.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(businessName string) *Config {
	return &Config{
		Business: Business{
			Name:     businessName,
			Currency: "UGX",
		},
		Accounts: Accounts{
			Cash:               "1000",
			RentalIncome:       "4000",
			MaintenanceExpense: "5000",
		},
		Cashflow: Cashflow{
			RentIncomePrefixes:           []string{"4000"},
			OtherIncomePrefixes:          []string{"4100", "4200"},
			MaintenanceExpensePrefixes:   []string{"5000"},
			OperatingExpensePrefixes:     []string{"5100", "5500"},
			PropertyTaxInsurancePrefixes: []string{"5200", "5300"},
			ManagementFeePrefixes:        []string{"5400"},
		},
		Tenancy: Tenancy{
			OverdueAfterDays: 30,
		},
		Git: Git{
			AutoCommit:  true,
			AuthorName:  "VGK Books",
			AuthorEmail: "books@vgk.local",
		},
	}
}
