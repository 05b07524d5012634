package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/auditlog"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/cashflow"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/config"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/gitops"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/ledger"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/planning"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/portfolio"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/storage"
)

// dataSubdir holds the JSON documents inside a project directory.
const dataSubdir = "data"

// app is the assembled service graph for one project directory.
type app struct {
	dir    string
	cfg    *config.Config
	store  *storage.FileStore
	logger *slog.Logger

	entries  *ledger.EntryStore
	registry *ledger.Registry
	recorder *ledger.Recorder

	cashflow    *cashflow.Service
	planning    *planning.Service
	properties  *portfolio.Properties
	tenants     *portfolio.Tenants
	maintenance *portfolio.Maintenance
	vendors     *portfolio.Vendors
}

// openApp loads an initialized project directory and wires the services.
func openApp(dir string) (*app, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfgPath := filepath.Join(absDir, "vgk.yaml")
	if _, err := os.Stat(cfgPath); err != nil {
		return nil, fmt.Errorf("%s is not a vgk project (run 'vgk init' first)", absDir)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	store, err := storage.NewFileStore(filepath.Join(absDir, dataSubdir))
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	entries := ledger.NewEntryStore(store)
	registry := ledger.NewRegistry(store, entries)
	recorder := ledger.NewRecorder(entries, registry, logger)

	accounts := portfolio.DesignatedAccounts{
		Cash:               cfg.Accounts.Cash,
		RentalIncome:       cfg.Accounts.RentalIncome,
		MaintenanceExpense: cfg.Accounts.MaintenanceExpense,
	}
	vendors := portfolio.NewVendors(store)

	return &app{
		dir:      absDir,
		cfg:      cfg,
		store:    store,
		logger:   logger,
		entries:  entries,
		registry: registry,
		recorder: recorder,
		cashflow: cashflow.NewService(store, registry, entries, cashflow.Prefixes{
			RentIncome:           cfg.Cashflow.RentIncomePrefixes,
			OtherIncome:          cfg.Cashflow.OtherIncomePrefixes,
			MaintenanceExpenses:  cfg.Cashflow.MaintenanceExpensePrefixes,
			OperatingExpenses:    cfg.Cashflow.OperatingExpensePrefixes,
			PropertyTaxInsurance: cfg.Cashflow.PropertyTaxInsurancePrefixes,
			ManagementFees:       cfg.Cashflow.ManagementFeePrefixes,
		}),
		planning:    planning.NewService(store),
		properties:  portfolio.NewProperties(store),
		tenants:     portfolio.NewTenants(store, recorder, registry, accounts),
		maintenance: portfolio.NewMaintenance(store, recorder, registry, vendors, accounts),
		vendors:     vendors,
	}, nil
}

// finish snapshots the project into git (when enabled) and appends an audit
// row. Both are best-effort; the books are already written.
func (a *app) finish(actor, action, entityID, details string) {
	var hash string
	if a.cfg.Git.AutoCommit {
		var err error
		hash, err = gitops.Snapshot(a.dir, action+": "+details, a.cfg.Git.AuthorName, a.cfg.Git.AuthorEmail)
		if err != nil {
			a.logger.Warn("git snapshot failed", "error", err)
		}
	}

	entry := auditlog.Entry{
		Timestamp:  time.Now(),
		Actor:      actor,
		Action:     action,
		EntityID:   entityID,
		Details:    details,
		CommitHash: hash,
	}
	if err := auditlog.Append(a.dir, []auditlog.Entry{entry}); err != nil {
		a.logger.Warn("audit log append failed", "error", err)
	}
}
