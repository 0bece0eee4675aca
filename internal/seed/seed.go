// Package seed holds the demo data set and loads it into a repository
// backend together with demo sign-in accounts.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/rental_management_app/internal/apperrors"
	"github.com/SscSPs/rental_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/rental_management_app/internal/utils"
	"github.com/go-playground/validator/v10"
)

// DemoPassword signs in every demo account.
const DemoPassword = "rentals-demo"

const (
	LandlordID    = "landlord-1"
	LandlordEmail = "landlord@demo.rentals"
	LandlordName  = "Demo Landlord"
)

// Dataset is one consistent set of records.
type Dataset struct {
	Properties  []domain.Property
	Tenants     []domain.Tenant
	Invoices    []domain.Invoice
	Payments    []domain.Payment
	Expenses    []domain.Expense
	CreditNotes []domain.CreditNote
}

// Demo returns a fresh copy of the demo records.
func Demo() Dataset {
	return Dataset{
		Properties:  properties(),
		Tenants:     tenants(),
		Invoices:    invoices(),
		Payments:    payments(),
		Expenses:    expenses(),
		CreditNotes: creditNotes(),
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

type selfValidating interface {
	Validate() error
}

func check[T selfValidating](kind string, rows []T, id func(T) string) error {
	seen := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		key := id(r)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%s %s: %w", kind, key, apperrors.ErrDuplicate)
		}
		seen[key] = struct{}{}
		if err := validate.Struct(r); err != nil {
			return fmt.Errorf("%s %s: %w", kind, key, toValidationError(err))
		}
		if err := r.Validate(); err != nil {
			return fmt.Errorf("%s %s: %w", kind, key, err)
		}
	}
	return nil
}

func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return apperrors.NewValidationError(verrs[0].Field(), fmt.Sprintf("failed %q check", verrs[0].Tag()))
	}
	return apperrors.NewValidationError("", err.Error())
}

// Validate checks struct tags, record rules, unique ids and every
// cross-record reference.
func (ds Dataset) Validate() error {
	if err := check("property", ds.Properties, func(p domain.Property) string { return p.ID }); err != nil {
		return err
	}
	if err := check("tenant", ds.Tenants, func(t domain.Tenant) string { return t.ID }); err != nil {
		return err
	}
	if err := check("invoice", ds.Invoices, func(i domain.Invoice) string { return i.ID }); err != nil {
		return err
	}
	if err := check("payment", ds.Payments, func(p domain.Payment) string { return p.ID }); err != nil {
		return err
	}
	if err := check("expense", ds.Expenses, func(e domain.Expense) string { return e.ID }); err != nil {
		return err
	}
	if err := check("credit note", ds.CreditNotes, func(c domain.CreditNote) string { return c.ID }); err != nil {
		return err
	}

	props := make(map[string]bool, len(ds.Properties))
	for _, p := range ds.Properties {
		props[p.ID] = true
	}
	tenantProp := make(map[string]string, len(ds.Tenants))
	for _, t := range ds.Tenants {
		if !props[t.PropertyID] {
			return dangling("tenant", t.ID, "propertyId", t.PropertyID)
		}
		tenantProp[t.ID] = t.PropertyID
	}
	invoiceTenant := make(map[string]string, len(ds.Invoices))
	for _, inv := range ds.Invoices {
		if _, ok := tenantProp[inv.TenantID]; !ok {
			return dangling("invoice", inv.ID, "tenantId", inv.TenantID)
		}
		if !props[inv.PropertyID] {
			return dangling("invoice", inv.ID, "propertyId", inv.PropertyID)
		}
		invoiceTenant[inv.ID] = inv.TenantID
	}
	for _, p := range ds.Payments {
		if _, ok := tenantProp[p.TenantID]; !ok {
			return dangling("payment", p.ID, "tenantId", p.TenantID)
		}
		if p.InvoiceID == "" {
			continue
		}
		owner, ok := invoiceTenant[p.InvoiceID]
		if !ok {
			return dangling("payment", p.ID, "invoiceId", p.InvoiceID)
		}
		if owner != p.TenantID {
			return fmt.Errorf("payment %s: %w", p.ID,
				apperrors.NewValidationError("tenantId", "does not match the invoice's tenant"))
		}
	}
	for _, e := range ds.Expenses {
		if !props[e.PropertyID] {
			return dangling("expense", e.ID, "propertyId", e.PropertyID)
		}
	}
	for _, c := range ds.CreditNotes {
		if _, ok := tenantProp[c.TenantID]; !ok {
			return dangling("credit note", c.ID, "tenantId", c.TenantID)
		}
	}
	return nil
}

func dangling(kind, id, field, ref string) error {
	return fmt.Errorf("%s %s: %w", kind, id, apperrors.NewValidationError(field, fmt.Sprintf("references unknown record %q", ref)))
}

// Load validates ds and writes every record through w.
func Load(ctx context.Context, w portsrepo.SeedWriter, ds Dataset, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	if err := ds.Validate(); err != nil {
		return fmt.Errorf("seed data is invalid: %w", err)
	}
	err := w.RunInTx(ctx, func(ctx context.Context) error {
		return write(ctx, w, ds)
	})
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "Seed data loaded",
		slog.Int("properties", len(ds.Properties)),
		slog.Int("tenants", len(ds.Tenants)),
		slog.Int("invoices", len(ds.Invoices)),
		slog.Int("payments", len(ds.Payments)),
		slog.Int("expenses", len(ds.Expenses)),
		slog.Int("credit_notes", len(ds.CreditNotes)))
	return nil
}

// write saves parents before children so foreign keys hold.
func write(ctx context.Context, w portsrepo.SeedWriter, ds Dataset) error {
	for _, p := range ds.Properties {
		if err := w.SaveProperty(ctx, p); err != nil {
			return fmt.Errorf("failed to save property %s: %w", p.ID, err)
		}
	}
	for _, t := range ds.Tenants {
		if err := w.SaveTenant(ctx, t); err != nil {
			return fmt.Errorf("failed to save tenant %s: %w", t.ID, err)
		}
	}
	for _, inv := range ds.Invoices {
		if err := w.SaveInvoice(ctx, inv); err != nil {
			return fmt.Errorf("failed to save invoice %s: %w", inv.ID, err)
		}
	}
	for _, p := range ds.Payments {
		if err := w.SavePayment(ctx, p); err != nil {
			return fmt.Errorf("failed to save payment %s: %w", p.ID, err)
		}
	}
	for _, e := range ds.Expenses {
		if err := w.SaveExpense(ctx, e); err != nil {
			return fmt.Errorf("failed to save expense %s: %w", e.ID, err)
		}
	}
	for _, c := range ds.CreditNotes {
		if err := w.SaveCreditNote(ctx, c); err != nil {
			return fmt.Errorf("failed to save credit note %s: %w", c.ID, err)
		}
	}
	return nil
}

// Account is a demo sign-in. Tenant accounts share the tenant record's id
// so a tenant's identity maps straight onto their records.
type Account struct {
	ID       string
	Email    string
	FullName string
	Role     domain.Role
}

// Accounts returns the landlord account followed by one account per tenant.
func Accounts(ds Dataset) []Account {
	out := make([]Account, 0, len(ds.Tenants)+1)
	out = append(out, Account{ID: LandlordID, Email: LandlordEmail, FullName: LandlordName, Role: domain.RoleLandlord})
	for _, t := range ds.Tenants {
		out = append(out, Account{ID: t.ID, Email: t.Email, FullName: t.Name, Role: domain.RoleTenant})
	}
	return out
}

// LoadAccounts creates the demo accounts with DemoPassword. Accounts that
// already exist are left untouched.
func LoadAccounts(ctx context.Context, users portsrepo.AuthUserRepositoryFacade, profiles portsrepo.ProfileRepositoryFacade, accounts []Account, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	hash, err := utils.HashPassword(DemoPassword)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	created := 0
	for _, acc := range accounts {
		if _, err := users.FindAuthUserByID(ctx, acc.ID); err == nil {
			continue
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("failed to look up account %s: %w", acc.ID, err)
		}
		user := domain.AuthUser{
			ID:            acc.ID,
			Email:         acc.Email,
			PasswordHash:  hash,
			AuthProvider:  domain.ProviderLocal,
			EmailVerified: true,
			CreatedAt:     now,
		}
		if err := users.SaveAuthUser(ctx, user); err != nil {
			return fmt.Errorf("failed to save account %s: %w", acc.ID, err)
		}
		profile := domain.Profile{ID: acc.ID, FullName: acc.FullName, Email: acc.Email, Role: string(acc.Role), CreatedAt: now, UpdatedAt: now}
		if err := profiles.SaveProfile(ctx, profile); err != nil {
			return fmt.Errorf("failed to save profile %s: %w", acc.ID, err)
		}
		created++
	}
	logger.InfoContext(ctx, "Demo accounts ready", slog.Int("created", created), slog.Int("total", len(accounts)))
	return nil
}
