// Package memory is an in-process storage backend. It keeps records in
// insertion order and is the default driver for the demo data set.
package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/rental_management_app/internal/apperrors"
	"github.com/SscSPs/rental_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_management_app/internal/core/ports/repositories"
)

// table keeps rows in insertion order with an id index. Saving an existing
// id replaces the row in place.
type table[T any] struct {
	rows  []T
	index map[string]int
}

func newTable[T any]() *table[T] {
	return &table[T]{index: make(map[string]int)}
}

func (t *table[T]) put(id string, row T) {
	if i, ok := t.index[id]; ok {
		t.rows[i] = row
		return
	}
	t.index[id] = len(t.rows)
	t.rows = append(t.rows, row)
}

func (t *table[T]) get(id string) (T, bool) {
	i, ok := t.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return t.rows[i], true
}

func (t *table[T]) all() []T {
	return slices.Clone(t.rows)
}

func (t *table[T]) where(keep func(T) bool) []T {
	out := make([]T, 0)
	for _, r := range t.rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// Store implements every repository facade.
type Store struct {
	mu          sync.RWMutex
	properties  *table[domain.Property]
	tenants     *table[domain.Tenant]
	invoices    *table[domain.Invoice]
	payments    *table[domain.Payment]
	expenses    *table[domain.Expense]
	creditNotes *table[domain.CreditNote]
	users       *table[domain.AuthUser]
	profiles    *table[domain.Profile]
}

var (
	_ portsrepo.PropertyRepositoryFacade   = (*Store)(nil)
	_ portsrepo.TenantRepositoryFacade     = (*Store)(nil)
	_ portsrepo.InvoiceRepositoryFacade    = (*Store)(nil)
	_ portsrepo.PaymentRepositoryFacade    = (*Store)(nil)
	_ portsrepo.ExpenseRepositoryFacade    = (*Store)(nil)
	_ portsrepo.CreditNoteRepositoryFacade = (*Store)(nil)
	_ portsrepo.AuthUserRepositoryFacade   = (*Store)(nil)
	_ portsrepo.ProfileRepositoryFacade    = (*Store)(nil)
	_ portsrepo.SeedWriter                 = (*Store)(nil)
)

func NewStore() *Store {
	return &Store{
		properties:  newTable[domain.Property](),
		tenants:     newTable[domain.Tenant](),
		invoices:    newTable[domain.Invoice](),
		payments:    newTable[domain.Payment](),
		expenses:    newTable[domain.Expense](),
		creditNotes: newTable[domain.CreditNote](),
		users:       newTable[domain.AuthUser](),
		profiles:    newTable[domain.Profile](),
	}
}

// NewRepositoryProvider wires one Store into every repository slot.
func NewRepositoryProvider(s *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PropertyRepo:   s,
		TenantRepo:     s,
		InvoiceRepo:    s,
		PaymentRepo:    s,
		ExpenseRepo:    s,
		CreditNoteRepo: s,
		AuthUserRepo:   s,
		ProfileRepo:    s,
	}
}

// RunInTx runs fn directly. Each write is applied on its own.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// --- properties ---

func (s *Store) ListProperties(ctx context.Context) ([]domain.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.properties.all()
	slices.SortFunc(out, func(a, b domain.Property) int { return strings.Compare(a.ID, b.ID) })
	return out, nil
}

func (s *Store) FindPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.properties.get(propertyID)
	if !ok {
		return nil, fmt.Errorf("property %s: %w", propertyID, apperrors.ErrNotFound)
	}
	return &p, nil
}

func (s *Store) SaveProperty(ctx context.Context, property domain.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.properties.put(property.ID, property)
	return nil
}

// --- tenants ---

func (s *Store) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tenants.all(), nil
}

func (s *Store) ListTenantsByProperty(ctx context.Context, propertyID string) ([]domain.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tenants.where(func(t domain.Tenant) bool { return t.PropertyID == propertyID }), nil
}

func (s *Store) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tenants.get(tenantID)
	if !ok {
		return nil, fmt.Errorf("tenant %s: %w", tenantID, apperrors.ErrNotFound)
	}
	return &t, nil
}

func (s *Store) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tenants.put(tenant.ID, tenant)
	return nil
}

// --- invoices ---

func (s *Store) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.invoices.all(), nil
}

func (s *Store) ListInvoicesByTenant(ctx context.Context, tenantID string) ([]domain.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.invoices.where(func(i domain.Invoice) bool { return i.TenantID == tenantID }), nil
}

func (s *Store) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	invoice.LineItems = slices.Clone(invoice.LineItems)
	s.invoices.put(invoice.ID, invoice)
	return nil
}

// --- payments ---

func (s *Store) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.payments.all(), nil
}

func (s *Store) ListPaymentsByTenant(ctx context.Context, tenantID string) ([]domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.payments.where(func(p domain.Payment) bool { return p.TenantID == tenantID }), nil
}

func (s *Store) SavePayment(ctx context.Context, payment domain.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments.put(payment.ID, payment)
	return nil
}

// --- expenses ---

func (s *Store) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expenses.all(), nil
}

func (s *Store) ListExpensesByProperty(ctx context.Context, propertyID string) ([]domain.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expenses.where(func(e domain.Expense) bool { return e.PropertyID == propertyID }), nil
}

func (s *Store) SaveExpense(ctx context.Context, expense domain.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses.put(expense.ID, expense)
	return nil
}

// --- credit notes ---

func (s *Store) ListCreditNotes(ctx context.Context) ([]domain.CreditNote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creditNotes.all(), nil
}

func (s *Store) ListCreditNotesByTenant(ctx context.Context, tenantID string) ([]domain.CreditNote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creditNotes.where(func(c domain.CreditNote) bool { return c.TenantID == tenantID }), nil
}

func (s *Store) SaveCreditNote(ctx context.Context, note domain.CreditNote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creditNotes.put(note.ID, note)
	return nil
}

// --- auth users ---

func (s *Store) FindAuthUserByID(ctx context.Context, userID string) (*domain.AuthUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users.get(userID)
	if !ok {
		return nil, fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	return &u, nil
}

func (s *Store) FindAuthUserByEmail(ctx context.Context, email string) (*domain.AuthUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	found := s.users.where(func(u domain.AuthUser) bool { return strings.EqualFold(u.Email, email) })
	if len(found) == 0 {
		return nil, fmt.Errorf("user with email %s: %w", email, apperrors.ErrNotFound)
	}
	return &found[0], nil
}

func (s *Store) SaveAuthUser(ctx context.Context, user domain.AuthUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users.get(user.ID); ok {
		return apperrors.ErrDuplicate
	}
	dup := s.users.where(func(u domain.AuthUser) bool { return strings.EqualFold(u.Email, user.Email) })
	if len(dup) > 0 {
		return apperrors.ErrDuplicate
	}
	s.users.put(user.ID, user)
	return nil
}

func (s *Store) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users.get(userID)
	if !ok {
		return fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	u.RefreshTokenHash = refreshTokenHash
	u.RefreshTokenExpiryTime = &expiresAt
	s.users.put(userID, u)
	return nil
}

func (s *Store) ClearRefreshToken(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users.get(userID)
	if !ok {
		return fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	u.RefreshTokenHash = ""
	u.RefreshTokenExpiryTime = nil
	s.users.put(userID, u)
	return nil
}

// --- profiles ---

func (s *Store) FindProfileByID(ctx context.Context, userID string) (*domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles.get(userID)
	if !ok {
		return nil, fmt.Errorf("profile %s: %w", userID, apperrors.ErrNotFound)
	}
	return &p, nil
}

func (s *Store) SaveProfile(ctx context.Context, profile domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles.put(profile.ID, profile)
	return nil
}

func (s *Store) UpdateProfileRole(ctx context.Context, userID string, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles.get(userID)
	if !ok {
		return fmt.Errorf("profile %s: %w", userID, apperrors.ErrNotFound)
	}
	p.Role = role
	p.UpdatedAt = time.Now().UTC()
	s.profiles.put(userID, p)
	return nil
}
