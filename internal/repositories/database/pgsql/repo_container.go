package pgsql

import (
	portsrepo "github.com/SscSPs/rental_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the Postgres backend. Every repository shares one pool so a
// transaction started by RunInTx spans them all.
type Store struct {
	BaseRepository
	*PgxPropertyRepository
	*PgxTenantRepository
	*PgxInvoiceRepository
	*PgxPaymentRepository
	*PgxExpenseRepository
	*PgxCreditNoteRepository
	*PgxUserRepository
}

var _ portsrepo.SeedWriter = (*Store)(nil)

func NewStore(dbPool *pgxpool.Pool) *Store {
	base := BaseRepository{Pool: dbPool}
	return &Store{
		BaseRepository:          base,
		PgxPropertyRepository:   &PgxPropertyRepository{BaseRepository: base},
		PgxTenantRepository:     &PgxTenantRepository{BaseRepository: base},
		PgxInvoiceRepository:    &PgxInvoiceRepository{BaseRepository: base},
		PgxPaymentRepository:    &PgxPaymentRepository{BaseRepository: base},
		PgxExpenseRepository:    &PgxExpenseRepository{BaseRepository: base},
		PgxCreditNoteRepository: &PgxCreditNoteRepository{BaseRepository: base},
		PgxUserRepository:       &PgxUserRepository{BaseRepository: base},
	}
}

func NewRepositoryProvider(s *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PropertyRepo:   s.PgxPropertyRepository,
		TenantRepo:     s.PgxTenantRepository,
		InvoiceRepo:    s.PgxInvoiceRepository,
		PaymentRepo:    s.PgxPaymentRepository,
		ExpenseRepo:    s.PgxExpenseRepository,
		CreditNoteRepo: s.PgxCreditNoteRepository,
		AuthUserRepo:   s.PgxUserRepository,
		ProfileRepo:    s.PgxUserRepository,
	}
}
