package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	PropertyRepo   PropertyRepositoryFacade
	TenantRepo     TenantRepositoryFacade
	InvoiceRepo    InvoiceRepositoryFacade
	PaymentRepo    PaymentRepositoryFacade
	ExpenseRepo    ExpenseRepositoryFacade
	CreditNoteRepo CreditNoteRepositoryFacade
	AuthUserRepo   AuthUserRepositoryFacade
	ProfileRepo    ProfileRepositoryFacade
}

// SeedWriter is every record writer, used when loading a dataset.
type SeedWriter interface {
	TransactionManager
	PropertyWriter
	TenantWriter
	InvoiceWriter
	PaymentWriter
	ExpenseWriter
	CreditNoteWriter
}
