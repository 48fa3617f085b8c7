package repository

// Store agrupa los repositorios de un mismo backend (postgres, sqlite o memoria).
type Store struct {
	Products ProductRepository
	Entries  EntryRepository
	Exits    ExitRepository
	Expenses ExpenseRepository
	Users    UserRepository
	// Close libera el backend (pool, archivo). Nunca es nil.
	Close func()
}
