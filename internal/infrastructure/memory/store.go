// Package memory implementa los repositorios en memoria (demos y tests).
// Cada operación toma el mutex del almacén: inserciones y borrados son atómicos individualmente.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mluiza/controle-materiais/internal/domain"
	"github.com/mluiza/controle-materiais/internal/domain/entity"
	"github.com/mluiza/controle-materiais/internal/domain/repository"
)

// Store contiene las cinco colecciones.
type Store struct {
	mu       sync.Mutex
	now      func() time.Time
	products map[string]entity.Product
	entries  []entity.Entry
	exits    []entity.Exit
	expenses []entity.Expense
	users    map[string]entity.User
	seq      int64
}

// New construye un almacén vacío.
func New() *Store {
	return &Store{
		now:      time.Now,
		products: make(map[string]entity.Product),
		users:    make(map[string]entity.User),
	}
}

// Repositories expone el almacén como repository.Store.
func (s *Store) Repositories() *repository.Store {
	return &repository.Store{
		Products: ProductRepo{s},
		Entries:  EntryRepo{s},
		Exits:    ExitRepo{s},
		Expenses: ExpenseRepo{s},
		Users:    UserRepo{s},
		Close:    func() {},
	}
}

func (s *Store) nextID() int64 {
	s.seq++
	return s.seq
}

// newestFirst ordena por fecha descendente y, a igual fecha, por ID descendente.
func newestFirst[T any](items []T, date func(T) time.Time, id func(T) int64) []T {
	out := append([]T(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := date(out[i]), date(out[j])
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return id(out[i]) > id(out[j])
	})
	return out
}

func removeByID[T any](items []T, id int64, idOf func(T) int64) []T {
	out := items[:0]
	for _, it := range items {
		if idOf(it) != id {
			out = append(out, it)
		}
	}
	return out
}

var _ repository.ProductRepository = ProductRepo{}

// ProductRepo catálogo en memoria.
type ProductRepo struct{ s *Store }

func (r ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.Code]; ok {
		return domain.ErrDuplicate
	}
	r.s.products[p.Code] = *p
	return nil
}

func (r ProductRepo) GetByCode(_ context.Context, code string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[code]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r ProductRepo) List(_ context.Context) ([]entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r ProductRepo) DeleteByCode(_ context.Context, code string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.products, code)
	return nil
}

var _ repository.EntryRepository = EntryRepo{}

// EntryRepo entradas en memoria.
type EntryRepo struct{ s *Store }

func (r EntryRepo) Create(_ context.Context, e *entity.Entry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e.ID = r.s.nextID()
	e.RecordedAt = r.s.now()
	r.s.entries = append(r.s.entries, *e)
	return nil
}

func (r EntryRepo) List(_ context.Context) ([]entity.Entry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return newestFirst(r.s.entries,
		func(e entity.Entry) time.Time { return e.Date },
		func(e entity.Entry) int64 { return e.ID }), nil
}

func (r EntryRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.entries = removeByID(r.s.entries, id, func(e entity.Entry) int64 { return e.ID })
	return nil
}

var _ repository.ExitRepository = ExitRepo{}

// ExitRepo salidas en memoria.
type ExitRepo struct{ s *Store }

func (r ExitRepo) Create(_ context.Context, x *entity.Exit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	x.ID = r.s.nextID()
	x.RecordedAt = r.s.now()
	r.s.exits = append(r.s.exits, *x)
	return nil
}

func (r ExitRepo) List(_ context.Context) ([]entity.Exit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return newestFirst(r.s.exits,
		func(x entity.Exit) time.Time { return x.Date },
		func(x entity.Exit) int64 { return x.ID }), nil
}

func (r ExitRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.exits = removeByID(r.s.exits, id, func(x entity.Exit) int64 { return x.ID })
	return nil
}

var _ repository.ExpenseRepository = ExpenseRepo{}

// ExpenseRepo gastos en memoria.
type ExpenseRepo struct{ s *Store }

func (r ExpenseRepo) Create(_ context.Context, g *entity.Expense) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	g.ID = r.s.nextID()
	g.RecordedAt = r.s.now()
	r.s.expenses = append(r.s.expenses, *g)
	return nil
}

func (r ExpenseRepo) List(_ context.Context) ([]entity.Expense, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return newestFirst(r.s.expenses,
		func(g entity.Expense) time.Time { return g.Date },
		func(g entity.Expense) int64 { return g.ID }), nil
}

func (r ExpenseRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.expenses = removeByID(r.s.expenses, id, func(g entity.Expense) int64 { return g.ID })
	return nil
}

var _ repository.UserRepository = UserRepo{}

// UserRepo usuarios en memoria.
type UserRepo struct{ s *Store }

func (r UserRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.Username]; ok {
		return domain.ErrDuplicate
	}
	u.ID = r.s.nextID()
	u.CreatedAt = r.s.now()
	r.s.users[u.Username] = *u
	return nil
}

func (r UserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r UserRepo) Count(_ context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.users), nil
}
