package analytics

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mluiza/controle-materiais/internal/domain/entity"
	"github.com/mluiza/controle-materiais/internal/domain/repository"
)

// snapshot colecciones completas leídas en una misma interacción.
type snapshot struct {
	products []entity.Product
	entries  []entity.Entry
	exits    []entity.Exit
	expenses []entity.Expense
}

// loadSnapshot lee las cuatro colecciones en paralelo. Cada lectura es atómica por separado.
func loadSnapshot(ctx context.Context, store *repository.Store) (*snapshot, error) {
	var s snapshot
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		s.products, err = store.Products.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		s.entries, err = store.Entries.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		s.exits, err = store.Exits.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		s.expenses, err = store.Expenses.List(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &s, nil
}
