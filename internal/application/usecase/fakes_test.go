package usecase_test

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// fakeProductRepo repositorio en memoria: Update/Delete devuelven filas afectadas sin verificar existencia.
type fakeProductRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]entity.Product
	err    error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{rows: map[int64]entity.Product{}}
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, domain.NewStorageError("insert product", r.err)
	}
	r.nextID++
	cp := *p
	cp.ID = r.nextID
	r.rows[cp.ID] = cp
	return cp.ID, nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, domain.NewStorageError("get product", r.err)
	}
	p, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, domain.NewStorageError("list products", r.err)
	}
	out := make([]*entity.Product, 0, len(r.rows))
	for _, p := range r.rows {
		cp := p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, domain.NewStorageError("update product", r.err)
	}
	if _, ok := r.rows[p.ID]; !ok {
		return 0, nil
	}
	r.rows[p.ID] = *p
	return 1, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, domain.NewStorageError("delete product", r.err)
	}
	if _, ok := r.rows[id]; !ok {
		return 0, nil
	}
	delete(r.rows, id)
	return 1, nil
}
