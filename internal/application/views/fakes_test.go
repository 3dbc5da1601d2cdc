package views_test

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Activos-api/internal/application/views"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// fakeBackend servicio de datos en memoria con fallos y bloqueos inyectables por método.
type fakeBackend struct {
	mu         sync.Mutex
	categories []entity.Category
	assets     []entity.Asset
	calls      []string
	fail       map[string]error
	gate       map[string]chan struct{}
	entered    chan string
	nextID     int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		fail:    map[string]error{},
		gate:    map[string]chan struct{}{},
		entered: make(chan string, 32),
	}
}

func (f *fakeBackend) enter(ctx context.Context, method string) error {
	f.mu.Lock()
	f.calls = append(f.calls, method)
	err := f.fail[method]
	gate := f.gate[method]
	f.mu.Unlock()
	f.entered <- method
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", domain.ErrCanceled, ctx.Err())
		}
	}
	return err
}

func (f *fakeBackend) count(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == method {
			n++
		}
	}
	return n
}

func (f *fakeBackend) id(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s-%d", prefix, f.nextID)
}

func (f *fakeBackend) category(id string) (entity.Category, bool) {
	for _, c := range f.categories {
		if c.ID == id {
			return c, true
		}
	}
	return entity.Category{}, false
}

func (f *fakeBackend) ListCategories(ctx context.Context) ([]entity.Category, error) {
	if err := f.enter(ctx, "ListCategories"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.categories), nil
}

func (f *fakeBackend) GetCategory(ctx context.Context, id string) (entity.Category, error) {
	if err := f.enter(ctx, "GetCategory"); err != nil {
		return entity.Category{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.category(id)
	if !ok {
		return entity.Category{}, &domain.RemoteError{Status: 404, Kind: domain.ErrNotFound, Message: "recurso no encontrado"}
	}
	c.FieldDefinitions = slices.Clone(c.FieldDefinitions)
	return c, nil
}

func (f *fakeBackend) CreateCategory(ctx context.Context, name string) (entity.Category, error) {
	if err := f.enter(ctx, "CreateCategory"); err != nil {
		return entity.Category{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	c := entity.Category{ID: f.id("c"), Name: name}
	f.categories = append(f.categories, c)
	return c, nil
}

func (f *fakeBackend) DeleteCategory(ctx context.Context, id string) error {
	if err := f.enter(ctx, "DeleteCategory"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.categories = slices.DeleteFunc(f.categories, func(c entity.Category) bool { return c.ID == id })
	return nil
}

func (f *fakeBackend) AddFieldDefinition(ctx context.Context, categoryID, name string, kind entity.FieldKind) (entity.FieldDefinition, error) {
	if err := f.enter(ctx, "AddFieldDefinition"); err != nil {
		return entity.FieldDefinition{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	fd := entity.FieldDefinition{ID: f.id("f"), CategoryID: categoryID, Name: name, Kind: kind}
	for i := range f.categories {
		if f.categories[i].ID == categoryID {
			f.categories[i].FieldDefinitions = append(f.categories[i].FieldDefinitions, fd)
		}
	}
	return fd, nil
}

func (f *fakeBackend) RemoveFieldDefinition(ctx context.Context, fieldID string) error {
	if err := f.enter(ctx, "RemoveFieldDefinition"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.categories {
		f.categories[i].FieldDefinitions = slices.DeleteFunc(slices.Clone(f.categories[i].FieldDefinitions),
			func(fd entity.FieldDefinition) bool { return fd.ID == fieldID })
	}
	return nil
}

func (f *fakeBackend) ListAssets(ctx context.Context, categoryID string) ([]entity.Asset, error) {
	if err := f.enter(ctx, "ListAssets"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Asset
	for _, a := range f.assets {
		if a.CategoryID == categoryID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeBackend) GetAsset(ctx context.Context, id string) (entity.Asset, error) {
	if err := f.enter(ctx, "GetAsset"); err != nil {
		return entity.Asset{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.assets {
		if a.ID == id {
			return a, nil
		}
	}
	return entity.Asset{}, &domain.RemoteError{Status: 404, Kind: domain.ErrNotFound}
}

func (f *fakeBackend) CreateAsset(ctx context.Context, categoryID, patrimonio string, values []entity.FieldValue) (entity.Asset, error) {
	if err := f.enter(ctx, "CreateAsset"); err != nil {
		return entity.Asset{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	a := entity.Asset{ID: f.id("a"), CategoryID: categoryID, Patrimonio: patrimonio, FieldValues: values}
	f.assets = append(f.assets, a)
	return a, nil
}

func (f *fakeBackend) UpdateAsset(ctx context.Context, id, patrimonio string, values []entity.FieldValue) (entity.Asset, error) {
	if err := f.enter(ctx, "UpdateAsset"); err != nil {
		return entity.Asset{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.assets {
		if f.assets[i].ID == id {
			f.assets[i].Patrimonio = patrimonio
			f.assets[i].FieldValues = values
			return f.assets[i], nil
		}
	}
	return entity.Asset{}, &domain.RemoteError{Status: 404, Kind: domain.ErrNotFound}
}

func (f *fakeBackend) DeleteAsset(ctx context.Context, id string) error {
	if err := f.enter(ctx, "DeleteAsset"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.assets = slices.DeleteFunc(f.assets, func(a entity.Asset) bool { return a.ID == id })
	return nil
}

type event struct {
	dismissed bool
	n         views.Notification
}

// recorder Notifier que guarda todo lo que recibe.
type recorder struct {
	mu     sync.Mutex
	events []event
}

func (r *recorder) Notify(n views.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event{n: n})
}

func (r *recorder) Dismiss(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event{dismissed: true, n: views.Notification{Key: key}})
}

func (r *recorder) all() []event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.events)
}

// kinds resume los eventos como "pending", "success", "error" o "dismiss".
func (r *recorder) kinds() []string {
	var out []string
	for _, e := range r.all() {
		if e.dismissed {
			out = append(out, "dismiss")
			continue
		}
		out = append(out, e.n.Kind.String())
	}
	return out
}

func (r *recorder) last() views.Notification {
	ev := r.all()
	if len(ev) == 0 {
		return views.Notification{}
	}
	return ev[len(ev)-1].n
}

func newOrchestrator() (*views.Orchestrator, *recorder) {
	rec := &recorder{}
	return views.NewOrchestrator(rec, zerolog.Nop()), rec
}

// laptopsBackend backend con la categoría Laptops (Marca, Valor, Status) y dos activos.
func laptopsBackend() *fakeBackend {
	f := newFakeBackend()
	f.categories = []entity.Category{{
		ID:   "c-1",
		Name: "Laptops",
		FieldDefinitions: []entity.FieldDefinition{
			{ID: "f-marca", CategoryID: "c-1", Name: "Marca", Kind: entity.FieldKindText},
			{ID: "f-valor", CategoryID: "c-1", Name: "Valor", Kind: entity.FieldKindNumber},
			{ID: "f-status", CategoryID: "c-1", Name: "Status", Kind: entity.FieldKindText},
		},
	}}
	f.assets = []entity.Asset{
		{ID: "a-1", CategoryID: "c-1", Patrimonio: "Laptop-001", FieldValues: []entity.FieldValue{
			{FieldDefinitionID: "f-status", Value: "active"},
			{FieldDefinitionID: "f-marca", Value: "Dell"},
		}},
		{ID: "a-2", CategoryID: "c-1", Patrimonio: "Laptop-002"},
	}
	f.nextID = 100
	return f
}
