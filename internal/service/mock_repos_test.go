package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"planeacion/backend/internal/model"
	"planeacion/backend/internal/repository"
)

// ── Mock Repositories ──

type mockUnidadRepo struct {
	unidades map[int64]*model.UnidadAcademica
	usuarios *mockUsuarioRepo
	nextID   int64
}

func newMockUnidadRepo() *mockUnidadRepo {
	return &mockUnidadRepo{unidades: make(map[int64]*model.UnidadAcademica)}
}

// Create has no unique constraint on nombre, matching the schema.
func (m *mockUnidadRepo) Create(_ context.Context, u *model.UnidadAcademica) error {
	m.nextID++
	u.ID = m.nextID
	cp := *u
	m.unidades[u.ID] = &cp
	return nil
}

func (m *mockUnidadRepo) GetByID(_ context.Context, id int64) (*model.UnidadAcademica, error) {
	if u, ok := m.unidades[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUnidadRepo) GetByName(_ context.Context, nombre string) (*model.UnidadAcademica, error) {
	for _, u := range m.unidades {
		if u.Nombre == nombre {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUnidadRepo) List(_ context.Context, q string, offset, limit int) ([]model.UnidadAcademica, error) {
	ids := make([]int64, 0, len(m.unidades))
	for id := range m.unidades {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	q = strings.ToLower(strings.TrimSpace(q))
	all := make([]model.UnidadAcademica, 0)
	for _, id := range ids {
		u := m.unidades[id]
		abbr := ""
		if u.Abreviatura != nil {
			abbr = *u.Abreviatura
		}
		if q == "" || strings.Contains(strings.ToLower(u.Nombre), q) || strings.Contains(strings.ToLower(abbr), q) {
			all = append(all, *u)
		}
	}

	if offset >= len(all) {
		return []model.UnidadAcademica{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (m *mockUnidadRepo) Update(_ context.Context, u *model.UnidadAcademica) error {
	cp := *u
	m.unidades[u.ID] = &cp
	return nil
}

func (m *mockUnidadRepo) Delete(_ context.Context, id int64) (int64, error) {
	if _, ok := m.unidades[id]; !ok {
		return 0, nil
	}
	delete(m.unidades, id)
	return 1, nil
}

func (m *mockUnidadRepo) CountUsuarios(_ context.Context, id int64) (int64, error) {
	if m.usuarios == nil {
		return 0, nil
	}
	var n int64
	for _, u := range m.usuarios.byID {
		if u.UnidadID == id {
			n++
		}
	}
	return n, nil
}

type mockUsuarioRepo struct {
	byID     map[int64]*model.Usuario
	unidades *mockUnidadRepo
	nextID   int64
}

func newMockUsuarioRepo(unidades *mockUnidadRepo) *mockUsuarioRepo {
	return &mockUsuarioRepo{byID: make(map[int64]*model.Usuario), unidades: unidades}
}

func (m *mockUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	for _, existing := range m.byID {
		if existing.Email == u.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if _, ok := m.unidades.unidades[u.UnidadID]; !ok {
		return gorm.ErrForeignKeyViolated
	}
	m.nextID++
	u.ID = m.nextID
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	m.byID[u.ID] = u
	return nil
}

func (m *mockUsuarioRepo) GetByID(_ context.Context, id int64) (*model.Usuario, error) {
	if u, ok := m.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUsuarioRepo) GetByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range m.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUsuarioRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	return err == nil, nil
}

type mockPlaneacionRepo struct {
	plans  map[int64]*model.Planeacion
	nextID int64
}

func newMockPlaneacionRepo() *mockPlaneacionRepo {
	return &mockPlaneacionRepo{plans: make(map[int64]*model.Planeacion)}
}

func (m *mockPlaneacionRepo) Create(_ context.Context, p *model.Planeacion) error {
	m.nextID++
	p.ID = m.nextID
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	m.plans[p.ID] = &cp
	return nil
}

func (m *mockPlaneacionRepo) GetForOwner(_ context.Context, id, docenteID int64) (*model.Planeacion, error) {
	if p, ok := m.plans[id]; ok && p.DocenteID == docenteID {
		cp := *p
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPlaneacionRepo) ListByOwner(_ context.Context, docenteID int64) ([]model.Planeacion, error) {
	list := make([]model.Planeacion, 0)
	for _, p := range m.plans {
		if p.DocenteID == docenteID {
			list = append(list, *p)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list, nil
}

func (m *mockPlaneacionRepo) Update(_ context.Context, p *model.Planeacion) error {
	cp := *p
	m.plans[p.ID] = &cp
	return nil
}

func (m *mockPlaneacionRepo) DeleteForOwner(_ context.Context, id, docenteID int64) (int64, error) {
	if p, ok := m.plans[id]; ok && p.DocenteID == docenteID {
		delete(m.plans, id)
		return 1, nil
	}
	return 0, nil
}

type mockDatosGeneralesRepo struct {
	byPlan map[int64]*model.PlaneacionDatosGenerales
	plans  *mockPlaneacionRepo
	nextID int64
}

func newMockDatosGeneralesRepo(plans *mockPlaneacionRepo) *mockDatosGeneralesRepo {
	return &mockDatosGeneralesRepo{byPlan: make(map[int64]*model.PlaneacionDatosGenerales), plans: plans}
}

func (m *mockDatosGeneralesRepo) GetByPlaneacion(_ context.Context, planeacionID int64) (*model.PlaneacionDatosGenerales, error) {
	if d, ok := m.byPlan[planeacionID]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDatosGeneralesRepo) Upsert(_ context.Context, d *model.PlaneacionDatosGenerales) error {
	if _, ok := m.plans.plans[d.PlaneacionID]; !ok {
		return gorm.ErrForeignKeyViolated
	}
	now := time.Now()
	if existing, ok := m.byPlan[d.PlaneacionID]; ok {
		d.ID = existing.ID
		d.CreatedAt = existing.CreatedAt
	} else {
		m.nextID++
		d.ID = m.nextID
		d.CreatedAt = now
	}
	d.UpdatedAt = now
	cp := *d
	m.byPlan[d.PlaneacionID] = &cp
	return nil
}

// ── helpers ──

type mockRepos struct {
	unidades       *mockUnidadRepo
	usuarios       *mockUsuarioRepo
	planeaciones   *mockPlaneacionRepo
	datosGenerales *mockDatosGeneralesRepo
}

func newMockRepository() (*repository.Repository, *mockRepos) {
	unidades := newMockUnidadRepo()
	usuarios := newMockUsuarioRepo(unidades)
	unidades.usuarios = usuarios
	plans := newMockPlaneacionRepo()
	datos := newMockDatosGeneralesRepo(plans)

	repo := &repository.Repository{
		Usuario:        usuarios,
		Unidad:         unidades,
		Planeacion:     plans,
		DatosGenerales: datos,
	}
	return repo, &mockRepos{unidades: unidades, usuarios: usuarios, planeaciones: plans, datosGenerales: datos}
}

// fakeClock is a settable clock for expiry tests.
type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }
