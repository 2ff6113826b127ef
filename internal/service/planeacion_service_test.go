package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"planeacion/backend/internal/dto"
	"planeacion/backend/internal/model"
)

func setupTestPlaneacionService() (PlaneacionService, *fakeClock) {
	repo, _ := newMockRepository()
	clock := &fakeClock{t: testEpoch}
	return NewPlaneacionService(repo, zap.NewNop(), clock.Now), clock
}

var (
	ana  = &model.Usuario{ID: 1, UnidadID: 10, Role: model.RoleProfesor, IsActive: true}
	luis = &model.Usuario{ID: 2, UnidadID: 20, Role: model.RoleProfesor, IsActive: true}
)

func TestPlaneacionCreate_Defaults(t *testing.T) {
	svc, _ := setupTestPlaneacionService()

	p, err := svc.Create(context.Background(), ana, &dto.CreatePlaneacionRequest{NombrePlaneacion: "   "})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if p.NombrePlaneacion != "Planeación sin título" {
		t.Errorf("expected placeholder name, got %q", p.NombrePlaneacion)
	}
	if p.DocenteID != ana.ID || p.UnidadAcademicaID != ana.UnidadID {
		t.Errorf("plan should belong to caller and caller's unidad: %+v", p)
	}
	if p.Status != "borrador" {
		t.Errorf("expected borrador, got %q", p.Status)
	}
	if p.FinalizadaAt != nil {
		t.Error("new plan must not be finalised")
	}
}

func TestPlaneacion_OwnerScoping(t *testing.T) {
	svc, _ := setupTestPlaneacionService()
	ctx := context.Background()

	p, _ := svc.Create(ctx, ana, &dto.CreatePlaneacionRequest{NombrePlaneacion: "Cálculo I"})

	if _, err := svc.Get(ctx, luis, p.ID); !errors.Is(err, ErrPlaneacionNotFound) {
		t.Errorf("foreign get: expected ErrPlaneacionNotFound, got %v", err)
	}
	if _, err := svc.Update(ctx, luis, p.ID, &dto.UpdatePlaneacionRequest{Grupo: strPtr("1CM1")}); !errors.Is(err, ErrPlaneacionNotFound) {
		t.Errorf("foreign update: expected ErrPlaneacionNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, luis, p.ID); !errors.Is(err, ErrPlaneacionNotFound) {
		t.Errorf("foreign delete: expected ErrPlaneacionNotFound, got %v", err)
	}

	list, _ := svc.List(ctx, luis)
	if len(list) != 0 {
		t.Errorf("luis should see no plans, got %d", len(list))
	}
	list, _ = svc.List(ctx, ana)
	if len(list) != 1 {
		t.Errorf("ana should see her plan, got %d", len(list))
	}

	if err := svc.Delete(ctx, ana, p.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, err := svc.Get(ctx, ana, p.ID); !errors.Is(err, ErrPlaneacionNotFound) {
		t.Errorf("deleted plan should be gone, got %v", err)
	}
}

func TestPlaneacionUpdate_StatusStampsFinalizadaAt(t *testing.T) {
	svc, clock := setupTestPlaneacionService()
	ctx := context.Background()

	p, _ := svc.Create(ctx, ana, &dto.CreatePlaneacionRequest{NombrePlaneacion: "Álgebra"})

	clock.Advance(time.Hour)
	final, err := svc.Update(ctx, ana, p.ID, &dto.UpdatePlaneacionRequest{Status: strPtr("finalizada")})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if final.FinalizadaAt == nil || !final.FinalizadaAt.Equal(clock.Now()) {
		t.Errorf("expected finalizada_at %v, got %v", clock.Now(), final.FinalizadaAt)
	}
	if final.NombrePlaneacion != "Álgebra" {
		t.Error("untouched fields must be preserved")
	}

	back, err := svc.Update(ctx, ana, p.ID, &dto.UpdatePlaneacionRequest{Status: strPtr("borrador")})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if back.FinalizadaAt != nil {
		t.Error("reverting to borrador clears finalizada_at")
	}
}

// ── general data ──

func TestDatosGenerales_EmptyThenSaved(t *testing.T) {
	repo, mocks := newMockRepository()
	svc := NewPlaneacionService(repo, zap.NewNop(), time.Now)
	ctx := context.Background()

	p, _ := svc.Create(ctx, ana, &dto.CreatePlaneacionRequest{NombrePlaneacion: "Cálculo I"})

	empty, err := svc.GetDatosGenerales(ctx, ana, p.ID)
	if err != nil {
		t.Fatalf("GetDatosGenerales failed: %v", err)
	}
	if empty.ID != nil || empty.Asignatura != nil || empty.PlaneacionID != p.ID {
		t.Errorf("expected empty view for plan %d, got %+v", p.ID, empty)
	}

	saved, err := svc.SaveDatosGenerales(ctx, ana, p.ID, &dto.DatosGeneralesRequest{
		Asignatura: strPtr("  Cálculo Diferencial "),
		Grupo:      strPtr("1CM1"),
		Proposito:  strPtr("   "),
	})
	if err != nil {
		t.Fatalf("SaveDatosGenerales failed: %v", err)
	}
	if saved.ID == nil || *saved.Asignatura != "Cálculo Diferencial" || *saved.Grupo != "1CM1" {
		t.Errorf("unexpected saved view %+v", saved)
	}
	if saved.Proposito != nil {
		t.Error("blank fields are stored as null")
	}
	firstID := *saved.ID

	// A second save replaces the whole row in place.
	again, err := svc.SaveDatosGenerales(ctx, ana, p.ID, &dto.DatosGeneralesRequest{Periodo: strPtr("2026-1")})
	if err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	if *again.ID != firstID {
		t.Errorf("expected same row %d, got %d", firstID, *again.ID)
	}
	if again.Asignatura != nil || again.Grupo != nil || *again.Periodo != "2026-1" {
		t.Errorf("omitted fields must be cleared, got %+v", again)
	}
	if len(mocks.datosGenerales.byPlan) != 1 {
		t.Errorf("expected one row, found %d", len(mocks.datosGenerales.byPlan))
	}

	got, _ := svc.GetDatosGenerales(ctx, ana, p.ID)
	if got.ID == nil || *got.Periodo != "2026-1" {
		t.Errorf("get after save returned %+v", got)
	}
}

func TestDatosGenerales_OwnerScoping(t *testing.T) {
	repo, mocks := newMockRepository()
	svc := NewPlaneacionService(repo, zap.NewNop(), time.Now)
	ctx := context.Background()

	p, _ := svc.Create(ctx, ana, &dto.CreatePlaneacionRequest{NombrePlaneacion: "Cálculo I"})

	if _, err := svc.GetDatosGenerales(ctx, luis, p.ID); !errors.Is(err, ErrPlaneacionNotFound) {
		t.Errorf("foreign get: expected ErrPlaneacionNotFound, got %v", err)
	}
	if _, err := svc.SaveDatosGenerales(ctx, luis, p.ID, &dto.DatosGeneralesRequest{Grupo: strPtr("1CM1")}); !errors.Is(err, ErrPlaneacionNotFound) {
		t.Errorf("foreign save: expected ErrPlaneacionNotFound, got %v", err)
	}
	if _, err := svc.SaveDatosGenerales(ctx, ana, 999, &dto.DatosGeneralesRequest{}); !errors.Is(err, ErrPlaneacionNotFound) {
		t.Errorf("unknown plan: expected ErrPlaneacionNotFound, got %v", err)
	}
	if len(mocks.datosGenerales.byPlan) != 0 {
		t.Error("nothing should have been written")
	}
}

func TestDatosGenerales_PlanGoneBeforeWrite(t *testing.T) {
	repo, mocks := newMockRepository()
	svc := NewPlaneacionService(repo, zap.NewNop(), time.Now)
	ctx := context.Background()

	p, _ := svc.Create(ctx, ana, &dto.CreatePlaneacionRequest{NombrePlaneacion: "Cálculo I"})
	// the write side no longer sees the plan, as after a concurrent delete
	mocks.datosGenerales.plans = newMockPlaneacionRepo()

	if _, err := svc.SaveDatosGenerales(ctx, ana, p.ID, &dto.DatosGeneralesRequest{}); !errors.Is(err, ErrPlaneacionNotFound) {
		t.Errorf("expected ErrPlaneacionNotFound, got %v", err)
	}
}
