package catalog

import (
	"context"
	"testing"

	pkgauth "github.com/glowmart/cosmetics-backend/pkg/auth"
	pkgerrors "github.com/glowmart/cosmetics-backend/pkg/errors"
	"github.com/glowmart/cosmetics-backend/pkg/pagination"
)

var testActor = pkgauth.Identity{ID: 1, Username: "admin"}

func TestCreateBrandsAssignsSequentialSlots(t *testing.T) {
	store := newFakeStore()
	store.addBrand("Lumine", 3)
	svc := newCatalogService(t, store, nil)

	views, err := svc.CreateBrands(context.Background(), testActor,
		CreateBrandsInput{Names: []string{"Velour", "Petalsoft"}})
	if err != nil {
		t.Fatalf("CreateBrands: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 brands, got %d", len(views))
	}
	if views[0].Sequence != 4 || views[1].Sequence != 5 {
		t.Fatalf("expected sequences 4 and 5, got %d and %d", views[0].Sequence, views[1].Sequence)
	}
}

func TestCreateBrandsRejectsActiveDuplicate(t *testing.T) {
	store := newFakeStore()
	store.addBrand("Lumine", 1)
	svc := newCatalogService(t, store, nil)

	_, err := svc.CreateBrands(context.Background(), testActor,
		CreateBrandsInput{Names: []string{"Velour", "Lumine"}})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	if len(store.brands) != 1 {
		t.Fatalf("batch must fail atomically, got %d brands", len(store.brands))
	}
}

func TestCreateBrandsAllowsRetiredNameReuse(t *testing.T) {
	store := newFakeStore()
	retired := store.addBrand("Lumine", 1)
	if _, err := store.RetireBrand(context.Background(), retired.ID, "admin"); err != nil {
		t.Fatalf("RetireBrand: %v", err)
	}
	svc := newCatalogService(t, store, nil)

	views, err := svc.CreateBrands(context.Background(), testActor,
		CreateBrandsInput{Names: []string{"Lumine"}})
	if err != nil {
		t.Fatalf("CreateBrands: %v", err)
	}
	if views[0].Name != "Lumine" {
		t.Fatalf("unexpected brand: %+v", views[0])
	}
}

func TestCreateBrandsRejectsDuplicateInRequest(t *testing.T) {
	svc := newCatalogService(t, newFakeStore(), nil)

	_, err := svc.CreateBrands(context.Background(), testActor,
		CreateBrandsInput{Names: []string{"Velour", "Velour"}})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateBrandsRejectsBlankName(t *testing.T) {
	svc := newCatalogService(t, newFakeStore(), nil)

	_, err := svc.CreateBrands(context.Background(), testActor,
		CreateBrandsInput{Names: []string{"  "}})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateBrandRename(t *testing.T) {
	store := newFakeStore()
	brand := store.addBrand("Lumine", 1)
	svc := newCatalogService(t, store, nil)

	view, err := svc.UpdateBrand(context.Background(), testActor, brand.ID, UpdateBrandInput{Name: "Luminelle"})
	if err != nil {
		t.Fatalf("UpdateBrand: %v", err)
	}
	if view.Name != "Luminelle" {
		t.Fatalf("unexpected view: %+v", view)
	}
	if store.brands[brand.ID].Name != "Luminelle" {
		t.Fatal("rename did not persist")
	}
}

func TestUpdateBrandNameTakenByOther(t *testing.T) {
	store := newFakeStore()
	brand := store.addBrand("Lumine", 1)
	store.addBrand("Velour", 2)
	svc := newCatalogService(t, store, nil)

	_, err := svc.UpdateBrand(context.Background(), testActor, brand.ID, UpdateBrandInput{Name: "Velour"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestUpdateBrandSameNameIsNoOp(t *testing.T) {
	store := newFakeStore()
	brand := store.addBrand("Lumine", 1)
	svc := newCatalogService(t, store, nil)

	view, err := svc.UpdateBrand(context.Background(), testActor, brand.ID, UpdateBrandInput{Name: "Lumine"})
	if err != nil {
		t.Fatalf("UpdateBrand: %v", err)
	}
	if view.Name != "Lumine" {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestUpdateBrandMovesSequence(t *testing.T) {
	store := newFakeStore()
	brand := store.addBrand("Lumine", 1)
	svc := newCatalogService(t, store, nil)

	target := int32(9)
	view, err := svc.UpdateBrand(context.Background(), testActor, brand.ID,
		UpdateBrandInput{Name: "Lumine", Sequence: &target})
	if err != nil {
		t.Fatalf("UpdateBrand: %v", err)
	}
	if view.Sequence != 9 {
		t.Fatalf("unexpected sequence: %d", view.Sequence)
	}
}

func TestUpdateBrandSequenceTakenByOther(t *testing.T) {
	store := newFakeStore()
	brand := store.addBrand("Lumine", 1)
	store.addBrand("Velour", 2)
	svc := newCatalogService(t, store, nil)

	target := int32(2)
	_, err := svc.UpdateBrand(context.Background(), testActor, brand.ID,
		UpdateBrandInput{Name: "Lumine", Sequence: &target})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestAllBrandsOrderedBySequence(t *testing.T) {
	store := newFakeStore()
	store.addBrand("Velour", 2)
	store.addBrand("Lumine", 1)
	retired := store.addBrand("Ghost", 3)
	if _, err := store.RetireBrand(context.Background(), retired.ID, "admin"); err != nil {
		t.Fatalf("RetireBrand: %v", err)
	}
	svc := newCatalogService(t, store, nil)

	views, err := svc.AllBrands(context.Background())
	if err != nil {
		t.Fatalf("AllBrands: %v", err)
	}
	if len(views) != 2 || views[0].Name != "Lumine" || views[1].Name != "Velour" {
		t.Fatalf("unexpected views: %+v", views)
	}
}

func TestUpdateBrandNotFound(t *testing.T) {
	svc := newCatalogService(t, newFakeStore(), nil)

	_, err := svc.UpdateBrand(context.Background(), testActor, 99, UpdateBrandInput{Name: "Ghost"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestReorderBrandsAppliesAssignments(t *testing.T) {
	store := newFakeStore()
	first := store.addBrand("Lumine", 1)
	second := store.addBrand("Velour", 2)
	third := store.addBrand("Petalsoft", 3)
	svc := newCatalogService(t, store, nil)

	err := svc.ReorderBrands(context.Background(), testActor,
		ReorderBrandsInput{Items: []BrandSequence{
			{ID: third.ID, Sequence: 1},
			{ID: first.ID, Sequence: 2},
			{ID: second.ID, Sequence: 3},
		}})
	if err != nil {
		t.Fatalf("ReorderBrands: %v", err)
	}
	if store.brands[third.ID].Sequence != 1 ||
		store.brands[first.ID].Sequence != 2 ||
		store.brands[second.ID].Sequence != 3 {
		t.Fatalf("unexpected sequences: %d %d %d",
			store.brands[third.ID].Sequence,
			store.brands[first.ID].Sequence,
			store.brands[second.ID].Sequence)
	}
}

func TestReorderBrandsSubsetLeavesOthersAlone(t *testing.T) {
	store := newFakeStore()
	first := store.addBrand("Lumine", 1)
	second := store.addBrand("Velour", 2)
	third := store.addBrand("Petalsoft", 3)
	svc := newCatalogService(t, store, nil)

	// Swap the last two; the first brand keeps its slot untouched.
	err := svc.ReorderBrands(context.Background(), testActor,
		ReorderBrandsInput{Items: []BrandSequence{
			{ID: third.ID, Sequence: 2},
			{ID: second.ID, Sequence: 3},
		}})
	if err != nil {
		t.Fatalf("ReorderBrands: %v", err)
	}
	if store.brands[first.ID].Sequence != 1 {
		t.Fatalf("unlisted brand must keep its slot, got %d", store.brands[first.ID].Sequence)
	}
	if store.brands[third.ID].Sequence != 2 || store.brands[second.ID].Sequence != 3 {
		t.Fatalf("unexpected sequences: %d %d",
			store.brands[third.ID].Sequence, store.brands[second.ID].Sequence)
	}
}

func TestReorderBrandsSingleElementIsNoOp(t *testing.T) {
	store := newFakeStore()
	brand := store.addBrand("Lumine", 7)
	svc := newCatalogService(t, store, nil)

	err := svc.ReorderBrands(context.Background(), testActor,
		ReorderBrandsInput{Items: []BrandSequence{{ID: brand.ID, Sequence: 1}}})
	if err != nil {
		t.Fatalf("ReorderBrands: %v", err)
	}
	if store.brands[brand.ID].Sequence != 7 {
		t.Fatalf("single-element reorder must not touch sequence, got %d", store.brands[brand.ID].Sequence)
	}
}

func TestReorderBrandsUnknownID(t *testing.T) {
	store := newFakeStore()
	brand := store.addBrand("Lumine", 1)
	svc := newCatalogService(t, store, nil)

	err := svc.ReorderBrands(context.Background(), testActor,
		ReorderBrandsInput{Items: []BrandSequence{
			{ID: brand.ID, Sequence: 1},
			{ID: 999, Sequence: 2},
		}})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestReorderBrandsDuplicateSequence(t *testing.T) {
	store := newFakeStore()
	first := store.addBrand("Lumine", 1)
	second := store.addBrand("Velour", 2)
	svc := newCatalogService(t, store, nil)

	err := svc.ReorderBrands(context.Background(), testActor,
		ReorderBrandsInput{Items: []BrandSequence{
			{ID: first.ID, Sequence: 5},
			{ID: second.ID, Sequence: 5},
		}})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestReorderBrandsEmptyList(t *testing.T) {
	svc := newCatalogService(t, newFakeStore(), nil)

	err := svc.ReorderBrands(context.Background(), testActor, ReorderBrandsInput{})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDeleteBrandRetiresRow(t *testing.T) {
	store := newFakeStore()
	brand := store.addBrand("Lumine", 1)
	svc := newCatalogService(t, store, nil)

	if err := svc.DeleteBrand(context.Background(), testActor, brand.ID); err != nil {
		t.Fatalf("DeleteBrand: %v", err)
	}
	if _, err := store.ActiveBrandByID(context.Background(), brand.ID); err == nil {
		t.Fatal("brand should no longer be active")
	}
	if _, ok := store.brands[brand.ID]; !ok {
		t.Fatal("soft delete must keep the row")
	}
}

func TestDeleteBrandWithActiveProducts(t *testing.T) {
	store := newFakeStore()
	brand := store.addBrand("Lumine", 1)
	store.addProduct("Dew Serum", brand.ID)
	svc := newCatalogService(t, store, nil)

	err := svc.DeleteBrand(context.Background(), testActor, brand.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestDeleteBrandTwice(t *testing.T) {
	store := newFakeStore()
	brand := store.addBrand("Lumine", 1)
	svc := newCatalogService(t, store, nil)

	if err := svc.DeleteBrand(context.Background(), testActor, brand.ID); err != nil {
		t.Fatalf("first DeleteBrand: %v", err)
	}
	err := svc.DeleteBrand(context.Background(), testActor, brand.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestListBrandsClampsPaging(t *testing.T) {
	store := newFakeStore()
	for i := int32(1); i <= 5; i++ {
		store.addBrand(string(rune('A'+i)), i)
	}
	svc := newCatalogService(t, store, nil)

	views, total, err := svc.ListBrands(context.Background(), pagination.Paging{Offset: -3, Limit: 100000})
	if err != nil {
		t.Fatalf("ListBrands: %v", err)
	}
	if total != 5 || len(views) != 5 {
		t.Fatalf("expected 5/5, got %d/%d", total, len(views))
	}
	for i := 1; i < len(views); i++ {
		if views[i-1].Sequence > views[i].Sequence {
			t.Fatal("brands must be ordered by sequence")
		}
	}
}
