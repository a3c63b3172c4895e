package storage_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-translatable/internal/model"
	"github.com/goliatone/go-translatable/internal/storage"
	"github.com/goliatone/go-translatable/internal/translation"
	"github.com/goliatone/go-translatable/pkg/testsupport"
)

func productModel(t *testing.T) *model.Model {
	t.Helper()
	m, err := model.New(model.Descriptor{
		Name:                 "product",
		TranslatedAttributes: []string{"title", "description"},
	})
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	return m
}

func setupDB(t *testing.T, m *model.Model) *bun.DB {
	t.Helper()
	db := testsupport.NewBunSQLite(t)
	ctx := context.Background()

	if _, err := db.ExecContext(ctx,
		"CREATE TABLE ? (id VARCHAR(36) PRIMARY KEY, sku TEXT, title TEXT, price REAL)",
		bun.Ident(m.Table),
	); err != nil {
		t.Fatalf("create base table: %v", err)
	}
	if err := storage.EnsureTranslationSchema(ctx, db, m); err != nil {
		t.Fatalf("ensure translation schema: %v", err)
	}
	return db
}

func TestBunStoreSaveAndLoadRoundTrip(t *testing.T) {
	m := productModel(t)
	db := setupDB(t, m)
	store := storage.NewBunStore(db)
	ctx := context.Background()

	row := &storage.BaseRow{
		Values:      map[string]any{"sku": "SKU-1", "price": 9.5},
		DirtyFields: []string{"price", "sku"},
	}
	if err := store.SaveBase(ctx, m, row); err != nil {
		t.Fatalf("save base: %v", err)
	}
	if row.ID == uuid.Nil {
		t.Fatal("expected a key assigned on insert")
	}

	tr := translation.NewTranslation("de")
	tr.StampOwner(row.ID)
	tr.Set("title", "Hallo")
	tr.Set("description", "Beschreibung")
	if err := store.SaveTranslation(ctx, m, tr); err != nil {
		t.Fatalf("save translation: %v", err)
	}
	tr.MarkSaved()

	loaded, err := store.LoadTranslations(ctx, m, row.ID)
	if err != nil {
		t.Fatalf("load translations: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("expected one translation got %d", len(loaded))
	}
	got := loaded[0]
	if !translation.LocaleEquals(got.Locale, "de") {
		t.Fatalf("expected de got %q", got.Locale)
	}
	if title, _ := got.Get("title"); title != "Hallo" {
		t.Fatalf("expected Hallo got %v", title)
	}
	if got.IsDirty() {
		t.Fatal("loaded translations must start clean")
	}
}

func TestBunStoreUpdatesOnlyDirtyFields(t *testing.T) {
	m := productModel(t)
	db := setupDB(t, m)
	store := storage.NewBunStore(db)
	ctx := context.Background()

	row := &storage.BaseRow{
		Values:      map[string]any{"sku": "SKU-1"},
		DirtyFields: []string{"sku"},
	}
	if err := store.SaveBase(ctx, m, row); err != nil {
		t.Fatalf("insert base: %v", err)
	}

	row.Values["sku"] = "SKU-2"
	row.DirtyFields = []string{"sku"}
	if err := store.SaveBase(ctx, m, row); err != nil {
		t.Fatalf("update base: %v", err)
	}

	var sku string
	if err := db.NewSelect().
		ColumnExpr("sku").
		TableExpr("?", bun.Ident(m.Table)).
		Where("? = ?", bun.Ident("id"), row.ID).
		Scan(ctx, &sku); err != nil {
		t.Fatalf("read back: %v", err)
	}
	if sku != "SKU-2" {
		t.Fatalf("expected SKU-2 got %q", sku)
	}

	tr := translation.NewTranslation("en")
	tr.StampOwner(row.ID)
	tr.Set("title", "Hello")
	if err := store.SaveTranslation(ctx, m, tr); err != nil {
		t.Fatalf("insert translation: %v", err)
	}
	tr.MarkSaved()

	tr.Set("title", "Hello again")
	if err := store.SaveTranslation(ctx, m, tr); err != nil {
		t.Fatalf("update translation: %v", err)
	}

	loaded, err := store.LoadTranslations(ctx, m, row.ID)
	if err != nil {
		t.Fatalf("load translations: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("updates must not duplicate rows, got %d", len(loaded))
	}
	if title, _ := loaded[0].Get("title"); title != "Hello again" {
		t.Fatalf("expected Hello again got %v", title)
	}
}

func TestBunStoreAssignsDeterministicTranslationKeys(t *testing.T) {
	m := productModel(t)
	db := setupDB(t, m)
	store := storage.NewBunStore(db)
	ctx := context.Background()

	ownerID := uuid.New()
	first := translation.NewTranslation("en")
	first.StampOwner(ownerID)
	first.Set("title", "Hello")
	if err := store.SaveTranslation(ctx, m, first); err != nil {
		t.Fatalf("save: %v", err)
	}

	second := translation.NewTranslation("en")
	second.StampOwner(ownerID)
	if second.ID != uuid.Nil {
		t.Fatal("transient translations start without a key")
	}
	if first.ID == uuid.Nil {
		t.Fatal("expected a key after save")
	}

	loaded, err := store.LoadTranslations(ctx, m, ownerID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID != first.ID {
		t.Fatalf("expected the persisted key to round-trip, got %v", loaded)
	}
}

func TestWhereTranslatedScopesBaseQueries(t *testing.T) {
	m := productModel(t)
	db := setupDB(t, m)
	store := storage.NewBunStore(db)
	ctx := context.Background()

	seed := func(sku string, price float64, locale, title string) uuid.UUID {
		t.Helper()
		row := &storage.BaseRow{
			Values:      map[string]any{"sku": sku, "price": price},
			DirtyFields: []string{"price", "sku"},
		}
		if err := store.SaveBase(ctx, m, row); err != nil {
			t.Fatalf("seed base %s: %v", sku, err)
		}
		tr := translation.NewTranslation(locale)
		tr.StampOwner(row.ID)
		tr.Set("title", title)
		if err := store.SaveTranslation(ctx, m, tr); err != nil {
			t.Fatalf("seed translation %s: %v", sku, err)
		}
		return row.ID
	}

	cheap := seed("SKU-1", 5, "de", "Hallo")
	seed("SKU-2", 50, "de", "Hallo")
	seed("SKU-3", 5, "en", "Hello")

	var ids []string
	q := db.NewSelect().
		ColumnExpr("id").
		TableExpr("? AS ?", bun.Ident(m.Table), bun.Ident(m.Table)).
		Where("price < ?", 10)
	q = storage.WhereTranslatedLocale(q, m, "title", "Hallo", "de")
	if err := q.Scan(ctx, &ids); err != nil {
		t.Fatalf("scoped select: %v", err)
	}

	if len(ids) != 1 || ids[0] != cheap.String() {
		t.Fatalf("the translation scope must compose with other predicates, got %v", ids)
	}

	ids = nil
	q = db.NewSelect().
		ColumnExpr("id").
		TableExpr("? AS ?", bun.Ident(m.Table), bun.Ident(m.Table))
	q = storage.WhereTranslated(q, m, "title", "Hallo")
	if err := q.Scan(ctx, &ids); err != nil {
		t.Fatalf("any-locale select: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected two matches across locales got %v", ids)
	}
}

func TestUniqueOwnerLocaleIndex(t *testing.T) {
	m := productModel(t)
	db := setupDB(t, m)
	ctx := context.Background()

	ownerID := uuid.New()
	insert := func(id uuid.UUID) error {
		values := map[string]any{
			"id":         id,
			m.ForeignKey: ownerID,
			"locale":     "en",
			"title":      "Hello",
		}
		_, err := db.NewInsert().
			Model(&values).
			TableExpr("?", bun.Ident(m.TranslationTable)).
			Exec(ctx)
		return err
	}

	if err := insert(uuid.New()); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if err := insert(uuid.New()); err == nil {
		t.Fatal("expected the unique (owner, locale) index to reject the duplicate")
	}
}
