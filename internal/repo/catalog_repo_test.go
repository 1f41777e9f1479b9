package repo

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"

	"github.com/syntaxlabz/errors-playground/internal/catalog"
)

func newCatalogDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := OpenSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
	sqlDB, _ := db.DB()
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestSaveAndLoadCatalog_RoundTrip(t *testing.T) {
	ctx := context.Background()
	db := newCatalogDB(t)
	want := catalog.Default()

	if err := SaveCatalog(ctx, db, want.Document()); err != nil {
		t.Fatalf("SaveCatalog: %v", err)
	}
	st, err := CatalogStats(ctx, db)
	if err != nil || st.Errors != int64(want.Len()) || st.Examples != int64(len(want.Examples())) || st.UpdatedAt == nil {
		t.Fatalf("CatalogStats = %+v, %v", st, err)
	}

	got, err := catalog.Open(ctx, SQLiteSource{DB: db})
	if err != nil {
		t.Fatalf("Open(SQLiteSource): %v", err)
	}
	if got.Len() != want.Len() {
		t.Fatalf("Len = %d, want %d", got.Len(), want.Len())
	}
	for i := 0; i < want.Len(); i++ {
		w, g := want.At(i), got.At(i)
		if g.Name != w.Name || g.Category != w.Category || g.HTTPStatus != w.HTTPStatus {
			t.Fatalf("[%d] = %s/%s/%d, want %s/%s/%d", i, g.Name, g.Category, g.HTTPStatus, w.Name, w.Category, w.HTTPStatus)
		}
		if len(g.Keywords) != len(w.Keywords) || len(g.CommonScenarios) != len(w.CommonScenarios) {
			t.Fatalf("%s: keywords/scenarios lost", g.Name)
		}
		if g.Frameworks[catalog.FrameworkGin] != w.Frameworks[catalog.FrameworkGin] {
			t.Fatalf("%s: gin snippet mismatch", g.Name)
		}
		if g.JSONResponse["error"] != w.JSONResponse["error"] {
			t.Fatalf("%s: json_response error code mismatch", g.Name)
		}
	}
	if len(got.Examples()) != len(want.Examples()) {
		t.Fatalf("examples = %d, want %d", len(got.Examples()), len(want.Examples()))
	}
	if got.Examples()[7].ExpectedErrors[0] != "InternalServerError" {
		t.Fatalf("example order lost: %+v", got.Examples()[7])
	}
}

func TestSaveCatalog_ReplacesPreviousContent(t *testing.T) {
	ctx := context.Background()
	db := newCatalogDB(t)

	if err := SaveCatalog(ctx, db, catalog.Default().Document()); err != nil {
		t.Fatalf("SaveCatalog: %v", err)
	}

	doc := catalog.Default().Document()
	doc.Errors = doc.Errors[:2]
	doc.Examples = doc.Examples[:2] // both reference the first two errors
	if err := SaveCatalog(ctx, db, doc); err != nil {
		t.Fatalf("SaveCatalog (second): %v", err)
	}
	if st, _ := CatalogStats(ctx, db); st.Errors != 2 {
		t.Fatalf("CatalogStats = %+v, want 2 errors", st)
	}
}

func TestSaveCatalog_RejectsInvalidDocument(t *testing.T) {
	ctx := context.Background()
	db := newCatalogDB(t)

	doc := catalog.Default().Document()
	doc.Errors = append(doc.Errors, doc.Errors[0])
	if err := SaveCatalog(ctx, db, doc); !errors.Is(err, catalog.ErrDuplicateName) {
		t.Fatalf("err = %v, want ErrDuplicateName", err)
	}
	if st, _ := CatalogStats(ctx, db); st.Errors != 0 {
		t.Fatalf("invalid catalog reached the database: %+v", st)
	}
}

func TestSQLiteSource_Empty(t *testing.T) {
	db := newCatalogDB(t)
	if _, err := catalog.Open(context.Background(), SQLiteSource{DB: db}); !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("err = %v, want ErrEmptyCatalog", err)
	}
}
