package storage

import (
	"path/filepath"
	"testing"

	"dianjobs/internal"
)

func TestSnapshotRoundTrip(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "app.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	records := []internal.RawRecord{
		{"Denominación": "Gestor I", "Asignación Salarial": float64(4500000)},
		{"Denominación": "Analista II", "Vacantes": "1 - Cali"},
	}
	if err := db.ReplaceSnapshot(records); err != nil {
		t.Fatal(err)
	}

	loaded, err := db.LoadSnapshot()
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 2 {
		t.Fatalf("len=%d", len(loaded))
	}
	if loaded[0]["Denominación"] != "Gestor I" {
		t.Fatalf("first row: %+v", loaded[0])
	}
	if loaded[1]["Vacantes"] != "1 - Cali" {
		t.Fatalf("second row: %+v", loaded[1])
	}

	// Replace is wholesale, not additive.
	if err := db.ReplaceSnapshot(records[:1]); err != nil {
		t.Fatal(err)
	}
	loaded, err = db.LoadSnapshot()
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 1 {
		t.Fatalf("len=%d after replace", len(loaded))
	}

	fetchedAt, err := db.GetMetadata("snapshot.fetched_at")
	if err != nil {
		t.Fatal(err)
	}
	if fetchedAt == nil {
		t.Fatal("fetched_at metadata missing")
	}
}

func TestInsertRunAndMetadata(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "app.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	if err := db.InsertRun("abc123", "remote",
		map[string]float64{"totalMs": 12},
		map[string]int{"rowsIn": 2, "rowsOut": 3}); err != nil {
		t.Fatal(err)
	}

	if err := db.SetMetadata("k", "v1"); err != nil {
		t.Fatal(err)
	}
	if err := db.SetMetadata("k", "v2"); err != nil {
		t.Fatal(err)
	}
	got, err := db.GetMetadata("k")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || *got != "v2" {
		t.Fatalf("got %v", got)
	}

	missing, err := db.GetMetadata("absent")
	if err != nil {
		t.Fatal(err)
	}
	if missing != nil {
		t.Fatalf("got %v want nil", missing)
	}
}
