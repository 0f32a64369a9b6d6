package store

import "testing"

func TestUpsertCreated(t *testing.T) {
	if !upsertCreated(true, "row-a", "row-a") {
		t.Fatalf("insert that survives should report created")
	}
	// conflict clause converted a racing insert into an update; the winner's
	// row id is the one stored
	if upsertCreated(true, "row-a", "row-b") {
		t.Fatalf("losing a race to a concurrent insert is an update, not a create")
	}
	if upsertCreated(false, "row-a", "row-a") {
		t.Fatalf("plain update path should never report created")
	}
}
