package grantee

import (
	"testing"

	"grantbook/internal/core"
)

func rec(pairs ...any) core.Record {
	r := core.NewRecord()
	for i := 0; i+1 < len(pairs); i += 2 {
		r.Set(pairs[i].(string), pairs[i+1])
	}
	return r
}

func emptyMeta() *MetadataTable {
	return NewMetadataTable(nil)
}

func TestBuildRegistryDedup(t *testing.T) {
	records := []core.Record{
		rec(core.FieldCharity, "Helping Hands", core.FieldEIN, "11-1111111"),
		rec(core.FieldCharity, " Helping Hands ", core.FieldEIN, "22-2222222"),
		rec(core.FieldCharity, "Helping Hands", core.FieldEIN, "11-1111111"),
	}
	reg := BuildRegistry(records, emptyMeta(), DefaultKeywords())
	if reg.Len() != 2 {
		t.Fatalf("same name, different EIN must be distinct grantees; got %d", reg.Len())
	}
	g, ok := reg.Lookup("Helping Hands", "11-1111111")
	if !ok || len(g.Transactions) != 2 {
		t.Fatalf("expected 2 transactions for first EIN, got %v", g)
	}
}

func TestBuildRegistryEmptyEINShared(t *testing.T) {
	records := []core.Record{
		rec(core.FieldCharity, "Local Pantry"),
		rec(core.FieldCharity, "Local Pantry", core.FieldEIN, "  "),
	}
	reg := BuildRegistry(records, emptyMeta(), DefaultKeywords())
	if reg.Len() != 1 {
		t.Fatalf("both-empty EIN is a shared key; got %d grantees", reg.Len())
	}
	g, _ := reg.Lookup("Local Pantry", "")
	if len(g.Transactions) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(g.Transactions))
	}
}

func TestBuildRegistryFirstAddressWins(t *testing.T) {
	records := []core.Record{
		rec(core.FieldCharity, "A", core.FieldAddress, "1 First St"),
		rec(core.FieldCharity, "A", core.FieldAddress, "2 Second St"),
	}
	reg := BuildRegistry(records, emptyMeta(), DefaultKeywords())
	g, _ := reg.Lookup("A", "")
	if g.Address != "1 First St" {
		t.Fatalf("later addresses are ignored; got %q", g.Address)
	}
}

func TestBuildRegistrySkipsEmptyCharity(t *testing.T) {
	records := []core.Record{
		rec(core.FieldAmount, "5.00"),
		rec(core.FieldCharity, "  "),
		rec(core.FieldCharity, "Kept"),
	}
	reg := BuildRegistry(records, emptyMeta(), DefaultKeywords())
	if reg.Len() != 1 {
		t.Fatalf("blank charities must be skipped; got %d", reg.Len())
	}
}

func TestClassifyBelovedStrictlyFromMetadata(t *testing.T) {
	meta := NewMetadataTable([]MetadataEntry{
		{Name: "Inner Circle", EIN: "33-3333333", IsBeloved: true},
	})
	records := []core.Record{
		rec(core.FieldCharity, "Inner Circle", core.FieldEIN, "33-3333333"),
		rec(core.FieldCharity, "Anyone Else"),
	}
	reg := BuildRegistry(records, meta, DefaultKeywords())
	g, _ := reg.Lookup("Inner Circle", "33-3333333")
	if !g.IsBeloved {
		t.Fatal("metadata is_beloved=true must carry over")
	}
	other, _ := reg.Lookup("Anyone Else", "")
	if other.IsBeloved {
		t.Fatal("no metadata entry means not beloved, no fallback")
	}
}

func TestClassifyInternationalTiers(t *testing.T) {
	meta := NewMetadataTable([]MetadataEntry{
		{Name: "Plain Org", International: true},
	})
	cases := []struct {
		name string
		rec  core.Record
		want bool
	}{
		{"metadata true wins", rec(core.FieldCharity, "Plain Org"), true},
		{"known org name", rec(core.FieldCharity, "World Vision"), true},
		{"address keyword", rec(core.FieldCharity, "X", core.FieldAddress, "PO Box 9, Nairobi, Kenya"), true},
		{"purpose keyword", rec(core.FieldCharity, "Y", core.FieldPurpose, "well drilling in Uganda"), true},
		{"special note keyword", rec(core.FieldCharity, "Z", core.FieldNote, "supports overseas staff"), true},
		{"domestic", rec(core.FieldCharity, "Q", core.FieldAddress, "Springfield, IL", core.FieldPurpose, "food bank"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reg := BuildRegistry([]core.Record{tc.rec}, meta, DefaultKeywords())
			g := reg.All()[0]
			if g.International != tc.want {
				t.Fatalf("international = %v, want %v", g.International, tc.want)
			}
		})
	}
}

func TestFindResolutionOrder(t *testing.T) {
	records := []core.Record{
		rec(core.FieldCharity, "Test Charity", core.FieldEIN, "11-1111111"),
		rec(core.FieldCharity, "Test Charity", core.FieldEIN, "22-2222222"),
		rec(core.FieldCharity, "Another Org"),
	}
	reg := BuildRegistry(records, emptyMeta(), DefaultKeywords())

	if g := reg.Find("Test Charity", "22-2222222"); g == nil || g.EIN != "22-2222222" {
		t.Fatal("exact name+EIN lookup failed")
	}
	if g := reg.Find("test charity", ""); g == nil || g.EIN != "11-1111111" {
		t.Fatal("case-insensitive exact name should return the first registry entry")
	}
	// Substring fallback, both directions.
	if g := reg.Find("test", ""); g == nil || g.Name != "Test Charity" {
		t.Fatal("query-in-name substring fallback failed")
	}
	if g := reg.Find("The Another Org Fund", ""); g == nil || g.Name != "Another Org" {
		t.Fatal("name-in-query substring fallback failed")
	}
	if g := reg.Find("nobody", ""); g != nil {
		t.Fatal("expected nil for no match")
	}
}

func TestMostRecentGrantNote(t *testing.T) {
	txns := []core.Record{
		rec(core.FieldSentDate, "9/1/23", core.FieldPurpose, "older purpose"),
		rec(core.FieldSentDate, "1/1/24", core.FieldNote, "newest has only a note"),
	}
	note, ok := MostRecentGrantNote(txns)
	if !ok || note != "newest has only a note" {
		t.Fatalf("got %q, %v", note, ok)
	}

	if _, ok := MostRecentGrantNote(nil); ok {
		t.Fatal("empty list has no note")
	}

	bare := []core.Record{rec(core.FieldSentDate, "1/1/24")}
	if _, ok := MostRecentGrantNote(bare); ok {
		t.Fatal("winner without purpose or note yields none")
	}
}

func TestSortMostRecentFirst(t *testing.T) {
	txns := []core.Record{
		rec("id", "a", core.FieldSentDate, "1/1/23"),
		rec("id", "b", core.FieldSentDate, "9/1/24"),
		rec("id", "c", core.FieldSentDate, "8/1/24"),
	}
	out := SortMostRecentFirst(txns)
	if out[0].String("id") != "b" || out[1].String("id") != "c" || out[2].String("id") != "a" {
		t.Fatalf("order wrong: %v %v %v", out[0].String("id"), out[1].String("id"), out[2].String("id"))
	}
	if txns[0].String("id") != "a" {
		t.Fatal("input must not be mutated")
	}
}
