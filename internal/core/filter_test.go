package core

import "testing"

func TestMatchesCharity(t *testing.T) {
	r := rec(FieldCharity, "  Young Life ")
	cases := []struct {
		name string
		want bool
	}{
		{"young life", true},
		{"Young Life", true},
		{" YOUNG LIFE ", true},
		{"Young", false}, // exact equality, not substring
		{"", true},       // absent constraint is vacuously true
	}
	for _, tc := range cases {
		if got := MatchesCharity(r, tc.name); got != tc.want {
			t.Fatalf("MatchesCharity(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestMatchesYear(t *testing.T) {
	r := rec(FieldSentDate, "1/5/24", FieldClearedDate, "2/1/23")
	if !MatchesYear(r, 2024) {
		t.Fatal("expected suffix 24 to match")
	}
	if !MatchesYear(r, 2023) {
		t.Fatal("expected suffix 23 to match via any date field")
	}
	if MatchesYear(r, 2022) {
		t.Fatal("expected no match for 22")
	}
	if !MatchesYear(r, 0) {
		t.Fatal("zero year is vacuously true")
	}
	// Suffix matching: 1924 matches a /24 suffix too.
	if !MatchesYear(r, 1924) {
		t.Fatal("suffix matching ignores the century")
	}
}

func TestMatchesYearRange(t *testing.T) {
	r := rec(FieldSentDate, "1/5/22", FieldClearedDate, "2/1/24")
	cases := []struct {
		min, max int
		want     bool
	}{
		{0, 0, true},
		{2024, 0, true},  // record year is the max across date fields
		{2025, 0, false},
		{0, 2023, false}, // 2024 exceeds max
		{2020, 2024, true},
	}
	for _, tc := range cases {
		if got := MatchesYearRange(r, tc.min, tc.max); got != tc.want {
			t.Fatalf("range [%d,%d] = %v, want %v", tc.min, tc.max, got, tc.want)
		}
	}

	undated := rec(FieldCharity, "A")
	if MatchesYearRange(undated, 2000, 2030) {
		t.Fatal("a transaction with no parseable date never matches a range")
	}
}

func TestMatchesAmountBounds(t *testing.T) {
	r := rec(FieldAmount, "5,000.00")
	if !MatchesMinAmount(r, 5000) || !MatchesMaxAmount(r, 5000) {
		t.Fatal("bounds are inclusive")
	}
	if MatchesMinAmount(r, 5000.01) {
		t.Fatal("min bound should exclude")
	}
	if MatchesMaxAmount(r, 4999.99) {
		t.Fatal("max bound should exclude")
	}

	// Malformed amounts behave as zero for both bounds.
	bad := rec(FieldAmount, "not a number")
	if MatchesMinAmount(bad, 1) {
		t.Fatal("malformed amount is zero, fails min 1")
	}
	if !MatchesMaxAmount(bad, 1) {
		t.Fatal("malformed amount is zero, passes max 1")
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	in := []Record{
		rec(FieldCharity, "A", FieldAmount, "1"),
		rec(FieldCharity, "B", FieldAmount, "2"),
		rec(FieldCharity, "A", FieldAmount, "3"),
	}
	out := Filter(in, func(r Record) bool { return MatchesCharity(r, "A") })
	if len(out) != 2 || out[0].String(FieldAmount) != "1" || out[1].String(FieldAmount) != "3" {
		t.Fatalf("unexpected filter result: %v", out)
	}
}
