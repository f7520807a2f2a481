package core

import "testing"

func TestSortRecordsAmount(t *testing.T) {
	in := []Record{
		rec(FieldCharity, "B", FieldAmount, "15,000.00"),
		rec(FieldCharity, "A", FieldAmount, "5,000.00"),
		rec(FieldCharity, "C", FieldAmount, "100.00"),
	}
	out := SortRecords(in, FieldAmount, Ascending)
	if out[0].String(FieldCharity) != "C" || out[2].String(FieldCharity) != "B" {
		t.Fatalf("ascending amount sort wrong: %v", out)
	}

	// Input untouched.
	if in[0].String(FieldCharity) != "B" {
		t.Fatal("SortRecords must not mutate its input")
	}

	// Reversing the order yields the exact reverse sequence.
	down := SortRecords(in, FieldAmount, Descending)
	for i := range out {
		if down[i].String(FieldCharity) != out[len(out)-1-i].String(FieldCharity) {
			t.Fatalf("descending is not the reverse of ascending at %d", i)
		}
	}
}

func TestSortRecordsDate(t *testing.T) {
	// Year compares first; the tie-break is the raw string, which is
	// lexicographic rather than chronological.
	in := []Record{
		rec("id", "a", FieldSentDate, "9/1/24"),
		rec("id", "b", FieldSentDate, "10/1/24"),
		rec("id", "c", FieldSentDate, "1/1/23"),
	}
	out := SortRecords(in, FieldSentDate, Ascending)
	if out[0].String("id") != "c" {
		t.Fatalf("2023 should sort first, got %v", out[0].String("id"))
	}
	// "10/1/24" < "9/1/24" lexicographically.
	if out[1].String("id") != "b" || out[2].String("id") != "a" {
		t.Fatalf("raw-string tie-break not preserved: %v, %v", out[1].String("id"), out[2].String("id"))
	}
}

func TestSortRecordsMissingYearSortsFirst(t *testing.T) {
	in := []Record{
		rec("id", "dated", FieldSentDate, "1/1/24"),
		rec("id", "undated", FieldSentDate, "soon"),
	}
	out := SortRecords(in, FieldSentDate, Ascending)
	if out[0].String("id") != "undated" {
		t.Fatalf("records without a year sort as year 0, got %v first", out[0].String("id"))
	}
}

func TestSortRecordsDefaultField(t *testing.T) {
	in := []Record{
		rec(FieldCharity, "banana"),
		rec(FieldCharity, "Apple"),
		rec(FieldCharity, "cherry"),
	}
	out := SortRecords(in, FieldCharity, Ascending)
	if out[0].String(FieldCharity) != "Apple" || out[2].String(FieldCharity) != "cherry" {
		t.Fatalf("locale compare order wrong: %v", out)
	}
}

func TestSortRecordsBoolField(t *testing.T) {
	in := []Record{
		rec("id", "a", FieldInternational, true),
		rec("id", "b", FieldInternational, false),
		rec("id", "c", FieldInternational, true),
	}
	out := SortRecords(in, FieldInternational, Ascending)
	if out[0].String("id") != "b" {
		t.Fatalf("ascending bool sort should put false first, got %v", out[0].String("id"))
	}
	if out[1].String("id") != "a" || out[2].String("id") != "c" {
		t.Fatalf("equal keys must keep input order: %v, %v", out[1].String("id"), out[2].String("id"))
	}

	down := SortRecords(in, FieldInternational, Descending)
	if down[2].String("id") != "b" {
		t.Fatalf("descending bool sort should put false last, got %v", down[2].String("id"))
	}
}

func TestSortRecordsMissingFieldSortsFirst(t *testing.T) {
	in := []Record{
		rec("id", "present", FieldCategory, "Relief"),
		rec("id", "absent"),
	}
	out := SortRecords(in, FieldCategory, Ascending)
	if out[0].String("id") != "absent" {
		t.Fatalf("records without the field sort as empty, got %v first", out[0].String("id"))
	}
}

func TestSortRecordsEmptyField(t *testing.T) {
	in := []Record{rec(FieldCharity, "A"), rec(FieldCharity, "B")}
	out := SortRecords(in, "", Ascending)
	if &out[0] != &in[0] {
		t.Fatal("empty field must return the original slice unchanged")
	}
}
