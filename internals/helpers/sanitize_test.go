package helper

import "testing"

func TestCleanText(t *testing.T) {
	tests := map[string]string{
		"  Budi  ":                       "Budi",
		"<b>Jl.</b> Sukajadi":            "Jl. Sukajadi",
		"<script>alert(1)</script>Ahmad": "Ahmad",
		"Tom & Jerry":                    "Tom & Jerry",
		"":                               "",
	}
	for in, want := range tests {
		if got := CleanText(in); got != want {
			t.Errorf("CleanText(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNilIfEmpty(t *testing.T) {
	if NilIfEmpty("  ") != nil {
		t.Fatal("blank should be nil")
	}
	if v := NilIfEmpty(" a@b.c "); v == nil || *v != "a@b.c" {
		t.Fatalf("got %v", v)
	}
}
