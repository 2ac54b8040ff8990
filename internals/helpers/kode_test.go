package helper

import "testing"

func TestFormatKode(t *testing.T) {
	tests := map[int]string{1: "REL0001", 42: "REL0042", 9999: "REL9999", 10000: "REL10000"}
	for seq, want := range tests {
		if got := FormatKode("REL", seq); got != want {
			t.Errorf("FormatKode(REL, %d) = %s, want %s", seq, got, want)
		}
	}
}

func TestParseKodeSeq(t *testing.T) {
	tests := []struct {
		kode string
		want int
	}{
		{"KOR0005", 5},
		{"KOR10000", 10000},
		{"REL0005", 0},
		{"KORabc", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := ParseKodeSeq("KOR", tt.kode); got != tt.want {
			t.Errorf("ParseKodeSeq(%q) = %d, want %d", tt.kode, got, tt.want)
		}
	}
}
