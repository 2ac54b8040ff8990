package helper

import "testing"

func TestAchievement(t *testing.T) {
	tests := []struct {
		count  int64
		target int
		want   int
	}{
		{0, 0, 0},
		{5, 0, 0},
		{5, -10, 0},
		{0, 100, 0},
		{1, 3, 33},
		{2, 3, 67},
		{50, 100, 50},
		{150, 100, 150},
	}
	for _, tt := range tests {
		if got := Achievement(tt.count, tt.target); got != tt.want {
			t.Errorf("Achievement(%d, %d) = %d, want %d", tt.count, tt.target, got, tt.want)
		}
	}
}

func TestPotensiSuara(t *testing.T) {
	if got := PotensiSuara(7); got != 35 {
		t.Fatalf("PotensiSuara(7) = %d, want 35", got)
	}
}
