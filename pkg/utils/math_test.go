package utils

import "testing"

func TestClamp(t *testing.T) {
	cases := []struct{ x, lo, hi, want int }{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}
	for _, c := range cases {
		if got := Clamp(c.x, c.lo, c.hi); got != c.want {
			t.Errorf("Clamp(%d,%d,%d) = %d, want %d", c.x, c.lo, c.hi, got, c.want)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(-3) != 3 || Abs(3) != 3 || Abs(0) != 0 {
		t.Fatal("Abs is wrong")
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(2, 4, 0.5); got != 3 {
		t.Fatalf("Lerp = %f, want 3", got)
	}
	if got := Lerp(2, 4, 0); got != 2 {
		t.Fatalf("Lerp at 0 = %f, want 2", got)
	}
}

func TestNormalizeDegrees(t *testing.T) {
	cases := map[float32]float32{
		0:    0,
		180:  180,
		-180: 180,
		270:  -90,
		-450: -90,
		720:  0,
	}
	for in, want := range cases {
		if got := NormalizeDegrees(in); got != want {
			t.Errorf("NormalizeDegrees(%f) = %f, want %f", in, got, want)
		}
	}
}
