package money

import "testing"

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"4279", "4279"},
		{"¥4279", "4279"},
		{"¥4,279", "4279"},
		{"￥12,345.50", "12345.5"},
		{"$29", "29"},
		{" 443 ", "443"},
		{"4279円", "4279"},
		{"-15", "-15"},
		{"3.", "3"},
		{"1e3", "1000"},
		{"¥1.5E+3円", "1500"},
		{"2.e2", "200"},
		{"12e", "12"},
		{"", "0"},
		{"n/a", "0"},
	}
	for _, c := range cases {
		got := ParseAmount(c.in)
		if got.String() != c.want {
			t.Errorf("ParseAmount(%q) = %s, want %s", c.in, got.String(), c.want)
		}
	}
}

func TestCompareByValue(t *testing.T) {
	if Compare("¥4,279", "4279.00") != 0 {
		t.Fatal("expected equal amounts regardless of formatting")
	}
	if Compare("999", "1,000") != -1 {
		t.Fatal("expected 999 < 1,000")
	}
	if Compare("1e3", "500") != 1 {
		t.Fatal("expected exponent form to compare by value")
	}
	if Compare("10000", "9999") != 1 {
		t.Fatal("expected numeric, not lexical, ordering")
	}
}

func TestDisplay(t *testing.T) {
	if got := Display("4279"); got != "¥4279" {
		t.Errorf("Display = %q", got)
	}
	if got := Display("¥4279"); got != "¥4279" {
		t.Errorf("Display duplicated prefix: %q", got)
	}
	if got := Display(""); got != "¥" {
		t.Errorf("Display empty = %q", got)
	}
}
