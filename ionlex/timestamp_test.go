package ionlex

import "testing"

func TestIsLeapYear(t *testing.T) {
	cases := map[int]bool{
		2000: true,
		1900: false,
		2004: true,
		2023: false,
		2024: true,
	}
	for year, want := range cases {
		if got := IsLeapYear(year); got != want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", year, got, want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	if got := daysInMonth(2021, 2); got != 28 {
		t.Errorf("daysInMonth(2021, 2) = %d, want 28", got)
	}
	if got := daysInMonth(2020, 2); got != 29 {
		t.Errorf("daysInMonth(2020, 2) = %d, want 29", got)
	}
	if got := daysInMonth(2021, 4); got != 30 {
		t.Errorf("daysInMonth(2021, 4) = %d, want 30", got)
	}
	if got := daysInMonth(2021, 1); got != 31 {
		t.Errorf("daysInMonth(2021, 1) = %d, want 31", got)
	}
}

func TestTimestampInvalidMonth(t *testing.T) {
	tkn := NewStringTokenizer("2021-13-01T")
	_, err := tkn.CurrentToken()
	if err == nil {
		t.Fatal("expected an error for an out-of-range month")
	}
	lexErr, ok := err.(*LexError)
	if !ok || lexErr.Code != BadToken {
		t.Errorf("got %v, want a BadToken LexError", err)
	}
}

func TestTimestampInvalidDay(t *testing.T) {
	tkn := NewStringTokenizer("2021-02-30T")
	_, err := tkn.CurrentToken()
	if err == nil {
		t.Fatal("expected an error for Feb 30")
	}
}
