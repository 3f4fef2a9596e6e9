package format

import (
	"testing"
	"time"
)

func TestDate(t *testing.T) {
	ts := time.Date(2023, 4, 5, 23, 59, 0, 0, time.UTC)
	if got := Date(ts); got != "2023-04-05" {
		t.Errorf("Date = %q", got)
	}
}

func TestShort(t *testing.T) {
	ts := time.Date(2023, 4, 5, 9, 7, 0, 0, time.UTC)
	if got := Short(LocaleNL, ts); got != "05-04-2023 09:07" {
		t.Errorf("Short(nl) = %q", got)
	}
	if got := Short(LocaleEN, ts); got != "4/5/23 9:07 AM" {
		t.Errorf("Short(en) = %q", got)
	}
	if got := Short(LocaleNL, time.Time{}); got != "" {
		t.Errorf("Short(zero) = %q, want empty", got)
	}
}

func TestLong(t *testing.T) {
	ts := time.Date(2023, 4, 5, 0, 0, 0, 0, time.UTC)
	if got := Long(LocaleNL, ts); got != "05-04-2023" {
		t.Errorf("Long(nl) = %q", got)
	}
	if got := Long(LocaleEN, ts); got != "Apr 5, 2023" {
		t.Errorf("Long(en) = %q", got)
	}
}
