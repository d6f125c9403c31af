package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2024-02-29 ")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.February || d.Day() != 29 {
		t.Errorf("unexpected date %s", d)
	}

	for _, in := range []string{"2023-02-29", "10/05/2024", ""} {
		if _, err := ParseDate(in); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ParseDate(%q): expected ErrInvalidDate, got %v", in, err)
		}
	}
}

func TestDateOf_UsesLocationOfTime(t *testing.T) {
	mx := time.FixedZone("CST", -6*60*60)
	late := time.Date(2024, time.May, 10, 23, 30, 0, 0, mx)

	if got := DateOf(late); !got.Equal(NewDate(2024, time.May, 10)) {
		t.Errorf("expected local calendar date, got %s", got)
	}
	if got := DateOf(late.UTC()); !got.Equal(NewDate(2024, time.May, 11)) {
		t.Errorf("expected UTC calendar date, got %s", got)
	}
}

func TestDate_Arithmetic(t *testing.T) {
	d := NewDate(2024, time.February, 28)
	if got := d.AddDays(1); got.String() != "2024-02-29" {
		t.Errorf("unexpected AddDays: %s", got)
	}
	if got := d.AddDays(2); got.String() != "2024-03-01" {
		t.Errorf("unexpected AddDays across month: %s", got)
	}
	if d.DaysInMonth() != 29 || NewDate(2023, time.February, 1).DaysInMonth() != 28 {
		t.Errorf("unexpected days in month")
	}
	if d.Compare(d.AddDays(1)) != -1 || !d.Before(d.AddDays(1)) || !d.AddDays(1).After(d) {
		t.Errorf("unexpected ordering")
	}
}

func TestDate_JSON(t *testing.T) {
	var payload struct {
		Birth Date `json:"birth"`
		Empty Date `json:"empty"`
	}
	if err := json.Unmarshal([]byte(`{"birth":"1990-03-14","empty":""}`), &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !payload.Birth.Equal(NewDate(1990, time.March, 14)) || !payload.Empty.IsZero() {
		t.Errorf("unexpected decode: %+v", payload)
	}

	out, _ := json.Marshal(payload)
	if string(out) != `{"birth":"1990-03-14","empty":null}` {
		t.Errorf("unexpected encode: %s", out)
	}

	if err := json.Unmarshal([]byte(`{"birth":"14/03/1990"}`), &payload); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

func TestParseClock(t *testing.T) {
	valid := map[string]string{
		"9:05":     "09:05",
		"09:05":    "09:05",
		"23:59:59": "23:59",
		" 00:00 ":  "00:00",
	}
	for in, want := range valid {
		c, err := ParseClock(in)
		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error %v", in, err)
			continue
		}
		if c.String() != want {
			t.Errorf("ParseClock(%q) = %s, want %s", in, c, want)
		}
	}

	for _, in := range []string{"24:00", "12:60", "12", "12:5", "noon", "123:00", "12:00:61"} {
		if _, err := ParseClock(in); !errors.Is(err, ErrInvalidClock) {
			t.Errorf("ParseClock(%q): expected ErrInvalidClock, got %v", in, err)
		}
	}
}

func TestClock_CompareIsNumeric(t *testing.T) {
	// "9:00" sorts after "10:00" as a string; clocks must not.
	nine, _ := ParseClock("9:00")
	ten, _ := ParseClock("10:00")
	if nine.Compare(ten) != -1 || ten.Compare(nine) != 1 || nine.Compare(nine) != 0 {
		t.Errorf("unexpected clock ordering")
	}
}

func TestCompareSchedule_AndClone(t *testing.T) {
	a := Appointment{Date: NewDate(2024, 1, 2), Time: MustClock(9, 0), Services: []string{"Tradicional"}}
	b := Appointment{Date: NewDate(2024, 1, 2), Time: MustClock(10, 0)}
	c := Appointment{Date: NewDate(2024, 1, 1), Time: MustClock(18, 0)}

	if CompareSchedule(a, b) >= 0 || CompareSchedule(c, a) >= 0 || CompareSchedule(a, a) != 0 {
		t.Errorf("unexpected schedule ordering")
	}

	cp := a.Clone()
	cp.Services[0] = "Retoque"
	if a.Services[0] != "Tradicional" {
		t.Errorf("clone shares services slice")
	}
}

func TestParseStatus_Exact(t *testing.T) {
	if st, ok := ParseStatus("Completada"); !ok || st != StatusCompleted {
		t.Errorf("expected Completada to parse")
	}
	if _, ok := ParseStatus("completada"); ok {
		t.Errorf("expected case-sensitive match")
	}
}
