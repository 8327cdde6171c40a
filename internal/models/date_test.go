package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"2024-05-10", false},
		{"2000-01-01", false},
		{"2024-02-29", false},
		{"", true},
		{"10/05/2024", true},
		{"2024-5-10", true},
		{"2024-05-10T00:00:00Z", true},
		{"2024-13-01", true},
		{"hoje", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q): esperava erro, obteve %v", tt.input, d)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q): %v", tt.input, err)
			}
			if d.String() != tt.input {
				t.Errorf("String() = %q, esperava %q", d.String(), tt.input)
			}
		})
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.May, 10)

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2024-05-10"` {
		t.Fatalf("marshal = %s, esperava %q", b, `"2024-05-10"`)
	}

	var out Date
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.Equal(d.Time) {
		t.Errorf("round trip alterou a data: %v != %v", out, d)
	}
}

func TestDateUnmarshalNull(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`null`), &d); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !d.IsZero() {
		t.Errorf("null deveria deixar a data zerada, obteve %v", d)
	}
}

func TestDateUnmarshalInvalid(t *testing.T) {
	for _, input := range []string{`"10/05/2024"`, `20240510`, `""`} {
		var d Date
		if err := json.Unmarshal([]byte(input), &d); err == nil {
			t.Errorf("unmarshal %s: esperava erro", input)
		}
	}
}

func TestDateScan(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("scan time.Time: %v", err)
	}
	if d.String() != "2024-05-10" {
		t.Errorf("scan time.Time = %q", d.String())
	}

	if err := d.Scan("2023-12-31"); err != nil {
		t.Fatalf("scan string: %v", err)
	}
	if d.String() != "2023-12-31" {
		t.Errorf("scan string = %q", d.String())
	}

	if err := d.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if !d.IsZero() {
		t.Errorf("scan nil deveria zerar a data")
	}

	if err := d.Scan(42); err == nil {
		t.Errorf("scan int: esperava erro")
	}
}
