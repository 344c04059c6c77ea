package models

import (
	"encoding/json"
	"testing"
)

func TestParseIncomeCategory(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"STARTUP", true},
		{"JOB", true},
		{"FREELANCE", true},
		{"SOCIAL_MEDIA", true},
		{"job", false},
		{"BILLS_RECHARGE", false},
		{"", false},
	}
	for _, tc := range cases {
		c, err := ParseIncomeCategory(tc.in)
		if tc.ok && err != nil {
			t.Fatalf("%q: expected ok, got %v", tc.in, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("%q: expected error", tc.in)
		}
		if tc.ok && c.String() != tc.in {
			t.Fatalf("%q: round trip gave %q", tc.in, c.String())
		}
	}
}

func TestParseExpenseCategory(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"BILLS_RECHARGE", true},
		{"TRAVELING", true},
		{"ENTERTAINMENT", true},
		{"EDUCATION_COURSES", true},
		{"JOB", false},
		{"", false},
	}
	for _, tc := range cases {
		c, err := ParseExpenseCategory(tc.in)
		if tc.ok && err != nil {
			t.Fatalf("%q: expected ok, got %v", tc.in, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("%q: expected error", tc.in)
		}
		if tc.ok && c.String() != tc.in {
			t.Fatalf("%q: round trip gave %q", tc.in, c.String())
		}
	}
}

func TestIncomeCategoryJSON(t *testing.T) {
	b, err := json.Marshal(IncomeJob)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"JOB"` {
		t.Fatalf("expected \"JOB\", got %s", b)
	}

	var c IncomeCategory
	if err := json.Unmarshal([]byte(`"FREELANCE"`), &c); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if c != IncomeFreelance {
		t.Fatalf("expected FREELANCE, got %v", c)
	}

	if err := json.Unmarshal([]byte(`"GAMBLING"`), &c); err == nil {
		t.Fatalf("expected error for unknown category")
	}

	if _, err := json.Marshal(IncomeCategory(99)); err == nil {
		t.Fatalf("expected error for out-of-range category")
	}
}

func TestIncomeCategoryTotals(t *testing.T) {
	var totals IncomeCategoryTotals
	totals.Add(IncomeJob, 1000)
	totals.Add(IncomeJob, 250)
	totals.Add(IncomeFreelance, 500)

	m := totals.ToMap()
	if len(m) != 2 {
		t.Fatalf("expected 2 categories, got %d: %v", len(m), m)
	}
	if m["JOB"] != 1250 {
		t.Fatalf("JOB: expected 1250, got %v", m["JOB"])
	}
	if m["FREELANCE"] != 500 {
		t.Fatalf("FREELANCE: expected 500, got %v", m["FREELANCE"])
	}
	if _, present := m["STARTUP"]; present {
		t.Fatalf("STARTUP must be absent, not zero-filled")
	}
}

func TestExpenseCategoryTotalsEmpty(t *testing.T) {
	var totals ExpenseCategoryTotals
	if len(totals.ToMap()) != 0 {
		t.Fatalf("empty totals must produce an empty map")
	}
}
