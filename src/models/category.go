package models

import (
	"encoding/json"
	"fmt"
)

// IncomeCategory and ExpenseCategory are closed sets. They are int-typed so
// per-category accumulation can use fixed-size counters instead of free-form
// string keys.

type IncomeCategory int

const (
	IncomeStartup IncomeCategory = iota
	IncomeJob
	IncomeFreelance
	IncomeSocialMedia
	NumIncomeCategories
)

var incomeCategoryLabels = [NumIncomeCategories]string{
	IncomeStartup:     "STARTUP",
	IncomeJob:         "JOB",
	IncomeFreelance:   "FREELANCE",
	IncomeSocialMedia: "SOCIAL_MEDIA",
}

func ParseIncomeCategory(s string) (IncomeCategory, error) {
	for c, label := range incomeCategoryLabels {
		if label == s {
			return IncomeCategory(c), nil
		}
	}
	return 0, fmt.Errorf("unknown income category %q", s)
}

func (c IncomeCategory) Valid() bool {
	return c >= 0 && c < NumIncomeCategories
}

func (c IncomeCategory) String() string {
	if !c.Valid() {
		return fmt.Sprintf("IncomeCategory(%d)", int(c))
	}
	return incomeCategoryLabels[c]
}

func (c IncomeCategory) MarshalJSON() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid income category %d", int(c))
	}
	return json.Marshal(incomeCategoryLabels[c])
}

func (c *IncomeCategory) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseIncomeCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

type ExpenseCategory int

const (
	ExpenseBillsRecharge ExpenseCategory = iota
	ExpenseTraveling
	ExpenseEntertainment
	ExpenseEducationCourses
	NumExpenseCategories
)

var expenseCategoryLabels = [NumExpenseCategories]string{
	ExpenseBillsRecharge:    "BILLS_RECHARGE",
	ExpenseTraveling:        "TRAVELING",
	ExpenseEntertainment:    "ENTERTAINMENT",
	ExpenseEducationCourses: "EDUCATION_COURSES",
}

func ParseExpenseCategory(s string) (ExpenseCategory, error) {
	for c, label := range expenseCategoryLabels {
		if label == s {
			return ExpenseCategory(c), nil
		}
	}
	return 0, fmt.Errorf("unknown expense category %q", s)
}

func (c ExpenseCategory) Valid() bool {
	return c >= 0 && c < NumExpenseCategories
}

func (c ExpenseCategory) String() string {
	if !c.Valid() {
		return fmt.Sprintf("ExpenseCategory(%d)", int(c))
	}
	return expenseCategoryLabels[c]
}

func (c ExpenseCategory) MarshalJSON() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid expense category %d", int(c))
	}
	return json.Marshal(expenseCategoryLabels[c])
}

func (c *ExpenseCategory) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseExpenseCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// IncomeCategoryTotals accumulates per-category sums over one pass. Counts
// are tracked separately so a category with no transactions is absent from
// the output map rather than zero-filled.
type IncomeCategoryTotals struct {
	sums   [NumIncomeCategories]float64
	counts [NumIncomeCategories]int
}

func (t *IncomeCategoryTotals) Add(c IncomeCategory, amount float64) {
	if !c.Valid() {
		return
	}
	t.sums[c] += amount
	t.counts[c]++
}

func (t *IncomeCategoryTotals) ToMap() map[string]float64 {
	m := make(map[string]float64)
	for c := IncomeCategory(0); c < NumIncomeCategories; c++ {
		if t.counts[c] > 0 {
			m[incomeCategoryLabels[c]] = t.sums[c]
		}
	}
	return m
}

type ExpenseCategoryTotals struct {
	sums   [NumExpenseCategories]float64
	counts [NumExpenseCategories]int
}

func (t *ExpenseCategoryTotals) Add(c ExpenseCategory, amount float64) {
	if !c.Valid() {
		return
	}
	t.sums[c] += amount
	t.counts[c]++
}

func (t *ExpenseCategoryTotals) ToMap() map[string]float64 {
	m := make(map[string]float64)
	for c := ExpenseCategory(0); c < NumExpenseCategories; c++ {
		if t.counts[c] > 0 {
			m[expenseCategoryLabels[c]] = t.sums[c]
		}
	}
	return m
}
