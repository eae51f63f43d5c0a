package model

import "time"

// BudgetBlock is one billing period on the project timeline.
type BudgetBlock struct {
	ID                 int     `yaml:"-"`
	Name               string  `yaml:"name"`
	Weeks              float64 `yaml:"weeks"`
	StartDate          string  `yaml:"start_date"`
	WeeklyBilling      float64 `yaml:"weekly_billing"`
	MonthlyAccumulated float64 `yaml:"monthly_accumulated"`
	EstimatedMargin    float64 `yaml:"estimated_margin"` // percent
}

// PeriodEnd is StartDate plus Weeks×7 days. It is computed on read and never stored.
// ok is false when StartDate does not parse.
func (b BudgetBlock) PeriodEnd() (time.Time, bool) {
	start, err := time.Parse(DateLayout, b.StartDate)
	if err != nil {
		return time.Time{}, false
	}
	days := time.Duration(b.Weeks * 7 * float64(24*time.Hour))
	return start.Add(days), true
}

func (b *BudgetBlock) RecordID() int   { return b.ID }
func (b *BudgetBlock) AssignID(id int) { b.ID = id }
func (b *BudgetBlock) Derive()         {}

func (b *BudgetBlock) Validate() error {
	if err := requireText("budget block", "name", b.Name); err != nil {
		return err
	}
	if err := requirePositive("budget block", "weeks", b.Weeks); err != nil {
		return err
	}
	// Any non-empty start is kept; PeriodEnd reports whether it parses.
	return requireText("budget block", "startDate", b.StartDate)
}

func (b *BudgetBlock) Set(field string, value any) error {
	var err error
	switch field {
	case "name":
		b.Name, err = setText(field, value, b.Name)
	case "weeks":
		b.Weeks, err = setNumber(field, value, b.Weeks)
	case "startDate":
		b.StartDate, err = setText(field, value, b.StartDate)
	case "weeklyBilling":
		b.WeeklyBilling, err = setNumber(field, value, b.WeeklyBilling)
	case "monthlyAccumulated":
		b.MonthlyAccumulated, err = setNumber(field, value, b.MonthlyAccumulated)
	case "estimatedMargin":
		b.EstimatedMargin, err = setNumber(field, value, b.EstimatedMargin)
	default:
		return unknownField("budget block", field)
	}
	return err
}
