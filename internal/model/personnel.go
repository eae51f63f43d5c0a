package model

// Personnel is one payroll line: a role billed weekly for a number of weeks.
type Personnel struct {
	ID         int     `yaml:"-"`
	Role       string  `yaml:"role"`
	Salary     float64 `yaml:"salary"`
	Weeks      float64 `yaml:"weeks"`
	Commission float64 `yaml:"commission"` // percent
}

// TotalCost is salary × weeks × (1 + commission/100).
// The percentage is applied before dividing so whole-number inputs stay exact
// (30000 × 12 at 10% is 396000, not 396000.00000000006).
func (p Personnel) TotalCost() float64 {
	return p.Salary * p.Weeks * (100 + p.Commission) / 100
}

func (p *Personnel) RecordID() int   { return p.ID }
func (p *Personnel) AssignID(id int) { p.ID = id }
func (p *Personnel) Derive()         {}

func (p *Personnel) Validate() error {
	if err := requireText("personnel", "role", p.Role); err != nil {
		return err
	}
	return requirePositive("personnel", "salary", p.Salary)
}

func (p *Personnel) Set(field string, value any) error {
	var err error
	switch field {
	case "role":
		p.Role, err = setText(field, value, p.Role)
	case "salary":
		p.Salary, err = setNumber(field, value, p.Salary)
	case "weeks":
		p.Weeks, err = setNumber(field, value, p.Weeks)
	case "commission":
		p.Commission, err = setNumber(field, value, p.Commission)
	default:
		return unknownField("personnel", field)
	}
	return err
}

// setText returns the coerced value, or the previous one when coercion fails.
func setText(field string, value any, prev string) (string, error) {
	s, err := toText(field, value)
	if err != nil {
		return prev, err
	}
	return s, nil
}

// setNumber returns the coerced value, or the previous one when coercion fails.
func setNumber(field string, value any, prev float64) (float64, error) {
	f, err := toFloat(field, value)
	if err != nil {
		return prev, err
	}
	return f, nil
}
