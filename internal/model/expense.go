package model

// Expense is a general project expense priced per unit.
type Expense struct {
	ID       int     `yaml:"-"`
	Type     string  `yaml:"type"`
	Detail   string  `yaml:"detail"`
	Unit     string  `yaml:"unit"`
	UnitCost float64 `yaml:"unit_cost"`
	Quantity float64 `yaml:"quantity"`
	Total    float64 `yaml:"-"`
}

func (e *Expense) RecordID() int   { return e.ID }
func (e *Expense) AssignID(id int) { e.ID = id }
func (e *Expense) Derive()         { e.Total = e.UnitCost * e.Quantity }

func (e *Expense) Validate() error {
	if err := requireText("expense", "type", e.Type); err != nil {
		return err
	}
	if err := requireText("expense", "detail", e.Detail); err != nil {
		return err
	}
	return requirePositive("expense", "unitCost", e.UnitCost)
}

func (e *Expense) Set(field string, value any) error {
	var err error
	switch field {
	case "type":
		e.Type, err = setText(field, value, e.Type)
	case "detail":
		e.Detail, err = setText(field, value, e.Detail)
	case "unit":
		e.Unit, err = setText(field, value, e.Unit)
	case "unitCost":
		e.UnitCost, err = setNumber(field, value, e.UnitCost)
		e.Derive()
	case "quantity":
		e.Quantity, err = setNumber(field, value, e.Quantity)
		e.Derive()
	default:
		return unknownField("expense", field)
	}
	return err
}

// Flight is an authorized trip budget for a role.
type Flight struct {
	ID               int     `yaml:"-"`
	Role             string  `yaml:"role"`
	Origin           string  `yaml:"origin"`
	Destination      string  `yaml:"destination"`
	Frequency        float64 `yaml:"frequency"`
	AuthorizedAmount float64 `yaml:"authorized_amount"`
	TotalAmount      float64 `yaml:"-"`
}

func (f *Flight) RecordID() int   { return f.ID }
func (f *Flight) AssignID(id int) { f.ID = id }
func (f *Flight) Derive()         { f.TotalAmount = f.Frequency * f.AuthorizedAmount }

func (f *Flight) Validate() error {
	if err := requireText("flight", "role", f.Role); err != nil {
		return err
	}
	if err := requireText("flight", "origin", f.Origin); err != nil {
		return err
	}
	return requireText("flight", "destination", f.Destination)
}

func (f *Flight) Set(field string, value any) error {
	var err error
	switch field {
	case "role":
		f.Role, err = setText(field, value, f.Role)
	case "origin":
		f.Origin, err = setText(field, value, f.Origin)
	case "destination":
		f.Destination, err = setText(field, value, f.Destination)
	case "frequency":
		f.Frequency, err = setNumber(field, value, f.Frequency)
		f.Derive()
	case "authorizedAmount":
		f.AuthorizedAmount, err = setNumber(field, value, f.AuthorizedAmount)
		f.Derive()
	default:
		return unknownField("flight", field)
	}
	return err
}

// PerDiem is a weekly allowance for a role.
type PerDiem struct {
	ID           int     `yaml:"-"`
	Role         string  `yaml:"role"`
	WeeklyAmount float64 `yaml:"weekly_amount"`
	Weeks        float64 `yaml:"weeks"`
	TotalCost    float64 `yaml:"-"`
}

func (p *PerDiem) RecordID() int   { return p.ID }
func (p *PerDiem) AssignID(id int) { p.ID = id }
func (p *PerDiem) Derive()         { p.TotalCost = p.WeeklyAmount * p.Weeks }

func (p *PerDiem) Validate() error {
	if err := requireText("per diem", "role", p.Role); err != nil {
		return err
	}
	return requirePositive("per diem", "weeklyAmount", p.WeeklyAmount)
}

func (p *PerDiem) Set(field string, value any) error {
	var err error
	switch field {
	case "role":
		p.Role, err = setText(field, value, p.Role)
	case "weeklyAmount":
		p.WeeklyAmount, err = setNumber(field, value, p.WeeklyAmount)
		p.Derive()
	case "weeks":
		p.Weeks, err = setNumber(field, value, p.Weeks)
		p.Derive()
	default:
		return unknownField("per diem", field)
	}
	return err
}

// Insurance is a flat insurance amount; it has no derived total.
type Insurance struct {
	ID     int     `yaml:"-"`
	Type   string  `yaml:"type"`
	Role   string  `yaml:"role"`
	Amount float64 `yaml:"amount"`
}

func (i *Insurance) RecordID() int   { return i.ID }
func (i *Insurance) AssignID(id int) { i.ID = id }
func (i *Insurance) Derive()         {}

func (i *Insurance) Validate() error {
	if err := requireText("insurance", "type", i.Type); err != nil {
		return err
	}
	if err := requireText("insurance", "role", i.Role); err != nil {
		return err
	}
	return requirePositive("insurance", "amount", i.Amount)
}

func (i *Insurance) Set(field string, value any) error {
	var err error
	switch field {
	case "type":
		i.Type, err = setText(field, value, i.Type)
	case "role":
		i.Role, err = setText(field, value, i.Role)
	case "amount":
		i.Amount, err = setNumber(field, value, i.Amount)
	default:
		return unknownField("insurance", field)
	}
	return err
}
