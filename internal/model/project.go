package model

// ProjectData holds the general project header fields.
type ProjectData struct {
	CompanyName string  `yaml:"company_name"`
	ProjectName string  `yaml:"project_name"`
	Duration    float64 `yaml:"duration"` // weeks
	Manager     string  `yaml:"manager"`
	StartDate   string  `yaml:"start_date"`
	EndDate     string  `yaml:"end_date"`
}

// HeaderComplete reports whether company, project and manager are all filled in.
func (p ProjectData) HeaderComplete() bool {
	return p.CompanyName != "" && p.ProjectName != "" && p.Manager != ""
}

// Set replaces one header field by name. Header fields are never validated.
func (p *ProjectData) Set(field string, value any) error {
	var err error
	switch field {
	case "companyName":
		p.CompanyName, err = setText(field, value, p.CompanyName)
	case "projectName":
		p.ProjectName, err = setText(field, value, p.ProjectName)
	case "duration":
		p.Duration, err = setNumber(field, value, p.Duration)
	case "manager":
		p.Manager, err = setText(field, value, p.Manager)
	case "startDate":
		p.StartDate, err = setText(field, value, p.StartDate)
	case "endDate":
		p.EndDate, err = setText(field, value, p.EndDate)
	default:
		return unknownField("project", field)
	}
	return err
}
