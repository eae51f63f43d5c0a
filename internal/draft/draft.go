// Package draft builds a session from a YAML draft document.
//
// Draft rows go through the same add gate as the form, so ids are always
// reassigned and invalid rows are skipped with a warning. Drafts are never
// written back.
package draft

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/theirongolddev/presupuesto/internal/model"
	"github.com/theirongolddev/presupuesto/internal/store"
)

// Document is the on-disk draft layout.
type Document struct {
	Project      model.ProjectData   `yaml:"project"`
	CurrentTab   string              `yaml:"current_tab,omitempty"`
	Personnel    []model.Personnel   `yaml:"personnel"`
	Expenses     []model.Expense     `yaml:"expenses"`
	Flights      []model.Flight      `yaml:"flights"`
	PerDiems     []model.PerDiem     `yaml:"per_diems"`
	Insurance    []model.Insurance   `yaml:"insurance"`
	BudgetBlocks []model.BudgetBlock `yaml:"budget_blocks"`
}

// Warning describes a draft row that was skipped.
type Warning struct {
	Section string
	Index   int
	Err     error
}

func (w Warning) Error() string {
	return fmt.Sprintf("%s[%d]: %v", w.Section, w.Index, w.Err)
}

func (w Warning) Unwrap() error { return w.Err }

// Load reads the draft at path.
func Load(path string) (*store.Session, []Warning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening draft: %w", err)
	}
	defer func() { _ = f.Close() }()

	s, warnings, err := Decode(f)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, warnings, nil
}

// Decode parses a draft document into a new session.
func Decode(r io.Reader) (*store.Session, []Warning, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("parsing draft: %w", err)
	}
	return doc.Session()
}

// Session builds a session from the document.
func (d Document) Session() (*store.Session, []Warning, error) {
	s := store.NewSession()
	s.Project = d.Project
	if d.CurrentTab != "" {
		tab, err := store.ParseTab(d.CurrentTab)
		if err != nil {
			return nil, nil, fmt.Errorf("draft current_tab: %w", err)
		}
		s.CurrentTab = tab
	}

	var warnings []Warning
	addAll(&s.Personnel, "personnel", d.Personnel, &warnings)
	addAll(&s.Expenses, "expenses", d.Expenses, &warnings)
	addAll(&s.Flights, "flights", d.Flights, &warnings)
	addAll(&s.PerDiems, "per_diems", d.PerDiems, &warnings)
	addAll(&s.Insurance, "insurance", d.Insurance, &warnings)
	addAll(&s.BudgetBlocks, "budget_blocks", d.BudgetBlocks, &warnings)
	return s, warnings, nil
}

func addAll[T any, P interface {
	*T
	model.Record
}](c *store.Collection[T, P], section string, rows []T, warnings *[]Warning) {
	for i, row := range rows {
		if _, err := c.Add(row); err != nil {
			*warnings = append(*warnings, Warning{Section: section, Index: i, Err: err})
		}
	}
}
