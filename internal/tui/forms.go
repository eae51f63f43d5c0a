package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/presupuesto/internal/model"
	"github.com/theirongolddev/presupuesto/internal/store"

	"github.com/charmbracelet/huh"
)

type formMode int

const (
	formNone formMode = iota
	formAdd
	formEdit
	formProject
	formDelete
)

// editState backs the open form. values are bound to the form inputs, so the
// slice is allocated once and never grown.
type editState struct {
	mode     formMode
	sec      sectionID
	id       int
	fields   []field
	values   []string
	original []string
	confirm  bool
}

func validateField(f field) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		switch f.kind {
		case fieldNumber:
			if _, err := strconv.ParseFloat(s, 64); err != nil {
				return errors.New("ingrese un número")
			}
		case fieldDate:
			if _, err := time.Parse(model.DateLayout, s); err != nil {
				return errors.New("use el formato AAAA-MM-DD")
			}
		}
		return nil
	}
}

func newFieldsForm(title string, st *editState) *huh.Form {
	inputs := make([]huh.Field, 0, len(st.fields))
	for i, f := range st.fields {
		in := huh.NewInput().
			Key(f.key).
			Title(f.label).
			Value(&st.values[i]).
			Validate(validateField(f))
		if f.placeholder != "" {
			in = in.Placeholder(f.placeholder)
		}
		inputs = append(inputs, in)
	}
	return huh.NewForm(huh.NewGroup(inputs...).Title(title)).
		WithShowHelp(true)
}

func newAddState(id sectionID, sec *section) *editState {
	return &editState{
		mode:   formAdd,
		sec:    id,
		fields: sec.fields,
		values: make([]string, len(sec.fields)),
	}
}

func newEditState(id sectionID, sec *section, s *store.Session, rowID int) *editState {
	vals := sec.values(s, rowID)
	return &editState{
		mode:     formEdit,
		sec:      id,
		id:       rowID,
		fields:   sec.fields,
		values:   append([]string(nil), vals...),
		original: vals,
	}
}

func newProjectState(p model.ProjectData) *editState {
	vals := projectValues(p)
	return &editState{
		mode:     formProject,
		fields:   projectFields,
		values:   append([]string(nil), vals...),
		original: vals,
	}
}

func newDeleteForm(st *editState, what string) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("¿Eliminar %s?", what)).
			Affirmative("Eliminar").
			Negative("Cancelar").
			Value(&st.confirm),
	))
}

// changed returns the fields whose value differs from when the form opened.
// An emptied number field means zero.
func (st *editState) changed() (keys, vals []string) {
	for i, f := range st.fields {
		v := strings.TrimSpace(st.values[i])
		if v == strings.TrimSpace(st.original[i]) {
			continue
		}
		if v == "" && f.kind == fieldNumber {
			v = "0"
		}
		keys = append(keys, f.key)
		vals = append(vals, v)
	}
	return keys, vals
}

// apply commits a completed form to the session and returns the status text.
func (st *editState) apply(s *store.Session, sections map[sectionID]*section) (string, error) {
	switch st.mode {
	case formAdd:
		sec := sections[st.sec]
		id, err := sec.add(s, st.values)
		if err != nil {
			return "", fmt.Errorf("no se agregó el registro: %w", err)
		}
		return fmt.Sprintf("%s: registro #%d agregado", sec.title, id), nil

	case formEdit:
		sec := sections[st.sec]
		keys, vals := st.changed()
		for i, k := range keys {
			if err := sec.update(s, st.id, k, vals[i]); err != nil {
				return "", fmt.Errorf("no se actualizó #%d: %w", st.id, err)
			}
		}
		if len(keys) == 0 {
			return "Sin cambios", nil
		}
		return fmt.Sprintf("%s: registro #%d actualizado", sec.title, st.id), nil

	case formProject:
		keys, vals := st.changed()
		for i, k := range keys {
			if err := s.SetProjectField(k, vals[i]); err != nil {
				return "", fmt.Errorf("datos del proyecto: %w", err)
			}
		}
		return "Datos del proyecto actualizados", nil

	case formDelete:
		if !st.confirm {
			return "", nil
		}
		sec := sections[st.sec]
		if !sec.remove(s, st.id) {
			return "", nil
		}
		return fmt.Sprintf("%s: registro #%d eliminado", sec.title, st.id), nil
	}
	return "", nil
}
