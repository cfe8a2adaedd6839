package ui

import (
	"errors"
	"shelf/internal/catalog"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func Theme() *huh.Theme {
	t := huh.ThemeBase()
	red := lipgloss.Color("1")
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.SetString("✗").Foreground(red)
	t.Blurred.ErrorMessage = t.Blurred.ErrorMessage.SetString("✗").Foreground(red)
	return t
}

func SortOptions() []huh.Option[catalog.SortKey] {
	opts := make([]huh.Option[catalog.SortKey], 0, len(catalog.SortKeys))
	for _, k := range catalog.SortKeys {
		opts = append(opts, huh.NewOption(k.Label(), k))
	}
	return opts
}

// NewSortPicker builds a one-question form that writes the chosen key to key.
func NewSortPicker(key *catalog.SortKey) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[catalog.SortKey]().
				Title("Sort by").
				Options(SortOptions()...).
				Value(key),
		),
	).WithTheme(Theme())
}

// PickSort asks for a sort key, starting from current. An aborted form keeps
// current.
func PickSort(current catalog.SortKey) (catalog.SortKey, error) {
	key := catalog.ParseSortKey(string(current))
	if err := NewSortPicker(&key).Run(); err != nil {
		return current, handlePickerError(err)
	}
	return key, nil
}

func handlePickerError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}
