package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var styles = NewPalette("#7D56F4", "#04B575", "#FF0000", "#FFA500", "#626262")

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title lipgloss.Style
	ok    lipgloss.Style
	err   lipgloss.Style
	warn  lipgloss.Style
	help  lipgloss.Style
}

func NewPalette(t, s, e, w, h string) *Palette {
	return &Palette{
		title: NewBold(t).MarginBottom(1),
		ok:    NewBold(s),
		err:   NewBold(e),
		warn:  NewStyle(w),
		help:  NewEm(h),
	}
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}

// ink identifies a canvas cell style.
type ink int

const (
	inkNone ink = iota
	inkRow
	inkCard
	inkCardFocus
	inkFlight
	inkPlaceholder
	inkBig
	inkSmall
	inkBigAlt
	inkSmallAlt
)

// inks maps canvas styles to lipgloss styles.
var inks = map[ink]lipgloss.Style{
	inkNone:        lipgloss.NewStyle(),
	inkRow:         NewStyle("#EF4444"),
	inkCard:        NewStyle("#EEEEEE"),
	inkCardFocus:   NewBold("#7D56F4"),
	inkFlight:      NewBold("#04B575"),
	inkPlaceholder: NewStyle("#626262").Faint(true),
	inkBig:         NewStyle("#0099FF"),
	inkSmall:       NewBold("#0099FF"),
	inkBigAlt:      NewStyle("#8855FF"),
	inkSmallAlt:    NewBold("#8855FF"),
}
