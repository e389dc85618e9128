package render

import (
	"strconv"
	"strings"
)

// PageButtonKind distinguishes the entries of a pager.
type PageButtonKind int

const (
	PageNumber PageButtonKind = iota
	PageEllipsis
	PageLast
)

// PageButton is one pager entry. Page is zero for the ellipsis.
type PageButton struct {
	Kind   PageButtonKind
	Page   int
	Active bool
}

// Label is the text shown on the button.
func (b PageButton) Label() string {
	switch b.Kind {
	case PageEllipsis:
		return "..."
	case PageLast:
		return "Last"
	default:
		return strconv.Itoa(b.Page)
	}
}

// PageButtons lists pages 1..total when total is at most 5, otherwise
// pages 1-4, an ellipsis and a Last button. A single page needs no pager.
func PageButtons(total, current int) []PageButton {
	if total <= 1 {
		return nil
	}
	var out []PageButton
	if total <= 5 {
		for p := 1; p <= total; p++ {
			out = append(out, PageButton{Kind: PageNumber, Page: p, Active: p == current})
		}
		return out
	}
	for p := 1; p <= 4; p++ {
		out = append(out, PageButton{Kind: PageNumber, Page: p, Active: p == current})
	}
	out = append(out,
		PageButton{Kind: PageEllipsis},
		PageButton{Kind: PageLast, Page: total, Active: total == current},
	)
	return out
}

// RenderPaging draws the pager on one line with the active page highlighted.
func RenderPaging(total, current int) string {
	buttons := PageButtons(total, current)
	if len(buttons) == 0 {
		return ""
	}
	parts := make([]string, 0, len(buttons))
	for _, b := range buttons {
		label := b.Label()
		switch {
		case b.Kind == PageEllipsis:
			parts = append(parts, Dim(label))
		case b.Active:
			parts = append(parts, StyleSelected.Render("["+label+"]"))
		default:
			parts = append(parts, "["+label+"]")
		}
	}
	return strings.Join(parts, " ")
}
