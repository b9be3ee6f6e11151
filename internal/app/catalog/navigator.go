package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultSiblingCount  = 1
	DefaultBoundaryCount = 1
)

// Token is one slot of the page strip: a page number or an ellipsis.
type Token struct {
	Page     int    `json:"page,omitempty"`
	Ellipsis string `json:"ellipsis,omitempty"`
}

const (
	EllipsisStart = "start"
	EllipsisEnd   = "end"
)

func PageToken(page int) Token { return Token{Page: page} }

func EllipsisToken(pos string) Token { return Token{Ellipsis: pos} }

func (t Token) IsEllipsis() bool { return t.Ellipsis != "" }

func (t Token) String() string {
	if t.IsEllipsis() {
		return "…"
	}
	return strconv.Itoa(t.Page)
}

// Pager is everything needed to render the pagination controls.
type Pager struct {
	Visible    bool    `json:"visible"`
	Current    int     `json:"current"`
	TotalPages int     `json:"total_pages"`
	Tokens     []Token `json:"tokens"`
	ShowFirst  bool    `json:"show_first"`
	ShowPrev   bool    `json:"show_prev"`
	ShowNext   bool    `json:"show_next"`
	ShowLast   bool    `json:"show_last"`
	Label      string  `json:"label,omitempty"`
}

// Navigate computes the page strip for the given position. With at most
// totalBlocks pages every page is listed; otherwise the strip keeps
// boundaryCount pages at each end, siblingCount pages around the current one,
// and fills each gap with an ellipsis, or with the single missing page when
// the gap is exactly one page wide.
func Navigate(totalPages, currentPage, siblingCount, boundaryCount int) Pager {
	if totalPages <= 1 {
		return Pager{Current: 1, TotalPages: max(totalPages, 0), Tokens: []Token{}}
	}
	siblingCount = max(siblingCount, 0)
	boundaryCount = max(boundaryCount, 0)
	currentPage = clamp(currentPage, 1, totalPages)

	p := Pager{
		Visible:    true,
		Current:    currentPage,
		TotalPages: totalPages,
		ShowFirst:  currentPage > 1,
		ShowPrev:   currentPage > 1,
		ShowNext:   currentPage < totalPages,
		ShowLast:   currentPage < totalPages,
		Label:      fmt.Sprintf("Page %d of %d", currentPage, totalPages),
	}

	totalBlocks := siblingCount*2 + 3 + boundaryCount*2 + 2
	if totalPages <= totalBlocks {
		p.Tokens = make([]Token, 0, totalPages)
		for i := 1; i <= totalPages; i++ {
			p.Tokens = append(p.Tokens, PageToken(i))
		}
		return p
	}

	siblingsStart := max(
		min(currentPage-siblingCount, totalPages-boundaryCount-siblingCount*2-1),
		boundaryCount+2,
	)
	siblingsEnd := min(
		max(currentPage+siblingCount, boundaryCount+siblingCount*2+2),
		totalPages-boundaryCount-1,
	)

	tokens := make([]Token, 0, totalBlocks)
	for i := 1; i <= boundaryCount; i++ {
		tokens = append(tokens, PageToken(i))
	}

	if siblingsStart > boundaryCount+2 {
		tokens = append(tokens, EllipsisToken(EllipsisStart))
	} else if boundaryCount+1 < totalPages-boundaryCount {
		tokens = append(tokens, PageToken(boundaryCount+1))
	}

	for i := siblingsStart; i <= siblingsEnd; i++ {
		tokens = append(tokens, PageToken(i))
	}

	if siblingsEnd < totalPages-boundaryCount-1 {
		tokens = append(tokens, EllipsisToken(EllipsisEnd))
	} else if totalPages-boundaryCount > boundaryCount {
		tokens = append(tokens, PageToken(totalPages-boundaryCount))
	}

	for i := totalPages - boundaryCount + 1; i <= totalPages; i++ {
		tokens = append(tokens, PageToken(i))
	}

	p.Tokens = tokens
	return p
}

// Prev and Next return the neighbouring pages, clamped to the strip.
func (p Pager) Prev() int { return max(p.Current-1, 1) }

func (p Pager) Next() int { return min(p.Current+1, max(p.TotalPages, 1)) }

// String renders the strip the way the terminal client prints it, e.g. "1 … 9 [10] 11 … 20".
func (p Pager) String() string {
	if !p.Visible {
		return ""
	}
	parts := make([]string, 0, len(p.Tokens))
	for _, t := range p.Tokens {
		if !t.IsEllipsis() && t.Page == p.Current {
			parts = append(parts, "["+t.String()+"]")
			continue
		}
		parts = append(parts, t.String())
	}
	return strings.Join(parts, " ")
}

// JumpTo parses the "go to page" input. Only whole pages inside [1, totalPages] are accepted.
func JumpTo(input string, totalPages int) (int, bool) {
	page, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || page < 1 || page > totalPages {
		return 0, false
	}
	return page, true
}
