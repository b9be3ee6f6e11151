package tui

import (
	"algofit-storefront/internal/app/alert"
	"algofit-storefront/internal/app/catalog"
	"algofit-storefront/internal/app/countdown"
	"algofit-storefront/internal/app/ds"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const progressWidth = 24

// FormatPrice renders a plan price with thousands separators, e.g. "$1,250.50".
func FormatPrice(price float64) string {
	return "$" + humanize.FormatFloat("#,###.##", price)
}

// RenderPlans lists the plans of a page, one per line.
func RenderPlans(s Styles, plans []ds.Plan) string {
	var b strings.Builder
	for _, p := range plans {
		line := fmt.Sprintf("%4d  %-32s %s", p.ID, s.Name.Render(p.Name), s.Price.Render(FormatPrice(p.Price)))
		if !p.InSlot() {
			line += "  " + s.SoldOut.Render("full")
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderPager draws the page strip with the current page highlighted.
func RenderPager(s Styles, p catalog.Pager) string {
	if !p.Visible {
		return ""
	}
	parts := make([]string, 0, len(p.Tokens)+2)
	if p.ShowPrev {
		parts = append(parts, s.Dim.Render("‹"))
	}
	for _, t := range p.Tokens {
		switch {
		case t.IsEllipsis():
			parts = append(parts, s.Dim.Render(t.String()))
		case t.Page == p.Current:
			parts = append(parts, s.Current.Render(t.String()))
		default:
			parts = append(parts, t.String())
		}
	}
	if p.ShowNext {
		parts = append(parts, s.Dim.Render("›"))
	}
	return strings.Join(parts, " ") + "  " + s.Dim.Render(p.Label)
}

func RenderBadges(s Styles, badges []catalog.Badge) string {
	if len(badges) == 0 {
		return ""
	}
	out := make([]string, 0, len(badges))
	for _, b := range badges {
		out = append(out, s.Badge.Render(b.Label))
	}
	return strings.Join(out, " ")
}

func RenderNotice(s Styles, n *alert.Notice) string {
	if n == nil {
		return ""
	}
	st := n.Variant.Style()
	return s.noticeStyle(n.Variant).Render(st.Icon + " " + n.Message)
}

// RenderDiscount shows the time left and a progress bar of the elapsed span.
func RenderDiscount(s Styles, c countdown.Countdown, now time.Time) string {
	snap := c.Snapshot(now)
	if snap.Expired {
		return s.Dim.Render("Launch discount has ended")
	}
	filled := int(snap.Progress / 100 * progressWidth)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", progressWidth-filled)
	return fmt.Sprintf("%s %s %s",
		s.Warning.Render("Discount ends in "+snap.Remaining.String()),
		s.Progress.Render(bar),
		s.Dim.Render("until "+humanize.Time(snap.EndsAt)),
	)
}

// RenderSnapshot draws one catalog page the way both the interactive browser
// and the list command print it.
func RenderSnapshot(s Styles, snap catalog.Snapshot) string {
	var sections []string
	if badges := RenderBadges(s, snap.Badges); badges != "" {
		sections = append(sections, badges)
	}

	switch snap.State {
	case catalog.StateInitial, catalog.StateLoading:
		sections = append(sections, s.Dim.Render("Loading plans..."))
	case catalog.StateError:
		sections = append(sections, RenderNotice(s, snap.Notice))
	case catalog.StateEmpty:
		sections = append(sections, s.Dim.Render(snap.Message))
	case catalog.StateReady:
		sections = append(sections, strings.TrimRight(RenderPlans(s, snap.Items), "\n"))
		summary := fmt.Sprintf("%s plans", humanize.Comma(snap.Pagination.Total))
		if pager := RenderPager(s, snap.Pager); pager != "" {
			sections = append(sections, pager+"  "+s.Dim.Render(summary))
		} else {
			sections = append(sections, s.Dim.Render(summary))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
