package ui

import (
	"fmt"
	"strings"

	"github.com/softglow/foyer/internal/content"
)

// renderSections renders every section as a titled group of items, in
// document order.
func renderSections(bb *bodyBuilder, sections []content.Section, st Styles, width int, focusIdx int) {
	itemNo := 0
	for _, section := range sections {
		if strings.TrimSpace(section.Title) != "" {
			bb.block(st.SectionTitle.Width(width).Render(section.Title))
			bb.blank()
		}
		for i := range section.Items {
			itemNo++
			renderItem(bb, &section.Items[i], st, width, focusIdx, itemNo)
			bb.blank()
		}
	}
}

// renderItem renders one item: optional image placeholder, optional
// heading, optional paragraphs, optional Steam link row. An item with
// neither heading nor text still renders its frame so the layout stays
// consistent. Every item is a focus target whether or not it carries a
// URL; the label comes from its heading.
func renderItem(bb *bodyBuilder, item *content.Item, st Styles, width int, focusIdx int, itemNo int) {
	label := strings.TrimSpace(item.Heading)
	if label == "" {
		label = fmt.Sprintf("Item %d", itemNo)
	}

	idx := len(bb.targets)
	bb.addTarget(target{
		kind:  targetItem,
		label: label,
		url:   item.SteamURL,
		line:  bb.line,
	})
	focused := idx == focusIdx

	innerWidth := width - 4 // frame borders and padding
	if innerWidth < 1 {
		innerWidth = 1
	}

	var rows []string
	if img := bb.imagePlaceholder(resolveAsset(bb, item.Image), st); img != "" {
		rows = append(rows, img)
	}
	if strings.TrimSpace(item.Heading) != "" {
		rows = append(rows, st.ItemHeading.Width(innerWidth).Render(item.Heading))
	}
	for _, para := range item.Text {
		rows = append(rows, st.Text.Width(innerWidth).Render(para))
	}
	if strings.TrimSpace(item.SteamURL) != "" {
		style := st.Link
		if focused {
			style = st.Link.Bold(true)
		}
		// The raw URL stays visible so the user can always open it by
		// hand, resolver or not.
		rows = append(rows,
			style.Render("▸ View on Steam")+"  "+
				st.FaintText.Render(truncate(item.SteamURL, innerWidth-18)))
	}
	if len(rows) == 0 {
		// Empty slot: the frame still occupies its place in the grid.
		rows = append(rows, st.FaintText.Render(" "))
	}

	frame := st.Frame
	if focused {
		frame = st.FocusedFrame
	}
	bb.block(frame.Width(width - 2).Render(strings.Join(rows, "\n")))
}
