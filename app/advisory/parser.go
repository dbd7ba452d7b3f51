package advisory

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Parser extracts a structured record from a NOTAM detail page. The
// upstream markup carries no machine-readable schema, only recurring
// English labels inside generic tables, so extraction is driven by
// label containment rather than structural position. Run never fails:
// sections the markup does not contain leave the matching fields at
// their zero value.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// rowRule maps a label substring to the field that receives the last
// cell of any row whose flattened text contains the label. Rules are
// applied in document order, so a label appearing in several rows
// resolves to the last one.
type rowRule struct {
	label  string
	assign func(*Parsed, string)
}

var metadataRules = []rowRule{
	{"Issue Date", func(p *Parsed, v string) { p.IssueDate = v }},
	{"Location", func(p *Parsed, v string) { p.Location = v }},
	{"Beginning Date", func(p *Parsed, v string) { p.Begin = v }},
	{"Ending Date", func(p *Parsed, v string) { p.End = v }},
	{"Reason", func(p *Parsed, v string) { p.Reason = v }},
	{"Type", func(p *Parsed, v string) { p.Type = v }},
	{"Replaced NOTAM", func(p *Parsed, v string) { p.Replaced = v }},
}

var airspaceRules = []rowRule{
	{"Center:", func(p *Parsed, v string) { p.Airspace.Center = v }},
	{"Radius:", func(p *Parsed, v string) { p.Airspace.Radius = v }},
	{"Altitude:", func(p *Parsed, v string) { p.Airspace.Altitude = v }},
	{"Effective Date", func(p *Parsed, v string) { p.Airspace.Effective = append(p.Airspace.Effective, v) }},
}

func (p *Parser) Run(markup string) Parsed {
	var detail Parsed

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return detail
	}

	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		tableText := flattenText(table)

		// Classifiers are independent: one table may feed several
		// sections.
		if strings.Contains(tableText, "Issue Date") {
			if strings.Contains(tableText, "NOTAM Number") {
				detail.NOTAMID = extractNOTAMID(table)
			}
			applyRowRules(table, metadataRules, &detail)
		}

		if strings.Contains(tableText, "Airspace Definition") {
			applyRowRules(table, airspaceRules, &detail)
		}

		if strings.Contains(tableText, "Operating Restrictions and Requirements") {
			detail.Restrictions = tableText
		}

		if strings.Contains(tableText, "Other Information") {
			detail.OtherInfo = tableText
		}
	})

	return detail
}

func applyRowRules(table *goquery.Selection, rules []rowRule, detail *Parsed) {
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() == 0 {
			return
		}

		rowText := flattenText(row)
		lastCell := flattenText(cells.Last())
		for _, rule := range rules {
			if strings.Contains(rowText, rule.label) {
				rule.assign(detail, lastCell)
			}
		}
	})
}

// extractNOTAMID pulls the identifier out of the first row's last cell,
// preferring the inner font element the FAA pages wrap it in, and
// strips the "FDC" prefix.
func extractNOTAMID(table *goquery.Selection) string {
	cells := table.Find("tr").First().Find("td")
	if cells.Length() == 0 {
		return ""
	}

	target := cells.Last()
	if font := target.Find("font"); font.Length() > 0 {
		target = font.First()
	}

	return strings.TrimSpace(strings.ReplaceAll(flattenText(target), "FDC", ""))
}

// flattenText collects every text node under the selection, trims each
// fragment, drops empty ones and joins the rest with single spaces.
// Literal \r and \n escape sequences show up in some detail pages and
// are stripped as well.
func flattenText(s *goquery.Selection) string {
	var parts []string
	for _, node := range s.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, " ")
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		t := strings.ReplaceAll(n.Data, `\r`, "")
		t = strings.ReplaceAll(t, `\n`, "")
		t = strings.TrimSpace(t)
		if t != "" {
			*parts = append(*parts, t)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
