package docs

import (
	"fmt"
	"io"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/agentstation/spotmap/pkg/catalogs"
	"github.com/agentstation/spotmap/pkg/query"
	"github.com/agentstation/spotmap/pkg/selection"
)

const dateLayout = "January 2, 2006"

func (g *Generator) writeIndex(w io.Writer, cat catalogs.Reader, engine *query.Engine) error {
	doc := md.NewMarkdown(w)

	doc.H1("🗾 Spot Catalog").
		PlainText("Tourist spots across the Greater Tokyo area, grouped by prefecture.").
		LF().
		PlainText(md.Italic("Last Updated: " + g.clock.Now().Format(dateLayout))).
		LF()

	rows := make([][]string, 0, cat.Regions().Len())
	for _, region := range cat.AllRegions() {
		spots := engine.Query(query.Filter{Region: region.ID, Category: query.All, Sort: query.SortRating})
		top := "-"
		if len(spots) > 0 {
			top = displayName(spots[0])
		}
		rows = append(rows, []string{
			md.Link(region.Name, RegionFile(region.ID)),
			cell(region.NameEn),
			fmt.Sprintf("%d", len(spots)),
			cell(top),
		})
	}
	doc.H2("Regions").
		Table(md.TableSet{
			Header: []string{"Region", "English", "Spots", "Highest Rated"},
			Rows:   rows,
		})

	doc.H2("Categories").
		Table(md.TableSet{
			Header: []string{"Category", "Name", "Spots"},
			Rows:   categoryRows(engine),
		})

	doc.PlainTextf("%d spots in %d regions.", cat.Spots().Len(), cat.Regions().Len())

	return doc.Build()
}

func categoryRows(engine *query.Engine) [][]string {
	var rows [][]string
	for _, opt := range selection.Categories() {
		if opt.ID == query.All {
			continue
		}
		n := len(engine.Query(query.Filter{Region: query.All, Category: catalogs.Category(opt.ID), Sort: query.SortRating}))
		rows = append(rows, []string{opt.Glyph + " " + md.Code(opt.ID), opt.Name, fmt.Sprintf("%d", n)})
	}
	return rows
}

func (g *Generator) writeRegion(w io.Writer, cat catalogs.Reader, engine *query.Engine, region *catalogs.Region) error {
	doc := md.NewMarkdown(w)

	title := region.Name
	if region.NameEn != "" && region.NameEn != region.Name {
		title = fmt.Sprintf("%s (%s)", region.Name, region.NameEn)
	}
	doc.H1(strings.TrimSpace(region.Icon + " " + title))
	if region.Description != "" {
		doc.PlainText(region.Description).LF()
	}
	doc.PlainText(md.Link("← All regions", IndexFile)).LF()

	spots := engine.Query(query.Filter{Region: region.ID, Category: query.All, Sort: query.SortRating})

	doc.H2("Overview").
		Table(md.TableSet{
			Header: []string{"Metric", "Value"},
			Rows: [][]string{
				{md.Bold("Population"), cell(region.Stats.Population)},
				{md.Bold("Area"), cell(region.Stats.Area)},
				{md.Bold("Spots"), cell(region.Stats.Spots)},
				{md.Bold("Catalogued"), fmt.Sprintf("%d", len(spots))},
			},
		})

	top, err := cat.TopSpots(region.ID)
	if err != nil {
		return err
	}
	if len(top) > 0 {
		items := make([]string, len(top))
		for i, s := range top {
			items[i] = displayName(s)
		}
		doc.H2("Top Spots").OrderedList(items...)
	}

	doc.H2("Spots")
	if len(spots) == 0 {
		doc.PlainText(md.Italic("No spots in this region yet.")).LF()
		return doc.Build()
	}

	rows := make([][]string, len(spots))
	for i, s := range spots {
		opt := selection.LookupCategory(s.Category)
		rows[i] = []string{
			fmt.Sprintf("%d", i+1),
			cell(displayName(s)),
			opt.Glyph + " " + opt.Name,
			fmt.Sprintf("%.1f", s.Rating),
			cell(s.Location.Station),
		}
	}
	doc.Table(md.TableSet{
		Header: []string{"#", "Name", "Category", "Rating", "Station"},
		Rows:   rows,
	})

	for _, s := range spots {
		writeSpot(doc, s)
	}

	return doc.Build()
}

func writeSpot(doc *md.Markdown, s *catalogs.Spot) {
	doc.H3(displayName(s))
	if s.Description != "" {
		doc.PlainText(s.Description).LF()
	}
	if hl := s.DisplayHighlights(); len(hl) > 0 {
		doc.BulletList(hl...)
	}

	var facts []string
	if s.Location.Address != "" {
		facts = append(facts, md.Bold("Address")+": "+s.Location.Address)
	}
	if s.Access.Train != "" {
		facts = append(facts, md.Bold("Access")+": "+s.Access.Train)
	}
	if s.Entrance.Hours != "" {
		facts = append(facts, md.Bold("Hours")+": "+s.Entrance.Hours)
	}
	if s.Entrance.Fee != "" {
		facts = append(facts, md.Bold("Fee")+": "+s.Entrance.Fee)
	}
	if len(s.BestSeason) > 0 {
		facts = append(facts, md.Bold("Best season")+": "+strings.Join(s.BestSeason, ", "))
	}
	if len(facts) > 0 {
		doc.BulletList(facts...)
	}
}

// displayName is "Native (English)", or just one of them when they match or
// one is missing.
func displayName(s *catalogs.Spot) string {
	switch {
	case s.NameEn == "" || s.NameEn == s.Name:
		return s.Name
	case s.Name == "":
		return s.NameEn
	}
	return fmt.Sprintf("%s (%s)", s.Name, s.NameEn)
}

// cell makes text safe inside a table cell.
func cell(s string) string {
	if s == "" {
		return "-"
	}
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
