package table

import (
	"strconv"

	"github.com/agentstation/spotmap/pkg/catalogs"
	"github.com/agentstation/spotmap/pkg/selection"
)

const descriptionWidth = 60

// CardsToTableData converts listing cards to rows. Wide adds the
// highlights, station and description.
func CardsToTableData(cards []selection.Card, wide bool) Data {
	headers := []string{"ID", "Name", "Category", "Region", "Rating"}
	align := []Align{AlignLeft, AlignLeft, AlignLeft, AlignLeft, AlignRight}
	if wide {
		headers = append(headers, "Highlights", "Station", "Description")
		align = append(align, AlignLeft, AlignLeft, AlignLeft)
	}

	rows := make([][]string, 0, len(cards))
	for _, c := range cards {
		row := []string{
			string(c.ID),
			c.Name,
			c.Category.Glyph + " " + c.Category.Name,
			string(c.Prefecture),
			FormatRating(c.Rating),
		}
		if wide {
			row = append(row,
				Join(c.Highlights),
				OrPlaceholder(c.Station),
				Truncate(c.Description, descriptionWidth),
			)
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// SpotToTableData renders one spot as a property/value table.
func SpotToTableData(spot *catalogs.Spot, category selection.CategoryOption, regionName string) Data {
	rows := [][]string{
		{"ID", string(spot.ID)},
		{"Name", spot.Name},
		{"English Name", OrPlaceholder(spot.NameEn)},
		{"Category", category.Glyph + " " + category.Name},
		{"Region", regionName},
		{"Rating", FormatRating(spot.Rating)},
		{"Description", OrPlaceholder(spot.Description)},
		{"Address", OrPlaceholder(spot.Location.Address)},
		{"Station", OrPlaceholder(spot.Location.Station)},
		{"Coordinates", strconv.FormatFloat(spot.Location.Coordinates.Lat, 'f', 4, 64) + ", " +
			strconv.FormatFloat(spot.Location.Coordinates.Lng, 'f', 4, 64)},
		{"Hours", OrPlaceholder(spot.Entrance.Hours)},
		{"Fee", OrPlaceholder(spot.Entrance.Fee)},
		{"Train", OrPlaceholder(spot.Access.Train)},
		{"Walking", OrPlaceholder(spot.Access.Walking)},
		{"Visit Time", OrPlaceholder(spot.VisitTime)},
		{"Best Season", Join(spot.BestSeason)},
		{"Highlights", Join(spot.Highlights)},
		{"Tips", Join(spot.Tips)},
	}
	return Data{Headers: []string{"Property", "Value"}, Rows: rows}
}

// CategoriesToTableData lists the category display table.
func CategoriesToTableData(options []selection.CategoryOption) Data {
	rows := make([][]string, 0, len(options))
	for _, o := range options {
		rows = append(rows, []string{o.ID, o.Glyph, o.Name})
	}
	return Data{
		Headers:         []string{"ID", "Icon", "Name"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignCenter, AlignLeft},
	}
}
