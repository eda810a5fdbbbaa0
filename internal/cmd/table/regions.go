package table

import (
	"fmt"
	"strconv"

	"github.com/agentstation/spotmap/pkg/catalogs"
	"github.com/agentstation/spotmap/pkg/selection"
)

// RegionsToTableData converts region cards to rows. Wide adds the
// authored population and area.
func RegionsToTableData(cards []selection.RegionCard, wide bool) Data {
	headers := []string{"ID", "Name", "English", "Spots", "Top Spots"}
	if wide {
		headers = append(headers, "Population", "Area")
	}

	rows := make([][]string, 0, len(cards))
	for _, c := range cards {
		row := []string{
			string(c.ID),
			c.Name,
			OrPlaceholder(c.NameEn),
			OrPlaceholder(c.Stats.Spots),
			Join(cardNames(c.Featured)),
		}
		if wide {
			row = append(row, OrPlaceholder(c.Stats.Population), OrPlaceholder(c.Stats.Area))
		}
		rows = append(rows, row)
	}
	return Data{Headers: headers, Rows: rows}
}

// RegionToTableData renders one region as a property/value table. The
// spot count is the number of spots actually in the catalog.
func RegionToTableData(card selection.RegionCard, spotCount int, area *catalogs.Area) Data {
	rows := [][]string{
		{"ID", string(card.ID)},
		{"Name", card.Name},
		{"English Name", OrPlaceholder(card.NameEn)},
		{"Description", OrPlaceholder(card.Description)},
		{"Population", OrPlaceholder(card.Stats.Population)},
		{"Area", OrPlaceholder(card.Stats.Area)},
		{"Spots", strconv.Itoa(spotCount)},
		{"Top Spots", Join(cardNames(card.Featured))},
		{"Center", Placeholder},
		{"Bounds", Placeholder},
	}
	if area != nil {
		rows[8][1] = formatCoordinates(area.Center)
		rows[9][1] = formatCoordinates(area.SouthWest) + " / " + formatCoordinates(area.NorthEast)
	}
	return Data{Headers: []string{"Property", "Value"}, Rows: rows}
}

func cardNames(cards []selection.Card) []string {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.Name
	}
	return names
}

func formatCoordinates(c catalogs.Coordinates) string {
	return fmt.Sprintf("%.4f, %.4f", c.Lat, c.Lng)
}
