package tabular

import (
	"strconv"

	"github.com/MuchMorePower/Inventory-Management-System/internal/usecase"
)

// recordedAtLayout renders the full capture instant, unlike effective
// dates which are day-granular.
const recordedAtLayout = "2006-01-02 15:04:05"

// exportCells renders one export row in usecase.ExportColumns order.
func exportCells(row usecase.ExportRow) []string {
	return []string{
		strconv.FormatInt(row.ID, 10),
		row.EffectiveDate,
		row.ProductName,
		row.ModelNumber,
		row.Unit,
		row.Direction,
		strconv.FormatInt(row.Quantity, 10),
		row.UnitPrice.String(),
		row.TotalAmount.String(),
		row.Status,
		row.Notes,
		row.Buyer,
		row.Seller,
		row.RecordedAt.UTC().Format(recordedAtLayout),
	}
}
