package checkout

import "mbg-project/internal/models"

// Validate checks every line item against the catalog snapshot: each must
// have a product selected and must not ask for more than the recorded stock.
// It runs on every quantity edit as a courtesy check and again right before
// submission, because the catalog may have moved in between. The double check
// is advisory only; nothing locks the stock between validation and submit.
func Validate(lines []models.LineItem, cat *Catalog) error {
	for i, line := range lines {
		if line.ProductID == "" {
			return &IncompleteSelectionError{Index: i}
		}
	}

	for _, line := range lines {
		product, ok := cat.Product(line.ProductID)
		if !ok {
			continue
		}
		if line.Quantity > product.Stock {
			return &InsufficientStockError{
				ProductName: product.Name,
				Available:   product.Stock,
				Requested:   line.Quantity,
			}
		}
	}

	return nil
}
