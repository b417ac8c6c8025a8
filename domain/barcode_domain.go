package domain

var (
	MessageSuccessBarcodeLookup = "barcode resolved successfully"
	MessageFailedBarcodeLookup  = "failed to resolve barcode"
)

type (
	// BarcodeProduct pre-fills a new ingredient from a scanned product.
	BarcodeProduct struct {
		Barcode        string  `json:"barcode"`
		Name           string  `json:"name"`
		Brand          string  `json:"brand,omitempty"`
		Category       string  `json:"category"`
		Unit           string  `json:"unit"`
		Amount         float64 `json:"amount"`
		ImageURL       string  `json:"image_url,omitempty"`
		NutritionGrade string  `json:"nutrition_grade,omitempty"`
	}

	BarcodeLookupResponse struct {
		Found   bool            `json:"found"`
		Product *BarcodeProduct `json:"product,omitempty"`
	}
)
