package barcode

import (
	"recipefridge/domain"
	"recipefridge/pkg/logger"

	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const userAgent = "RecipeFridge/1.0 (https://github.com/recipe-fridge)"

type (
	// BarcodeService resolves a scanned barcode into ingredient
	// pre-fill data via the Open Food Facts product database.
	BarcodeService interface {
		Lookup(ctx context.Context, code string) (domain.BarcodeLookupResponse, error)
	}

	barcodeService struct {
		httpClient *http.Client
		baseURL    string
		log        *logger.Logger
	}
)

func NewBarcodeService(baseURL string, log *logger.Logger) BarcodeService {
	return &barcodeService{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		log:        log,
	}
}

type productEnvelope struct {
	Status  int `json:"status"`
	Product struct {
		ProductName     string `json:"product_name"`
		ProductNameEn   string `json:"product_name_en"`
		Brands          string `json:"brands"`
		Categories      string `json:"categories"`
		Quantity        string `json:"quantity"`
		ImageURL        string `json:"image_url"`
		ImageFrontSmall string `json:"image_front_small_url"`
		NutritionGrades string `json:"nutrition_grades"`
	} `json:"product"`
}

// Lookup degrades every failure mode, including network errors, to a
// not-found result so the caller can fall back to manual entry.
func (s *barcodeService) Lookup(ctx context.Context, code string) (domain.BarcodeLookupResponse, error) {
	clean := digitsOnly(code)
	if clean == "" {
		return domain.BarcodeLookupResponse{Found: false}, nil
	}

	target := fmt.Sprintf("%s/api/v2/product/%s.json", s.baseURL, clean)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return domain.BarcodeLookupResponse{Found: false}, nil
	}
	req.Header.Set("User-Agent", userAgent)

	res, err := s.httpClient.Do(req)
	if err != nil {
		s.log.Warnw("barcode lookup failed", "barcode", clean, "error", err)
		return domain.BarcodeLookupResponse{Found: false}, nil
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		s.log.Warnw("barcode lookup returned non-200", "barcode", clean, "status", res.StatusCode)
		return domain.BarcodeLookupResponse{Found: false}, nil
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return domain.BarcodeLookupResponse{Found: false}, nil
	}

	var envelope productEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		s.log.Warnw("barcode response unparseable", "barcode", clean, "error", err)
		return domain.BarcodeLookupResponse{Found: false}, nil
	}
	if envelope.Status != 1 {
		return domain.BarcodeLookupResponse{Found: false}, nil
	}

	name := envelope.Product.ProductName
	if name == "" {
		name = envelope.Product.ProductNameEn
	}
	if name == "" {
		name = "Unknown Product"
	}

	image := envelope.Product.ImageFrontSmall
	if image == "" {
		image = envelope.Product.ImageURL
	}

	amount, unit := parseQuantity(envelope.Product.Quantity)
	return domain.BarcodeLookupResponse{
		Found: true,
		Product: &domain.BarcodeProduct{
			Barcode:        clean,
			Name:           name,
			Brand:          envelope.Product.Brands,
			Category:       mapCategory(envelope.Product.Categories),
			Unit:           unit,
			Amount:         amount,
			ImageURL:       image,
			NutritionGrade: envelope.Product.NutritionGrades,
		},
	}, nil
}

func digitsOnly(code string) string {
	var b strings.Builder
	for _, r := range code {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// categoryKeywords maps product-database category text onto the fixed
// ingredient category set. Order matters: the first bucket with a
// keyword hit wins.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"Dairy", []string{"milk", "dairy", "cheese", "yogurt"}},
	{"Meat", []string{"meat", "beef", "pork", "lamb"}},
	{"Protein", []string{"chicken", "poultry", "turkey", "egg"}},
	{"Seafood", []string{"fish", "seafood", "salmon", "tuna"}},
	{"Vegetable", []string{"vegetable", "carrot", "tomato", "onion"}},
	{"Fruit", []string{"fruit", "apple", "banana", "orange"}},
	{"Grain", []string{"bread", "pasta", "rice", "cereal", "grain"}},
	{"Beverage", []string{"beverage", "drink", "juice", "water"}},
	{"Snack", []string{"snack", "chip", "crisp"}},
	{"Frozen", []string{"frozen"}},
	{"Pantry", []string{"sauce", "condiment", "spice", "herb"}},
}

func mapCategory(categories string) string {
	lower := strings.ToLower(categories)
	for _, bucket := range categoryKeywords {
		for _, keyword := range bucket.keywords {
			if strings.Contains(lower, keyword) {
				return bucket.category
			}
		}
	}
	return "Pantry"
}

var quantityPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(kg|g|l|ml|oz|lb|pcs|pack|ct|count)?`)

// parseQuantity extracts a numeric amount and unit from a free-form
// package quantity like "500g", "1L" or "6 x 330ml" (which reads as 6
// pcs; the multiplication is left to the user). Weight and volume are
// normalized to g and ml.
func parseQuantity(quantity string) (float64, string) {
	lower := strings.ToLower(strings.TrimSpace(quantity))
	if lower == "" {
		return 1, "pcs"
	}

	match := quantityPattern.FindStringSubmatch(lower)
	if match == nil || match[1] == "" {
		return 1, "pcs"
	}

	amount, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 1, "pcs"
	}

	unit := match[2]
	switch unit {
	case "kg":
		amount *= 1000
		unit = "g"
	case "l":
		amount *= 1000
		unit = "ml"
	case "oz":
		amount *= 28.35
		unit = "g"
	case "lb":
		amount *= 453.6
		unit = "g"
	case "pack", "ct", "count", "":
		unit = "pcs"
	}
	return math.Round(amount), unit
}
