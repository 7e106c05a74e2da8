package shipping

import (
	"strconv"
	"strings"

	"github.com/farmbasket/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Region labels carried into order snapshots
const (
	RegionAtticaMetro    = "Attica Metro"
	RegionThessaloniki   = "Thessaloniki"
	RegionMajorCity      = "Major City"
	RegionIslands        = "Islands"
	RegionMainlandRemote = "Mainland Remote"
)

// Carrier labels
const (
	CarrierStandard     = "Standard Courier"
	CarrierIsland       = "Island Courier"
	CarrierHeavyFreight = "Heavy Freight"
)

// Quote is a transient shipping estimate. Cost is in minor currency
// units; the order creator snapshots the whole quote into the order.
type Quote struct {
	Cost    int64  `json:"cost"`
	Carrier string `json:"carrier"`
	ETADays int    `json:"eta_days"`
	Region  string `json:"region"`
}

// region holds the pricing parameters of one delivery zone
type region struct {
	label      string
	multiplier decimal.Decimal
	etaDays    int
}

var (
	regionAttica         = region{RegionAtticaMetro, decimal.RequireFromString("1.00"), 2}
	regionThessaloniki   = region{RegionThessaloniki, decimal.RequireFromString("1.05"), 2}
	regionMajorCity      = region{RegionMajorCity, decimal.RequireFromString("1.15"), 3}
	regionIslands        = region{RegionIslands, decimal.RequireFromString("1.50"), 4}
	regionMainlandRemote = region{RegionMainlandRemote, decimal.RequireFromString("1.30"), 3}
)

// majorCityPrefixes are the two-digit postal prefixes of large mainland
// cities outside the two metro areas
var majorCityPrefixes = map[int]bool{
	20: true, 24: true, 26: true, 30: true, 32: true, 38: true,
	40: true, 41: true, 42: true, 45: true, 50: true, 58: true,
	60: true, 61: true, 62: true, 64: true, 65: true,
}

// islandPrefixes are the two-digit postal prefixes of island destinations
var islandPrefixes = map[int]bool{
	28: true, 29: true, 49: true,
	70: true, 71: true, 72: true, 73: true, 74: true,
	80: true, 81: true, 82: true, 83: true, 84: true, 85: true,
}

// Estimator computes deterministic shipping quotes from total parcel
// weight and destination postal code. It is a stateless domain service.
type Estimator struct{}

// NewEstimator creates a new shipping estimator
func NewEstimator() *Estimator {
	return &Estimator{}
}

// Quote computes the shipping quote for a parcel of the given total
// weight (grams) to the given postal code.
func (e *Estimator) Quote(totalWeightGrams int64, postalCode string) (Quote, error) {
	if totalWeightGrams <= 0 {
		return Quote{}, shared.NewDomainError("INVALID_INPUT", "Shipment weight must be positive")
	}

	reg, err := resolveRegion(postalCode)
	if err != nil {
		return Quote{}, err
	}

	base := baseCost(totalWeightGrams)
	cost := decimal.NewFromInt(base).Mul(reg.multiplier).Round(0).IntPart()

	return Quote{
		Cost:    cost,
		Carrier: carrierFor(totalWeightGrams, reg),
		ETADays: reg.etaDays,
		Region:  reg.label,
	}, nil
}

// resolveRegion maps the first two postal digits to a delivery zone
func resolveRegion(postalCode string) (region, error) {
	code := strings.TrimSpace(postalCode)
	if len(code) < 2 {
		return region{}, shared.NewDomainError("INVALID_INPUT", "Postal code must have at least two digits")
	}
	if code[0] < '0' || code[0] > '9' || code[1] < '0' || code[1] > '9' {
		return region{}, shared.NewDomainError("INVALID_INPUT", "Postal code must start with digits")
	}
	prefix, _ := strconv.Atoi(code[:2])

	switch {
	case prefix >= 10 && prefix <= 19:
		return regionAttica, nil
	case prefix >= 54 && prefix <= 57:
		return regionThessaloniki, nil
	case islandPrefixes[prefix]:
		return regionIslands, nil
	case majorCityPrefixes[prefix]:
		return regionMajorCity, nil
	default:
		return regionMainlandRemote, nil
	}
}

// baseCost computes the pre-multiplier cost in minor units from the
// tiered weight table. Each tier charges its floor price plus a
// per-started-kg rate for weight beyond the tier floor.
func baseCost(grams int64) int64 {
	switch {
	case grams <= 2000:
		return 350
	case grams <= 5000:
		return 350 + 60*startedKgOver(grams, 2000)
	case grams <= 10000:
		return 530 + 50*startedKgOver(grams, 5000)
	case grams <= 20000:
		return 780 + 45*startedKgOver(grams, 10000)
	default:
		return 1230 + 40*startedKgOver(grams, 20000)
	}
}

// startedKgOver returns the number of started kilograms beyond the floor
func startedKgOver(grams, floorGrams int64) int64 {
	over := grams - floorGrams
	return (over + 999) / 1000
}

// carrierFor picks the carrier label. Weight wins over region: parcels
// above 20kg always go heavy freight, island or not.
func carrierFor(grams int64, reg region) string {
	if grams > 20000 {
		return CarrierHeavyFreight
	}
	if reg.label == RegionIslands {
		return CarrierIsland
	}
	return CarrierStandard
}
