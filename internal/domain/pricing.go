package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Price table, in PHP. Proof of payment is a manually reviewed receipt;
// there is no payment gateway.
const (
	RegularEntranceFee     = 700 // per person, 2h field time, +30 bullets
	TargetRangeEntranceFee = 250 // per person, 30 minutes, +10 bullets
	BulletReloadFee        = 5   // per bullet, charged on site

	HalfDayMorningPrice        = 18000
	HalfDayAfternoonPrice      = 20000
	HalfDayIncludedPersons     = 20
	HalfDayAdditionalPersonFee = 500

	// DownpaymentRate is the share of the total collected up front.
	DownpaymentRate = 0.3

	// DefaultBookingAmount backstops legacy labels no table covers.
	DefaultBookingAmount = 2100
)

// GroupPackagePrices maps package group size to the fixed package price.
var GroupPackagePrices = map[int]float64{
	10: 6300,
	15: 9800,
	20: 13300,
}

// PriceQuote is the server-computed payment breakdown stored with a
// booking.
type PriceQuote struct {
	Total            float64
	Downpayment      float64
	RemainingBalance float64
}

// QuoteBooking computes the total for a booking request and splits it
// into the 30% downpayment and the balance due on site.
func QuoteBooking(service string, schedule Schedule, groupSize int) PriceQuote {
	total := bookingTotal(service, schedule, groupSize)
	down := math.Round(total * DownpaymentRate)
	return PriceQuote{
		Total:            total,
		Downpayment:      down,
		RemainingBalance: total - down,
	}
}

func bookingTotal(service string, schedule Schedule, groupSize int) float64 {
	if groupSize < MinGroupSize {
		groupSize = MinGroupSize
	}

	if !IsKnownServiceType(service) {
		return legacyTotal(service)
	}

	switch ServiceType(service) {
	case ServiceTargetRange:
		return float64(groupSize * TargetRangeEntranceFee)
	case ServiceHalfDay:
		return halfDayTotal(schedule, groupSize)
	case ServiceGroup:
		if price, ok := GroupPackagePrices[groupSize]; ok {
			return price
		}
		return float64(groupSize * RegularEntranceFee)
	default:
		return float64(groupSize * RegularEntranceFee)
	}
}

func halfDayTotal(schedule Schedule, groupSize int) float64 {
	base := float64(HalfDayMorningPrice)
	if schedule == ScheduleAfternoon {
		base = HalfDayAfternoonPrice
	}

	additional := groupSize - HalfDayIncludedPersons
	if additional < 0 {
		additional = 0
	}

	return base + float64(additional*HalfDayAdditionalPersonFee)
}

var legacyPricePattern = regexp.MustCompile(`P\s*([\d,]+)`)

// legacyTotal recovers an amount from a free-text package label. Labels
// historically embedded a price ("Group of 10 - P 7,000") or a player
// count.
func legacyTotal(service string) float64 {
	if m := legacyPricePattern.FindStringSubmatch(service); m != nil {
		if v, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", "")); err == nil {
			return float64(v)
		}
	}

	switch {
	case strings.Contains(service, "10 Players"):
		return 7000
	case strings.Contains(service, "15 Players"):
		return 10500
	case strings.Contains(service, "20 Players"):
		return 14000
	}

	return DefaultBookingAmount
}
