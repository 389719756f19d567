package services

import (
	"sort"

	"khata/internal/core"
	"khata/internal/extract"
)

// InsightTier buckets budget usage into three escalating levels.
type InsightTier int

const (
	InsightGood InsightTier = iota
	InsightWarning
	InsightOver
)

func (t InsightTier) String() string {
	switch t {
	case InsightWarning:
		return "warning"
	case InsightOver:
		return "over"
	default:
		return "good"
	}
}

func (t InsightTier) Message() string {
	switch t {
	case InsightWarning:
		return "Careful, you're nearing your limit."
	case InsightOver:
		return "You overspent this month!"
	default:
		return "You are saving well!"
	}
}

func (t InsightTier) Color() string {
	switch t {
	case InsightWarning:
		return "#FFEB3B"
	case InsightOver:
		return "#FF5252"
	default:
		return "#FFFFFF"
	}
}

func tierFor(percentage float64) InsightTier {
	switch {
	case percentage < 70:
		return InsightGood
	case percentage < 90:
		return InsightWarning
	default:
		return InsightOver
	}
}

type CategoryAmount struct {
	Name   string
	Amount core.Money
}

// Summary is the aggregated spending view for a period. Year and Month are
// zero for the all-time view.
type Summary struct {
	Year       int
	Month      int
	Total      core.Money
	Remaining  core.Money
	Percentage float64
	Insight    InsightTier
	ByCategory []CategoryAmount
	Recent     []core.Transaction
}

// The all-time view shows only the latest few transactions; a month view
// shows everything in the month.
const allTimeRecentLimit = 10

// Aggregate computes a spending summary from raw transactions. Only debits
// count as spending. Pass year and month both zero for the all-time view,
// or both set to filter to a single calendar month (UTC). Percentage is
// computed against a floor of one rupee so a zero budget cannot divide by
// zero, while Remaining always reflects the actual budget.
func Aggregate(txs []core.Transaction, year, month int, budget core.Money) Summary {
	allTime := year == 0 && month == 0

	var spends []core.Transaction
	for _, tx := range txs {
		if tx.Type != core.Debit {
			continue
		}
		if !allTime {
			t := tx.Time()
			if t.Year() != year || int(t.Month()) != month {
				continue
			}
		}
		spends = append(spends, tx)
	}

	var total int64
	byCategory := make(map[string]int64)
	for _, tx := range spends {
		total += tx.Amount.Paise
		byCategory[string(extract.Categorize(tx.Merchant))] += tx.Amount.Paise
	}

	categories := make([]CategoryAmount, 0, len(byCategory))
	for name, paise := range byCategory {
		categories = append(categories, CategoryAmount{Name: name, Amount: core.Money{Paise: paise}})
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })

	effectiveBudget := budget.Paise
	if effectiveBudget == 0 {
		effectiveBudget = 100
	}
	percentage := float64(total) / float64(effectiveBudget) * 100

	recent := make([]core.Transaction, len(spends))
	copy(recent, spends)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].Timestamp > recent[j].Timestamp })
	if allTime && len(recent) > allTimeRecentLimit {
		recent = recent[:allTimeRecentLimit]
	}

	return Summary{
		Year:       year,
		Month:      month,
		Total:      core.Money{Paise: total},
		Remaining:  core.Money{Paise: budget.Paise - total},
		Percentage: percentage,
		Insight:    tierFor(percentage),
		ByCategory: categories,
		Recent:     recent,
	}
}
