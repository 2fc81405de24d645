package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Built-in payment methods. These four buckets are always present in a
// snapshot so consumers get a stable shape; custom register labels appear
// additionally, keyed by label.
var PaymentMethods = []string{"CASH", "CARD", "PAYME", "CLICK"}

// MethodOther marks a payment routed to a custom register label.
const MethodOther = "OTHER"

// Expense categories, all always present in a snapshot.
var ExpenseCategories = []string{"SALARY", "INVENTORY", "UTILITIES", "REPAIR", "MARKETING", "OTHER"}

// Payment is the calculator's view of a payment row.
type Payment struct {
	StayID      string
	PaidAt      time.Time
	Method      string
	CustomLabel string
	Amount      decimal.Decimal
}

// Expense is the calculator's view of an expense row.
type Expense struct {
	SpentAt     time.Time
	Category    string
	Method      string
	CustomLabel string
	Amount      decimal.Decimal
}

// Transfer moves an amount between two registers. It is never revenue or
// expense, it only shifts balances.
type Transfer struct {
	TransferredAt time.Time
	FromMethod    string
	ToMethod      string
	Amount        decimal.Decimal
}

// Register resolves the cash-register label a payment or expense belongs to.
func Register(method, customLabel string) string {
	if customLabel != "" {
		return customLabel
	}
	return method
}

// ReportInput is everything a period report needs, already scoped to one
// hotel by the caller.
type ReportInput struct {
	From        time.Time // inclusive
	To          time.Time // inclusive
	Payments    []Payment
	Expenses    []Expense
	Stays       []Stay
	ActiveRooms int
}

// Snapshot is the flat report record. The same shape is frozen into a month
// closing when a month is closed.
type Snapshot struct {
	RevenueByMethod    map[string]decimal.Decimal `json:"revenue_by_method"`
	ExpensesByCategory map[string]decimal.Decimal `json:"expenses_by_category"`
	Profit             decimal.Decimal            `json:"profit"`
	OccupancyRate      float64                    `json:"occupancy_rate"`
	ADR                decimal.Decimal            `json:"adr"`
	RevPAR             decimal.Decimal            `json:"revpar"`
	SoldNights         int                        `json:"sold_nights"`
	AvailableNights    int                        `json:"available_nights"`
	TotalRoomRevenue   decimal.Decimal            `json:"total_room_revenue"`
}

// BuildSnapshot aggregates payments, expenses and stays over [From, To] into
// revenue, expense, occupancy, ADR and RevPAR figures.
//
// Room revenue prorates each stay's whole total by the fraction of its nights
// inside the window (total × nightsInRange / stayNights). Prorating the whole
// total rather than recomputing from the nightly price keeps discounts and
// adjustments from being double counted across months.
func BuildSnapshot(in ReportInput) (Snapshot, error) {
	if DayNumber(in.To) < DayNumber(in.From) {
		return Snapshot{}, ErrInvalidRange
	}

	rangeStart := DateOf(in.From)
	rangeEndExclusive := AddDays(in.To, 1)

	revenue := make(map[string]decimal.Decimal, len(PaymentMethods))
	for _, m := range PaymentMethods {
		revenue[m] = decimal.Zero
	}
	totalRevenue := decimal.Zero
	for _, p := range in.Payments {
		if !inWindow(p.PaidAt, rangeStart, rangeEndExclusive) {
			continue
		}
		label := Register(p.Method, p.CustomLabel)
		revenue[label] = revenue[label].Add(p.Amount)
		totalRevenue = totalRevenue.Add(p.Amount)
	}

	expenses := make(map[string]decimal.Decimal, len(ExpenseCategories))
	for _, c := range ExpenseCategories {
		expenses[c] = decimal.Zero
	}
	totalExpenses := decimal.Zero
	for _, e := range in.Expenses {
		if !inWindow(e.SpentAt, rangeStart, rangeEndExclusive) {
			continue
		}
		expenses[e.Category] = expenses[e.Category].Add(e.Amount)
		totalExpenses = totalExpenses.Add(e.Amount)
	}

	daysInRange := DaysInclusive(rangeStart, in.To)
	availableNights := in.ActiveRooms * daysInRange

	soldNights := 0
	totalRoomRevenue := decimal.Zero
	for _, s := range in.Stays {
		if s.Status == StatusCancelled {
			continue
		}
		stayNights := s.StayNights()
		nightsInRange := OverlapNights(rangeStart, rangeEndExclusive, s.CheckIn, s.CheckOut)
		if stayNights == 0 || nightsInRange == 0 {
			continue
		}
		soldNights += nightsInRange
		share := StayTotal(s).
			Mul(decimal.NewFromInt(int64(nightsInRange))).
			Div(decimal.NewFromInt(int64(stayNights)))
		totalRoomRevenue = totalRoomRevenue.Add(share)
	}

	snap := Snapshot{
		RevenueByMethod:    revenue,
		ExpensesByCategory: expenses,
		Profit:             totalRevenue.Sub(totalExpenses),
		ADR:                decimal.Zero,
		RevPAR:             decimal.Zero,
		SoldNights:         soldNights,
		AvailableNights:    availableNights,
		TotalRoomRevenue:   totalRoomRevenue,
	}
	if availableNights > 0 {
		snap.OccupancyRate = float64(soldNights) / float64(availableNights) * 100
		snap.RevPAR = totalRoomRevenue.Div(decimal.NewFromInt(int64(availableNights)))
	}
	if soldNights > 0 {
		snap.ADR = totalRoomRevenue.Div(decimal.NewFromInt(int64(soldNights)))
	}
	return snap, nil
}

// RegisterBalances folds payments (inflow), expenses (outflow) and transfers
// (outflow from one register, inflow to another) into per-register balances.
func RegisterBalances(payments []Payment, expenses []Expense, transfers []Transfer) map[string]decimal.Decimal {
	balances := make(map[string]decimal.Decimal, len(PaymentMethods))
	for _, m := range PaymentMethods {
		balances[m] = decimal.Zero
	}
	for _, p := range payments {
		label := Register(p.Method, p.CustomLabel)
		balances[label] = balances[label].Add(p.Amount)
	}
	for _, e := range expenses {
		label := Register(e.Method, e.CustomLabel)
		balances[label] = balances[label].Sub(e.Amount)
	}
	for _, t := range transfers {
		balances[t.FromMethod] = balances[t.FromMethod].Sub(t.Amount)
		balances[t.ToMethod] = balances[t.ToMethod].Add(t.Amount)
	}
	return balances
}

func inWindow(t, start, endExclusive time.Time) bool {
	return !t.Before(start) && t.Before(endExclusive)
}
