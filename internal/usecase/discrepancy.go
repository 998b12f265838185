package usecase

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/iho/chainsnap/internal/domain"
	"github.com/iho/chainsnap/internal/keystore"
)

// DefaultDecimals is the number of decimals one whole chain unit carries.
const DefaultDecimals int32 = 9

// FormatUnits renders a raw chain amount in whole units.
func FormatUnits(amount decimal.Decimal, decimals int32) string {
	return amount.Shift(-decimals).String()
}

type discrepancyKey struct {
	section  domain.Section
	account  keystore.AccountName
	hasAcc   bool
	currency domain.Currency
	hasCur   bool
	field    string
}

type pendingDiscrepancy struct {
	key discrepancyKey
	d   domain.Discrepancy
}

func compareDiscrepancyKeys(a, b discrepancyKey) int {
	if c := cmp.Compare(a.section.Rank(), b.section.Rank()); c != 0 {
		return c
	}
	if a.hasAcc && b.hasAcc {
		if c := a.account.Compare(b.account); c != 0 {
			return c
		}
	}
	if c := compareCurrencies(a.currency, b.currency); c != 0 {
		return c
	}
	return cmp.Compare(a.field, b.field)
}

type discrepancyCollector struct {
	store *keystore.KeyStore
	items []pendingDiscrepancy
}

func (c *discrepancyCollector) add(key discrepancyKey, left, right *decimal.Decimal) {
	d := domain.Discrepancy{
		Section: key.section,
		Field:   key.field,
		Left:    left,
		Right:   right,
	}
	if key.hasAcc {
		d.Account = key.account.String()
		d.AccountID = key.account.AccountID().String()
	}
	if key.hasCur {
		d.Currency = key.currency.String()
	}

	l, r := decimal.Zero, decimal.Zero
	if left != nil {
		l = *left
	}
	if right != nil {
		r = *right
	}
	d.Difference = r.Sub(l)

	c.items = append(c.items, pendingDiscrepancy{key: key, d: d})
}

func (c *discrepancyCollector) amounts(key discrepancyKey, left, right uint64) {
	l := domain.AmountDecimal(left)
	r := domain.AmountDecimal(right)
	c.add(key, &l, &r)
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

// Discrepancies lists every field that breaks equality between left and
// right, with account names resolved through store.
func Discrepancies(left, right *domain.Snapshot, store *keystore.KeyStore) []domain.Discrepancy {
	c := &discrepancyCollector{store: store}

	c.balances(left.Balances, right.Balances)
	c.aggregates(left.Aggregates, right.Aggregates)
	c.vesting(left.Vesting, right.Vesting)
	c.vested(left.Vested, right.Vested)
	if left.Total != right.Total {
		c.amounts(discrepancyKey{section: domain.SectionTotal}, left.Total, right.Total)
	}

	slices.SortStableFunc(c.items, func(a, b pendingDiscrepancy) int {
		return compareDiscrepancyKeys(a.key, b.key)
	})

	out := make([]domain.Discrepancy, len(c.items))
	for i, item := range c.items {
		out[i] = item.d
	}
	return out
}

func unionKeys[K comparable, V any](a, b map[K]V) []K {
	keys := make([]K, 0, len(a)+len(b))
	for k := range a {
		keys = append(keys, k)
	}
	for k := range b {
		if _, ok := a[k]; !ok {
			keys = append(keys, k)
		}
	}
	return keys
}

func (c *discrepancyCollector) balances(left, right map[domain.AccountID]map[domain.Currency]domain.SignedBalance) {
	for _, id := range unionKeys(left, right) {
		la, lok := left[id]
		ra, rok := right[id]
		name := c.store.Lookup(id)

		for _, currency := range unionKeys(la, ra) {
			key := discrepancyKey{section: domain.SectionBalances, account: name, hasAcc: true, currency: currency, hasCur: true}
			lb, lhas := la[currency]
			rb, rhas := ra[currency]

			switch {
			case lok && lhas && rok && rhas:
				if !lb.EqualEps(rb) {
					c.add(key, decimalPtr(lb.Decimal()), decimalPtr(rb.Decimal()))
				}
			case lhas:
				c.add(key, decimalPtr(lb.Decimal()), nil)
			default:
				c.add(key, nil, decimalPtr(rb.Decimal()))
			}
		}

		// An account present with an empty set on one side only.
		if lok != rok && len(la) == 0 && len(ra) == 0 {
			c.add(discrepancyKey{section: domain.SectionBalances, account: name, hasAcc: true}, nil, nil)
		}
	}
}

func (c *discrepancyCollector) aggregates(left, right map[domain.Currency]domain.BalancesAggregate) {
	for _, currency := range unionKeys(left, right) {
		la, lok := left[currency]
		ra, rok := right[currency]

		fields := []struct {
			name        string
			left, right uint64
		}{
			{"total_issuance", la.TotalIssuance, ra.TotalIssuance},
			{"total_debt", la.TotalDebt, ra.TotalDebt},
		}
		for _, f := range fields {
			key := discrepancyKey{section: domain.SectionAggregates, currency: currency, hasCur: true, field: f.name}
			switch {
			case lok && rok:
				if !domain.AmountsEqualEps(f.left, f.right) {
					c.amounts(key, f.left, f.right)
				}
			case lok:
				c.add(key, decimalPtr(domain.AmountDecimal(f.left)), nil)
			default:
				c.add(key, nil, decimalPtr(domain.AmountDecimal(f.right)))
			}
		}
	}
}

func (c *discrepancyCollector) vesting(left, right map[domain.AccountID]domain.VestingInfo) {
	for _, id := range unionKeys(left, right) {
		lv, lok := left[id]
		rv, rok := right[id]
		name := c.store.Lookup(id)

		fields := []struct {
			name        string
			left, right uint64
		}{
			{"locked", lv.Locked, rv.Locked},
			{"per_block", lv.PerBlock, rv.PerBlock},
			{"starting_block", lv.StartingBlock, rv.StartingBlock},
		}
		for _, f := range fields {
			key := discrepancyKey{section: domain.SectionVesting, account: name, hasAcc: true, field: f.name}
			switch {
			case lok && rok:
				if f.left != f.right {
					c.amounts(key, f.left, f.right)
				}
			case lok:
				c.add(key, decimalPtr(domain.AmountDecimal(f.left)), nil)
			default:
				c.add(key, nil, decimalPtr(domain.AmountDecimal(f.right)))
			}
		}
	}
}

func (c *discrepancyCollector) vested(left, right map[domain.AccountID]uint64) {
	for _, id := range unionKeys(left, right) {
		lv, lok := left[id]
		rv, rok := right[id]
		key := discrepancyKey{section: domain.SectionVested, account: c.store.Lookup(id), hasAcc: true}

		switch {
		case lok && rok:
			if lv != rv {
				c.amounts(key, lv, rv)
			}
		case lok:
			c.add(key, decimalPtr(domain.AmountDecimal(lv)), nil)
		default:
			c.add(key, nil, decimalPtr(domain.AmountDecimal(rv)))
		}
	}
}
