// Package fare turns a route's total distance into the amount owed.
//
// Every Policy is total over non-negative distances, never returns a negative
// fare and never charges less for a longer trip.
package fare

type Policy interface {
	Calculate(distance int) int
}

type Flat struct {
	Amount int
}

func (f Flat) Calculate(distance int) int {
	if f.Amount < 0 {
		return 0
	}
	return f.Amount
}

// Tier charges Amount for every started Every km of distance beyond the
// previous tier's bound, up to UpTo km. UpTo of zero means no upper bound.
type Tier struct {
	UpTo   int `yaml:"upTo"`
	Every  int `yaml:"every"`
	Amount int `yaml:"amount"`
}

type DistanceTiered struct {
	Base         int    `yaml:"base"`
	BaseDistance int    `yaml:"baseDistance"`
	Tiers        []Tier `yaml:"tiers"`
}

// Default charges 1250 for the first 10 km, then 100 per started 5 km up to
// 50 km, then 100 per started 8 km.
func Default() DistanceTiered {
	return DistanceTiered{
		Base:         1250,
		BaseDistance: 10,
		Tiers: []Tier{
			{UpTo: 50, Every: 5, Amount: 100},
			{Every: 8, Amount: 100},
		},
	}
}

func (d DistanceTiered) Calculate(distance int) int {
	total := max(d.Base, 0)
	if distance <= d.BaseDistance {
		return total
	}

	lower := d.BaseDistance
	for _, tier := range d.Tiers {
		if tier.Every <= 0 {
			break
		}
		upper := distance
		if tier.UpTo > 0 && tier.UpTo < upper {
			upper = tier.UpTo
		}
		if upper > lower {
			steps := (upper - lower + tier.Every - 1) / tier.Every
			total += steps * max(tier.Amount, 0)
		}
		if tier.UpTo <= 0 || distance <= tier.UpTo {
			break
		}
		lower = tier.UpTo
	}
	return total
}

// LineSurcharge adds a fixed amount on top of another policy, used when a
// route rides a line that carries an extra fare.
type LineSurcharge struct {
	Policy    Policy
	Surcharge int
}

func (l LineSurcharge) Calculate(distance int) int {
	return l.Policy.Calculate(distance) + max(l.Surcharge, 0)
}
