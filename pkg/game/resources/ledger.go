// Package resources tracks the colony economy: matter, energy, the oxygen tank
// and credits. Withdrawals are all-or-nothing so balances never go negative.
package resources

// Params are the starting balances and caps
type Params struct {
	Matter    float64 `yaml:"matter"`
	Energy    float64 `yaml:"energy"`
	MaxEnergy float64 `yaml:"max_energy"`
	Oxygen    float64 `yaml:"oxygen"`
	MaxOxygen float64 `yaml:"max_oxygen"`
	Credits   float64 `yaml:"credits"`
}

// DefaultParams returns the stock starting economy
func DefaultParams() Params {
	return Params{
		Matter:    5000,
		Energy:    100,
		MaxEnergy: 500,
		Oxygen:    100,
		MaxOxygen: 500,
		Credits:   0,
	}
}

// Levels is a read-only copy of the balances
type Levels struct {
	Matter    float64
	Energy    float64
	MaxEnergy float64
	Oxygen    float64
	MaxOxygen float64
	Credits   float64
}

// Ledger holds the colony balances
type Ledger struct {
	matter    float64
	energy    float64
	maxEnergy float64
	oxygen    float64
	maxOxygen float64
	credits   float64
}

// New creates a ledger with the given starting balances
func New(p Params) *Ledger {
	l := &Ledger{
		matter:    p.Matter,
		energy:    p.Energy,
		maxEnergy: p.MaxEnergy,
		oxygen:    p.Oxygen,
		maxOxygen: p.MaxOxygen,
		credits:   p.Credits,
	}
	l.clamp()
	return l
}

// Levels returns the current balances
func (l *Ledger) Levels() Levels {
	return Levels{
		Matter:    l.matter,
		Energy:    l.energy,
		MaxEnergy: l.maxEnergy,
		Oxygen:    l.oxygen,
		MaxOxygen: l.maxOxygen,
		Credits:   l.credits,
	}
}

// Matter returns the matter balance
func (l *Ledger) Matter() float64 { return l.matter }

// Energy returns the energy balance
func (l *Ledger) Energy() float64 { return l.energy }

// HasMatter returns true if amount can be spent
func (l *Ledger) HasMatter(amount float64) bool {
	return l.matter >= amount
}

// DeductMatter spends matter if the full amount is available
func (l *Ledger) DeductMatter(amount float64) bool {
	if amount < 0 || !l.HasMatter(amount) {
		return false
	}
	l.matter -= amount
	return true
}

// AddMatter credits matter, e.g. deposited cargo
func (l *Ledger) AddMatter(amount float64) {
	if amount <= 0 {
		return
	}
	l.matter += amount
}

// ConsumeEnergy draws energy if the full amount is available
func (l *Ledger) ConsumeEnergy(amount float64) bool {
	if amount < 0 || l.energy < amount {
		return false
	}
	l.energy -= amount
	return true
}

// GenerateEnergy adds energy up to the cap
func (l *Ledger) GenerateEnergy(amount float64) {
	if amount <= 0 {
		return
	}
	l.energy = min(l.maxEnergy, l.energy+amount)
}

// StoreOxygen fills the tank up to its cap and returns the amount accepted
func (l *Ledger) StoreOxygen(amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	accepted := min(amount, l.maxOxygen-l.oxygen)
	l.oxygen += accepted
	return accepted
}

// DrawOxygen takes oxygen from the tank if the full amount is available
func (l *Ledger) DrawOxygen(amount float64) bool {
	if amount < 0 || l.oxygen < amount {
		return false
	}
	l.oxygen -= amount
	return true
}

// AddCredits credits the account
func (l *Ledger) AddCredits(amount float64) {
	if amount <= 0 {
		return
	}
	l.credits += amount
}

// SpendCredits debits the account if the full amount is available
func (l *Ledger) SpendCredits(amount float64) bool {
	if amount < 0 || l.credits < amount {
		return false
	}
	l.credits -= amount
	return true
}

// Tick re-applies the caps once per frame
func (l *Ledger) Tick(dt float64) {
	l.clamp()
}

func (l *Ledger) clamp() {
	l.matter = max(0, l.matter)
	l.energy = max(0, min(l.maxEnergy, l.energy))
	l.oxygen = max(0, min(l.maxOxygen, l.oxygen))
	l.credits = max(0, l.credits)
}
