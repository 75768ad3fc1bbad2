package colonist

// Need identifies one of the 0..100 need scalars
type Need int

const (
	NeedHunger Need = iota
	NeedThirst
	NeedEnergy
	NeedSocial
	NeedFun
	NeedStress
	NeedHealth
)

const needCount = 7

// NeedNames maps needs to display names
var NeedNames = map[Need]string{
	NeedHunger: "Hunger",
	NeedThirst: "Thirst",
	NeedEnergy: "Energy",
	NeedSocial: "Social",
	NeedFun:    "Fun",
	NeedStress: "Stress",
	NeedHealth: "Health",
}

func (n Need) String() string {
	if name, ok := NeedNames[n]; ok {
		return name
	}
	return "Unknown"
}

// AllNeeds returns every need in display order
func AllNeeds() []Need {
	return []Need{NeedHunger, NeedThirst, NeedEnergy, NeedSocial, NeedFun, NeedStress, NeedHealth}
}

// MaxNeed is the ceiling of every need scalar
const MaxNeed = 100

// Params are the per-second rates and thresholds of the needs model
type Params struct {
	HungerDecay float64 `yaml:"hunger_decay"`
	ThirstDecay float64 `yaml:"thirst_decay"`
	EnergyDecay float64 `yaml:"energy_decay"`
	SocialDecay float64 `yaml:"social_decay"`
	FunDecay    float64 `yaml:"fun_decay"`

	MaxSuitOxygen     float64 `yaml:"max_suit_oxygen"`
	SuitDrain         float64 `yaml:"suit_drain"`
	SuitRecharge      float64 `yaml:"suit_recharge"`
	BreathableO2      float64 `yaml:"breathable_o2"`
	SuffocationDamage float64 `yaml:"suffocation_damage"`
	HealthRegen       float64 `yaml:"health_regen"`

	PanicSuitOxygen float64 `yaml:"panic_suit_oxygen"`
	GracePeriod     float64 `yaml:"grace_period"`
	StressRelief    float64 `yaml:"stress_relief"`
}

// DefaultParams returns the stock needs tunables
func DefaultParams() Params {
	return Params{
		HungerDecay: 0.15,
		ThirstDecay: 0.25,
		EnergyDecay: 0.10,
		SocialDecay: 0.20,
		FunDecay:    0.10,

		MaxSuitOxygen:     300,
		SuitDrain:         1,
		SuitRecharge:      10,
		BreathableO2:      20,
		SuffocationDamage: 10,
		HealthRegen:       1,

		PanicSuitOxygen: 60,
		GracePeriod:     15,
		StressRelief:    2,
	}
}

// Context is what the caller knows about the colonist's situation this tick
type Context struct {
	Sleeping    bool
	Socializing bool
	Relaxing    bool
	Working     bool
	Crowded     bool
	AmbientO2   float64
}

// Needs is the physiological and psychological state of one colonist
type Needs struct {
	params Params
	trait  Trait

	values [needCount]float64

	SuitOxygen    float64
	MaxSuitOxygen float64
	WearingSuit   bool

	Happiness float64
	Emotion   Emotion
	WorkSpeed float64
	MoveSpeed float64
	Dead      bool

	grace float64
}

// NewNeeds creates a rested, fed colonist state
func NewNeeds(trait Trait, p Params) *Needs {
	n := &Needs{
		params:        p,
		trait:         trait,
		SuitOxygen:    p.MaxSuitOxygen,
		MaxSuitOxygen: p.MaxSuitOxygen,
		Happiness:     100,
		Emotion:       EmotionNeutral,
		WorkSpeed:     1,
		MoveSpeed:     1,
		grace:         p.GracePeriod,
	}
	n.values[NeedHunger] = 100
	n.values[NeedThirst] = 100
	n.values[NeedEnergy] = 100
	n.values[NeedHealth] = 100
	n.values[NeedSocial] = 80
	n.values[NeedFun] = 70
	n.values[NeedStress] = 0
	return n
}

// Value returns the current level of a need
func (n *Needs) Value(k Need) float64 {
	return n.values[k]
}

// Set assigns a need, clamped to 0..100
func (n *Needs) Set(k Need, v float64) {
	n.values[k] = clamp(v, 0, MaxNeed)
}

// Adjust adds delta to a need, clamped to 0..100
func (n *Needs) Adjust(k Need, delta float64) {
	n.Set(k, n.values[k]+delta)
}

// Restore fills a need to the maximum
func (n *Needs) Restore(k Need) {
	n.Set(k, MaxNeed)
}

// AdjustHappiness nudges the derived happiness until the next update recomputes it
func (n *Needs) AdjustHappiness(delta float64) {
	n.Happiness = clamp(n.Happiness+delta, 0, MaxNeed)
}

// Trait returns the personality trait driving the modifiers
func (n *Needs) Trait() Trait {
	return n.trait
}

// InGrace returns true while the post-spawn stress grace period lasts
func (n *Needs) InGrace() bool {
	return n.grace > 0
}

// Update advances the needs by dt seconds. A dead colonist never changes again.
func (n *Needs) Update(dt float64, ctx Context) {
	if n.Dead {
		return
	}
	p := n.params
	info := n.trait.Info()

	if n.grace > 0 {
		n.grace -= dt
	}

	if ctx.AmbientO2 < p.BreathableO2 {
		n.WearingSuit = true
		n.SuitOxygen -= dt * p.SuitDrain
		if n.SuitOxygen <= 0 {
			n.SuitOxygen = 0
			n.values[NeedHealth] -= dt * p.SuffocationDamage
			if n.values[NeedHealth] <= 0 {
				n.die()
				return
			}
		}
	} else {
		n.WearingSuit = false
		n.SuitOxygen = min(n.MaxSuitOxygen, n.SuitOxygen+dt*p.SuitRecharge)
		if n.values[NeedHunger] > 50 && n.values[NeedThirst] > 50 {
			n.values[NeedHealth] += dt * p.HealthRegen
		}
	}

	if !ctx.Sleeping {
		n.values[NeedEnergy] -= dt * p.EnergyDecay
	}
	n.values[NeedHunger] -= dt * p.HungerDecay * info.HungerRate
	n.values[NeedThirst] -= dt * p.ThirstDecay
	if !ctx.Socializing {
		n.values[NeedSocial] -= dt * p.SocialDecay * info.SocialRate
	}
	if !ctx.Relaxing {
		n.values[NeedFun] -= dt * p.FunDecay
	}

	factors := n.stressFactors(ctx, info)
	if factors > 0 && n.grace <= 0 {
		n.values[NeedStress] += dt * factors * info.Resilience
	} else {
		n.values[NeedStress] -= dt * p.StressRelief
	}

	n.clampAll()
	n.deriveMood(ctx, info)
}

func (n *Needs) stressFactors(ctx Context, info TraitInfo) float64 {
	var factors float64
	for _, k := range []Need{NeedHunger, NeedThirst, NeedEnergy} {
		if n.values[k] < 20 {
			factors += 2
		}
	}
	social := n.values[NeedSocial]
	if social < 20 && !info.Solitary {
		factors++
	}
	if social > 80 && info.Solitary {
		factors++
	}
	if ctx.Crowded && info.Solitary {
		factors += 5
	}
	if n.SuitOxygen < n.params.PanicSuitOxygen {
		factors += 10
	}
	return factors
}

func (n *Needs) deriveMood(ctx Context, info TraitInfo) {
	physical := (n.values[NeedHunger] + n.values[NeedThirst] + n.values[NeedEnergy]) / 3
	mental := (n.values[NeedSocial] + n.values[NeedFun] + (MaxNeed - n.values[NeedStress])) / 3
	n.Happiness = physical*0.4 + mental*0.6

	n.Emotion = deriveEmotion(n.values[NeedStress], n.Happiness)
	e := emotionTypes[n.Emotion]
	n.WorkSpeed = e.WorkSpeed
	n.MoveSpeed = e.MoveSpeed

	if ctx.Working && info.WorkHappiness > 0 {
		n.AdjustHappiness(info.WorkHappiness)
	}
}

func (n *Needs) die() {
	n.values[NeedHealth] = 0
	n.Dead = true
	n.Emotion = EmotionDeceased
	n.WorkSpeed = 0
	n.MoveSpeed = 0
	n.WearingSuit = true
}

func (n *Needs) clampAll() {
	for i := range n.values {
		n.values[i] = clamp(n.values[i], 0, MaxNeed)
	}
	n.SuitOxygen = clamp(n.SuitOxygen, 0, n.MaxSuitOxygen)
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
