package behavior

// Timers are the base durations, in seconds, of timed actions. Work, deconstruct
// and mine durations are divided by the colonist's work speed.
type Timers struct {
	Eat         float64 `yaml:"eat"`
	Drink       float64 `yaml:"drink"`
	Sleep       float64 `yaml:"sleep"`
	Relax       float64 `yaml:"relax"`
	Work        float64 `yaml:"work"`
	Deconstruct float64 `yaml:"deconstruct"`
	Mine        float64 `yaml:"mine"`
	Deposit     float64 `yaml:"deposit"`
	Socialize   float64 `yaml:"socialize"`
}

// Thresholds are the need levels that trigger a search in the decision tree
type Thresholds struct {
	Hunger    float64 `yaml:"hunger"`
	Thirst    float64 `yaml:"thirst"`
	Energy    float64 `yaml:"energy"`
	Social    float64 `yaml:"social"`
	Fun       float64 `yaml:"fun"`
	StressLow float64 `yaml:"stress_low"`
	StressMax float64 `yaml:"stress_max"`
}

// Params are the controller tunables
type Params struct {
	BaseSpeed       float64 `yaml:"base_speed"`
	ArriveTolerance float64 `yaml:"arrive_tolerance"`

	PeerRange        float64 `yaml:"peer_range"`
	CrowdLimit       int     `yaml:"crowd_limit"` // crowded when more colonists than this are in range, self included
	InteractDistance float64 `yaml:"interact_distance"`
	FriendReach      float64 `yaml:"friend_reach"`

	WanderChance float64 `yaml:"wander_chance"`
	WanderRadius float64 `yaml:"wander_radius"`

	MineYield       int     `yaml:"mine_yield"`
	MineEnergyCost  float64 `yaml:"mine_energy_cost"`
	WorkFunCost     float64 `yaml:"work_fun_cost"`
	SocialHappiness float64 `yaml:"social_happiness"`

	PanicSuitOxygen float64 `yaml:"panic_suit_oxygen"`
	UnsafeO2        float64 `yaml:"unsafe_o2"`
	SafeO2          float64 `yaml:"safe_o2"`

	TantrumRelief float64 `yaml:"tantrum_relief"`
	TantrumExit   float64 `yaml:"tantrum_exit"`

	Timers     Timers     `yaml:"timers"`
	Thresholds Thresholds `yaml:"thresholds"`
}

// DefaultParams returns the stock controller tunables
func DefaultParams() Params {
	return Params{
		BaseSpeed:       15,
		ArriveTolerance: 0.8,

		PeerRange:        20,
		CrowdLimit:       3,
		InteractDistance: 8,
		FriendReach:      10,

		WanderChance: 0.05,
		WanderRadius: 30,

		MineYield:       10,
		MineEnergyCost:  10,
		WorkFunCost:     5,
		SocialHappiness: 10,

		PanicSuitOxygen: 60,
		UnsafeO2:        20,
		SafeO2:          50,

		TantrumRelief: 5,
		TantrumExit:   40,

		Timers: Timers{
			Eat:         3,
			Drink:       2,
			Sleep:       15,
			Relax:       8,
			Work:        4,
			Deconstruct: 4,
			Mine:        5,
			Deposit:     1,
			Socialize:   5,
		},
		Thresholds: Thresholds{
			Hunger:    50,
			Thirst:    50,
			Energy:    30,
			Social:    50,
			Fun:       30,
			StressLow: 50,
			StressMax: 80,
		},
	}
}
