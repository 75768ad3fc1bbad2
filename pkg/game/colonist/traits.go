package colonist

import "strings"

// Trait is a fixed personality modifier, chosen once at creation
type Trait int

const (
	TraitWorkaholic Trait = iota
	TraitSocialite
	TraitLoner
	TraitGlutton
	TraitNervous
)

// traitCount is the number of traits (for random selection)
const traitCount = 5

// TraitInfo holds the modifiers and display text of a trait
type TraitInfo struct {
	Name        string
	Description string

	HungerRate float64 // Multiplies hunger decay
	SocialRate float64 // Multiplies social decay
	Resilience float64 // Multiplies stress accrual

	// Solitary traits avoid company: they never seek peers and are stressed by crowds
	Solitary bool

	// WorkHappiness is added to happiness on every update spent working
	WorkHappiness float64
}

// TraitTypes maps traits to their modifiers
var TraitTypes = map[Trait]TraitInfo{
	TraitWorkaholic: {
		Name:          "Workaholic",
		Description:   "Working restores Happiness, Social decays faster.",
		HungerRate:    1,
		SocialRate:    1.5,
		Resilience:    1,
		WorkHappiness: 0.5,
	},
	TraitSocialite: {
		Name:        "Socialite",
		Description: "Needs frequent interaction. Social decays fast.",
		HungerRate:  1,
		SocialRate:  2.0,
		Resilience:  1,
	},
	TraitLoner: {
		Name:        "Loner",
		Description: "Prefers solitude. Stressed by crowds.",
		HungerRate:  1,
		SocialRate:  0.2,
		Resilience:  1,
		Solitary:    true,
	},
	TraitGlutton: {
		Name:        "Glutton",
		Description: "Gets hungry faster, eats faster.",
		HungerRate:  1.5,
		SocialRate:  1,
		Resilience:  1,
	},
	TraitNervous: {
		Name:        "Nervous",
		Description: "Stress rises easily. Needs high O2/Safety.",
		HungerRate:  1,
		SocialRate:  1,
		Resilience:  2.0,
	},
}

func (t Trait) String() string {
	if info, ok := TraitTypes[t]; ok {
		return info.Name
	}
	return "Unknown"
}

// LabelKey returns the translation key of the trait label
func (t Trait) LabelKey() string {
	return "TRAIT_" + strings.ToUpper(t.String())
}

// Info returns the trait's modifier table entry
func (t Trait) Info() TraitInfo {
	return TraitTypes[t]
}

// Role decides which work a colonist looks for
type Role int

const (
	RoleEngineer Role = iota // Builds and deconstructs
	RoleMiner                // Mines asteroids and hauls matter to storage
	RoleSecurity             // No work yet; wanders
	RoleScientist            // No work yet; wanders
)

const roleCount = 4

// RoleNames maps roles to display names
var RoleNames = map[Role]string{
	RoleEngineer:  "Engineer",
	RoleMiner:     "Miner",
	RoleSecurity:  "Security",
	RoleScientist: "Scientist",
}

func (r Role) String() string {
	if name, ok := RoleNames[r]; ok {
		return name
	}
	return "Unknown"
}

// LabelKey returns the translation key of the role label
func (r Role) LabelKey() string {
	return "ROLE_" + strings.ToUpper(r.String())
}

// ParseRole returns the role with the given name, ignoring case
func ParseRole(s string) (Role, bool) {
	for r, name := range RoleNames {
		if strings.EqualFold(s, name) {
			return r, true
		}
	}
	return RoleEngineer, false
}
