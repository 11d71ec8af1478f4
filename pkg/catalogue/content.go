package catalogue

import "github.com/freeeve/realmwright/pkg/realm"

// Standard blessings.
var (
	BeginnerSpells        = &realm.Blessing{Name: "Beginner Spells", Description: "Everyone has to start somewhere, right?", Cost: 100}
	DivineArchitecture    = &realm.Blessing{Name: "Divine Architecture", Description: "As the holy ones intended.", Cost: 300}
	RudimentaryExplosives = &realm.Blessing{Name: "Rudimentary Explosives", Description: "Nothing can go wrong with this.", Cost: 100}
	RoboticExperiments    = &realm.Blessing{Name: "Robotic Experiments", Description: "The artificial eye only stares back.", Cost: 300}
	AdvancedTrading       = &realm.Blessing{Name: "Advanced Trading", Description: "You could base a society on this.", Cost: 100}
	SelfLockingVaults     = &realm.Blessing{Name: "Self-locking Vaults", Description: "Nothing's getting in or out.", Cost: 300}
	ProfitableNecessities = &realm.Blessing{Name: "Profitable Necessities", Description: "The irresistible temptation of a quick buck.", Cost: 100}
	HollowPhotosynthesis  = &realm.Blessing{Name: "Hollow Photosynthesis", Description: "Moonlight is just as good.", Cost: 300}
	TortureTechniques     = &realm.Blessing{Name: "Torture Techniques", Description: "There's got to be something better.", Cost: 100}
	ApertureRefinement    = &realm.Blessing{Name: "Aperture Refinement", Description: "Picture perfect.", Cost: 300}
	TheGreaterGood        = &realm.Blessing{Name: "The Greater Good", Description: "The benefit of helping others.", Cost: 100}
	ReformistPrinciples   = &realm.Blessing{Name: "Reformist Principles", Description: "Maybe another system could be better.", Cost: 300}
)

func standardBlessings() []*realm.Blessing {
	return []*realm.Blessing{
		BeginnerSpells, DivineArchitecture, RudimentaryExplosives, RoboticExperiments,
		AdvancedTrading, SelfLockingVaults, ProfitableNecessities, HollowPhotosynthesis,
		TortureTechniques, ApertureRefinement, TheGreaterGood, ReformistPrinciples,
	}
}

func imp(cat realm.ImprovementCategory, cost float64, name, desc string, eff realm.Effect, prereq *realm.Blessing) *realm.Improvement {
	return &realm.Improvement{Category: cat, Cost: cost, Name: name, Description: desc, Effect: eff, Prereq: prereq}
}

func standardImprovements() []*realm.Improvement {
	return []*realm.Improvement{
		imp(realm.Magical, 30, "Melting Pot", "A starting pot to conduct concoctions.",
			realm.Effect{Fortune: 5, Satisfaction: 2}, nil),
		imp(realm.Magical, 150, "Haunted Forest", "The branches shake, yet there's no wind.",
			realm.Effect{Harvest: 1, Fortune: 8, Satisfaction: -5}, BeginnerSpells),
		imp(realm.Magical, 150, "Occult Bartering", "Dealing with both dead and alive.",
			realm.Effect{Wealth: 1, Fortune: 8, Satisfaction: -1}, AdvancedTrading),
		imp(realm.Magical, 750, "Ancient Shrine", "Some say it emanates an invigorating aura.",
			realm.Effect{Wealth: 2, Zeal: -2, Fortune: 20, Satisfaction: 10}, DivineArchitecture),
		imp(realm.Magical, 750, "Dimensional Imagery", "See into another world.",
			realm.Effect{Fortune: 25, Satisfaction: 2}, ApertureRefinement),

		imp(realm.Industrial, 30, "Local Forge", "Just a mum-and-dad-type operation.",
			realm.Effect{Wealth: 2, Zeal: 5}, nil),
		imp(realm.Industrial, 150, "Weapons Factory", "Made to kill outsiders. Mostly.",
			realm.Effect{Wealth: 2, Zeal: 5, Strength: 25, Satisfaction: -2}, RudimentaryExplosives),
		imp(realm.Industrial, 150, "Enslaved Workforce", "Gets the job done.",
			realm.Effect{Wealth: 2, Harvest: -1, Zeal: 6, Fortune: -2, Satisfaction: -5}, TortureTechniques),
		imp(realm.Industrial, 750, "Automated Production", "In and out, no fuss.",
			realm.Effect{Wealth: 3, Zeal: 30, Satisfaction: -10}, RoboticExperiments),
		imp(realm.Industrial, 750, "Lab-grown Workers", "Human or not, they work the same.",
			realm.Effect{Wealth: 3, Harvest: -2, Zeal: 30, Fortune: -5, Strength: 2, Satisfaction: -10}, HollowPhotosynthesis),

		imp(realm.Economical, 30, "City Market", "Pockets empty, but friend or foe?",
			realm.Effect{Wealth: 5, Harvest: 2, Zeal: 2, Fortune: -1, Satisfaction: 2}, nil),
		imp(realm.Economical, 150, "State Bank", "You're not the first to try your luck.",
			realm.Effect{Wealth: 8, Fortune: -2, Strength: 5, Satisfaction: 2}, AdvancedTrading),
		imp(realm.Economical, 150, "Harvest Levy", "Definitely only for times of need.",
			realm.Effect{Wealth: 8, Harvest: 2, Zeal: -1, Fortune: -1, Satisfaction: -2}, ProfitableNecessities),
		imp(realm.Economical, 750, "National Mint", "Gold as far as the eye can see.",
			realm.Effect{Wealth: 30, Fortune: -5, Strength: 10, Satisfaction: 5}, SelfLockingVaults),
		imp(realm.Economical, 750, "Federal Museum", "Cataloguing all that was left for us.",
			realm.Effect{Wealth: 10, Fortune: 10, Satisfaction: 4}, DivineArchitecture),

		imp(realm.Bountiful, 30, "Collectivised Farms", "Well, the shelves will be stocked.",
			realm.Effect{Wealth: 2, Harvest: 10, Zeal: -2, Satisfaction: -2}, nil),
		imp(realm.Bountiful, 150, "Supermarket Chains", "On every street corner.",
			realm.Effect{Harvest: 8, Satisfaction: 2}, ProfitableNecessities),
		imp(realm.Bountiful, 150, "Distributed Rations", "Everyone gets their fair share.",
			realm.Effect{Harvest: 8, Zeal: -1, Fortune: 1, Satisfaction: -1}, TheGreaterGood),
		imp(realm.Bountiful, 750, "Underground Greenhouses", "The glass is just for show.",
			realm.Effect{Harvest: 25, Zeal: -5, Fortune: -2}, HollowPhotosynthesis),
		imp(realm.Bountiful, 750, "Impenetrable Stores", "Unprecedented control over stock.",
			realm.Effect{Wealth: -1, Harvest: 25, Strength: 5, Satisfaction: -5}, SelfLockingVaults),

		imp(realm.Intimidatory, 30, "Insurmountable Walls", "Quite the view from up here.",
			realm.Effect{Strength: 25, Satisfaction: 2}, nil),
		imp(realm.Intimidatory, 150, "Intelligence Academy", "What's learnt in here, stays in here.",
			realm.Effect{Strength: 30, Satisfaction: -2}, TortureTechniques),
		imp(realm.Intimidatory, 150, "Minefields", "Cross if you dare.",
			realm.Effect{Harvest: -1, Strength: 30, Satisfaction: -1}, RudimentaryExplosives),
		imp(realm.Intimidatory, 750, "CCTV Cameras", "Big Brother's always watching.",
			realm.Effect{Zeal: 5, Fortune: -2, Strength: 50, Satisfaction: -2}, ApertureRefinement),
		imp(realm.Intimidatory, 750, "Cult of Personality", "The supreme leader can do no wrong.",
			realm.Effect{Wealth: 2, Harvest: 2, Zeal: 2, Fortune: 2, Strength: 50, Satisfaction: 5}, ReformistPrinciples),

		imp(realm.Pandering, 30, "Aqueduct", "Water from there to here.",
			realm.Effect{Harvest: 2, Fortune: -1, Satisfaction: 5}, nil),
		imp(realm.Pandering, 150, "Soup Kitchen", "No one's going hungry here.",
			realm.Effect{Wealth: -1, Zeal: 2, Fortune: 2, Satisfaction: 6}, TheGreaterGood),
		imp(realm.Pandering, 150, "Puppet Shows", "Putting those spells to use.",
			realm.Effect{Wealth: 1, Zeal: -1, Fortune: 1, Satisfaction: 6}, BeginnerSpells),
		imp(realm.Pandering, 750, "Universal Basic Income", "Utopian in more ways than one.",
			realm.Effect{Wealth: -5, Harvest: 2, Zeal: 2, Fortune: 2, Strength: 2, Satisfaction: 10}, ReformistPrinciples),
		imp(realm.Pandering, 750, "Infinite Entertainment", "Where the robots are the stars.",
			realm.Effect{Zeal: 2, Fortune: -1, Satisfaction: 12}, RoboticExperiments),
	}
}

// Warrior is the base unit every empire can train; settlements start with one.
var Warrior = &realm.UnitPlan{Cost: 100, MaxHealth: 100, TotalStamina: 3, Name: "Warrior", Power: 25}

// Heathen is the plan wandering ownerless units are built from.
var Heathen = &realm.UnitPlan{Cost: 80, MaxHealth: 80, TotalStamina: 2, Name: "Heathen", Power: 0}

func standardUnitPlans() []*realm.UnitPlan {
	return []*realm.UnitPlan{
		Warrior,
		{Cost: 125, MaxHealth: 50, TotalStamina: 5, Name: "Archer", Power: 25},
		{Cost: 25, MaxHealth: 25, TotalStamina: 6, Name: "Settler", Power: 50, CanSettle: true},
		{Cost: 150, MaxHealth: 75, TotalStamina: 4, Name: "Mage", Prereq: BeginnerSpells, Power: 50},
		{Cost: 200, MaxHealth: 40, TotalStamina: 2, Name: "Grenadier", Prereq: RudimentaryExplosives, Power: 75},
		{Cost: 150, MaxHealth: 150, TotalStamina: 5, Name: "Drone", Prereq: RoboticExperiments, Power: 125},
		{Cost: 50, MaxHealth: 200, TotalStamina: 2, Name: "Flagellant", Prereq: TortureTechniques, Power: 80},
		{Cost: 150, MaxHealth: 125, TotalStamina: 3, Name: "Sniper", Prereq: ApertureRefinement, Power: 100},
	}
}

func standardNames() map[realm.Biome][]string {
	return map[realm.Biome][]string{
		realm.Desert: {
			"Enfu", "Saknoten", "Despemar", "Khasolzum", "Nekpesir", "Akhtamar", "Absai", "Khanomhat", "Sharrisir", "Kisri",
		},
		realm.Forest: {
			"Kalshara", "Mora Caelora", "Yam Ennore", "Uyla Themar", "Nelrenqua", "Caranlian", "Osaenamel", "Elhamel",
			"Allenrion", "Nilathaes",
		},
		realm.Sea: {
			"Natanas", "Tempetia", "Leviarey", "Atlalis", "Neptulean", "Oceacada", "Naurus", "Hylore", "Expathis", "Liquasa",
		},
		realm.Mountain: {
			"Nem Tarhir", "Dharnturm", "Hun Thurum", "Vil Tarum", "Khurn Kuldihr", "Hildarim", "Gog Daruhl", "Vogguruhm",
			"Dhighthiod", "Malwihr",
		},
	}
}
