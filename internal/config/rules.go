package config

type RulesConfig struct {
	BaseHealth   RangeDef   `yaml:"base_health"`
	BaseAttack   RangeDef   `yaml:"base_attack"`
	DamageSpread int        `yaml:"damage_spread"`
	HealAmount   int        `yaml:"heal_amount"`
	Monster      MonsterDef `yaml:"monster"`
}

// RangeDef is an inclusive integer range.
type RangeDef struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

type MonsterDef struct {
	Name  string `yaml:"name"`
	Class string `yaml:"class"`
}
