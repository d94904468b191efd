package config

type ClassesConfig struct {
	Classes []ClassDef `yaml:"classes"`
}

// ClassDef is one playable class and the modifiers applied on top of the
// rolled base stats.
type ClassDef struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Selector  string `yaml:"selector"`
	Hint      string `yaml:"hint"`
	HealthMod int    `yaml:"health_mod"`
	AttackMod int    `yaml:"attack_mod"`
}

func (cc *ClassesConfig) Find(id string) (ClassDef, bool) {
	if cc == nil {
		return ClassDef{}, false
	}
	for _, c := range cc.Classes {
		if c.ID == id {
			return c, true
		}
	}
	return ClassDef{}, false
}

func (cc *ClassesConfig) BySelector(sel string) (ClassDef, bool) {
	if cc == nil {
		return ClassDef{}, false
	}
	for _, c := range cc.Classes {
		if c.Selector == sel {
			return c, true
		}
	}
	return ClassDef{}, false
}
