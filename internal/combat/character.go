package combat

import (
	"fmt"

	"dndbattle/internal/config"
	"dndbattle/internal/util"
)

// fallbackRules apply when an Env carries no rules table.
var fallbackRules = config.RulesConfig{
	BaseHealth:   config.RangeDef{Min: 80, Max: 120},
	BaseAttack:   config.RangeDef{Min: 15, Max: 25},
	DamageSpread: 5,
	HealAmount:   30,
	Monster:      config.MonsterDef{Name: "Goblin", Class: "warrior"},
}

func (env *Env) rules() *config.RulesConfig {
	if env.Rules == nil {
		return &fallbackRules
	}
	return env.Rules
}

// rng returns env.Rng, installing a seed-1 source when none was given.
func (env *Env) rng() util.Source {
	if env.Rng == nil {
		env.Rng = util.New(1)
	}
	return env.Rng
}

// Character is a combatant. Health only changes through TakeDamage and
// Heal; Attack is fixed once created.
type Character struct {
	Name       string `json:"name"`
	Class      Class  `json:"-"`
	ClassName  string `json:"class"`
	Health     int    `json:"health"`
	Attack     int    `json:"attack"`
	PotionUsed bool   `json:"potion_used"`
}

func (c *Character) IsAlive() bool { return c.Health > 0 }

func (c *Character) String() string {
	return fmt.Sprintf("{name: %q, class: %s, health: %d, attack: %d, potion_used: %t}",
		c.Name, c.ClassName, c.Health, c.Attack, c.PotionUsed)
}

// TakeDamage subtracts amount unconditionally. Health is not floored and a
// negative amount raises it.
func (c *Character) TakeDamage(env *Env, amount int) {
	c.Health -= amount
	env.emit(Event{Type: EvDamage,
		Text: fmt.Sprintf("%s takes %d damage! Health now: %d", c.Name, amount, c.Health),
		Payload: map[string]any{
			"target": c.Name, "dmg": amount, "hp": c.Health,
		}})
}

// AttackTarget rolls damage in [Attack-spread, Attack+spread] and applies
// it to target. Low attack values can roll zero or negative damage.
func (c *Character) AttackTarget(env *Env, target *Character) int {
	spread := env.rules().DamageSpread
	dmg := util.RangeInclusive(env.rng(), c.Attack-spread, c.Attack+spread)
	env.emit(Event{Type: EvAttack,
		Text: fmt.Sprintf("%s attacks %s for %d damage!", c.Name, target.Name, dmg),
		Payload: map[string]any{
			"caster": c.Name, "target": target.Name, "dmg": dmg,
		}})
	target.TakeDamage(env, dmg)
	return dmg
}

// Heal drinks the single potion. It reports false when the potion is gone.
func (c *Character) Heal(env *Env) bool {
	if c.PotionUsed {
		env.emit(Event{Type: EvHealRefused, Text: "Potion already used!",
			Payload: map[string]any{"target": c.Name}})
		return false
	}
	amount := env.rules().HealAmount
	c.Health += amount
	c.PotionUsed = true
	env.emit(Event{Type: EvHeal,
		Text: fmt.Sprintf("%s uses a healing potion! Health restored to %d", c.Name, c.Health),
		Payload: map[string]any{
			"target": c.Name, "heal": amount, "hp": c.Health,
		}})
	return true
}

// ClassBook turns class definitions into characters.
type ClassBook struct {
	cfg     *config.ClassesConfig
	byClass map[Class]config.ClassDef
}

func NewClassBook(cfg *config.ClassesConfig) *ClassBook {
	cb := &ClassBook{cfg: cfg, byClass: map[Class]config.ClassDef{}}
	if cfg == nil {
		return cb
	}
	for _, def := range cfg.Classes {
		if cl, ok := ClassByID(def.ID); ok {
			cb.byClass[cl] = def
		}
	}
	return cb
}

// Def returns the definition of class. Unknown classes get no modifiers.
func (cb *ClassBook) Def(class Class) config.ClassDef {
	if cb != nil {
		if def, ok := cb.byClass[class]; ok {
			return def
		}
	}
	return config.ClassDef{ID: class.ID(), Name: class.ID()}
}

// BySelector resolves a menu answer to a class.
func (cb *ClassBook) BySelector(sel string) (Class, bool) {
	if cb == nil {
		return 0, false
	}
	def, ok := cb.cfg.BySelector(sel)
	if !ok {
		return 0, false
	}
	return ClassByID(def.ID)
}

// Create rolls base health, then base attack, and applies the class
// modifiers. The potion starts unused.
func (cb *ClassBook) Create(env *Env, name string, class Class) *Character {
	r := env.rules()
	baseHealth := util.RangeInclusive(env.rng(), r.BaseHealth.Min, r.BaseHealth.Max)
	baseAttack := util.RangeInclusive(env.rng(), r.BaseAttack.Min, r.BaseAttack.Max)
	def := cb.Def(class)
	return &Character{
		Name:      name,
		Class:     class,
		ClassName: def.Name,
		Health:    baseHealth + def.HealthMod,
		Attack:    baseAttack + def.AttackMod,
	}
}
