package combat

import (
	"dndbattle/internal/config"
	"dndbattle/internal/util"
)

// Event is one status line of the battle. Text is what the console prints.
type Event struct {
	Turn    int            `json:"turn"`
	Type    string         `json:"type"`
	Text    string         `json:"text"`
	Payload map[string]any `json:"payload,omitempty"`
}

const (
	EvSpawn         = "Spawn"
	EvBattleStart   = "BattleStart"
	EvPrompt        = "Prompt"
	EvTurnStart     = "TurnStart"
	EvAttack        = "Attack"
	EvDamage        = "Damage"
	EvHeal          = "Heal"
	EvHealRefused   = "HealRefused"
	EvInvalidAction = "InvalidAction"
	EvDefeat        = "Defeat"
	EvVictory       = "Victory"
)

// Env carries what character operations need besides the characters:
// the random source, the stat rules and where to report events.
type Env struct {
	Turn  int
	Rng   util.Source
	Rules *config.RulesConfig
	Emit  func(Event)
}

func (env *Env) emit(ev Event) {
	if env.Emit == nil {
		return
	}
	ev.Turn = env.Turn
	env.Emit(ev)
}

type Class int

const (
	Warrior Class = iota
	Mage
	Rogue
)

var classIDs = [...]string{Warrior: "warrior", Mage: "mage", Rogue: "rogue"}

// ID is the key used in classes.yaml.
func (c Class) ID() string {
	if c < 0 || int(c) >= len(classIDs) {
		return ""
	}
	return classIDs[c]
}

func ClassByID(id string) (Class, bool) {
	for i, v := range classIDs {
		if v == id {
			return Class(i), true
		}
	}
	return 0, false
}
