package combat

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// State is where a battle stands between and within turns.
type State int

const (
	AwaitingAction State = iota
	ActionResolved
	MonsterRetaliates
	PlayerDefeated
	MonsterDefeated
)

func (s State) String() string {
	switch s {
	case AwaitingAction:
		return "AwaitingAction"
	case ActionResolved:
		return "ActionResolved"
	case MonsterRetaliates:
		return "MonsterRetaliates"
	case PlayerDefeated:
		return "PlayerDefeated"
	case MonsterDefeated:
		return "MonsterDefeated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

func (s State) Terminal() bool { return s == PlayerDefeated || s == MonsterDefeated }

// Action is what the player does on a turn.
type Action int

const (
	ActAttack Action = iota + 1
	ActHeal
)

// ParseAction maps a selector line to an action. Anything other than "1"
// or "2" falls back to attack and reports ok=false.
func ParseAction(selector string) (Action, bool) {
	switch selector {
	case "1":
		return ActAttack, true
	case "2":
		return ActHeal, true
	}
	return ActAttack, false
}

// Result is the outcome of a battle; it is what --out writes as JSON.
type Result struct {
	Win     bool      `json:"win"`
	Turns   int       `json:"turns"`
	Winner  string    `json:"winner"`
	Seed    int64     `json:"seed,omitempty"`
	Player  Character `json:"player"`
	Monster Character `json:"monster"`
	Events  []Event   `json:"events,omitempty"`
}

// Battle is the turn loop between a player and a monster.
type Battle struct {
	Player  *Character
	Monster *Character
	AI      *MonsterAI
	Turn    int
	State   State

	env    *Env
	log    *zap.Logger
	sink   func(Event)
	events []Event
	record bool
}

// NewBattle takes over env.Emit: every event is recorded (when record is
// set) and then handed to sink.
func NewBattle(env *Env, player, monster *Character, sink func(Event), log *zap.Logger, record bool) *Battle {
	if log == nil {
		log = zap.NewNop()
	}
	b := &Battle{
		Player:  player,
		Monster: monster,
		AI:      NewMonsterAI(),
		Turn:    1,
		State:   AwaitingAction,
		env:     env,
		log:     log,
		sink:    sink,
		record:  record,
	}
	env.Turn = b.Turn
	env.Emit = b.emit
	return b
}

func (b *Battle) emit(ev Event) {
	if b.record {
		b.events = append(b.events, ev)
	}
	if b.sink != nil {
		b.sink(ev)
	}
}

func (b *Battle) Events() []Event { return b.events }

// Start announces both combatants.
func (b *Battle) Start() {
	b.env.emit(Event{Type: EvSpawn,
		Text:    fmt.Sprintf("Your stats: %s (%s)", b.Player, b.Player.ClassName),
		Payload: spawnPayload("player", b.Player)})
	b.env.emit(Event{Type: EvSpawn,
		Text:    fmt.Sprintf("Monster stats: %s (%s)", b.Monster, b.Monster.ClassName),
		Payload: spawnPayload("monster", b.Monster)})
	b.env.emit(Event{Type: EvBattleStart, Text: "Battle begins!"})
}

func spawnPayload(role string, c *Character) map[string]any {
	return map[string]any{
		"role": role, "name": c.Name, "class": c.ClassName,
		"hp": c.Health, "atk": c.Attack,
	}
}

// AnnounceTurn emits the turn header and the action prompt.
func (b *Battle) AnnounceTurn() {
	b.env.emit(Event{Type: EvTurnStart, Text: fmt.Sprintf("--- Turn %d ---", b.Turn),
		Payload: map[string]any{"turn": b.Turn}})
	b.env.emit(Event{Type: EvPrompt, Text: "Choose action: 1) Attack  2) Heal"})
}

// Step resolves one turn from an action selector and returns the state the
// battle is left in: AwaitingAction for the next turn, or a terminal state.
// Calling Step on a finished battle does nothing.
func (b *Battle) Step(selector string) State {
	if b.State.Terminal() {
		return b.State
	}

	action, ok := ParseAction(selector)
	if !ok {
		b.env.emit(Event{Type: EvInvalidAction, Text: "Invalid action. Defaulting to attack.",
			Payload: map[string]any{"input": selector}})
	}
	switch action {
	case ActHeal:
		b.Player.Heal(b.env)
	default:
		b.Player.AttackTarget(b.env, b.Monster)
	}
	b.State = ActionResolved

	if b.AI.Retaliate(b.env, b.Monster, b.Player) {
		b.State = MonsterRetaliates
	}

	b.log.Debug("turn resolved",
		zap.Int("turn", b.Turn),
		zap.Int("player_hp", b.Player.Health),
		zap.Int("monster_hp", b.Monster.Health))

	// The player is checked first, so a double knockout is a defeat.
	switch {
	case !b.Player.IsAlive():
		b.State = PlayerDefeated
		b.env.emit(Event{Type: EvDefeat,
			Text: fmt.Sprintf("%s has been defeated! %s wins!! Game Over!!", b.Player.Name, b.Monster.Name)})
	case !b.Monster.IsAlive():
		b.State = MonsterDefeated
		b.env.emit(Event{Type: EvVictory,
			Text: fmt.Sprintf("%s has been defeated by %s!! You win!", b.Monster.Name, b.Player.Name)})
	default:
		b.Turn++
		b.env.Turn = b.Turn
		b.State = AwaitingAction
	}
	return b.State
}

// LineReader supplies one trimmed input line per call.
type LineReader interface {
	ReadLine() (string, error)
}

// Run drives the battle from in until a terminal state. Closed input reads
// as an empty selector, so the remaining turns default to attack. Any other
// read error ends the battle early and is returned.
func (b *Battle) Run(in LineReader) (Result, error) {
	for !b.State.Terminal() {
		b.AnnounceTurn()
		line, err := in.ReadLine()
		if err != nil && !errors.Is(err, ErrInputClosed) {
			return b.Result(), errors.Wrapf(err, "read action for turn %d", b.Turn)
		}
		b.Step(line)
	}
	res := b.Result()
	b.log.Info("battle finished",
		zap.Bool("win", res.Win),
		zap.Int("turns", res.Turns),
		zap.String("winner", res.Winner))
	return res, nil
}

// Result snapshots the battle as it stands.
func (b *Battle) Result() Result {
	res := Result{
		Win:     b.State == MonsterDefeated,
		Turns:   b.Turn,
		Player:  *b.Player,
		Monster: *b.Monster,
	}
	switch b.State {
	case MonsterDefeated:
		res.Winner = b.Player.Name
	case PlayerDefeated:
		res.Winner = b.Monster.Name
	}
	if b.record {
		res.Events = b.events
	}
	return res
}

// SaveResult stamps res with the seed it was played with and writes it to
// path as indented JSON.
func SaveResult(path string, res Result, seed int64) error {
	res.Seed = seed
	b, err := MarshalPretty(res)
	if err != nil {
		return err
	}
	return errors.Wrapf(os.WriteFile(path, b, 0644), "write %s", path)
}

func MarshalPretty(v any) ([]byte, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	return b, errors.Wrap(err, "marshal json")
}
