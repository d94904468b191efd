package combat

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"dndbattle/internal/config"
)

// Game wires one interactive session: setup prompts, character creation and
// the battle itself.
type Game struct {
	Env     *Env
	Book    *ClassBook
	Console *Console
	Log     *zap.Logger
	Record  bool
}

// NewGame builds a session over env. A nil log discards diagnostics.
func NewGame(env *Env, classes *config.ClassesConfig, console *Console, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	return &Game{Env: env, Book: NewClassBook(classes), Console: console, Log: log}
}

// Play runs the session to the end of the battle. Input errors abort it.
func (g *Game) Play() (Result, error) {
	g.Console.Println("Welcome to Rusty DnD Battle!")

	name, err := g.Console.AskName()
	if err != nil {
		return Result{}, err
	}
	class, err := g.Console.ChooseClass(g.Book)
	if err != nil {
		return Result{}, err
	}

	rules := g.Env.rules()
	monsterClass, ok := ClassByID(rules.Monster.Class)
	if !ok {
		return Result{}, errors.Newf("unknown monster class %q", rules.Monster.Class)
	}

	player := g.Book.Create(g.Env, name, class)
	monster := g.Book.Create(g.Env, rules.Monster.Name, monsterClass)
	g.Log.Debug("characters created",
		zap.Stringer("player", player),
		zap.Stringer("monster", monster))

	b := NewBattle(g.Env, player, monster, g.Console.Print, g.Log, g.Record)
	b.Start()
	return b.Run(g.Console)
}
