package combat

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dndbattle/internal/util"
)

func TestReadLine(t *testing.T) {
	c := NewConsole(strings.NewReader("  Aria \r\n\n2"), &bytes.Buffer{})

	line, err := c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "Aria", line)

	line, err = c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "", line)

	line, err = c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "2", line)

	_, err = c.ReadLine()
	assert.True(t, errors.Is(err, ErrInputClosed))
}

func TestReadLineMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"invalid bytes", "\xff\xfe\n"},
		{"truncated rune", "Ar\xe2\x82\n"},
		{"last line without newline", "\xc3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConsole(strings.NewReader(tt.input), &bytes.Buffer{})
			_, err := c.ReadLine()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedInput))
		})
	}

	c := NewConsole(strings.NewReader("Ärzte\n"), &bytes.Buffer{})
	line, err := c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "Ärzte", line)
}

func TestChooseClassMalformedAborts(t *testing.T) {
	cc, _ := testTables(t)
	c := NewConsole(strings.NewReader("\xff\n1\n"), &bytes.Buffer{})

	_, err := c.ChooseClass(NewClassBook(cc))
	assert.True(t, errors.Is(err, ErrMalformedInput))
}

func TestChooseClassReprompts(t *testing.T) {
	cc, _ := testTables(t)
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("x\n4\n2\n"), &out)

	class, err := c.ChooseClass(NewClassBook(cc))
	require.NoError(t, err)
	assert.Equal(t, Mage, class)

	text := out.String()
	assert.Contains(t, text, "Choose your class:\n1. Warrior (+HP, -ATK)\n2. Mage (-HP, +ATK)\n3. Rogue (+ATK)\n")
	assert.Equal(t, 2, strings.Count(text, "Invalid choice. Enter 1, 2, or 3.\n"))
}

func TestChooseClassInputClosed(t *testing.T) {
	cc, _ := testTables(t)
	c := NewConsole(strings.NewReader("9\n"), &bytes.Buffer{})

	_, err := c.ChooseClass(NewClassBook(cc))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInputClosed))
}

func TestListChoices(t *testing.T) {
	assert.Equal(t, "", listChoices(nil))
	assert.Equal(t, "1", listChoices([]string{"1"}))
	assert.Equal(t, "1 or 2", listChoices([]string{"1", "2"}))
	assert.Equal(t, "1, 2, or 3", listChoices([]string{"1", "2", "3"}))
}

func TestPrintSpacing(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader(""), &out)

	c.Print(Event{Type: EvSpawn, Text: "Your stats", Payload: map[string]any{"role": "player"}})
	c.Print(Event{Type: EvSpawn, Text: "Monster stats", Payload: map[string]any{"role": "monster"}})
	c.Print(Event{Type: EvBattleStart, Text: "Battle begins!"})
	c.Print(Event{Type: EvTurnStart, Text: "--- Turn 1 ---"})
	c.Print(Event{Type: EvAttack, Text: "hit"})

	assert.Equal(t, "\nYour stats\nMonster stats\n\nBattle begins!\n\n--- Turn 1 ---\nhit\n", out.String())
}

func TestGamePlay(t *testing.T) {
	cc, rc := testTables(t)
	input := "Aria\n7\n1\n" + strings.Repeat("1\n", 80)
	var out bytes.Buffer
	env := &Env{Rng: util.New(5), Rules: rc}
	g := NewGame(env, cc, NewConsole(strings.NewReader(input), &out), nil)
	g.Record = true

	res, err := g.Play()
	require.NoError(t, err)

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "Welcome to Rusty DnD Battle!\nEnter your character's name:\n"))
	assert.Contains(t, text, "Invalid choice. Enter 1, 2, or 3.")
	assert.Contains(t, text, "Your stats: ")
	assert.Contains(t, text, "(Warrior)")
	assert.Contains(t, text, "Monster stats: ")
	assert.Contains(t, text, "--- Turn 1 ---")

	won := strings.Count(text, "Goblin has been defeated by Aria!! You win!")
	lost := strings.Count(text, "Aria has been defeated! Goblin wins!! Game Over!!")
	assert.Equal(t, 1, won+lost)
	assert.Equal(t, won == 1, res.Win)

	assert.Equal(t, "Aria", res.Player.Name)
	assert.Equal(t, "Warrior", res.Player.ClassName)
	assert.Equal(t, "Goblin", res.Monster.Name)
	assert.Equal(t, "Warrior", res.Monster.ClassName)
	assert.NotEmpty(t, res.Events)
}

func TestGamePlayPipedInputRunsToEnd(t *testing.T) {
	cc, rc := testTables(t)
	var out bytes.Buffer
	env := &Env{Rng: util.New(5), Rules: rc}
	g := NewGame(env, cc, NewConsole(strings.NewReader("Aria\n1\n1\n"), &out), nil)

	_, err := g.Play()
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Invalid action. Defaulting to attack.")
	won := strings.Count(text, "You win!")
	lost := strings.Count(text, "Game Over!!")
	assert.Equal(t, 1, won+lost)
}

func TestGamePlayMalformedName(t *testing.T) {
	cc, rc := testTables(t)
	env := &Env{Rng: util.New(5), Rules: rc}
	g := NewGame(env, cc, NewConsole(strings.NewReader("\xff\xfe\n1\n"), &bytes.Buffer{}), nil)

	_, err := g.Play()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedInput))
}

func TestGamePlayNoInput(t *testing.T) {
	cc, rc := testTables(t)
	env := &Env{Rng: util.New(5), Rules: rc}
	g := NewGame(env, cc, NewConsole(strings.NewReader(""), &bytes.Buffer{}), nil)

	_, err := g.Play()
	assert.True(t, errors.Is(err, ErrInputClosed))
}
