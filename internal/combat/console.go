package combat

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

var (
	// ErrInputClosed is returned when input ends before a full answer was read.
	ErrInputClosed = errors.New("input closed")
	// ErrMalformedInput is returned for a line that is not valid UTF-8.
	ErrMalformedInput = errors.New("malformed input")
)

// Console reads answers line by line and prints battle text.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole reads answers from in and writes battle text to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

func (c *Console) Println(a ...any) { fmt.Fprintln(c.out, a...) }

// ReadLine returns the next line with surrounding whitespace removed. A last
// line without a newline is still returned; after that ErrInputClosed.
// Bytes that are not UTF-8 give ErrMalformedInput.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", errors.Wrap(err, "read line")
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	if !utf8.ValidString(line) {
		return "", errors.Wrap(ErrMalformedInput, "read line")
	}
	return strings.TrimSpace(line), nil
}

// Print writes an event's text. Turn headers, the stats block and the start
// banner are set off by a blank line.
func (c *Console) Print(ev Event) {
	switch ev.Type {
	case EvTurnStart, EvBattleStart:
		c.Println()
	case EvSpawn:
		if ev.Payload["role"] == "player" {
			c.Println()
		}
	}
	c.Println(ev.Text)
}

func (c *Console) AskName() (string, error) {
	c.Println("Enter your character's name:")
	name, err := c.ReadLine()
	if err != nil {
		return "", errors.Wrap(err, "read character name")
	}
	return name, nil
}

// ChooseClass shows the class menu and asks again until a listed selector
// is entered.
func (c *Console) ChooseClass(book *ClassBook) (Class, error) {
	classes := []Class{Warrior, Mage, Rogue}
	selectors := make([]string, 0, len(classes))

	c.Println("Choose your class:")
	for _, cl := range classes {
		def := book.Def(cl)
		sel := def.Selector
		if sel == "" {
			continue
		}
		selectors = append(selectors, sel)
		if def.Hint != "" {
			c.Println(fmt.Sprintf("%s. %s (%s)", sel, def.Name, def.Hint))
		} else {
			c.Println(fmt.Sprintf("%s. %s", sel, def.Name))
		}
	}
	if len(selectors) == 0 {
		return 0, errors.New("no selectable classes")
	}

	for {
		line, err := c.ReadLine()
		if err != nil {
			return 0, errors.Wrap(err, "read class choice")
		}
		if cl, ok := book.BySelector(line); ok {
			return cl, nil
		}
		c.Println(fmt.Sprintf("Invalid choice. Enter %s.", listChoices(selectors)))
	}
}

// listChoices renders "1", "1 or 2", "1, 2, or 3".
func listChoices(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " or " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", or " + items[len(items)-1]
}
