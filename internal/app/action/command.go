package action

import (
	"errors"
	"fmt"
	"strings"

	"battlebridge/internal/domain/battle"
)

var ErrInvalidCommand = errors.New("invalid action command")

type Command string

const (
	CommandUp      Command = "up"
	CommandDown    Command = "down"
	CommandLeft    Command = "left"
	CommandRight   Command = "right"
	CommandConfirm Command = "confirm"
)

var keycodes = map[Command]battle.Keycode{
	CommandUp:      battle.KeyUp,
	CommandDown:    battle.KeyDown,
	CommandLeft:    battle.KeyLeft,
	CommandRight:   battle.KeyRight,
	CommandConfirm: battle.KeySpace,
}

// Commands lists the accepted tokens in a stable order.
func Commands() []Command {
	return []Command{CommandUp, CommandDown, CommandLeft, CommandRight, CommandConfirm}
}

func ParseCommand(raw string) (Command, error) {
	cmd := Command(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := keycodes[cmd]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidCommand, raw)
	}
	return cmd, nil
}

func (c Command) Keycode() (battle.Keycode, bool) {
	code, ok := keycodes[c]
	return code, ok
}
