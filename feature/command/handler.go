package command

import (
	"strings"

	"blocks-generator/core/generator"

	"go.uber.org/zap"
)

// Name is the administrative command label.
const Name = "blocksgen"

// Replies sent back to the command sender.
const (
	MsgUsage          = "Usage: /blocksgen give <player> <generator>"
	MsgPlayerNotFound = "Player not found!"
	MsgTypeNotFound   = "Generator not found!"
	MsgGiven          = "Generator given successfully!"
)

// Reply levels.
const (
	LevelError   = "error"
	LevelSuccess = "success"
)

// Reply is one line shown to the command sender.
type Reply struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

// Result is the outcome of a command invocation. Handled is always true so the
// host never falls back to its own help text.
type Result struct {
	Handled bool    `json:"handled"`
	Replies []Reply `json:"replies"`
}

// Items builds generator items. *generator.Engine satisfies it.
type Items interface {
	Item(typ string) (generator.Item, error)
}

// Types lists the known generator types. *generator.Registry satisfies it.
type Types interface {
	Names() []string
}

// Handler implements the give command and its tab completion.
type Handler struct {
	items   Items
	types   Types
	players Players
	logger  *zap.Logger
}

// NewHandler creates a command handler.
func NewHandler(items Items, types Types, players Players, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{items: items, types: types, players: players, logger: logger}
}

// Execute runs `give <player> <generator>`. Invalid arguments produce an
// error reply and change nothing.
func (h *Handler) Execute(args []string) Result {
	if len(args) < 3 || !strings.EqualFold(args[0], "give") {
		return reply(LevelError, MsgUsage)
	}

	target, ok := h.players.Lookup(args[1])
	if !ok {
		return reply(LevelError, MsgPlayerNotFound)
	}

	typ := strings.ToLower(args[2])
	item, err := h.items.Item(typ)
	if err != nil {
		return reply(LevelError, MsgTypeNotFound)
	}

	target.Give(item)
	h.logger.Info("Generator given", zap.String("player", target.Name()), zap.String("type", typ))
	return reply(LevelSuccess, MsgGiven)
}

// Complete returns tab-completion candidates for the argument being typed.
func (h *Handler) Complete(args []string) []string {
	switch {
	case len(args) == 1:
		return filterPrefix([]string{"give"}, strings.ToLower(args[0]), false)
	case len(args) == 2 && strings.EqualFold(args[0], "give"):
		return filterPrefix(h.players.Online(), strings.ToLower(args[1]), true)
	case len(args) == 3 && strings.EqualFold(args[0], "give"):
		return filterPrefix(h.types.Names(), strings.ToLower(args[2]), false)
	}
	return []string{}
}

func reply(level, text string) Result {
	return Result{Handled: true, Replies: []Reply{{Level: level, Text: text}}}
}

func filterPrefix(candidates []string, prefix string, fold bool) []string {
	out := []string{}
	for _, c := range candidates {
		cmp := c
		if fold {
			cmp = strings.ToLower(c)
		}
		if strings.HasPrefix(cmp, prefix) {
			out = append(out, c)
		}
	}
	return out
}
