package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"blocks-generator/core/generator"
	"blocks-generator/core/world"
	"blocks-generator/feature/command"

	"go.uber.org/zap"
)

// ErrWorldNotLoaded is returned for events in worlds the host has not loaded.
var ErrWorldNotLoaded = errors.New("world not loaded")

// PlaceRequest is a block placement reported by a host.
type PlaceRequest struct {
	World string `json:"world"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Z     int    `json:"z"`
	Actor string `json:"actor,omitempty"`
	// Material defaults to the marker material.
	Material string `json:"material,omitempty"`
	// Type is the generator tag carried by the placed item, if any.
	Type string `json:"type,omitempty"`
}

// Coord returns the event coordinate.
func (r PlaceRequest) Coord() world.Coord {
	return world.Coord{World: r.World, X: r.X, Y: r.Y, Z: r.Z}
}

// BreakRequest is a block break reported by a host.
type BreakRequest struct {
	World  string `json:"world"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Z      int    `json:"z"`
	Actor  string `json:"actor,omitempty"`
	Intent bool   `json:"intent,omitempty"`
}

// Coord returns the event coordinate.
func (r BreakRequest) Coord() world.Coord {
	return world.Coord{World: r.World, X: r.X, Y: r.Y, Z: r.Z}
}

// TypeInfo describes one generator type.
type TypeInfo struct {
	Name   string           `json:"name"`
	Blocks []world.Material `json:"blocks"`
}

// Service is the standalone host: it owns the in-memory world and the online
// players, applies block changes, and forwards events to the engine.
type Service struct {
	engine   *generator.Engine
	world    *world.Memory
	players  *command.MemoryPlayers
	commands *command.Handler
	logger   *zap.Logger
}

// NewService creates the admin service.
func NewService(engine *generator.Engine, mem *world.Memory, players *command.MemoryPlayers, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		engine:   engine,
		world:    mem,
		players:  players,
		commands: command.NewHandler(engine, engine.Registry(), players, logger),
		logger:   logger,
	}
}

// Generators returns tracked generators, optionally limited to one world.
// limit <= 0 returns everything.
func (s *Service) Generators(worldName string, limit int) []generator.Entry {
	all := s.engine.Generators()
	out := make([]generator.Entry, 0, len(all))
	for _, e := range all {
		if worldName != "" && e.Coord.World != worldName {
			continue
		}
		out = append(out, e)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Types returns every registered generator type with its palette.
func (s *Service) Types() []TypeInfo {
	reg := s.engine.Registry()
	names := reg.Names()
	out := make([]TypeInfo, 0, len(names))
	for _, n := range names {
		palette, _ := reg.Resolve(n)
		out = append(out, TypeInfo{Name: n, Blocks: palette})
	}
	return out
}

// Lookup returns the generator at c.
func (s *Service) Lookup(c world.Coord) (generator.Entry, error) {
	return s.engine.Lookup(c)
}

// Block returns the material at c.
func (s *Service) Block(c world.Coord) world.Material {
	return s.world.Material(c)
}

// Place reports the placement to the engine, which puts the block down on the
// world context.
func (s *Service) Place(ctx context.Context, req PlaceRequest) (generator.Outcome, error) {
	c := req.Coord()
	if !s.world.WorldLoaded(c.World) {
		return generator.Outcome{}, fmt.Errorf("%w: %s", ErrWorldNotLoaded, c.World)
	}

	material := world.Material(strings.ToUpper(req.Material))
	if material == "" {
		material = world.Material(strings.ToUpper(s.engine.Config().Marker))
	}
	item := generator.Item{Material: material}
	if req.Type != "" {
		item = generator.NewItem(material, req.Type)
	}

	return s.engine.Place(ctx, generator.PlaceEvent{Coord: c, Actor: req.Actor, Item: &item, Block: material}), nil
}

// Break reports the break to the engine, which removes the block unless the
// break is cancelled. Reclaimed items go to the actor when they are online.
func (s *Service) Break(ctx context.Context, req BreakRequest) (generator.Outcome, error) {
	c := req.Coord()
	if !s.world.WorldLoaded(c.World) {
		return generator.Outcome{}, fmt.Errorf("%w: %s", ErrWorldNotLoaded, c.World)
	}

	out := s.engine.Break(ctx, generator.BreakEvent{Coord: c, Actor: req.Actor, Intent: req.Intent, Clear: true})
	if len(out.Drops) > 0 {
		if p, ok := s.players.Lookup(req.Actor); ok {
			for _, item := range out.Drops {
				p.Give(item)
			}
		}
	}
	return out, nil
}

// Reconcile runs one reconciliation pass now.
func (s *Service) Reconcile(ctx context.Context) generator.PassReport {
	return s.engine.Reconcile(ctx)
}

// LoadWorld loads a world and restores generators deferred for it.
func (s *Service) LoadWorld(name string) generator.RestoreReport {
	s.world.LoadWorld(name)
	return s.engine.WorldLoaded(name)
}

// Join marks a player online.
func (s *Service) Join(name string) {
	s.players.Join(name)
}

// Inventory returns the items a player holds.
func (s *Service) Inventory(name string) []generator.Item {
	return s.players.Inventory(name)
}

// Command runs the blocksgen command.
func (s *Service) Command(args []string) command.Result {
	return s.commands.Execute(args)
}

// Complete returns tab completions for a partial command.
func (s *Service) Complete(args []string) []string {
	return s.commands.Complete(args)
}
