package generator

import (
	"strings"
	"time"

	"blocks-generator/core/world"
)

// MsgSneakToBreak is sent to an actor who breaks a generator without intent.
const MsgSneakToBreak = "Sneak to break the generator!"

// PlaceEvent is a block placement reported by the host.
type PlaceEvent struct {
	Coord world.Coord
	Actor string
	// Item is the item that was placed, nil when the host has none.
	Item *Item
	// Block, when set, is written at Coord on the world context before the
	// placement is handled.
	Block world.Material
}

// BreakEvent is a block break reported by the host.
type BreakEvent struct {
	Coord world.Coord
	Actor string
	// Intent is the explicit removal signal, e.g. sneaking while breaking.
	Intent bool
	// Clear sets Coord to air on the world context, before any regeneration
	// is scheduled, unless the break is cancelled.
	Clear bool
	// Boosted is set by the engine when a booster is active near Coord.
	Boosted bool
}

// EffectKind identifies a side effect of a transition.
type EffectKind string

const (
	EffectIndexPut     EffectKind = "index_put"
	EffectIndexRemove  EffectKind = "index_remove"
	EffectStoreUpsert  EffectKind = "store_upsert"
	EffectStoreDelete  EffectKind = "store_delete"
	EffectRegenerate   EffectKind = "regenerate"
	EffectSchedule     EffectKind = "schedule_regen"
	EffectCancel       EffectKind = "cancel"
	EffectSuppressDrop EffectKind = "suppress_drops"
	EffectDropItem     EffectKind = "drop_item"
	EffectMessage      EffectKind = "message"
)

// Effect is one side effect to apply, in order.
type Effect struct {
	Kind  EffectKind
	Coord world.Coord
	Type  string
	// OnlyIfEmpty restricts EffectRegenerate to air positions.
	OnlyIfEmpty bool
	Delay       time.Duration
	Item        *Item
	Actor       string
	Text        string
}

// Transition is the planned outcome of one host event.
type Transition struct {
	Effects []Effect
}

// Has reports whether the transition contains an effect of kind k.
func (t Transition) Has(k EffectKind) bool {
	for _, e := range t.Effects {
		if e.Kind == k {
			return true
		}
	}
	return false
}

func (t *Transition) add(e Effect) {
	t.Effects = append(t.Effects, e)
}

// Planner turns host events into transitions. It only reads its inputs.
type Planner struct {
	cfg      Config
	registry *Registry
	marker   world.Material
}

// NewPlanner creates a planner for the given settings and palettes.
func NewPlanner(cfg Config, registry *Registry) *Planner {
	return &Planner{
		cfg:      cfg,
		registry: registry,
		marker:   world.Material(strings.ToUpper(cfg.Marker)),
	}
}

// PlanPlace handles untracked -> active. Placements of anything other than a
// marker item tagged with a known type produce no effects.
func (p *Planner) PlanPlace(_ View, ev PlaceEvent) Transition {
	var t Transition
	if ev.Item == nil || ev.Item.Material != p.marker || ev.Item.Type == "" {
		return t
	}
	typ := strings.ToLower(ev.Item.Type)
	if !p.registry.Has(typ) {
		return t
	}

	t.add(Effect{Kind: EffectIndexPut, Coord: ev.Coord, Type: typ})
	if p.cfg.Durable() {
		t.add(Effect{Kind: EffectStoreUpsert, Coord: ev.Coord, Type: typ})
		t.add(Effect{Kind: EffectRegenerate, Coord: ev.Coord.Above(), Type: typ, OnlyIfEmpty: true})
		return t
	}
	// Lightweight generators regenerate in place: the marker becomes the first block.
	t.add(Effect{Kind: EffectRegenerate, Coord: ev.Coord, Type: typ})
	return t
}

// PlanBreak handles breaks of tracked coordinates.
//
// With intent the generator is removed and a reclaimable item is dropped
// instead of the normal drops. Without intent the durable mode cancels the
// break and tells the actor; the lightweight mode lets the break happen and
// schedules regeneration of the coordinate.
func (p *Planner) PlanBreak(view View, ev BreakEvent) Transition {
	var t Transition
	typ, ok := view.Get(ev.Coord)
	if !ok {
		return t
	}

	if ev.Intent {
		item := NewItem(p.marker, typ)
		t.add(Effect{Kind: EffectIndexRemove, Coord: ev.Coord, Type: typ})
		if p.cfg.Durable() {
			t.add(Effect{Kind: EffectStoreDelete, Coord: ev.Coord, Type: typ})
		}
		t.add(Effect{Kind: EffectSuppressDrop, Coord: ev.Coord})
		t.add(Effect{Kind: EffectDropItem, Coord: ev.Coord, Type: typ, Item: &item})
		return t
	}

	if p.cfg.Durable() {
		t.add(Effect{Kind: EffectCancel, Coord: ev.Coord})
		t.add(Effect{Kind: EffectMessage, Actor: ev.Actor, Text: MsgSneakToBreak})
		return t
	}

	delay := p.cfg.BaseDelay()
	if ev.Boosted {
		delay = p.cfg.BoostedDelay()
	}
	t.add(Effect{Kind: EffectSchedule, Coord: ev.Coord, Type: typ, Delay: delay})
	return t
}
