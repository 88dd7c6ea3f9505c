package loader

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/nathoo/underworld/engine/generate"
	"github.com/nathoo/underworld/engine/tables"
	"github.com/nathoo/underworld/types"
)

// ValidationError collects all content problems found during loading.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

func (e *ValidationError) errorf(format string, args ...any) {
	e.Errors = append(e.Errors, fmt.Sprintf(format, args...))
}

func (e *ValidationError) warnf(format string, args ...any) {
	e.Warnings = append(e.Warnings, fmt.Sprintf(format, args...))
}

var allAttackEffects = []types.AttackEffect{
	types.AttackEffectAcidic, types.AttackEffectCrushing,
	types.AttackEffectSharp, types.AttackEffectToxic,
}

// checkEnum records an error unless v is one of all.
func checkEnum[T ~string](ve *ValidationError, where, what string, v T, all []T) bool {
	if contains(all, v) {
		return true
	}
	if v == "" {
		ve.errorf("%s: missing %s", where, what)
	} else {
		ve.errorf("%s: unknown %s %q", where, what, string(v))
	}
	return false
}

func contains[T comparable](all []T, v T) bool {
	return slices.Contains(all, v)
}

func legalMaterial(kind types.ItemType, m types.Material) bool {
	return slices.Contains(tables.Materials(kind), m)
}

// validate checks references that span definitions once everything has been
// compiled.
func validate(cat *generate.Catalog, coll *collector, ve *ValidationError) {
	spawned := map[string]bool{}
	for _, rt := range slices.Sorted(maps.Keys(cat.Spawns)) {
		for _, name := range cat.Spawns[rt] {
			if _, ok := cat.Npcs[name]; !ok {
				ve.errorf("spawn %q references undefined npc %q", rt, name)
			}
			spawned[name] = true
		}
		if len(cat.Room.RoomTypes) > 0 && !slices.Contains(cat.Room.RoomTypes, rt) {
			ve.warnf("spawn %q names a room type that is never generated", rt)
		}
	}

	for _, raw := range coll.npcs {
		if !spawned[raw.name] {
			ve.warnf("npc %q is never spawned", raw.name)
		}
	}

	for _, rt := range slices.Sorted(maps.Keys(cat.Flavours)) {
		for _, text := range cat.Flavours[rt] {
			if strings.TrimSpace(text) == "" {
				ve.errorf("flavour %q has an empty line", rt)
			}
		}
	}

	if p, ok := cat.Player.Character.(generate.CharacterPrototype); ok {
		if p.Species == "" && len(p.SpeciesPool) == 0 && coll.player != nil {
			ve.warnf("player has no species; one will be drawn at random")
		}
	}
}
