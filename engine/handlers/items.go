package handlers

import (
	"slices"

	"github.com/nathoo/underworld/engine/actions"
	"github.com/nathoo/underworld/engine/events"
	"github.com/nathoo/underworld/engine/ids"
	"github.com/nathoo/underworld/engine/state"
	"github.com/nathoo/underworld/engine/tables"
	"github.com/nathoo/underworld/types"
)

// MovePlayerItem packs, hides or equips a carried item. The target must be
// one of the item kind's possible locations, and an item equipped to a
// body slot may not be worn alongside an item it conflicts with.
func MovePlayerItem(a actions.MovePlayerItem, s *types.GameState, p *types.PlayerCharacter, ctx Context) ([]events.Event, error) {
	itemID, err := ids.Parse(a.ItemID)
	if err != nil {
		return nil, err
	}
	ci, ok := state.FindItem(&p.Character, itemID)
	if !ok {
		return nil, &NotFoundError{Entity: EntityItem, ID: itemID}
	}

	kind := ci.Item.ItemType
	loc := types.LocationTag(a.LocationTag)
	if loc == types.LocationEquipped || !slices.Contains(tables.PossibleLocations(kind), loc) {
		return nil, &LocationError{ItemType: kind, Location: loc}
	}

	if loc != types.LocationPacked && loc != types.LocationHidden {
		for _, other := range p.Character.Inventory.Equipment {
			if other.Item.Identifier.ID == itemID || !slices.Contains(other.LocationTags, types.LocationEquipped) {
				continue
			}
			if tables.IsWearable(kind) && tables.IsWearable(other.Item.ItemType) && tables.Conflicts(kind, other.Item.ItemType) {
				return nil, &LocationError{ItemType: kind, Location: loc, ConflictsWith: other.Item.ItemType}
			}
		}
	}

	return []events.Event{events.PlayerItemMoved{
		ItemID:        itemID,
		Location:      loc,
		PutAtTheReady: a.PutAtTheReady && loc != types.LocationPacked && loc != types.LocationHidden,
	}}, nil
}
