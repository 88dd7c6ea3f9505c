package engine

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/nathoo/underworld/engine/actions"
	"github.com/nathoo/underworld/engine/events"
	"github.com/nathoo/underworld/engine/handlers"
	"github.com/nathoo/underworld/engine/parser"
	"github.com/nathoo/underworld/engine/resolve"
	"github.com/nathoo/underworld/engine/state"
	"github.com/nathoo/underworld/engine/tables"
	"github.com/nathoo/underworld/engine/view"
	"github.com/nathoo/underworld/types"
)

// Result is the outcome of one typed command: what to show the player and
// the events it committed.
type Result struct {
	Output []string
	Events []events.Event
}

type command func(e *Engine, intent parser.Intent, res *Result) error

var commands = map[string]command{
	"look":      (*Engine).cmdLook,
	"glance":    (*Engine).cmdGlance,
	"examine":   (*Engine).cmdExamine,
	"inspect":   (*Engine).cmdInspect,
	"attack":    (*Engine).cmdAttack,
	"cast":      (*Engine).cmdCast,
	"take":      (*Engine).cmdTake,
	"loot":      (*Engine).cmdLoot,
	"equip":     (*Engine).cmdEquip,
	"ready":     (*Engine).cmdEquip,
	"wear":      (*Engine).cmdEquip,
	"pack":      (*Engine).cmdPack,
	"hide":      (*Engine).cmdPack,
	"go":        (*Engine).cmdGo,
	"inventory": (*Engine).cmdInventory,
	"spells":    (*Engine).cmdSpells,
	"status":    (*Engine).cmdStatus,
	"help":      (*Engine).cmdHelp,
}

// Verbs the dead may still use.
var ghostVerbs = map[string]bool{
	"look": true, "glance": true, "examine": true,
	"inventory": true, "spells": true, "status": true, "help": true,
}

// Step processes one player command and returns the result.
func (e *Engine) Step(input string) Result {
	var res Result

	// 1. Parse input.
	intent := parser.Parse(input)

	// 2. Empty input.
	if intent.IsZero() {
		res.Output = append(res.Output, "What do you want to do?")
		return res
	}

	// 3. Game over: only looking around is left.
	if state.IsDead(&e.Player.Character) && !ghostVerbs[intent.Verb] {
		res.Output = append(res.Output, "You are dead. Use /load to restore a save or /quit to exit.")
		return res
	}

	// 4. Dispatch.
	cmd, ok := commands[intent.Verb]
	if !ok {
		res.Output = append(res.Output, fmt.Sprintf("I don't know how to %q. Type \"help\" for commands.", intent.Verb))
		return res
	}
	if err := cmd(e, intent, &res); err != nil {
		res.Output = append(res.Output, describeError(err))
	}
	return res
}

// act handles one action and narrates what happened.
func (e *Engine) act(a actions.Action, res *Result) error {
	before := e.Player
	handled, err := e.Handle(a)
	if err != nil {
		return err
	}
	res.Events = append(res.Events, handled.Events...)
	res.Output = append(res.Output, e.narrate(handled.Events, before)...)
	return nil
}

func (e *Engine) know() view.Knowledge {
	return view.KnowledgeOf(&e.State)
}

func (e *Engine) room() *types.Room {
	return state.CurrentRoom(&e.State)
}

func (e *Engine) cmdLook(intent parser.Intent, res *Result) error {
	if intent.Object != "" {
		return e.cmdExamine(intent, res)
	}
	if err := e.act(actions.LookAtCurrentRoom{}, res); err != nil {
		return err
	}
	v := view.LookAtRoom(*e.room(), e.know(), e.Player.KnowsAll)
	res.Output = append(res.Output, v.String())
	return nil
}

func (e *Engine) cmdGlance(intent parser.Intent, res *Result) error {
	if err := e.act(actions.QuickLookRoom{}, res); err != nil {
		return err
	}
	v := view.QuickLookRoom(*e.room(), e.know())
	res.Output = append(res.Output, v.String())
	return nil
}

type scope int

const (
	scopeNpc scope = iota
	scopeFixture
	scopeExit
	scopeItem
)

// pick resolves name among everything in reach of the given scopes.
func (e *Engine) pick(name string, scopes ...scope) (resolve.Candidate, scope, error) {
	if name == "" {
		return resolve.Candidate{}, 0, errors.New("what do you mean?")
	}
	room, know := e.room(), e.know()
	var cands []resolve.Candidate
	kinds := map[string]scope{}
	for _, sc := range scopes {
		var more []resolve.Candidate
		switch sc {
		case scopeNpc:
			more = resolve.Npcs(room, know, e.Player.KnowsAll)
		case scopeFixture:
			more = resolve.Fixtures(room, know, e.Player.KnowsAll)
		case scopeExit:
			more = resolve.Exits(room)
		case scopeItem:
			more = resolve.Items(e.Player.Character.Inventory.Equipment)
		}
		for _, c := range more {
			kinds[c.ID] = sc
		}
		cands = append(cands, more...)
	}
	c, err := resolve.Pick(name, cands)
	if err != nil {
		return c, 0, err
	}
	return c, kinds[c.ID], nil
}

func (e *Engine) cmdExamine(intent parser.Intent, res *Result) error {
	if intent.Object == "" {
		return e.cmdLook(intent, res)
	}
	c, sc, err := e.pick(intent.Object, scopeNpc, scopeFixture, scopeItem, scopeExit)
	if err != nil {
		return err
	}
	switch sc {
	case scopeNpc:
		if err := e.act(actions.LookAtNpc{TargetID: c.ID}, res); err != nil {
			return err
		}
		res.Output = append(res.Output, e.describeNpc(c.ID)...)
	case scopeFixture:
		if err := e.act(actions.LookAtFixture{TargetID: c.ID}, res); err != nil {
			return err
		}
		res.Output = append(res.Output, e.describeFixture(c.ID)...)
	case scopeItem:
		res.Output = append(res.Output, e.describeCarried(c.ID))
	case scopeExit:
		res.Output = append(res.Output, view.DisplayAsSentence("it is "+describeExit(e.room(), c.ID)))
	}
	return nil
}

func (e *Engine) cmdInspect(intent parser.Intent, res *Result) error {
	c, sc, err := e.pick(intent.Object, scopeNpc, scopeFixture)
	if err != nil {
		return err
	}
	var a actions.Action = actions.InspectFixture{TargetID: c.ID, DiscoverHiddenCompartment: true}
	if sc == scopeNpc {
		a = actions.InspectNpc{
			TargetID:            c.ID,
			DiscoverHealth:      true,
			DiscoverName:        true,
			DiscoverPackedItems: true,
			DiscoverHiddenItems: true,
		}
	}
	n := len(res.Output)
	if err := e.act(a, res); err != nil {
		return err
	}
	if len(res.Output) == n {
		res.Output = append(res.Output, "You find nothing new.")
	}
	return nil
}

func (e *Engine) cmdAttack(intent parser.Intent, res *Result) error {
	c, _, err := e.pick(intent.Object, scopeNpc)
	if err != nil {
		return err
	}
	return e.act(actions.AttackNpc{TargetID: c.ID}, res)
}

var selfNames = map[string]bool{"": true, "me": true, "self": true, "myself": true}

func (e *Engine) cmdCast(intent parser.Intent, res *Result) error {
	if intent.Object == "" {
		return errors.New("cast what?")
	}
	spell, err := resolve.Pick(intent.Object, resolve.Spells(e.Player.Character.SpellMemory))
	if err != nil {
		return err
	}
	if selfNames[intent.Target] {
		return e.act(actions.CastSpellOnPlayer{SpellID: spell.ID}, res)
	}
	target, _, err := e.pick(intent.Target, scopeNpc)
	if err != nil {
		return err
	}
	return e.act(actions.CastSpellOnNpc{SpellID: spell.ID, TargetID: target.ID}, res)
}

// lootable is an item lying in a fixture or on a corpse.
type lootable struct {
	item   resolve.Candidate
	source resolve.Candidate
	npc    bool
}

// lootables lists what can be taken in the current room, narrowed to one
// source when from is set.
func (e *Engine) lootables(from string) ([]lootable, error) {
	room, know := e.room(), e.know()
	only := ""
	if from != "" {
		c, _, err := e.pick(from, scopeFixture, scopeNpc)
		if err != nil {
			return nil, err
		}
		only = c.ID
	}

	var out []lootable
	fixtures := resolve.Fixtures(room, know, e.Player.KnowsAll)
	for _, fp := range room.FixturePositions {
		for i := range fp.Fixtures {
			f := &fp.Fixtures[i]
			src := findCandidate(fixtures, f.Identifier.ID.String())
			if only != "" && only != src.ID {
				continue
			}
			for _, it := range resolve.FixtureItems(f, know.Fixtures[f.Identifier.ID], e.Player.KnowsAll) {
				out = append(out, lootable{item: it, source: src})
			}
		}
	}
	npcs := resolve.Npcs(room, know, e.Player.KnowsAll)
	for _, np := range room.NpcPositions {
		for i := range np.NPCs {
			npc := &np.NPCs[i]
			src := findCandidate(npcs, npc.Identifier.ID.String())
			if only != "" && only != src.ID {
				continue
			}
			if !state.IsDead(&npc.Character) {
				if only != "" {
					return nil, &handlers.NpcStateError{NpcID: npc.Identifier.ID, Err: handlers.ErrNpcNotDead}
				}
				continue
			}
			for _, it := range resolve.Items(npc.Character.Inventory.Equipment) {
				out = append(out, lootable{item: it, source: src, npc: true})
			}
		}
	}
	return out, nil
}

func findCandidate(cands []resolve.Candidate, id string) resolve.Candidate {
	for _, c := range cands {
		if c.ID == id {
			return c
		}
	}
	return resolve.Candidate{ID: id}
}

func (e *Engine) cmdTake(intent parser.Intent, res *Result) error {
	if intent.Object == "" {
		return errors.New("take what?")
	}
	all, err := e.lootables(intent.Target)
	if err != nil {
		return err
	}

	var chosen []lootable
	if intent.Object == "all" || intent.Object == "everything" {
		chosen = all
	} else {
		items := make([]resolve.Candidate, len(all))
		for i, l := range all {
			items[i] = l.item
		}
		c, err := resolve.Pick(intent.Object, items)
		if err != nil {
			return err
		}
		for _, l := range all {
			if l.item.ID == c.ID {
				chosen = append(chosen, l)
			}
		}
	}
	if len(chosen) == 0 {
		res.Output = append(res.Output, "There is nothing to take.")
		return nil
	}
	return e.takeFrom(chosen, res)
}

func (e *Engine) cmdLoot(intent parser.Intent, res *Result) error {
	if intent.Object == "" {
		return errors.New("loot what?")
	}
	all, err := e.lootables(intent.Object)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		res.Output = append(res.Output, "There is nothing to take.")
		return nil
	}
	return e.takeFrom(all, res)
}

// takeFrom issues one loot action per source, in the order sources appear.
func (e *Engine) takeFrom(chosen []lootable, res *Result) error {
	var order []string
	bySource := map[string][]string{}
	npc := map[string]bool{}
	for _, l := range chosen {
		if _, ok := bySource[l.source.ID]; !ok {
			order = append(order, l.source.ID)
		}
		bySource[l.source.ID] = append(bySource[l.source.ID], l.item.ID)
		npc[l.source.ID] = l.npc
	}
	for _, src := range order {
		var a actions.Action = actions.LootFixture{FixtureID: src, ItemIDs: bySource[src]}
		if npc[src] {
			a = actions.LootNpc{NpcID: src, ItemIDs: bySource[src]}
		}
		if err := e.act(a, res); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) cmdEquip(intent parser.Intent, res *Result) error {
	c, _, err := e.pick(intent.Object, scopeItem)
	if err != nil {
		return err
	}
	ci, _ := findCarried(&e.Player, c.ID)
	kind := ci.Item.ItemType

	loc := tables.BodyLocations(kind)[0]
	if intent.Target != "" {
		var ok bool
		if loc, ok = parseLocation(intent.Target); !ok {
			return fmt.Errorf("you can't put anything on your %s", intent.Target)
		}
	}

	ready := intent.Verb == "ready" || (intent.Verb == "equip" && tables.IsWeapon(kind))
	return e.act(actions.MovePlayerItem{ItemID: c.ID, LocationTag: string(loc), PutAtTheReady: ready}, res)
}

func (e *Engine) cmdPack(intent parser.Intent, res *Result) error {
	c, _, err := e.pick(intent.Object, scopeItem)
	if err != nil {
		return err
	}
	loc := types.LocationPacked
	if intent.Verb == "hide" {
		loc = types.LocationHidden
	}
	return e.act(actions.MovePlayerItem{ItemID: c.ID, LocationTag: string(loc)}, res)
}

// parseLocation finds a body location named anywhere in text, so "right
// hand" is the hand.
func parseLocation(text string) (types.LocationTag, bool) {
	for _, w := range strings.Fields(text) {
		w = strings.TrimSuffix(w, "s")
		for _, loc := range bodyLocations {
			if string(loc) == w {
				return loc, true
			}
		}
	}
	return "", false
}

var bodyLocations = []types.LocationTag{
	types.LocationAnkle, types.LocationArm, types.LocationBack, types.LocationBody,
	types.LocationFeet, types.LocationHand, types.LocationHead, types.LocationHip,
	types.LocationLeg, types.LocationShoulder, types.LocationWaist, types.LocationWrist,
}

func (e *Engine) cmdGo(intent parser.Intent, res *Result) error {
	room := e.room()
	var exitID string
	switch {
	case intent.Object != "":
		c, _, err := e.pick(intent.Object, scopeExit)
		if err != nil {
			return err
		}
		exitID = c.ID
	case len(room.Exits) == 1:
		exitID = room.Exits[0].Identifier.ID.String()
	case len(room.Exits) == 0:
		return errors.New("there is no way out")
	default:
		var names []string
		for _, c := range resolve.Exits(room) {
			names = append(names, c.Label)
		}
		return fmt.Errorf("go where? (%s)", strings.Join(names, ", "))
	}

	if err := e.act(actions.ExitRoom{ExitID: exitID}, res); err != nil {
		return err
	}
	return e.cmdGlance(intent, res)
}

func (e *Engine) cmdInventory(intent parser.Intent, res *Result) error {
	items := view.LookAtPlayer(e.Player).Character.Inventory.Equipment
	if len(items) == 0 {
		res.Output = append(res.Output, "You are carrying nothing.")
		return nil
	}
	var worn, packed, hidden []string
	for _, ci := range items {
		desc := view.DescribeItem(ci.Item)
		switch {
		case slices.Contains(ci.LocationTags, types.LocationHidden):
			hidden = append(hidden, desc)
		case slices.Contains(ci.LocationTags, types.LocationPacked):
			packed = append(packed, desc)
		default:
			worn = append(worn, desc+" ("+placement(ci)+")")
		}
	}
	if len(worn) > 0 {
		res.Output = append(res.Output, "Equipped: "+strings.Join(worn, ", ")+".")
	}
	if len(packed) > 0 {
		res.Output = append(res.Output, "Packed: "+strings.Join(packed, ", ")+".")
	}
	if len(hidden) > 0 {
		res.Output = append(res.Output, "Hidden: "+strings.Join(hidden, ", ")+".")
	}
	return nil
}

func placement(ci types.CharacterItem) string {
	var where []string
	for _, t := range ci.LocationTags {
		if t != types.LocationEquipped {
			where = append(where, string(t))
		}
	}
	s := strings.Join(where, ", ")
	if ci.AtTheReady {
		s += ", at the ready"
	}
	return s
}

func (e *Engine) cmdSpells(intent parser.Intent, res *Result) error {
	spells := e.Player.Character.SpellMemory.Spells
	if len(spells) == 0 {
		res.Output = append(res.Output, "You remember no spells.")
		return nil
	}
	for _, ls := range spells {
		uses := "uses"
		if ls.Spell.Uses == 1 {
			uses = "use"
		}
		res.Output = append(res.Output, fmt.Sprintf("%s (%d %s left)", tables.SpellDisplayName(ls.Spell.Name), ls.Spell.Uses, uses))
	}
	return nil
}

func (e *Engine) cmdStatus(intent parser.Intent, res *Result) error {
	c := e.Player.Character
	h := c.Stats.Health
	res.Output = append(res.Output, fmt.Sprintf("%s, %s. Health %d/%d, defense %d.",
		e.Player.Identifier.Name, tables.SpeciesName(c.Species), h.Current, h.Max, state.PlayerDefense(&e.Player)))
	res.Output = append(res.Output, auraLines(c.CurrentEffects)...)
	return nil
}

func auraLines(fx types.Effects) []string {
	var out []string
	if fx.ShieldAura != nil {
		out = append(out, fmt.Sprintf("A shield aura turns %d damage.", fx.ShieldAura.DamageResistance))
	}
	if fx.RetributionAura != nil {
		out = append(out, fmt.Sprintf("An aura of retribution waits to strike back (%dd6%+d).", fx.RetributionAura.NumRolls, fx.RetributionAura.Modifier))
	}
	if fx.ResurrectionAura {
		out = append(out, "The phoenix flame will raise you once.")
	}
	return out
}

var helpLines = []string{
	"look (l)                  Look around the room",
	"glance                    A quick look around",
	"examine <thing> (x)       Look closely at someone or something",
	"inspect <thing>           Search someone or something for secrets",
	"attack <npc>              Attack someone",
	"cast <spell> [on <npc>]   Cast a spell on yourself or someone",
	"take <item> [from <src>]  Take an item from a fixture or a corpse",
	"loot <src>                Take everything from a fixture or a corpse",
	"equip/wear/ready <item>   Equip an item (add \"to <slot>\" to choose)",
	"pack/hide <item>          Put an item away",
	"go <exit>                 Leave through an exit",
	"inventory (i)             What you are carrying",
	"spells                    The spells you remember",
	"status                    Your health and auras",
}

func (e *Engine) cmdHelp(intent parser.Intent, res *Result) error {
	res.Output = append(res.Output, helpLines...)
	return nil
}

func findCarried(p *types.PlayerCharacter, raw string) (*types.CharacterItem, bool) {
	for i := range p.Character.Inventory.Equipment {
		ci := &p.Character.Inventory.Equipment[i]
		if ci.Item.Identifier.ID.String() == raw {
			return ci, true
		}
	}
	return nil, false
}

// describeError turns a rejected command into something to tell the
// player.
func describeError(err error) string {
	var loc *handlers.LocationError
	switch {
	case errors.As(err, &loc):
		item := tables.ItemName(loc.ItemType)
		if loc.ConflictsWith != "" {
			return fmt.Sprintf("You can't wear the %s with the %s.", item, tables.ItemName(loc.ConflictsWith))
		}
		return fmt.Sprintf("The %s doesn't go there.", item)
	case errors.Is(err, handlers.ErrNpcAlreadyDead):
		return "It is already dead."
	case errors.Is(err, handlers.ErrNpcNotDead):
		return "You can't loot the living."
	case errors.Is(err, ErrPlayerDead):
		return "You are dead."
	}
	return view.DisplayAsSentence(strings.TrimSuffix(err.Error(), "."))
}
