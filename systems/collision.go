package systems

import (
	"sort"

	"github.com/automoto/runnin-gunner/components"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/automoto/runnin-gunner/shared/gamemath"
	"github.com/automoto/runnin-gunner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

const (
	// contactSkin widens tile tests so an entity resting on a floor keeps
	// touching it between frames.
	contactSkin = 0.5

	// maxTileIterations bounds how many tile overlaps one entity resolves per frame.
	maxTileIterations = 4
)

// ResolveCollisions runs the narrowphase for the frame. Tiles are resolved
// first for every moving entity, then entity pairs.
func ResolveCollisions(w donburi.World) {
	entries := collidables(w)
	for _, e := range entries {
		syncObject(e)
	}

	for _, e := range entries {
		entity := components.Entity.Get(e)
		if !entity.Alive || entity.Static {
			continue
		}
		resolveTiles(w, e)
		syncObject(e)
	}

	resolvePairs(w, entries)
}

func collidables(w donburi.World) []*donburi.Entry {
	var entries []*donburi.Entry
	components.Object.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(components.Entity) && components.Object.Get(e).Object != nil {
			entries = append(entries, e)
		}
	})
	return entries
}

// nearby returns the objects tagged tag whose cells overlap obj grown by
// contactSkin on every side.
func nearby(obj *resolv.Object, tag string) []*resolv.Object {
	var found []*resolv.Object
	seen := make(map[*resolv.Object]bool)
	for _, d := range [...]float64{0, contactSkin, -contactSkin} {
		check := obj.Check(d, d, tag)
		if check == nil {
			continue
		}
		for _, o := range check.ObjectsByTags(tag) {
			if !seen[o] {
				seen[o] = true
				found = append(found, o)
			}
		}
	}
	return found
}

// tileContacts lists e's contacts with solid tiles, deepest first. Depths
// include contactSkin.
func tileContacts(e *donburi.Entry) []gamemath.Contact {
	skinned := resolv.NewCircle(0, 0, components.Entity.Get(e).Radius+contactSkin)
	skinned.SetPosition(entityCircle(e).Position())

	var contacts []gamemath.Contact
	for _, o := range nearby(components.Object.Get(e).Object, tags.ResolvSolid) {
		if c, ok := tileContact(skinned, o); ok {
			contacts = append(contacts, c)
		}
	}
	sort.SliceStable(contacts, func(i, j int) bool {
		return contacts[i].Depth > contacts[j].Depth
	})
	return contacts
}

// resolveTiles pushes e out of the nearest overlapping tile until nothing
// overlaps, then reports the remaining touching contacts.
func resolveTiles(w donburi.World, e *donburi.Entry) {
	for range maxTileIterations {
		contacts := tileContacts(e)
		if len(contacts) == 0 || contacts[0].Depth <= contactSkin {
			break
		}
		c := contacts[0]
		ResolvePenetration(e, c.Normal, c.Depth-contactSkin, nil)
		syncObject(e)
		tileResponse(w, e, c, true)
		if !alive(e) {
			return
		}
	}
	for _, c := range tileContacts(e) {
		tileResponse(w, e, c, false)
	}
}

// tileResponse is e's reaction to a tile. penetrating is false when e only
// rests against it.
func tileResponse(w donburi.World, e *donburi.Entry, c gamemath.Contact, penetrating bool) {
	kind := components.Entity.Get(e).Kind
	switch {
	case kind.IsPlayer():
		playerTileContact(e, c.Normal, penetrating)
	case kind.IsSwooper():
		swooperTileContact(w, e, c.Normal)
	case kind.IsBullet():
		PlaySound(w, cfg.SoundRicochet)
		Kill(w, e)
	}
}

type entityPair struct {
	a, b donburi.Entity
}

// resolvePairs handles every overlapping pair of entities once.
func resolvePairs(w donburi.World, entries []*donburi.Entry) {
	seen := make(map[entityPair]bool)
	for _, e := range entries {
		if !alive(e) {
			continue
		}
		check := components.Object.Get(e).Check(0, 0, tags.ResolvEntity)
		if check == nil {
			continue
		}
		for _, o := range check.ObjectsByTags(tags.ResolvEntity) {
			other, ok := o.Data.(*donburi.Entry)
			if !ok || other.Entity() == e.Entity() {
				continue
			}
			pair := entityPair{e.Entity(), other.Entity()}
			if seen[pair] || seen[entityPair{pair.b, pair.a}] {
				continue
			}
			seen[pair] = true

			if !alive(e) || !alive(other) || passThrough(w, e, other) {
				continue
			}
			collidePair(w, e, other)
		}
	}
}

// collidePair separates two overlapping entities and lets each respond.
func collidePair(w donburi.World, a, b *donburi.Entry) {
	c, ok := circleContact(entityCircle(a), entityCircle(b))
	if !ok {
		return
	}
	ResolvePenetration(a, c.Normal, c.Depth, b)
	ResolvePenetration(b, gamemath.Scale(c.Normal, -1), c.Depth, a)
	syncObject(a)
	syncObject(b)

	respond(w, a, b)
	respond(w, b, a)
}
