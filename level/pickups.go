package level

import (
	"github.com/Danjb1/hovership/parameter"
	"github.com/Danjb1/hovership/vmath"
)

type PickupKind uint8

const (
	PickupShard PickupKind = iota
	PickupKey
)

// Pickup is one collected item
type Pickup struct {
	Kind     PickupKind
	Index    int
	Value    int
	Position vmath.Vec3
}

// Pickups tracks which of a level's items are still in play
type Pickups struct {
	shards   []Shard
	taken    []bool
	key      *vmath.Vec3
	keyTaken bool
}

func NewPickups(l *Level) *Pickups {
	p := &Pickups{
		shards: append([]Shard(nil), l.Shards...),
		taken:  make([]bool, len(l.Shards)),
	}
	if l.Key != nil {
		k := *l.Key
		p.key = &k
	}
	return p
}

// Collect takes every item within pickup radius of position
func (p *Pickups) Collect(position vmath.Vec3) []Pickup {
	var got []Pickup
	for i, s := range p.shards {
		if p.taken[i] || vmath.V3Distance(position, s.Position) > parameter.ShardPickupRadius {
			continue
		}
		p.taken[i] = true
		got = append(got, Pickup{Kind: PickupShard, Index: i, Value: s.Value, Position: s.Position})
	}
	if p.key != nil && !p.keyTaken && vmath.V3Distance(position, *p.key) <= parameter.KeyPickupRadius {
		p.keyTaken = true
		got = append(got, Pickup{Kind: PickupKey, Index: -1, Position: *p.key})
	}
	return got
}

// Remaining returns the shards not yet collected
func (p *Pickups) Remaining() []Shard {
	var out []Shard
	for i, s := range p.shards {
		if !p.taken[i] {
			out = append(out, s)
		}
	}
	return out
}

// Key returns the key position while it is still in play
func (p *Pickups) Key() (vmath.Vec3, bool) {
	if p.key == nil || p.keyTaken {
		return vmath.Vec3{}, false
	}
	return *p.key, true
}

// Reset puts every item back
func (p *Pickups) Reset() {
	clear(p.taken)
	p.keyTaken = false
}
