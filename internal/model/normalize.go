package model

// Normalize repairs the active flags of every sibling collection so that a
// non-empty collection has exactly one active member: if none is marked the
// first member is promoted, and if several are marked the first marked one
// wins. It is invoked by the mutation engine as a shared post-condition
// after every operation, and by the format adapters after parsing, so the
// invariant holds however a document comes into being.
func (d *Document) Normalize() {
	switch {
	case d.Primary != nil:
		normalizeActive(len(d.Primary.Groups),
			func(i int) bool { return d.Primary.Groups[i].Active },
			func(i int, v bool) { d.Primary.Groups[i].Active = v })
		for _, g := range d.Primary.Groups {
			normalizeActive(len(g.Profiles),
				func(i int) bool { return g.Profiles[i].Active },
				func(i int, v bool) { g.Profiles[i].Active = v })
			normalizeActive(len(g.Identities),
				func(i int) bool { return g.Identities[i].Active },
				func(i int, v bool) { g.Identities[i].Active = v })
		}
	case d.Client != nil:
		normalizeActive(len(d.Client.Envs),
			func(i int) bool { return d.Client.Envs[i].Active },
			func(i int, v bool) { d.Client.Envs[i].Active = v })
		normalizeActive(len(d.Client.Keys),
			func(i int) bool { return d.Client.Keys[i].Active },
			func(i int, v bool) { d.Client.Keys[i].Active = v })
	}
}

func normalizeActive(n int, get func(int) bool, set func(int, bool)) {
	if n == 0 {
		return
	}
	first := -1
	for i := 0; i < n; i++ {
		if get(i) {
			if first == -1 {
				first = i
			} else {
				set(i, false)
			}
		}
	}
	if first == -1 {
		set(0, true)
	}
}
