package layer

import (
	"iter"
	"slices"
)

// SetVisibility returns a copy of layers with the visible flag of the entry
// matching id set to visible. An unknown id leaves the copy unchanged.
// Applying it twice with the same arguments equals applying it once.
func SetVisibility(layers []Layer, id int, visible bool) []Layer {
	out := slices.Clone(layers)
	if i := indexOf(out, id); i >= 0 {
		out[i].Visible = visible
	}
	return out
}

// Add appends l on top of the stack under a freshly allocated id and
// returns the new stack together with the stored layer. Any id already set
// on l is ignored. An empty name becomes "Layer {id}"; nil content becomes
// an Unsupported layer with an empty kind.
func Add(layers []Layer, l Layer) ([]Layer, Layer) {
	l.ID = NextID(layers)
	if l.Name == "" {
		l.Name = DefaultName(l.ID)
	}
	if l.Content == nil {
		l.Content = Unsupported{}
	}
	out := make([]Layer, len(layers), len(layers)+1)
	copy(out, layers)
	return append(out, l), l
}

// Remove returns a copy of layers without the entry matching id.
// Removing Reserved fails with ErrReservedLayer and returns layers as
// given. Removing an unknown id is a no-op.
func Remove(layers []Layer, id int) ([]Layer, error) {
	if id == Reserved {
		return layers, ErrReservedLayer
	}
	out := slices.Clone(layers)
	if i := indexOf(out, id); i >= 0 {
		out = slices.Delete(out, i, i+1)
	}
	return out, nil
}

// Find returns the entry matching id.
func Find(layers []Layer, id int) (Layer, bool) {
	if i := indexOf(layers, id); i >= 0 {
		return layers[i], true
	}
	return Layer{}, false
}

// NextID returns the smallest id greater than every id in layers, never
// Reserved.
func NextID(layers []Layer) int {
	next := Reserved + 1
	for _, l := range layers {
		if l.ID >= next {
			next = l.ID + 1
		}
	}
	return next
}

// Listable yields the entries that are drawn and shown to users, in render
// order, skipping the reserved canvas entry.
func Listable(layers []Layer) iter.Seq[Layer] {
	return func(yield func(Layer) bool) {
		for _, l := range layers {
			if l.ID == Reserved {
				continue
			}
			if !yield(l) {
				return
			}
		}
	}
}

func indexOf(layers []Layer, id int) int {
	return slices.IndexFunc(layers, func(l Layer) bool { return l.ID == id })
}
