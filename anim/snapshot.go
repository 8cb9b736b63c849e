package anim

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ErrBadSnapshot is returned by Restore for data that is not a snapshot.
var ErrBadSnapshot = errors.New("anim: malformed snapshot")

// Snapshot encodes the animation state of every sprite slot and the click
// state as JSON. Images are not included; Restore expects the same sprites
// to have been assigned again.
func (s *Scheduler) Snapshot() ([]byte, error) {
	data := []byte(`{"sprites":[]}`)
	var err error
	set := func(path string, v any) {
		if err == nil {
			data, err = sjson.SetBytes(data, path, v)
		}
	}
	set("click", int(s.click))
	set("textGosub", s.textGosub)
	set("origin.x", s.originX)
	set("origin.y", s.originY)

	s.reorder()
	for l := range s.layers {
		for _, i := range s.order[l] {
			sp := s.layers[l][i]
			set("sprites.-1", map[string]any{
				"layer":     l,
				"index":     i,
				"cel":       sp.cel,
				"remaining": sp.remaining,
				"done":      sp.done,
				"visible":   sp.Visible,
			})
		}
	}
	if err != nil {
		return nil, fmt.Errorf("anim: snapshot: %w", err)
	}
	return data, nil
}

// Restore applies a snapshot produced by Snapshot. Entries for empty slots
// or out-of-range cels are skipped.
func (s *Scheduler) Restore(data []byte) error {
	if !gjson.ValidBytes(data) {
		return ErrBadSnapshot
	}
	root := gjson.ParseBytes(data)
	sprites := root.Get("sprites")
	if !sprites.IsArray() {
		return ErrBadSnapshot
	}

	s.click = ClickState(root.Get("click").Int())
	s.textGosub = root.Get("textGosub").Bool()
	s.originX = int(root.Get("origin.x").Int())
	s.originY = int(root.Get("origin.y").Int())

	sprites.ForEach(func(_, v gjson.Result) bool {
		layer := Layer(v.Get("layer").Int())
		index := int(v.Get("index").Int())
		sp := s.Sprite(layer, index)
		if sp == nil {
			logger().Debug("anim: snapshot entry without sprite", "layer", layer, "index", index)
			return true
		}
		cel := int(v.Get("cel").Int())
		if cel < 0 || cel >= sp.cels {
			logger().Warn("anim: snapshot cel out of range", "layer", layer, "index", index, "cel", cel)
			return true
		}
		sp.cel = cel
		sp.remaining = int(v.Get("remaining").Int())
		sp.done = v.Get("done").Bool()
		sp.Visible = v.Get("visible").Bool()
		return true
	})
	return nil
}
