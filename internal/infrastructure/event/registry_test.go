package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	a := &recordingHandler{}
	b := &recordingHandler{}
	all := &recordingHandler{}

	r.Register(a, "asset.created", "asset.deleted")
	r.Register(b, "asset.created")
	r.Register(all)

	hs := r.HandlersFor("asset.created")
	assert.Len(t, hs, 3)
	assert.Same(t, all, hs[2])
	assert.Len(t, r.HandlersFor("asset.deleted"), 2)
	assert.Len(t, r.HandlersFor("unknown"), 1)
	assert.Equal(t, []string{"asset.created", "asset.deleted"}, r.Types())

	r.Unregister(a)
	assert.Len(t, r.HandlersFor("asset.created"), 2)
	assert.Equal(t, []string{"asset.created"}, r.Types())

	r.Unregister(all)
	assert.Empty(t, r.HandlersFor("unknown"))
}

func TestRegistry_HandlersForReturnsCopy(t *testing.T) {
	r := NewRegistry()
	r.Register(&recordingHandler{}, "x")

	hs := r.HandlersFor("x")
	hs[0] = nil

	assert.NotNil(t, r.HandlersFor("x")[0])
}
