package resolver

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"
)

func TestEntry_Resolve(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()

	aResolver, err := NewEntry(ctx, fs, "/proj/main.src")
	if !assert.Nil(t, err) {
		return
	}
	assert.True(t, aResolver.CanResolve(EntryURL))
	assert.False(t, aResolver.CanResolve("file:///proj/main.src"))
	assert.False(t, aResolver.CanResolve("lib:core"))

	data, err := aResolver.Resolve(ctx, EntryURL)
	assert.Nil(t, err)
	assert.EqualValues(t, 1, strings.Count(string(data), "/proj/main.src"))
}

func TestEntry_ReachableThroughFileResolver(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()

	_, err := NewEntry(ctx, fs, "/proj/main.src")
	if !assert.Nil(t, err) {
		return
	}
	//the synthetic document lives in the in memory scheme, the file resolver
	//can serve it too; the entry resolver is an addition, not a replacement
	data, err := NewFile(fs).Resolve(ctx, EntryURL)
	assert.Nil(t, err)
	assert.Contains(t, string(data), "/proj/main.src")
}
