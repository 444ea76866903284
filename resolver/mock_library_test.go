package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMockLibrary_Resolve(t *testing.T) {
	var useCases = []struct {
		description   string
		content       map[string]string
		reportMissing bool
		URL           string
		expect        string
		notFound      bool
	}{
		{
			description:   "library unit hit",
			content:       map[string]string{"lib:core": "unit A"},
			reportMissing: true,
			URL:           "lib:core",
			expect:        "unit A",
		},
		{
			description:   "missing unit reported",
			content:       map[string]string{"lib:core": "unit A"},
			reportMissing: true,
			URL:           "lib:missing",
			notFound:      true,
		},
		{
			description: "missing unit silent",
			content:     map[string]string{"lib:core": "unit A"},
			URL:         "lib:missing",
			expect:      "",
		},
	}

	ctx := context.Background()
	for _, useCase := range useCases {
		aResolver := NewMockLibrary(useCase.content, useCase.reportMissing)
		assert.True(t, aResolver.CanResolve(useCase.URL), useCase.description)
		data, err := aResolver.Resolve(ctx, useCase.URL)
		if useCase.notFound {
			assert.True(t, errors.Is(err, ErrNotFound), useCase.description)
			continue
		}
		if !assert.Nil(t, err, useCase.description) {
			continue
		}
		assert.EqualValues(t, useCase.expect, string(data), useCase.description)
	}
}

func TestMockLibrary_Immutable(t *testing.T) {
	content := map[string]string{"lib:core": "unit A"}
	aResolver := NewMockLibrary(content, true)
	content["lib:core"] = "mutated"
	delete(content, "lib:core")

	data, err := aResolver.Resolve(context.Background(), "lib:core")
	assert.Nil(t, err)
	assert.EqualValues(t, "unit A", string(data))
}

func TestMockLibrary_ClaimsLibrarySchemeOnly(t *testing.T) {
	aResolver := NewMockLibrary(map[string]string{}, true)
	assert.True(t, aResolver.CanResolve("lib:core"))
	assert.False(t, aResolver.CanResolve("pkg:collections/list.src"))
	assert.False(t, aResolver.CanResolve("file:///proj/main.src"))
}
