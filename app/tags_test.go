package app

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/focusflow/internal/models"
)

func fixedID() string {
	return "new-id"
}

func TestFindTag(t *testing.T) {
	tags := models.DefaultTags()

	cases := []struct {
		ref    string
		wantID string
		found  bool
	}{
		{ref: "2", wantID: "2", found: true},
		{ref: "study", wantID: "2", found: true},
		{ref: "  Reading ", wantID: "3", found: true},
		{ref: "sleep", found: false},
	}

	for _, tc := range cases {
		got, ok := findTag(tags, tc.ref)

		assert.Equal(t, tc.found, ok, tc.ref)
		assert.Equal(t, tc.wantID, got.ID, tc.ref)
	}
}

func TestSortTagsNaturally(t *testing.T) {
	tags := []models.Tag{
		{ID: "a", Name: "Project 10"},
		{ID: "b", Name: "project 2"},
		{ID: "c", Name: "Admin"},
	}

	var names []string
	for _, tag := range sortTags(tags) {
		names = append(names, tag.Name)
	}

	assert.Equal(t, []string{"Admin", "project 2", "Project 10"}, names)
	assert.Equal(t, "Project 10", tags[0].Name, "input is not reordered")
}

func TestAddTag(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	tags := models.DefaultTags()

	got, tag, err := addTag(tags, " Exercise ", "", fixedID, rng)
	require.NoError(t, err)

	assert.Len(t, got, len(tags)+1)
	assert.Equal(t, "Exercise", tag.Name)
	assert.Equal(t, "new-id", tag.ID)
	assert.Contains(t, palette, tag.Color)

	// the default tags already use the first four palette colours
	assert.NotContains(t, palette[:4], tag.Color)

	_, tag, err = addTag(tags, "Music", "#ABCDEF", fixedID, rng)
	require.NoError(t, err)
	assert.Equal(t, "#abcdef", tag.Color)

	_, _, err = addTag(tags, "work", "", fixedID, rng)
	assert.ErrorContains(t, err, "already exists")

	_, _, err = addTag(tags, "  ", "", fixedID, rng)
	assert.True(t, errors.Is(err, errTagNameRequired))

	_, _, err = addTag(tags, "Music", "blue", fixedID, rng)
	assert.ErrorContains(t, err, "invalid colour")
}

func TestRemoveTag(t *testing.T) {
	tags := models.DefaultTags()

	got, removed, err := removeTag(tags, "work")
	require.NoError(t, err)

	assert.Equal(t, "1", removed.ID)
	assert.Len(t, got, len(tags)-1)
	assert.Equal(t, "2", fallbackTag(got).ID)
	assert.Len(t, tags, 4, "input is not modified")

	_, _, err = removeTag(tags, "nothing")
	assert.ErrorContains(t, err, `no tag named "nothing"`)

	assert.Equal(t, models.DefaultTags()[0], fallbackTag(nil))
}
