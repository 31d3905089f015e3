package domain

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStage(t *testing.T) {
	assert.Equal(t, StageBaby, NextStage(StageEgg))
	assert.Equal(t, StageAdolescent, NextStage(StageBaby))
	assert.Equal(t, StageFinal, NextStage(StageAdolescent))

	// Terminal and unknown stages have no successor
	assert.Equal(t, Stage(""), NextStage(StageFinal))
	assert.Equal(t, Stage(""), NextStage(Stage("Mythic")))
}

func TestEvolutionThreshold(t *testing.T) {
	tests := []struct {
		stage Stage
		xp    int
		ok    bool
	}{
		{StageEgg, XPToHatch, true},
		{StageBaby, XPToAdolescent, true},
		{StageAdolescent, XPToFinal, true},
		{StageFinal, 0, false},
		{Stage("unknown"), 0, false},
	}

	for _, tt := range tests {
		xp, ok := EvolutionThreshold(tt.stage)
		assert.Equal(t, tt.ok, ok, "stage %s", tt.stage)
		assert.Equal(t, tt.xp, xp, "stage %s", tt.stage)
	}
}

func TestEvolutionSuccessKey(t *testing.T) {
	key, ok := EvolutionSuccessKey(StageEgg)
	assert.True(t, ok)
	assert.Equal(t, SuccessKeyHatched, key)

	key, ok = EvolutionSuccessKey(StageBaby)
	assert.True(t, ok)
	assert.Equal(t, SuccessKeyFirstEvolution, key)

	key, ok = EvolutionSuccessKey(StageAdolescent)
	assert.True(t, ok)
	assert.Equal(t, SuccessKeySecondEvolution, key)

	_, ok = EvolutionSuccessKey(StageFinal)
	assert.False(t, ok)
}

func TestBondLevels_Ascending(t *testing.T) {
	// The auto-complete sweep relies on ascending order
	assert.True(t, sort.SliceIsSorted(BondLevels, func(i, j int) bool {
		return BondLevels[i].XP < BondLevels[j].XP
	}))
	assert.Len(t, BondLevels, 3)
}
