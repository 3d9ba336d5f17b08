package handlers

import (
	"errors"
	"strings"

	"github.com/KirkDiggler/bedrock-effects/internal/effects/custom"
	"github.com/KirkDiggler/bedrock-effects/internal/host"
)

const (
	growthRangePerLevel = 3
	defaultMaxGrowth    = 7
	customCropMaxGrowth = 4
	customCropNamespace = "sb_ob:"

	cropGrowthParticle = "minecraft:crop_growth_emitter"
	cropGrowthSound    = "item.bone_meal.use"
)

var maxGrowthStages = map[string]int{
	"minecraft:pumpkin_stem":     7,
	"minecraft:melon_stem":       7,
	"minecraft:beetroot":         7,
	"minecraft:wheat":            7,
	"minecraft:torchflower_crop": 1,
	"minecraft:carrots":          7,
	"minecraft:potatoes":         7,
	"minecraft:sweet_berry_bush": 3,
}

func maxGrowth(typeID string) int {
	if stage, ok := maxGrowthStages[typeID]; ok {
		return stage
	}
	if strings.HasPrefix(typeID, customCropNamespace) {
		return customCropMaxGrowth
	}
	return defaultMaxGrowth
}

// PlantGrowth advances every crop within amplifier*3 blocks of a player by
// one growth stage per run.
type PlantGrowth struct {
	engine host.Engine
	blocks host.Blocks
}

// NewPlantGrowth creates the plant_growth handler
func NewPlantGrowth(engine host.Engine, blocks host.Blocks) *PlantGrowth {
	return &PlantGrowth{engine: engine, blocks: blocks}
}

// Handle grows the crops in a sphere around the player
func (h *PlantGrowth) Handle(target host.Entity, effect custom.Effect) error {
	if !target.IsPlayer() {
		return nil
	}

	reach := effect.Amplifier * growthRangePerLevel
	if reach <= 0 {
		return nil
	}
	reach = min(reach, maxWalkerRadius)
	feet := target.Location().Block()

	var errs []error
	for x := -reach; x <= reach; x++ {
		for y := -reach; y <= reach; y++ {
			for z := -reach; z <= reach; z++ {
				offset := host.Vector3{X: float64(x), Y: float64(y), Z: float64(z)}
				if offset.Length() > float64(reach) {
					continue
				}
				if err := h.grow(feet.Add(offset)); err != nil {
					errs = append(errs, err)
				}
			}
		}
	}
	return errors.Join(errs...)
}

func (h *PlantGrowth) grow(at host.Vector3) error {
	stage, ok := h.blocks.GrowthState(at)
	if !ok {
		return nil
	}
	typeID, ok := h.blocks.BlockAt(at)
	if !ok || stage >= maxGrowth(typeID) {
		return nil
	}

	if err := h.blocks.SetGrowthState(at, stage+1); err != nil {
		return err
	}

	center := at.Add(host.Vector3{X: 0.5, Z: 0.5})
	_ = h.engine.SpawnParticle(cropGrowthParticle, center)
	_ = h.engine.PlaySound(cropGrowthSound, center)
	return nil
}
