package meteor

import "github.com/vovakirdan/meteorfall/internal/registry"

// Variant ids registered with the registry.
var variantIDs = []string{"meteor", "meteor_rush", "meteor_drift"}

// Register the variants with the registry
func init() {
	for _, id := range variantIDs {
		registry.Register(id, func() registry.Game {
			return New(id, fromSettings()...)
		})
	}
}
