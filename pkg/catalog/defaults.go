package catalog

import "sync"

// defaultDescriptors covers every resource kind of the base game model.
var defaultDescriptors = []Descriptor{
	// Basic resources
	{Kind: "credits", Icon: "resources/megacredit", Class: ClassStandard},
	{Kind: "steel", Icon: "resources/steel", Class: ClassStandard},
	{Kind: "titanium", Icon: "resources/titanium", Class: ClassStandard},
	{Kind: "plants", Icon: "resources/plant", Class: ClassStandard},
	{Kind: "energy", Icon: "resources/power", Class: ClassStandard},
	{Kind: "heat", Icon: "resources/heat", Class: ClassStandard},

	// Card resources
	{Kind: "microbes", Icon: "resources/microbe", Class: ClassCardResource},
	{Kind: "animals", Icon: "resources/animal", Class: ClassCardResource},
	{Kind: "floaters", Icon: "resources/floater", Class: ClassCardResource},
	{Kind: "science", Icon: "resources/science", Class: ClassCardResource},
	{Kind: "asteroid", Icon: "resources/asteroid", Class: ClassCardResource},
	{Kind: "disease", Icon: "resources/disease", Class: ClassCardResource},
	{Kind: "card-draw", Icon: "resources/card", Class: ClassCardResource},
	{Kind: "card-take", Icon: "resources/card-take", Class: ClassCardResource},
	{Kind: "card-peek", Icon: "resources/card-peek", Class: ClassCardResource},

	// Tiles and placements
	{Kind: "city-placement", Icon: "tiles/city", Class: ClassTile},
	{Kind: "ocean-placement", Icon: "tiles/ocean", Class: ClassTile},
	{Kind: "greenery-placement", Icon: "tiles/greenery", Class: ClassTile},
	{Kind: "city-tile", Icon: "tiles/city", Class: ClassTile},
	{Kind: "ocean-tile", Icon: "tiles/ocean", Class: ClassTile},
	{Kind: "greenery-tile", Icon: "tiles/greenery", Class: ClassTile},
	{Kind: "colony-tile", Icon: "tiles/colony", Class: ClassTile},

	// Global parameters
	{Kind: "temperature", Icon: "global/temperature", Class: ClassGlobal},
	{Kind: "oxygen", Icon: "global/oxygen", Class: ClassGlobal},
	{Kind: "venus", Icon: "global/venus", Class: ClassGlobal},
	{Kind: "tr", Icon: "global/tr", Class: ClassGlobal},

	// Production
	{Kind: "credits-production", Icon: "resources/megacredit", Class: ClassProduction},
	{Kind: "steel-production", Icon: "resources/steel", Class: ClassProduction},
	{Kind: "titanium-production", Icon: "resources/titanium", Class: ClassProduction},
	{Kind: "plants-production", Icon: "resources/plant", Class: ClassProduction},
	{Kind: "energy-production", Icon: "resources/power", Class: ClassProduction},
	{Kind: "heat-production", Icon: "resources/heat", Class: ClassProduction},

	// Special effects
	{Kind: "discount", Icon: "effects/discount", Class: ClassDiscount},
	{Kind: "effect", Icon: "effects/effect", Class: ClassEffect},
	{Kind: "global-parameter-lenience", Icon: "effects/lenience", Class: ClassEffect},
	{Kind: "venus-lenience", Icon: "effects/venus-lenience", Class: ClassEffect},
	{Kind: "defense", Icon: "effects/defense", Class: ClassEffect},
	{Kind: "value-modifier", Icon: "effects/value-modifier", Class: ClassEffect},

	// Tags referenced by per-conditions and discounts
	{Kind: "building", Icon: "tags/building", Class: ClassStandard},
	{Kind: "space", Icon: "tags/space", Class: ClassStandard},
	{Kind: "power", Icon: "tags/power", Class: ClassStandard},
	{Kind: "plant", Icon: "tags/plant", Class: ClassStandard},
	{Kind: "microbe", Icon: "tags/microbe", Class: ClassStandard},
	{Kind: "animal", Icon: "tags/animal", Class: ClassStandard},
	{Kind: "city", Icon: "tags/city", Class: ClassStandard},
	{Kind: "earth", Icon: "tags/earth", Class: ClassStandard},
	{Kind: "jovian", Icon: "tags/jovian", Class: ClassStandard},
	{Kind: "event", Icon: "tags/event", Class: ClassStandard},
	{Kind: "wild", Icon: "tags/wild", Class: ClassStandard},
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog. The returned catalog is shared and
// must not be modified; use [Catalog.With] to layer overrides.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = New(defaultDescriptors...)
	})
	return defaultCatalog
}
