package core

// Category identifies one of the fixed expense classifications. The set is
// closed; there is no runtime registration.
type Category string

const (
	CategoryComida     Category = "comida"
	CategoryTransporte Category = "transporte"
	CategoryMoradia    Category = "moradia"
	CategoryLazer      Category = "lazer"
	CategoryOutros     Category = "outros"
)

// DefaultCategory is the fallback for identifiers not present in the registry,
// e.g. loaded from a blob written by a newer or corrupted build.
const DefaultCategory = CategoryOutros

// CategoryConfig holds the display metadata for a category.
type CategoryConfig struct {
	Name    string
	Icon    string
	Color   string
	BgColor string
}

var categoryRegistry = map[Category]CategoryConfig{
	CategoryComida:     {Name: "Comida", Icon: "UtensilsCrossed", Color: "text-orange-600", BgColor: "bg-orange-100"},
	CategoryTransporte: {Name: "Transporte", Icon: "Car", Color: "text-blue-600", BgColor: "bg-blue-100"},
	CategoryMoradia:    {Name: "Moradia", Icon: "Home", Color: "text-green-600", BgColor: "bg-green-100"},
	CategoryLazer:      {Name: "Lazer", Icon: "Gamepad2", Color: "text-purple-600", BgColor: "bg-purple-100"},
	CategoryOutros:     {Name: "Outros", Icon: "MoreHorizontal", Color: "text-gray-600", BgColor: "bg-gray-100"},
}

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{CategoryComida, CategoryTransporte, CategoryMoradia, CategoryLazer, CategoryOutros}
}

// Known reports whether c is part of the closed set.
func (c Category) Known() bool {
	_, ok := categoryRegistry[c]
	return ok
}

// Config returns the display metadata for c, falling back to DefaultCategory
// for unknown identifiers.
func (c Category) Config() CategoryConfig {
	if cfg, ok := categoryRegistry[c]; ok {
		return cfg
	}
	return categoryRegistry[DefaultCategory]
}

// Normalize maps unknown identifiers to DefaultCategory.
func (c Category) Normalize() Category {
	if c.Known() {
		return c
	}
	return DefaultCategory
}

func (c Category) String() string {
	return string(c)
}
