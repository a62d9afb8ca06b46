package domain

// Standard enumerations of the purchase form. The German labels are the
// business vocabulary and are used as stored values, not just UI text.
var (
	Categories = []string{
		"Kleider", "Strickmode/Cardigans", "Sweatshirt", "Hoodie",
		"Hosen", "Jeans", "Jacken", "Blazer", "Mäntel",
		"Shirts", "Top", "Hemd", "Bluse", "Röcke/Jupe",
		"Sportbekleidung", "Bademode", "Shorts",
	}
	PriceLevels     = []string{"Luxus", "Teuer", "Mittel", "Günstig"}
	Conditions      = []string{"Neu", "Kaum benutzt", "Gebraucht/Gut", "Abgenutzt"}
	RelevanceLevels = []string{"Stark relevant", "Wichtig", "Nicht beliebt"}
)

// Catalog is the set of valid enum values at a point in time: the
// standard lists plus whatever custom categories exist.
type Catalog struct {
	categories map[string]struct{}
	levels     map[string]struct{}
	conditions map[string]struct{}
	relevance  map[string]struct{}
	ordered    []string
}

func NewCatalog(customCategories []string) *Catalog {
	c := &Catalog{
		categories: toSet(Categories),
		levels:     toSet(PriceLevels),
		conditions: toSet(Conditions),
		relevance:  toSet(RelevanceLevels),
		ordered:    append([]string(nil), Categories...),
	}
	for _, name := range customCategories {
		if _, ok := c.categories[name]; ok {
			continue
		}
		c.categories[name] = struct{}{}
		c.ordered = append(c.ordered, name)
	}
	return c
}

// Categories returns the valid category names in stable order, standard
// ones first and custom ones after.
func (c *Catalog) Categories() []string {
	return c.ordered
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func (c *Catalog) HasCategory(v string) bool   { _, ok := c.categories[v]; return ok }
func (c *Catalog) HasPriceLevel(v string) bool { _, ok := c.levels[v]; return ok }
func (c *Catalog) HasCondition(v string) bool  { _, ok := c.conditions[v]; return ok }
func (c *Catalog) HasRelevance(v string) bool  { _, ok := c.relevance[v]; return ok }

func IsStandardCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}
