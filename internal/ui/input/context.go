package input

import (
	"countrydex/internal/app"
	"countrydex/internal/domain"
	"countrydex/internal/ui/logic"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Controller *app.Controller
	Navigator  *logic.Navigator
}

// CurrentIndex returns the grid cursor
func (c *ModelContext) CurrentIndex() int {
	return c.Navigator.GetSelectedIndex()
}

// TotalItems returns the number of cards on screen
func (c *ModelContext) TotalItems() int {
	return len(c.Controller.Visible())
}

// CurrentCountryName returns the name on the card under the cursor
func (c *ModelContext) CurrentCountryName() string {
	visible := c.Controller.Visible()
	i := c.CurrentIndex()
	if i < 0 || i >= len(visible) {
		return ""
	}
	return visible[i].Name
}

func (c *ModelContext) SearchQuery() string {
	return c.Controller.State().Criteria.Query
}

func (c *ModelContext) LoggedIn() bool {
	return c.Controller.State().Session == domain.LoggedIn
}

func (c *ModelContext) LanguageOptions() []string {
	return c.Controller.Options().Languages
}

func (c *ModelContext) RegionOptions() []string {
	return c.Controller.Options().Regions
}

func (c *ModelContext) CurrentLanguage() string {
	return c.Controller.State().Criteria.Language
}

func (c *ModelContext) CurrentRegion() string {
	return c.Controller.State().Criteria.Region
}

// FavoriteNames returns the favorites that resolve to a country, in the order they were added
func (c *ModelContext) FavoriteNames() []string {
	favs := c.Controller.Favorites()
	names := make([]string, len(favs))
	for i, f := range favs {
		names[i] = f.Name
	}
	return names
}
