package booking

import (
	"slices"
	"sync"
)

// Controller owns the booking form and the shoe roster of one session and
// keeps the combined Draft in sync with both.
type Controller struct {
	mu     sync.Mutex
	form   *Form
	roster *ShoeRoster
	draft  Draft
}

func NewController() *Controller {
	c := &Controller{draft: Draft{Shoes: []ShoeEntry{}}}
	c.form = NewForm(c.fieldsChanged)
	c.roster = NewShoeRoster(c.shoesChanged)
	return c
}

func (c *Controller) fieldsChanged(fields FormFields) {
	c.draft.Date = fields.Date
	c.draft.Time = fields.Time
	c.draft.Players = fields.Players
	c.draft.Lanes = fields.Lanes
}

func (c *Controller) shoesChanged(shoes []ShoeEntry) {
	c.draft.Shoes = shoes
}

func (c *Controller) SetField(field Field, value string) (Draft, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.form.Set(field, value); err != nil {
		return c.snapshot(), err
	}
	return c.snapshot(), nil
}

func (c *Controller) AddShoe() Draft {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.roster.Add()
	return c.snapshot()
}

func (c *Controller) UpdateShoe(id, size string) (Draft, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.roster.UpdateSize(id, size); err != nil {
		return c.snapshot(), err
	}
	return c.snapshot(), nil
}

func (c *Controller) RemoveShoe(id string) Draft {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.roster.Remove(id)
	return c.snapshot()
}

func (c *Controller) Draft() Draft {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.snapshot()
}

func (c *Controller) snapshot() Draft {
	draft := c.draft
	draft.Shoes = slices.Clone(c.draft.Shoes)
	return draft
}
