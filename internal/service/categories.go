package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/theirongolddev/subtrack/internal/model"
)

// DefaultCategories seeds a fresh store with a usable starting set.
var DefaultCategories = []model.Category{
	{Name: "Entertainment", Color: "#D14D41", Icon: "🎬"},
	{Name: "Productivity", Color: "#4385BE", Icon: "🛠"},
	{Name: "Music", Color: "#8B7EC8", Icon: "🎵"},
	{Name: "Cloud", Color: "#3AA99F", Icon: "☁"},
	{Name: "News", Color: "#D0A215", Icon: "📰"},
	{Name: "Other", Color: "#878580", Icon: "📦"},
}

// Categories manages the category collection.
type Categories struct {
	store Storage
	now   func() time.Time
}

// NewCategories creates a category service over the given store.
func NewCategories(store Storage) *Categories {
	return &Categories{store: store, now: time.Now}
}

// List returns all categories, seeding defaults on first use.
func (c *Categories) List() ([]model.Category, error) {
	cats, err := c.store.Categories()
	if err != nil {
		return nil, err
	}
	if len(cats) > 0 {
		return cats, nil
	}

	now := c.now()
	for _, d := range DefaultCategories {
		d.ID = uuid.NewString()
		d.CreatedAt = now
		cats = append(cats, d)
	}
	if err := c.store.SaveCategories(cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// Create validates and stores a new category.
func (c *Categories) Create(cat model.Category) (model.Category, error) {
	if err := validateCategory(cat); err != nil {
		return model.Category{}, err
	}

	cats, err := c.List()
	if err != nil {
		return model.Category{}, err
	}
	for _, existing := range cats {
		if existing.Name == cat.Name {
			return model.Category{}, fmt.Errorf("category %q already exists", cat.Name)
		}
	}

	cat.ID = uuid.NewString()
	cat.CreatedAt = c.now()
	cats = append(cats, cat)
	if err := c.store.SaveCategories(cats); err != nil {
		return model.Category{}, err
	}
	return cat, nil
}

// Delete removes a category by name. Subscriptions keep their category
// string; no cascade happens.
func (c *Categories) Delete(name string) error {
	cats, err := c.store.Categories()
	if err != nil {
		return err
	}
	for i, cat := range cats {
		if cat.Name == name {
			cats = append(cats[:i], cats[i+1:]...)
			return c.store.SaveCategories(cats)
		}
	}
	return fmt.Errorf("category %s: %w", name, ErrNotFound)
}
