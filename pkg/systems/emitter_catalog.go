package systems

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/decker502/sparkfx/pkg/config"
)

// ErrTemplateNotFound is returned for an unknown template name.
var ErrTemplateNotFound = errors.New("emitter template not found")

// EmitterCatalog 发射器模板目录
//
// Stores immutable templates by name. Register keeps its own deep copy, so
// callers may reuse or mutate the value they passed in.
type EmitterCatalog struct {
	templates map[string]*config.EmitterTemplate
}

// NewEmitterCatalog creates an empty catalog.
func NewEmitterCatalog() *EmitterCatalog {
	return &EmitterCatalog{templates: make(map[string]*config.EmitterTemplate)}
}

// NewDefaultCatalog creates a catalog holding the built-in templates.
func NewDefaultCatalog() *EmitterCatalog {
	c := NewEmitterCatalog()
	for _, t := range config.DefaultTemplates() {
		// built-ins are validated by tests
		c.templates[t.Name] = t
	}
	return c
}

// Register validates and stores a template under name. An existing template
// with the same name is replaced; emitters already created keep the old one.
func (c *EmitterCatalog) Register(name string, t config.EmitterTemplate) error {
	t.Name = name
	stored := t.Clone()
	if err := stored.Validate(); err != nil {
		return err
	}
	if _, exists := c.templates[name]; exists {
		log.Printf("[EmitterCatalog] 覆盖模板: %s", name)
	}
	c.templates[name] = stored
	return nil
}

// Get returns the shared template for name.
func (c *EmitterCatalog) Get(name string) (*config.EmitterTemplate, error) {
	t, ok := c.templates[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return t, nil
}

// Names returns the registered template names in sorted order.
func (c *EmitterCatalog) Names() []string {
	names := make([]string, 0, len(c.templates))
	for name := range c.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered templates.
func (c *EmitterCatalog) Len() int {
	return len(c.templates)
}
