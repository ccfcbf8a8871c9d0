package tool

import (
	"sort"
	"strings"
	"sync"
)

// Catalog manages a collection of tools with thread-safe operations.
// It provides methods for adding, retrieving, and managing tools by name.
type Catalog struct {
	mu     sync.RWMutex
	byName map[string]GenericTool
}

// NewCatalog creates a new empty tool catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		byName: make(map[string]GenericTool),
	}
}

// NewCatalogWithTools creates a new catalog pre-populated with the given tools.
// Tool names are taken from each tool's ToolInfo().Name.
func NewCatalogWithTools(tools ...GenericTool) *Catalog {
	catalog := NewCatalog()
	catalog.AddTools(tools...)
	return catalog
}

// AddTools adds multiple tools to the catalog.
// Tool names are automatically extracted from each tool's ToolInfo().Name and stored in lowercase.
// If a tool with the same name already exists, it will be replaced.
func (c *Catalog) AddTools(tools ...GenericTool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range tools {
		info := t.ToolInfo()
		c.byName[strings.ToLower(info.Name)] = t
	}
}

// Get retrieves a tool by name (case-insensitive).
// Returns the tool and true if found, nil and false otherwise.
func (c *Catalog) Get(name string) (GenericTool, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, exists := c.byName[strings.ToLower(name)]
	return t, exists
}

// Has checks if a tool with the given name exists (case-insensitive).
func (c *Catalog) Has(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, exists := c.byName[strings.ToLower(name)]
	return exists
}

// Remove removes a tool from the catalog by name (case-insensitive).
// Returns true if the tool was found and removed, false otherwise.
func (c *Catalog) Remove(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	lowerName := strings.ToLower(name)
	if _, exists := c.byName[lowerName]; exists {
		delete(c.byName, lowerName)
		return true
	}
	return false
}

// Clear removes all tools from the catalog.
func (c *Catalog) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byName = make(map[string]GenericTool)
}

// Tools returns a copy of the internal tool map, keyed by lowercase name.
// The returned map can be safely modified without affecting the catalog.
func (c *Catalog) Tools() map[string]GenericTool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	catalogCopy := make(map[string]GenericTool, len(c.byName))
	for name, t := range c.byName {
		catalogCopy[name] = t
	}
	return catalogCopy
}

// Infos returns the advertised metadata of every tool, sorted by name, ready
// to hand to a language model as the available toolset.
func (c *Catalog) Infos() []Info {
	c.mu.RLock()
	defer c.mu.RUnlock()

	infos := make([]Info, 0, len(c.byName))
	for _, t := range c.byName {
		infos = append(infos, t.ToolInfo())
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// Size returns the number of tools in the catalog.
func (c *Catalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byName)
}

// Merge adds all tools from another catalog into this one.
// If a tool with the same name already exists, it will be replaced with the one from 'other'.
func (c *Catalog) Merge(other *Catalog) {
	if other == nil {
		return
	}

	// Lock both catalogs (in consistent order to prevent deadlock)
	c.mu.Lock()
	defer c.mu.Unlock()

	other.mu.RLock()
	defer other.mu.RUnlock()

	for name, t := range other.byName {
		c.byName[name] = t
	}
}

// Clone creates a deep copy of the catalog.
// The returned catalog is independent and can be modified without affecting the original.
func (c *Catalog) Clone() *Catalog {
	c.mu.RLock()
	defer c.mu.RUnlock()

	clone := NewCatalog()
	for name, t := range c.byName {
		clone.byName[name] = t
	}
	return clone
}
