package registry

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

/*
Entry describes one configured remote agent.  The set of entries is fixed for
the lifetime of the process; there is no dynamic registration.
*/
type Entry struct {
	ID    string
	URL   string
	Token string
	Alias string
}

// DisplayName returns the configured alias, falling back to the id.
func (entry Entry) DisplayName() string {
	if entry.Alias != "" {
		return entry.Alias
	}
	return entry.ID
}

/*
Registry is a read-only lookup table from logical agent ids to remote agent
entries.  It is safe for concurrent use without locking because it is never
mutated after construction.
*/
type Registry struct {
	entries map[string]Entry
	ids     []string
}

// New builds a registry from an explicit entry list. Mostly useful in tests.
func New(entries ...Entry) *Registry {
	registry := &Registry{
		entries: make(map[string]Entry, len(entries)),
	}

	for _, entry := range entries {
		registry.entries[entry.ID] = entry
	}

	registry.ids = sortedIDs(registry.entries)
	return registry
}

/*
NewFromConfig loads the agents.* configuration section at startup.  Each key
under agents is a logical id mapping to url, token and alias values.
*/
func NewFromConfig() *Registry {
	v := viper.GetViper()
	entries := make(map[string]Entry)

	for id := range v.GetStringMap("agents") {
		entry := Entry{
			ID:    id,
			URL:   v.GetString("agents." + id + ".url"),
			Token: v.GetString("agents." + id + ".token"),
			Alias: v.GetString("agents." + id + ".alias"),
		}
		entries[id] = entry
		log.Info("registered remote agent", "id", id, "url", entry.URL)
	}

	return &Registry{
		entries: entries,
		ids:     sortedIDs(entries),
	}
}

// IDs returns the known agent ids in sorted order.
func (registry *Registry) IDs() []string {
	return registry.ids
}

// All returns every configured entry, ordered by id.
func (registry *Registry) All() []Entry {
	all := make([]Entry, 0, len(registry.ids))

	for _, id := range registry.ids {
		all = append(all, registry.entries[id])
	}

	return all
}

/*
Get resolves an entry by id.  An unknown id or an entry without a URL yields
a typed error before any network attempt is made.
*/
func (registry *Registry) Get(id string) (Entry, error) {
	entry, ok := registry.entries[id]

	if !ok {
		return Entry{}, &NotFoundError{ID: id, Known: registry.ids}
	}

	if entry.URL == "" {
		return Entry{}, &MissingURLError{ID: id}
	}

	return entry, nil
}

func sortedIDs(entries map[string]Entry) []string {
	ids := make([]string, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
