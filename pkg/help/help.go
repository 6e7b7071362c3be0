// Package help embeds scopelink's long-form help topics. Topics are
// markdown files compiled into the binary, plus a generated topic that
// wraps the shipped default configuration so the reference can never
// drift from the real defaults.
package help

import (
	"embed"
	"io/fs"
	"sort"
	"strings"

	"github.com/scopelink/scopelink/pkg/cobrax/topics"
	"github.com/scopelink/scopelink/pkg/config"
	"github.com/scopelink/scopelink/pkg/errors"
)

//go:embed topics/*.md
var topicFiles embed.FS

// Store serves the embedded help topics. It implements topics.Source.
type Store struct {
	list   []topics.Topic
	byName map[string]topics.Topic
}

// NewStore loads every embedded topic and generates the config topic.
func NewStore() (*Store, error) {
	paths, err := fs.Glob(topicFiles, "topics/*.md")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "listing embedded help topics")
	}

	store := &Store{byName: make(map[string]topics.Topic)}
	for _, path := range paths {
		content, err := topicFiles.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal, "reading embedded help topic %s", path)
		}
		name := strings.TrimSuffix(strings.TrimPrefix(path, "topics/"), ".md")
		store.add(topics.Topic{
			Name:    name,
			Summary: summaryOf(string(content)),
			Content: string(content),
		})
	}
	store.add(configTopic())

	sort.Slice(store.list, func(i, j int) bool {
		return store.list[i].Name < store.list[j].Name
	})
	return store, nil
}

// List returns every topic, sorted by name.
func (s *Store) List() []topics.Topic {
	return s.list
}

// Lookup finds one topic by name.
func (s *Store) Lookup(name string) (topics.Topic, bool) {
	topic, ok := s.byName[name]
	return topic, ok
}

func (s *Store) add(topic topics.Topic) {
	s.list = append(s.list, topic)
	s.byName[topic.Name] = topic
}

// summaryOf extracts the listing line from topic content. Topics open
// with a heading followed by a one-line lede, which is the summary.
func summaryOf(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line
	}
	return ""
}

// configTopic builds the configuration reference around the embedded
// defaults file.
func configTopic() topics.Topic {
	var b strings.Builder
	b.WriteString("# Configuration\n\n")
	b.WriteString("Where scopelink reads configuration and what the defaults are.\n\n")
	b.WriteString("Configuration is layered. Later layers override earlier ones:\n\n")
	b.WriteString("1. Built-in defaults, reproduced below.\n")
	b.WriteString("2. The user config at `$XDG_CONFIG_HOME/scopelink/scopelink.toml`\n")
	b.WriteString("   (usually `~/.config/scopelink/scopelink.toml`).\n")
	b.WriteString("3. A workspace config in the workspace directory, either\n")
	b.WriteString("   `.scopelink.toml` or `.scopelink.yaml`. TOML wins when both\n")
	b.WriteString("   exist.\n")
	b.WriteString("4. `SCOPELINK_*` environment variables. Underscores separate\n")
	b.WriteString("   key segments, so `SCOPELINK_MANAGER_BIN=pnpm` overrides\n")
	b.WriteString("   `manager.bin`.\n\n")
	b.WriteString("## Default configuration\n\n")
	b.WriteString("```toml\n")
	b.WriteString(config.DefaultConfigTOML())
	b.WriteString("```\n")

	return topics.Topic{
		Name:    "config",
		Summary: "Configuration files, layering, and defaults",
		Content: b.String(),
	}
}
