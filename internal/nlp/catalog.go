package nlp

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var defaultRules []byte

// Catalog holds the compiled keyword tables.
type Catalog struct {
	Duration         Table[Duration]
	Intent           Table[Intent]
	IntentConfidence float64
}

// Duration is a predicted task length.
type Duration struct {
	Duration   string
	Confidence float64
}

// Intent is a classified chat intent with the assistant's reply.
type Intent struct {
	Name     string
	Response string
	Action   map[string]string
}

type catalogFile struct {
	Duration struct {
		Default durationEntry   `yaml:"default"`
		Rules   []durationEntry `yaml:"rules"`
	} `yaml:"duration"`
	Intent struct {
		Confidence float64       `yaml:"confidence"`
		Default    intentEntry   `yaml:"default"`
		Rules      []intentEntry `yaml:"rules"`
	} `yaml:"intent"`
}

type durationEntry struct {
	Keywords   []string `yaml:"keywords"`
	Duration   string   `yaml:"duration"`
	Confidence float64  `yaml:"confidence"`
}

type intentEntry struct {
	Keywords []string          `yaml:"keywords"`
	Intent   string            `yaml:"intent"`
	Response string            `yaml:"response"`
	Action   map[string]string `yaml:"action"`
}

// ParseCatalog decodes YAML keyword tables. Rule order is preserved and
// every rule must carry at least one keyword.
func ParseCatalog(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode rules: %w", err)
	}
	if f.Duration.Default.Duration == "" {
		return nil, errors.New("duration table: missing default")
	}
	if f.Intent.Default.Intent == "" {
		return nil, errors.New("intent table: missing default")
	}

	c := &Catalog{IntentConfidence: f.Intent.Confidence}

	c.Duration.Default = Duration{Duration: f.Duration.Default.Duration, Confidence: f.Duration.Default.Confidence}
	for i, e := range f.Duration.Rules {
		kws, err := normalizeKeywords(e.Keywords)
		if err != nil {
			return nil, fmt.Errorf("duration rule %d: %w", i, err)
		}
		c.Duration.Rules = append(c.Duration.Rules, Rule[Duration]{
			Name:   strings.Join(kws, "|"),
			Match:  AnyKeyword(kws...),
			Result: Duration{Duration: e.Duration, Confidence: e.Confidence},
		})
	}

	c.Intent.Default = intentFromEntry(f.Intent.Default)
	for i, e := range f.Intent.Rules {
		kws, err := normalizeKeywords(e.Keywords)
		if err != nil {
			return nil, fmt.Errorf("intent rule %d (%s): %w", i, e.Intent, err)
		}
		c.Intent.Rules = append(c.Intent.Rules, Rule[Intent]{
			Name:   e.Intent,
			Match:  AnyKeyword(kws...),
			Result: intentFromEntry(e),
		})
	}

	return c, nil
}

func intentFromEntry(e intentEntry) Intent {
	action := e.Action
	if action == nil {
		action = map[string]string{}
	}
	return Intent{Name: e.Intent, Response: e.Response, Action: action}
}

func normalizeKeywords(kws []string) ([]string, error) {
	out := make([]string, 0, len(kws))
	for _, kw := range kws {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			out = append(out, kw)
		}
	}
	if len(out) == 0 {
		return nil, errors.New("no keywords")
	}
	return out, nil
}
