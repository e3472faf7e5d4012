package notify

import (
	"fmt"
	"sort"
	"sync"

	"github.com/go-viper/mapstructure/v2"
)

// Factory builds a Notifier from a raw config mapping (usually the `config`
// block under `notify` in the YAML config).
type Factory func(spec map[string]interface{}) (Notifier, error)

var (
	regMu    sync.RWMutex
	registry = map[string]Factory{}
)

// Register makes a notifier type available by name. Later registrations for
// the same name win, which lets embedders override the built-ins.
func Register(typ string, f Factory) {
	regMu.Lock()
	defer regMu.Unlock()
	registry[typ] = f
}

// New builds a notifier of the given type. An empty type yields the log
// notifier.
func New(typ string, spec map[string]interface{}) (Notifier, error) {
	if typ == "" {
		typ = "log"
	}
	regMu.RLock()
	f, ok := registry[typ]
	regMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("notify: unknown notifier type %q (registered: %v)", typ, registeredTypes())
	}
	return f(spec)
}

func registeredTypes() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

type webhookSpec struct {
	URL string `mapstructure:"url"`
}

func init() {
	Register("log", func(_ map[string]interface{}) (Notifier, error) {
		return LogNotifier{}, nil
	})
	Register("webhook", func(spec map[string]interface{}) (Notifier, error) {
		var ws webhookSpec
		if err := mapstructure.Decode(spec, &ws); err != nil {
			return nil, fmt.Errorf("notify: decode webhook config: %w", err)
		}
		if ws.URL == "" {
			return nil, fmt.Errorf("notify: webhook notifier requires url")
		}
		return NewWebhookNotifier(ws.URL), nil
	})
}
