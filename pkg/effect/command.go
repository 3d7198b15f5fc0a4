package effect

// Kind tags the variant of a Command.
type Kind string

// Standard command kinds.
const (
	// KindPersist requests that a state snapshot be written to storage.
	// Payload: the snapshot value.
	KindPersist Kind = "persist"

	// KindLog requests a structured log entry.
	// Payload: LogEntry.
	KindLog Kind = "log"

	// KindAnalytics requests an analytics event emission.
	// Payload: Event (or an equivalent map, e.g. from a decoded stream).
	KindAnalytics Kind = "analytics"
)

// Command describes one effect to perform as a consequence of a state
// change. Commands are transient: constructed per dispatch and discarded
// once executed.
type Command struct {
	Kind    Kind `json:"kind"`
	Payload any  `json:"payload,omitempty"`
}

// LogEntry is the payload of a KindLog command.
type LogEntry struct {
	Message string `json:"message" mapstructure:"message"`
	Action  string `json:"action" mapstructure:"action"`
}

// Event is the payload of a KindAnalytics command.
type Event struct {
	Name   string            `json:"name" mapstructure:"name"`
	Labels map[string]string `json:"labels,omitempty" mapstructure:"labels"`
}

// Persist builds a persistence command for the given snapshot.
func Persist(snapshot any) Command {
	return Command{Kind: KindPersist, Payload: snapshot}
}

// Log builds a logging command.
func Log(action, message string) Command {
	return Command{Kind: KindLog, Payload: LogEntry{Action: action, Message: message}}
}

// Analytics builds an analytics command.
func Analytics(name string, labels map[string]string) Command {
	return Command{Kind: KindAnalytics, Payload: Event{Name: name, Labels: labels}}
}
