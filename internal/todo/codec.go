package todo

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownEvent is returned when decoding an event name this package does not define.
var ErrUnknownEvent = errors.New("unknown event")

// EncodeEvent returns the event name and its JSON payload.
func EncodeEvent(ev Event) (string, []byte, error) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return "", nil, fmt.Errorf("encode %s: %w", ev.EventName(), err)
	}
	return ev.EventName(), payload, nil
}

// DecodeEvent rebuilds an event from a name and payload produced by EncodeEvent.
func DecodeEvent(name string, payload []byte) (Event, error) {
	switch name {
	case EventTodoCreated:
		return decode[TodoCreated](name, payload)
	case EventTodoCompleted:
		return decode[TodoCompleted](name, payload)
	case EventTodoUncompleted:
		return decode[TodoUncompleted](name, payload)
	case EventTodoDeleted:
		return decode[TodoDeleted](name, payload)
	case EventTodoClearedCompleted:
		return decode[TodoClearedCompleted](name, payload)
	case EventUIStateSet:
		return decode[UIStateSet](name, payload)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, name)
	}
}

func decode[T Event](name string, payload []byte) (Event, error) {
	var v T
	if err := json.Unmarshal(payload, &v); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return v, nil
}
