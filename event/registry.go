package event

import (
	"fmt"
	"slices"
	"strings"
)

var (
	nameToType = make(map[string]EventType)
	typeToName = make(map[EventType]string)
)

// RegisterType maps a string name to an EventType
func RegisterType(name string, et EventType) {
	nameToType[name] = et
	typeToName[et] = name
}

func init() {
	RegisterType("EventLanded", EventLanded)
	RegisterType("EventTeleported", EventTeleported)
	RegisterType("EventStateChanged", EventStateChanged)
	RegisterType("EventShardCollected", EventShardCollected)
	RegisterType("EventLevelComplete", EventLevelComplete)
}

// ParseEventType resolves a registered name, case-insensitive, with or without the Event prefix
func ParseEventType(name string) (EventType, bool) {
	if et, ok := nameToType[name]; ok {
		return et, true
	}
	for n, et := range nameToType {
		if strings.EqualFold(n, name) || strings.EqualFold(strings.TrimPrefix(n, "Event"), name) {
			return et, true
		}
	}
	return 0, false
}

// Types lists the registered event types in declaration order
func Types() []EventType {
	out := make([]EventType, 0, len(typeToName))
	for et := range typeToName {
		out = append(out, et)
	}
	slices.Sort(out)
	return out
}

func (t EventType) String() string {
	if name, ok := typeToName[t]; ok {
		return name
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}
