package scriptlog

import (
	"fmt"
	"reflect"
)

// Maximum recursion depth and element count so a pathological value cannot
// flood the sinks.
const (
	maxDumpDepth    = 8
	maxDumpElements = 16
)

// Dump logs the contents of v at DEBUG level, one record per leaf value,
// each prefixed with label and the path to the field. Struct fields, map
// entries, and slice elements are walked recursively; unexported fields are
// skipped and cycles are cut. Every emitted line passes through the normal
// sanitize/format/route pipeline, so a hostile string inside a dumped struct
// is neutralized like any other message.
func (l *Logger) Dump(label string, v interface{}) {
	if l == nil || !l.levelEnabled(LevelDebug) {
		return
	}
	if v == nil {
		l.Debugf("%s: <nil>", label)
		return
	}
	visited := make(map[uintptr]bool)
	l.dumpValue(label, reflect.ValueOf(v), visited, 0)
}

func (l *Logger) dumpValue(prefix string, val reflect.Value, visited map[uintptr]bool, depth int) {
	if depth > maxDumpDepth {
		l.Debugf("%s: <max depth reached>", prefix)
		return
	}

	for val.Kind() == reflect.Interface || val.Kind() == reflect.Ptr {
		if val.IsNil() {
			l.Debugf("%s: <nil>", prefix)
			return
		}
		if val.Kind() == reflect.Ptr {
			ptr := val.Pointer()
			if visited[ptr] {
				l.Debugf("%s: <circular reference>", prefix)
				return
			}
			visited[ptr] = true
		}
		val = val.Elem()
	}

	typ := val.Type()

	switch val.Kind() {
	case reflect.Struct:
		l.Debugf("%s: %s {", prefix, typ.Name())
		for i := 0; i < val.NumField(); i++ {
			field := val.Field(i)
			if !field.CanInterface() {
				continue
			}
			l.dumpValue(prefix+"."+typ.Field(i).Name, field, visited, depth+1)
		}
		l.Debugf("%s: }", prefix)
	case reflect.Map:
		l.Debugf("%s: %s (len %d) {", prefix, typ.String(), val.Len())
		iter := val.MapRange()
		count := 0
		for iter.Next() && count < maxDumpElements {
			key := fmt.Sprintf("%v", iter.Key().Interface())
			l.dumpValue(prefix+"["+key+"]", iter.Value(), visited, depth+1)
			count++
		}
		if val.Len() > maxDumpElements {
			l.Debugf("%s: ... (%d more entries)", prefix, val.Len()-maxDumpElements)
		}
		l.Debugf("%s: }", prefix)
	case reflect.Slice, reflect.Array:
		l.Debugf("%s: %s (len %d) {", prefix, typ.String(), val.Len())
		for i := 0; i < val.Len() && i < maxDumpElements; i++ {
			l.dumpValue(fmt.Sprintf("%s[%d]", prefix, i), val.Index(i), visited, depth+1)
		}
		if val.Len() > maxDumpElements {
			l.Debugf("%s: ... (%d more elements)", prefix, val.Len()-maxDumpElements)
		}
		l.Debugf("%s: }", prefix)
	default:
		if val.CanInterface() {
			l.Debugf("%s: %v", prefix, val.Interface())
		} else {
			l.Debugf("%s: <unexported>", prefix)
		}
	}
}
