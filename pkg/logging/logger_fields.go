package logging

import (
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Domain field helpers. None of these may carry key material or payloads.

func Component(name string) Field {
	return String("component", name)
}

func Operation(op string) Field {
	return String("operation", op)
}

func CallID(id string) Field {
	return String("call_id", id)
}

// Bytes records a buffer length, never its contents
func Bytes(key string, n int) Field {
	return Int(key, n)
}

// Kind records a typed failure kind
func Kind(kind string) Field {
	return String("kind", kind)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}
