package adb

import (
	"fmt"
	"strconv"
	"strings"
)

// Priority is a logcat verbosity level. Levels are ordered from most to
// least verbose: V < D < I < W < E < F < S.
type Priority string

const (
	PriorityVerbose Priority = "V"
	PriorityDebug   Priority = "D"
	PriorityInfo    Priority = "I"
	PriorityWarn    Priority = "W"
	PriorityError   Priority = "E"
	PriorityFatal   Priority = "F"
	PrioritySilent  Priority = "S"
)

// ParsePriority parses a single-letter priority, case-insensitively.
// The empty string parses to PriorityVerbose, which filters nothing
// beyond the tag itself.
func ParsePriority(s string) (Priority, error) {
	if s == "" {
		return PriorityVerbose, nil
	}
	p := Priority(strings.ToUpper(s))
	switch p {
	case PriorityVerbose, PriorityDebug, PriorityInfo, PriorityWarn,
		PriorityError, PriorityFatal, PrioritySilent:
		return p, nil
	}
	return "", fmt.Errorf("invalid priority %q: must be one of V, D, I, W, E, F, S", s)
}

// LogcatParams describes a point-in-time log query. PID and Tag scoping
// are independent and may both be present.
type LogcatParams struct {
	PID      string
	Tag      string
	Priority Priority
	MaxLines int
}

// LogcatArgs builds the exact logcat argument vector for p. The order
// is fixed by logcat's argument grammar:
//
//	logcat -t <maxLines> [--pid=<pid>] [-s <tag>:<priority>]
func LogcatArgs(p LogcatParams) []string {
	args := []string{"logcat", "-t", strconv.Itoa(p.MaxLines)}
	if p.PID != "" {
		args = append(args, "--pid="+p.PID)
	}
	if p.Tag != "" {
		prio := p.Priority
		if prio == "" {
			prio = PriorityVerbose
		}
		args = append(args, "-s", p.Tag+":"+string(prio))
	}
	return args
}
