package httpclient

import (
	"math"
	"regexp"
	"strconv"
	"time"
)

const (
	throttleType  = "Error"
	throttleError = "Throttled"

	// FallbackWaitSeconds applies when the throttle message carries no
	// usable wait time.
	FallbackWaitSeconds = 15
	// WaitMarginSeconds is added to the wait the service asks for.
	WaitMarginSeconds = 2
	// MaxWaitSeconds is the largest wait honoured. Longer waits fall back so
	// that N plus the margin fits an int and a time.Duration on every platform.
	MaxWaitSeconds = math.MaxInt32
)

var waitPattern = regexp.MustCompile(`Try again in ([0-9]+) seconds`)

type ThrottleSignal struct {
	Message string
	Wait    time.Duration
}

// DetectThrottle reports whether result is LiquidPlanner's throttle error
// document, {"type":"Error","error":"Throttled","message":"..."}.
func DetectThrottle(result *Result) (ThrottleSignal, bool) {
	if result == nil {
		return ThrottleSignal{Message: "", Wait: 0}, false
	}

	doc, ok := result.Map()
	if !ok {
		return ThrottleSignal{Message: "", Wait: 0}, false
	}

	if kind, _ := doc["type"].(string); kind != throttleType {
		return ThrottleSignal{Message: "", Wait: 0}, false
	}

	if code, _ := doc["error"].(string); code != throttleError {
		return ThrottleSignal{Message: "", Wait: 0}, false
	}

	message, _ := doc["message"].(string)

	return ThrottleSignal{Message: message, Wait: WaitDuration(message)}, true
}

// WaitSeconds extracts N from "Try again in N seconds" and returns N plus a
// two second margin, or FallbackWaitSeconds when there is no usable N.
func WaitSeconds(message string) int {
	matches := waitPattern.FindStringSubmatch(message)
	if len(matches) < 2 { //nolint:mnd
		return FallbackWaitSeconds
	}

	seconds, err := strconv.Atoi(matches[1])
	if err != nil || seconds > MaxWaitSeconds-WaitMarginSeconds {
		return FallbackWaitSeconds
	}

	return seconds + WaitMarginSeconds
}

func WaitDuration(message string) time.Duration {
	return time.Duration(WaitSeconds(message)) * time.Second
}
