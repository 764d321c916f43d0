package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/KirkDiggler/dicesim/internal/services/roller"
)

const (
	defaultDiceCount = 1
	defaultSideCount = 6

	// maxBodyBytes is far more than any roll request needs
	maxBodyBytes = 1 << 16
)

// errMalformedRequest covers bodies that aren't a JSON object and fields that
// can't be read as integers
var errMalformedRequest = errors.New("malformed request")

// parseRollRequest reads {"num_dice": n, "num_sides": m}. Missing or null
// fields take their defaults. Numbers are truncated toward zero and numeric
// strings are accepted.
func parseRollRequest(r *http.Request) (*roller.RollDiceInput, error) {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.UseNumber()

	var payload map[string]any
	if err := decoder.Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformedRequest, err)
	}

	// A literal null decodes without error
	if payload == nil {
		return nil, fmt.Errorf("%w: body is not an object", errMalformedRequest)
	}

	diceCount, err := intField(payload, "num_dice", defaultDiceCount)
	if err != nil {
		return nil, err
	}

	sideCount, err := intField(payload, "num_sides", defaultSideCount)
	if err != nil {
		return nil, err
	}

	return &roller.RollDiceInput{
		DiceCount: diceCount,
		SideCount: sideCount,
	}, nil
}

func intField(payload map[string]any, key string, fallback int) (int, error) {
	raw, ok := payload[key]
	if !ok || raw == nil {
		return fallback, nil
	}

	switch v := raw.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return clamp(float64(i)), nil
		}
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s is not a number", errMalformedRequest, key)
		}
		return clamp(math.Trunc(f)), nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s is not an integer", errMalformedRequest, key)
		}
		return clamp(float64(i)), nil
	default:
		return 0, fmt.Errorf("%w: %s has unsupported type %T", errMalformedRequest, key, raw)
	}
}

// clamp keeps huge values huge without overflowing int. Anything this far out
// fails range validation anyway.
func clamp(v float64) int {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int(v)
}
