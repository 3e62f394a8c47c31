package challenge_sync

import (
	"encoding/json"
	"strconv"

	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/multiversx"
)

// Gateway deployments disagree on field naming, so every known alias is tried.
// Lookup order is fixed, first present alias wins.
var txHashAliases = []string{"txHash", "hash", "tx_hash", "identifier", "_id"}

// Millisecond fields win over second fields
var timestampMsAliases = []string{"timestampMs", "timestamp_ms"}
var timestampSecAliases = []string{"timestamp", "time"}

// Normalize converts one raw gateway record into its canonical form.
// Records without any usable hash field are dropped (ok == false).
func Normalize(raw multiversx.RawTransaction) (tx NormalizedTransaction, ok bool) {
	hash := firstString(raw, txHashAliases)
	if hash == "" {
		return tx, false
	}

	tx.TxHash = hash
	tx.Sender, _ = stringValue(raw["sender"])
	tx.Receiver, _ = stringValue(raw["receiver"])
	tx.Data, _ = stringValue(raw["data"])
	tx.Raw = raw

	if ms, found := firstNumber(raw, timestampMsAliases); found {
		tx.TimestampMs = ms
		tx.HasTimestamp = true
	} else if sec, found := firstNumber(raw, timestampSecAliases); found {
		tx.TimestampMs = sec * 1000
		tx.HasTimestamp = true
	}

	return tx, true
}

func firstString(raw multiversx.RawTransaction, aliases []string) string {
	for _, alias := range aliases {
		if s, ok := stringValue(raw[alias]); ok && s != "" {
			return s
		}
	}
	return ""
}

func firstNumber(raw multiversx.RawTransaction, aliases []string) (int64, bool) {
	for _, alias := range aliases {
		value, present := raw[alias]
		if !present {
			continue
		}
		if n, ok := numberValue(value); ok {
			return n, true
		}
	}
	return 0, false
}

func stringValue(value interface{}) (string, bool) {
	s, ok := value.(string)
	return s, ok
}

// Gateway timestamps show up as JSON numbers or numeric strings
func numberValue(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return n, true
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
