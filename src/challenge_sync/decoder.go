package challenge_sync

import (
	"encoding/base64"
	"math/big"
	"strings"
	"unicode/utf8"
)

// CallKind is the closed set of contract calls the projector understands
type CallKind uint8

const (
	CallUnknown CallKind = iota
	CallCreateChallenge
	CallJoinChallenge
	CallSubmitWorkout
	CallCloseChallenge
)

var callKinds = map[string]CallKind{
	"createChallenge": CallCreateChallenge,
	"joinChallenge":   CallJoinChallenge,
	"submitWorkout":   CallSubmitWorkout,
	"closeChallenge":  CallCloseChallenge,
}

// DecodedCall is one structured contract call
type DecodedCall struct {
	Kind     CallKind
	Function string

	// Hex encoded big-endian unsigned integers, empty segments already dropped
	Args []string
}

// DecodeCallData decodes the compact call encoding:
// base64 of "functionName@arg1@arg2@...".
// Invalid base64/UTF-8 or an empty function name yields ok == false,
// which the caller treats as "not a relevant call".
func DecodeCallData(data string) (call DecodedCall, ok bool) {
	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return call, false
	}
	if !utf8.Valid(decoded) {
		return call, false
	}

	segments := strings.Split(string(decoded), "@")
	if segments[0] == "" {
		return call, false
	}

	call.Function = segments[0]
	call.Kind = callKinds[call.Function]
	for _, segment := range segments[1:] {
		if segment == "" {
			continue
		}
		call.Args = append(call.Args, segment)
	}

	return call, true
}

// Largest integer that survives a roundtrip through a double precision float
const maxSafeInteger = int64(1)<<53 - 1

// Parses one call argument as a big-endian unsigned integer.
// A leading "0x" is tolerated.
func parseHexArg(arg string) (*big.Int, bool) {
	arg = strings.TrimPrefix(arg, "0x")
	if arg == "" {
		return nil, false
	}
	n, ok := new(big.Int).SetString(arg, 16)
	if !ok || n.Sign() < 0 {
		return nil, false
	}
	return n, true
}

// Clamps a parsed argument into the safe integer range
func saturateInt64(n *big.Int) int64 {
	if !n.IsInt64() || n.Int64() > maxSafeInteger {
		return maxSafeInteger
	}
	return n.Int64()
}
