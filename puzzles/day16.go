package puzzles

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/rs/zerolog"

	"github.com/spencewenski/advent-of-code-2021/input"
)

// Packet decoder. Only the outermost packet header is decoded so far.

const (
	packetTypeLiteral = 4
	headerBits        = 6
)

type packetHeader struct {
	Version uint8
	TypeID  uint8
}

func (h packetHeader) literal() bool { return h.TypeID == packetTypeLiteral }

// parseHeader reads the 3-bit version and 3-bit type ID at the start of a
// hexadecimal transmission.
func parseHeader(hex string) (packetHeader, error) {
	hex = strings.TrimSpace(hex)
	if hex == "" {
		return packetHeader{}, fmt.Errorf("empty transmission")
	}
	n, ok := new(big.Int).SetString(hex, 16)
	if !ok {
		return packetHeader{}, fmt.Errorf("not hexadecimal: %q", hex)
	}
	total := uint(4 * len(hex))
	if total < headerBits {
		return packetHeader{}, fmt.Errorf("transmission shorter than a header")
	}
	top := new(big.Int).Rsh(n, total-headerBits).Uint64()

	return packetHeader{Version: uint8(top >> 3), TypeID: uint8(top & 0b111)}, nil
}

func decodePacket(ctx context.Context, lines []string) (Answer, error) {
	if len(lines) == 0 {
		return Answer{}, ErrEmptyResult
	}
	h, err := parseHeader(lines[0])
	if err != nil {
		return Answer{}, &input.MalformedError{Line: 1, Reason: err.Error()}
	}
	zerolog.Ctx(ctx).Debug().
		Uint8("version", h.Version).
		Uint8("type_id", h.TypeID).
		Bool("literal", h.literal()).
		Msg("packet header")

	// TODO: decode literal groups and operator sub-packets (length type 0/1).
	return Answer{}, fmt.Errorf("%w: packet body decoding (day 16)", ErrNotImplemented)
}

func day16Part1(ctx context.Context, lines []string) (Answer, error) {
	return decodePacket(ctx, lines)
}

func day16Part2(ctx context.Context, lines []string) (Answer, error) {
	return decodePacket(ctx, lines)
}
