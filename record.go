package main

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
)

// RecordOverhead is the fixed per-record byte cost xxlsort attributes to the
// key/flags/crc/seed framing and record metadata, on top of the variable
// body payload.
const RecordOverhead = 88

// A Record is one synthetic unit of sort input. Field order here is the wire
// order.
type Record struct {
	Key      string
	Flags    uint64
	CRC      uint64
	BodySize int64
	Seed     uint64
}

// KeyForIndex derives the key for ordinal index i: the hex SHA-256 digest of
// the decimal text of i. Distinct indexes give distinct keys at any
// realistic run size, and the same index always reproduces the same key.
func KeyForIndex(i int64) string {
	sum := sha256.Sum256([]byte(strconv.FormatInt(i, 10)))
	return hex.EncodeToString(sum[:])
}

// WriteTo writes the record in xxlsort's wire format: space-separated fields
// in key/flags/crc/body_size/seed order, newline-terminated.
func (r *Record) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "%s %d %d %d %d\n", r.Key, r.Flags, r.CRC, r.BodySize, r.Seed)
	return int64(n), err
}
