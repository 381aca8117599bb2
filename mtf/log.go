package mtf

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// keyDigest identifies a key in log entries without writing the key itself.
func keyDigest(key any) uint64 {
	switch k := key.(type) {
	case string:
		return xxhash.Sum64String(k)
	case []byte:
		return xxhash.Sum64(k)
	case fmt.Stringer:
		return xxhash.Sum64String(k.String())
	default:
		return xxhash.Sum64String(fmt.Sprintf("%v", k))
	}
}

func digestField(key any) zap.Field {
	return zap.Uint64("key_digest", keyDigest(key))
}

// check returns a debug entry only when the logger would write it, so
// fields are never built for a disabled logger.
func (t *Table[K, V]) check(msg string) *zapcore.CheckedEntry {
	return t.logger.Check(zap.DebugLevel, msg)
}

func (t *Table[K, V]) idField() zap.Field {
	return zap.String("table_id", t.id)
}
