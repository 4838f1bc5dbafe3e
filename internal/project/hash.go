package project

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"jsfmt/internal/format"
	"jsfmt/internal/version"
)

// Digest is a SHA-256 sum; source.File.Hash converts to it directly.
type Digest [32]byte

// Hex returns the full lowercase hex form.
func (d Digest) Hex() string { return hex.EncodeToString(d[:]) }

// Combine hashes content followed by parts. Order matters.
func Combine(content Digest, parts ...Digest) Digest {
	buf := make([]byte, 0, len(content)*(len(parts)+1))
	buf = append(buf, content[:]...)
	for _, d := range parts {
		buf = append(buf, d[:]...)
	}
	return sha256.Sum256(buf)
}

// OptionsDigest fingerprints the options that affect output together with
// the formatter version, so an upgrade never reuses stale cache entries.
func OptionsDigest(opts format.Options) Digest {
	return sha256.Sum256(fmt.Appendf(nil, "%s|%d|%q|%t|%d|%t|%s|%t|%d",
		version.Version,
		opts.IndentSize, opts.IndentChar, opts.PreserveNewlines, opts.MaxPreserveNewlines,
		opts.JSLintHappy, opts.BraceStyle, opts.KeepArrayIndentation, opts.IndentLevel))
}
