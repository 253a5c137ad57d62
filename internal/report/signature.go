package report

import (
	"encoding/binary"
	"encoding/hex"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/crypto/blake2b"
)

// SignatureTitle is the heading of the signature block.
const SignatureTitle = "DIGITAL SIGNATURE"

// signatureCodePrefix starts every derived signature code.
const signatureCodePrefix = "SIG-"

// signatureSeq makes derived codes unique within the process even when two
// signatures share a timestamp.
var signatureSeq atomic.Uint64

// Signature appends a digital signature block to a report.
type Signature struct {
	decorator
	signer string
	role   string
	code   string
}

// NewSignature wraps inner with a signature block. The signature code is
// fixed when NewSignature is called, so repeated Generate calls agree.
func NewSignature(inner Report, signer, role string, opts ...Option) *Signature {
	o := newOptions(opts)
	code := o.signatureCode
	if code == "" {
		code = newSignatureCode(signer, role, o.clock())
	}
	return &Signature{
		decorator: decorator{inner: inner},
		signer:    signer,
		role:      role,
		code:      code,
	}
}

// Code returns the signature code printed in the block.
func (s *Signature) Code() string {
	return s.code
}

// Generate returns the wrapped text followed by the signature block.
func (s *Signature) Generate() string {
	var sb strings.Builder
	rule := strings.Repeat("═", 70) + "\n"

	sb.WriteString(s.inner.Generate())
	sb.WriteString("\n")
	sb.WriteString(rule)
	sb.WriteString(SignatureTitle + "\n")
	sb.WriteString(rule)
	sb.WriteString("Signer: " + s.signer + "\n")
	sb.WriteString("Role: " + s.role + "\n")
	sb.WriteString("Signature code: " + s.code + "\n")
	sb.WriteString("Status: ✓ VERIFIED\n")
	sb.WriteString(rule)

	return sb.String()
}

// newSignatureCode derives a short code from the signer, the time and a
// process-wide sequence number. The code identifies a signing; it is not a
// cryptographic signature.
func newSignatureCode(signer, role string, at time.Time) string {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[:8], uint64(at.UnixNano()))
	binary.BigEndian.PutUint64(buf[8:], signatureSeq.Add(1))

	data := make([]byte, 0, len(signer)+len(role)+2+len(buf))
	data = append(data, signer...)
	data = append(data, 0)
	data = append(data, role...)
	data = append(data, 0)
	data = append(data, buf[:]...)

	sum := blake2b.Sum256(data)
	return signatureCodePrefix + strings.ToUpper(hex.EncodeToString(sum[:5]))
}
