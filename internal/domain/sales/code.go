package sales

import (
	"crypto/rand"
	"time"
)

const (
	codePrefix       = "ORD"
	codeRandomLength = 7
	codeCharset      = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// CodeGenerator produces order codes of the form
// ORD + current date (YYYYMMDD) + 7 random uppercase alphanumerics.
// Clock and randomness are injectable for tests.
type CodeGenerator struct {
	now  func() time.Time
	rand func(n int) string
}

// CodeGeneratorOption configures a CodeGenerator
type CodeGeneratorOption func(*CodeGenerator)

// WithClock overrides the clock used for the date stamp
func WithClock(now func() time.Time) CodeGeneratorOption {
	return func(g *CodeGenerator) {
		g.now = now
	}
}

// WithRandom overrides the random string source
func WithRandom(randFn func(n int) string) CodeGeneratorOption {
	return func(g *CodeGenerator) {
		g.rand = randFn
	}
}

// NewCodeGenerator creates a CodeGenerator with real clock and randomness
func NewCodeGenerator(opts ...CodeGeneratorOption) *CodeGenerator {
	g := &CodeGenerator{
		now:  time.Now,
		rand: RandomUpperAlnum,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns a fresh order code
func (g *CodeGenerator) Generate() string {
	return codePrefix + g.now().Format("20060102") + g.rand(codeRandomLength)
}

// RandomUpperAlnum returns n random characters drawn from [A-Z0-9]
func RandomUpperAlnum(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform entropy source is broken;
		// there is no sensible fallback for identifier generation.
		panic("sales: reading random bytes: " + err.Error())
	}
	for i := range buf {
		buf[i] = codeCharset[int(buf[i])%len(codeCharset)]
	}
	return string(buf)
}
