package digest_test

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/idelchi/aesctr/pkg/digest"
)

// Vector is a pinned digest for one message.
type Vector struct {
	Message  string `yaml:"message"`
	Standard string `yaml:"standard"`
	Legacy   string `yaml:"legacy"`
}

func loadVectors(t *testing.T) []Vector {
	t.Helper()

	data, err := os.ReadFile("testdata/vectors.yml")
	if err != nil {
		t.Fatalf("reading testdata: %v", err)
	}

	var vectors []Vector
	if err := yaml.Unmarshal(data, &vectors); err != nil {
		t.Fatalf("parsing testdata: %v", err)
	}

	if len(vectors) == 0 {
		t.Fatal("no vectors in testdata/vectors.yml")
	}

	return vectors
}

var hexDigest = regexp.MustCompile(`^[0-9a-f]{64}$`)

func TestVectors(t *testing.T) {
	t.Parallel()

	for _, v := range loadVectors(t) {
		name := v.Message
		if len(name) > 16 {
			name = name[:16]
		}

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if got := digest.Sum(v.Message); got != v.Standard {
				t.Errorf("Sum(%q) = %s, want %s", v.Message, got, v.Standard)
			}

			if got := digest.SumVariant(v.Message, digest.VariantLegacy); got != v.Legacy {
				t.Errorf("SumVariant(%q, legacy) = %s, want %s", v.Message, got, v.Legacy)
			}
		})
	}
}

func TestSumIsStableLowercaseHex(t *testing.T) {
	t.Parallel()

	for _, msg := range []string{"", "hello"} {
		first := digest.Sum(msg)

		if !hexDigest.MatchString(first) {
			t.Errorf("Sum(%q) = %q, not 64 lowercase hex characters", msg, first)
		}

		for range 3 {
			if again := digest.Sum(msg); again != first {
				t.Errorf("Sum(%q) not deterministic: %s then %s", msg, first, again)
			}
		}
	}
}

func TestSumAgreesWithSHA256(t *testing.T) {
	t.Parallel()

	for _, size := range []int{0, 1, 55, 56, 57, 63, 64, 65, 119, 120, 1000} {
		buf := make([]byte, size)
		if _, err := rand.Read(buf); err != nil {
			t.Fatal(err)
		}

		msg := string(buf)
		want := sha256.Sum256(buf)

		if got := digest.Sum(msg); got != hex.EncodeToString(want[:]) {
			t.Errorf("size %d: Sum() = %s, want %x", size, got, want)
		}
	}
}

func TestLegacyDiffersFromStandard(t *testing.T) {
	t.Parallel()

	// An empty message has an all-zero length trailer in both variants, so only the
	// word formatting can differ.
	std := digest.Sum("")
	legacy := digest.SumVariant("", digest.VariantLegacy)

	if std[32:48] != legacy[32:48] {
		t.Errorf("positive words should print identically: %s vs %s", std[32:48], legacy[32:48])
	}

	if std[:8] == legacy[:8] {
		t.Errorf("negative first word should differ: %s", std[:8])
	}

	if digest.Sum("hello") == digest.SumVariant("hello", digest.VariantLegacy) {
		t.Error("legacy length trailer should change the digest of a non-empty message")
	}
}

func TestMatches(t *testing.T) {
	t.Parallel()

	sum := digest.Sum("hello")

	tests := []struct {
		name     string
		message  string
		expected string
		want     bool
	}{
		{"exact", "hello", sum, true},
		{"other message", "hello!", sum, false},
		{"uppercase", "hello", strings.ToUpper(sum), false},
		{"truncated", "hello", sum[:63], false},
		{"empty expected", "hello", "", false},
		{"empty message", "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", true},
	}

	for _, tt := range tests {
		if got := digest.Matches(tt.message, tt.expected); got != tt.want {
			t.Errorf("%s: Matches(%q, %q) = %v, want %v", tt.name, tt.message, tt.expected, got, tt.want)
		}
	}

	legacy := digest.SumVariant("hello", digest.VariantLegacy)

	if !digest.MatchesVariant("hello", legacy, digest.VariantLegacy) {
		t.Error("MatchesVariant(legacy) = false for its own digest")
	}

	if digest.Matches("hello", legacy) {
		t.Error("Matches(standard) = true for a legacy digest")
	}
}
