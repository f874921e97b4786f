package hexdelim_test

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/idelchi/aesctr/pkg/hexdelim"
)

// Case is a single golden encoding.
type Case struct {
	Bytes   []int  `yaml:"bytes"`
	Encoded string `yaml:"encoded"`
}

// Group is a named collection of golden encodings.
type Group struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

func loadGroups(t *testing.T) []Group {
	t.Helper()

	data, err := os.ReadFile("testdata/tokens.yml")
	if err != nil {
		t.Fatalf("reading testdata: %v", err)
	}

	var groups []Group
	if err := yaml.Unmarshal(data, &groups); err != nil {
		t.Fatalf("parsing testdata: %v", err)
	}

	return groups
}

func (c Case) raw() []byte {
	out := make([]byte, len(c.Bytes))
	for i, v := range c.Bytes {
		out[i] = byte(v)
	}

	return out
}

func TestGolden(t *testing.T) {
	t.Parallel()

	for _, g := range loadGroups(t) {
		t.Run(g.Name, func(t *testing.T) {
			t.Parallel()

			for _, tc := range g.Cases {
				if got := hexdelim.Encode(tc.raw()); got != tc.Encoded {
					t.Errorf("Encode(%v) = %q, want %q", tc.Bytes, got, tc.Encoded)
				}

				got, err := hexdelim.Decode(tc.Encoded)
				if err != nil {
					t.Fatalf("Decode(%q) error: %v", tc.Encoded, err)
				}

				if !bytes.Equal(got, tc.raw()) {
					t.Errorf("Decode(%q) = %v, want %v", tc.Encoded, got, tc.Bytes)
				}
			}
		})
	}
}

func TestRoundTripAllBytes(t *testing.T) {
	t.Parallel()

	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}

	for _, data := range [][]byte{nil, {}, all, bytes.Repeat([]byte{0}, 40), []byte("hello, world")} {
		got, err := hexdelim.Decode(hexdelim.Encode(data))
		if err != nil {
			t.Fatalf("Decode(Encode(%x)) error: %v", data, err)
		}

		if !bytes.Equal(got, data) {
			t.Errorf("Decode(Encode(%x)) = %x", data, got)
		}
	}
}

func TestDecodeAcceptsMinimalTokens(t *testing.T) {
	t.Parallel()

	got, err := hexdelim.Decode("a-ff-00ff-0")
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	if want := []byte{0x0a, 0xff, 0xff, 0x00}; !bytes.Equal(got, want) {
		t.Errorf("Decode() = %x, want %x", got, want)
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  error
	}{
		{"0g", hexdelim.ErrInvalidToken},
		{"0A", hexdelim.ErrInvalidToken},
		{"01--02", hexdelim.ErrInvalidToken},
		{"-", hexdelim.ErrInvalidToken},
		{"01-", hexdelim.ErrInvalidToken},
		{" 01", hexdelim.ErrInvalidToken},
		{"0x1", hexdelim.ErrInvalidToken},
		{"100", hexdelim.ErrByteRange},
		{"01-0fff", hexdelim.ErrByteRange},
		{"ffffffffffffffffffffffff", hexdelim.ErrByteRange},
		{"07b-0-0ff-07f-0-0f1-053-065-020ac", hexdelim.ErrByteRange},
	}

	for _, tt := range tests {
		if _, err := hexdelim.Decode(tt.input); !errors.Is(err, tt.want) {
			t.Errorf("Decode(%q) error = %v, want %v", tt.input, err, tt.want)
		}
	}
}
