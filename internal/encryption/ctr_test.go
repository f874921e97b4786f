package encryption_test

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/idelchi/aesctr/internal/encryption"
	"github.com/idelchi/aesctr/pkg/hexdelim"
)

// Golden is the pinned counter-mode testdata.
type Golden struct {
	Nonce struct {
		Millis int64  `yaml:"millis"`
		Random uint16 `yaml:"random"`
	} `yaml:"nonce"`
	Cases []struct {
		Plaintext  string `yaml:"plaintext"`
		Password   string `yaml:"password"`
		Ciphertext string `yaml:"ciphertext"`
	} `yaml:"cases"`
}

func loadGolden(t *testing.T) Golden {
	t.Helper()

	data, err := os.ReadFile("testdata/ctr.yml")
	if err != nil {
		t.Fatalf("reading testdata: %v", err)
	}

	var golden Golden
	if err := yaml.Unmarshal(data, &golden); err != nil {
		t.Fatalf("parsing testdata: %v", err)
	}

	return golden
}

func fixedNonce(n encryption.Nonce) encryption.Option {
	return encryption.WithNonceSource(func() (encryption.Nonce, error) { return n, nil })
}

func TestGoldenCiphertexts(t *testing.T) {
	t.Parallel()

	golden := loadGolden(t)
	nonce := encryption.NewNonce(time.UnixMilli(golden.Nonce.Millis), golden.Nonce.Random)

	if len(golden.Cases) == 0 {
		t.Fatal("no golden cases")
	}

	for _, tc := range golden.Cases {
		got, err := encryption.Encrypt(tc.Plaintext, tc.Password, fixedNonce(nonce))
		if err != nil {
			t.Fatalf("Encrypt(%q) error = %v", tc.Plaintext, err)
		}

		if got != tc.Ciphertext {
			t.Errorf("Encrypt(%q, %q) =\n  %s\nwant\n  %s", tc.Plaintext, tc.Password, got, tc.Ciphertext)
		}

		plain, err := encryption.Decrypt(tc.Ciphertext, tc.Password)
		if err != nil {
			t.Fatalf("Decrypt(%q) error = %v", tc.Ciphertext, err)
		}

		if plain != tc.Plaintext {
			t.Errorf("Decrypt(%q) = %q, want %q", tc.Ciphertext, plain, tc.Plaintext)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	passwords := []string{"1234", "correct horse battery staple 9", "ünïcödé 42", strings.Repeat("7", 64)}

	for _, size := range []int{0, 1, 15, 16, 17, 31, 32, 33, 100, 4096} {
		plaintext := make([]byte, size)
		for i := range plaintext {
			plaintext[i] = byte(i * 31)
		}

		for _, password := range passwords {
			ciphertext, err := encryption.Encrypt(string(plaintext), password)
			if err != nil {
				t.Fatalf("Encrypt(%d bytes) error = %v", size, err)
			}

			got, err := encryption.Decrypt(ciphertext, password)
			if err != nil {
				t.Fatalf("Decrypt(%d bytes) error = %v", size, err)
			}

			if got != string(plaintext) {
				t.Errorf("size %d, password %q: round trip mismatch", size, password)
			}
		}
	}
}

func TestEncryptIsRandomized(t *testing.T) {
	t.Parallel()

	var seq byte

	source := func() (encryption.Nonce, error) {
		seq++

		return encryption.NewNonce(time.UnixMilli(1700000000000), uint16(seq)), nil
	}

	first, err := encryption.Encrypt("attack at dawn", "1234", encryption.WithNonceSource(source))
	if err != nil {
		t.Fatal(err)
	}

	second, err := encryption.Encrypt("attack at dawn", "1234", encryption.WithNonceSource(source))
	if err != nil {
		t.Fatal(err)
	}

	if first == second {
		t.Fatalf("two encryptions produced the same ciphertext %s", first)
	}

	for _, ct := range []string{first, second} {
		got, err := encryption.Decrypt(ct, "1234")
		if err != nil {
			t.Fatal(err)
		}

		if got != "attack at dawn" {
			t.Errorf("Decrypt() = %q, want %q", got, "attack at dawn")
		}
	}
}

func TestContainerLayout(t *testing.T) {
	t.Parallel()

	nonce := encryption.Nonce{9, 8, 7, 6, 5, 4, 3, 2}
	plaintext := []byte("seventeen bytes!!")

	container, err := encryption.Seal(plaintext, "2468", nonce)
	if err != nil {
		t.Fatal(err)
	}

	if len(container) != encryption.NonceSize+len(plaintext) {
		t.Fatalf("len(container) = %d, want %d", len(container), encryption.NonceSize+len(plaintext))
	}

	if !bytes.Equal(container[:encryption.NonceSize], nonce[:]) {
		t.Errorf("container nonce = %x, want %x", container[:encryption.NonceSize], nonce)
	}

	opened, err := encryption.Open(container, "2468")
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(opened, plaintext) {
		t.Errorf("Open() = %q, want %q", opened, plaintext)
	}
}

func TestWrongPasswordGarbles(t *testing.T) {
	t.Parallel()

	ciphertext, err := encryption.Encrypt("top secret", "1111")
	if err != nil {
		t.Fatal(err)
	}

	got, err := encryption.Decrypt(ciphertext, "2222")
	if err != nil {
		t.Fatalf("Decrypt() error = %v", err)
	}

	if got == "top secret" {
		t.Error("decrypting with a different key recovered the plaintext")
	}
}

func TestErrors(t *testing.T) {
	t.Parallel()

	if _, err := encryption.Encrypt("x", ""); !errors.Is(err, encryption.ErrInvalidKeyMaterial) {
		t.Errorf("Encrypt() with empty password error = %v, want ErrInvalidKeyMaterial", err)
	}

	if _, err := encryption.Decrypt("0-0-0-0-0-0-0-0", ""); !errors.Is(err, encryption.ErrInvalidKeyMaterial) {
		t.Errorf("Decrypt() with empty password error = %v, want ErrInvalidKeyMaterial", err)
	}

	nonceErr := errors.New("entropy exhausted")
	failing := encryption.WithNonceSource(func() (encryption.Nonce, error) { return encryption.Nonce{}, nonceErr })

	if _, err := encryption.Encrypt("x", "1", failing); !errors.Is(err, nonceErr) {
		t.Errorf("Encrypt() with failing nonce source error = %v, want %v", err, nonceErr)
	}

	malformed := []struct {
		name       string
		ciphertext string
		cause      error
	}{
		{"empty", "", nil},
		{"too short", "01-02-03-04-05-06-07", nil},
		{"bad digit", "0z-0-0-0-0-0-0-0", hexdelim.ErrInvalidToken},
		{"empty token", "0-0-0--0-0-0-0-0", hexdelim.ErrInvalidToken},
		{"out of range", "0-0-0-0-0-0-0-0-0100", hexdelim.ErrByteRange},
	}

	for _, tt := range malformed {
		_, err := encryption.Decrypt(tt.ciphertext, "1234")
		if !errors.Is(err, encryption.ErrMalformedCiphertext) {
			t.Errorf("%s: Decrypt() error = %v, want ErrMalformedCiphertext", tt.name, err)
		}

		if tt.cause != nil && !errors.Is(err, tt.cause) {
			t.Errorf("%s: Decrypt() error = %v, want cause %v", tt.name, err, tt.cause)
		}
	}
}
