package rijndael

import "strconv"

const (
	// BlockSize is the Rijndael block size in bytes.
	BlockSize = 16

	// columns is the number of state columns (Nb).
	columns = BlockSize / WordSize

	// WordSize is the number of bytes in a Word.
	WordSize = 4
)

// Word is a 4-byte key-schedule unit. It doubles as a state column.
type Word [WordSize]byte

// Schedule is an expanded key: 4*(rounds+1) words.
type Schedule []Word

// Rounds returns the number of cipher rounds the schedule supports.
func (s Schedule) Rounds() int {
	return len(s)/columns - 1
}

// Bytes flattens the schedule into its 4*len(s) bytes.
func (s Schedule) Bytes() []byte {
	out := make([]byte, 0, len(s)*WordSize)

	for _, w := range s {
		out = append(out, w[:]...)
	}

	return out
}

// KeySizeError is returned for key lengths other than 16, 24 or 32 bytes.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "rijndael: invalid key size " + strconv.Itoa(int(k))
}

// ExpandKey expands a 16, 24 or 32-byte key into its round key schedule.
func ExpandKey(key []byte) (Schedule, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, KeySizeError(len(key))
	}

	keyWords := len(key) / WordSize
	rounds := keyWords + 6

	schedule := make(Schedule, columns*(rounds+1))

	for i := range keyWords {
		copy(schedule[i][:], key[WordSize*i:WordSize*(i+1)])
	}

	for i := keyWords; i < len(schedule); i++ {
		temp := schedule[i-1]

		switch {
		case i%keyWords == 0:
			temp = subWord(rotWord(temp))
			temp[0] ^= rcon[i/keyWords][0]
		case keyWords > 6 && i%keyWords == 4:
			temp = subWord(temp)
		}

		for t := range WordSize {
			schedule[i][t] = schedule[i-keyWords][t] ^ temp[t]
		}
	}

	return schedule, nil
}

// subWord applies the S-Box to each byte of w.
func subWord(w Word) Word {
	for i := range w {
		w[i] = sbox[w[i]]
	}

	return w
}

// rotWord rotates w left by one byte.
func rotWord(w Word) Word {
	return Word{w[1], w[2], w[3], w[0]}
}
