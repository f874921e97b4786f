package rijndael

import "fmt"

// state is the 4x4 byte matrix the transform works on, indexed [row][column].
type state [4][columns]byte

// Cipher encrypts single blocks with a fixed key schedule.
// It holds no mutable state and is safe for concurrent use.
type Cipher struct {
	schedule Schedule
}

// NewCipher expands key and returns a Cipher for it.
func NewCipher(key []byte) (*Cipher, error) {
	schedule, err := ExpandKey(key)
	if err != nil {
		return nil, err
	}

	return &Cipher{schedule: schedule}, nil
}

// NewCipherFromSchedule returns a Cipher using an already expanded schedule.
func NewCipherFromSchedule(schedule Schedule) (*Cipher, error) {
	if len(schedule) == 0 || len(schedule)%columns != 0 || schedule.Rounds() < 1 {
		return nil, fmt.Errorf("rijndael: invalid schedule length %d", len(schedule))
	}

	return &Cipher{schedule: schedule}, nil
}

// BlockSize returns the cipher's block size.
func (c *Cipher) BlockSize() int { return BlockSize }

// Schedule returns the expanded key schedule.
func (c *Cipher) Schedule() Schedule { return c.schedule }

// Encrypt encrypts the first block in src into dst.
// dst and src may overlap entirely but not partially.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("rijndael: input not full block")
	}

	if len(dst) < BlockSize {
		panic("rijndael: output not full block")
	}

	rounds := c.schedule.Rounds()

	var st state

	for i := range BlockSize {
		st[i%4][i/4] = src[i]
	}

	st.addRoundKey(c.schedule, 0)

	for round := 1; round < rounds; round++ {
		st.subBytes()
		st.shiftRows()
		st.mixColumns()
		st.addRoundKey(c.schedule, round)
	}

	st.subBytes()
	st.shiftRows()
	st.addRoundKey(c.schedule, rounds)

	for i := range BlockSize {
		dst[i] = st[i%4][i/4]
	}
}

func (st *state) subBytes() {
	for row := range st {
		for col := range st[row] {
			st[row][col] = sbox[st[row][col]]
		}
	}
}

// shiftRows rotates row r left by r positions.
func (st *state) shiftRows() {
	for row := 1; row < 4; row++ {
		var temp [columns]byte

		for col := range columns {
			temp[col] = st[row][(col+row)%columns]
		}

		st[row] = temp
	}
}

// mixColumns multiplies each column by the fixed MDS matrix over GF(2^8).
func (st *state) mixColumns() {
	for col := range columns {
		var a, b [4]byte

		for i := range 4 {
			a[i] = st[i][col]
			b[i] = xtime(a[i])
		}

		st[0][col] = b[0] ^ a[1] ^ b[1] ^ a[2] ^ a[3]
		st[1][col] = a[0] ^ b[1] ^ a[2] ^ b[2] ^ a[3]
		st[2][col] = a[0] ^ a[1] ^ b[2] ^ a[3] ^ b[3]
		st[3][col] = a[0] ^ b[0] ^ a[1] ^ a[2] ^ b[3]
	}
}

func (st *state) addRoundKey(schedule Schedule, round int) {
	for row := range st {
		for col := range columns {
			st[row][col] ^= schedule[round*columns+col][row]
		}
	}
}

// xtime multiplies v by x modulo x^8 + x^4 + x^3 + x + 1.
func xtime(v byte) byte {
	const poly = 0x11b

	shifted := uint16(v) << 1
	if v&0x80 != 0 {
		shifted ^= poly
	}

	return byte(shifted)
}
