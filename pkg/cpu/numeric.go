package cpu

// Z80 flag bit positions in the F register (MSB to LSB: S Z Y H X P/V N C).
const (
	FlagC uint8 = 0x01 // Carry
	FlagN uint8 = 0x02 // Add/Subtract
	FlagP uint8 = 0x04 // Parity/Overflow
	FlagV       = FlagP
	FlagX uint8 = 0x08 // Undocumented bit 3
	FlagH uint8 = 0x10 // Half-carry
	FlagY uint8 = 0x20 // Undocumented bit 5
	FlagZ uint8 = 0x40 // Zero
	FlagS uint8 = 0x80 // Sign
)

// signedByte reinterprets b as a two's-complement signed value in [-128, 127].
func signedByte(b uint8) int8 {
	return int8(b)
}

// addDisplacement applies a signed 8-bit displacement to a 16-bit address,
// wrapping modulo 0x10000.
func addDisplacement(base uint16, d uint8) uint16 {
	return uint16(int32(base) + int32(signedByte(d)))
}
