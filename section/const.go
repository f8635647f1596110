package section

const (
	// Bit masks of ClusterSetFlag.Options
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	ReservedBitsMask = 0x000D // Mask for reserved bits (bits 0, 2 and 3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicClusterSetV1 is the version 1 magic number of the cluster-set blob format.
	MagicClusterSetV1 = 0xEC10
)

// offsets and sizes of the cluster-set blob
const (
	HeaderSize    = 32         // fixed header size in bytes
	PayloadOffset = HeaderSize // byte offset where the cluster payload starts
)
