package envelope

const (
	// Address is the OSC address pattern of a VCS value-change message.
	// Messages with any other address are rejected; this module does not
	// implement a general OSC parser.
	Address = "/vcs"

	// TypeTag is the OSC type tag string of a VCS message: a single blob
	// argument.
	TypeTag = ",b"

	// TypeTagFieldSize is the padded width of the type tag field. The tag
	// ",b" plus its NUL terminator occupies 3 bytes, padded to the 4-byte
	// boundary.
	TypeTagFieldSize = 4

	// LengthFieldSize is the width of the big-endian blob length field.
	LengthFieldSize = 4

	// MinMessageSize is the smallest buffer that can hold an envelope: a
	// minimal 4-byte address field, the type tag field and the blob length
	// field.
	MinMessageSize = 4 + TypeTagFieldSize + LengthFieldSize
)
