package telemetry

var (
	// ReadDirection is an attribute that indicates data is being read.
	ReadDirection = String("io.direction", "read")

	// WriteDirection is an attribute that indicates data is being written.
	WriteDirection = String("io.direction", "write")
)
