package marshaler

import "fmt"

// ReprSizeError is returned when unmarshaling an integer representation from
// data that is not exactly the size of the representation.
type ReprSizeError struct {
	Domain string
	Want   int
	Got    int
}

func (e ReprSizeError) Error() string {
	return fmt.Sprintf(
		"%s: integer representation must be %d byte(s), got %d",
		e.Domain,
		e.Want,
		e.Got,
	)
}
