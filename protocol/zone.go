package protocol

import "io"

// Matrix is the 2D grid of LED index values describing the physical layout
// of a matrix zone.  Rows holds Height rows of Width cells, row-major.
type Matrix struct {
	Height uint32
	Width  uint32
	Rows   [][]uint32
}

// Zone is a section of a controller.  Zones are server-authoritative, so
// the codec is decode-only.
type Zone struct {
	// Name is the zone name
	Name string
	// Type is the zone layout type
	Type ZoneType
	// LedsMin is the minimum number of LEDs the zone supports
	LedsMin uint32
	// LedsMax is the maximum number of LEDs the zone supports
	LedsMax uint32
	// LedsCount is the current number of LEDs in the zone
	LedsCount uint32
	// Matrix is the LED layout, present only for matrix zones
	Matrix *Matrix
}

// Read decodes the value from r.  The matrix section is prefixed with a
// 2-byte length; zero means the zone carries no matrix.
func (z *Zone) Read(r io.Reader, protocol uint32) error {
	var name String
	var zoneType ZoneType
	var ledsMin, ledsMax, ledsCount Uint32
	var matrixLen Uint16
	if err := readAll(r, protocol, &name, &zoneType, &ledsMin, &ledsMax, &ledsCount, &matrixLen); err != nil {
		return err
	}
	z.Name = string(name)
	z.Type = zoneType
	z.LedsMin = uint32(ledsMin)
	z.LedsMax = uint32(ledsMax)
	z.LedsCount = uint32(ledsCount)
	z.Matrix = nil
	if matrixLen == 0 {
		return nil
	}
	return z.readMatrix(r, protocol)
}

func (z *Zone) readMatrix(r io.Reader, protocol uint32) error {
	var height, width Uint32
	if err := readAll(r, protocol, &height, &width); err != nil {
		return err
	}
	matrix := &Matrix{
		Height: uint32(height),
		Width:  uint32(width),
		Rows:   make([][]uint32, int(height)),
	}
	for i := range matrix.Rows {
		row := make([]uint32, int(width))
		for j := range row {
			var cell Uint32
			if err := cell.Read(r, protocol); err != nil {
				return err
			}
			row[j] = uint32(cell)
		}
		matrix.Rows[i] = row
	}
	z.Matrix = matrix
	return nil
}
