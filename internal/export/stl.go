package export

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/mverbeek/treestack/internal/geometry"
)

// ExportSTL writes the mesh as a binary STL file, the common interchange
// format for 3D viewers and slicers. Positions stay in mm.
func ExportSTL(path string, m geometry.Mesh, name string) error {
	if m.IsEmpty() {
		return fmt.Errorf("no geometry to export")
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := WriteSTL(w, m, name); err != nil {
		return err
	}
	return w.Flush()
}

// WriteSTL writes a binary STL stream: an 80-byte header, a uint32
// triangle count, then 50 bytes per triangle (normal, three vertices,
// attribute count).
func WriteSTL(w io.Writer, m geometry.Mesh, name string) error {
	var header [80]byte
	copy(header[:], name)
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(m.TriangleCount())); err != nil {
		return err
	}

	var buf [50]byte
	for _, t := range m.Triangles {
		n := t.Normal()
		putVec3(buf[0:], n)
		putVec3(buf[12:], t.V[0])
		putVec3(buf[24:], t.V[1])
		putVec3(buf[36:], t.V[2])
		buf[48], buf[49] = 0, 0 // attribute byte count
		if _, err := w.Write(buf[:]); err != nil {
			return err
		}
	}
	return nil
}

func putVec3(b []byte, v geometry.Vec3) {
	binary.LittleEndian.PutUint32(b[0:], math.Float32bits(float32(v.X)))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(float32(v.Y)))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(float32(v.Z)))
}
