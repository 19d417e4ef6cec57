package dimse

import (
	"encoding/binary"
	"io"

	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
)

// NewElement builds a single command-set element for tag t, inferring its
// VR from the data dictionary the way every other DICOM element is built.
func NewElement(t tag.Tag, value interface{}) (*dicom.Element, error) {
	return dicom.NewElement(t, value)
}

// EncodeElements writes elems to w as an Implicit-VR Little-Endian command
// set, per P3.7 6.3.1.
func EncodeElements(w io.Writer, elems []*dicom.Element) error {
	writer, err := dicom.NewWriter(w)
	if err != nil {
		return err
	}
	writer.SetTransferSyntax(binary.LittleEndian, true)
	for _, elem := range elems {
		if err := writer.WriteElement(elem); err != nil {
			return err
		}
	}
	return nil
}
