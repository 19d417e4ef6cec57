package pdu

import (
	"bytes"
	"encoding/binary"

	"github.com/suyashkumar/dicom/pkg/dicomio"
)

// AReleaseRq requests an orderly association release. P3.8 9.3.6.
type AReleaseRq struct{}

func (AReleaseRq) Read(d *dicomio.Reader) (PDU, error) {
	d.Skip(4) // Reserved
	return &AReleaseRq{}, nil
}

func (pdu *AReleaseRq) Write() ([]byte, error) {
	var buf bytes.Buffer
	e := dicomio.NewWriter(&buf, binary.BigEndian, false)
	if err := e.WriteZeros(4); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (pdu *AReleaseRq) String() string {
	return "A_RELEASE_RQ{}"
}

// AReleaseRp confirms an orderly association release. P3.8 9.3.7.
type AReleaseRp struct{}

func (AReleaseRp) Read(d *dicomio.Reader) (PDU, error) {
	d.Skip(4) // Reserved
	return &AReleaseRp{}, nil
}

func (pdu *AReleaseRp) Write() ([]byte, error) {
	var buf bytes.Buffer
	e := dicomio.NewWriter(&buf, binary.BigEndian, false)
	if err := e.WriteZeros(4); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (pdu *AReleaseRp) String() string {
	return "A_RELEASE_RP{}"
}
