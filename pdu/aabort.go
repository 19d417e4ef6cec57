package pdu

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/suyashkumar/dicom/pkg/dicomio"
)

// AAbort tears down an association immediately. P3.8 9.3.8.
type AAbort struct {
	Source byte
	Reason byte
}

func (AAbort) Read(d *dicomio.Reader) (PDU, error) {
	pdu := &AAbort{}
	d.Skip(2) // Reserved
	var err error
	pdu.Source, err = d.ReadByte()
	if err != nil {
		return nil, err
	}
	pdu.Reason, err = d.ReadByte()
	if err != nil {
		return nil, err
	}
	return pdu, nil
}

func (pdu *AAbort) Write() ([]byte, error) {
	var buf bytes.Buffer
	e := dicomio.NewWriter(&buf, binary.BigEndian, false)
	if err := e.WriteZeros(2); err != nil {
		return nil, err
	}
	if err := e.WriteByte(pdu.Source); err != nil {
		return nil, err
	}
	if err := e.WriteByte(pdu.Reason); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (pdu *AAbort) String() string {
	return fmt.Sprintf("A_ABORT{source:%d reason:%d}", pdu.Source, pdu.Reason)
}
