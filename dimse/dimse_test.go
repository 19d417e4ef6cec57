package dimse_test

import (
	"bytes"
	"testing"

	"github.com/netdicom/dulstack/dimse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suyashkumar/dicom"
)

func roundTrip(t *testing.T, v dimse.Message) dimse.Message {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, dimse.EncodeMessage(&buf, v))

	parsed, err := dicom.Parse(bytes.NewReader(buf.Bytes()), int64(buf.Len()), nil,
		dicom.SkipPixelData(), dicom.SkipMetadataReadOnNewParserInit())
	require.NoError(t, err)

	got, err := dimse.ReadMessage(&parsed)
	require.NoError(t, err)
	return got
}

func TestCStoreRqRoundTrip(t *testing.T) {
	v := &dimse.CStoreRq{
		AffectedSOPClassUID:                  "1.2.3",
		MessageID:                            0x1234,
		Priority:                             1,
		CommandDataSetType:                   dimse.CommandDataSetTypeNonNull,
		AffectedSOPInstanceUID:               "3.4.5",
		MoveOriginatorApplicationEntityTitle: "foohah",
		MoveOriginatorMessageID:              0x3456,
	}
	got, ok := roundTrip(t, v).(*dimse.CStoreRq)
	require.True(t, ok)
	assert.Equal(t, v.String(), got.String())
	assert.True(t, got.HasData())
}

func TestCStoreRqRoundTripEmptyMoveOriginator(t *testing.T) {
	// MoveOriginator* fields must round-trip even when empty/zero, since
	// C-STORE-RQ always emits them.
	v := &dimse.CStoreRq{
		AffectedSOPClassUID:     "1.2.3",
		MessageID:               0x1234,
		Priority:                0,
		CommandDataSetType:      dimse.CommandDataSetTypeNull,
		AffectedSOPInstanceUID:  "3.4.5",
	}
	got, ok := roundTrip(t, v).(*dimse.CStoreRq)
	require.True(t, ok)
	assert.Equal(t, "", got.MoveOriginatorApplicationEntityTitle)
	assert.Equal(t, dimse.MessageID(0), got.MoveOriginatorMessageID)
	assert.False(t, got.HasData())
}

func TestCStoreRspRoundTrip(t *testing.T) {
	v := &dimse.CStoreRsp{
		AffectedSOPClassUID:       "1.2.3",
		MessageIDBeingRespondedTo: 0x1234,
		CommandDataSetType:        dimse.CommandDataSetTypeNull,
		AffectedSOPInstanceUID:    "3.4.5",
		Status:                    dimse.Status{Status: dimse.StatusCode(0x3456)},
	}
	got, ok := roundTrip(t, v).(*dimse.CStoreRsp)
	require.True(t, ok)
	assert.Equal(t, v.String(), got.String())
}

func TestCEchoRqRoundTrip(t *testing.T) {
	v := &dimse.CEchoRq{
		AffectedSOPClassUID: "1.2.840.10008.1.1",
		MessageID:           0x1234,
		CommandDataSetType:  dimse.CommandDataSetTypeNull,
	}
	got, ok := roundTrip(t, v).(*dimse.CEchoRq)
	require.True(t, ok)
	assert.Equal(t, v.String(), got.String())
}

func TestCEchoRspRoundTrip(t *testing.T) {
	v := &dimse.CEchoRsp{
		AffectedSOPClassUID:       "1.2.840.10008.1.1",
		MessageIDBeingRespondedTo: 0x1234,
		CommandDataSetType:        dimse.CommandDataSetTypeNull,
		Status:                    dimse.Status{Status: dimse.StatusCode(0x2345)},
	}
	got, ok := roundTrip(t, v).(*dimse.CEchoRsp)
	require.True(t, ok)
	assert.Equal(t, v.String(), got.String())
}

func TestCFindRqRoundTrip(t *testing.T) {
	v := &dimse.CFindRq{
		AffectedSOPClassUID: "1.2.840.10008.5.1.4.1.2.1.1",
		MessageID:           7,
		Priority:            0,
		CommandDataSetType:  dimse.CommandDataSetTypeNonNull,
	}
	got, ok := roundTrip(t, v).(*dimse.CFindRq)
	require.True(t, ok)
	assert.Equal(t, v.String(), got.String())
}

func TestCFindRspNoIdentifier(t *testing.T) {
	v := &dimse.CFindRsp{
		AffectedSOPClassUID:       "1.2.840.10008.5.1.4.1.2.1.1",
		MessageIDBeingRespondedTo: 7,
		Status:                    dimse.Success,
	}
	v.SetNoIdentifier()
	got, ok := roundTrip(t, v).(*dimse.CFindRsp)
	require.True(t, ok)
	assert.False(t, got.HasData())
	assert.Equal(t, dimse.CommandDataSetType(0x101), got.CommandDataSetType)
}

func TestCGetRqRoundTrip(t *testing.T) {
	v := &dimse.CGetRq{
		AffectedSOPClassUID: "1.2.840.10008.5.1.4.1.2.1.3",
		MessageID:           9,
		Priority:            1,
		CommandDataSetType:  dimse.CommandDataSetTypeNonNull,
	}
	got, ok := roundTrip(t, v).(*dimse.CGetRq)
	require.True(t, ok)
	assert.Equal(t, v.String(), got.String())
}

func TestCGetRspRoundTrip(t *testing.T) {
	v := &dimse.CGetRsp{
		AffectedSOPClassUID:             "1.2.840.10008.5.1.4.1.2.1.3",
		MessageIDBeingRespondedTo:       9,
		CommandDataSetType:              dimse.CommandDataSetTypeNull,
		NumberOfRemainingSuboperations:  2,
		NumberOfCompletedSuboperations:  1,
		Status:                          dimse.Status{Status: dimse.StatusPending},
	}
	got, ok := roundTrip(t, v).(*dimse.CGetRsp)
	require.True(t, ok)
	assert.Equal(t, v.String(), got.String())
}

func TestCMoveRqRoundTrip(t *testing.T) {
	v := &dimse.CMoveRq{
		AffectedSOPClassUID: "1.2.840.10008.5.1.4.1.2.2.1",
		MessageID:           11,
		Priority:            0,
		MoveDestination:     "REMOTE_AE",
		CommandDataSetType:  dimse.CommandDataSetTypeNonNull,
	}
	got, ok := roundTrip(t, v).(*dimse.CMoveRq)
	require.True(t, ok)
	assert.Equal(t, v.String(), got.String())
}

func TestCCancelRqRoundTrip(t *testing.T) {
	v := &dimse.CCancelRq{MessageIDBeingCancelled: 42}
	got, ok := roundTrip(t, v).(*dimse.CCancelRq)
	require.True(t, ok)
	assert.Equal(t, v.String(), got.String())
	assert.False(t, got.HasData())
}

func TestStatusToElements(t *testing.T) {
	s := dimse.Status{Status: dimse.StatusSuccess}
	elems, err := s.ToElements()
	require.NoError(t, err)
	assert.Len(t, elems, 1)

	s.ErrorComment = "something went wrong"
	elems, err = s.ToElements()
	require.NoError(t, err)
	assert.Len(t, elems, 2)
}

func TestFragment(t *testing.T) {
	buf := make([]byte, 10)
	frags := dimse.Fragment(4, buf)
	assert.Len(t, frags, 3)
	assert.Len(t, frags[0], 4)
	assert.Len(t, frags[1], 4)
	assert.Len(t, frags[2], 2)

	assert.Equal(t, [][]byte{{}}, dimse.Fragment(4, nil))
	assert.Equal(t, [][]byte{buf}, dimse.Fragment(0, buf))
}
