package dulprovider

import (
	"net"
	"testing"
	"time"

	"github.com/netdicom/dulstack/dimse"
	"github.com/stretchr/testify/require"
)

// Verification SOP class / Implicit VR Little Endian, used throughout as a
// stand-in abstract/transfer syntax pair.
const (
	testAbstractSyntax = "1.2.840.10008.1.1"
	testTransferSyntax = "1.2.840.10008.1.2"
)

type association struct {
	userUp, provUp     chan upcallEvent
	userDown, provDown chan stateEvent
}

// startAssociation dials a real loopback TCP connection and drives one
// state machine on each side to completion of the handshake.
func startAssociation(t *testing.T, sopClasses []string) *association {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	a := &association{
		userUp:   make(chan upcallEvent, 16),
		provUp:   make(chan upcallEvent, 16),
		userDown: make(chan stateEvent, 16),
		provDown: make(chan stateEvent, 16),
	}
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		runStateMachineForServiceProvider(conn, a.provUp, a.provDown, "provider")
	}()
	go runStateMachineForServiceUser(
		listener.Addr().String(),
		ServiceUserParams{
			CalledAETitle:    "PROV",
			CallingAETitle:   "USER",
			SOPClasses:       sopClasses,
			TransferSyntaxes: []string{testTransferSyntax},
		},
		a.userUp, a.userDown, "user")
	return a
}

func requireUpcall(t *testing.T, ch chan upcallEvent, want upcallEventType) upcallEvent {
	t.Helper()
	select {
	case e, ok := <-ch:
		require.True(t, ok, "channel closed before %v", want)
		require.Equal(t, want, e.eventType)
		return e
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for upcall %v", want)
	}
	return upcallEvent{}
}

func TestHandshakeAccepted(t *testing.T) {
	a := startAssociation(t, []string{testAbstractSyntax})

	requireUpcall(t, a.userUp, upcallEventHandshakeCompleted)
	requireUpcall(t, a.provUp, upcallEventHandshakeCompleted)
}

func TestHandshakeNegotiatesOnePresentationContextPerSOPClass(t *testing.T) {
	const otherAbstractSyntax = "1.2.840.10008.5.1.4.1.1.2"
	a := startAssociation(t, []string{testAbstractSyntax, otherAbstractSyntax})

	requireUpcall(t, a.userUp, upcallEventHandshakeCompleted)
	e := requireUpcall(t, a.provUp, upcallEventHandshakeCompleted)

	for _, uid := range []string{testAbstractSyntax, otherAbstractSyntax} {
		ctx, err := e.cm.lookupByAbstractSyntaxUID(uid)
		require.NoError(t, err)
		require.True(t, ctx.accepted)
		require.Equal(t, testTransferSyntax, ctx.transferSyntaxUID)
	}
}

func TestDataTransferRoundTrip(t *testing.T) {
	a := startAssociation(t, []string{testAbstractSyntax})
	requireUpcall(t, a.userUp, upcallEventHandshakeCompleted)
	requireUpcall(t, a.provUp, upcallEventHandshakeCompleted)

	echo := &dimse.CEchoRq{
		AffectedSOPClassUID: testAbstractSyntax,
		MessageID:           1,
		CommandDataSetType:  dimse.CommandDataSetTypeNull,
	}
	a.userDown <- stateEvent{
		event: evt09,
		dimsePayload: &stateEventDIMSEPayload{
			abstractSyntaxName: testAbstractSyntax,
			command:            echo,
		},
	}

	received := requireUpcall(t, a.provUp, upcallEventData)
	require.Equal(t, uint16(dimse.CommandFieldCEchoRq), received.command.CommandField())
	require.Equal(t, dimse.MessageID(1), received.command.GetMessageID())
	require.Empty(t, received.data)
}

// TestDataTransferRoundTripResponse exercises a response message with a
// message ID other than 1, so it can't pass by coincidentally matching a
// hard-coded decode fallback the way a C-ECHO-RQ with MessageID 1 could.
func TestDataTransferRoundTripResponse(t *testing.T) {
	a := startAssociation(t, []string{testAbstractSyntax})
	requireUpcall(t, a.userUp, upcallEventHandshakeCompleted)
	requireUpcall(t, a.provUp, upcallEventHandshakeCompleted)

	rsp := &dimse.CEchoRsp{
		AffectedSOPClassUID:       testAbstractSyntax,
		MessageIDBeingRespondedTo: 0x4242,
		CommandDataSetType:        dimse.CommandDataSetTypeNull,
		Status:                    dimse.Status{Status: dimse.StatusCode(0)},
	}
	a.provDown <- stateEvent{
		event: evt09,
		dimsePayload: &stateEventDIMSEPayload{
			abstractSyntaxName: testAbstractSyntax,
			command:            rsp,
		},
	}

	received := requireUpcall(t, a.userUp, upcallEventData)
	require.Equal(t, uint16(dimse.CommandFieldCEchoRsp), received.command.CommandField())
	require.Equal(t, dimse.MessageID(0x4242), received.command.GetMessageID())
	require.Equal(t, dimse.StatusCode(0), received.command.GetStatus().Status)
	require.Empty(t, received.data)
}

func TestReleaseHandshake(t *testing.T) {
	a := startAssociation(t, []string{testAbstractSyntax})
	requireUpcall(t, a.userUp, upcallEventHandshakeCompleted)
	requireUpcall(t, a.provUp, upcallEventHandshakeCompleted)

	a.userDown <- stateEvent{event: evt11}

	// Both sides see their upcall channel close once the release completes
	// and the transport connection is torn down.
	select {
	case _, ok := <-a.userUp:
		require.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for user-side release")
	}
	select {
	case _, ok := <-a.provUp:
		require.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for provider-side release")
	}
}

func TestAbortFromServiceUser(t *testing.T) {
	a := startAssociation(t, []string{testAbstractSyntax})
	requireUpcall(t, a.userUp, upcallEventHandshakeCompleted)
	requireUpcall(t, a.provUp, upcallEventHandshakeCompleted)

	a.userDown <- stateEvent{event: evt15}

	select {
	case _, ok := <-a.provUp:
		require.False(t, ok, "expected provider upcall channel to close on abort")
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for provider to observe abort")
	}
}

func TestContextManagerRejectsUnknownAbstractSyntax(t *testing.T) {
	m := newContextManager("test")
	_, err := m.lookupByAbstractSyntaxUID("1.2.3.4.5.6.7.8.9")
	require.Error(t, err)
}

func TestContextManagerAssociateRequestResponseRoundTrip(t *testing.T) {
	initiator := newContextManager("initiator")
	rqItems := initiator.generateAssociateRequest([]string{testAbstractSyntax}, []string{testTransferSyntax})

	acceptor := newContextManager("acceptor")
	rspItems, err := acceptor.onAssociateRequest(rqItems)
	require.NoError(t, err)

	require.NoError(t, initiator.onAssociateResponse(rspItems))
	ctx, err := initiator.lookupByAbstractSyntaxUID(testAbstractSyntax)
	require.NoError(t, err)
	require.True(t, ctx.accepted)
	require.Equal(t, testTransferSyntax, ctx.transferSyntaxUID)
}

func TestContextManagerOnAssociateRequestRejectsEmptyProposal(t *testing.T) {
	m := newContextManager("test")
	_, err := m.onAssociateRequest(nil)
	require.Error(t, err)
}
