package dulprovider

import (
	"net"

	"github.com/grailbio/go-dicom/dicomlog"
)

// Provider runs the acceptor side of the DUL: it listens for incoming
// associations and drives one stateMachine per accepted connection.
type Provider struct {
	params ServiceProviderParams
}

// NewProvider creates a Provider. Run actually starts listening.
func NewProvider(params ServiceProviderParams) *Provider {
	if params.MaxPDUSize == 0 {
		params.MaxPDUSize = DefaultMaxPDUSize
	}
	return &Provider{params: params}
}

// RunProviderForConn drives one DUL association to completion on conn,
// delivering upcalls on upcallCh and accepting user primitives on
// downcallCh. It returns once the peer or caller closes upcallCh's
// underlying association.
func RunProviderForConn(conn net.Conn, upcallCh chan upcallEvent, downcallCh chan stateEvent, label string) {
	runStateMachineForServiceProvider(conn, upcallCh, downcallCh, label)
}

// Run listens on p.params.BindAddr (the wildcard address if empty),
// accepting connections and handing each association's upcall/downcall
// channels to handle in its own goroutine. handle owns the association from
// here: it reads upcallCh for incoming primitives and writes downcallCh to
// send its own, never touching the net.Conn directly. Run returns only if
// the listener fails to start; accept errors are logged and Run keeps
// accepting.
func (p *Provider) Run(handle func(upcallCh chan upcallEvent, downcallCh chan stateEvent)) error {
	listener, err := net.Listen("tcp", p.params.BindAddr)
	if err != nil {
		return err
	}
	dicomlog.Vprintf(0, "dulprovider.Provider(%s): listening on %s", p.params.AETitle, listener.Addr())
	for {
		conn, err := listener.Accept()
		if err != nil {
			dicomlog.Vprintf(0, "dulprovider.Provider(%s): accept error: %v", p.params.AETitle, err)
			continue
		}
		upcallCh := make(chan upcallEvent, 128)
		downcallCh := make(chan stateEvent, 128)
		go RunProviderForConn(conn, upcallCh, downcallCh, p.params.AETitle)
		go handle(upcallCh, downcallCh)
	}
}

// Connect dials addr and drives the requestor side of the DUL handshake,
// delivering upcalls on upcallCh and accepting user primitives on
// downcallCh.
func Connect(addr string, params ServiceUserParams, upcallCh chan upcallEvent, downcallCh chan stateEvent) {
	if params.MaxPDUSize == 0 {
		params.MaxPDUSize = DefaultMaxPDUSize
	}
	runStateMachineForServiceUser(addr, params, upcallCh, downcallCh, params.CallingAETitle)
}
