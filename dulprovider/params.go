package dulprovider

import "time"

// DefaultMaxPDUSize is the maximum PDU length this stack advertises and
// accepts when no override is given. P3.7 Annex D.1.
const DefaultMaxPDUSize = 4 << 20

// ARTIMTimeout is the duration of the ARTIM (association request/release
// timer), started whenever this stack is waiting for a peer PDU that bounds
// an association state transition. P3.8 9.1.5.
const ARTIMTimeout = 10 * time.Second

// ServiceUserParams configures the requestor side of an association
// (A-ASSOCIATE-RQ). CalledAETitle and CallingAETitle must be nonempty.
type ServiceUserParams struct {
	CalledAETitle  string
	CallingAETitle string

	// SOPClasses lists the abstract syntax UIDs this user proposes, one
	// presentation context per entry.
	SOPClasses []string

	// TransferSyntaxes lists the transfer syntax UIDs offered for every
	// proposed presentation context.
	TransferSyntaxes []string

	// MaxPDUSize is set to DefaultMaxPDUSize by Connect when zero. The state
	// machine does not read it: every association advertises and accepts
	// DefaultMaxPDUSize.
	MaxPDUSize int
}

// ServiceProviderParams configures the acceptor side of an association.
type ServiceProviderParams struct {
	// AETitle is the application-entity title this provider answers to.
	// Must be nonempty.
	AETitle string

	// BindAddr is the address Run listens on, in net.Listen("tcp", ...)
	// form (e.g. ":11112" or "127.0.0.1:11112"). The zero value binds the
	// wildcard address. Unlike some DUL implementations, this stack never
	// shells out to resolve a hostname to bind to.
	BindAddr string

	// MaxPDUSize is set to DefaultMaxPDUSize by NewProvider when zero. The
	// state machine does not read it: every association advertises and
	// accepts DefaultMaxPDUSize.
	MaxPDUSize int
}
